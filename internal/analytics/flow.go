package analytics

import (
	"strconv"
	"time"

	"github.com/spendlens/backend/internal/model"
)

// Flow buckets transactions inside r by calendar day or calendar month and
// accumulates income and expense per bucket. Every bucket position in the
// range is materialized, zeros included, so the series length only depends on
// the range; the comparison builder relies on that when aligning two periods
// by ordinal slot. Transactions dated outside r are excluded entirely, never
// clipped into an edge bucket.
func Flow(txns []model.Transaction, r model.DateRange, unit model.BucketUnit) []model.FlowBucket {
	if unit == model.BucketDay {
		return flowByDay(txns, r)
	}
	return flowByMonth(txns, r)
}

func flowByDay(txns []model.Transaction, r model.DateRange) []model.FlowBucket {
	days := daysBetween(r.Start, r.End) + 1
	if days <= 0 {
		return []model.FlowBucket{}
	}

	buckets := make([]model.FlowBucket, days)
	for i := range buckets {
		buckets[i].Label = strconv.Itoa(r.Start.AddDate(0, 0, i).Day())
	}

	for _, t := range txns {
		if !r.Contains(t.Date) {
			continue
		}
		idx := daysBetween(r.Start, t.Date)
		if idx < 0 || idx >= days {
			continue
		}
		accumulate(&buckets[idx], t)
	}
	return buckets
}

func flowByMonth(txns []model.Transaction, r model.DateRange) []model.FlowBucket {
	months := monthsBetween(r.Start, r.End) + 1
	if months <= 0 {
		return []model.FlowBucket{}
	}

	buckets := make([]model.FlowBucket, months)
	for i := range buckets {
		buckets[i].Label = MonthName(r.Start.AddDate(0, i, 0).Month())
	}

	for _, t := range txns {
		if !r.Contains(t.Date) {
			continue
		}
		idx := monthsBetween(r.Start, t.Date)
		if idx < 0 || idx >= months {
			continue
		}
		accumulate(&buckets[idx], t)
	}
	return buckets
}

func accumulate(b *model.FlowBucket, t model.Transaction) {
	if t.Type == model.TransactionTypeIncome {
		b.Income += t.Amount
	} else {
		b.Expense += t.Amount
	}
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

// monthsBetween counts whole calendar months from a to b.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// SavingsSeries derives the savings trend from a flow series. Savings is
// income minus expenses per bucket, by definition.
func SavingsSeries(buckets []model.FlowBucket) []model.SavingsPoint {
	points := make([]model.SavingsPoint, len(buckets))
	for i, b := range buckets {
		points[i] = model.SavingsPoint{
			Label:    b.Label,
			Savings:  b.Net(),
			Income:   b.Income,
			Expenses: b.Expense,
		}
	}
	return points
}
