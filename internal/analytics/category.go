package analytics

import (
	"sort"

	"github.com/spendlens/backend/internal/model"
)

// Filter narrows which transactions participate in a breakdown.
type Filter func(model.Transaction) bool

// FilterAll admits every transaction.
func FilterAll(model.Transaction) bool { return true }

// FilterBills admits only recurring transactions (bills, subscriptions).
func FilterBills(t model.Transaction) bool { return t.IsRecurring }

// FilterGeneral admits only one-off transactions.
func FilterGeneral(t model.Transaction) bool { return !t.IsRecurring }

// Breakdown sums amounts per category over the transactions whose date falls
// inside r and which pass the filter, and derives each category's percentage
// share of the included total. A zero total yields 0 percentages, never NaN.
// Entries keep first-seen input order; callers wanting a ranked view sort by
// value afterwards.
func Breakdown(txns []model.Transaction, r model.DateRange, filter Filter) []model.CategoryBreakdownEntry {
	if filter == nil {
		filter = FilterAll
	}

	totals := make(map[string]float64)
	var order []string
	var grand float64

	for _, t := range txns {
		if !r.Contains(t.Date) || !filter(t) {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
		grand += t.Amount
	}

	entries := make([]model.CategoryBreakdownEntry, 0, len(order))
	for _, name := range order {
		value := totals[name]
		var pct float64
		if grand > 0 {
			pct = value / grand * 100
		}
		entries = append(entries, model.CategoryBreakdownEntry{
			Name:       name,
			Value:      value,
			Percentage: pct,
		})
	}
	return entries
}

// TopCategories returns the n largest entries by value. The sort is stable so
// ties keep their input order.
func TopCategories(entries []model.CategoryBreakdownEntry, n int) []model.CategoryBreakdownEntry {
	ranked := make([]model.CategoryBreakdownEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
