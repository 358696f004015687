package model

import "time"

// Period is the top-level granularity of an analytics view.
type Period string

const (
	PeriodMonthly    Period = "MONTHLY"
	PeriodQuarterly  Period = "QUARTERLY"
	PeriodHalfYearly Period = "HALF_YEARLY"
	PeriodYearly     Period = "YEARLY"
)

// BucketUnit is the x-axis unit a resolved period is charted in.
type BucketUnit string

const (
	BucketDay   BucketUnit = "DAY"
	BucketMonth BucketUnit = "MONTH"
)

// Unit returns the bucket unit a period is charted in: days inside a single
// month, months for everything wider.
func (p Period) Unit() BucketUnit {
	if p == PeriodMonthly {
		return BucketDay
	}
	return BucketMonth
}

// Valid reports whether p is one of the four known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodMonthly, PeriodQuarterly, PeriodHalfYearly, PeriodYearly:
		return true
	}
	return false
}

// DateRange is an inclusive calendar interval, start <= end.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether the calendar date of t falls inside the range.
// Comparison is by local calendar day so a transaction stamped late in the
// evening still lands on its own day.
func (r DateRange) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return !day.Before(dayOf(r.Start)) && !day.After(dayOf(r.End))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Resolution is the outcome of resolving a (period, subPeriod) selection:
// the concrete current range, the structurally matching previous range, and
// the unit the range should be bucketed in.
type Resolution struct {
	Current    DateRange  `json:"current"`
	Previous   DateRange  `json:"previous"`
	BucketUnit BucketUnit `json:"bucketUnit"`
}
