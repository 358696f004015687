package model

// Derived analytics records. All of these are plain value objects recomputed
// on every invocation; they carry no identity and cross the JSON boundary
// unchanged.

// CategoryBreakdownEntry is one slice of a category distribution. Percentage
// is the share of this entry against the total of all included entries; a
// zero total yields 0, never NaN.
type CategoryBreakdownEntry struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// FlowBucket is one time slice (day or month) of income vs expense.
type FlowBucket struct {
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Net is income minus expense. It is always derived, never stored.
func (b FlowBucket) Net() float64 {
	return b.Income - b.Expense
}

// ComparisonEntry pairs a current-period value with the value from the same
// ordinal slot of the previous period. Labels come from the current period.
type ComparisonEntry struct {
	Label    string  `json:"label"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

// SavingsPoint is one time slice of the savings trend chart.
type SavingsPoint struct {
	Label    string  `json:"label"`
	Savings  float64 `json:"savings"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// HeatmapCell is one calendar day's aggregated expense activity. Days with no
// expenses are not materialized; the presentation layer fills the gaps.
type HeatmapCell struct {
	Date     string  `json:"date"`
	Count    int     `json:"count"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
}
