package analytics

import (
	"fmt"
	"math"

	"github.com/spendlens/backend/internal/model"
)

// Metric selects which scalar of a flow bucket a comparison chart plots.
type Metric string

const (
	MetricNet     Metric = "net"
	MetricExpense Metric = "expense"
	MetricIncome  Metric = "income"
)

func (m Metric) of(b model.FlowBucket) float64 {
	switch m {
	case MetricExpense:
		return b.Expense
	case MetricIncome:
		return b.Income
	default:
		return b.Net()
	}
}

// Compare pairs a current-period flow series with the previous period's,
// aligned by ordinal position rather than label: day 3 of this month lines up
// with day 3 of last month even though the labels differ. Labels come from
// the current series. When the previous period is shorter (a 31-day month
// against a 30-day one) the missing slots read as zero.
func Compare(current, previous []model.FlowBucket, metric Metric) []model.ComparisonEntry {
	entries := make([]model.ComparisonEntry, len(current))
	for i, b := range current {
		var prev float64
		if i < len(previous) {
			prev = metric.of(previous[i])
		}
		entries[i] = model.ComparisonEntry{
			Label:    b.Label,
			Current:  metric.of(b),
			Previous: prev,
		}
	}
	return entries
}

// PercentChange is the raw, unclamped period-over-period change. A zero
// previous value resolves to 0 rather than a division fault: the result is
// end-user-visible and must never be NaN or Inf.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// FormatPercentChange renders a percent change for display, capping magnitudes
// beyond 100% so a tiny previous value cannot produce a misleadingly huge
// number. The raw value stays available from PercentChange; capping is purely
// a presentation concern.
func FormatPercentChange(pct float64) string {
	switch {
	case pct > 100:
		return "+100%+"
	case pct < -100:
		return "-100%+"
	case pct >= 0:
		return fmt.Sprintf("+%.1f%%", pct)
	default:
		return fmt.Sprintf("-%.1f%%", math.Abs(pct))
	}
}

// TotalChange sums the chosen metric over both series and returns the raw
// percent change between the totals.
func TotalChange(current, previous []model.FlowBucket, metric Metric) float64 {
	var cur, prev float64
	for _, b := range current {
		cur += metric.of(b)
	}
	for _, b := range previous {
		prev += metric.of(b)
	}
	return PercentChange(cur, prev)
}
