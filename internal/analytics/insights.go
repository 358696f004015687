package analytics

import (
	"fmt"
	"math"

	"github.com/spendlens/backend/internal/model"
)

// InsightKind selects which angle the generated statements take on a series.
type InsightKind string

const (
	InsightSavings InsightKind = "savings"
	InsightExpense InsightKind = "expense"
)

// Trailing buckets considered when judging momentum against the overall average.
const trendWindow = 3

// Insights derives a finite, deterministic list of human-readable statements
// from a savings series. Every rule is threshold-based with fixed wording so
// the output is reproducible for identical input. An empty series yields an
// empty list; the generator never invents data for callers to show.
func Insights(series []model.SavingsPoint, kind InsightKind) []string {
	if len(series) == 0 {
		return []string{}
	}
	if kind == InsightExpense {
		return expenseInsights(series)
	}
	return savingsInsights(series)
}

func savingsInsights(series []model.SavingsPoint) []string {
	var out []string

	var income, expenses float64
	for _, p := range series {
		income += p.Income
		expenses += p.Expenses
	}
	savings := income - expenses

	var rate float64
	if income > 0 {
		rate = savings / income * 100
	}

	switch {
	case rate >= 20:
		out = append(out, fmt.Sprintf("Healthy savings rate of %.1f%% — you are saving at least a fifth of your income.", rate))
	case rate >= 10:
		out = append(out, fmt.Sprintf("Savings rate of %.1f%% — decent, but aim for 20%% or more of your income.", rate))
	default:
		out = append(out, fmt.Sprintf("Watch out: savings rate of %.1f%% is below 10%% of your income.", rate))
	}

	switch {
	case savings > 0:
		out = append(out, fmt.Sprintf("You came out ahead by %.2f over this period.", savings))
	case savings < 0:
		out = append(out, fmt.Sprintf("You ran a deficit of %.2f over this period.", math.Abs(savings)))
	default:
		out = append(out, "You broke even over this period.")
	}

	best, worst := extremes(series, func(p model.SavingsPoint) float64 { return p.Savings })
	out = append(out, fmt.Sprintf("Your strongest stretch was %s and your weakest was %s.", best.Label, worst.Label))

	if stmt := momentum(series, func(p model.SavingsPoint) float64 { return p.Savings }, true); stmt != "" {
		out = append(out, stmt)
	}
	return out
}

func expenseInsights(series []model.SavingsPoint) []string {
	var out []string

	var income, expenses float64
	for _, p := range series {
		income += p.Income
		expenses += p.Expenses
	}

	if income > 0 {
		share := expenses / income * 100
		switch {
		case share <= 80:
			out = append(out, fmt.Sprintf("Spending is %.1f%% of income — comfortably inside your means.", share))
		case share <= 100:
			out = append(out, fmt.Sprintf("Spending is %.1f%% of income — close to the edge of your means.", share))
		default:
			out = append(out, fmt.Sprintf("Spending is %.1f%% of income — you are spending more than you earn.", share))
		}
	} else {
		out = append(out, fmt.Sprintf("Total spending of %.2f with no recorded income this period.", expenses))
	}

	// For expenses the "worst" bucket is the heaviest spend.
	heaviest, lightest := extremes(series, func(p model.SavingsPoint) float64 { return p.Expenses })
	out = append(out, fmt.Sprintf("Spending peaked in %s and was lightest in %s.", heaviest.Label, lightest.Label))

	if stmt := momentum(series, func(p model.SavingsPoint) float64 { return p.Expenses }, false); stmt != "" {
		out = append(out, stmt)
	}
	return out
}

// extremes returns the points with the maximum and minimum value. Ties keep
// the first occurrence so results are stable.
func extremes(series []model.SavingsPoint, value func(model.SavingsPoint) float64) (best, worst model.SavingsPoint) {
	best, worst = series[0], series[0]
	for _, p := range series[1:] {
		if value(p) > value(best) {
			best = p
		}
		if value(p) < value(worst) {
			worst = p
		}
	}
	return best, worst
}

// momentum compares the trailing trendWindow buckets against the overall
// average. higherIsBetter flips the framing: rising savings is momentum,
// rising spending is a warning. Equal averages produce no statement.
func momentum(series []model.SavingsPoint, value func(model.SavingsPoint) float64, higherIsBetter bool) string {
	var total float64
	for _, p := range series {
		total += value(p)
	}
	overall := total / float64(len(series))

	window := trendWindow
	if len(series) < window {
		window = len(series)
	}
	var tail float64
	for _, p := range series[len(series)-window:] {
		tail += value(p)
	}
	recent := tail / float64(window)

	switch {
	case recent > overall:
		if higherIsBetter {
			return "Recent buckets are above your overall average — positive momentum."
		}
		return "Recent spending is above your overall average — keep an eye on it."
	case recent < overall:
		if higherIsBetter {
			return "Recent buckets are below your overall average — things have slipped."
		}
		return "Recent spending is below your overall average — trending the right way."
	default:
		return ""
	}
}
