package analytics

import (
	"sort"

	"github.com/spendlens/backend/internal/model"
)

// Heatmap buckets expense transactions by local calendar day within the given
// year. Only days with at least one expense materialize a cell (sparse
// representation); the presentation layer paints missing days as "no data".
// Each cell carries the transaction count, the summed amount, and the
// dominant category of the day for tooltips. Income transactions and
// transactions outside the year are ignored.
func Heatmap(txns []model.Transaction, year int) []model.HeatmapCell {
	type dayAgg struct {
		count      int
		amount     float64
		byCategory map[string]float64
		catOrder   []string
	}

	days := make(map[string]*dayAgg)
	var order []string

	for _, t := range txns {
		if t.Type != model.TransactionTypeExpense {
			continue
		}
		// Local calendar date, not UTC: an expense logged just before
		// midnight must not shift a day.
		if t.Date.Year() != year {
			continue
		}
		key := t.Date.Format("2006-01-02")
		agg, ok := days[key]
		if !ok {
			agg = &dayAgg{byCategory: make(map[string]float64)}
			days[key] = agg
			order = append(order, key)
		}
		agg.count++
		agg.amount += t.Amount
		if _, seen := agg.byCategory[t.Category]; !seen {
			agg.catOrder = append(agg.catOrder, t.Category)
		}
		agg.byCategory[t.Category] += t.Amount
	}

	sort.Strings(order)

	cells := make([]model.HeatmapCell, 0, len(order))
	for _, key := range order {
		agg := days[key]
		cells = append(cells, model.HeatmapCell{
			Date:     key,
			Count:    agg.count,
			Amount:   agg.amount,
			Category: dominantCategory(agg.byCategory, agg.catOrder),
		})
	}
	return cells
}

// dominantCategory picks the category with the highest summed amount for the
// day. Ties keep the first category seen in input order.
func dominantCategory(byCategory map[string]float64, order []string) string {
	var best string
	var bestAmount float64
	for _, cat := range order {
		if amt := byCategory[cat]; amt > bestAmount {
			best = cat
			bestAmount = amt
		}
	}
	return best
}

// MaxCount returns the largest cell count in a heatmap, used as the intensity
// denominator. Defaults to 1 for an empty year so classification never
// divides by zero.
func MaxCount(cells []model.HeatmapCell) int {
	max := 1
	for _, c := range cells {
		if c.Count > max {
			max = c.Count
		}
	}
	return max
}

// IntensityBand classifies a day's count against the year's maximum into one
// of five fixed bands (1..5). A count of zero is band 0, "no data".
func IntensityBand(count, max int) int {
	if count <= 0 {
		return 0
	}
	if max < 1 {
		max = 1
	}
	ratio := float64(count) / float64(max)
	switch {
	case ratio <= 0.2:
		return 1
	case ratio <= 0.4:
		return 2
	case ratio <= 0.6:
		return 3
	case ratio <= 0.8:
		return 4
	default:
		return 5
	}
}
