package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/spendlens/backend/internal/model"
)

// monthNames is indexed by time.Month-1. Labels and sub-period parsing share it
// so a month bucket label always round-trips as a MONTHLY sub-period.
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the canonical label for m.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// parseMonth maps a month-name sub-period to its time.Month. Matching is
// case-insensitive.
func parseMonth(s string) (time.Month, bool) {
	for i, name := range monthNames {
		if strings.EqualFold(name, s) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// ResolveRange maps a (period, subPeriod) selection onto the concrete current
// date range, the structurally matching previous range, and the bucket unit
// the range is charted in. The reference instant supplies the year context and
// the defaults for missing or unrecognized sub-periods; it is passed in
// explicitly so callers (and tests) control "now".
//
// An unrecognized sub-period falls back to the default for the period rather
// than failing: this path is reachable straight from user-controlled UI state
// and a reasonable default beats a blocked dashboard.
func ResolveRange(period model.Period, subPeriod string, ref time.Time) model.Resolution {
	switch period {
	case model.PeriodQuarterly:
		return resolveQuarter(subPeriod, ref)
	case model.PeriodHalfYearly:
		return resolveHalf(subPeriod, ref)
	case model.PeriodYearly:
		return resolveYear(subPeriod, ref)
	default:
		return resolveMonth(subPeriod, ref)
	}
}

// resolveMonth spans the named month of the reference year. The previous range
// is the immediately preceding month, wrapping January back into December of
// the prior year.
func resolveMonth(subPeriod string, ref time.Time) model.Resolution {
	month, ok := parseMonth(subPeriod)
	if !ok {
		month = ref.Month()
	}

	start := time.Date(ref.Year(), month, 1, 0, 0, 0, 0, ref.Location())
	prevStart := start.AddDate(0, -1, 0)

	return model.Resolution{
		Current:    monthSpan(start, 1),
		Previous:   monthSpan(prevStart, 1),
		BucketUnit: model.BucketDay,
	}
}

func resolveQuarter(subPeriod string, ref time.Time) model.Resolution {
	q := parseOrdinal(subPeriod, "Q", 4)
	if q == 0 {
		q = (int(ref.Month())-1)/3 + 1
	}

	startMonth := time.Month((q-1)*3 + 1)
	start := time.Date(ref.Year(), startMonth, 1, 0, 0, 0, 0, ref.Location())
	prevStart := start.AddDate(0, -3, 0)

	return model.Resolution{
		Current:    monthSpan(start, 3),
		Previous:   monthSpan(prevStart, 3),
		BucketUnit: model.BucketMonth,
	}
}

func resolveHalf(subPeriod string, ref time.Time) model.Resolution {
	h := parseOrdinal(subPeriod, "H", 2)
	if h == 0 {
		h = (int(ref.Month())-1)/6 + 1
	}

	startMonth := time.Month((h-1)*6 + 1)
	start := time.Date(ref.Year(), startMonth, 1, 0, 0, 0, 0, ref.Location())
	prevStart := start.AddDate(0, -6, 0)

	return model.Resolution{
		Current:    monthSpan(start, 6),
		Previous:   monthSpan(prevStart, 6),
		BucketUnit: model.BucketMonth,
	}
}

func resolveYear(subPeriod string, ref time.Time) model.Resolution {
	year, err := strconv.Atoi(strings.TrimSpace(subPeriod))
	if err != nil || year < 1 {
		year = ref.Year()
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, ref.Location())

	return model.Resolution{
		Current:    monthSpan(start, 12),
		Previous:   monthSpan(start.AddDate(-1, 0, 0), 12),
		BucketUnit: model.BucketMonth,
	}
}

// parseOrdinal parses sub-periods of the form "Q1".."Q4" or "H1"/"H2",
// case-insensitively. Returns 0 when the value is missing or out of range.
func parseOrdinal(s, prefix string, max int) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, prefix) {
		return 0
	}
	n, err := strconv.Atoi(s[len(prefix):])
	if err != nil || n < 1 || n > max {
		return 0
	}
	return n
}

// monthSpan builds an inclusive range covering months whole months starting at
// start, which must be the first instant of a month. The end lands on the last
// second of the final day, mirroring how list queries bound their date filters.
func monthSpan(start time.Time, months int) model.DateRange {
	end := start.AddDate(0, months, -1)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())
	return model.DateRange{Start: start, End: end}
}
