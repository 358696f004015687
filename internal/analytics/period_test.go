package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/backend/internal/model"
)

// Fixed reference instant so defaults are reproducible.
var ref = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

func TestResolveRangeMonthly(t *testing.T) {
	t.Run("named month spans first to last day", func(t *testing.T) {
		res := ResolveRange(model.PeriodMonthly, "March", ref)

		assert.Equal(t, model.BucketDay, res.BucketUnit)
		assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), res.Current.Start)
		assert.Equal(t, 31, res.Current.End.Day())
		assert.Equal(t, time.March, res.Current.End.Month())

		// Previous is February of the same year.
		assert.Equal(t, time.February, res.Previous.Start.Month())
		assert.Equal(t, 29, res.Previous.End.Day()) // 2024 is a leap year
	})

	t.Run("january wraps previous into december of prior year", func(t *testing.T) {
		res := ResolveRange(model.PeriodMonthly, "January", ref)

		assert.Equal(t, time.January, res.Current.Start.Month())
		assert.Equal(t, 2024, res.Current.Start.Year())
		assert.Equal(t, time.December, res.Previous.Start.Month())
		assert.Equal(t, 2023, res.Previous.Start.Year())
		assert.Equal(t, 31, res.Previous.End.Day())
	})

	t.Run("month name matching is case-insensitive", func(t *testing.T) {
		res := ResolveRange(model.PeriodMonthly, "march", ref)
		assert.Equal(t, time.March, res.Current.Start.Month())
	})

	t.Run("unknown sub-period falls back to reference month", func(t *testing.T) {
		res := ResolveRange(model.PeriodMonthly, "Smarch", ref)
		assert.Equal(t, time.June, res.Current.Start.Month())
	})

	t.Run("empty sub-period defaults from reference", func(t *testing.T) {
		res := ResolveRange(model.PeriodMonthly, "", ref)
		assert.Equal(t, time.June, res.Current.Start.Month())
	})
}

func TestResolveRangeQuarterly(t *testing.T) {
	t.Run("quarter spans three months", func(t *testing.T) {
		res := ResolveRange(model.PeriodQuarterly, "Q2", ref)

		assert.Equal(t, model.BucketMonth, res.BucketUnit)
		assert.Equal(t, time.April, res.Current.Start.Month())
		assert.Equal(t, time.June, res.Current.End.Month())
		assert.Equal(t, 30, res.Current.End.Day())
		assert.Equal(t, time.January, res.Previous.Start.Month())
	})

	t.Run("q1 wraps previous into q4 of prior year", func(t *testing.T) {
		res := ResolveRange(model.PeriodQuarterly, "Q1", ref)

		assert.Equal(t, 2024, res.Current.Start.Year())
		assert.Equal(t, time.October, res.Previous.Start.Month())
		assert.Equal(t, 2023, res.Previous.Start.Year())
		assert.Equal(t, time.December, res.Previous.End.Month())
	})

	t.Run("unknown quarter defaults from reference", func(t *testing.T) {
		res := ResolveRange(model.PeriodQuarterly, "Q9", ref)
		// June sits in Q2.
		assert.Equal(t, time.April, res.Current.Start.Month())
	})
}

func TestResolveRangeHalfYearly(t *testing.T) {
	t.Run("h2 spans july to december", func(t *testing.T) {
		res := ResolveRange(model.PeriodHalfYearly, "H2", ref)

		assert.Equal(t, time.July, res.Current.Start.Month())
		assert.Equal(t, time.December, res.Current.End.Month())
		assert.Equal(t, time.January, res.Previous.Start.Month())
		assert.Equal(t, 2024, res.Previous.Start.Year())
	})

	t.Run("h1 wraps previous into h2 of prior year", func(t *testing.T) {
		res := ResolveRange(model.PeriodHalfYearly, "H1", ref)

		assert.Equal(t, time.July, res.Previous.Start.Month())
		assert.Equal(t, 2023, res.Previous.Start.Year())
	})
}

func TestResolveRangeYearly(t *testing.T) {
	t.Run("year string spans jan 1 to dec 31", func(t *testing.T) {
		res := ResolveRange(model.PeriodYearly, "2023", ref)

		assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), res.Current.Start)
		assert.Equal(t, time.December, res.Current.End.Month())
		assert.Equal(t, 31, res.Current.End.Day())
		assert.Equal(t, 2022, res.Previous.Start.Year())
	})

	t.Run("garbage year defaults to reference year", func(t *testing.T) {
		res := ResolveRange(model.PeriodYearly, "not-a-year", ref)
		assert.Equal(t, 2024, res.Current.Start.Year())
	})
}

func TestResolveRangeDefaultsTrackReference(t *testing.T) {
	// The default sub-period must be derived per call from the reference
	// instant, not cached, so a long-running process stays correct across
	// calendar rollovers.
	jan := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	dec := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)

	resJan := ResolveRange(model.PeriodMonthly, "", jan)
	resDec := ResolveRange(model.PeriodMonthly, "", dec)

	require.Equal(t, time.January, resJan.Current.Start.Month())
	require.Equal(t, time.December, resDec.Current.Start.Month())
	assert.Equal(t, 2024, resJan.Previous.Start.Year())
}
