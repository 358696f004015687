package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/backend/internal/model"
)

func TestCompare(t *testing.T) {
	t.Run("aligns by ordinal position with current labels", func(t *testing.T) {
		current := []model.FlowBucket{
			{Label: "March", Income: 1000, Expense: 150},
		}
		previous := []model.FlowBucket{
			{Label: "February", Income: 900, Expense: 100},
		}

		entries := Compare(current, previous, MetricExpense)
		require.Len(t, entries, 1)
		assert.Equal(t, "March", entries[0].Label)
		assert.Equal(t, 150.0, entries[0].Current)
		assert.Equal(t, 100.0, entries[0].Previous)

		// Scenario B: (150-100)/100*100 = 50%.
		assert.Equal(t, 50.0, PercentChange(entries[0].Current, entries[0].Previous))
	})

	t.Run("shorter previous series reads as zero", func(t *testing.T) {
		current := []model.FlowBucket{
			{Label: "1", Expense: 10},
			{Label: "2", Expense: 20},
			{Label: "3", Expense: 30},
		}
		previous := []model.FlowBucket{
			{Label: "1", Expense: 5},
		}

		entries := Compare(current, previous, MetricExpense)
		require.Len(t, entries, 3)
		assert.Equal(t, 5.0, entries[0].Previous)
		assert.Zero(t, entries[1].Previous)
		assert.Zero(t, entries[2].Previous)
	})

	t.Run("net metric uses income minus expense", func(t *testing.T) {
		current := []model.FlowBucket{{Label: "1", Income: 100, Expense: 40}}
		entries := Compare(current, nil, MetricNet)
		assert.Equal(t, 60.0, entries[0].Current)
	})
}

func TestPercentChange(t *testing.T) {
	t.Run("zero previous resolves to zero regardless of current", func(t *testing.T) {
		assert.Zero(t, PercentChange(150, 0))
		assert.Zero(t, PercentChange(0, 0))
		assert.Zero(t, PercentChange(-20, 0))
	})

	t.Run("raw value is unclamped", func(t *testing.T) {
		assert.Equal(t, 900.0, PercentChange(100, 10))
		assert.Equal(t, -50.0, PercentChange(50, 100))
	})
}

func TestFormatPercentChange(t *testing.T) {
	assert.Equal(t, "+50.0%", FormatPercentChange(50))
	assert.Equal(t, "-25.5%", FormatPercentChange(-25.5))
	assert.Equal(t, "+100%+", FormatPercentChange(900))
	assert.Equal(t, "-100%+", FormatPercentChange(-250))
	assert.Equal(t, "+0.0%", FormatPercentChange(0))
}

func TestTotalChange(t *testing.T) {
	current := []model.FlowBucket{{Expense: 100}, {Expense: 50}}
	previous := []model.FlowBucket{{Expense: 100}}

	assert.Equal(t, 50.0, TotalChange(current, previous, MetricExpense))
	assert.Zero(t, TotalChange(current, nil, MetricExpense))
}
