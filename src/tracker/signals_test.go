package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"options-tracker/src/indicators"
)

func fptr(v float64) *float64 {
	return &v
}

func bullishRow() indicators.Row {
	return indicators.Row{
		Ema7:       105,
		Vwma17:     100,
		MacdLine:   1.5,
		MacdSignal: 1.0,
		Roc8:       fptr(0.02),
	}
}

func TestCanEvaluate(t *testing.T) {
	row := bullishRow()
	assert.True(t, CanEvaluate(row))

	row.Roc8 = nil
	assert.False(t, CanEvaluate(row))
}

func TestCheckEntrySignal(t *testing.T) {
	t.Run("fires when all three conditions hold", func(t *testing.T) {
		fire, signals := CheckEntrySignal(bullishRow())
		assert.True(t, fire)
		assert.True(t, signals.EmaAboveVwma)
		assert.True(t, signals.RocPositive)
		assert.True(t, signals.MacdBullish)
	})

	t.Run("any failed condition blocks entry", func(t *testing.T) {
		row := bullishRow()
		row.Ema7 = 95
		fire, _ := CheckEntrySignal(row)
		assert.False(t, fire)

		row = bullishRow()
		row.Roc8 = fptr(-0.01)
		fire, _ = CheckEntrySignal(row)
		assert.False(t, fire)

		row = bullishRow()
		row.MacdSignal = 2.0
		fire, _ = CheckEntrySignal(row)
		assert.False(t, fire)
	})

	t.Run("equal values are not bullish", func(t *testing.T) {
		row := bullishRow()
		row.Vwma17 = row.Ema7
		fire, signals := CheckEntrySignal(row)
		assert.False(t, fire)
		assert.False(t, signals.EmaAboveVwma)

		row = bullishRow()
		row.Roc8 = fptr(0)
		fire, _ = CheckEntrySignal(row)
		assert.False(t, fire)
	})
}

func TestCheckExitSignal(t *testing.T) {
	bearishRow := func() indicators.Row {
		return indicators.Row{
			Ema7:       95,
			Vwma17:     100,
			MacdLine:   0.5,
			MacdSignal: 1.0,
			Roc8:       fptr(-0.02),
		}
	}

	t.Run("fires on all three conditions", func(t *testing.T) {
		fire, signals := CheckExitSignal(bearishRow())
		assert.True(t, fire)
		assert.Equal(t, 3, signals.ConditionsMet())
	})

	t.Run("fires on any two of three", func(t *testing.T) {
		row := bearishRow()
		row.Ema7 = 105 // ema bullish, other two bearish
		fire, signals := CheckExitSignal(row)
		assert.True(t, fire)
		assert.Equal(t, 2, signals.ConditionsMet())

		row = bearishRow()
		row.Roc8 = fptr(0.01)
		fire, _ = CheckExitSignal(row)
		assert.True(t, fire)

		row = bearishRow()
		row.MacdLine = 2.0
		fire, _ = CheckExitSignal(row)
		assert.True(t, fire)
	})

	t.Run("a single condition does not fire", func(t *testing.T) {
		row := bullishRow()
		row.Roc8 = fptr(-0.02)
		fire, signals := CheckExitSignal(row)
		assert.False(t, fire)
		assert.Equal(t, 1, signals.ConditionsMet())
	})

	t.Run("equal values are not bearish", func(t *testing.T) {
		row := bearishRow()
		row.Vwma17 = row.Ema7
		row.MacdSignal = row.MacdLine
		fire, signals := CheckExitSignal(row)
		assert.False(t, fire)
		assert.Equal(t, 1, signals.ConditionsMet())
	})

	t.Run("an entry row can never satisfy the exit majority", func(t *testing.T) {
		entryFire, _ := CheckEntrySignal(bullishRow())
		exitFire, signals := CheckExitSignal(bullishRow())
		assert.True(t, entryFire)
		assert.False(t, exitFire)
		assert.Equal(t, 0, signals.ConditionsMet())
	})
}
