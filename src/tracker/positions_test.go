package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"options-tracker/src/eventmodels"
)

func testOptionSymbol(t *testing.T, strikePrice float64, optionType string) eventmodels.OptionSymbol {
	t.Helper()

	symbol, err := eventmodels.NewOptionSymbol(eventmodels.OptionSymbolComponents{
		Underlying:  "SPY",
		Expiration:  time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		OptionType:  optionType,
		StrikePrice: strikePrice,
	})
	require.NoError(t, err)

	return symbol
}

func TestNewPositionTracker(t *testing.T) {
	call := testOptionSymbol(t, 580, "C")
	put := testOptionSymbol(t, 580, "P")

	positions := NewPositionTracker([]eventmodels.OptionSymbol{call, put})

	for _, symbol := range []eventmodels.OptionSymbol{call, put} {
		for _, timeframe := range eventmodels.AllTimeframes() {
			key := PositionKey{OptionSymbol: symbol, Timeframe: timeframe}

			position, found := positions.Get(key)
			require.True(t, found, "missing position for %s %s", symbol, timeframe)
			assert.False(t, position.Open)
			assert.Equal(t, 0.0, position.EntryPrice)
		}
	}
}

func TestPositionLifecycle(t *testing.T) {
	symbol := testOptionSymbol(t, 580, "C")
	positions := NewPositionTracker([]eventmodels.OptionSymbol{symbol})
	key := PositionKey{OptionSymbol: symbol, Timeframe: eventmodels.Timeframe5Min}

	require.NoError(t, positions.OpenPosition(key, 2.35))
	assert.True(t, positions.IsOpen(key))

	position, _ := positions.Get(key)
	assert.Equal(t, 2.35, position.EntryPrice)

	trade, err := positions.ClosePosition(key, 2.85)
	require.NoError(t, err)
	assert.Equal(t, symbol, trade.OptionSymbol)
	assert.Equal(t, eventmodels.Timeframe5Min, trade.Timeframe)
	assert.Equal(t, 2.35, trade.EntryPrice)
	assert.Equal(t, 2.85, trade.ExitPrice)
	assert.InDelta(t, 0.5, trade.ProfitLoss, 1e-9)

	assert.False(t, positions.IsOpen(key))

	position, _ = positions.Get(key)
	assert.Equal(t, 0.0, position.EntryPrice)
}

func TestPositionTransitionErrors(t *testing.T) {
	symbol := testOptionSymbol(t, 580, "C")
	positions := NewPositionTracker([]eventmodels.OptionSymbol{symbol})
	key := PositionKey{OptionSymbol: symbol, Timeframe: eventmodels.Timeframe1Min}

	t.Run("close without an open position fails", func(t *testing.T) {
		_, err := positions.ClosePosition(key, 1.0)
		assert.Error(t, err)
	})

	t.Run("double open fails and keeps the original entry price", func(t *testing.T) {
		require.NoError(t, positions.OpenPosition(key, 1.5))
		assert.Error(t, positions.OpenPosition(key, 9.9))

		position, _ := positions.Get(key)
		assert.Equal(t, 1.5, position.EntryPrice)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		unknown := PositionKey{OptionSymbol: testOptionSymbol(t, 999, "P"), Timeframe: eventmodels.Timeframe1Min}

		assert.Error(t, positions.OpenPosition(unknown, 1.0))

		_, err := positions.ClosePosition(unknown, 1.0)
		assert.Error(t, err)

		_, found := positions.Get(unknown)
		assert.False(t, found)
	})
}

func TestPositionsAreIndependentAcrossTimeframes(t *testing.T) {
	symbol := testOptionSymbol(t, 580, "C")
	positions := NewPositionTracker([]eventmodels.OptionSymbol{symbol})

	oneMin := PositionKey{OptionSymbol: symbol, Timeframe: eventmodels.Timeframe1Min}
	fiveMin := PositionKey{OptionSymbol: symbol, Timeframe: eventmodels.Timeframe5Min}

	require.NoError(t, positions.OpenPosition(oneMin, 3.0))

	assert.True(t, positions.IsOpen(oneMin))
	assert.False(t, positions.IsOpen(fiveMin))

	require.NoError(t, positions.OpenPosition(fiveMin, 4.0))

	_, err := positions.ClosePosition(oneMin, 3.5)
	require.NoError(t, err)
	assert.False(t, positions.IsOpen(oneMin))
	assert.True(t, positions.IsOpen(fiveMin))
}
