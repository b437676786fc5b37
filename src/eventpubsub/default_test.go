package eventpubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"options-tracker/src/eventmodels"
)

func TestTradeSignalsBeforeInit(t *testing.T) {
	bus = nil

	assert.Error(t, SubscribeTradeSignals(func(eventmodels.TradeSignalEvent) {}))

	// Publishing without a bus is a silent no-op.
	PublishTradeSignal(eventmodels.TradeSignalEvent{Action: eventmodels.TradeActionEntry})
}

func TestTradeSignalDelivery(t *testing.T) {
	Init()

	var received []eventmodels.TradeSignalEvent
	require.NoError(t, SubscribeTradeSignals(func(event eventmodels.TradeSignalEvent) {
		received = append(received, event)
	}))

	PublishTradeSignal(eventmodels.TradeSignalEvent{
		Action:       eventmodels.TradeActionEntry,
		OptionSymbol: "SPY241220C00580000",
		Timeframe:    eventmodels.Timeframe5Min,
		Price:        2.35,
	})

	require.Len(t, received, 1)
	assert.Equal(t, eventmodels.TradeActionEntry, received[0].Action)
	assert.Equal(t, 2.35, received[0].Price)
}
