package tracker

import (
	"fmt"

	"options-tracker/src/eventmodels"
)

type PositionKey struct {
	OptionSymbol eventmodels.OptionSymbol
	Timeframe    eventmodels.Timeframe
}

// Position is the state for one (symbol, timeframe) pair. Closed positions
// carry a zero entry price.
type Position struct {
	Open       bool
	EntryPrice float64
}

// PositionTracker owns the position state map. Exactly one instance exists
// per key for the lifetime of a run, created closed and mutated only here.
// The pipeline is the single writer, so no locking is needed.
type PositionTracker struct {
	positions map[PositionKey]*Position
}

func NewPositionTracker(symbols []eventmodels.OptionSymbol) *PositionTracker {
	positions := make(map[PositionKey]*Position)
	for _, symbol := range symbols {
		for _, timeframe := range eventmodels.AllTimeframes() {
			positions[PositionKey{OptionSymbol: symbol, Timeframe: timeframe}] = &Position{}
		}
	}

	return &PositionTracker{
		positions: positions,
	}
}

func (p *PositionTracker) Get(key PositionKey) (Position, bool) {
	position, found := p.positions[key]
	if !found {
		return Position{}, false
	}

	return *position, true
}

func (p *PositionTracker) IsOpen(key PositionKey) bool {
	position, found := p.positions[key]
	return found && position.Open
}

// OpenPosition transitions Closed -> Open, recording the entry price.
func (p *PositionTracker) OpenPosition(key PositionKey, entryPrice float64) error {
	position, found := p.positions[key]
	if !found {
		return fmt.Errorf("OpenPosition: unknown position key %v", key)
	}

	if position.Open {
		return fmt.Errorf("OpenPosition: position already open for %s %s", key.OptionSymbol, key.Timeframe)
	}

	position.Open = true
	position.EntryPrice = entryPrice

	return nil
}

// ClosePosition transitions Open -> Closed and returns the resulting trade
// record. The entry price resets to zero.
func (p *PositionTracker) ClosePosition(key PositionKey, exitPrice float64) (eventmodels.Trade, error) {
	position, found := p.positions[key]
	if !found {
		return eventmodels.Trade{}, fmt.Errorf("ClosePosition: unknown position key %v", key)
	}

	if !position.Open {
		return eventmodels.Trade{}, fmt.Errorf("ClosePosition: no open position for %s %s", key.OptionSymbol, key.Timeframe)
	}

	trade := eventmodels.NewTrade(key.OptionSymbol, key.Timeframe, position.EntryPrice, exitPrice)

	position.Open = false
	position.EntryPrice = 0

	return trade, nil
}
