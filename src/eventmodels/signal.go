package eventmodels

type TradeAction string

const (
	TradeActionEntry TradeAction = "ENTRY"
	TradeActionExit  TradeAction = "EXIT"
)

// EntrySignals records the three bullish conditions at evaluation time.
// All three must hold for an entry to fire.
type EntrySignals struct {
	EmaAboveVwma bool
	RocPositive  bool
	MacdBullish  bool
}

func (s EntrySignals) AllMet() bool {
	return s.EmaAboveVwma && s.RocPositive && s.MacdBullish
}

// ExitSignals records the three bearish conditions. An exit fires on a
// majority, at least two of three.
type ExitSignals struct {
	EmaBelowVwma bool
	RocNegative  bool
	MacdBearish  bool
}

func (s ExitSignals) ConditionsMet() int {
	count := 0
	for _, condition := range []bool{s.EmaBelowVwma, s.RocNegative, s.MacdBearish} {
		if condition {
			count++
		}
	}

	return count
}

type TradePnl struct {
	EntryPrice float64
	ExitPrice  float64
	ProfitLoss float64
}

// TradeSignalEvent is published on the event bus whenever a position opens
// or closes. Exit events additionally carry the realized P&L.
type TradeSignalEvent struct {
	Action       TradeAction
	OptionSymbol OptionSymbol
	Timeframe    Timeframe
	Price        float64
	Entry        *EntrySignals
	Exit         *ExitSignals
	Pnl          *TradePnl
}
