package eventmodels

import (
	"github.com/google/uuid"
)

// Trade is the immutable record of one closed position. It is created once
// per exit transition and never amended.
type Trade struct {
	ID           uuid.UUID
	OptionSymbol OptionSymbol
	Timeframe    Timeframe
	EntryPrice   float64
	ExitPrice    float64
	ProfitLoss   float64
}

func NewTrade(symbol OptionSymbol, timeframe Timeframe, entryPrice, exitPrice float64) Trade {
	return Trade{
		ID:           uuid.New(),
		OptionSymbol: symbol,
		Timeframe:    timeframe,
		EntryPrice:   entryPrice,
		ExitPrice:    exitPrice,
		ProfitLoss:   exitPrice - entryPrice,
	}
}

// IsWin classifies the trade. A flat trade counts as a win.
func (t Trade) IsWin() bool {
	return t.ProfitLoss >= 0
}

type CsvTradeDTO struct {
	OptionSymbol string  `csv:"symbol"`
	Timeframe    string  `csv:"timeframe"`
	EntryPrice   float64 `csv:"entry_price"`
	ExitPrice    float64 `csv:"exit_price"`
	ProfitLoss   float64 `csv:"profit_loss"`
}

func (t Trade) ToDTO() *CsvTradeDTO {
	return &CsvTradeDTO{
		OptionSymbol: t.OptionSymbol.NoPrefix(),
		Timeframe:    t.Timeframe.String(),
		EntryPrice:   t.EntryPrice,
		ExitPrice:    t.ExitPrice,
		ProfitLoss:   t.ProfitLoss,
	}
}
