package tracker

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"options-tracker/src/eventmodels"
)

// TradeLedger accumulates closed trades. Records are append-only; nothing
// is ever removed or amended.
type TradeLedger struct {
	trades []eventmodels.Trade
}

func NewTradeLedger() *TradeLedger {
	return &TradeLedger{}
}

func (l *TradeLedger) Append(trade eventmodels.Trade) {
	l.trades = append(l.trades, trade)
}

// Trades returns a copy of the recorded trades.
func (l *TradeLedger) Trades() []eventmodels.Trade {
	out := make([]eventmodels.Trade, len(l.trades))
	copy(out, l.trades)
	return out
}

func (l *TradeLedger) Len() int {
	return len(l.trades)
}

type LedgerSummary struct {
	TotalTrades     int
	WinCount        int
	LossCount       int
	WinRate         float64
	TotalProfitLoss float64
	AvgProfitLoss   float64
	MaxProfit       float64
	MaxLoss         float64
}

// Summary derives the run statistics. A trade with zero P&L counts as a
// win.
func (l *TradeLedger) Summary() (LedgerSummary, error) {
	if len(l.trades) == 0 {
		return LedgerSummary{}, nil
	}

	summary := LedgerSummary{
		TotalTrades: len(l.trades),
	}

	profitLosses := make([]float64, 0, len(l.trades))
	for _, trade := range l.trades {
		profitLosses = append(profitLosses, trade.ProfitLoss)

		if trade.IsWin() {
			summary.WinCount++
		} else {
			summary.LossCount++
		}
	}

	summary.WinRate = float64(summary.WinCount) / float64(summary.TotalTrades)

	total, err := stats.Sum(profitLosses)
	if err != nil {
		return LedgerSummary{}, fmt.Errorf("Summary: failed to sum profit/loss: %w", err)
	}
	summary.TotalProfitLoss = total

	mean, err := stats.Mean(profitLosses)
	if err != nil {
		return LedgerSummary{}, fmt.Errorf("Summary: failed to average profit/loss: %w", err)
	}
	summary.AvgProfitLoss = mean

	max, err := stats.Max(profitLosses)
	if err != nil {
		return LedgerSummary{}, fmt.Errorf("Summary: failed to find max profit: %w", err)
	}
	summary.MaxProfit = max

	min, err := stats.Min(profitLosses)
	if err != nil {
		return LedgerSummary{}, fmt.Errorf("Summary: failed to find max loss: %w", err)
	}
	summary.MaxLoss = min

	return summary, nil
}
