package tracker

import (
	"options-tracker/src/eventmodels"
	"options-tracker/src/indicators"
)

// CanEvaluate reports whether the row carries every indicator the rules
// need. A row with insufficient history is skipped for the cycle; no entry
// or exit transition happens and no error is surfaced.
func CanEvaluate(row indicators.Row) bool {
	return row.Roc8 != nil
}

// CheckEntrySignal evaluates the bullish conjunction on a single row:
// EMA(7) above VWMA(17), positive ROC(8), and MACD line above its signal.
// All three must hold.
func CheckEntrySignal(row indicators.Row) (bool, eventmodels.EntrySignals) {
	signals := eventmodels.EntrySignals{
		EmaAboveVwma: row.Ema7 > row.Vwma17,
		RocPositive:  row.Roc8 != nil && *row.Roc8 > 0,
		MacdBullish:  row.MacdLine > row.MacdSignal,
	}

	return signals.AllMet(), signals
}

// CheckExitSignal evaluates the bearish majority on a single row: at least
// two of EMA(7) below VWMA(17), negative ROC(8), and MACD line below its
// signal. Each condition is the strict negation of its entry counterpart,
// so a position opened against a row can never close against that same row.
func CheckExitSignal(row indicators.Row) (bool, eventmodels.ExitSignals) {
	signals := eventmodels.ExitSignals{
		EmaBelowVwma: row.Ema7 < row.Vwma17,
		RocNegative:  row.Roc8 != nil && *row.Roc8 < 0,
		MacdBearish:  row.MacdLine < row.MacdSignal,
	}

	return signals.ConditionsMet() >= 2, signals
}
