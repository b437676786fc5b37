package indicators

import (
	"options-tracker/src/eventmodels"
)

const (
	emaFastSpan    = 7
	vwmaSpan       = 17
	macdFastSpan   = 12
	macdSlowSpan   = 26
	macdSignalSpan = 9
	rocLookback    = 8
)

// Row is a candle augmented with the derived indicator columns. Roc8 is nil
// until enough history exists.
//
// Vwma17 reproduces the tracked strategy's formula verbatim: an EMA(17) of
// the close with no volume weighting, despite the name. Changing it to a
// true VWMA changes every entry and exit decision.
type Row struct {
	eventmodels.Candle
	Ema7       float64
	Vwma17     float64
	Ema12      float64
	Ema26      float64
	MacdLine   float64
	MacdSignal float64
	Roc8       *float64
}

// Compute derives all indicator columns over the full series. The series is
// bounded by one trading session, so every call recomputes from the first
// candle; an incremental update would have to seed the averages identically
// to stay numerically equal.
func Compute(candles []eventmodels.Candle) []Row {
	ema7 := NewEma(emaFastSpan)
	vwma17 := NewEma(vwmaSpan)
	macd := NewMacd(macdFastSpan, macdSlowSpan, macdSignalSpan)
	roc8 := NewRoc(rocLookback)

	rows := make([]Row, 0, len(candles))
	for _, c := range candles {
		macdResult := macd.Update(c.Close)

		rows = append(rows, Row{
			Candle:     c,
			Ema7:       ema7.Update(c.Close),
			Vwma17:     vwma17.Update(c.Close),
			Ema12:      macdResult.Fast,
			Ema26:      macdResult.Slow,
			MacdLine:   macdResult.Line,
			MacdSignal: macdResult.Signal,
			Roc8:       roc8.Update(c.Close),
		})
	}

	return rows
}
