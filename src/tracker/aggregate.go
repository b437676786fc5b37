package tracker

import (
	"time"

	"options-tracker/src/eventmodels"
)

// AggregateCandles resamples a 1-minute series into fixed wall-clock-aligned
// buckets: open of the first candle, max high, min low, close of the last
// candle, summed volume. Buckets with no source candles are dropped. The
// result is deterministic, so re-deriving from an unchanged series yields
// identical output.
func AggregateCandles(candles []eventmodels.Candle, window time.Duration) []eventmodels.Candle {
	var out []eventmodels.Candle
	var bucketStart time.Time

	for _, c := range candles {
		start := c.Timestamp.Truncate(window)

		if len(out) == 0 || !start.Equal(bucketStart) {
			bucketStart = start
			out = append(out, eventmodels.Candle{
				Timestamp: start,
				Open:      c.Open,
				High:      c.High,
				Low:       c.Low,
				Close:     c.Close,
				Volume:    c.Volume,
			})
			continue
		}

		bucket := &out[len(out)-1]
		if c.High > bucket.High {
			bucket.High = c.High
		}
		if c.Low < bucket.Low {
			bucket.Low = c.Low
		}
		bucket.Close = c.Close
		bucket.Volume += c.Volume
	}

	return out
}

// DeriveTimeframes produces the 5- and 10-minute series from the 1-minute
// series. Derived timeframes are never fetched upstream.
func DeriveTimeframes(oneMinute []eventmodels.Candle) (fiveMinute, tenMinute []eventmodels.Candle) {
	fiveMinute = AggregateCandles(oneMinute, eventmodels.Timeframe5Min.Duration())
	tenMinute = AggregateCandles(oneMinute, eventmodels.Timeframe10Min.Duration())
	return fiveMinute, tenMinute
}
