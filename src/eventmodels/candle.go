package eventmodels

import (
	"time"
)

type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// UnixMilli returns the candle timestamp as a millisecond epoch, the
// representation used on the wire and in the CSV files.
func (c Candle) UnixMilli() int64 {
	return c.Timestamp.UnixMilli()
}

func NewCandleFromMilli(timestamp int64, open, high, low, close, volume float64) Candle {
	return Candle{
		Timestamp: time.Unix(0, timestamp*int64(time.Millisecond)).UTC(),
		Open:      open,
		High:      high,
		Low:       low,
		Close:     close,
		Volume:    volume,
	}
}
