package eventmodels

import "time"

type Timeframe string

const (
	Timeframe1Min  Timeframe = "1min"
	Timeframe5Min  Timeframe = "5min"
	Timeframe10Min Timeframe = "10min"
)

// AllTimeframes returns the tracked timeframes in evaluation order.
func AllTimeframes() []Timeframe {
	return []Timeframe{Timeframe1Min, Timeframe5Min, Timeframe10Min}
}

func (tf Timeframe) Duration() time.Duration {
	switch tf {
	case Timeframe1Min:
		return 1 * time.Minute
	case Timeframe5Min:
		return 5 * time.Minute
	case Timeframe10Min:
		return 10 * time.Minute
	}

	return 0
}

func (tf Timeframe) String() string {
	return string(tf)
}
