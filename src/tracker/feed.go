package tracker

import (
	"context"
	"time"

	"options-tracker/src/eventmodels"
)

// MarketDataFeed is the upstream price feed boundary. The production
// implementation lives in eventservices; tests substitute a stub.
type MarketDataFeed interface {
	GetDailyOpen(ctx context.Context, symbol eventmodels.StockSymbol, date time.Time) (float64, error)
	ListMinuteCandles(ctx context.Context, symbol eventmodels.OptionSymbol, from, to time.Time) ([]eventmodels.Candle, error)
}
