package eventservices

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	log "github.com/sirupsen/logrus"

	"options-tracker/src/eventmodels"
)

const listAggsLimit = 50000

// PolygonMarketDataFeed supplies daily open prices and 1-minute aggregate
// bars. Only the 1-minute granularity is ever fetched; coarser timeframes
// are derived locally.
type PolygonMarketDataFeed struct {
	client *polygon.Client
}

func NewPolygonMarketDataFeed(apiKey string) *PolygonMarketDataFeed {
	return &PolygonMarketDataFeed{
		client: polygon.New(apiKey),
	}
}

func (f *PolygonMarketDataFeed) GetDailyOpen(ctx context.Context, symbol eventmodels.StockSymbol, date time.Time) (float64, error) {
	params := models.GetDailyOpenCloseAggParams{
		Ticker: symbol.String(),
		Date:   models.Date(date),
	}.WithAdjusted(true)

	resp, err := f.client.GetDailyOpenCloseAgg(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("GetDailyOpen: failed to fetch daily open for %s: %w", symbol, err)
	}

	log.Debugf("GetDailyOpen: %s opened at %.4f on %s", symbol, resp.Open, date.Format("2006-01-02"))

	return resp.Open, nil
}

// ListMinuteCandles drains the aggregates iterator completely before
// returning; a partially consumed page is never handed to the caller.
func (f *PolygonMarketDataFeed) ListMinuteCandles(ctx context.Context, symbol eventmodels.OptionSymbol, from, to time.Time) ([]eventmodels.Candle, error) {
	params := models.ListAggsParams{
		Ticker:     symbol.WithPrefix(),
		Multiplier: 1,
		Timespan:   models.Minute,
		From:       models.Millis(from),
		To:         models.Millis(to),
	}.WithOrder(models.Asc).WithAdjusted(true).WithLimit(listAggsLimit)

	iter := f.client.ListAggs(ctx, params)

	var candles []eventmodels.Candle
	for iter.Next() {
		item := iter.Item()

		candles = append(candles, eventmodels.Candle{
			Timestamp: time.Time(item.Timestamp).UTC(),
			Open:      item.Open,
			High:      item.High,
			Low:       item.Low,
			Close:     item.Close,
			Volume:    item.Volume,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("ListMinuteCandles: failed to fetch minute aggs for %s: %w", symbol, err)
	}

	log.Debugf("ListMinuteCandles: fetched %d candles for %s", len(candles), symbol)

	return candles, nil
}
