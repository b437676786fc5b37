package tracker

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"options-tracker/src/eventmodels"
)

// CandleStore owns the ordered 1-minute candle history for one option
// symbol. Timestamps are strictly increasing; candles at or before the last
// stored timestamp are discarded on ingest, which makes re-fetches
// idempotent.
type CandleStore struct {
	symbol  eventmodels.OptionSymbol
	candles []eventmodels.Candle
}

func NewCandleStore(symbol eventmodels.OptionSymbol) *CandleStore {
	return &CandleStore{
		symbol: symbol,
	}
}

func (s *CandleStore) Symbol() eventmodels.OptionSymbol {
	return s.symbol
}

func (s *CandleStore) IsEmpty() bool {
	return len(s.candles) == 0
}

// Candles returns the stored series. Callers treat it as read-only.
func (s *CandleStore) Candles() []eventmodels.Candle {
	return s.candles
}

func (s *CandleStore) LastTimestamp() (time.Time, bool) {
	if len(s.candles) == 0 {
		return time.Time{}, false
	}

	return s.candles[len(s.candles)-1].Timestamp, true
}

// Seed replaces the series with previously persisted candles, dropping any
// that are out of order.
func (s *CandleStore) Seed(candles []eventmodels.Candle) {
	s.candles = nil
	s.candles = appendMonotonic(s.candles, candles)
}

// Ingest fetches new candles from the feed and appends them. An empty store
// fetches the full [from, to] range; a non-empty store fetches from the last
// stored timestamp onward. On feed failure the store is left unmodified and
// a DataFetchError is returned. A fetch that yields nothing new is not an
// error.
func (s *CandleStore) Ingest(ctx context.Context, feed MarketDataFeed, from, to time.Time) ([]eventmodels.Candle, error) {
	fetchFrom := from
	if last, ok := s.LastTimestamp(); ok {
		fetchFrom = last
	}

	fetched, err := feed.ListMinuteCandles(ctx, s.symbol, fetchFrom, to)
	if err != nil {
		return nil, &eventmodels.DataFetchError{Symbol: s.symbol, Err: err}
	}

	before := len(s.candles)
	s.candles = appendMonotonic(s.candles, fetched)
	appended := s.candles[before:]

	if len(appended) == 0 {
		log.Debugf("CandleStore.Ingest: no new candles for %s", s.symbol)
	}

	return appended, nil
}

func appendMonotonic(series, candles []eventmodels.Candle) []eventmodels.Candle {
	for _, c := range candles {
		if len(series) > 0 && !c.Timestamp.After(series[len(series)-1].Timestamp) {
			continue
		}

		series = append(series, c)
	}

	return series
}
