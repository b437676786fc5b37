package tracker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"options-tracker/src/eventmodels"
	"options-tracker/src/eventpubsub"
	"options-tracker/src/indicators"
	"options-tracker/src/utils"
)

type Mode string

const (
	ModeLive     Mode = "live"
	ModeBacktest Mode = "backtest"
)

type Config struct {
	Mode        Mode
	Underlying  eventmodels.StockSymbol
	RoundStrike bool
	Notify      bool
	DataDir     string
}

// OptionsTracker runs the bar-aggregation -> indicator -> signal ->
// position-state pipeline for a small set of short-dated contracts.
// Processing is strictly sequential per symbol, per timeframe.
type OptionsTracker struct {
	cfg       Config
	feed      MarketDataFeed
	repo      *CsvRepository
	positions *PositionTracker
	ledger    *TradeLedger
	stores    []*CandleStore
}

func NewOptionsTracker(cfg Config, feed MarketDataFeed) (*OptionsTracker, error) {
	if cfg.Mode != ModeLive && cfg.Mode != ModeBacktest {
		return nil, fmt.Errorf("NewOptionsTracker: invalid mode %q", cfg.Mode)
	}

	if cfg.Underlying == "" {
		return nil, fmt.Errorf("NewOptionsTracker: missing underlying symbol")
	}

	repo, err := NewCsvRepository(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("NewOptionsTracker: %w", err)
	}

	return &OptionsTracker{
		cfg:    cfg,
		feed:   feed,
		repo:   repo,
		ledger: NewTradeLedger(),
	}, nil
}

// Initialize selects the contracts for the run: the ATM strike from the
// underlying's daily open (rounded when RoundStrike is set) plus a second
// strike one dollar below, a call and a put for each. Position state is
// created fresh; an invalid contract aborts the run.
func (t *OptionsTracker) Initialize(ctx context.Context, asOf time.Time) error {
	open, err := t.feed.GetDailyOpen(ctx, t.cfg.Underlying, asOf)
	if err != nil {
		return fmt.Errorf("Initialize: failed to fetch daily open for %s: %w", t.cfg.Underlying, err)
	}

	strike := open
	if t.cfg.RoundStrike {
		strike = math.Round(open)
	}

	expiry := eventmodels.NextExpiry(asOf)

	var symbols []eventmodels.OptionSymbol
	for _, strikePrice := range []float64{strike, strike - 1} {
		for _, optionType := range []string{"C", "P"} {
			symbol, err := eventmodels.NewOptionSymbol(eventmodels.OptionSymbolComponents{
				Underlying:  t.cfg.Underlying.String(),
				Expiration:  expiry,
				OptionType:  optionType,
				StrikePrice: strikePrice,
			})
			if err != nil {
				return fmt.Errorf("Initialize: invalid contract configuration: %w", err)
			}

			symbols = append(symbols, symbol)
		}
	}

	t.positions = NewPositionTracker(symbols)
	t.ledger = NewTradeLedger()

	t.stores = nil
	for _, symbol := range symbols {
		store := NewCandleStore(symbol)

		if t.cfg.Mode == ModeLive {
			candles, err := t.repo.LoadCandles(symbol, eventmodels.Timeframe1Min)
			if err != nil {
				log.Warnf("Initialize: failed to load history for %s, starting empty: %v", symbol, err)
			} else {
				store.Seed(candles)
			}
		}

		t.stores = append(t.stores, store)
	}

	log.Infof("Initialize: tracking %d contracts on %s expiring %s (strike %.2f)", len(symbols), t.cfg.Underlying, expiry.Format("2006-01-02"), strike)

	return nil
}

func (t *OptionsTracker) Symbols() []eventmodels.OptionSymbol {
	symbols := make([]eventmodels.OptionSymbol, 0, len(t.stores))
	for _, store := range t.stores {
		symbols = append(symbols, store.Symbol())
	}

	return symbols
}

func (t *OptionsTracker) Ledger() *TradeLedger {
	return t.ledger
}

func (t *OptionsTracker) Positions() *PositionTracker {
	return t.positions
}

// RunCycle executes one pipeline pass over the given range; the bounds are
// normalized, so callers may pass them in either order. A feed failure skips
// that symbol for the cycle and leaves its store untouched; everything else
// degrades to log-and-continue.
func (t *OptionsTracker) RunCycle(ctx context.Context, from, to time.Time) error {
	if t.positions == nil {
		return fmt.Errorf("RunCycle: tracker not initialized")
	}

	start := utils.GetMinTime(from, to)
	end := utils.GetMaxTime(from, to)

	for _, store := range t.stores {
		if err := t.processSymbol(ctx, store, start, end); err != nil {
			var fetchErr *eventmodels.DataFetchError
			if errors.As(err, &fetchErr) {
				log.Errorf("RunCycle: skipping %s this cycle: %v", store.Symbol(), err)
				continue
			}

			return err
		}
	}

	return nil
}

func (t *OptionsTracker) processSymbol(ctx context.Context, store *CandleStore, from, to time.Time) error {
	symbol := store.Symbol()

	wasEmpty := store.IsEmpty()
	appended, err := store.Ingest(ctx, t.feed, from, to)
	if err != nil {
		return err
	}

	if wasEmpty {
		if err := t.repo.SaveCandles(symbol, eventmodels.Timeframe1Min, store.Candles()); err != nil {
			log.Errorf("processSymbol: %v", err)
		}
	} else if len(appended) > 0 {
		if err := t.repo.AppendCandles(symbol, eventmodels.Timeframe1Min, appended); err != nil {
			log.Errorf("processSymbol: %v", err)
		}
	}

	if store.IsEmpty() {
		log.Warnf("processSymbol: no candles available for %s", symbol)
		return nil
	}

	fiveMinute, tenMinute := DeriveTimeframes(store.Candles())

	if err := t.repo.SaveCandles(symbol, eventmodels.Timeframe5Min, fiveMinute); err != nil {
		log.Errorf("processSymbol: %v", err)
	}

	if err := t.repo.SaveCandles(symbol, eventmodels.Timeframe10Min, tenMinute); err != nil {
		log.Errorf("processSymbol: %v", err)
	}

	series := []struct {
		timeframe eventmodels.Timeframe
		candles   []eventmodels.Candle
	}{
		{eventmodels.Timeframe1Min, store.Candles()},
		{eventmodels.Timeframe5Min, fiveMinute},
		{eventmodels.Timeframe10Min, tenMinute},
	}

	for _, s := range series {
		rows := indicators.Compute(s.candles)
		if len(rows) == 0 {
			continue
		}

		t.evaluate(symbol, s.timeframe, rows[len(rows)-1])
	}

	return nil
}

// evaluate applies the entry rule then the exit rule to the latest row of
// one timeframe. Both rules read the same row; each exit condition is the
// strict negation of its entry counterpart, so a position opened here
// cannot close in the same pass.
func (t *OptionsTracker) evaluate(symbol eventmodels.OptionSymbol, timeframe eventmodels.Timeframe, row indicators.Row) {
	if !CanEvaluate(row) {
		log.Debugf("evaluate: insufficient history for %s (%s), skipping", symbol, timeframe)
		return
	}

	key := PositionKey{OptionSymbol: symbol, Timeframe: timeframe}

	if !t.positions.IsOpen(key) {
		if fire, signals := CheckEntrySignal(row); fire {
			if err := t.positions.OpenPosition(key, row.Close); err != nil {
				log.Errorf("evaluate: %v", err)
				return
			}

			log.Infof("ENTRY: %s (%s) at $%.4f", symbol, timeframe, row.Close)

			t.publish(eventmodels.TradeSignalEvent{
				Action:       eventmodels.TradeActionEntry,
				OptionSymbol: symbol,
				Timeframe:    timeframe,
				Price:        row.Close,
				Entry:        &signals,
			})
		}
	}

	if t.positions.IsOpen(key) {
		if fire, signals := CheckExitSignal(row); fire {
			trade, err := t.positions.ClosePosition(key, row.Close)
			if err != nil {
				log.Errorf("evaluate: %v", err)
				return
			}

			t.ledger.Append(trade)

			if err := t.repo.AppendTrade(trade); err != nil {
				log.Errorf("evaluate: failed to persist trade: %v", err)
			}

			status := "LOSS"
			if trade.IsWin() {
				status = "PROFIT"
			}

			log.Infof("EXIT: %s (%s) at $%.4f - %s: $%.4f", symbol, timeframe, row.Close, status, trade.ProfitLoss)

			t.publish(eventmodels.TradeSignalEvent{
				Action:       eventmodels.TradeActionExit,
				OptionSymbol: symbol,
				Timeframe:    timeframe,
				Price:        row.Close,
				Exit:         &signals,
				Pnl: &eventmodels.TradePnl{
					EntryPrice: trade.EntryPrice,
					ExitPrice:  trade.ExitPrice,
					ProfitLoss: trade.ProfitLoss,
				},
			})
		}
	}
}

func (t *OptionsTracker) publish(event eventmodels.TradeSignalEvent) {
	if !t.cfg.Notify {
		return
	}

	eventpubsub.PublishTradeSignal(event)
}
