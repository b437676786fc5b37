package tracker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"options-tracker/src/eventmodels"
)

// CsvRepository persists candle and trade files under one data directory.
// Writes are best-effort: the pipeline logs persistence failures and keeps
// going, since the next cycle regenerates or retries.
type CsvRepository struct {
	dataDir string
}

func NewCsvRepository(dataDir string) (*CsvRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("NewCsvRepository: failed to create data dir %s: %w", dataDir, err)
	}

	return &CsvRepository{
		dataDir: dataDir,
	}, nil
}

func (r *CsvRepository) candleFile(symbol eventmodels.OptionSymbol, timeframe eventmodels.Timeframe) string {
	return filepath.Join(r.dataDir, fmt.Sprintf("%s_%s.csv", symbol.NoPrefix(), timeframe))
}

func (r *CsvRepository) tradeFile(symbol eventmodels.OptionSymbol, timeframe eventmodels.Timeframe) string {
	return filepath.Join(r.dataDir, fmt.Sprintf("%s_%s_entry_exit.csv", symbol.NoPrefix(), timeframe))
}

// SaveCandles rewrites the whole file for the given timeframe. The derived
// 5- and 10-minute files are regenerated this way every cycle.
func (r *CsvRepository) SaveCandles(symbol eventmodels.OptionSymbol, timeframe eventmodels.Timeframe, candles []eventmodels.Candle) error {
	rows := make([]*eventmodels.CsvCandleDTO, 0, len(candles))
	for _, c := range candles {
		rows = append(rows, eventmodels.NewCsvCandleDTO(c))
	}

	file, err := os.Create(r.candleFile(symbol, timeframe))
	if err != nil {
		return fmt.Errorf("SaveCandles: failed to create %s: %w", r.candleFile(symbol, timeframe), err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("SaveCandles: failed to write %s: %w", r.candleFile(symbol, timeframe), err)
	}

	return nil
}

// AppendCandles appends to the 1-minute source-of-truth file, writing the
// header only when the file does not exist yet.
func (r *CsvRepository) AppendCandles(symbol eventmodels.OptionSymbol, timeframe eventmodels.Timeframe, candles []eventmodels.Candle) error {
	if len(candles) == 0 {
		return nil
	}

	fname := r.candleFile(symbol, timeframe)
	if _, err := os.Stat(fname); os.IsNotExist(err) {
		return r.SaveCandles(symbol, timeframe, candles)
	}

	rows := make([]*eventmodels.CsvCandleDTO, 0, len(candles))
	for _, c := range candles {
		rows = append(rows, eventmodels.NewCsvCandleDTO(c))
	}

	file, err := os.OpenFile(fname, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("AppendCandles: failed to open %s: %w", fname, err)
	}
	defer file.Close()

	if err := gocsv.MarshalWithoutHeaders(&rows, file); err != nil {
		return fmt.Errorf("AppendCandles: failed to append to %s: %w", fname, err)
	}

	return nil
}

// LoadCandles rehydrates a previously persisted series. A missing file is
// an empty series, not an error.
func (r *CsvRepository) LoadCandles(symbol eventmodels.OptionSymbol, timeframe eventmodels.Timeframe) ([]eventmodels.Candle, error) {
	fname := r.candleFile(symbol, timeframe)

	file, err := os.Open(fname)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("LoadCandles: failed to open %s: %w", fname, err)
	}
	defer file.Close()

	var rows []*eventmodels.CsvCandleDTO
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("LoadCandles: failed to parse %s: %w", fname, err)
	}

	candles := make([]eventmodels.Candle, 0, len(rows))
	for _, row := range rows {
		candles = append(candles, row.ToModel())
	}

	return candles, nil
}

// AppendTrade appends one closed trade to the per-(symbol, timeframe) trade
// file. Rows are headerless and never rewritten.
func (r *CsvRepository) AppendTrade(trade eventmodels.Trade) error {
	fname := r.tradeFile(trade.OptionSymbol, trade.Timeframe)

	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("AppendTrade: failed to open %s: %w", fname, err)
	}
	defer file.Close()

	rows := []*eventmodels.CsvTradeDTO{trade.ToDTO()}
	if err := gocsv.MarshalWithoutHeaders(&rows, file); err != nil {
		return fmt.Errorf("AppendTrade: failed to append to %s: %w", fname, err)
	}

	return nil
}
