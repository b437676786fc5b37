package eventmodels

// CsvCandleDTO is the persisted row format: millisecond epoch timestamp
// followed by OHLCV. The 1-minute file is the append-only source of truth;
// 5- and 10-minute files are regenerated from it each cycle.
type CsvCandleDTO struct {
	Timestamp int64   `csv:"timestamp"`
	Open      float64 `csv:"open"`
	High      float64 `csv:"high"`
	Low       float64 `csv:"low"`
	Close     float64 `csv:"close"`
	Volume    float64 `csv:"volume"`
}

func (d *CsvCandleDTO) ToModel() Candle {
	return NewCandleFromMilli(d.Timestamp, d.Open, d.High, d.Low, d.Close, d.Volume)
}

func NewCsvCandleDTO(c Candle) *CsvCandleDTO {
	return &CsvCandleDTO{
		Timestamp: c.UnixMilli(),
		Open:      c.Open,
		High:      c.High,
		Low:       c.Low,
		Close:     c.Close,
		Volume:    c.Volume,
	}
}
