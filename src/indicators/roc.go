package indicators

// Roc is the rate of change over Period observations:
// (close_t - close_{t-n}) / close_{t-n}. It has no value until Period
// observations precede the current one.
type Roc struct {
	Period int
	closes []float64
}

func NewRoc(period int) *Roc {
	return &Roc{
		Period: period,
	}
}

func (r *Roc) Update(value float64) *float64 {
	r.closes = append(r.closes, value)
	if len(r.closes) > r.Period+1 {
		r.closes = r.closes[1:]
	}

	if len(r.closes) <= r.Period {
		return nil
	}

	prev := r.closes[0]
	roc := (value - prev) / prev

	return &roc
}
