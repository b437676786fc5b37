package indicators

// Ema is an exponential moving average with smoothing factor 2/(period+1),
// seeded on the first observation.
type Ema struct {
	Period int
	value  *float64
}

func NewEma(period int) *Ema {
	return &Ema{
		Period: period,
	}
}

func (e *Ema) Alpha() float64 {
	return 2.0 / (float64(e.Period) + 1.0)
}

func (e *Ema) Update(value float64) float64 {
	if e.value == nil {
		e.value = &value
		return value
	}

	alpha := e.Alpha()
	next := alpha*value + (1.0-alpha)*(*e.value)
	e.value = &next

	return next
}
