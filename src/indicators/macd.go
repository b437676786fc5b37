package indicators

type Macd struct {
	fast      *Ema
	slow      *Ema
	signalEma *Ema
}

type MacdResult struct {
	Fast   float64
	Slow   float64
	Line   float64
	Signal float64
}

func NewMacd(fastPeriod, slowPeriod, signalPeriod int) *Macd {
	return &Macd{
		fast:      NewEma(fastPeriod),
		slow:      NewEma(slowPeriod),
		signalEma: NewEma(signalPeriod),
	}
}

// Update advances the fast and slow averages and smooths the resulting MACD
// line. The signal average seeds on the first line value.
func (m *Macd) Update(value float64) MacdResult {
	fast := m.fast.Update(value)
	slow := m.slow.Update(value)
	line := fast - slow

	return MacdResult{
		Fast:   fast,
		Slow:   slow,
		Line:   line,
		Signal: m.signalEma.Update(line),
	}
}
