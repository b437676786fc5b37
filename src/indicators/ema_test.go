package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEma(t *testing.T) {
	t.Run("seeds on first value", func(t *testing.T) {
		ema := NewEma(7)
		assert.Equal(t, 100.0, ema.Update(100.0))
	})

	t.Run("recurrence is exact", func(t *testing.T) {
		ema := NewEma(7)
		alpha := 2.0 / 8.0

		closes := []float64{100, 101, 99.5, 102.25, 98}
		expected := closes[0]
		for i, c := range closes {
			got := ema.Update(c)
			if i > 0 {
				expected = alpha*c + (1-alpha)*expected
			}
			assert.Equal(t, expected, got)
		}
	})

	t.Run("alpha", func(t *testing.T) {
		assert.Equal(t, 0.25, NewEma(7).Alpha())
		assert.Equal(t, 0.1, NewEma(19).Alpha())
	})
}

func TestRoc(t *testing.T) {
	t.Run("undefined until lookback filled", func(t *testing.T) {
		roc := NewRoc(8)
		for i := 0; i < 8; i++ {
			assert.Nil(t, roc.Update(float64(100+i)))
		}

		val := roc.Update(120)
		assert.NotNil(t, val)
		assert.Equal(t, (120.0-100.0)/100.0, *val)
	})

	t.Run("lookback window slides", func(t *testing.T) {
		roc := NewRoc(2)
		roc.Update(10)
		roc.Update(20)

		val := roc.Update(15)
		assert.NotNil(t, val)
		assert.Equal(t, 0.5, *val)

		val = roc.Update(10)
		assert.NotNil(t, val)
		assert.Equal(t, -0.5, *val)
	})
}
