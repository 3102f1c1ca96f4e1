package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleExponentialSmoothing(t *testing.T) {
	t.Run("recurrence", func(t *testing.T) {
		data := []float64{10, 12, 14, 13, 15}
		result := SimpleExponentialSmoothing(data, 0.3)

		require.Len(t, result, len(data))
		assert.Equal(t, 10.0, result[0])
		assert.InDelta(t, 10.6, result[1], 1e-10)
		assert.InDelta(t, 11.62, result[2], 1e-10)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SimpleExponentialSmoothing(nil, 0.3))
	})
}

func TestHoltWinters(t *testing.T) {
	t.Run("output length matches input", func(t *testing.T) {
		data := weeklySeries(28)
		result := HoltWinters(data, 0.3, 0.1, 0.1, 7)
		assert.Len(t, result, len(data))
	})

	t.Run("short history degrades to simple smoothing", func(t *testing.T) {
		data := []float64{10, 12, 14, 13, 15}
		hw := HoltWinters(data, 0.3, 0.1, 0.1, 7)
		ses := SimpleExponentialSmoothing(data, 0.3)
		assert.Equal(t, ses, hw)
	})

	t.Run("invalid season length degrades to simple smoothing", func(t *testing.T) {
		data := weeklySeries(28)
		hw := HoltWinters(data, 0.3, 0.1, 0.1, 0)
		ses := SimpleExponentialSmoothing(data, 0.3)
		assert.Equal(t, ses, hw)
	})

	t.Run("tracks a strongly seasonal series", func(t *testing.T) {
		data := weeklySeries(35)
		result := HoltWinters(data, 0.3, 0.1, 0.1, 7)

		// The in-sample fit should stay in the neighborhood of the data
		// once the seasonal state has warmed up.
		for i := 14; i < len(data); i++ {
			assert.InDelta(t, data[i], result[i], 25)
		}
	})

	t.Run("all zero series stays finite", func(t *testing.T) {
		data := make([]float64, 21)
		result := HoltWinters(data, 0.3, 0.1, 0.1, 7)
		require.Len(t, result, 21)
		for _, v := range result {
			assert.Zero(t, v)
		}
	})
}

func TestTrendSlope(t *testing.T) {
	t.Run("linear ramp", func(t *testing.T) {
		assert.InDelta(t, 2, TrendSlope([]float64{0, 2, 4, 6, 8}), 1e-9)
	})

	t.Run("too short", func(t *testing.T) {
		assert.Zero(t, TrendSlope([]float64{5}))
	})
}

func TestSeasonalPattern(t *testing.T) {
	t.Run("neutral below two cycles", func(t *testing.T) {
		pattern := seasonalPattern([]float64{1, 2, 3, 4, 5}, 7)
		require.Len(t, pattern, 7)
		for _, p := range pattern {
			assert.Equal(t, 1.0, p)
		}
	})

	t.Run("pattern mean is one", func(t *testing.T) {
		pattern := seasonalPattern(weeklySeries(28), 7)
		sum := 0.0
		for _, p := range pattern {
			sum += p
		}
		assert.InDelta(t, 1, sum/7, 1e-9)
	})
}

// weeklySeries builds n observations with a gentle upward drift and a
// seven-slot cycle, the shape the engine sees for daily order volumes.
func weeklySeries(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = 50 + float64(i)*0.5 + float64(i%7)*2
	}
	return data
}
