package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	t.Run("known series", func(t *testing.T) {
		data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
		s := Describe(data)

		assert.Equal(t, 8, s.Count)
		assert.InDelta(t, 5, s.Mean, 1e-10)
		assert.InDelta(t, 2.138, s.StdDev, 0.01)
		assert.Equal(t, 2.0, s.Min)
		assert.Equal(t, 9.0, s.Max)
		assert.InDelta(t, 4.5, s.Median, 1e-10)
		assert.InDelta(t, 4, s.Q1, 1e-10)
		assert.InDelta(t, 5.5, s.Q3, 1e-10)
		assert.InDelta(t, 1.5, s.IQR, 1e-10)
	})

	t.Run("quartile ordering holds", func(t *testing.T) {
		s := Describe([]float64{9, 1, 6, 3, 8, 2, 7, 4, 5})
		require.NotZero(t, s.Count)
		assert.LessOrEqual(t, s.Q1, s.Median)
		assert.LessOrEqual(t, s.Median, s.Q3)
		assert.GreaterOrEqual(t, s.IQR, 0.0)
	})

	t.Run("empty series is the zero record", func(t *testing.T) {
		assert.Equal(t, DescriptiveStats{}, Describe(nil))
	})

	t.Run("constant series has no shape statistics", func(t *testing.T) {
		s := Describe([]float64{5, 5, 5, 5, 5})
		assert.Zero(t, s.StdDev)
		assert.Zero(t, s.Skewness)
		assert.Zero(t, s.Kurtosis)
	})

	t.Run("skewness needs more than two points", func(t *testing.T) {
		s := Describe([]float64{1, 9})
		assert.Zero(t, s.Skewness)
	})

	t.Run("kurtosis needs more than three points", func(t *testing.T) {
		s := Describe([]float64{1, 5, 9})
		assert.Zero(t, s.Kurtosis)
	})

	t.Run("right skewed series has positive skewness", func(t *testing.T) {
		s := Describe([]float64{1, 2, 2, 3, 3, 3, 50})
		assert.Positive(t, s.Skewness)
	})
}
