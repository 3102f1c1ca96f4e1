package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTrendChanges(t *testing.T) {
	t.Run("trend reversal is detected", func(t *testing.T) {
		var data []float64
		for i := 0; i < 20; i++ {
			data = append(data, 10+float64(i)*0.5)
		}
		for i := 0; i < 20; i++ {
			data = append(data, 20-float64(i)*0.5)
		}

		changes := DetectTrendChanges(data, 5)
		require.NotEmpty(t, changes)
		for _, c := range changes {
			assert.True(t, c.Significant)
			assert.Greater(t, c.ChangePercent, 50.0)
		}
	})

	t.Run("steady trend yields nothing", func(t *testing.T) {
		var data []float64
		for i := 0; i < 30; i++ {
			data = append(data, 5+float64(i)*2)
		}
		assert.Empty(t, DetectTrendChanges(data, 5))
	})

	t.Run("flat series yields nothing", func(t *testing.T) {
		data := make([]float64, 30)
		for i := range data {
			data[i] = 7
		}
		assert.Empty(t, DetectTrendChanges(data, 5))
	})

	t.Run("trend emerging from flat counts as full change", func(t *testing.T) {
		var data []float64
		for i := 0; i < 10; i++ {
			data = append(data, 10)
		}
		for i := 0; i < 10; i++ {
			data = append(data, 10+float64(i)*3)
		}

		changes := DetectTrendChanges(data, 5)
		require.NotEmpty(t, changes)

		found := false
		for _, c := range changes {
			if c.OldTrend == 0 && c.NewTrend != 0 {
				found = true
				assert.Equal(t, 100.0, c.ChangePercent)
			}
		}
		assert.True(t, found)
	})

	t.Run("short series yields nothing", func(t *testing.T) {
		assert.Empty(t, DetectTrendChanges([]float64{1, 2, 3}, 5))
	})

	t.Run("invalid window yields nothing", func(t *testing.T) {
		assert.Empty(t, DetectTrendChanges([]float64{1, 2, 3, 4}, 0))
	})
}
