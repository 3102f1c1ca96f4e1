package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Run("obvious outlier is flagged by multiple methods", func(t *testing.T) {
		data := []float64{10, 11, 10.5, 11.2, 10.8, 100.0, 10.9, 11.1, 10.7, 11.0}
		anomalies := Detect(data, 2.0)

		require.NotEmpty(t, anomalies)

		var hit *Anomaly
		for i := range anomalies {
			if anomalies[i].Index == 5 {
				hit = &anomalies[i]
			}
		}
		require.NotNil(t, hit, "value 100.0 at index 5 must be flagged")
		assert.InDelta(t, 100.0, hit.Value, 0.1)
		assert.Equal(t, SeverityHigh, hit.Severity)
		assert.GreaterOrEqual(t, len(hit.Methods), 2)
		assert.Positive(t, hit.DeviationPercent)
	})

	t.Run("clean series yields nothing", func(t *testing.T) {
		data := []float64{10, 10.1, 9.9, 10.2, 9.8, 10.0, 10.1, 9.9}
		assert.Empty(t, Detect(data, 3.0))
	})

	t.Run("short series yields nothing", func(t *testing.T) {
		assert.Empty(t, Detect([]float64{1, 100}, 2.0))
	})

	t.Run("constant series yields nothing", func(t *testing.T) {
		assert.Empty(t, Detect([]float64{5, 5, 5, 5, 5, 5}, 2.0))
	})

	t.Run("early outlier is still caught without the moving average", func(t *testing.T) {
		// Index 0 precedes any full moving-average window, so only the
		// z-score and IQR methods can see it.
		data := []float64{100.0, 10, 11, 10.5, 11.2, 10.8, 10.9, 11.1, 10.7, 11.0}
		anomalies := Detect(data, 2.0)

		var hit *Anomaly
		for i := range anomalies {
			if anomalies[i].Index == 0 {
				hit = &anomalies[i]
			}
		}
		require.NotNil(t, hit)
		assert.NotContains(t, hit.Methods, "moving-avg")
	})

	t.Run("results are ordered by index", func(t *testing.T) {
		data := []float64{10, 11, 10.5, 200, 10.8, 10.9, 11.1, 300, 10.7, 11.0, 10.9, 11.2}
		anomalies := Detect(data, 1.5)
		for i := 1; i < len(anomalies); i++ {
			assert.Greater(t, anomalies[i].Index, anomalies[i-1].Index)
		}
	})
}

func TestMethodSet(t *testing.T) {
	var s methodSet
	assert.True(t, s.empty())
	assert.Nil(t, s.names())

	s.add(MethodIQR)
	s.add(MethodZScore)
	assert.Equal(t, 2, s.count())
	assert.Equal(t, []string{"z-score", "iqr"}, s.names())

	s.add(MethodMovingAverage)
	assert.Equal(t, []string{"z-score", "iqr", "moving-avg"}, s.names())
}
