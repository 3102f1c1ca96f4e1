package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictNext(t *testing.T) {
	t.Run("seasonal model", func(t *testing.T) {
		data := weeklySeries(30)
		predictions := PredictNext(data, 7, 7)

		require.Len(t, predictions, 7)
		for i, p := range predictions {
			assert.GreaterOrEqual(t, p.PredictedValue, 0.0, "step %d", i)
			assert.LessOrEqual(t, p.LowerBound, p.PredictedValue, "step %d", i)
			assert.GreaterOrEqual(t, p.Confidence, 0.6)
			assert.LessOrEqual(t, p.Confidence, 1.0)
			assert.Equal(t, p.PredictedValue, float64(int64(p.PredictedValue)), "whole units")
		}

		// Confidence decays 0.05 per step from 1.0.
		assert.Equal(t, 1.0, predictions[0].Confidence)
		assert.InDelta(t, 0.95, predictions[1].Confidence, 1e-10)
	})

	t.Run("rising series predicts increasing trend", func(t *testing.T) {
		data := make([]float64, 30)
		for i := range data {
			data[i] = 10 + float64(i)*3
		}
		predictions := PredictNext(data, 3, 7)
		require.NotEmpty(t, predictions)
		for _, p := range predictions {
			assert.Equal(t, TrendIncreasing, p.Trend)
		}
	})

	t.Run("short history falls back to simple model", func(t *testing.T) {
		data := []float64{10, 11, 12, 11, 10}
		got := PredictNext(data, 4, 7)
		want := PredictSimple(data, 4)
		assert.Equal(t, want, got)
	})

	t.Run("zero season length falls back", func(t *testing.T) {
		data := weeklySeries(30)
		got := PredictNext(data, 2, 0)
		want := PredictSimple(data, 2)
		assert.Equal(t, want, got)
	})
}

func TestPredictSimple(t *testing.T) {
	t.Run("empty history yields no forecasts", func(t *testing.T) {
		assert.Empty(t, PredictSimple(nil, 5))
	})

	t.Run("confidence decays to the 0.5 floor", func(t *testing.T) {
		data := []float64{10, 12, 11, 13, 12}
		predictions := PredictSimple(data, 10)

		require.Len(t, predictions, 10)
		assert.Equal(t, 1.0, predictions[0].Confidence)
		assert.InDelta(t, 0.92, predictions[1].Confidence, 1e-10)
		assert.Equal(t, 0.5, predictions[9].Confidence)
	})

	t.Run("flat history reads as stable", func(t *testing.T) {
		data := []float64{20, 20, 20, 20, 20, 20}
		predictions := PredictSimple(data, 2)
		require.NotEmpty(t, predictions)
		for _, p := range predictions {
			assert.Equal(t, TrendStable, p.Trend)
			assert.Equal(t, 20.0, p.PredictedValue)
		}
	})

	t.Run("values clamp at zero", func(t *testing.T) {
		data := []float64{50, 40, 30, 20, 10, 0}
		predictions := PredictSimple(data, 8)
		for _, p := range predictions {
			assert.GreaterOrEqual(t, p.PredictedValue, 0.0)
			assert.GreaterOrEqual(t, p.LowerBound, 0.0)
		}
	})
}
