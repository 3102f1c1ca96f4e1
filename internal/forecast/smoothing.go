package forecast

import (
	"labpulse/internal/stats"
)

// HoltWinters produces the in-sample triple exponential smoothing fit of
// data: one fitted value per observation, not future values.
//
// alpha, beta and gamma are the level, trend and seasonal smoothing
// parameters in [0, 1]; seasonLength is the cycle length (7 for weekly).
// With fewer than two full cycles of history the seasonal state cannot be
// initialized, so the fit degrades to SimpleExponentialSmoothing.
func HoltWinters(data []float64, alpha, beta, gamma float64, seasonLength int) []float64 {
	if seasonLength < 1 || len(data) < seasonLength*2 {
		return SimpleExponentialSmoothing(data, alpha)
	}

	level := data[0]
	trend := 0.0
	seasonal := initialSeasonal(data, seasonLength)

	forecasts := make([]float64, 0, len(data))
	for i := range data {
		s := i % seasonLength
		lastLevel := level
		lastTrend := trend

		// A zero seasonal factor would divide the level update by zero;
		// treat it as the neutral factor 1.
		factor := seasonal[s]
		if factor == 0 {
			factor = 1
		}

		level = alpha*(data[i]/factor) + (1-alpha)*(lastLevel+lastTrend)
		trend = beta*(level-lastLevel) + (1-beta)*lastTrend
		if level != 0 {
			seasonal[s] = gamma*(data[i]/level) + (1-gamma)*seasonal[s]
		}

		forecasts = append(forecasts, (level+trend)*seasonal[s])
	}
	return forecasts
}

// initialSeasonal seeds the per-slot seasonal factors from the ratio of the
// first cycle's mean to the average of the first two cycles' means. Slots
// without two full cycles of data keep the neutral factor 1.
func initialSeasonal(data []float64, seasonLength int) []float64 {
	seasonal := make([]float64, seasonLength)
	for i := range seasonal {
		seasonal[i] = 1
	}

	for i := 0; i < seasonLength; i++ {
		firstEnd := min(i+seasonLength, len(data))
		firstCycle := stats.Mean(data[i:firstEnd])

		secondStart := min(i+seasonLength, len(data))
		secondEnd := min(secondStart+seasonLength, len(data))
		if secondEnd <= secondStart {
			continue
		}
		secondCycle := stats.Mean(data[secondStart:secondEnd])

		avg := (firstCycle + secondCycle) / 2
		if avg != 0 {
			seasonal[i] = firstCycle / avg
		}
	}
	return seasonal
}

// SimpleExponentialSmoothing smooths data with result[0] = data[0] and
// result[i] = alpha*data[i] + (1-alpha)*result[i-1].
func SimpleExponentialSmoothing(data []float64, alpha float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	result := make([]float64, len(data))
	result[0] = data[0]
	for i := 1; i < len(data); i++ {
		result[i] = alpha*data[i] + (1-alpha)*result[i-1]
	}
	return result
}

// TrendSlope is the least-squares slope of data against its indices.
// The anomaly engine shares it for windowed trend comparison.
func TrendSlope(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	x := make([]float64, len(data))
	for i := range x {
		x[i] = float64(i)
	}
	return stats.LinearRegression(x, data).Slope
}

// seasonalPattern extracts the normalized per-slot seasonal factors: the
// mean of all observations at each slot, scaled so the pattern itself
// averages 1. Below two full cycles the pattern is neutral (all 1s).
func seasonalPattern(data []float64, seasonLength int) []float64 {
	pattern := make([]float64, seasonLength)
	for i := range pattern {
		pattern[i] = 1
	}
	if len(data) < seasonLength*2 {
		return pattern
	}

	for i := 0; i < seasonLength; i++ {
		var values []float64
		for j := i; j < len(data); j += seasonLength {
			values = append(values, data[j])
		}
		if len(values) > 0 {
			pattern[i] = stats.Mean(values)
		}
	}

	patternMean := stats.Mean(pattern)
	if patternMean != 0 {
		for i := range pattern {
			pattern[i] /= patternMean
		}
	}
	return pattern
}
