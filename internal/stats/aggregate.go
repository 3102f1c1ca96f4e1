package stats

import (
	"math"
	"sort"

	"labpulse/internal/parallel"
)

// safeDiv is the single guarded-division policy for the kernel. Every place
// the reference algorithms divide by a possibly-zero statistic goes through
// here so the degenerate branches stay consistent across packages.
func safeDiv(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	return num / den
}

// Mean returns the arithmetic mean of data, or 0 for an empty series.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Median returns the middle value of data (average of the two middle values
// for even lengths), or 0 for an empty series.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := sortedCopy(data)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Variance returns the sample variance (N-1 denominator) of data.
// Fewer than two points has no defined sample variance and yields 0.
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	m := Mean(data)
	sum := 0.0
	for _, v := range data {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(data)-1)
}

// StdDev returns the sample standard deviation of data, or 0 for fewer than
// two points.
func StdDev(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Quantile returns the q-th quantile of data using linear interpolation
// between closest ranks (the R-7 method). NaN observations are dropped
// before ranking. Empty input or q outside [0, 1] yields 0.
func Quantile(data []float64, q float64) float64 {
	if len(data) == 0 || q < 0 || q > 1 {
		return 0
	}

	sorted := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return 0
	}
	sort.Float64s(sorted)

	n := len(sorted)
	index := q * float64(n-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))

	if lower == upper || upper >= n {
		if lower > n-1 {
			lower = n - 1
		}
		return sorted[lower]
	}
	frac := index - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// IQR returns the interquartile range Q3 - Q1.
func IQR(data []float64) float64 {
	return Quantile(data, 0.75) - Quantile(data, 0.25)
}

// ZScores returns the z-score of every observation. When the series has
// fewer than two points or zero standard deviation the scores are all zero.
func ZScores(data []float64) []float64 {
	if len(data) < 2 {
		return make([]float64, len(data))
	}
	m := Mean(data)
	sd := StdDev(data)
	if sd == 0 {
		return make([]float64, len(data))
	}

	result := make([]float64, len(data))
	for i, v := range data {
		result[i] = (v - m) / sd
	}
	return result
}

// ZScoresParallel is ZScores with the element-wise map fanned out across
// workers for large series. The mean and standard deviation reductions stay
// sequential, so the output is bit-identical to ZScores at any worker count.
func ZScoresParallel(data []float64) []float64 {
	if len(data) < 2 {
		return make([]float64, len(data))
	}
	m := Mean(data)
	sd := StdDev(data)
	if sd == 0 {
		return make([]float64, len(data))
	}

	result := make([]float64, len(data))
	parallel.ForEach(len(data), func(i int) {
		result[i] = (data[i] - m) / sd
	})
	return result
}

// MovingAverage returns the trailing simple moving average of data over the
// given window, computed with an incremental running sum. Output index 0
// covers input [0, window); the result has len(data)-window+1 entries.
// A zero window or a window longer than the series yields an empty result.
func MovingAverage(data []float64, window int) []float64 {
	if window <= 0 || len(data) < window {
		return nil
	}

	result := make([]float64, 0, len(data)-window+1)
	sum := 0.0
	for _, v := range data[:window] {
		sum += v
	}
	result = append(result, sum/float64(window))

	for i := window; i < len(data); i++ {
		sum += data[i] - data[i-window]
		result = append(result, sum/float64(window))
	}
	return result
}

// ExponentialMovingAverage returns the EMA of data seeded with the first
// observation: ema[i] = alpha*data[i] + (1-alpha)*ema[i-1].
func ExponentialMovingAverage(data []float64, alpha float64) []float64 {
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

// sortedCopy sorts ascending on a copy, with NaN ordered as equal to
// everything so the sort stays total.
func sortedCopy(data []float64) []float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if math.IsNaN(a) || math.IsNaN(b) {
			return false
		}
		return a < b
	})
	return sorted
}
