package anomaly

import (
	"math"

	"labpulse/internal/parallel"
	"labpulse/internal/stats"
)

// SeasonalAnomaly is an observation that strayed from the history of its
// own seasonal phase (same weekday, same hour slot, ...).
type SeasonalAnomaly struct {
	Index         int     `json:"index"`
	Value         float64 `json:"value"`
	ExpectedValue float64 `json:"expected_value"`
	Deviation     float64 `json:"deviation"`
}

// DetectSeasonal compares each observation against prior observations at
// the same phase of the seasonal cycle, flagging deviations beyond two
// phase standard deviations. A phase needs at least two historical points
// to have a spread; series shorter than two full cycles yield nothing.
func DetectSeasonal(data []float64, period int) []SeasonalAnomaly {
	if period < 1 || len(data) < period*2 {
		return nil
	}

	verdicts := make([]*SeasonalAnomaly, len(data)-period)
	parallel.ForEach(len(data)-period, func(k int) {
		i := k + period

		// Walk back through the same phase slot until history runs out.
		var history []float64
		j := i - period
		for {
			history = append(history, data[j])
			if j < period {
				break
			}
			j -= period
		}
		if len(history) < 2 {
			return
		}

		expected := stats.Mean(history)
		spread := stats.StdDev(history)
		deviation := math.Abs(data[i] - expected)
		if deviation <= spread*2 {
			return
		}

		verdicts[k] = &SeasonalAnomaly{
			Index:         i,
			Value:         data[i],
			ExpectedValue: expected,
			Deviation:     deviation,
		}
	})

	var results []SeasonalAnomaly
	for _, v := range verdicts {
		if v != nil {
			results = append(results, *v)
		}
	}
	return results
}
