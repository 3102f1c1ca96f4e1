package anomaly

import (
	"math"

	"labpulse/internal/parallel"
	"labpulse/internal/stats"
)

// Moving-average deviation bounds: the trailing window is len/3 clamped to
// [3, 7], and a point is flagged when it strays more than 30% from the
// window average.
const (
	minDetectWindow   = 3
	maxDetectWindow   = 7
	maDeviationLimit  = 0.3
	minEnsembleLength = 3
)

// Anomaly is one flagged observation with the ensemble methods that
// agreed on it.
type Anomaly struct {
	Index            int      `json:"index"`
	Value            float64  `json:"value"`
	Severity         string   `json:"severity"`
	Methods          []string `json:"methods"`
	DeviationPercent float64  `json:"deviation_percent"`
}

// Detect runs the full ensemble over data. threshold is the z-score cutoff
// in standard deviations. A point is reported when any method flags it;
// severity is high when at least two methods agree, medium when the z-score
// exceeds 1.5x the threshold, otherwise low. Series shorter than three
// points yield no verdicts.
//
// Points observed before the trailing moving-average window has filled are
// still checked by the z-score and IQR methods; only the moving-average
// method skips them.
func Detect(data []float64, threshold float64) []Anomaly {
	if len(data) < minEnsembleLength {
		return nil
	}

	m := stats.Mean(data)
	sd := stats.StdDev(data)

	q1 := stats.Quantile(data, 0.25)
	q3 := stats.Quantile(data, 0.75)
	iqr := q3 - q1
	lowerFence := q1 - 1.5*iqr
	upperFence := q3 + 1.5*iqr

	window := len(data) / 3
	if window < minDetectWindow {
		window = minDetectWindow
	}
	if window > maxDetectWindow {
		window = maxDetectWindow
	}
	movAvg := stats.MovingAverage(data, window)

	verdicts := make([]*Anomaly, len(data))
	parallel.ForEach(len(data), func(i int) {
		value := data[i]
		var methods methodSet

		zScore := 0.0
		if sd != 0 {
			zScore = math.Abs(value-m) / sd
		}
		if zScore > threshold {
			methods.add(MethodZScore)
		}

		if value < lowerFence || value > upperFence {
			methods.add(MethodIQR)
		}

		if i >= window-1 {
			avg := movAvg[i-window+1]
			if avg != 0 && math.Abs(value-avg)/avg > maDeviationLimit {
				methods.add(MethodMovingAverage)
			}
		}

		if methods.empty() {
			return
		}

		deviationPercent := 0.0
		if m != 0 {
			deviationPercent = math.Abs(value-m) / m * 100
		}

		severity := SeverityLow
		switch {
		case methods.count() >= 2:
			severity = SeverityHigh
		case zScore > threshold*1.5:
			severity = SeverityMedium
		}

		verdicts[i] = &Anomaly{
			Index:            i,
			Value:            value,
			Severity:         severity,
			Methods:          methods.names(),
			DeviationPercent: deviationPercent,
		}
	})

	// Compact in index order so parallel execution is invisible to callers.
	var results []Anomaly
	for _, v := range verdicts {
		if v != nil {
			results = append(results, *v)
		}
	}
	return results
}
