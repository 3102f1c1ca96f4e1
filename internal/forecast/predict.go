package forecast

import (
	"math"

	"labpulse/internal/stats"
)

// Trend labels attached to each forecast step.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Smoothing parameters used for multi-step prediction. Fixed rather than
// fitted: the engine does not optimize parameters (see package doc).
const (
	predictAlpha = 0.3
	predictBeta  = 0.1
	predictGamma = 0.1

	// trendWindow is the number of trailing observations the short-horizon
	// trend regression looks at.
	trendWindow = 7
)

// Forecast is one predicted future step. Values are clamped non-negative
// and rounded to whole units (order counts); Confidence is in [0, 1].
type Forecast struct {
	PredictedValue float64 `json:"predicted_value"`
	Confidence     float64 `json:"confidence"`
	LowerBound     float64 `json:"lower_bound"`
	UpperBound     float64 `json:"upper_bound"`
	Trend          string  `json:"trend"`
}

// PredictNext forecasts the next steps observations of data.
//
// With at least two full seasonal cycles of history it combines the
// in-sample Holt-Winters fit, a short-horizon trend from the last
// trendWindow observations, the normalized seasonal pattern and the
// residual spread of the fit into a 95% Gaussian band that widens with the
// horizon. With less history it falls back to PredictSimple.
func PredictNext(data []float64, steps, seasonLength int) []Forecast {
	if seasonLength < 1 || len(data) < seasonLength*2 {
		return PredictSimple(data, steps)
	}

	fitted := HoltWinters(data, predictAlpha, predictBeta, predictGamma, seasonLength)
	lastFit := 0.0
	if len(fitted) > 0 {
		lastFit = fitted[len(fitted)-1]
	}

	recent := data
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}
	trend := TrendSlope(recent)

	residuals := make([]float64, len(data))
	for i := range data {
		residuals[i] = data[i] - fitted[i]
	}
	residualStd := stats.StdDev(residuals)

	seasonal := seasonalPattern(data, seasonLength)

	results := make([]Forecast, 0, steps)
	for i := 0; i < steps; i++ {
		factor := seasonal[(len(data)+i)%seasonLength]
		predicted := (lastFit + trend*float64(i+1)) * factor
		margin := 1.96 * residualStd * math.Sqrt(float64(i+1))
		confidence := math.Max(1-float64(i)*0.05, 0.6)

		results = append(results, Forecast{
			PredictedValue: math.Round(math.Max(predicted, 0)),
			Confidence:     confidence,
			LowerBound:     math.Round(math.Max(predicted-margin, 0)),
			UpperBound:     math.Round(predicted + margin),
			Trend:          trendLabel(trend),
		})
	}
	return results
}

// PredictSimple is the low-history fallback: simple exponential smoothing
// plus a raw-data trend and a band from the raw standard deviation.
// Confidence decays faster (0.08 per step) and floors lower (0.5) than the
// seasonal model, reflecting the weaker fit.
func PredictSimple(data []float64, steps int) []Forecast {
	if len(data) == 0 {
		return nil
	}

	smoothed := SimpleExponentialSmoothing(data, predictAlpha)
	lastSmoothed := smoothed[len(smoothed)-1]
	sd := stats.StdDev(data)
	trend := TrendSlope(data)

	results := make([]Forecast, 0, steps)
	for i := 0; i < steps; i++ {
		predicted := lastSmoothed + trend*float64(i+1)
		margin := 1.96 * sd * math.Sqrt(float64(i+1))
		confidence := math.Max(1-float64(i)*0.08, 0.5)

		results = append(results, Forecast{
			PredictedValue: math.Round(math.Max(predicted, 0)),
			Confidence:     confidence,
			LowerBound:     math.Round(math.Max(predicted-margin, 0)),
			UpperBound:     math.Round(predicted + margin),
			Trend:          trendLabel(trend),
		})
	}
	return results
}

// trendLabel maps a slope to its direction label, with a +-0.1 dead band
// so near-flat series read as stable.
func trendLabel(trend float64) string {
	switch {
	case trend > 0.1:
		return TrendIncreasing
	case trend < -0.1:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
