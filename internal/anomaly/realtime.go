package anomaly

import (
	"math"

	"labpulse/internal/stats"
)

// Sensitivity selects how aggressively the real-time check flags a new
// observation. Lower sensitivity widens the accepted band.
type Sensitivity string

const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

// multiplier maps sensitivity to the std-dev multiple that bounds the
// expected range. Unknown labels fall back to medium.
func (s Sensitivity) multiplier() float64 {
	switch s {
	case SensitivityLow:
		return 3.0
	case SensitivityHigh:
		return 1.5
	default:
		return 2.0
	}
}

// adaptiveWindow is how many trailing historical points the real-time
// threshold adapts to.
const adaptiveWindow = 14

// RealtimeResult is the verdict for a single incoming observation checked
// against recent history.
type RealtimeResult struct {
	IsAnomaly   bool    `json:"is_anomaly"`
	Severity    string  `json:"severity"`
	Confidence  float64 `json:"confidence"`
	ExpectedMin float64 `json:"expected_min"`
	ExpectedMax float64 `json:"expected_max"`
	ActualValue float64 `json:"actual_value"`
}

// DetectRealtime checks newValue against an adaptive threshold computed
// from the most recent historical points. The threshold is the recent
// standard deviation scaled by the sensitivity multiplier; confidence grows
// with how far outside the band the value falls, capped at 100.
func DetectRealtime(historical []float64, newValue float64, sensitivity Sensitivity) RealtimeResult {
	recent := historical
	if len(recent) > adaptiveWindow {
		recent = recent[len(recent)-adaptiveWindow:]
	}

	m := stats.Mean(recent)
	sd := stats.StdDev(recent)

	multiplier := sensitivity.multiplier()
	threshold := sd * multiplier
	deviation := math.Abs(newValue - m)

	zScore := 0.0
	if sd != 0 {
		zScore = deviation / sd
	}

	confidence := math.Min(zScore/multiplier*100, 100)

	severity := SeverityLow
	switch {
	case zScore > 3:
		severity = SeverityHigh
	case zScore > 2:
		severity = SeverityMedium
	}

	return RealtimeResult{
		IsAnomaly:   deviation > threshold,
		Severity:    severity,
		Confidence:  confidence,
		ExpectedMin: m - threshold,
		ExpectedMax: m + threshold,
		ActualValue: newValue,
	}
}
