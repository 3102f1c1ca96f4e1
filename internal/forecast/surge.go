package forecast

import "labpulse/internal/stats"

// Surge severity labels, thresholded on the value/mean ratio.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// SurgePeriod is a contiguous run of predicted values above the surge
// threshold, merged into a single period with its peak.
type SurgePeriod struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	PeakValue float64 `json:"peak_value"`
	Severity  string  `json:"severity"`
}

// surgeState is the run-length scanner state: outside a surge, or inside
// one carrying the open period.
type surgeState int

const (
	surgeIdle surgeState = iota
	surgeOpen
)

// IdentifySurges scans predicted values for contiguous runs where the
// ratio to the overall mean exceeds threshold, merging adjacent high points
// into one period. dates must be parallel to values; a length mismatch
// yields an empty result.
func IdentifySurges(values []float64, dates []string, threshold float64) []SurgePeriod {
	if len(values) == 0 || len(values) != len(dates) {
		return nil
	}

	avg := stats.Mean(values)
	var surges []SurgePeriod

	state := surgeIdle
	var open SurgePeriod

	for i, value := range values {
		ratio := 1.0
		if avg != 0 {
			ratio = value / avg
		}
		high := ratio > threshold

		switch {
		case state == surgeIdle && high:
			open = SurgePeriod{
				StartDate: dates[i],
				EndDate:   dates[i],
				PeakValue: value,
				Severity:  surgeSeverity(ratio),
			}
			state = surgeOpen
		case state == surgeOpen && high:
			open.EndDate = dates[i]
			if value > open.PeakValue {
				open.PeakValue = value
				open.Severity = surgeSeverity(ratio)
			}
		case state == surgeOpen && !high:
			surges = append(surges, open)
			state = surgeIdle
		}
	}

	if state == surgeOpen {
		surges = append(surges, open)
	}
	return surges
}

func surgeSeverity(ratio float64) string {
	switch {
	case ratio > 1.5:
		return SeverityHigh
	case ratio > 1.35:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
