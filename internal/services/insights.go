package services

import (
	"fmt"

	"labpulse/internal/forecast"
	"labpulse/internal/stats"
	apiv1 "labpulse/pkg/contracts/api/v1"
)

// Volatility above this coefficient of variation is flagged as a planning
// risk.
const volatilityLimit = 0.3

// minInsightPoints is the shortest history worth commenting on.
const minInsightPoints = 7

var phaseNames = [...]string{
	"phase 1", "phase 2", "phase 3", "phase 4", "phase 5", "phase 6", "phase 7",
}

// weekdayNames maps seasonal slots to weekday labels when the season is
// weekly, which is the common case for daily order volumes.
var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// deriveInsights turns a series into a short list of human-readable
// observations: overall direction, volatility, and the strongest and
// weakest seasonal phases.
func deriveInsights(data []float64, seasonLength int) []apiv1.Insight {
	insights := []apiv1.Insight{}
	if len(data) < minInsightPoints {
		return insights
	}

	mean := stats.Mean(data)
	slope := forecast.TrendSlope(data)

	if mean != 0 {
		growthRate := slope / mean * 100
		switch {
		case growthRate > 1:
			insights = append(insights, apiv1.Insight{
				Type:           "positive",
				Title:          "Order volume growing",
				Message:        fmt.Sprintf("Order volume is trending up at %.1f%% per period.", growthRate),
				Recommendation: "Review staffing capacity ahead of continued growth.",
			})
		case growthRate < -1:
			insights = append(insights, apiv1.Insight{
				Type:           "warning",
				Title:          "Order volume declining",
				Message:        fmt.Sprintf("Order volume is trending down at %.1f%% per period.", -growthRate),
				Recommendation: "Investigate referral sources and recent service changes.",
			})
		}

		cv := stats.StdDev(data) / mean
		if cv > volatilityLimit {
			insights = append(insights, apiv1.Insight{
				Type:           "warning",
				Title:          "High volume volatility",
				Message:        fmt.Sprintf("Day-to-day volume varies by %.0f%% of the average, which makes scheduling unreliable.", cv*100),
				Recommendation: "Use the upper forecast bound when planning capacity.",
			})
		}
	}

	if phase := seasonalInsight(data, seasonLength); phase != nil {
		insights = append(insights, *phase)
	}

	return insights
}

// seasonalInsight reports the busiest and quietest seasonal phases when at
// least two full cycles of history exist.
func seasonalInsight(data []float64, seasonLength int) *apiv1.Insight {
	if seasonLength < 2 || len(data) < 2*seasonLength {
		return nil
	}

	sums := make([]float64, seasonLength)
	counts := make([]int, seasonLength)
	for i, v := range data {
		slot := i % seasonLength
		sums[slot] += v
		counts[slot]++
	}

	best, worst := 0, 0
	bestAvg, worstAvg := 0.0, 0.0
	for slot := range sums {
		avg := sums[slot] / float64(counts[slot])
		if slot == 0 || avg > bestAvg {
			best, bestAvg = slot, avg
		}
		if slot == 0 || avg < worstAvg {
			worst, worstAvg = slot, avg
		}
	}

	if best == worst || bestAvg == worstAvg {
		return nil
	}

	return &apiv1.Insight{
		Type:           "info",
		Title:          "Weekly pattern detected",
		Message:        fmt.Sprintf("%s is the busiest point of the cycle (avg %.1f) and %s the quietest (avg %.1f).", phaseName(best, seasonLength), bestAvg, phaseName(worst, seasonLength), worstAvg),
		Recommendation: "Align technician schedules with the recurring peak.",
	}
}

func phaseName(slot, seasonLength int) string {
	if seasonLength == len(weekdayNames) {
		return weekdayNames[slot]
	}
	if slot < len(phaseNames) {
		return phaseNames[slot]
	}
	return fmt.Sprintf("phase %d", slot+1)
}
