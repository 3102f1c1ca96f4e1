package anomaly

import (
	"math"

	"labpulse/internal/forecast"
	"labpulse/internal/parallel"
)

// trendChangeLimit is the relative slope change (percent) beyond which a
// shift counts as significant.
const trendChangeLimit = 50.0

// TrendChange marks an index where the regression slope of the trailing
// window differs materially from the slope of the window before it.
type TrendChange struct {
	Index         int     `json:"index"`
	OldTrend      float64 `json:"old_trend"`
	NewTrend      float64 `json:"new_trend"`
	ChangePercent float64 `json:"change_percent"`
	Significant   bool    `json:"significant"`
}

// DetectTrendChanges fits a regression slope over [i-2w, i-w) and [i-w, i)
// for every index i with two full windows behind it, flagging relative
// slope changes above 50%. A slope appearing where there was none (old
// slope exactly 0) counts as a 100% change.
func DetectTrendChanges(data []float64, window int) []TrendChange {
	if window < 1 || len(data) < window*2 {
		return nil
	}

	start := window * 2
	verdicts := make([]*TrendChange, len(data)-start)
	parallel.ForEach(len(data)-start, func(k int) {
		i := k + start

		oldTrend := forecast.TrendSlope(data[i-window*2 : i-window])
		newTrend := forecast.TrendSlope(data[i-window : i])

		changePercent := 0.0
		switch {
		case oldTrend != 0:
			changePercent = math.Abs(newTrend-oldTrend) / math.Abs(oldTrend) * 100
		case newTrend != 0:
			changePercent = 100
		}

		if changePercent <= trendChangeLimit {
			return
		}

		verdicts[k] = &TrendChange{
			Index:         i,
			OldTrend:      oldTrend,
			NewTrend:      newTrend,
			ChangePercent: changePercent,
			Significant:   true,
		}
	})

	var results []TrendChange
	for _, v := range verdicts {
		if v != nil {
			results = append(results, *v)
		}
	}
	return results
}
