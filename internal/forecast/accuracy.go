package forecast

import "math"

// AccuracyMetrics summarizes how well past predictions matched actuals.
// All values are rounded to one decimal; Accuracy is max(0, 100-MAPE).
type AccuracyMetrics struct {
	MAPE     float64 `json:"mape"`
	RMSE     float64 `json:"rmse"`
	MAE      float64 `json:"mae"`
	Accuracy float64 `json:"accuracy"`
}

// CalculateAccuracy computes MAPE, RMSE and MAE between predictions and
// actuals. Zero actuals contribute 0% error to MAPE rather than dividing by
// zero. Empty or mismatched-length inputs yield the zero record.
//
// The reduction is deliberately sequential so the result is identical for
// any runtime configuration.
func CalculateAccuracy(predictions, actuals []float64) AccuracyMetrics {
	if len(predictions) == 0 || len(predictions) != len(actuals) {
		return AccuracyMetrics{}
	}

	n := float64(len(predictions))
	var sumAbs, sumSquared, sumPercent float64
	for i := range predictions {
		err := actuals[i] - predictions[i]
		sumAbs += math.Abs(err)
		sumSquared += err * err
		if actuals[i] != 0 {
			sumPercent += math.Abs(err/actuals[i]) * 100
		}
	}

	mae := sumAbs / n
	rmse := math.Sqrt(sumSquared / n)
	mape := sumPercent / n
	accuracy := math.Max(100-mape, 0)

	return AccuracyMetrics{
		MAPE:     round1(mape),
		RMSE:     round1(rmse),
		MAE:      round1(mae),
		Accuracy: round1(accuracy),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
