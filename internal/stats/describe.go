package stats

import "math"

// DescriptiveStats is the composite summary returned by Describe.
// An empty input yields the zero value (Count 0, all fields 0).
type DescriptiveStats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      float64 `json:"max"`
	IQR      float64 `json:"iqr"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Describe computes the full descriptive summary of a series in one call.
//
// Skewness is the adjusted Fisher-Pearson estimator and requires at least
// three points; kurtosis is excess kurtosis (normal = 0) and requires more
// than three points. Both are 0 whenever the standard deviation is 0.
func Describe(data []float64) DescriptiveStats {
	if len(data) == 0 {
		return DescriptiveStats{}
	}

	m := Mean(data)
	sd := StdDev(data)

	minV := math.Inf(1)
	maxV := math.Inf(-1)
	for _, v := range data {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	q1 := Quantile(data, 0.25)
	q3 := Quantile(data, 0.75)

	n := float64(len(data))

	skewness := 0.0
	if sd != 0 && n > 2 {
		sum := 0.0
		for _, v := range data {
			z := (v - m) / sd
			sum += z * z * z
		}
		skewness = sum * n / ((n - 1) * (n - 2))
	}

	kurtosis := 0.0
	if sd != 0 && n > 3 {
		sum := 0.0
		for _, v := range data {
			z := (v - m) / sd
			sum += z * z * z * z
		}
		kurtosis = sum/n - 3
	}

	return DescriptiveStats{
		Count:    len(data),
		Mean:     m,
		StdDev:   sd,
		Min:      minV,
		Q1:       q1,
		Median:   Median(data),
		Q3:       q3,
		Max:      maxV,
		IQR:      q3 - q1,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}
