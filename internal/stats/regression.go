package stats

import "math"

// LinearRegressionResult holds the closed-form least-squares fit of y on x.
type LinearRegressionResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// LinearRegression fits y = slope*x + intercept by ordinary least squares
// over paired sequences of equal length. A degenerate x (constant values,
// a single point, or mismatched lengths) yields slope 0 with the intercept
// at mean(y); r_squared is defined as 0 when the total sum of squares is 0.
func LinearRegression(x, y []float64) LinearRegressionResult {
	if len(x) != len(y) || len(x) == 0 {
		return LinearRegressionResult{}
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return LinearRegressionResult{Intercept: Mean(y)}
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	yMean := sumY / n
	var ssTot, ssRes float64
	for i := range y {
		dt := y[i] - yMean
		ssTot += dt * dt
		dr := y[i] - (slope*x[i] + intercept)
		ssRes += dr * dr
	}

	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return LinearRegressionResult{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared,
	}
}

// Correlation returns Pearson's r for the paired sequences, or 0 for fewer
// than two points, mismatched lengths, or a zero denominator.
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	return safeDiv(numerator, denominator, 0)
}

// Covariance returns the sample covariance (N-1 denominator) of the paired
// sequences, or 0 for fewer than two points or mismatched lengths.
func Covariance(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}

	meanX := Mean(x)
	meanY := Mean(y)
	sum := 0.0
	for i := range x {
		sum += (x[i] - meanX) * (y[i] - meanY)
	}
	return sum / float64(len(x)-1)
}
