// Package stats implements the statistical kernel shared by the forecasting
// and anomaly engines.
//
// Every function is pure and total: degenerate input (empty series, fewer
// than two points, zero variance, mismatched pair lengths, out-of-range
// quantile fractions) maps to a documented zero-valued default instead of an
// error. Callers rely on that contract to keep analysis pipelines
// non-interrupting, so no function in this package may panic or return an
// error for data-shaped conditions.
//
// # Components
//
//   - aggregate.go: mean, median, variance, quantiles, moving averages
//   - regression.go: least-squares regression, correlation, covariance
//   - describe.go: composite descriptive summary (quartiles, skew, kurtosis)
//
// All operations treat the input as an ordered time series and never mutate
// it; sorting happens on private copies.
package stats
