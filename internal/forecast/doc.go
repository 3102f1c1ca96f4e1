// Package forecast implements exponential-smoothing forecasts over order
// volume series: in-sample Holt-Winters fits, multi-step predictions with
// widening confidence bounds, forecast accuracy metrics, surge-period
// identification over predicted values, and the staffing estimate derived
// from predicted volume.
//
// Like the stats kernel, every function is total: series too short for a
// model degrade to a simpler model or an empty result, never an error.
package forecast
