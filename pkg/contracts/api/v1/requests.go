// Package api contains the API contract definitions for the LabPulse
// analytics engine. Version v1 represents the current stable API version.
//
// Requests carry the full input on every call: the engine is stateless, so
// thresholds, smoothing parameters and window sizes always travel with the
// series they apply to. Zero-valued tunables mean "use the server default".
package api

// DescribeRequest asks for the descriptive summary of one series
type DescribeRequest struct {
	Data []float64 `json:"data" validate:"required,min=1"`
}

// ForecastRequest asks for a multi-step forecast of one series
type ForecastRequest struct {
	Data         []float64 `json:"data" validate:"required,min=1"`
	Steps        int       `json:"steps" validate:"required,min=1,max=365"`
	SeasonLength int       `json:"season_length" validate:"min=0"`
}

// AccuracyRequest compares past predictions against realized actuals
type AccuracyRequest struct {
	Predictions []float64 `json:"predictions" validate:"required,min=1"`
	Actuals     []float64 `json:"actuals" validate:"required,min=1"`
}

// SurgeRequest scans predicted values for surge periods
type SurgeRequest struct {
	Values    []float64 `json:"values" validate:"required,min=1"`
	Dates     []string  `json:"dates" validate:"required,min=1"`
	Threshold float64   `json:"threshold" validate:"min=0"`
}

// AnomalyDetectRequest runs the ensemble detector over one series
type AnomalyDetectRequest struct {
	Data      []float64 `json:"data" validate:"required,min=1"`
	Threshold float64   `json:"threshold" validate:"min=0"`
}

// RealtimeAnomalyRequest checks one new observation against history
type RealtimeAnomalyRequest struct {
	Historical  []float64 `json:"historical" validate:"required,min=1"`
	NewValue    float64   `json:"new_value"`
	Sensitivity string    `json:"sensitivity" validate:"omitempty,oneof=low medium high"`
}

// SeasonalAnomalyRequest runs seasonal-phase deviation detection
type SeasonalAnomalyRequest struct {
	Data   []float64 `json:"data" validate:"required,min=1"`
	Period int       `json:"period" validate:"min=0"`
}

// TrendChangeRequest runs windowed trend-shift detection
type TrendChangeRequest struct {
	Data   []float64 `json:"data" validate:"required,min=1"`
	Window int       `json:"window" validate:"min=0"`
}

// AnalyzeRequest runs all three anomaly detectors over one series
type AnalyzeRequest struct {
	Data           []float64 `json:"data" validate:"required,min=1"`
	Threshold      float64   `json:"threshold" validate:"min=0"`
	SeasonalPeriod int       `json:"seasonal_period" validate:"min=0"`
	Window         int       `json:"window" validate:"min=0"`
}

// StaffingRequest estimates headcount for a predicted order volume
type StaffingRequest struct {
	OrderVolume          float64 `json:"order_volume" validate:"min=0"`
	ComplexityScore      float64 `json:"complexity_score" validate:"min=0"`
	HistoricalEfficiency float64 `json:"historical_efficiency" validate:"min=0,max=2"`
}
