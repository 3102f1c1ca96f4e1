package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "labpulse/internal/errors"
	"labpulse/internal/services"
	apiv1 "labpulse/pkg/contracts/api/v1"
)

// AnalyticsHandler exposes the statistics, forecasting, anomaly and
// staffing operations over HTTP.
type AnalyticsHandler struct {
	service      *services.AnalyticsService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *services.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "analytics")),
		errorHandler: apierrors.NewErrorHandler(logger),
		validate:     validator.New(),
	}
}

// RegisterRoutes registers analytics routes on the given router
func (h *AnalyticsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/stats/describe", h.Describe)
	r.Post("/forecast", h.Forecast)
	r.Post("/forecast/accuracy", h.Accuracy)
	r.Post("/forecast/surges", h.Surges)
	r.Post("/anomalies/detect", h.DetectAnomalies)
	r.Post("/anomalies/realtime", h.RealtimeAnomaly)
	r.Post("/anomalies/seasonal", h.SeasonalAnomalies)
	r.Post("/anomalies/trends", h.TrendChanges)
	r.Post("/anomalies/analyze", h.Analyze)
	r.Post("/staffing/estimate", h.StaffingEstimate)
}

// decode parses and validates the request body into req. A false return
// means the error response has already been written.
func (h *AnalyticsHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := render.DecodeJSON(r.Body, req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrInvalidRequest)
		return false
	}

	if err := h.validate.Struct(req); err != nil {
		var details []apierrors.ValidationError
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				details = append(details, apierrors.ValidationError{
					Field:   ve.Field(),
					Message: "failed constraint: " + ve.Tag(),
				})
			}
		}
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", details))
		return false
	}

	return true
}

// checkSeries enforces the configured series length ceiling. A false
// return means the error response has already been written.
func (h *AnalyticsHandler) checkSeries(w http.ResponseWriter, r *http.Request, series ...[]float64) bool {
	limit := h.service.MaxSeriesLength()
	for _, data := range series {
		if len(data) > limit {
			h.errorHandler.HandleError(w, r, apierrors.ErrSeriesTooLarge)
			return false
		}
	}
	return true
}

// Describe handles POST /stats/describe
func (h *AnalyticsHandler) Describe(w http.ResponseWriter, r *http.Request) {
	var req apiv1.DescribeRequest
	if !h.decode(w, r, &req) || !h.checkSeries(w, r, req.Data) {
		return
	}

	render.JSON(w, r, h.service.Describe(r.Context(), req.Data))
}

// Forecast handles POST /forecast
func (h *AnalyticsHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	var req apiv1.ForecastRequest
	if !h.decode(w, r, &req) || !h.checkSeries(w, r, req.Data) {
		return
	}

	render.JSON(w, r, h.service.Forecast(r.Context(), req.Data, req.Steps, req.SeasonLength))
}

// Accuracy handles POST /forecast/accuracy
func (h *AnalyticsHandler) Accuracy(w http.ResponseWriter, r *http.Request) {
	var req apiv1.AccuracyRequest
	if !h.decode(w, r, &req) || !h.checkSeries(w, r, req.Predictions, req.Actuals) {
		return
	}

	render.JSON(w, r, h.service.Accuracy(r.Context(), req.Predictions, req.Actuals))
}

// Surges handles POST /forecast/surges
func (h *AnalyticsHandler) Surges(w http.ResponseWriter, r *http.Request) {
	var req apiv1.SurgeRequest
	if !h.decode(w, r, &req) || !h.checkSeries(w, r, req.Values) {
		return
	}

	if len(req.Dates) != len(req.Values) {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed",
			[]apierrors.ValidationError{{Field: "Dates", Message: "must match the length of values"}}))
		return
	}

	render.JSON(w, r, h.service.Surges(r.Context(), req.Values, req.Dates, req.Threshold))
}

// DetectAnomalies handles POST /anomalies/detect
func (h *AnalyticsHandler) DetectAnomalies(w http.ResponseWriter, r *http.Request) {
	var req apiv1.AnomalyDetectRequest
	if !h.decode(w, r, &req) || !h.checkSeries(w, r, req.Data) {
		return
	}

	render.JSON(w, r, h.service.DetectAnomalies(r.Context(), req.Data, req.Threshold))
}

// RealtimeAnomaly handles POST /anomalies/realtime
func (h *AnalyticsHandler) RealtimeAnomaly(w http.ResponseWriter, r *http.Request) {
	var req apiv1.RealtimeAnomalyRequest
	if !h.decode(w, r, &req) || !h.checkSeries(w, r, req.Historical) {
		return
	}

	render.JSON(w, r, h.service.RealtimeCheck(r.Context(), req.Historical, req.NewValue, req.Sensitivity))
}

// SeasonalAnomalies handles POST /anomalies/seasonal
func (h *AnalyticsHandler) SeasonalAnomalies(w http.ResponseWriter, r *http.Request) {
	var req apiv1.SeasonalAnomalyRequest
	if !h.decode(w, r, &req) || !h.checkSeries(w, r, req.Data) {
		return
	}

	render.JSON(w, r, h.service.SeasonalAnomalies(r.Context(), req.Data, req.Period))
}

// TrendChanges handles POST /anomalies/trends
func (h *AnalyticsHandler) TrendChanges(w http.ResponseWriter, r *http.Request) {
	var req apiv1.TrendChangeRequest
	if !h.decode(w, r, &req) || !h.checkSeries(w, r, req.Data) {
		return
	}

	render.JSON(w, r, h.service.TrendChanges(r.Context(), req.Data, req.Window))
}

// Analyze handles POST /anomalies/analyze
func (h *AnalyticsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req apiv1.AnalyzeRequest
	if !h.decode(w, r, &req) || !h.checkSeries(w, r, req.Data) {
		return
	}

	render.JSON(w, r, h.service.AnalyzeAnomalies(r.Context(), req.Data, req.Threshold, req.SeasonalPeriod, req.Window))
}

// StaffingEstimate handles POST /staffing/estimate
func (h *AnalyticsHandler) StaffingEstimate(w http.ResponseWriter, r *http.Request) {
	var req apiv1.StaffingRequest
	if !h.decode(w, r, &req) {
		return
	}

	render.JSON(w, r, h.service.StaffingEstimate(r.Context(), req.OrderVolume, req.ComplexityScore, req.HistoricalEfficiency))
}
