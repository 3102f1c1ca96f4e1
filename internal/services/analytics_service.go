package services

import (
	"context"
	"log/slog"

	"labpulse/internal/anomaly"
	"labpulse/internal/config"
	"labpulse/internal/forecast"
	"labpulse/internal/stats"
	apiv1 "labpulse/pkg/contracts/api/v1"
)

// AnalyticsService fronts the stats, forecast and anomaly engines for the
// transport layer: it fills in configured defaults for omitted tunables,
// logs each computation, and normalizes empty results so JSON clients
// always see lists. The engines themselves stay pure and stateless.
type AnalyticsService struct {
	cfg    config.AnalyticsConfig
	logger *slog.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(cfg config.AnalyticsConfig, logger *slog.Logger) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{cfg: cfg, logger: logger}
}

// ForecastReport bundles the forecast steps with derived insights.
type ForecastReport struct {
	Forecasts []forecast.Forecast `json:"forecasts"`
	Insights  []apiv1.Insight     `json:"insights"`
}

// Describe returns the descriptive summary of data.
func (s *AnalyticsService) Describe(ctx context.Context, data []float64) stats.DescriptiveStats {
	s.logger.InfoContext(ctx, "describing series", "points", len(data))
	return stats.Describe(data)
}

// Forecast predicts the next steps observations and derives insights from
// the history. A zero seasonLength uses the configured default.
func (s *AnalyticsService) Forecast(ctx context.Context, data []float64, steps, seasonLength int) ForecastReport {
	if seasonLength == 0 {
		seasonLength = s.cfg.SeasonLength
	}

	s.logger.InfoContext(ctx, "forecasting series",
		"points", len(data),
		"steps", steps,
		"season_length", seasonLength,
	)

	forecasts := forecast.PredictNext(data, steps, seasonLength)
	if forecasts == nil {
		forecasts = []forecast.Forecast{}
	}

	return ForecastReport{
		Forecasts: forecasts,
		Insights:  deriveInsights(data, seasonLength),
	}
}

// Accuracy scores past predictions against realized actuals.
func (s *AnalyticsService) Accuracy(ctx context.Context, predictions, actuals []float64) forecast.AccuracyMetrics {
	s.logger.InfoContext(ctx, "scoring forecast accuracy", "points", len(predictions))
	return forecast.CalculateAccuracy(predictions, actuals)
}

// Surges scans predicted values for surge periods. A zero threshold uses
// the configured default.
func (s *AnalyticsService) Surges(ctx context.Context, values []float64, dates []string, threshold float64) []forecast.SurgePeriod {
	if threshold == 0 {
		threshold = s.cfg.SurgeThreshold
	}

	s.logger.InfoContext(ctx, "identifying surge periods",
		"points", len(values),
		"threshold", threshold,
	)

	surges := forecast.IdentifySurges(values, dates, threshold)
	if surges == nil {
		surges = []forecast.SurgePeriod{}
	}
	return surges
}

// DetectAnomalies runs the ensemble detector. A zero threshold uses the
// configured default.
func (s *AnalyticsService) DetectAnomalies(ctx context.Context, data []float64, threshold float64) []anomaly.Anomaly {
	if threshold == 0 {
		threshold = s.cfg.ZScoreThreshold
	}

	s.logger.InfoContext(ctx, "detecting anomalies",
		"points", len(data),
		"threshold", threshold,
	)

	anomalies := anomaly.Detect(data, threshold)
	if anomalies == nil {
		anomalies = []anomaly.Anomaly{}
	}
	return anomalies
}

// RealtimeCheck checks one incoming observation against recent history.
func (s *AnalyticsService) RealtimeCheck(ctx context.Context, historical []float64, newValue float64, sensitivity string) anomaly.RealtimeResult {
	s.logger.InfoContext(ctx, "realtime anomaly check",
		"history_points", len(historical),
		"sensitivity", sensitivity,
	)
	return anomaly.DetectRealtime(historical, newValue, anomaly.Sensitivity(sensitivity))
}

// SeasonalAnomalies runs seasonal-phase deviation detection. A zero period
// uses the configured default.
func (s *AnalyticsService) SeasonalAnomalies(ctx context.Context, data []float64, period int) []anomaly.SeasonalAnomaly {
	if period == 0 {
		period = s.cfg.SeasonLength
	}

	s.logger.InfoContext(ctx, "detecting seasonal anomalies",
		"points", len(data),
		"period", period,
	)

	results := anomaly.DetectSeasonal(data, period)
	if results == nil {
		results = []anomaly.SeasonalAnomaly{}
	}
	return results
}

// TrendChanges runs windowed trend-shift detection. A zero window uses the
// configured default.
func (s *AnalyticsService) TrendChanges(ctx context.Context, data []float64, window int) []anomaly.TrendChange {
	if window == 0 {
		window = s.cfg.TrendWindow
	}

	s.logger.InfoContext(ctx, "detecting trend changes",
		"points", len(data),
		"window", window,
	)

	results := anomaly.DetectTrendChanges(data, window)
	if results == nil {
		results = []anomaly.TrendChange{}
	}
	return results
}

// AnalyzeAnomalies composes all three detectors into one summary. Zero
// tunables use the configured defaults.
func (s *AnalyticsService) AnalyzeAnomalies(ctx context.Context, data []float64, threshold float64, seasonalPeriod, window int) anomaly.AnalysisSummary {
	if threshold == 0 {
		threshold = s.cfg.ZScoreThreshold
	}
	if seasonalPeriod == 0 {
		seasonalPeriod = s.cfg.SeasonLength
	}
	if window == 0 {
		window = s.cfg.TrendWindow
	}

	s.logger.InfoContext(ctx, "running full anomaly analysis",
		"points", len(data),
		"threshold", threshold,
		"seasonal_period", seasonalPeriod,
		"window", window,
	)

	summary := anomaly.Analyze(data, threshold, seasonalPeriod, window)
	if summary.Anomalies == nil {
		summary.Anomalies = []anomaly.Anomaly{}
	}
	if summary.SeasonalAnomalies == nil {
		summary.SeasonalAnomalies = []anomaly.SeasonalAnomaly{}
	}
	if summary.TrendChanges == nil {
		summary.TrendChanges = []anomaly.TrendChange{}
	}
	return summary
}

// StaffingEstimate recommends headcount for a predicted order volume.
func (s *AnalyticsService) StaffingEstimate(ctx context.Context, orderVolume, complexityScore, efficiency float64) forecast.StaffingPlan {
	s.logger.InfoContext(ctx, "estimating staffing needs",
		"order_volume", orderVolume,
		"complexity_score", complexityScore,
	)
	return forecast.StaffingNeeds(orderVolume, complexityScore, efficiency)
}

// MaxSeriesLength exposes the configured input ceiling for the transport
// layer's request guards.
func (s *AnalyticsService) MaxSeriesLength() int {
	return s.cfg.MaxSeriesLength
}
