package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labpulse/internal/config"
)

func testConfig() config.AnalyticsConfig {
	return config.AnalyticsConfig{
		SeasonLength:    7,
		ZScoreThreshold: 2.0,
		TrendWindow:     5,
		SurgeThreshold:  1.3,
		MaxSeriesLength: 100000,
	}
}

func testService(t *testing.T) *AnalyticsService {
	t.Helper()
	return NewAnalyticsService(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewAnalyticsService_NilLogger(t *testing.T) {
	svc := NewAnalyticsService(testConfig(), nil)
	require.NotNil(t, svc)
	require.NotNil(t, svc.logger)
}

func TestAnalyticsService_Describe(t *testing.T) {
	svc := testService(t)

	result := svc.Describe(context.Background(), []float64{1, 2, 3, 4, 5})

	assert.Equal(t, 5, result.Count)
	assert.InDelta(t, 3.0, result.Mean, 1e-9)
	assert.InDelta(t, 3.0, result.Median, 1e-9)
}

func TestAnalyticsService_Forecast_DefaultSeason(t *testing.T) {
	svc := testService(t)

	data := make([]float64, 28)
	for i := range data {
		data[i] = 50 + float64(i)*0.5 + float64(i%7)*2
	}

	report := svc.Forecast(context.Background(), data, 3, 0)

	require.Len(t, report.Forecasts, 3)
	for _, f := range report.Forecasts {
		assert.GreaterOrEqual(t, f.PredictedValue, 0.0)
		assert.LessOrEqual(t, f.LowerBound, f.UpperBound)
	}
	assert.NotNil(t, report.Insights)
}

func TestAnalyticsService_Forecast_EmptyHistory(t *testing.T) {
	svc := testService(t)

	report := svc.Forecast(context.Background(), nil, 5, 7)

	assert.NotNil(t, report.Forecasts)
	assert.Empty(t, report.Forecasts)
	assert.NotNil(t, report.Insights)
	assert.Empty(t, report.Insights)
}

func TestAnalyticsService_Accuracy(t *testing.T) {
	svc := testService(t)

	metrics := svc.Accuracy(context.Background(),
		[]float64{100, 100, 100},
		[]float64{100, 100, 100},
	)

	assert.Equal(t, 0.0, metrics.MAPE)
	assert.Equal(t, 100.0, metrics.Accuracy)
}

func TestAnalyticsService_Surges_DefaultThreshold(t *testing.T) {
	svc := testService(t)

	values := []float64{10, 10, 10, 10, 20, 20, 10, 10}
	dates := []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7", "d8"}

	surges := svc.Surges(context.Background(), values, dates, 0)

	require.Len(t, surges, 1)
	assert.Equal(t, "d5", surges[0].StartDate)
	assert.Equal(t, "d6", surges[0].EndDate)
}

func TestAnalyticsService_Surges_NoSurges(t *testing.T) {
	svc := testService(t)

	values := []float64{10, 10, 10, 10}
	dates := []string{"d1", "d2", "d3", "d4"}

	surges := svc.Surges(context.Background(), values, dates, 0)

	assert.NotNil(t, surges)
	assert.Empty(t, surges)
}

func TestAnalyticsService_DetectAnomalies_DefaultThreshold(t *testing.T) {
	svc := testService(t)

	data := []float64{10, 11, 10.5, 11.2, 10.8, 100.0, 10.3, 11.1, 10.9, 10.7}

	anomalies := svc.DetectAnomalies(context.Background(), data, 0)

	require.NotEmpty(t, anomalies)
	assert.Equal(t, 5, anomalies[0].Index)
}

func TestAnalyticsService_DetectAnomalies_CleanSeries(t *testing.T) {
	svc := testService(t)

	anomalies := svc.DetectAnomalies(context.Background(), []float64{10, 10, 10, 10, 10}, 0)

	assert.NotNil(t, anomalies)
	assert.Empty(t, anomalies)
}

func TestAnalyticsService_RealtimeCheck(t *testing.T) {
	svc := testService(t)

	history := []float64{10, 11, 10, 11, 10, 11, 10, 11, 10, 11}

	result := svc.RealtimeCheck(context.Background(), history, 50, "medium")

	assert.True(t, result.IsAnomaly)
	assert.Equal(t, 50.0, result.ActualValue)
}

func TestAnalyticsService_SeasonalAnomalies_DefaultPeriod(t *testing.T) {
	svc := testService(t)

	data := make([]float64, 28)
	for i := range data {
		data[i] = 100 + float64(i%7)*5
	}

	results := svc.SeasonalAnomalies(context.Background(), data, 0)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestAnalyticsService_TrendChanges_DefaultWindow(t *testing.T) {
	svc := testService(t)

	data := make([]float64, 30)
	for i := range data {
		if i < 15 {
			data[i] = float64(i) * 2
		} else {
			data[i] = 30 - float64(i-15)*2
		}
	}

	results := svc.TrendChanges(context.Background(), data, 0)

	assert.NotNil(t, results)
	assert.NotEmpty(t, results)
}

func TestAnalyticsService_AnalyzeAnomalies(t *testing.T) {
	svc := testService(t)

	data := []float64{10, 11, 10.5, 11.2, 10.8, 100.0, 10.3, 11.1, 10.9, 10.7}

	summary := svc.AnalyzeAnomalies(context.Background(), data, 0, 0, 0)

	assert.NotNil(t, summary.Anomalies)
	assert.NotNil(t, summary.SeasonalAnomalies)
	assert.NotNil(t, summary.TrendChanges)
	assert.Equal(t, len(summary.Anomalies), summary.TotalAnomalies)
	assert.NotEmpty(t, summary.Anomalies)
}

func TestAnalyticsService_StaffingEstimate(t *testing.T) {
	svc := testService(t)

	plan := svc.StaffingEstimate(context.Background(), 100, 1.0, 0.85)

	assert.Equal(t, 10, plan.LabTechs)
	assert.Equal(t, 4, plan.Engineers)
	assert.NotEmpty(t, plan.Reasoning)
}

func TestAnalyticsService_MaxSeriesLength(t *testing.T) {
	svc := testService(t)
	assert.Equal(t, 100000, svc.MaxSeriesLength())
}
