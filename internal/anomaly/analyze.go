package anomaly

// AnalysisSummary aggregates the verdicts of all three detectors over one
// series. It is derived by Analyze and never constructed independently.
type AnalysisSummary struct {
	TotalAnomalies          int               `json:"total_anomalies"`
	HighSeverityCount       int               `json:"high_severity_count"`
	AverageDeviation        float64           `json:"average_deviation"`
	SignificantTrendChanges int               `json:"significant_trend_changes"`
	SeasonalAnomalyCount    int               `json:"seasonal_anomaly_count"`
	Anomalies               []Anomaly         `json:"anomalies"`
	SeasonalAnomalies       []SeasonalAnomaly `json:"seasonal_anomalies"`
	TrendChanges            []TrendChange     `json:"trend_changes"`
}

// Analyze runs the ensemble, seasonal and trend detectors over the same
// series and folds their results into one summary.
func Analyze(data []float64, threshold float64, seasonalPeriod, window int) AnalysisSummary {
	anomalies := Detect(data, threshold)
	seasonal := DetectSeasonal(data, seasonalPeriod)
	trendChanges := DetectTrendChanges(data, window)

	highSeverity := 0
	averageDeviation := 0.0
	if len(anomalies) > 0 {
		sum := 0.0
		for _, a := range anomalies {
			if a.Severity == SeverityHigh {
				highSeverity++
			}
			sum += a.DeviationPercent
		}
		averageDeviation = sum / float64(len(anomalies))
	}

	return AnalysisSummary{
		TotalAnomalies:          len(anomalies),
		HighSeverityCount:       highSeverity,
		AverageDeviation:        averageDeviation,
		SignificantTrendChanges: len(trendChanges),
		SeasonalAnomalyCount:    len(seasonal),
		Anomalies:               anomalies,
		SeasonalAnomalies:       seasonal,
		TrendChanges:            trendChanges,
	}
}
