package exporter

import (
	"fmt"
	"strconv"
	"time"

	"labpulse/internal/anomaly"
	"labpulse/internal/forecast"
	"labpulse/internal/stats"
	apiv1 "labpulse/pkg/contracts/api/v1"
)

// AnalysisReport bundles the outputs of a full series analysis for export.
type AnalysisReport struct {
	GeneratedAt       time.Time
	SeriesName        string
	Summary           stats.DescriptiveStats
	Forecasts         []forecast.Forecast
	Insights          []apiv1.Insight
	Anomalies         []anomaly.Anomaly
	SeasonalAnomalies []anomaly.SeasonalAnomaly
	TrendChanges      []anomaly.TrendChange
	Surges            []forecast.SurgePeriod
	Staffing          *forecast.StaffingPlan
}

// ReportExporter writes an AnalysisReport as a set of CSV files.
type ReportExporter struct {
	writer *CSVWriter
}

// NewReportExporter creates a new report exporter rooted at dir.
func NewReportExporter(dir string) *ReportExporter {
	return &ReportExporter{writer: NewCSVWriter(dir)}
}

// Export writes all report sections. Empty sections are skipped so a short
// analysis does not litter the reports directory with header-only files.
func (e *ReportExporter) Export(report AnalysisReport) error {
	if err := e.writeSummary(report); err != nil {
		return fmt.Errorf("summary export failed: %w", err)
	}
	if len(report.Forecasts) > 0 {
		if err := e.writeForecasts(report.Forecasts); err != nil {
			return fmt.Errorf("forecast export failed: %w", err)
		}
	}
	if len(report.Anomalies) > 0 || len(report.SeasonalAnomalies) > 0 || len(report.TrendChanges) > 0 {
		if err := e.writeAnomalies(report); err != nil {
			return fmt.Errorf("anomaly export failed: %w", err)
		}
	}
	if len(report.Surges) > 0 {
		if err := e.writeSurges(report.Surges); err != nil {
			return fmt.Errorf("surge export failed: %w", err)
		}
	}
	return nil
}

func (e *ReportExporter) writeSummary(report AnalysisReport) error {
	records := [][]string{
		{"series", report.SeriesName},
		{"generated_at", report.GeneratedAt.Format(time.RFC3339)},
		{"count", strconv.Itoa(report.Summary.Count)},
		{"mean", formatFloat(report.Summary.Mean)},
		{"std_dev", formatFloat(report.Summary.StdDev)},
		{"min", formatFloat(report.Summary.Min)},
		{"q1", formatFloat(report.Summary.Q1)},
		{"median", formatFloat(report.Summary.Median)},
		{"q3", formatFloat(report.Summary.Q3)},
		{"max", formatFloat(report.Summary.Max)},
		{"iqr", formatFloat(report.Summary.IQR)},
		{"skewness", formatFloat(report.Summary.Skewness)},
		{"kurtosis", formatFloat(report.Summary.Kurtosis)},
	}

	if report.Staffing != nil {
		records = append(records,
			[]string{"recommended_lab_techs", strconv.Itoa(report.Staffing.LabTechs)},
			[]string{"recommended_engineers", strconv.Itoa(report.Staffing.Engineers)},
		)
	}

	for _, insight := range report.Insights {
		records = append(records, []string{"insight_" + insight.Type, insight.Message})
	}

	return e.writer.WriteSimpleCSV("summary.csv", []string{"metric", "value"}, records)
}

func (e *ReportExporter) writeForecasts(forecasts []forecast.Forecast) error {
	stream, err := e.writer.CreateStreamWriter("forecast.csv",
		[]string{"step", "predicted_value", "lower_bound", "upper_bound", "confidence", "trend"})
	if err != nil {
		return err
	}

	for i, f := range forecasts {
		record := []string{
			strconv.Itoa(i + 1),
			formatFloat(f.PredictedValue),
			formatFloat(f.LowerBound),
			formatFloat(f.UpperBound),
			formatPercent(f.Confidence),
			f.Trend,
		}
		if err := stream.WriteRecord(record); err != nil {
			stream.Close()
			return err
		}
	}

	return stream.Close()
}

func (e *ReportExporter) writeAnomalies(report AnalysisReport) error {
	records := make([][]string, 0, len(report.Anomalies)+len(report.SeasonalAnomalies)+len(report.TrendChanges))

	for _, a := range report.Anomalies {
		records = append(records, []string{
			"ensemble",
			strconv.Itoa(a.Index),
			formatFloat(a.Value),
			a.Severity,
			fmt.Sprintf("methods=%v deviation=%s%%", a.Methods, formatFloat(a.DeviationPercent)),
		})
	}
	for _, a := range report.SeasonalAnomalies {
		records = append(records, []string{
			"seasonal",
			strconv.Itoa(a.Index),
			formatFloat(a.Value),
			"",
			fmt.Sprintf("expected=%s deviation=%s%%", formatFloat(a.ExpectedValue), formatFloat(a.Deviation)),
		})
	}
	for _, tc := range report.TrendChanges {
		severity := ""
		if tc.Significant {
			severity = "significant"
		}
		records = append(records, []string{
			"trend-change",
			strconv.Itoa(tc.Index),
			"",
			severity,
			fmt.Sprintf("old=%s new=%s change=%s%%", formatFloat(tc.OldTrend), formatFloat(tc.NewTrend), formatFloat(tc.ChangePercent)),
		})
	}

	return e.writer.WriteSimpleCSV("anomalies.csv",
		[]string{"kind", "index", "value", "severity", "detail"}, records)
}

func (e *ReportExporter) writeSurges(surges []forecast.SurgePeriod) error {
	records := make([][]string, 0, len(surges))
	for _, s := range surges {
		records = append(records, []string{
			s.StartDate,
			s.EndDate,
			formatFloat(s.PeakValue),
			s.Severity,
		})
	}

	return e.writer.WriteSimpleCSV("surges.csv",
		[]string{"start_date", "end_date", "peak_value", "severity"}, records)
}
