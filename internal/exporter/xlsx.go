package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// WorkbookExporter writes an AnalysisReport as a single XLSX workbook with
// one sheet per report section.
type WorkbookExporter struct {
	dir string
}

// NewWorkbookExporter creates a new workbook exporter rooted at dir.
func NewWorkbookExporter(dir string) *WorkbookExporter {
	return &WorkbookExporter{dir: dir}
}

// Export writes the workbook to fileName under the reports directory.
func (e *WorkbookExporter) Export(report AnalysisReport, fileName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeSummarySheet(f, report); err != nil {
		return fmt.Errorf("summary sheet failed: %w", err)
	}
	if len(report.Forecasts) > 0 {
		if err := e.writeForecastSheet(f, report); err != nil {
			return fmt.Errorf("forecast sheet failed: %w", err)
		}
	}
	if len(report.Anomalies) > 0 {
		if err := e.writeAnomalySheet(f, report); err != nil {
			return fmt.Errorf("anomaly sheet failed: %w", err)
		}
	}
	if len(report.Surges) > 0 {
		if err := e.writeSurgeSheet(f, report); err != nil {
			return fmt.Errorf("surge sheet failed: %w", err)
		}
	}

	fullPath := filepath.Join(e.dir, fileName)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := f.SaveAs(fullPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (e *WorkbookExporter) writeSummarySheet(f *excelize.File, report AnalysisReport) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"metric", "value"},
		{"series", report.SeriesName},
		{"generated_at", report.GeneratedAt.Format(time.RFC3339)},
		{"count", report.Summary.Count},
		{"mean", report.Summary.Mean},
		{"std_dev", report.Summary.StdDev},
		{"min", report.Summary.Min},
		{"q1", report.Summary.Q1},
		{"median", report.Summary.Median},
		{"q3", report.Summary.Q3},
		{"max", report.Summary.Max},
		{"iqr", report.Summary.IQR},
		{"skewness", report.Summary.Skewness},
		{"kurtosis", report.Summary.Kurtosis},
	}

	if report.Staffing != nil {
		rows = append(rows,
			[]interface{}{"recommended_lab_techs", report.Staffing.LabTechs},
			[]interface{}{"recommended_engineers", report.Staffing.Engineers},
			[]interface{}{"staffing_reasoning", report.Staffing.Reasoning},
		)
	}

	for _, insight := range report.Insights {
		rows = append(rows, []interface{}{"insight_" + insight.Type, insight.Message})
	}

	return writeRows(f, sheet, rows)
}

func (e *WorkbookExporter) writeForecastSheet(f *excelize.File, report AnalysisReport) error {
	const sheet = "Forecast"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"step", "predicted_value", "lower_bound", "upper_bound", "confidence", "trend"},
	}
	for i, fc := range report.Forecasts {
		rows = append(rows, []interface{}{
			i + 1, fc.PredictedValue, fc.LowerBound, fc.UpperBound, fc.Confidence, fc.Trend,
		})
	}

	return writeRows(f, sheet, rows)
}

func (e *WorkbookExporter) writeAnomalySheet(f *excelize.File, report AnalysisReport) error {
	const sheet = "Anomalies"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"index", "value", "severity", "methods", "deviation_percent"},
	}
	for _, a := range report.Anomalies {
		rows = append(rows, []interface{}{
			a.Index, a.Value, a.Severity, fmt.Sprintf("%v", a.Methods), a.DeviationPercent,
		})
	}

	return writeRows(f, sheet, rows)
}

func (e *WorkbookExporter) writeSurgeSheet(f *excelize.File, report AnalysisReport) error {
	const sheet = "Surges"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"start_date", "end_date", "peak_value", "severity"},
	}
	for _, s := range report.Surges {
		rows = append(rows, []interface{}{s.StartDate, s.EndDate, s.PeakValue, s.Severity})
	}

	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
