package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"labpulse/internal/app"
	"labpulse/internal/config"
	"labpulse/internal/exporter"
	"labpulse/internal/forecast"
	"labpulse/internal/services"
)

func main() {
	input := flag.String("in", "", "input CSV file with one volume column (required)")
	outputDir := flag.String("out", "", "output directory for reports (defaults to configured reports dir)")
	format := flag.String("format", "csv", "report format: csv or xlsx")
	steps := flag.Int("steps", 7, "forecast steps")
	season := flag.Int("season", 0, "season length (0 uses configured default)")
	threshold := flag.Float64("threshold", 0, "anomaly z-score threshold (0 uses configured default)")
	window := flag.Int("window", 0, "trend window (0 uses configured default)")
	complexity := flag.Float64("complexity", 1.0, "average test complexity score for staffing")
	efficiency := flag.Float64("efficiency", 0.85, "historical staff efficiency for staffing")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: labpulse-report -in <file.csv> [-out dir] [-format csv|xlsx]")
		os.Exit(2)
	}
	if *format != "csv" && *format != "xlsx" {
		slog.Error("Unknown report format", "format", *format)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Logging)
	slog.SetDefault(logger)

	if *outputDir == "" {
		*outputDir = cfg.Paths.ReportsDir
	}

	slog.Info("Loading series", "path", *input)
	series, dates, err := loadSeries(*input)
	if err != nil {
		slog.Error("Failed to load series", "error", err)
		os.Exit(1)
	}
	if len(series) == 0 {
		slog.Error("No data points found in CSV", "path", *input)
		os.Exit(1)
	}
	if len(series) > cfg.Analytics.MaxSeriesLength {
		slog.Error("Series exceeds configured maximum length",
			"points", len(series),
			"max", cfg.Analytics.MaxSeriesLength)
		os.Exit(1)
	}
	slog.Info("Loaded series", "points", len(series))

	svc := services.NewAnalyticsService(cfg.Analytics, logger)
	ctx := context.Background()

	summary := svc.Describe(ctx, series)
	forecastReport := svc.Forecast(ctx, series, *steps, *season)
	analysis := svc.AnalyzeAnomalies(ctx, series, *threshold, *season, *window)
	surges := svc.Surges(ctx, series, dates, 0)

	var staffing *forecast.StaffingPlan
	if len(forecastReport.Forecasts) > 0 {
		plan := svc.StaffingEstimate(ctx, forecastReport.Forecasts[0].PredictedValue, *complexity, *efficiency)
		staffing = &plan
	}

	report := exporter.AnalysisReport{
		GeneratedAt:       time.Now(),
		SeriesName:        *input,
		Summary:           summary,
		Forecasts:         forecastReport.Forecasts,
		Insights:          forecastReport.Insights,
		Anomalies:         analysis.Anomalies,
		SeasonalAnomalies: analysis.SeasonalAnomalies,
		TrendChanges:      analysis.TrendChanges,
		Surges:            surges,
		Staffing:          staffing,
	}

	switch *format {
	case "xlsx":
		err = exporter.NewWorkbookExporter(*outputDir).Export(report, "labpulse_report.xlsx")
	default:
		err = exporter.NewReportExporter(*outputDir).Export(report)
	}
	if err != nil {
		slog.Error("Failed to write report", "error", err)
		os.Exit(1)
	}

	slog.Info("Report written",
		"dir", *outputDir,
		"format", *format,
		"anomalies", analysis.TotalAnomalies,
		"surges", len(surges))
}

// loadSeries reads a CSV with either a single value column, or a date
// column followed by a value column. A header row is skipped when the
// value cell does not parse.
func loadSeries(path string) ([]float64, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var series []float64
	var dates []string
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}
		row++

		if len(record) == 0 {
			continue
		}

		valueCell := record[len(record)-1]
		value, err := strconv.ParseFloat(valueCell, 64)
		if err != nil {
			if row == 1 {
				// header row
				continue
			}
			return nil, nil, fmt.Errorf("row %d: invalid value %q", row, valueCell)
		}

		series = append(series, value)
		if len(record) > 1 {
			dates = append(dates, record[0])
		} else {
			dates = append(dates, strconv.Itoa(len(series)))
		}
	}

	return series, dates, nil
}
