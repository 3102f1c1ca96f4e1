// Package exporter writes analysis reports to disk.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// streaming, and UTF-8 BOM for Excel compatibility.
//
// ReportExporter: Turns an AnalysisReport into a set of CSV files
// (summary, forecast, anomalies, surges) under the reports directory.
//
// WorkbookExporter: Writes the same report as a single XLSX workbook with
// one sheet per section.
package exporter
