package exporter

import "strconv"

// formatFloat renders a value with two decimal places, the precision used
// across all report cells.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatPercent renders a 0..1 fraction as a percentage with one decimal
// place.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}
