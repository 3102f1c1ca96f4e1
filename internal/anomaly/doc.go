// Package anomaly implements the detection side of the analytics engine:
// an ensemble outlier detector (z-score, Tukey IQR fence, moving-average
// deviation), an adaptive single-point real-time check, seasonal-phase
// deviation detection, windowed trend-change detection, and a summary
// aggregator composing all of them over one series.
//
// Each detector follows the same two-phase structure: a sequential pass
// computes the global and windowed aggregates, then a per-index-independent
// map produces per-point verdicts. Only the second phase fans out across
// workers, so results are identical at any concurrency level. "No anomaly"
// and "insufficient data" are both empty result lists; detectors never
// return errors.
package anomaly
