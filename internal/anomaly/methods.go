package anomaly

import "math/bits"

// Method identifies one detector in the ensemble. The set of methods is
// fixed, so per-point membership is a bitmask instead of a grown string
// slice; counting agreeing methods is a population count.
type Method uint8

const (
	MethodZScore Method = 1 << iota
	MethodIQR
	MethodMovingAverage
)

// methodSet is the set of ensemble methods that flagged one point.
type methodSet uint8

func (s *methodSet) add(m Method) { *s |= methodSet(m) }

func (s methodSet) count() int { return bits.OnesCount8(uint8(s)) }

func (s methodSet) empty() bool { return s == 0 }

// names returns the wire labels of the members, in fixed method order.
func (s methodSet) names() []string {
	if s.empty() {
		return nil
	}
	names := make([]string, 0, s.count())
	if s&methodSet(MethodZScore) != 0 {
		names = append(names, "z-score")
	}
	if s&methodSet(MethodIQR) != 0 {
		names = append(names, "iqr")
	}
	if s&methodSet(MethodMovingAverage) != 0 {
		names = append(names, "moving-avg")
	}
	return names
}

// Severity labels shared by all detectors in this package.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)
