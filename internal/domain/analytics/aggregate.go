package analytics

import (
	"math"

	"perfscope/internal/domain/reporting"
)

// Average returns the arithmetic mean of evaluation scores. Empty input
// yields 0, never NaN.
func Average(reports []reporting.Report) float64 {
	if len(reports) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range reports {
		sum += r.EvaluationScore
	}
	return sum / float64(len(reports))
}

// ComputeConsistency maps the coefficient of variation of the score set onto
// a 0-100 steadiness value. The x10 amplification spreads typical CVs (0-10%)
// across most of the display range. Fewer than 2 reports carry no variance
// information and yield nil.
func ComputeConsistency(reports []reporting.Report) *Consistency {
	if len(reports) < 2 {
		return nil
	}

	mean := Average(reports)
	variance := 0.0
	for _, r := range reports {
		diff := r.EvaluationScore - mean
		variance += diff * diff
	}
	variance /= float64(len(reports))
	stdDev := math.Sqrt(variance)

	cv := 0.0
	if mean != 0 {
		cv = stdDev / mean * 100
	}

	return &Consistency{
		Value:  clamp(0, 100, 100-cv*10),
		StdDev: stdDev,
		CV:     cv,
	}
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
