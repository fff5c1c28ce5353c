package analytics

import (
	"testing"
	"time"

	"perfscope/internal/domain/reporting"
)

func day(offset int) time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func scored(scores ...float64) []reporting.Report {
	out := make([]reporting.Report, len(scores))
	for i, s := range scores {
		out[i] = reporting.Report{
			ID:              string(rune('a' + i)),
			EmployeeID:      "e",
			GoalID:          "g",
			EvaluationScore: s,
			SubmissionDate:  day(i),
		}
	}
	return out
}

func TestAverageEmpty(t *testing.T) {
	if got := Average(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
}

func TestAverage(t *testing.T) {
	if got := Average(scored(8, 6)); got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
}

func TestConsistencyTooFewReports(t *testing.T) {
	if got := ComputeConsistency(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %+v", got)
	}
	if got := ComputeConsistency(scored(8)); got != nil {
		t.Fatalf("expected nil for single report, got %+v", got)
	}
}

func TestConsistencyZeroVariance(t *testing.T) {
	got := ComputeConsistency(scored(8, 8, 8))
	if got == nil {
		t.Fatal("expected a consistency result")
	}
	if got.Value != 100 {
		t.Fatalf("identical scores must score 100, got %v", got.Value)
	}
	if got.StdDev != 0 || got.CV != 0 {
		t.Fatalf("expected zero stddev and cv, got %+v", got)
	}
}

func TestConsistencyPenalizesVariance(t *testing.T) {
	steady := ComputeConsistency(scored(8, 8.1, 7.9))
	erratic := ComputeConsistency(scored(2, 9, 4))
	if steady == nil || erratic == nil {
		t.Fatal("expected results for both sets")
	}
	if erratic.Value >= steady.Value {
		t.Fatalf("erratic scores (%v) must rate below steady scores (%v)", erratic.Value, steady.Value)
	}
}

func TestConsistencyClampedToZero(t *testing.T) {
	got := ComputeConsistency(scored(0.1, 9.9, 0.1, 9.9))
	if got == nil {
		t.Fatal("expected a consistency result")
	}
	if got.Value < 0 || got.Value > 100 {
		t.Fatalf("value must stay in [0,100], got %v", got.Value)
	}
}

func TestConsistencyZeroMean(t *testing.T) {
	got := ComputeConsistency(scored(0, 0))
	if got == nil {
		t.Fatal("expected a consistency result")
	}
	if got.CV != 0 {
		t.Fatalf("cv must be 0 when mean is 0, got %v", got.CV)
	}
	if got.Value != 100 {
		t.Fatalf("zero variance at zero mean still scores 100, got %v", got.Value)
	}
}
