package reporting

import (
	"errors"
	"testing"
)

func TestApplyOverride(t *testing.T) {
	report := Report{ID: "r1", EvaluationScore: 5}
	if err := ApplyOverride(&report, 7, "manager adjustment"); err != nil {
		t.Fatalf("expected override to apply, got %v", err)
	}
	if !report.Overridden() {
		t.Fatal("expected report to be overridden")
	}
	if *report.ManagerOverallScore != 7 {
		t.Fatalf("expected override score 7, got %v", *report.ManagerOverallScore)
	}
	if *report.ManagerOverrideReasoning != "manager adjustment" {
		t.Fatalf("unexpected reasoning %q", *report.ManagerOverrideReasoning)
	}
	if report.EffectiveScore() != 7 {
		t.Fatalf("expected effective score 7, got %v", report.EffectiveScore())
	}
}

func TestApplyOverrideScoreOutOfRange(t *testing.T) {
	report := Report{ID: "r1"}
	if err := ApplyOverride(&report, 11, "reason"); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected score range error, got %v", err)
	}
	if err := ApplyOverride(&report, -0.5, "reason"); !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("expected score range error, got %v", err)
	}
	if report.Overridden() {
		t.Fatal("rejected override must not mutate the report")
	}
}

func TestApplyOverrideEmptyReasoning(t *testing.T) {
	report := Report{ID: "r1"}
	if err := ApplyOverride(&report, 7, "   "); !errors.Is(err, ErrReasoningMissing) {
		t.Fatalf("expected reasoning error, got %v", err)
	}
	if report.Overridden() || report.ManagerOverrideReasoning != nil {
		t.Fatal("rejected override must not mutate the report")
	}
}

func TestClearOverride(t *testing.T) {
	report := Report{ID: "r1", EvaluationScore: 4}
	if err := ApplyOverride(&report, 7, "ok"); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	ClearOverride(&report)
	if report.ManagerOverallScore != nil || report.ManagerOverrideReasoning != nil {
		t.Fatal("clear must unset both override fields")
	}
	if report.EffectiveScore() != 4 {
		t.Fatalf("expected oracle score after clear, got %v", report.EffectiveScore())
	}

	// Clearing again is a no-op.
	ClearOverride(&report)
	if report.ManagerOverallScore != nil {
		t.Fatal("double clear must stay cleared")
	}
}

func TestApplyOverrideBoundaryScores(t *testing.T) {
	report := Report{ID: "r1"}
	if err := ApplyOverride(&report, 0, "floor"); err != nil {
		t.Fatalf("score 0 is valid, got %v", err)
	}
	if err := ApplyOverride(&report, 10, "ceiling"); err != nil {
		t.Fatalf("score 10 is valid, got %v", err)
	}
}
