package analytics

import (
	"testing"

	"perfscope/internal/domain/reporting"
)

func TestCriteriaAverages(t *testing.T) {
	reports := []reporting.Report{
		{ID: "r1", EmployeeID: "e", GoalID: "g", SubmissionDate: day(0), CriterionScores: []reporting.CriterionScore{
			{CriterionName: "Quality", Score: 8},
			{CriterionName: "Timeliness", Score: 6},
		}},
		{ID: "r2", EmployeeID: "e", GoalID: "g", SubmissionDate: day(1), CriterionScores: []reporting.CriterionScore{
			{CriterionName: "Quality", Score: 6},
		}},
	}

	averages := CriteriaAverages(reports)
	if len(averages) != 2 {
		t.Fatalf("expected 2 criteria, got %d", len(averages))
	}
	if averages[0].Name != "Quality" {
		t.Fatalf("most frequent criterion first, got %s", averages[0].Name)
	}
	if averages[0].AverageScore != 7 || averages[0].Frequency != 2 {
		t.Fatalf("unexpected quality stats %+v", averages[0])
	}
	if averages[1].Name != "Timeliness" || averages[1].Frequency != 1 {
		t.Fatalf("unexpected second entry %+v", averages[1])
	}
}

func TestCriteriaAveragesEmpty(t *testing.T) {
	if averages := CriteriaAverages(nil); len(averages) != 0 {
		t.Fatalf("expected empty result, got %v", averages)
	}
}

func TestCriteriaAveragesNameTieBreak(t *testing.T) {
	reports := []reporting.Report{
		{ID: "r1", EmployeeID: "e", GoalID: "g", SubmissionDate: day(0), CriterionScores: []reporting.CriterionScore{
			{CriterionName: "Zeal", Score: 5},
			{CriterionName: "Accuracy", Score: 5},
		}},
	}

	averages := CriteriaAverages(reports)
	if averages[0].Name != "Accuracy" {
		t.Fatalf("equal frequencies order by name, got %s first", averages[0].Name)
	}
}
