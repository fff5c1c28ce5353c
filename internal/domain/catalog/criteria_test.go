package catalog

import (
	"errors"
	"testing"
)

func TestValidateCriteria(t *testing.T) {
	valid := []Criterion{
		{Name: "Quality", Weight: 60},
		{Name: "Timeliness", Weight: 40},
	}
	if err := ValidateCriteria(valid); err != nil {
		t.Fatalf("expected valid criteria, got %v", err)
	}
}

func TestValidateCriteriaWeightSum(t *testing.T) {
	short := []Criterion{{Name: "Quality", Weight: 60}, {Name: "Timeliness", Weight: 30}}
	if err := ValidateCriteria(short); !errors.Is(err, ErrWeightsNotHundred) {
		t.Fatalf("expected weight sum error, got %v", err)
	}
}

func TestValidateCriteriaDuplicateNames(t *testing.T) {
	dup := []Criterion{{Name: "Quality", Weight: 50}, {Name: " quality ", Weight: 50}}
	if err := ValidateCriteria(dup); !errors.Is(err, ErrDuplicateCriterion) {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
}

func TestValidateCriteriaWeightRange(t *testing.T) {
	zero := []Criterion{{Name: "Quality", Weight: 0}, {Name: "Speed", Weight: 100}}
	if err := ValidateCriteria(zero); !errors.Is(err, ErrWeightOutOfRange) {
		t.Fatalf("expected weight range error, got %v", err)
	}
}

func TestValidateCriteriaEmpty(t *testing.T) {
	if err := ValidateCriteria(nil); !errors.Is(err, ErrNoCriteria) {
		t.Fatalf("expected no-criteria error, got %v", err)
	}
}

func TestValidateAssignees(t *testing.T) {
	ok := []Assignee{{ID: "a"}, {ID: "b"}}
	if err := ValidateAssignees(ok); err != nil {
		t.Fatalf("expected valid assignees, got %v", err)
	}
	dup := []Assignee{{ID: "a", Type: AssigneeEmployee}, {ID: "a", Type: AssigneeManager}}
	if err := ValidateAssignees(dup); !errors.Is(err, ErrDuplicateAssignee) {
		t.Fatalf("expected duplicate assignee error, got %v", err)
	}
}

func TestValidateFrequency(t *testing.T) {
	for _, freq := range []string{FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly} {
		if err := ValidateFrequency(freq); err != nil {
			t.Fatalf("expected %s to be valid, got %v", freq, err)
		}
	}
	if err := ValidateFrequency("yearly"); !errors.Is(err, ErrUnknownFrequency) {
		t.Fatalf("expected unknown frequency error, got %v", err)
	}
}
