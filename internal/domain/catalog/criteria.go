package catalog

import "strings"

// ValidateCriteria enforces the commit-time invariant on a goal's scoring
// criteria: non-empty, unique names, each weight in (0,100], weights summing
// to exactly 100. Transient edit states may violate this; committed goals
// must not.
func ValidateCriteria(criteria []Criterion) error {
	if len(criteria) == 0 {
		return ErrNoCriteria
	}

	seen := map[string]bool{}
	total := 0
	for _, c := range criteria {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if seen[name] {
			return ErrDuplicateCriterion
		}
		seen[name] = true
		if c.Weight <= 0 || c.Weight > 100 {
			return ErrWeightOutOfRange
		}
		total += c.Weight
	}
	if total != 100 {
		return ErrWeightsNotHundred
	}
	return nil
}

// ValidateAssignees rejects duplicate assignee ids on a project.
func ValidateAssignees(assignees []Assignee) error {
	seen := map[string]bool{}
	for _, a := range assignees {
		if seen[a.ID] {
			return ErrDuplicateAssignee
		}
		seen[a.ID] = true
	}
	return nil
}

// ValidateFrequency checks a project's report cadence value.
func ValidateFrequency(frequency string) error {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly:
		return nil
	default:
		return ErrUnknownFrequency
	}
}
