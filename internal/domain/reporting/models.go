package reporting

import "time"

type CriterionScore struct {
	CriterionName string  `json:"criterionName"`
	Score         float64 `json:"score"`
}

type Report struct {
	ID                       string           `json:"id"`
	GoalID                   string           `json:"goalId"`
	EmployeeID               string           `json:"employeeId"`
	SubmissionDate           time.Time        `json:"submissionDate"`
	EvaluationScore          float64          `json:"evaluationScore"`
	EvaluationReasoning      string           `json:"evaluationReasoning"`
	CriterionScores          []CriterionScore `json:"criterionScores"`
	ManagerOverallScore      *float64         `json:"managerOverallScore,omitempty"`
	ManagerOverrideReasoning *string          `json:"managerOverrideReasoning,omitempty"`
}

// Overridden reports whether a manager override is in effect.
func (r Report) Overridden() bool {
	return r.ManagerOverallScore != nil
}

// EffectiveScore is the manager override when present, the oracle-assigned
// evaluation score otherwise.
func (r Report) EffectiveScore() float64 {
	if r.ManagerOverallScore != nil {
		return *r.ManagerOverallScore
	}
	return r.EvaluationScore
}
