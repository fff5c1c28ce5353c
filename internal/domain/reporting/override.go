package reporting

import "strings"

// ApplyOverride sets a manager's replacement score and mandatory reasoning on
// a report. Validation failures reject the transition and leave the report
// untouched; on success both fields are set together.
func ApplyOverride(report *Report, score float64, reasoning string) error {
	if score < 0 || score > 10 {
		return ErrScoreOutOfRange
	}
	trimmed := strings.TrimSpace(reasoning)
	if trimmed == "" {
		return ErrReasoningMissing
	}
	report.ManagerOverallScore = &score
	report.ManagerOverrideReasoning = &trimmed
	return nil
}

// ClearOverride unsets both override fields. A report without an override is
// left as-is.
func ClearOverride(report *Report) {
	report.ManagerOverallScore = nil
	report.ManagerOverrideReasoning = nil
}
