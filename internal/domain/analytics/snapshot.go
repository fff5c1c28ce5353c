package analytics

import (
	"time"

	"perfscope/internal/domain/catalog"
	"perfscope/internal/domain/reporting"
)

// Snapshot recomputes every derived metric for one already-scoped report
// subset and window. This is the single consolidation point for the
// aggregation formulas; callers never re-derive them locally.
func Snapshot(reports []reporting.Report, goals []catalog.Goal, projects []catalog.Project, start, end time.Time, granularity string) MetricsSnapshot {
	return MetricsSnapshot{
		Average:       Average(reports),
		ReportCount:   len(reports),
		Consistency:   ComputeConsistency(reports),
		Reliability:   SubmissionReliability(reports, projects, goals, start, end),
		RedFlags:      RedFlags(reports, RedFlagThreshold, DefaultRedFlagLimit),
		Contributors:  TopContributors(reports, DefaultContributorLimit),
		Series:        TimeBucketed(reports, start, end, granularity),
		GoalAlignment: GoalAlignment(reports, goals, projects),
		KeySkills:     CriteriaAverages(reports),
	}
}
