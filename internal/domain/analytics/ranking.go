package analytics

import (
	"sort"
	"time"

	"perfscope/internal/domain/reporting"
)

// RedFlags returns reports scoring below threshold, worst-and-most-recent
// first: ascending by score, then descending by submission date, truncated to
// limit.
func RedFlags(reports []reporting.Report, threshold float64, limit int) []reporting.Report {
	flagged := []reporting.Report{}
	for _, r := range reports {
		if r.EvaluationScore < threshold {
			flagged = append(flagged, r)
		}
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		if flagged[i].EvaluationScore != flagged[j].EvaluationScore {
			return flagged[i].EvaluationScore < flagged[j].EvaluationScore
		}
		return flagged[i].SubmissionDate.After(flagged[j].SubmissionDate)
	})

	if limit > 0 && len(flagged) > limit {
		flagged = flagged[:limit]
	}
	return flagged
}

// TopContributors ranks employees by average score with report count as the
// tie-break: sustained volume at the same average outranks a single good
// report. Employee id breaks remaining ties for a stable order.
func TopContributors(reports []reporting.Report, limit int) []Contributor {
	totals := map[string]*Contributor{}
	for _, r := range reports {
		c, ok := totals[r.EmployeeID]
		if !ok {
			c = &Contributor{EmployeeID: r.EmployeeID}
			totals[r.EmployeeID] = c
		}
		c.TotalScore += r.EvaluationScore
		c.ReportCount++
	}

	ranked := make([]Contributor, 0, len(totals))
	for _, c := range totals {
		c.AverageScore = c.TotalScore / float64(c.ReportCount)
		ranked = append(ranked, *c)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AverageScore != ranked[j].AverageScore {
			return ranked[i].AverageScore > ranked[j].AverageScore
		}
		if ranked[i].ReportCount != ranked[j].ReportCount {
			return ranked[i].ReportCount > ranked[j].ReportCount
		}
		return ranked[i].EmployeeID < ranked[j].EmployeeID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// LeaderboardPosition ranks employeeID within the entire (unscoped) report
// set for the window, using the TopContributors ordering. Returns the 1-based
// rank and true, or 0 and false when the employee has no reports in window.
func LeaderboardPosition(allReports []reporting.Report, employeeID string, start, end time.Time) (int, bool) {
	windowed := []reporting.Report{}
	for _, r := range allReports {
		if !r.SubmissionDate.Before(start) && !r.SubmissionDate.After(end) {
			windowed = append(windowed, r)
		}
	}

	ranked := TopContributors(windowed, 0)
	for i, c := range ranked {
		if c.EmployeeID == employeeID {
			return i + 1, true
		}
	}
	return 0, false
}
