package analytics

import (
	"math"
	"time"

	"perfscope/internal/domain/catalog"
	"perfscope/internal/domain/reporting"
)

// frequencyMultiplier converts a project's report cadence into expected
// reports per day.
func frequencyMultiplier(frequency string) float64 {
	switch frequency {
	case catalog.FrequencyDaily:
		return 1
	case catalog.FrequencyWeekly:
		return 1.0 / 7
	case catalog.FrequencyBiWeekly:
		return 1.0 / 14
	case catalog.FrequencyMonthly:
		return 1.0 / 30
	default:
		return 0
	}
}

// SubmissionReliability compares actual submissions against the volume each
// project's cadence implies for the window. Projects without an in-scope goal
// contribute nothing; when no project expects any report the rate is
// meaningless and the result is nil rather than a division by zero.
//
// Trend recomputes the ratio for each of the last four 7-day windows ending
// at end, oldest first.
func SubmissionReliability(reports []reporting.Report, projects []catalog.Project, goalsInScope []catalog.Goal, start, end time.Time) *Reliability {
	days := end.Sub(start).Hours() / 24
	if days <= 0 {
		return nil
	}

	goalsByProject := map[string][]string{}
	projectOfGoal := map[string]string{}
	for _, goal := range goalsInScope {
		goalsByProject[goal.ProjectID] = append(goalsByProject[goal.ProjectID], goal.ID)
		projectOfGoal[goal.ID] = goal.ProjectID
	}

	totalExpected := 0
	for _, project := range projects {
		goalCount := len(goalsByProject[project.ID])
		if goalCount == 0 {
			continue
		}
		totalExpected += int(math.Ceil(days * frequencyMultiplier(project.ReportFrequency) * float64(goalCount)))
	}
	if totalExpected == 0 {
		return nil
	}

	totalActual := countInWindow(reports, projectOfGoal, start, end, true)

	result := &Reliability{
		Rate:     clamp(0, 100, float64(totalActual)/float64(totalExpected)*100),
		Expected: totalExpected,
		Actual:   totalActual,
	}

	for i := 0; i < 4; i++ {
		weekEnd := end.AddDate(0, 0, -7*(3-i))
		weekStart := weekEnd.AddDate(0, 0, -7)

		weekExpected := 0
		for _, project := range projects {
			goalCount := len(goalsByProject[project.ID])
			if goalCount == 0 {
				continue
			}
			weekExpected += int(math.Ceil(7 * frequencyMultiplier(project.ReportFrequency) * float64(goalCount)))
		}
		if weekExpected == 0 {
			continue
		}
		weekActual := countInWindow(reports, projectOfGoal, weekStart, weekEnd, false)
		result.Trend[i] = clamp(0, 100, float64(weekActual)/float64(weekExpected)*100)
	}

	return result
}

// countInWindow counts reports against in-scope goals submitted within the
// window. The overall window includes both bounds, matching the store's
// submission_date filter, so a report dated exactly at start still counts.
// Trend windows exclude the lower bound so adjacent partitions never
// double-count a boundary report.
func countInWindow(reports []reporting.Report, projectOfGoal map[string]string, start, end time.Time, includeStart bool) int {
	count := 0
	for _, r := range reports {
		if _, ok := projectOfGoal[r.GoalID]; !ok {
			continue
		}
		if r.SubmissionDate.Before(start) || r.SubmissionDate.After(end) {
			continue
		}
		if !includeStart && r.SubmissionDate.Equal(start) {
			continue
		}
		count++
	}
	return count
}
