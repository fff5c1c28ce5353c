package analytics

import (
	"time"

	"perfscope/internal/domain/reporting"
)

// Consistency is a 0-100 steadiness score derived from the coefficient of
// variation of a report set's evaluation scores.
type Consistency struct {
	Value  float64 `json:"value"`
	StdDev float64 `json:"stdDev"`
	CV     float64 `json:"cv"`
}

// Reliability compares actual report submissions against the volume each
// project's cadence calls for over a window.
type Reliability struct {
	Rate     float64    `json:"rate"`
	Expected int        `json:"expected"`
	Actual   int        `json:"actual"`
	Trend    [4]float64 `json:"trend"`
}

type Contributor struct {
	EmployeeID   string  `json:"employeeId"`
	TotalScore   float64 `json:"totalScore"`
	ReportCount  int     `json:"reportCount"`
	AverageScore float64 `json:"averageScore"`
}

type TimeBucket struct {
	Period  string    `json:"period"`
	Start   time.Time `json:"start"`
	Total   int       `json:"total"`
	RedFlag int       `json:"redFlag"`
}

// GoalBand holds the stacked high/medium/low report counts for one goal.
type GoalBand struct {
	GoalID      string `json:"goalId"`
	GoalTitle   string `json:"goalTitle"`
	ProjectName string `json:"projectName"`
	High        int    `json:"high"`
	Medium      int    `json:"medium"`
	Low         int    `json:"low"`
	Total       int    `json:"total"`
}

type CriterionAverage struct {
	Name         string  `json:"name"`
	AverageScore float64 `json:"averageScore"`
	Frequency    int     `json:"frequency"`
}

// MetricsSnapshot is the full aggregate output for one (scope, window) pair.
// It carries no lifecycle of its own and is recomputed on demand.
type MetricsSnapshot struct {
	Average       float64            `json:"average"`
	ReportCount   int                `json:"reportCount"`
	Consistency   *Consistency       `json:"consistency"`
	Reliability   *Reliability       `json:"reliability"`
	RedFlags      []reporting.Report `json:"redFlags"`
	Contributors  []Contributor      `json:"topContributors"`
	Series        []TimeBucket       `json:"series"`
	GoalAlignment []GoalBand         `json:"goalAlignment"`
	KeySkills     []CriterionAverage `json:"keySkills"`
}
