package reporting

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const reportColumns = `
    r.id, r.goal_id, r.employee_id, r.submission_date,
    r.evaluation_score, r.evaluation_reasoning,
    r.manager_overall_score, r.manager_override_reasoning
`

func (s *Store) ListReportsForEmployees(ctx context.Context, orgID string, employeeIDs []string, start, end time.Time) ([]Report, error) {
	if len(employeeIDs) == 0 {
		return []Report{}, nil
	}
	rows, err := s.DB.Query(ctx, `
    SELECT `+reportColumns+`
    FROM reports r
    JOIN employees e ON r.employee_id = e.id
    WHERE e.organization_id = $1
      AND r.employee_id = ANY($2)
      AND r.submission_date >= $3 AND r.submission_date <= $4
    ORDER BY r.submission_date DESC
  `, orgID, employeeIDs, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return s.collectReports(ctx, rows)
}

func (s *Store) ListReports(ctx context.Context, orgID string, start, end time.Time) ([]Report, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+reportColumns+`
    FROM reports r
    JOIN employees e ON r.employee_id = e.id
    WHERE e.organization_id = $1
      AND r.submission_date >= $2 AND r.submission_date <= $3
    ORDER BY r.submission_date DESC
  `, orgID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return s.collectReports(ctx, rows)
}

func (s *Store) GetReport(ctx context.Context, reportID string) (Report, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+reportColumns+`
    FROM reports r
    WHERE r.id = $1
  `, reportID)
	report, err := scanReport(row)
	if err != nil {
		return Report{}, err
	}
	scores, err := s.criterionScores(ctx, []string{report.ID})
	if err != nil {
		return Report{}, err
	}
	report.CriterionScores = scores[report.ID]
	if report.CriterionScores == nil {
		report.CriterionScores = []CriterionScore{}
	}
	return report, nil
}

func (s *Store) CreateReport(ctx context.Context, report Report) (string, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	err = tx.QueryRow(ctx, `
    INSERT INTO reports (goal_id, employee_id, submission_date, evaluation_score, evaluation_reasoning)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, report.GoalID, report.EmployeeID, report.SubmissionDate, report.EvaluationScore, report.EvaluationReasoning).Scan(&id)
	if err != nil {
		return "", err
	}

	for _, cs := range report.CriterionScores {
		if _, err := tx.Exec(ctx, `
      INSERT INTO report_criterion_scores (report_id, criterion_name, score)
      VALUES ($1, $2, $3)
    `, id, cs.CriterionName, cs.Score); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return id, nil
}

// SaveOverride persists both override fields in one statement so the
// both-or-neither invariant holds in storage too.
func (s *Store) SaveOverride(ctx context.Context, reportID string, score float64, reasoning string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE reports
    SET manager_overall_score = $1, manager_override_reasoning = $2
    WHERE id = $3
  `, score, reasoning, reportID)
	return err
}

func (s *Store) DeleteOverride(ctx context.Context, reportID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE reports
    SET manager_overall_score = NULL, manager_override_reasoning = NULL
    WHERE id = $1
  `, reportID)
	return err
}

func (s *Store) collectReports(ctx context.Context, rows pgx.Rows) ([]Report, error) {
	var out []Report
	var ids []string
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		report.CriterionScores = []CriterionScore{}
		ids = append(ids, report.ID)
		out = append(out, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return []Report{}, nil
	}

	scores, err := s.criterionScores(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if cs, ok := scores[out[i].ID]; ok {
			out[i].CriterionScores = cs
		}
	}
	return out, nil
}

func (s *Store) criterionScores(ctx context.Context, reportIDs []string) (map[string][]CriterionScore, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT report_id, criterion_name, score
    FROM report_criterion_scores
    WHERE report_id = ANY($1)
  `, reportIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]CriterionScore{}
	for rows.Next() {
		var reportID string
		var cs CriterionScore
		if err := rows.Scan(&reportID, &cs.CriterionName, &cs.Score); err != nil {
			return nil, err
		}
		out[reportID] = append(out[reportID], cs)
	}
	return out, rows.Err()
}

func scanReport(row pgx.Row) (Report, error) {
	var report Report
	err := row.Scan(
		&report.ID, &report.GoalID, &report.EmployeeID, &report.SubmissionDate,
		&report.EvaluationScore, &report.EvaluationReasoning,
		&report.ManagerOverallScore, &report.ManagerOverrideReasoning,
	)
	return report, err
}
