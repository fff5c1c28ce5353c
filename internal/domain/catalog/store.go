package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListProjects(ctx context.Context, orgID string) ([]Project, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, organization_id, name, category, report_frequency, created_by::text
    FROM projects
    WHERE organization_id = $1
    ORDER BY name
  `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	byID := map[string]int{}
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Name, &p.Category, &p.ReportFrequency, &p.CreatedBy); err != nil {
			return nil, err
		}
		p.Assignees = []Assignee{}
		byID[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	assigneeRows, err := s.DB.Query(ctx, `
    SELECT pa.project_id, pa.employee_id::text, pa.assignee_type
    FROM project_assignees pa
    JOIN projects p ON pa.project_id = p.id
    WHERE p.organization_id = $1
    ORDER BY pa.position
  `, orgID)
	if err != nil {
		return nil, err
	}
	defer assigneeRows.Close()

	for assigneeRows.Next() {
		var projectID string
		var a Assignee
		if err := assigneeRows.Scan(&projectID, &a.ID, &a.Type); err != nil {
			return nil, err
		}
		if i, ok := byID[projectID]; ok {
			out[i].Assignees = append(out[i].Assignees, a)
		}
	}
	return out, assigneeRows.Err()
}

func (s *Store) ListGoals(ctx context.Context, orgID string) ([]Goal, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT g.id, g.project_id, g.title, g.created_by::text, COALESCE(g.manager_id::text, '')
    FROM goals g
    JOIN projects p ON g.project_id = p.id
    WHERE p.organization_id = $1
    ORDER BY g.created_at DESC
  `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Goal
	byID := map[string]int{}
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.ProjectID, &g.Title, &g.CreatedBy, &g.ManagerID); err != nil {
			return nil, err
		}
		g.Criteria = []Criterion{}
		byID[g.ID] = len(out)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	criterionRows, err := s.DB.Query(ctx, `
    SELECT gc.goal_id, gc.id, gc.name, gc.weight
    FROM goal_criteria gc
    JOIN goals g ON gc.goal_id = g.id
    JOIN projects p ON g.project_id = p.id
    WHERE p.organization_id = $1
    ORDER BY gc.position
  `, orgID)
	if err != nil {
		return nil, err
	}
	defer criterionRows.Close()

	for criterionRows.Next() {
		var goalID string
		var c Criterion
		if err := criterionRows.Scan(&goalID, &c.ID, &c.Name, &c.Weight); err != nil {
			return nil, err
		}
		if i, ok := byID[goalID]; ok {
			out[i].Criteria = append(out[i].Criteria, c)
		}
	}
	return out, criterionRows.Err()
}

func (s *Store) CreateProject(ctx context.Context, orgID string, project Project) (string, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	err = tx.QueryRow(ctx, `
    INSERT INTO projects (organization_id, name, category, report_frequency, created_by)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, orgID, project.Name, project.Category, project.ReportFrequency, project.CreatedBy).Scan(&id)
	if err != nil {
		return "", err
	}

	for i, a := range project.Assignees {
		if _, err := tx.Exec(ctx, `
      INSERT INTO project_assignees (project_id, employee_id, assignee_type, position)
      VALUES ($1, $2, $3, $4)
    `, id, a.ID, a.Type, i); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) CreateGoal(ctx context.Context, goal Goal) (string, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var managerID any
	if goal.ManagerID != "" {
		managerID = goal.ManagerID
	}

	var id string
	err = tx.QueryRow(ctx, `
    INSERT INTO goals (project_id, title, created_by, manager_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, goal.ProjectID, goal.Title, goal.CreatedBy, managerID).Scan(&id)
	if err != nil {
		return "", err
	}

	for i, c := range goal.Criteria {
		if _, err := tx.Exec(ctx, `
      INSERT INTO goal_criteria (goal_id, name, weight, position)
      VALUES ($1, $2, $3, $4)
    `, id, c.Name, c.Weight, i); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ReplaceCriteria(ctx context.Context, goalID string, criteria []Criterion) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM goal_criteria WHERE goal_id = $1", goalID); err != nil {
		return err
	}
	for i, c := range criteria {
		if _, err := tx.Exec(ctx, `
      INSERT INTO goal_criteria (goal_id, name, weight, position)
      VALUES ($1, $2, $3, $4)
    `, goalID, c.Name, c.Weight, i); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
