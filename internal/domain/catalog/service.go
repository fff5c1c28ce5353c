package catalog

import "context"

type StoreAPI interface {
	ListProjects(ctx context.Context, orgID string) ([]Project, error)
	ListGoals(ctx context.Context, orgID string) ([]Goal, error)
	CreateProject(ctx context.Context, orgID string, project Project) (string, error)
	CreateGoal(ctx context.Context, goal Goal) (string, error)
	ReplaceCriteria(ctx context.Context, goalID string, criteria []Criterion) error
}

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) ListProjects(ctx context.Context, orgID string) ([]Project, error) {
	return s.Store.ListProjects(ctx, orgID)
}

func (s *Service) ListGoals(ctx context.Context, orgID string) ([]Goal, error) {
	return s.Store.ListGoals(ctx, orgID)
}

func (s *Service) CreateProject(ctx context.Context, orgID string, project Project) (string, error) {
	if err := ValidateFrequency(project.ReportFrequency); err != nil {
		return "", err
	}
	if err := ValidateAssignees(project.Assignees); err != nil {
		return "", err
	}
	return s.Store.CreateProject(ctx, orgID, project)
}

func (s *Service) CreateGoal(ctx context.Context, goal Goal) (string, error) {
	if err := ValidateCriteria(goal.Criteria); err != nil {
		return "", err
	}
	return s.Store.CreateGoal(ctx, goal)
}

// CommitCriteria replaces a goal's criteria; the weight-sum invariant is
// enforced here, at commit time, not on transient edits.
func (s *Service) CommitCriteria(ctx context.Context, goalID string, criteria []Criterion) error {
	if err := ValidateCriteria(criteria); err != nil {
		return err
	}
	return s.Store.ReplaceCriteria(ctx, goalID, criteria)
}
