package reporting

import (
	"context"
	"time"

	"perfscope/internal/domain/org"
)

type StoreAPI interface {
	ListReportsForEmployees(ctx context.Context, orgID string, employeeIDs []string, start, end time.Time) ([]Report, error)
	ListReports(ctx context.Context, orgID string, start, end time.Time) ([]Report, error)
	GetReport(ctx context.Context, reportID string) (Report, error)
	CreateReport(ctx context.Context, report Report) (string, error)
	SaveOverride(ctx context.Context, reportID string, score float64, reasoning string) error
	DeleteOverride(ctx context.Context, reportID string) error
}

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) ListReportsForEmployees(ctx context.Context, orgID string, employeeIDs []string, start, end time.Time) ([]Report, error) {
	return s.Store.ListReportsForEmployees(ctx, orgID, employeeIDs, start, end)
}

func (s *Service) ListReports(ctx context.Context, orgID string, start, end time.Time) ([]Report, error) {
	return s.Store.ListReports(ctx, orgID, start, end)
}

func (s *Service) GetReport(ctx context.Context, reportID string) (Report, error) {
	return s.Store.GetReport(ctx, reportID)
}

func (s *Service) CreateReport(ctx context.Context, report Report) (string, error) {
	return s.Store.CreateReport(ctx, report)
}

// Override validates and persists a manager override. The caller supplies the
// report owner and acting manager; the direct-manager gate lives here so every
// call site applies the same authorization rule.
func (s *Service) Override(ctx context.Context, report Report, owner org.Employee, managerID string, score float64, reasoning string) (Report, error) {
	if !org.IsDirectManager(owner, managerID) {
		return report, ErrNotDirectManager
	}
	if err := ApplyOverride(&report, score, reasoning); err != nil {
		return report, err
	}
	if err := s.Store.SaveOverride(ctx, report.ID, *report.ManagerOverallScore, *report.ManagerOverrideReasoning); err != nil {
		return report, err
	}
	return report, nil
}

func (s *Service) RemoveOverride(ctx context.Context, report Report, owner org.Employee, managerID string) (Report, error) {
	if !org.IsDirectManager(owner, managerID) {
		return report, ErrNotDirectManager
	}
	ClearOverride(&report)
	if err := s.Store.DeleteOverride(ctx, report.ID); err != nil {
		return report, err
	}
	return report, nil
}
