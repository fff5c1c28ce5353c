package org

import "context"

type StoreAPI interface {
	ListEmployees(ctx context.Context, orgID string) ([]Employee, error)
	GetEmployee(ctx context.Context, orgID, employeeID string) (Employee, error)
	UpdatePermissions(ctx context.Context, orgID, employeeID string, perms Permissions) error
}

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) ListEmployees(ctx context.Context, orgID string) ([]Employee, error) {
	return s.Store.ListEmployees(ctx, orgID)
}

func (s *Service) GetEmployee(ctx context.Context, orgID, employeeID string) (Employee, error) {
	return s.Store.GetEmployee(ctx, orgID, employeeID)
}

func (s *Service) UpdatePermissions(ctx context.Context, orgID, employeeID string, perms Permissions) error {
	return s.Store.UpdatePermissions(ctx, orgID, employeeID, perms)
}

// ResolveScope loads the organization's employees and derives the scope for
// managerID. Scope semantics live in ResolveScope (pure); this is the
// store-backed convenience used by handlers.
func (s *Service) ResolveScope(ctx context.Context, orgID, managerID, mode string) (Scope, []Employee, error) {
	employees, err := s.Store.ListEmployees(ctx, orgID)
	if err != nil {
		return Scope{}, nil, err
	}
	return ResolveScope(managerID, mode, employees), employees, nil
}
