package org

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListEmployees(ctx context.Context, orgID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, organization_id, name, email, role,
           manager_id::text,
           is_account_owner,
           can_view_org_wide, can_manage_settings, can_set_global_frequency
    FROM employees
    WHERE organization_id = $1
    ORDER BY name
  `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		var managerID *string
		var perms Permissions
		if err := rows.Scan(
			&emp.ID, &emp.OrganizationID, &emp.Name, &emp.Email, &emp.Role,
			&managerID, &emp.IsAccountOwner,
			&perms.CanViewOrganizationWide, &perms.CanManageSettings, &perms.CanSetGlobalFrequency,
		); err != nil {
			return nil, err
		}
		if managerID != nil && *managerID != "" {
			emp.ManagerID = managerID
		}
		emp.Permissions = &perms
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, orgID, employeeID string) (Employee, error) {
	var emp Employee
	var managerID *string
	var perms Permissions
	err := s.DB.QueryRow(ctx, `
    SELECT id, organization_id, name, email, role,
           manager_id::text,
           is_account_owner,
           can_view_org_wide, can_manage_settings, can_set_global_frequency
    FROM employees
    WHERE organization_id = $1 AND id = $2
  `, orgID, employeeID).Scan(
		&emp.ID, &emp.OrganizationID, &emp.Name, &emp.Email, &emp.Role,
		&managerID, &emp.IsAccountOwner,
		&perms.CanViewOrganizationWide, &perms.CanManageSettings, &perms.CanSetGlobalFrequency,
	)
	if err != nil {
		return Employee{}, err
	}
	if managerID != nil && *managerID != "" {
		emp.ManagerID = managerID
	}
	emp.Permissions = &perms
	return emp, nil
}

func (s *Store) UpdatePermissions(ctx context.Context, orgID, employeeID string, perms Permissions) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET can_view_org_wide = $1, can_manage_settings = $2, can_set_global_frequency = $3
    WHERE organization_id = $4 AND id = $5
  `, perms.CanViewOrganizationWide, perms.CanManageSettings, perms.CanSetGlobalFrequency, orgID, employeeID)
	return err
}
