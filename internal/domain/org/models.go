package org

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type Permissions struct {
	CanViewOrganizationWide bool `json:"canViewOrganizationWide"`
	CanManageSettings       bool `json:"canManageSettings"`
	CanSetGlobalFrequency   bool `json:"canSetGlobalFrequency"`
}

type Employee struct {
	ID             string       `json:"id"`
	OrganizationID string       `json:"organizationId"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Role           string       `json:"role"`
	ManagerID      *string      `json:"managerId,omitempty"`
	IsAccountOwner bool         `json:"isAccountOwner,omitempty"`
	Permissions    *Permissions `json:"permissions,omitempty"`
}

// Capabilities is the effective permission set derived from stored flags
// plus the account-owner bypass.
type Capabilities struct {
	ViewOrgWide    bool `json:"viewOrgWide"`
	ManageSettings bool `json:"manageSettings"`
	IsOwner        bool `json:"isOwner"`
}

// Scope carries the employee ids a manager may act upon and the mode that
// actually produced them, which may differ from the requested mode when the
// resolver falls back on a permission denial.
type Scope struct {
	Mode        string   `json:"mode"`
	EmployeeIDs []string `json:"employeeIds"`
}

const (
	ScopeDirectReports  = "direct-reports"
	ScopeReportingChain = "reporting-chain"
	ScopeOrganization   = "organization"
)

func (s Scope) Contains(employeeID string) bool {
	for _, id := range s.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}
