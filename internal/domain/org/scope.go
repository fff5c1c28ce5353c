package org

import "sort"

// ResolveScope derives the set of employee ids a manager may act upon.
//
// Organization scope requires the org-wide capability; without it the
// resolver silently falls back to direct reports, and the returned Scope
// carries the mode that was actually applied. Reporting-chain and
// organization scopes exclude the manager's own id.
func ResolveScope(managerID, mode string, employees []Employee) Scope {
	if managerID == "" {
		return Scope{Mode: mode, EmployeeIDs: []string{}}
	}

	idx := BuildHierarchyIndex(employees)

	switch mode {
	case ScopeReportingChain:
		return Scope{Mode: ScopeReportingChain, EmployeeIDs: idx.AllDescendants(managerID)}
	case ScopeOrganization:
		manager, ok := findEmployee(employees, managerID)
		if ok && CapabilitiesOf(manager).ViewOrgWide {
			ids := make([]string, 0, len(employees))
			for _, emp := range employees {
				if emp.ID == managerID {
					continue
				}
				ids = append(ids, emp.ID)
			}
			sort.Strings(ids)
			return Scope{Mode: ScopeOrganization, EmployeeIDs: ids}
		}
		return Scope{Mode: ScopeDirectReports, EmployeeIDs: idx.DirectReports(managerID)}
	default:
		return Scope{Mode: ScopeDirectReports, EmployeeIDs: idx.DirectReports(managerID)}
	}
}

func findEmployee(employees []Employee, id string) (Employee, bool) {
	for _, emp := range employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

// IsDirectManager reports whether managerID is the employee's direct manager.
// Override rights are anchored here, never to the wider reporting chain.
func IsDirectManager(employee Employee, managerID string) bool {
	return managerID != "" && employee.ManagerID != nil && *employee.ManagerID == managerID
}
