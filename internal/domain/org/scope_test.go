package org

import "testing"

func scopeEmployees() []Employee {
	return []Employee{
		{ID: "m", Role: RoleManager},
		{ID: "a", Role: RoleManager, ManagerID: ptr("m")},
		{ID: "e", Role: RoleEmployee, ManagerID: ptr("a")},
	}
}

func TestResolveScopeDirectReports(t *testing.T) {
	scope := ResolveScope("m", ScopeDirectReports, scopeEmployees())
	if scope.Mode != ScopeDirectReports {
		t.Fatalf("unexpected mode %s", scope.Mode)
	}
	if len(scope.EmployeeIDs) != 1 || scope.EmployeeIDs[0] != "a" {
		t.Fatalf("expected direct reports {a}, got %v", scope.EmployeeIDs)
	}
}

func TestResolveScopeReportingChain(t *testing.T) {
	scope := ResolveScope("m", ScopeReportingChain, scopeEmployees())
	if len(scope.EmployeeIDs) != 2 {
		t.Fatalf("expected reporting chain {a, e}, got %v", scope.EmployeeIDs)
	}
	if !scope.Contains("a") || !scope.Contains("e") {
		t.Fatalf("expected reporting chain {a, e}, got %v", scope.EmployeeIDs)
	}
	if scope.Contains("m") {
		t.Fatal("reporting chain must exclude the manager itself")
	}
}

func TestResolveScopeOrganizationFallsBackWithoutPermission(t *testing.T) {
	scope := ResolveScope("a", ScopeOrganization, scopeEmployees())
	if scope.Mode != ScopeDirectReports {
		t.Fatalf("expected fallback to direct-reports, got mode %s", scope.Mode)
	}
	if len(scope.EmployeeIDs) != 1 || scope.EmployeeIDs[0] != "e" {
		t.Fatalf("expected fallback scope {e}, got %v", scope.EmployeeIDs)
	}
}

func TestResolveScopeOrganizationWithPermission(t *testing.T) {
	employees := scopeEmployees()
	employees[1].Permissions = &Permissions{CanViewOrganizationWide: true}

	scope := ResolveScope("a", ScopeOrganization, employees)
	if scope.Mode != ScopeOrganization {
		t.Fatalf("expected organization mode, got %s", scope.Mode)
	}
	if scope.Contains("a") {
		t.Fatal("organization scope must exclude the requesting manager")
	}
	if !scope.Contains("m") || !scope.Contains("e") {
		t.Fatalf("expected {m, e}, got %v", scope.EmployeeIDs)
	}
}

func TestResolveScopeOwnerSeesOrganization(t *testing.T) {
	employees := scopeEmployees()
	employees[0].IsAccountOwner = true

	scope := ResolveScope("m", ScopeOrganization, employees)
	if scope.Mode != ScopeOrganization {
		t.Fatalf("expected organization mode for owner, got %s", scope.Mode)
	}
	if len(scope.EmployeeIDs) != 2 {
		t.Fatalf("expected two scoped employees, got %v", scope.EmployeeIDs)
	}
}

func TestResolveScopeEmptyManager(t *testing.T) {
	scope := ResolveScope("", ScopeDirectReports, scopeEmployees())
	if len(scope.EmployeeIDs) != 0 {
		t.Fatalf("expected empty scope for self view, got %v", scope.EmployeeIDs)
	}
}

func TestIsDirectManager(t *testing.T) {
	employees := scopeEmployees()
	if !IsDirectManager(employees[2], "a") {
		t.Fatal("a is e's direct manager")
	}
	if IsDirectManager(employees[2], "m") {
		t.Fatal("skip-level manager must not pass the direct-manager check")
	}
	if IsDirectManager(employees[0], "a") {
		t.Fatal("root has no manager")
	}
}
