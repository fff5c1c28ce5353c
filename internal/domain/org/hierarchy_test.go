package org

import "testing"

func ptr(s string) *string { return &s }

func testEmployees() []Employee {
	return []Employee{
		{ID: "m", Role: RoleManager},
		{ID: "a", Role: RoleManager, ManagerID: ptr("m")},
		{ID: "e", Role: RoleEmployee, ManagerID: ptr("a")},
		{ID: "f", Role: RoleEmployee, ManagerID: ptr("a")},
	}
}

func TestDirectReports(t *testing.T) {
	idx := BuildHierarchyIndex(testEmployees())

	reports := idx.DirectReports("m")
	if len(reports) != 1 || reports[0] != "a" {
		t.Fatalf("expected direct reports of m to be [a], got %v", reports)
	}

	reports = idx.DirectReports("a")
	if len(reports) != 2 || reports[0] != "e" || reports[1] != "f" {
		t.Fatalf("expected direct reports of a to be [e f], got %v", reports)
	}
}

func TestDirectReportsUnknownManager(t *testing.T) {
	idx := BuildHierarchyIndex(testEmployees())
	if reports := idx.DirectReports("missing"); len(reports) != 0 {
		t.Fatalf("expected empty set for unknown manager, got %v", reports)
	}
}

func TestAllDescendants(t *testing.T) {
	idx := BuildHierarchyIndex(testEmployees())

	descendants := idx.AllDescendants("m")
	if len(descendants) != 3 {
		t.Fatalf("expected 3 descendants of m, got %v", descendants)
	}
	want := map[string]bool{"a": true, "e": true, "f": true}
	for _, id := range descendants {
		if !want[id] {
			t.Fatalf("unexpected descendant %s", id)
		}
	}
}

func TestAllDescendantsExcludesSelf(t *testing.T) {
	idx := BuildHierarchyIndex(testEmployees())
	for _, id := range idx.AllDescendants("m") {
		if id == "m" {
			t.Fatal("descendants must not include the manager itself")
		}
	}
}

func TestAllDescendantsTerminatesOnCycle(t *testing.T) {
	cyclic := []Employee{
		{ID: "a", ManagerID: ptr("c")},
		{ID: "b", ManagerID: ptr("a")},
		{ID: "c", ManagerID: ptr("b")},
	}
	idx := BuildHierarchyIndex(cyclic)

	descendants := idx.AllDescendants("a")
	if len(descendants) > 3 {
		t.Fatalf("cycle traversal returned duplicates: %v", descendants)
	}
	seen := map[string]bool{}
	for _, id := range descendants {
		if seen[id] {
			t.Fatalf("duplicate id %s in descendants", id)
		}
		seen[id] = true
	}
}

func TestValidateForest(t *testing.T) {
	if issues := ValidateForest(testEmployees()); !issues.OK() {
		t.Fatalf("expected clean forest, got %+v", issues)
	}

	cyclic := []Employee{
		{ID: "a", ManagerID: ptr("c")},
		{ID: "b", ManagerID: ptr("a")},
		{ID: "c", ManagerID: ptr("b")},
	}
	if issues := ValidateForest(cyclic); len(issues.CyclicIDs) == 0 {
		t.Fatal("expected cycle to be reported")
	}

	dangling := []Employee{
		{ID: "a", ManagerID: ptr("ghost")},
	}
	issues := ValidateForest(dangling)
	if len(issues.DanglingIDs) != 1 || issues.DanglingIDs[0] != "a" {
		t.Fatalf("expected dangling manager reference to be reported, got %+v", issues)
	}
}
