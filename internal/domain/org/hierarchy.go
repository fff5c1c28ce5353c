package org

import "sort"

// HierarchyIndex is a child-lookup structure over the flat employee set.
// Built once per employee collection in a single pass.
type HierarchyIndex struct {
	children map[string][]string
	known    map[string]bool
}

func BuildHierarchyIndex(employees []Employee) *HierarchyIndex {
	idx := &HierarchyIndex{
		children: make(map[string][]string, len(employees)),
		known:    make(map[string]bool, len(employees)),
	}
	for _, emp := range employees {
		idx.known[emp.ID] = true
		if emp.ManagerID == nil || *emp.ManagerID == "" {
			continue
		}
		idx.children[*emp.ManagerID] = append(idx.children[*emp.ManagerID], emp.ID)
	}
	return idx
}

// DirectReports returns the ids of employees whose managerId equals managerID.
// Unknown ids yield an empty result, not an error: the employee set comes from
// an external store and may be stale relative to the caller's id.
func (idx *HierarchyIndex) DirectReports(managerID string) []string {
	kids := idx.children[managerID]
	out := make([]string, len(kids))
	copy(out, kids)
	sort.Strings(out)
	return out
}

// AllDescendants returns the downward closure of managerID's reports. The
// traversal is iterative with an explicit visited set so that a malformed
// (cyclic) manager chain terminates instead of looping forever.
func (idx *HierarchyIndex) AllDescendants(managerID string) []string {
	visited := map[string]bool{managerID: true}
	queue := append([]string(nil), idx.children[managerID]...)
	var out []string
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		out = append(out, current)
		queue = append(queue, idx.children[current]...)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether the id appeared in the employee set the index was
// built from.
func (idx *HierarchyIndex) Contains(employeeID string) bool {
	return idx.known[employeeID]
}
