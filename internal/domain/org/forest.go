package org

// ForestIssues describes malformed manager links found in an employee set.
type ForestIssues struct {
	CyclicIDs   []string `json:"cyclicIds,omitempty"`
	DanglingIDs []string `json:"danglingIds,omitempty"`
}

func (f ForestIssues) OK() bool {
	return len(f.CyclicIDs) == 0 && len(f.DanglingIDs) == 0
}

// ValidateForest checks that manager links form a forest: every employee has
// at most one path to a root and no manager reference leaves the set. The
// engine degrades gracefully on malformed data; this helper exists so callers
// can surface the problem instead of silently computing over it.
func ValidateForest(employees []Employee) ForestIssues {
	byID := make(map[string]*string, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp.ManagerID
	}

	var issues ForestIssues
	for _, emp := range employees {
		if emp.ManagerID == nil || *emp.ManagerID == "" {
			continue
		}
		if _, ok := byID[*emp.ManagerID]; !ok {
			issues.DanglingIDs = append(issues.DanglingIDs, emp.ID)
			continue
		}
		if chainTrapped(byID, emp.ID) {
			issues.CyclicIDs = append(issues.CyclicIDs, emp.ID)
		}
	}
	return issues
}

// chainTrapped reports whether walking manager links upward from start never
// reaches a root, i.e. the chain enters a cycle.
func chainTrapped(byID map[string]*string, start string) bool {
	seen := map[string]bool{}
	current := start
	for {
		if seen[current] {
			return true
		}
		seen[current] = true
		next, ok := byID[current]
		if !ok || next == nil || *next == "" {
			return false
		}
		current = *next
	}
}
