package catalog

import "perfscope/internal/domain/org"

// VisibleGoals returns the goals a manager may view: goals they authored plus
// goals whose project has at least one assignee among the manager's direct
// reports. Visibility is always anchored to direct reports regardless of the
// scope mode the caller is otherwise using; the wider reporting chain never
// widens goal visibility.
func VisibleGoals(goals []Goal, projects []Project, employees []org.Employee, managerID string) []Goal {
	if managerID == "" {
		return []Goal{}
	}

	idx := org.BuildHierarchyIndex(employees)
	direct := map[string]bool{}
	for _, id := range idx.DirectReports(managerID) {
		direct[id] = true
	}

	projectByID := make(map[string]Project, len(projects))
	for _, p := range projects {
		projectByID[p.ID] = p
	}

	out := []Goal{}
	for _, goal := range goals {
		if goal.CreatedByManager(managerID) {
			out = append(out, goal)
			continue
		}
		project, ok := projectByID[goal.ProjectID]
		if !ok {
			// Dangling project reference: not visible, not an error.
			continue
		}
		for _, assignee := range project.Assignees {
			if direct[assignee.ID] {
				out = append(out, goal)
				break
			}
		}
	}
	return out
}

// CanEditGoal is authorship-based only, independent of scope or hierarchy.
// Viewing rights are broader than editing rights on purpose.
func CanEditGoal(goal Goal, managerID string) bool {
	return goal.CreatedByManager(managerID)
}

// VisibleProjects returns the projects relevant to a manager: projects they
// created, projects they are assigned to, and projects with an assignee in
// the supplied scope. Settings managers and account owners see everything.
func VisibleProjects(projects []Project, manager org.Employee, scope org.Scope) []Project {
	caps := org.CapabilitiesOf(manager)
	if caps.ManageSettings || caps.IsOwner {
		out := make([]Project, len(projects))
		copy(out, projects)
		return out
	}

	out := []Project{}
	for _, project := range projects {
		if project.CreatedBy == manager.ID || project.HasAssignee(manager.ID) {
			out = append(out, project)
			continue
		}
		for _, assignee := range project.Assignees {
			if scope.Contains(assignee.ID) {
				out = append(out, project)
				break
			}
		}
	}
	return out
}
