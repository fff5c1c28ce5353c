package analytics

import (
	"sort"

	"perfscope/internal/domain/catalog"
	"perfscope/internal/domain/reporting"
)

// GoalAlignment stacks each goal's in-window reports into high/medium/low
// score bands and returns the busiest goals first, capped to
// GoalAlignmentLimit. A goal whose project reference dangles keeps its place
// with an empty project name; bad foreign keys degrade, they do not crash.
func GoalAlignment(reports []reporting.Report, goals []catalog.Goal, projects []catalog.Project) []GoalBand {
	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}
	goalByID := make(map[string]catalog.Goal, len(goals))
	for _, g := range goals {
		goalByID[g.ID] = g
	}

	bands := map[string]*GoalBand{}
	for _, r := range reports {
		goal, ok := goalByID[r.GoalID]
		if !ok {
			continue
		}
		band, ok := bands[goal.ID]
		if !ok {
			band = &GoalBand{
				GoalID:      goal.ID,
				GoalTitle:   goal.Title,
				ProjectName: projectNames[goal.ProjectID],
			}
			bands[goal.ID] = band
		}
		switch {
		case r.EvaluationScore >= HighBandFloor:
			band.High++
		case r.EvaluationScore >= MidBandFloor:
			band.Medium++
		default:
			band.Low++
		}
		band.Total++
	}

	out := make([]GoalBand, 0, len(bands))
	for _, band := range bands {
		out = append(out, *band)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].GoalID < out[j].GoalID
	})

	if len(out) > GoalAlignmentLimit {
		out = out[:GoalAlignmentLimit]
	}
	return out
}
