package analytics

import (
	"sort"

	"perfscope/internal/domain/reporting"
)

// CriteriaAverages groups criterion scores by name across the report set,
// averaging each and counting how often it was scored. Feeds both the key
// skills display and the summarization prompt.
func CriteriaAverages(reports []reporting.Report) []CriterionAverage {
	type acc struct {
		sum   float64
		count int
	}
	byName := map[string]*acc{}
	for _, r := range reports {
		for _, cs := range r.CriterionScores {
			a, ok := byName[cs.CriterionName]
			if !ok {
				a = &acc{}
				byName[cs.CriterionName] = a
			}
			a.sum += cs.Score
			a.count++
		}
	}

	out := make([]CriterionAverage, 0, len(byName))
	for name, a := range byName {
		out = append(out, CriterionAverage{
			Name:         name,
			AverageScore: a.sum / float64(a.count),
			Frequency:    a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Name < out[j].Name
	})
	return out
}
