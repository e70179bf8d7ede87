// Package directory implements the expert search filter. It is the single
// shared implementation of the matching contract: any degraded client-side
// fallback must mirror these semantics exactly rather than reimplementing
// them.
package directory

import (
	"strconv"
	"strings"

	"github.com/wisdomconnect/wisdom-connect/pkg/models"
)

// Apply returns the subsequence of experts matching every supplied
// criterion, in the original order. Inactive records never match. Absent
// filter fields impose no constraint; an empty result is not an error.
func Apply(experts []models.Expert, f models.ExpertFilter) []models.Expert {
	min, max, hasMax := parseBudget(f.Budget)

	out := make([]models.Expert, 0, len(experts))
	for _, e := range experts {
		if !e.IsActive {
			continue
		}
		if f.Industry != "" && !containsFold(e.Industry, f.Industry) {
			continue
		}
		if f.Experience != "" && e.ExperienceLevel != f.Experience {
			continue
		}
		if f.Budget != "" {
			if e.Price < min || (hasMax && e.Price > max) {
				continue
			}
		}
		if f.Keywords != "" && !matchKeywords(e, f.Keywords) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// parseBudget parses a "min-max" range. A missing or non-numeric minimum
// defaults to 0; a missing or non-numeric maximum is unbounded.
func parseBudget(budget string) (min, max int, hasMax bool) {
	parts := strings.SplitN(budget, "-", 2)
	if v, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
		min = v
	}
	if len(parts) == 2 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			return min, v, true
		}
	}
	return min, 0, false
}

// matchKeywords is a case-insensitive substring match against any skill
// tag, the name, or the description.
func matchKeywords(e models.Expert, keywords string) bool {
	for _, skill := range e.Skills {
		if containsFold(skill, keywords) {
			return true
		}
	}
	return containsFold(e.Name, keywords) || containsFold(e.Description, keywords)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
