// Package scenario estimates how many test scenarios match parsed tag
// criteria, optionally narrowed by a name grep.
package scenario

import (
	"strings"

	"github.com/rvale/lazygrid/internal/models"
	"github.com/rvale/lazygrid/internal/tagexpr"
)

// Matches reports whether one scenario satisfies the criteria. Tag
// comparison is case-insensitive; the analyzer already lower-cases the
// criteria side.
func Matches(s models.Scenario, criteria tagexpr.Criteria, grep string) bool {
	if grep != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(grep)) {
		return false
	}

	tags := make(map[string]struct{}, len(s.Tags))
	for _, tag := range s.Tags {
		tags[strings.ToLower(tag)] = struct{}{}
	}

	for _, excluded := range criteria.ExcludeTags {
		if _, ok := tags[excluded]; ok {
			return false
		}
	}

	if len(criteria.Tags) == 0 {
		return true
	}

	if criteria.Mode == tagexpr.ModeAll {
		for _, tag := range criteria.Tags {
			if _, ok := tags[tag]; !ok {
				return false
			}
		}
		return true
	}

	for _, tag := range criteria.Tags {
		if _, ok := tags[tag]; ok {
			return true
		}
	}
	return false
}

// EstimateCount counts matching scenarios. Unsupported criteria never
// drive a count: the second return is false and callers show a "not
// supported" message instead of a number.
func EstimateCount(scenarios []models.Scenario, criteria tagexpr.Criteria, grep string) (int, bool) {
	if !criteria.Supported {
		return 0, false
	}
	count := 0
	for _, s := range scenarios {
		if Matches(s, criteria, grep) {
			count++
		}
	}
	return count, true
}
