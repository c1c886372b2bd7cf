package stats

import (
	"sort"

	"github.com/urbanpiper/squadview/tracker"
)

// PriorityRate is the completion percentage for one priority value.
type PriorityRate struct {
	Priority string
	Rate     float64
}

// PriorityCompletionRate computes, for each observed priority, the share of
// its issues that reached Done, as a percentage. Only observed priorities are
// emitted, so every denominator is at least one. Output is sorted by
// priority name.
func PriorityCompletionRate(issues []tracker.Issue) []PriorityRate {
	total := make(map[string]int)
	done := make(map[string]int)
	for _, issue := range issues {
		if issue.Priority == "" {
			continue
		}
		total[issue.Priority]++
		if issue.Done() {
			done[issue.Priority]++
		}
	}

	priorities := make([]string, 0, len(total))
	for priority := range total {
		priorities = append(priorities, priority)
	}
	sort.Strings(priorities)

	out := make([]PriorityRate, 0, len(priorities))
	for _, priority := range priorities {
		out = append(out, PriorityRate{
			Priority: priority,
			Rate:     float64(done[priority]) / float64(total[priority]) * 100,
		})
	}
	return out
}
