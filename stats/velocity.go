// Package stats holds the aggregation step of the dashboard pipeline. Every
// function here is pure: cleaned issues in, a labeled numeric summary out,
// and an empty input always produces an empty or zero-valued summary.
package stats

import "github.com/urbanpiper/squadview/tracker"

// SprintPlan names the sprint tables that used to be buried constants:
// the canonical display order and the legacy-label renames applied before
// grouping.
type SprintPlan struct {
	Order   []string
	Renames map[string]string
}

// SprintCount is the number of completed issues in one sprint.
type SprintCount struct {
	Sprint string
	Done   int
}

// SprintVelocity counts Done issues per sprint, after remapping legacy
// sprint labels, and reindexes the counts onto the canonical sprint order.
// Sprints with no completed issues appear with a zero count.
func SprintVelocity(issues []tracker.Issue, plan SprintPlan) []SprintCount {
	counts := make(map[string]int)
	for _, issue := range issues {
		if !issue.Done() {
			continue
		}
		counts[plan.rename(issue.Sprint)]++
	}

	out := make([]SprintCount, 0, len(plan.Order))
	for _, sprint := range plan.Order {
		out = append(out, SprintCount{Sprint: sprint, Done: counts[sprint]})
	}
	return out
}

func (p SprintPlan) rename(sprint string) string {
	if renamed, ok := p.Renames[sprint]; ok {
		return renamed
	}
	return sprint
}
