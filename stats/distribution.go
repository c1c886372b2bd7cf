package stats

import (
	"sort"

	"github.com/urbanpiper/squadview/tracker"
)

// Count is one labeled bucket of a distribution.
type Count struct {
	Label string
	N     int
}

// CountByAssignee counts issues per assignee, most-loaded first.
func CountByAssignee(issues []tracker.Issue) []Count {
	return countBy(issues, func(i tracker.Issue) string { return i.Assignee })
}

// CountByPriority counts issues per priority value, largest bucket first.
func CountByPriority(issues []tracker.Issue) []Count {
	return countBy(issues, func(i tracker.Issue) string { return i.Priority })
}

// CountByType classifies every issue and counts the categories. Both call
// sites of the classifier (this one and the per-service split) go through
// tracker.Classify, so the two charts always agree.
func CountByType(issues []tracker.Issue) []Count {
	return countBy(issues, func(i tracker.Issue) string { return string(tracker.Classify(i.Labels)) })
}

// countBy buckets issues by key, descending count, ties in first-seen order.
// Empty keys (unset fields) are not counted.
func countBy(issues []tracker.Issue, key func(tracker.Issue) string) []Count {
	counts := make(map[string]int)
	var order []string
	for _, issue := range issues {
		k := key(issue)
		if k == "" {
			continue
		}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	out := make([]Count, 0, len(order))
	for _, k := range order {
		out = append(out, Count{Label: k, N: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].N > out[j].N })
	return out
}
