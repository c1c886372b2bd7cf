package stats

import "github.com/urbanpiper/squadview/tracker"

// SprintCycleTime is the mean cycle time of one sprint's issues. AvgDays is
// nil when the sprint has no issue with a known cycle time; "no data" and
// "zero days" are different answers.
type SprintCycleTime struct {
	Sprint  string
	AvgDays *float64
}

// AvgCycleTimeBySprint averages the present cycle times of each observed
// sprint. Issues without a sprint name are skipped; sprints whose issues all
// lack cycle times still appear, with an absent average. Output follows the
// canonical sprint order, with unknown sprint names appended in first-seen
// order.
func AvgCycleTimeBySprint(issues []tracker.Issue, plan SprintPlan) []SprintCycleTime {
	type acc struct {
		sum float64
		n   int
	}
	sums := make(map[string]*acc)
	var observed []string

	for _, issue := range issues {
		if issue.Sprint == "" {
			continue
		}
		a, ok := sums[issue.Sprint]
		if !ok {
			a = &acc{}
			sums[issue.Sprint] = a
			observed = append(observed, issue.Sprint)
		}
		if issue.CycleTime != nil {
			a.sum += *issue.CycleTime
			a.n++
		}
	}

	ordered := orderSprints(observed, plan.Order)
	out := make([]SprintCycleTime, 0, len(ordered))
	for _, sprint := range ordered {
		a := sums[sprint]
		var avg *float64
		if a.n > 0 {
			v := a.sum / float64(a.n)
			avg = &v
		}
		out = append(out, SprintCycleTime{Sprint: sprint, AvgDays: avg})
	}
	return out
}

// orderSprints sorts observed sprint names by their position in the canonical
// order; names not in the canonical list keep their first-seen order at the end.
func orderSprints(observed, canonical []string) []string {
	position := make(map[string]int, len(canonical))
	for i, sprint := range canonical {
		position[sprint] = i
	}

	known := make([]string, 0, len(observed))
	var unknown []string
	for _, sprint := range observed {
		if _, ok := position[sprint]; ok {
			known = append(known, sprint)
		} else {
			unknown = append(unknown, sprint)
		}
	}

	// Insertion sort keeps this dependency-free and the lists are tiny.
	for i := 1; i < len(known); i++ {
		for j := i; j > 0 && position[known[j]] < position[known[j-1]]; j-- {
			known[j], known[j-1] = known[j-1], known[j]
		}
	}
	return append(known, unknown...)
}
