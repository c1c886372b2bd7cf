package stats

import (
	"sort"
	"strings"

	"github.com/urbanpiper/squadview/tracker"
)

// BandwidthPlan names the capacity tables used by the efficiency charts.
// PointsPerWeek converts story points into person-weeks; CapacityWeeks maps
// allow-listed people to their predicted availability for the quarter.
type BandwidthPlan struct {
	PointsPerWeek        float64
	TeamCapacityWeeks    float64
	People               []string
	EmailDomain          string
	CapacityWeeks        map[string]float64
	DefaultCapacityWeeks float64
}

// Bandwidth compares delivered person-weeks against predicted capacity.
type Bandwidth struct {
	Predicted float64
	Actual    float64
}

// PersonBandwidth is the per-person variant, keyed by normalized name.
type PersonBandwidth struct {
	Person    string
	Predicted float64
	Actual    float64
}

// TeamBandwidth sums every estimate (missing estimates already degraded to
// zero at load time) and converts the total into person-weeks.
func TeamBandwidth(issues []tracker.Issue, plan BandwidthPlan) Bandwidth {
	var points float64
	for _, issue := range issues {
		points += issue.Estimate
	}
	return Bandwidth{
		Predicted: plan.TeamCapacityWeeks,
		Actual:    points / plan.PointsPerWeek,
	}
}

// PeopleBandwidth restricts issues to the allow-listed people and sums
// estimates per normalized assignee name. Matching is substring containment
// after lowercasing and stripping the email domain; a name that contains an
// allow-listed name as a substring will match that entry. That is how the
// squad's report has always attributed work, so it stays that way.
func PeopleBandwidth(issues []tracker.Issue, plan BandwidthPlan) []PersonBandwidth {
	points := make(map[string]float64)
	for _, issue := range issues {
		name := normalizeAssignee(issue.Assignee, plan.EmailDomain)
		if !matchesPerson(name, plan.People) {
			continue
		}
		points[name] += issue.Estimate
	}

	names := make([]string, 0, len(points))
	for name := range points {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]PersonBandwidth, 0, len(names))
	for _, name := range names {
		out = append(out, PersonBandwidth{
			Person:    name,
			Predicted: plan.predictedWeeks(name),
			Actual:    points[name] / plan.PointsPerWeek,
		})
	}
	return out
}

func normalizeAssignee(name, domain string) string {
	name = strings.ToLower(name)
	if domain != "" {
		name = strings.ReplaceAll(name, domain, "")
	}
	return strings.TrimSpace(name)
}

func matchesPerson(name string, people []string) bool {
	for _, person := range people {
		if strings.Contains(name, person) {
			return true
		}
	}
	return false
}

// predictedWeeks looks up capacity for the first allow-listed person whose
// name is contained in the normalized assignee; anyone absent from the
// capacity table gets the default.
func (p BandwidthPlan) predictedWeeks(name string) float64 {
	for _, person := range p.People {
		if strings.Contains(name, person) {
			if weeks, ok := p.CapacityWeeks[person]; ok {
				return weeks
			}
			return p.DefaultCapacityWeeks
		}
	}
	return p.DefaultCapacityWeeks
}
