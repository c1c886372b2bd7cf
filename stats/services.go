package stats

import (
	"strings"

	"github.com/urbanpiper/squadview/tracker"
)

// ServiceSplit is the task-type distribution of one service's issues.
type ServiceSplit struct {
	Service string
	Types   []Count
}

// TypeSplitByService filters issues whose label text contains each configured
// service name (case-insensitive) and classifies the subset. Services with no
// matching issues are skipped entirely rather than emitted empty.
func TypeSplitByService(issues []tracker.Issue, services []string) []ServiceSplit {
	var out []ServiceSplit
	for _, service := range services {
		marker := strings.ToLower(service)

		var subset []tracker.Issue
		for _, issue := range issues {
			if strings.Contains(strings.ToLower(issue.Labels), marker) {
				subset = append(subset, issue)
			}
		}
		if len(subset) == 0 {
			continue
		}
		out = append(out, ServiceSplit{Service: service, Types: CountByType(subset)})
	}
	return out
}
