package tracker

import "strings"

// subTaskMarker flags rows that are sub-tasks of another issue. They would
// double-count work already carried by their parent, so cleaning drops them.
const subTaskMarker = "sub-task"

// Clean deduplicates issues by ID, keeping the first occurrence in original
// order, and drops any issue whose labels carry the sub-task marker. Issues
// with empty label text are kept.
func Clean(issues []Issue) []Issue {
	seen := make(map[string]bool, len(issues))
	cleaned := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if seen[issue.ID] {
			continue
		}
		seen[issue.ID] = true

		if strings.Contains(strings.ToLower(issue.Labels), subTaskMarker) {
			continue
		}
		cleaned = append(cleaned, issue)
	}
	return cleaned
}
