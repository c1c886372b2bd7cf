package tracker

import "strings"

// TaskType is the derived category of an issue.
type TaskType string

const (
	TypeBug            TaskType = "Bug"
	TypeServiceRequest TaskType = "Service Request"
	TypeInfrastructure TaskType = "Infrastructure"
	TypeFeature        TaskType = "Feature/Enhancement"
)

// TaskTypes lists every category in display order.
var TaskTypes = []TaskType{TypeBug, TypeServiceRequest, TypeInfrastructure, TypeFeature}

// classificationRules are evaluated top to bottom; the first marker found in
// the label text decides the category. Keeping this an explicit ordered list
// makes the evaluation order auditable.
var classificationRules = []struct {
	markers  []string
	taskType TaskType
}{
	{markers: []string{"bug", "confirmed-bug"}, taskType: TypeBug},
	{markers: []string{"service-request"}, taskType: TypeServiceRequest},
	{markers: []string{"infra-related"}, taskType: TypeInfrastructure},
}

// Classify maps an issue's label text to exactly one TaskType. The match is
// a case-insensitive substring test; anything that matches no rule is a
// Feature/Enhancement. Pure function: every call site sees the same result
// for the same labels.
func Classify(labels string) TaskType {
	lower := strings.ToLower(labels)
	for _, rule := range classificationRules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return rule.taskType
			}
		}
	}
	return TypeFeature
}
