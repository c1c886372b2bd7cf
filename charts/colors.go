package charts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/urbanpiper/squadview/tracker"
)

// TaskTypeColors is the fixed category→color mapping shared by every chart
// that shows task types, so a red slice means Bug everywhere.
var TaskTypeColors = map[tracker.TaskType]lipgloss.Color{
	tracker.TypeBug:            lipgloss.Color("#FF4B4B"),
	tracker.TypeServiceRequest: lipgloss.Color("#36B37E"),
	tracker.TypeInfrastructure: lipgloss.Color("#FFB700"),
	tracker.TypeFeature:        lipgloss.Color("#00B8D9"),
}

// defaultSeriesColor is used when a chart has no category mapping.
const defaultSeriesColor = lipgloss.Color("#7D56F4")

// predictedColor and actualColor distinguish the two efficiency series.
const (
	predictedColor = lipgloss.Color("#6272A4")
	actualColor    = lipgloss.Color("#50FA7B")
)
