// Package charts turns aggregate summaries into renderable chart
// descriptions. It knows nothing about terminals; the tui package decides
// how a Chart ends up on screen.
package charts

import "github.com/charmbracelet/lipgloss"

// Kind selects how a chart's series should be drawn.
type Kind int

const (
	// Bar draws one bar per point.
	Bar Kind = iota
	// GroupedBar draws every series' bar side by side per point label.
	GroupedBar
	// Pie shows each point as its share of the series total.
	Pie
)

// Point is one labeled value. Missing marks values that are genuinely
// unknown (e.g. a sprint with no measured cycle times); renderers show those
// as "n/a" instead of a zero-length bar.
type Point struct {
	Label   string
	Value   float64
	Missing bool
	Color   lipgloss.Color // empty = series color
}

// Series is a named run of points sharing a default color.
type Series struct {
	Name   string
	Color  lipgloss.Color
	Points []Point
}

// Chart is a complete renderable chart description.
type Chart struct {
	Kind   Kind
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Empty reports whether the chart has no points at all.
func (c Chart) Empty() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}
