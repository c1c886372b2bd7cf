package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/urbanpiper/squadview/charts"
)

const listPanelWidth = 44

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	leftPanel := m.renderChartList()
	rightPanel := m.renderChartPanel()

	helpBarHeight := 2
	if m.status != "" || m.err != nil || m.missingSource {
		helpBarHeight = 3
	}

	chartPanelWidth := m.width - listPanelWidth - 6
	panelHeight := m.height - helpBarHeight - 2

	leftStyled := activePanelStyle.
		Width(listPanelWidth).
		Height(panelHeight).
		Render(leftPanel)

	rightStyled := panelStyle.
		Width(chartPanelWidth).
		Height(panelHeight).
		Render(rightPanel)

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftStyled, rightStyled)
	return lipgloss.JoinVertical(lipgloss.Left, panels, m.renderHelpBar())
}

func (m Model) renderChartList() string {
	var b strings.Builder

	source := filepath.Base(m.sourcePath)
	b.WriteString(titleStyle.Render(fmt.Sprintf("📊 %s", source)))
	b.WriteString("\n\n")

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(normalItemStyle.Render("Loading data..."))
		return b.String()
	}

	visible := m.visibleCharts()
	if len(visible) == 0 {
		if m.missingSource {
			b.WriteString(normalItemStyle.Render("No data to display"))
		} else if m.searchInput.Value() != "" {
			b.WriteString(normalItemStyle.Render("No charts match"))
		} else {
			b.WriteString(normalItemStyle.Render("No charts"))
		}
		return b.String()
	}

	for i, idx := range visible {
		title := truncate(m.charts[idx].Title, listPanelWidth-6)
		if i == m.selectedIndex {
			b.WriteString(selectedItemStyle.Render("› " + title))
		} else {
			b.WriteString(normalItemStyle.Render(title))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(axisLabelStyle.Render(fmt.Sprintf("  %d issues · %d charts", len(m.issues), len(m.charts))))
	return b.String()
}

func (m Model) renderChartPanel() string {
	if m.missingSource {
		var b strings.Builder
		b.WriteString(warningStyle.Render("⚠ Source file not found"))
		b.WriteString("\n\n")
		b.WriteString(normalItemStyle.Render(m.sourcePath))
		b.WriteString("\n\n")
		b.WriteString(axisLabelStyle.Render("Nothing to display. Fix the path and press 'r' to reload."))
		return b.String()
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	chart := m.selectedChart()
	if chart == nil {
		return axisLabelStyle.Render("No chart selected")
	}

	width := m.width - listPanelWidth - 12
	if width < 20 {
		width = 20
	}
	return renderChart(*chart, width)
}

// renderChart draws a chart as rows of horizontal bars.
func renderChart(c charts.Chart, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n\n")

	if c.Empty() {
		b.WriteString(axisLabelStyle.Render("No data"))
		return b.String()
	}

	switch c.Kind {
	case charts.Pie:
		b.WriteString(renderPie(c, width))
	case charts.GroupedBar:
		b.WriteString(renderGroupedBar(c, width))
	default:
		b.WriteString(renderBar(c, width))
	}

	b.WriteString("\n")
	b.WriteString(axisLabelStyle.Render(fmt.Sprintf("%s by %s", c.YLabel, c.XLabel)))
	return b.String()
}

func renderBar(c charts.Chart, width int) string {
	var b strings.Builder
	for _, s := range c.Series {
		labelWidth := maxLabelWidth(s.Points)
		maxValue := maxPointValue(s.Points)

		for _, p := range s.Points {
			label := barLabelStyle.Render(pad(p.Label, labelWidth))
			if p.Missing {
				b.WriteString(fmt.Sprintf("%s  %s\n", label, missingValueStyle.Render("n/a")))
				continue
			}

			bar := scaledBar(p.Value, maxValue, width-labelWidth-10)
			color := p.Color
			if color == "" {
				color = s.Color
			}
			b.WriteString(fmt.Sprintf("%s  %s %s\n",
				label,
				lipgloss.NewStyle().Foreground(color).Render(bar),
				charts.FormatValue(p.Value)))
		}
	}
	return b.String()
}

func renderPie(c charts.Chart, width int) string {
	var b strings.Builder
	for _, s := range c.Series {
		var total float64
		for _, p := range s.Points {
			total += p.Value
		}
		labelWidth := maxLabelWidth(s.Points)

		for _, p := range s.Points {
			share := 0.0
			if total > 0 {
				share = p.Value / total * 100
			}
			bar := scaledBar(share, 100, width-labelWidth-16)
			color := p.Color
			if color == "" {
				color = s.Color
			}
			b.WriteString(fmt.Sprintf("%s  %s %5.1f%% (%s)\n",
				barLabelStyle.Render(pad(p.Label, labelWidth)),
				lipgloss.NewStyle().Foreground(color).Render(bar),
				share,
				charts.FormatValue(p.Value)))
		}
	}
	return b.String()
}

func renderGroupedBar(c charts.Chart, width int) string {
	var b strings.Builder

	// Legend
	var legend []string
	for _, s := range c.Series {
		legend = append(legend, lipgloss.NewStyle().Foreground(s.Color).Render("■ "+s.Name))
	}
	b.WriteString(strings.Join(legend, "  "))
	b.WriteString("\n\n")

	if len(c.Series) == 0 || len(c.Series[0].Points) == 0 {
		return b.String()
	}

	labelWidth := maxLabelWidth(c.Series[0].Points)
	var maxValue float64
	for _, s := range c.Series {
		if v := maxPointValue(s.Points); v > maxValue {
			maxValue = v
		}
	}

	for i, p := range c.Series[0].Points {
		b.WriteString(barLabelStyle.Render(p.Label))
		b.WriteString("\n")
		for _, s := range c.Series {
			if i >= len(s.Points) {
				continue
			}
			sp := s.Points[i]
			bar := scaledBar(sp.Value, maxValue, width-labelWidth-10)
			b.WriteString(fmt.Sprintf("  %s %s\n",
				lipgloss.NewStyle().Foreground(s.Color).Render(bar),
				charts.FormatValue(sp.Value)))
		}
	}
	return b.String()
}

func (m Model) renderHelpBar() string {
	var lines []string

	if m.missingSource {
		lines = append(lines, warningStyle.Render(" ⚠ No data available to display — check the source file path "))
	} else if m.err != nil {
		lines = append(lines, errorStyle.Render(fmt.Sprintf(" Error: %v ", m.err)))
	} else if m.status != "" {
		lines = append(lines, statusStyle.Render(" "+m.status+" "))
	}

	keys := []string{
		"↑/↓ navigate",
		"/ search",
		"y copy",
		"r reload",
		"q quit",
	}
	lines = append(lines, helpStyle.Render(strings.Join(keys, " • ")))
	return strings.Join(lines, "\n")
}

// Rendering helpers

func scaledBar(value, max float64, maxWidth int) string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * float64(maxWidth))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func maxLabelWidth(points []charts.Point) int {
	width := 0
	for _, p := range points {
		if len(p.Label) > width {
			width = len(p.Label)
		}
	}
	return width
}

func maxPointValue(points []charts.Point) float64 {
	var max float64
	for _, p := range points {
		if !p.Missing && p.Value > max {
			max = p.Value
		}
	}
	return max
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	return s[:width-1] + "…"
}
