package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#7D56F4")
	accentColor  = lipgloss.Color("#50FA7B")
	warningColor = lipgloss.Color("#FFB86C")
	errorColor   = lipgloss.Color("#FF5555")
	mutedColor   = lipgloss.Color("#6272A4")
	fgColor      = lipgloss.Color("#F8F8F2")

	// Panel styles
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accentColor).
				Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1)

	// List item styles
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true).
				PaddingLeft(2)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(fgColor).
			PaddingLeft(2)

	// Chart styles
	axisLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	barLabelStyle = lipgloss.NewStyle().
			Foreground(fgColor)

	missingValueStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	// Help/Status bar
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)
