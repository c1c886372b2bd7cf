package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/urbanpiper/squadview/charts"
	"github.com/urbanpiper/squadview/config"
	"github.com/urbanpiper/squadview/tracker"
)

// Model represents the TUI state
type Model struct {
	configManager *config.Manager
	sourcePath    string
	analysis      *config.Analysis

	issues []tracker.Issue
	charts []charts.Chart

	// UI state
	selectedIndex int
	width         int
	height        int
	ready         bool
	loading       bool
	missingSource bool
	err           error
	status        string

	// Search state
	searching   bool
	searchInput textinput.Model
	matches     []int // indexes into charts when a filter is active
}

// NewModel creates a new TUI model
func NewModel(configManager *config.Manager, sourcePath string) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search charts..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	analysis := config.DefaultAnalysis()
	if configManager != nil {
		analysis = configManager.GetAnalysis()
	}

	return Model{
		configManager: configManager,
		sourcePath:    sourcePath,
		analysis:      analysis,
		searchInput:   searchInput,
		loading:       true,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadData,
		tea.EnterAltScreen,
	)
}

// Messages
type (
	dataLoadedMsg struct {
		issues []tracker.Issue
		charts []charts.Chart
		err    error
	}

	clearStatusMsg struct{}
)

// loadData runs the whole pipeline from scratch: load, clean, aggregate,
// build charts. Triggered at startup and on every reload.
func (m Model) loadData() tea.Msg {
	issues, err := tracker.Load(m.sourcePath)
	if err != nil {
		return dataLoadedMsg{err: err}
	}
	issues = tracker.Clean(issues)
	return dataLoadedMsg{
		issues: issues,
		charts: charts.BuildDashboard(issues, m.analysis),
	}
}

// visibleCharts returns the chart indexes currently shown in the list,
// honoring the fuzzy filter when one is active.
func (m Model) visibleCharts() []int {
	if m.searchInput.Value() == "" {
		all := make([]int, len(m.charts))
		for i := range m.charts {
			all[i] = i
		}
		return all
	}
	return m.matches
}

// selectedChart returns the chart under the cursor, or nil.
func (m Model) selectedChart() *charts.Chart {
	visible := m.visibleCharts()
	if m.selectedIndex < 0 || m.selectedIndex >= len(visible) {
		return nil
	}
	return &m.charts[visible[m.selectedIndex]]
}

// filterCharts recomputes the fuzzy matches for the current query.
func (m *Model) filterCharts() {
	query := m.searchInput.Value()
	if query == "" {
		m.matches = nil
		return
	}

	titles := make([]string, len(m.charts))
	for i, c := range m.charts {
		titles[i] = c.Title
	}

	results := fuzzy.Find(query, titles)
	matches := make([]int, 0, len(results))
	for _, r := range results {
		matches = append(matches, r.Index)
	}
	m.matches = matches
	if m.selectedIndex >= len(matches) {
		m.selectedIndex = 0
	}
}
