package tui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/urbanpiper/squadview/charts"
	"github.com/urbanpiper/squadview/tracker"
)

// Update handles all state updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchInput(msg)
		}
		return m.handleMainInput(msg)

	case dataLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, tracker.ErrSourceNotFound) {
				// Empty dashboard with a warning, not a crash
				m.missingSource = true
				m.issues = nil
				m.charts = nil
				m.matches = nil
				return m, nil
			}
			m.err = msg.err
			return m, nil
		}

		m.missingSource = false
		m.err = nil
		m.issues = msg.issues
		m.charts = msg.charts
		m.filterCharts()
		if m.selectedIndex >= len(m.visibleCharts()) {
			m.selectedIndex = 0
		}

		// Remember the source that worked so the next run finds it
		if m.configManager != nil {
			_ = m.configManager.SetSourcePath(m.sourcePath)
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleMainInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
		return m, nil

	case "down", "j":
		if m.selectedIndex < len(m.visibleCharts())-1 {
			m.selectedIndex++
		}
		return m, nil

	case "g":
		m.selectedIndex = 0
		return m, nil

	case "G":
		if n := len(m.visibleCharts()); n > 0 {
			m.selectedIndex = n - 1
		}
		return m, nil

	case "r":
		m.loading = true
		m.status = "Reloading..."
		return m, tea.Batch(m.loadData, m.clearStatusAfter(2*time.Second))

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil

	case "esc":
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.matches = nil
			m.selectedIndex = 0
		}
		return m, nil

	case "y":
		chart := m.selectedChart()
		if chart == nil {
			return m, nil
		}
		if err := clipboard.WriteAll(charts.PlainText(*chart)); err != nil {
			m.status = "Copy failed"
		} else {
			m.status = "Chart copied to clipboard"
		}
		return m, m.clearStatusAfter(2 * time.Second)
	}

	return m, nil
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.matches = nil
		m.selectedIndex = 0
		return m, nil

	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filterCharts()
	return m, cmd
}

func (m Model) clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
