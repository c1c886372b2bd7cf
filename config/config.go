package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urbanpiper/squadview/stats"
)

// Config represents the global squadview configuration
type Config struct {
	SourcePath      string    `json:"source_path,omitempty"`
	DebugLogging    bool      `json:"debug_logging,omitempty"`
	LastUpdateCheck string    `json:"last_update_check,omitempty"`
	Analysis        *Analysis `json:"analysis,omitempty"`
}

// Analysis holds the named tables that drive the aggregators. These used to
// be constants scattered through the report script; keeping them here makes
// them swappable without touching aggregation logic.
type Analysis struct {
	SprintOrder          []string           `json:"sprint_order"`
	SprintRenames        map[string]string  `json:"sprint_renames"`
	PointsPerWeek        float64            `json:"points_per_week"`
	TeamCapacityWeeks    float64            `json:"team_capacity_weeks"`
	People               []string           `json:"people"`
	EmailDomain          string             `json:"email_domain"`
	CapacityWeeks        map[string]float64 `json:"capacity_weeks"`
	DefaultCapacityWeeks float64            `json:"default_capacity_weeks"`
	Services             []string           `json:"services"`
}

// DefaultSourcePath is where the squad drops the quarterly export.
const DefaultSourcePath = "./direct-ordering-squad-Q1-2025.csv"

// DefaultAnalysis returns the Q1-2025 Direct Ordering squad tables.
func DefaultAnalysis() *Analysis {
	return &Analysis{
		SprintOrder: []string{"JAN-S-1", "JAN-S-2", "FEB-S-1", "FEB-S-2", "MAR-S-1", "MAR-S-2"},
		// Mid-quarter the FEB sprints were relabeled; the export still
		// carries the old names on early rows.
		SprintRenames: map[string]string{
			"FEB-S-3": "MAR-S-1",
			"FEB-S-4": "MAR-S-2",
		},
		PointsPerWeek:     5,
		TeamCapacityWeeks: 12,
		People:            []string{"gagan", "ganesh", "akshay"},
		EmailDomain:       "@urbanpiper.com",
		CapacityWeeks: map[string]float64{
			"ganesh": 4, // only available for 4 weeks this quarter
			"gagan":  12,
			"akshay": 12,
		},
		DefaultCapacityWeeks: 12,
		Services: []string{
			"api", "app", "atlas-web", "aurelia", "editor",
			"frodo", "luna", "meraki-sdk", "web",
			"payment-svc",
		},
	}
}

// SprintPlan converts the sprint tables into the aggregator's input type.
func (a *Analysis) SprintPlan() stats.SprintPlan {
	return stats.SprintPlan{
		Order:   a.SprintOrder,
		Renames: a.SprintRenames,
	}
}

// BandwidthPlan converts the capacity tables into the aggregator's input type.
func (a *Analysis) BandwidthPlan() stats.BandwidthPlan {
	return stats.BandwidthPlan{
		PointsPerWeek:        a.PointsPerWeek,
		TeamCapacityWeeks:    a.TeamCapacityWeeks,
		People:               a.People,
		EmailDomain:          a.EmailDomain,
		CapacityWeeks:        a.CapacityWeeks,
		DefaultCapacityWeeks: a.DefaultCapacityWeeks,
	}
}

// Manager handles configuration loading and saving
type Manager struct {
	configPath string
	config     *Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	// Get user home directory
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	// Create config directory: ~/.config/squadview
	configDir := filepath.Join(home, ".config", "squadview")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.json")

	m := &Manager{
		configPath: configPath,
	}

	// Load existing config or start from an empty one
	if err := m.load(); err != nil {
		m.config = &Config{}
	}

	return m, nil
}

// load reads the configuration from disk
func (m *Manager) load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	m.config = &Config{}
	return json.Unmarshal(data, m.config)
}

// save writes the configuration to disk
func (m *Manager) save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(m.configPath, data, 0644)
}

// GetSourcePath returns the configured export path, or the default
func (m *Manager) GetSourcePath() string {
	if m.config.SourcePath != "" {
		return m.config.SourcePath
	}
	return DefaultSourcePath
}

// SetSourcePath remembers the export path for the next run
func (m *Manager) SetSourcePath(path string) error {
	m.config.SourcePath = path
	return m.save()
}

// GetAnalysis returns the analysis tables from the config file, or the
// built-in defaults when the file doesn't override them
func (m *Manager) GetAnalysis() *Analysis {
	if m.config.Analysis != nil {
		return m.config.Analysis
	}
	return DefaultAnalysis()
}

// GetDebugLoggingEnabled returns whether debug logging is enabled
func (m *Manager) GetDebugLoggingEnabled() bool {
	return m.config.DebugLogging
}

// GetLastUpdateCheckTime returns the last update check timestamp (RFC3339)
func (m *Manager) GetLastUpdateCheckTime() string {
	return m.config.LastUpdateCheck
}

// SetLastUpdateCheckTime stores the last update check timestamp
func (m *Manager) SetLastUpdateCheckTime(ts string) error {
	m.config.LastUpdateCheck = ts
	return m.save()
}
