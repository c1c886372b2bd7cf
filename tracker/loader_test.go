package tracker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testHeader = "ID,Title,Assignee,Labels,Status,Priority,Estimate,Cycle Name,Created,Started,Completed,Updated\n"

// Helper to write a CSV export into a temp dir and return its path
func writeExport(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte(testHeader+rows), 0644); err != nil {
		t.Fatalf("Failed to write test export: %v", err)
	}
	return path
}

func TestLoadMissingSource(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file.csv"))
	if err == nil {
		t.Fatal("Expected error for missing source, got nil")
	}
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Expected ErrSourceNotFound, got %v", err)
	}
}

func TestLoadParsesFields(t *testing.T) {
	path := writeExport(t,
		"DO-1,Fix checkout,gagan@urbanpiper.com,\"bug, api\",Done,P1,3,JAN-S-1,2025-01-01T00:00:00Z,2025-01-01T06:00:00Z,2025-01-03T12:00:00Z,2025-01-03T12:00:00Z\n")

	issues, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("Expected 1 issue, got %d", len(issues))
	}

	issue := issues[0]
	if issue.ID != "DO-1" {
		t.Errorf("Expected ID 'DO-1', got '%s'", issue.ID)
	}
	if issue.Assignee != "gagan@urbanpiper.com" {
		t.Errorf("Expected assignee 'gagan@urbanpiper.com', got '%s'", issue.Assignee)
	}
	if issue.Estimate != 3 {
		t.Errorf("Expected estimate 3, got %v", issue.Estimate)
	}
	if issue.Sprint != "JAN-S-1" {
		t.Errorf("Expected sprint 'JAN-S-1', got '%s'", issue.Sprint)
	}
	if issue.Created == nil || issue.Completed == nil || issue.Started == nil || issue.Updated == nil {
		t.Fatal("Expected all four timestamps to be present")
	}
}

func TestLoadCycleTime(t *testing.T) {
	t.Run("computed when created and completed present", func(t *testing.T) {
		path := writeExport(t,
			"DO-1,Task,,bug,Done,P1,1,JAN-S-1,2025-01-01T00:00:00Z,,2025-01-03T12:00:00Z,\n")

		issues, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if issues[0].CycleTime == nil {
			t.Fatal("Expected cycle time to be present")
		}
		if *issues[0].CycleTime != 2.5 {
			t.Errorf("Expected cycle time 2.5 days, got %v", *issues[0].CycleTime)
		}
	})

	t.Run("absent when completed missing", func(t *testing.T) {
		path := writeExport(t,
			"DO-2,Task,,bug,In Progress,P1,1,JAN-S-1,2025-01-01T00:00:00Z,,,\n")

		issues, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if issues[0].CycleTime != nil {
			t.Errorf("Expected cycle time to be absent, got %v", *issues[0].CycleTime)
		}
	})

	t.Run("absent when created unparseable", func(t *testing.T) {
		path := writeExport(t,
			"DO-3,Task,,bug,Done,P1,1,JAN-S-1,not-a-date,,2025-01-03T12:00:00Z,\n")

		issues, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if issues[0].Created != nil {
			t.Error("Expected created to be absent for unparseable value")
		}
		if issues[0].CycleTime != nil {
			t.Error("Expected cycle time to be absent when created is absent")
		}
	})
}

func TestLoadBadEstimate(t *testing.T) {
	path := writeExport(t,
		"DO-1,Task,,bug,Done,P1,not-a-number,JAN-S-1,,,,\n")

	issues, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if issues[0].Estimate != 0 {
		t.Errorf("Expected unparseable estimate to degrade to 0, got %v", issues[0].Estimate)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeExport(t, "")

	issues, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("Expected 0 issues for header-only file, got %d", len(issues))
	}
}

func TestLoadShortRow(t *testing.T) {
	// A row with fewer fields than the header keeps its leading columns and
	// leaves the rest absent.
	path := writeExport(t, "DO-1,Task,akshay@urbanpiper.com\n")

	issues, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("Expected 1 issue, got %d", len(issues))
	}
	if issues[0].ID != "DO-1" {
		t.Errorf("Expected ID 'DO-1', got '%s'", issues[0].ID)
	}
	if issues[0].Status != "" {
		t.Errorf("Expected empty status, got '%s'", issues[0].Status)
	}
}
