package tracker

import "testing"

func TestCleanDeduplicates(t *testing.T) {
	issues := []Issue{
		{ID: "DO-1", Status: "Done"},
		{ID: "DO-2", Status: "Open"},
		{ID: "DO-1", Status: "Cancelled"},
		{ID: "DO-2", Status: "Done"},
	}

	cleaned := Clean(issues)
	if len(cleaned) != 2 {
		t.Fatalf("Expected 2 issues after dedup, got %d", len(cleaned))
	}

	// First occurrence wins
	if cleaned[0].ID != "DO-1" || cleaned[0].Status != "Done" {
		t.Errorf("Expected first DO-1 occurrence to survive, got %+v", cleaned[0])
	}
	if cleaned[1].ID != "DO-2" || cleaned[1].Status != "Open" {
		t.Errorf("Expected first DO-2 occurrence to survive, got %+v", cleaned[1])
	}

	// Result has unique IDs
	seen := make(map[string]bool)
	for _, issue := range cleaned {
		if seen[issue.ID] {
			t.Errorf("Duplicate ID '%s' in cleaned set", issue.ID)
		}
		seen[issue.ID] = true
	}
}

func TestCleanFiltersSubTasks(t *testing.T) {
	t.Run("drops sub-task rows case-insensitively", func(t *testing.T) {
		issues := []Issue{
			{ID: "DO-1", Labels: "bug, sub-task"},
			{ID: "DO-2", Labels: "Sub-Task"},
			{ID: "DO-3", Labels: "bug"},
		}

		cleaned := Clean(issues)
		if len(cleaned) != 1 {
			t.Fatalf("Expected 1 issue after sub-task filter, got %d", len(cleaned))
		}
		if cleaned[0].ID != "DO-3" {
			t.Errorf("Expected DO-3 to survive, got '%s'", cleaned[0].ID)
		}
	})

	t.Run("keeps rows with empty labels", func(t *testing.T) {
		issues := []Issue{
			{ID: "DO-1", Labels: ""},
			{ID: "DO-2", Labels: "sub-task"},
		}

		cleaned := Clean(issues)
		if len(cleaned) != 1 {
			t.Fatalf("Expected 1 issue, got %d", len(cleaned))
		}
		if cleaned[0].ID != "DO-1" {
			t.Errorf("Expected DO-1 (empty labels) to be kept, got '%s'", cleaned[0].ID)
		}
	})
}

func TestCleanEmptyInput(t *testing.T) {
	cleaned := Clean(nil)
	if len(cleaned) != 0 {
		t.Errorf("Expected empty result for nil input, got %d issues", len(cleaned))
	}
}
