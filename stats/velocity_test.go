package stats

import (
	"testing"

	"github.com/urbanpiper/squadview/tracker"
)

func testSprintPlan() SprintPlan {
	return SprintPlan{
		Order: []string{"JAN-S-1", "JAN-S-2", "FEB-S-1", "FEB-S-2", "MAR-S-1", "MAR-S-2"},
		Renames: map[string]string{
			"FEB-S-3": "MAR-S-1",
			"FEB-S-4": "MAR-S-2",
		},
	}
}

func TestSprintVelocity(t *testing.T) {
	issues := []tracker.Issue{
		{ID: "1", Status: "Done", Sprint: "JAN-S-1"},
		{ID: "2", Status: "Done", Sprint: "JAN-S-1"},
		{ID: "3", Status: "Done", Sprint: "JAN-S-1"},
		{ID: "4", Status: "In Progress", Sprint: "JAN-S-1"},
		{ID: "5", Status: "Done", Sprint: "FEB-S-3"},
		{ID: "6", Status: "Done", Sprint: "FEB-S-3"},
	}

	got := SprintVelocity(issues, testSprintPlan())

	want := []SprintCount{
		{"JAN-S-1", 3},
		{"JAN-S-2", 0},
		{"FEB-S-1", 0},
		{"FEB-S-2", 0},
		{"MAR-S-1", 2}, // FEB-S-3 renamed
		{"MAR-S-2", 0},
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d sprints, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sprint %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSprintVelocityEmpty(t *testing.T) {
	got := SprintVelocity(nil, testSprintPlan())

	if len(got) != 6 {
		t.Fatalf("Expected full canonical order for empty input, got %d sprints", len(got))
	}
	for _, sc := range got {
		if sc.Done != 0 {
			t.Errorf("Expected zero count for %s, got %d", sc.Sprint, sc.Done)
		}
	}
}
