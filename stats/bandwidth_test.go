package stats

import (
	"testing"

	"github.com/urbanpiper/squadview/tracker"
)

func testBandwidthPlan() BandwidthPlan {
	return BandwidthPlan{
		PointsPerWeek:     5,
		TeamCapacityWeeks: 12,
		People:            []string{"gagan", "ganesh", "akshay"},
		EmailDomain:       "@urbanpiper.com",
		CapacityWeeks: map[string]float64{
			"ganesh": 4,
			"gagan":  12,
			"akshay": 12,
		},
		DefaultCapacityWeeks: 12,
	}
}

func TestTeamBandwidth(t *testing.T) {
	issues := []tracker.Issue{
		{ID: "1", Estimate: 3},
		{ID: "2", Estimate: 2},
		{ID: "3", Estimate: 5},
		{ID: "4"}, // unparseable estimate loaded as zero
	}

	bw := TeamBandwidth(issues, testBandwidthPlan())
	if bw.Actual != 2.0 {
		t.Errorf("Expected 10 points / 5 = 2.0 person-weeks, got %v", bw.Actual)
	}
	if bw.Predicted != 12 {
		t.Errorf("Expected predicted capacity 12, got %v", bw.Predicted)
	}
}

func TestTeamBandwidthEmpty(t *testing.T) {
	bw := TeamBandwidth(nil, testBandwidthPlan())
	if bw.Actual != 0 {
		t.Errorf("Expected zero actual for empty input, got %v", bw.Actual)
	}
}

func TestPeopleBandwidth(t *testing.T) {
	issues := []tracker.Issue{
		{ID: "1", Assignee: "gagan@urbanpiper.com", Estimate: 3},
		{ID: "2", Assignee: "Gagan@urbanpiper.com ", Estimate: 2},
		{ID: "3", Assignee: "gagan@urbanpiper.com", Estimate: 5},
		{ID: "4", Assignee: "ganesh@urbanpiper.com", Estimate: 10},
		{ID: "5", Assignee: "someone.else@urbanpiper.com", Estimate: 40},
	}

	got := PeopleBandwidth(issues, testBandwidthPlan())
	if len(got) != 2 {
		t.Fatalf("Expected 2 people, got %d", len(got))
	}

	// Sorted by normalized name
	gagan := got[0]
	if gagan.Person != "gagan" {
		t.Fatalf("Expected first person 'gagan', got '%s'", gagan.Person)
	}
	if gagan.Actual != 2.0 {
		t.Errorf("Expected gagan actual 10/5 = 2.0 person-weeks, got %v", gagan.Actual)
	}
	if gagan.Predicted != 12 {
		t.Errorf("Expected gagan predicted 12, got %v", gagan.Predicted)
	}

	ganesh := got[1]
	if ganesh.Person != "ganesh" {
		t.Fatalf("Expected second person 'ganesh', got '%s'", ganesh.Person)
	}
	if ganesh.Actual != 2.0 {
		t.Errorf("Expected ganesh actual 10/5 = 2.0, got %v", ganesh.Actual)
	}
	if ganesh.Predicted != 4 {
		t.Errorf("Expected ganesh predicted 4 weeks (partial quarter), got %v", ganesh.Predicted)
	}
}

func TestPeopleBandwidthExcludesUnlisted(t *testing.T) {
	issues := []tracker.Issue{
		{ID: "1", Assignee: "mystery@urbanpiper.com", Estimate: 5},
	}

	got := PeopleBandwidth(issues, testBandwidthPlan())
	if len(got) != 0 {
		t.Errorf("Expected no people for unlisted assignee, got %d", len(got))
	}
}

func TestPeopleBandwidthDefaultCapacity(t *testing.T) {
	plan := testBandwidthPlan()
	delete(plan.CapacityWeeks, "akshay")

	issues := []tracker.Issue{
		{ID: "1", Assignee: "akshay@urbanpiper.com", Estimate: 5},
	}

	got := PeopleBandwidth(issues, plan)
	if len(got) != 1 {
		t.Fatalf("Expected 1 person, got %d", len(got))
	}
	if got[0].Predicted != 12 {
		t.Errorf("Expected default capacity 12 for person absent from table, got %v", got[0].Predicted)
	}
}

func TestNormalizeAssignee(t *testing.T) {
	got := normalizeAssignee("  Gagan@urbanpiper.com ", "@urbanpiper.com")
	if got != "gagan" {
		t.Errorf("Expected 'gagan', got '%s'", got)
	}
}
