package charts

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/urbanpiper/squadview/config"
	"github.com/urbanpiper/squadview/stats"
	"github.com/urbanpiper/squadview/tracker"
)

// BuildDashboard runs every aggregator over the cleaned issue set and
// returns the full chart set in display order. Works on an empty issue set
// too: fixed charts still appear (empty or zero-valued) and service charts
// are simply absent.
func BuildDashboard(issues []tracker.Issue, analysis *config.Analysis) []Chart {
	sprintPlan := analysis.SprintPlan()
	bandwidthPlan := analysis.BandwidthPlan()

	out := []Chart{
		teamDistribution(issues),
		typeDistribution(issues),
		priorityDistribution(issues),
		sprintVelocity(issues, sprintPlan),
		peopleBandwidth(issues, bandwidthPlan),
		teamBandwidth(issues, bandwidthPlan),
		cycleTime(issues, sprintPlan),
		priorityCompletion(issues),
	}
	return append(out, serviceSplits(issues, analysis.Services)...)
}

func teamDistribution(issues []tracker.Issue) Chart {
	return Chart{
		Kind:   Pie,
		Title:  "Task Distribution Across Team",
		XLabel: "Team Member",
		YLabel: "Tasks",
		Series: []Series{{Color: defaultSeriesColor, Points: countPoints(stats.CountByAssignee(issues), nil)}},
	}
}

func typeDistribution(issues []tracker.Issue) Chart {
	return Chart{
		Kind:   Pie,
		Title:  "Task Distribution Across Task Types",
		XLabel: "Task Type",
		YLabel: "Count",
		Series: []Series{{Color: defaultSeriesColor, Points: countPoints(stats.CountByType(issues), taskTypeColor)}},
	}
}

func priorityDistribution(issues []tracker.Issue) Chart {
	return Chart{
		Kind:   Pie,
		Title:  "Task Distribution Across Priorities",
		XLabel: "Priority",
		YLabel: "Tasks",
		Series: []Series{{Color: defaultSeriesColor, Points: countPoints(stats.CountByPriority(issues), nil)}},
	}
}

func sprintVelocity(issues []tracker.Issue, plan stats.SprintPlan) Chart {
	counts := stats.SprintVelocity(issues, plan)
	points := make([]Point, 0, len(counts))
	for _, sc := range counts {
		points = append(points, Point{Label: sc.Sprint, Value: float64(sc.Done)})
	}
	return Chart{
		Kind:   Bar,
		Title:  "Sprint Velocity (Tasks Completed per Sprint)",
		XLabel: "Sprint",
		YLabel: "Tasks Completed",
		Series: []Series{{Color: defaultSeriesColor, Points: points}},
	}
}

func teamBandwidth(issues []tracker.Issue, plan stats.BandwidthPlan) Chart {
	bw := stats.TeamBandwidth(issues, plan)
	return Chart{
		Kind:   Bar,
		Title:  "Bandwidth Efficiency: Actual vs Predicted",
		XLabel: "Efficiency Type",
		YLabel: "Person Weeks",
		Series: []Series{{
			Color: defaultSeriesColor,
			Points: []Point{
				{Label: "Predicted Efficiency", Value: bw.Predicted, Color: predictedColor},
				{Label: "Actual Efficiency", Value: bw.Actual, Color: actualColor},
			},
		}},
	}
}

func peopleBandwidth(issues []tracker.Issue, plan stats.BandwidthPlan) Chart {
	people := stats.PeopleBandwidth(issues, plan)
	predicted := Series{Name: "Predicted", Color: predictedColor}
	actual := Series{Name: "Actual", Color: actualColor}
	for _, p := range people {
		predicted.Points = append(predicted.Points, Point{Label: p.Person, Value: p.Predicted})
		actual.Points = append(actual.Points, Point{Label: p.Person, Value: p.Actual})
	}
	return Chart{
		Kind:   GroupedBar,
		Title:  "Bandwidth Efficiency Per Person: Actual vs Predicted",
		XLabel: "Team Member",
		YLabel: "Person Weeks",
		Series: []Series{predicted, actual},
	}
}

func cycleTime(issues []tracker.Issue, plan stats.SprintPlan) Chart {
	averages := stats.AvgCycleTimeBySprint(issues, plan)
	points := make([]Point, 0, len(averages))
	for _, sct := range averages {
		p := Point{Label: sct.Sprint, Missing: sct.AvgDays == nil}
		if sct.AvgDays != nil {
			p.Value = *sct.AvgDays
		}
		points = append(points, p)
	}
	return Chart{
		Kind:   Bar,
		Title:  "Task Completion Efficiency (Average Cycle Time per Sprint)",
		XLabel: "Sprint",
		YLabel: "Average Cycle Time (days)",
		Series: []Series{{Color: defaultSeriesColor, Points: points}},
	}
}

// Completion rate by priority is a bar chart in percent.
func priorityCompletion(issues []tracker.Issue) Chart {
	rates := stats.PriorityCompletionRate(issues)
	points := make([]Point, 0, len(rates))
	for _, pr := range rates {
		points = append(points, Point{Label: pr.Priority, Value: pr.Rate})
	}
	return Chart{
		Kind:   Bar,
		Title:  "Completion Rate by Priority",
		XLabel: "Priority",
		YLabel: "Completion Rate (%)",
		Series: []Series{{Color: defaultSeriesColor, Points: points}},
	}
}

func serviceSplits(issues []tracker.Issue, services []string) []Chart {
	splits := stats.TypeSplitByService(issues, services)
	out := make([]Chart, 0, len(splits))
	for _, split := range splits {
		out = append(out, Chart{
			Kind:   Pie,
			Title:  "Task Type Split for " + strings.ToUpper(split.Service),
			XLabel: "Task Type",
			YLabel: "Count",
			Series: []Series{{Color: defaultSeriesColor, Points: countPoints(split.Types, taskTypeColor)}},
		})
	}
	return out
}

func countPoints(counts []stats.Count, colorFor func(string) lipgloss.Color) []Point {
	points := make([]Point, 0, len(counts))
	for _, c := range counts {
		p := Point{Label: c.Label, Value: float64(c.N)}
		if colorFor != nil {
			p.Color = colorFor(c.Label)
		}
		points = append(points, p)
	}
	return points
}

func taskTypeColor(label string) lipgloss.Color {
	return TaskTypeColors[tracker.TaskType(label)]
}
