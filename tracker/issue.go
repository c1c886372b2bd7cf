package tracker

import "time"

// Issue is one row of the tracker export.
type Issue struct {
	ID       string
	Title    string
	Assignee string
	Labels   string
	Status   string
	Priority string
	Estimate float64
	Sprint   string

	Created   *time.Time
	Started   *time.Time
	Completed *time.Time
	Updated   *time.Time

	// CycleTime is the elapsed days between Created and Completed, set only
	// when both timestamps are present. Nil means "unknown", not zero days.
	CycleTime *float64
}

// Done reports whether the issue reached the terminal status.
func (i Issue) Done() bool {
	return i.Status == StatusDone
}

// StatusDone is the terminal status string used by the export.
const StatusDone = "Done"
