package tracker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrSourceNotFound is returned when the export file is absent or unreadable.
// The dashboard shows an empty-state notice instead of crashing.
var ErrSourceNotFound = errors.New("source file not found")

// dateFormats are tried in order when parsing timestamp columns. The export
// writes ISO-8601, but older rows carry second or date-only precision.
var dateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const secondsPerDay = 24 * 60 * 60

// Load reads the CSV export at path and returns one Issue per data row.
// The first row is the header; columns are matched by header name, so column
// order doesn't matter and missing columns just leave fields absent.
func Load(path string) ([]Issue, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	if len(rows) < 2 {
		return []Issue{}, nil
	}

	headers := rows[0]
	issues := make([]Issue, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i := 0; i < len(headers) && i < len(row); i++ {
			record[headers[i]] = row[i]
		}
		issues = append(issues, issueFromRecord(record))
	}
	return issues, nil
}

func issueFromRecord(record map[string]string) Issue {
	issue := Issue{
		ID:       record["ID"],
		Title:    record["Title"],
		Assignee: record["Assignee"],
		Labels:   record["Labels"],
		Status:   record["Status"],
		Priority: record["Priority"],
		Sprint:   record["Cycle Name"],
	}

	// Unparseable estimates degrade to zero points rather than an error.
	if est, err := strconv.ParseFloat(strings.TrimSpace(record["Estimate"]), 64); err == nil {
		issue.Estimate = est
	}

	issue.Created = parseDate(record["Created"])
	issue.Started = parseDate(record["Started"])
	issue.Completed = parseDate(record["Completed"])
	issue.Updated = parseDate(record["Updated"])

	if issue.Created != nil && issue.Completed != nil {
		days := issue.Completed.Sub(*issue.Created).Seconds() / secondsPerDay
		issue.CycleTime = &days
	}
	return issue
}

// parseDate returns nil when the value is empty or doesn't parse. The row is
// kept either way; only the field goes absent.
func parseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return &t
		}
	}
	return nil
}
