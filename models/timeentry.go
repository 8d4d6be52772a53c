package models

import (
	"time"
)

// TimeEntry is one raw timesheet row after parsing: one employee, one work
// date, a number of hours at an hourly rate. Entries are never mutated after
// the parser emits them.
type TimeEntry struct {
	EmployeeName string
	WorkDate     time.Time
	Hours        float64
	Rate         float64
	DeptHint     string
}

type TimeEntries []TimeEntry

// GroupByEmployeeDay buckets entries per employee per calendar date,
// preserving input order inside each bucket and returning the employee names
// in first-seen order so downstream output is deterministic.
func (entries TimeEntries) GroupByEmployeeDay() (map[string]map[time.Time][]TimeEntry, []string) {
	grouped := make(map[string]map[time.Time][]TimeEntry)
	var seen []string

	for _, entry := range entries {
		days, found := grouped[entry.EmployeeName]
		if !found {
			days = make(map[time.Time][]TimeEntry)
			grouped[entry.EmployeeName] = days
			seen = append(seen, entry.EmployeeName)
		}

		day := DateOnly(entry.WorkDate)
		days[day] = append(days[day], entry)
	}

	return grouped, seen
}

// DateOnly strips the clock so entries with differing timestamps still land
// on the same calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
