package service

import "time"

// WeekStart returns the Monday opening the pay week containing t.
func WeekStart(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)

	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// PeriodEnd returns the Sunday closing the pay week containing t.
func PeriodEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}

// ReportDue is the Wednesday after the period ends, the provider's upload
// deadline.
func ReportDue(periodEnd time.Time) time.Time {
	return periodEnd.AddDate(0, 0, 3)
}

// CheckDate is the Friday after the period ends.
func CheckDate(periodEnd time.Time) time.Time {
	return periodEnd.AddDate(0, 0, 5)
}

// WeekDates lists all seven days of the pay week containing t, Monday first.
func WeekDates(t time.Time) []time.Time {
	start := WeekStart(t)

	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}

	return dates
}
