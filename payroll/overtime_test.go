package payroll

import (
	"testing"
	"time"

	"sierra-payroll/models"
)

var day = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func entry(name string, hours, rate float64) models.TimeEntry {
	return models.TimeEntry{EmployeeName: name, WorkDate: day, Hours: hours, Rate: rate}
}

func TestSplitDayRegularOnly(t *testing.T) {
	split, ok := SplitDay("Maria Torres", day, []models.TimeEntry{entry("Maria Torres", 4, 28)})
	if !ok {
		t.Fatalf("expected a split for a 4 hour day")
	}
	if split.RegularHours != 4 || split.OvertimeHours != 0 || split.DoubletimeHours != 0 {
		t.Fatalf("unexpected buckets: %+v", split)
	}
	if split.Rate != 28 {
		t.Fatalf("expected rate 28, got %v", split.Rate)
	}
}

func TestSplitDayOvertimeTier(t *testing.T) {
	split, ok := SplitDay("Maria Torres", day, []models.TimeEntry{entry("Maria Torres", 9, 43)})
	if !ok {
		t.Fatalf("expected a split for a 9 hour day")
	}
	if split.RegularHours != 8 || split.OvertimeHours != 1 || split.DoubletimeHours != 0 {
		t.Fatalf("unexpected buckets: %+v", split)
	}
}

func TestSplitDayDoubletimeTier(t *testing.T) {
	split, ok := SplitDay("Maria Torres", day, []models.TimeEntry{entry("Maria Torres", 14, 30)})
	if !ok {
		t.Fatalf("expected a split for a 14 hour day")
	}
	if split.RegularHours != 8 || split.OvertimeHours != 4 || split.DoubletimeHours != 2 {
		t.Fatalf("unexpected buckets: %+v", split)
	}
}

func TestSplitDayBoundaries(t *testing.T) {
	split, _ := SplitDay("Maria Torres", day, []models.TimeEntry{entry("Maria Torres", 8, 30)})
	if split.RegularHours != 8 || split.OvertimeHours != 0 {
		t.Fatalf("8 hours must stay regular: %+v", split)
	}

	split, _ = SplitDay("Maria Torres", day, []models.TimeEntry{entry("Maria Torres", 12, 30)})
	if split.RegularHours != 8 || split.OvertimeHours != 4 || split.DoubletimeHours != 0 {
		t.Fatalf("12 hours must cap at the overtime tier: %+v", split)
	}
}

func TestSplitDaySumsEntriesBeforeTiering(t *testing.T) {
	entries := []models.TimeEntry{
		entry("Maria Torres", 6, 30),
		entry("Maria Torres", 5, 30),
	}

	split, ok := SplitDay("Maria Torres", day, entries)
	if !ok {
		t.Fatalf("expected a split")
	}
	if split.RegularHours != 8 || split.OvertimeHours != 3 {
		t.Fatalf("overtime must come from the day total, got %+v", split)
	}
}

func TestSplitDayZeroHours(t *testing.T) {
	if _, ok := SplitDay("Maria Torres", day, []models.TimeEntry{entry("Maria Torres", 0, 30)}); ok {
		t.Fatalf("zero-hour day must not produce a split")
	}
}

func TestDayRateMostHoursWins(t *testing.T) {
	entries := []models.TimeEntry{
		entry("Maria Torres", 2, 25),
		entry("Maria Torres", 6, 32),
	}

	split, _ := SplitDay("Maria Torres", day, entries)
	if split.Rate != 32 {
		t.Fatalf("rate with most hours must win, got %v", split.Rate)
	}
}

func TestDayRateTieGoesToFirstSeen(t *testing.T) {
	entries := []models.TimeEntry{
		entry("Maria Torres", 4, 25),
		entry("Maria Torres", 4, 32),
	}

	split, _ := SplitDay("Maria Torres", day, entries)
	if split.Rate != 25 {
		t.Fatalf("tied rates must keep the first-seen rate, got %v", split.Rate)
	}
}
