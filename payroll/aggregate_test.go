package payroll

import (
	"reflect"
	"testing"
	"time"

	"sierra-payroll/models"
)

func dated(name string, date time.Time, hours, rate float64) models.TimeEntry {
	return models.TimeEntry{EmployeeName: name, WorkDate: date, Hours: hours, Rate: rate}
}

func TestAggregateConsolidatesSameDayRows(t *testing.T) {
	day := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)
	entries := models.TimeEntries{
		dated("Dianne Robleza", day, 2, 28),
		dated("Dianne Robleza", day, 2, 28),
	}

	aggs := Aggregate(entries)
	if len(aggs) != 1 {
		t.Fatalf("expected one aggregate, got %d", len(aggs))
	}

	agg := aggs[0]
	if agg.RegularHours != 4 || agg.OvertimeHours != 0 {
		t.Fatalf("two 2 hour rows must consolidate into 4 regular hours: %+v", agg)
	}
	if agg.TotalAmount != 112 {
		t.Fatalf("expected amount 112.00, got %v", agg.TotalAmount)
	}
}

func TestAggregateSplitsPerDayNotPerWeek(t *testing.T) {
	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	entries := models.TimeEntries{
		dated("Jose Mejia", monday, 10, 40),
		dated("Jose Mejia", monday.AddDate(0, 0, 1), 10, 40),
	}

	aggs := Aggregate(entries)
	if len(aggs) != 1 {
		t.Fatalf("expected one aggregate, got %d", len(aggs))
	}

	agg := aggs[0]
	if agg.RegularHours != 16 || agg.OvertimeHours != 4 || agg.DoubletimeHours != 0 {
		t.Fatalf("each day splits on its own: %+v", agg)
	}
}

func TestAggregatePreservesFirstSeenOrder(t *testing.T) {
	day := time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)
	entries := models.TimeEntries{
		dated("Zelda Ortiz", day, 8, 30),
		dated("Aaron Pike", day, 8, 30),
		dated("Zelda Ortiz", day.AddDate(0, 0, 1), 8, 30),
	}

	aggs := Aggregate(entries)

	var names []string
	for _, agg := range aggs {
		names = append(names, agg.EmployeeName)
	}

	if !reflect.DeepEqual(names, []string{"Zelda Ortiz", "Aaron Pike"}) {
		t.Fatalf("aggregates must follow first appearance, got %v", names)
	}
}

func TestAggregateDeterministicAcrossRuns(t *testing.T) {
	day := time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)
	entries := models.TimeEntries{
		dated("Zelda Ortiz", day.AddDate(0, 0, 2), 9, 30),
		dated("Aaron Pike", day, 8, 25),
		dated("Zelda Ortiz", day, 4, 30),
	}

	first := Aggregate(entries)
	for i := 0; i < 20; i++ {
		if again := Aggregate(entries); !reflect.DeepEqual(first, again) {
			t.Fatalf("aggregation must be deterministic, run %d differed", i)
		}
	}
}

func TestAggregateWeekRateMostHoursWins(t *testing.T) {
	monday := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	entries := models.TimeEntries{
		dated("Jose Mejia", monday, 3, 22),
		dated("Jose Mejia", monday.AddDate(0, 0, 1), 8, 35),
	}

	aggs := Aggregate(entries)
	if aggs[0].Rate != 35 {
		t.Fatalf("week rate must follow the most worked hours, got %v", aggs[0].Rate)
	}
}
