package roster

import (
	"testing"

	"sierra-payroll/models"
)

func TestResolveAttachesRosterIdentity(t *testing.T) {
	ix := NewIndex([]string{"Torres, Maria"}, testEntries())
	resolver := NewResolver(ix)

	resolved, diagnostics := resolver.Resolve([]models.WeeklyAggregate{
		{EmployeeName: "Maria Torres", RegularHours: 40, Rate: 28},
	})

	if len(diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diagnostics)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected 1 resolved employee, got %d", len(resolved))
	}

	emp := resolved[0]
	if !emp.Resolved {
		t.Fatalf("expected a roster match")
	}
	if emp.Roster.EmployeeNumber != "1007" || emp.Roster.SSN != "601449876" {
		t.Fatalf("wrong roster entry attached: %+v", emp.Roster)
	}
	if emp.Aggregate.RegularHours != 40 {
		t.Fatalf("aggregate must ride along unchanged: %+v", emp.Aggregate)
	}
}

func TestResolveFallsBackToFuzzyMatch(t *testing.T) {
	ix := NewIndex([]string{"Torres, Maria"}, testEntries())
	resolver := NewResolver(ix)

	resolved, diagnostics := resolver.Resolve([]models.WeeklyAggregate{
		{EmployeeName: "Maria J Torres", RegularHours: 40, Rate: 28},
	})

	if len(diagnostics) != 0 {
		t.Fatalf("a fuzzy hit must not be flagged: %v", diagnostics)
	}

	emp := resolved[0]
	if !emp.Resolved {
		t.Fatalf("expected a fuzzy roster match")
	}
	if emp.Roster.EmployeeNumber != "1007" {
		t.Fatalf("wrong roster entry attached: %+v", emp.Roster)
	}
}

func TestResolveMissKeepsEmployeeWithPlaceholder(t *testing.T) {
	ix := NewIndex(nil, testEntries())
	resolver := NewResolver(ix)

	resolved, diagnostics := resolver.Resolve([]models.WeeklyAggregate{
		{EmployeeName: "Ghost Worker", RegularHours: 8, Rate: 20},
	})

	if len(resolved) != 1 {
		t.Fatalf("a roster miss must never drop the employee")
	}

	emp := resolved[0]
	if emp.Resolved {
		t.Fatalf("expected an unresolved placeholder")
	}
	if emp.Roster.EmployeeNumber != models.UnresolvedEmployeeNumber {
		t.Fatalf("expected sentinel employee number, got %q", emp.Roster.EmployeeNumber)
	}
	if emp.Roster.SortRank != models.UnresolvedRank {
		t.Fatalf("unresolved employees must sort last, got rank %d", emp.Roster.SortRank)
	}
	if emp.Roster.CanonicalName != "Worker, Ghost" {
		t.Fatalf("placeholder keeps the display form of the input name, got %q", emp.Roster.CanonicalName)
	}

	if len(diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diagnostics))
	}
	diag := diagnostics[0]
	if diag.Kind != models.DiagnosticUnresolvedEmployee {
		t.Fatalf("expected UnresolvedEmployee, got %q", diag.Kind)
	}
	if diag.EmployeeName != "Ghost Worker" {
		t.Fatalf("diagnostic must carry the raw input name, got %q", diag.EmployeeName)
	}
}

func TestResolvePreservesInputOrder(t *testing.T) {
	ix := NewIndex(nil, testEntries())
	resolver := NewResolver(ix)

	resolved, _ := resolver.Resolve([]models.WeeklyAggregate{
		{EmployeeName: "Jose Mejia"},
		{EmployeeName: "Unknown Person"},
		{EmployeeName: "Maria Torres"},
	})

	if len(resolved) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(resolved))
	}
	if resolved[0].Aggregate.EmployeeName != "Jose Mejia" ||
		resolved[1].Aggregate.EmployeeName != "Unknown Person" ||
		resolved[2].Aggregate.EmployeeName != "Maria Torres" {
		t.Fatalf("resolution must not reorder: %+v", resolved)
	}
}
