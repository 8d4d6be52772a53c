package wbs

import (
	"testing"
	"time"

	"sierra-payroll/models"
	"sierra-payroll/roster"
)

func testMeta() Meta {
	periodEnd := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)
	return Meta{
		ClientID:   "055269",
		ClientName: "Sierra Roofing and Solar Inc",
		PeriodEnd:  periodEnd,
		ReportDue:  periodEnd.AddDate(0, 0, 3),
		CheckDate:  periodEnd.AddDate(0, 0, 5),
		RunTime:    time.Date(2025, 9, 8, 10, 30, 0, 0, time.UTC),
	}
}

func testIndex() *roster.Index {
	return roster.NewIndex(
		[]string{"Torres, Maria", "Mejia, Jose"},
		[]models.RosterEntry{
			{CanonicalName: "Mejia, Jose", EmployeeNumber: "1042", SSN: "523881234", Status: "A", Type: "H", Department: "100"},
			{CanonicalName: "Torres, Maria", EmployeeNumber: "1007", SSN: "601449876", Status: "A", Type: "H", Department: "200"},
		},
	)
}

func resolvedFixture(ix *roster.Index) []models.ResolvedEmployee {
	mejia, _ := ix.Lookup("Mejia, Jose")
	torres, _ := ix.Lookup("Torres, Maria")

	return []models.ResolvedEmployee{
		{
			Aggregate: models.WeeklyAggregate{EmployeeName: "Jose Mejia", RegularHours: 40, OvertimeHours: 2, Rate: 31, TotalAmount: 1333},
			Roster:    mejia,
			Resolved:  true,
		},
		{
			Aggregate: models.WeeklyAggregate{EmployeeName: "Maria Torres", RegularHours: 32, Rate: 28, TotalAmount: 896},
			Roster:    torres,
			Resolved:  true,
		},
		models.NewUnresolvedEmployee(models.WeeklyAggregate{EmployeeName: "Ghost Worker", RegularHours: 8, Rate: 20, TotalAmount: 160}, "Worker, Ghost"),
	}
}

func TestAssembleEveryRowIsFullWidth(t *testing.T) {
	ix := testIndex()
	assembler := Assembler{Index: ix, Meta: testMeta()}

	table := assembler.Assemble(resolvedFixture(ix))

	if !table.Rows.Uniform(ColumnCount) {
		t.Fatalf("every row must carry exactly %d cells", ColumnCount)
	}
	if len(table.Rows) != DataStartRow-1+3+1 {
		t.Fatalf("expected 8 header rows, 3 employees, 1 totals row, got %d rows", len(table.Rows))
	}
}

func TestAssembleHeaderRows(t *testing.T) {
	ix := testIndex()
	assembler := Assembler{Index: ix, Meta: testMeta()}

	table := assembler.Assemble(resolvedFixture(ix))

	if table.Rows[0][0] != "# V" {
		t.Fatalf("first metadata row must open with # V, got %v", table.Rows[0][0])
	}
	if table.Rows[3][2] != "09/07/2025" {
		t.Fatalf("period end row must carry 09/07/2025, got %v", table.Rows[3][2])
	}

	codes := table.Rows[DataStartRow-2]
	if codes[0] != "# E:26" || codes[7] != "A01" || codes[25] != "ATE" || codes[27] != "Totals" {
		t.Fatalf("code header row wrong: %v", codes)
	}
}

func TestAssembleGoldMasterOrderWithUnresolvedLast(t *testing.T) {
	ix := testIndex()
	assembler := Assembler{Index: ix, Meta: testMeta()}

	table := assembler.Assemble(resolvedFixture(ix))

	rows := table.EmployeeRows()
	if rows[0][2] != "Torres, Maria" {
		t.Fatalf("rank 0 employee must come first, got %v", rows[0][2])
	}
	if rows[1][2] != "Mejia, Jose" {
		t.Fatalf("rank 1 employee must come second, got %v", rows[1][2])
	}
	if rows[2][2] != "Worker, Ghost" || rows[2][0] != models.UnresolvedEmployeeNumber {
		t.Fatalf("unresolved employees must come last with sentinel identity, got %v", rows[2])
	}
}

func TestAssembleKeepsRosterNameVerbatim(t *testing.T) {
	ix := roster.NewIndex(
		[]string{"Young, Giana L."},
		[]models.RosterEntry{
			{CanonicalName: "Young, Giana L.", EmployeeNumber: "1004", SSN: "544009999", Status: "A", Type: "H", Department: "200"},
		},
	)
	assembler := Assembler{Index: ix, Meta: testMeta()}

	young, _ := ix.Lookup("Young, Giana L.")
	table := assembler.Assemble([]models.ResolvedEmployee{
		{
			Aggregate: models.WeeklyAggregate{EmployeeName: "Giana L Young", RegularHours: 40, Rate: 25, TotalAmount: 1000},
			Roster:    young,
			Resolved:  true,
		},
	})

	row := table.EmployeeRows()[0]
	if row[2] != "Young, Giana L." {
		t.Fatalf("roster identity must print verbatim, got %v", row[2])
	}
}

func TestAssembleZeroVersusBlankPolicy(t *testing.T) {
	ix := testIndex()
	assembler := Assembler{Index: ix, Meta: testMeta()}

	table := assembler.Assemble(resolvedFixture(ix))
	row := table.EmployeeRows()[0] // Torres: regular only

	if row[8] != 0.0 || row[9] != 0.0 {
		t.Fatalf("empty hour buckets must print explicit zeros, got %v and %v", row[8], row[9])
	}
	if row[26] != "" {
		t.Fatalf("comments cell must stay blank, got %v", row[26])
	}
	if row[7] != 32.0 {
		t.Fatalf("regular hours wrong: %v", row[7])
	}
	if row[27] != 896.0 {
		t.Fatalf("totals cell must carry the computed amount, got %v", row[27])
	}
}

func TestAssembleTotalsRow(t *testing.T) {
	ix := testIndex()
	assembler := Assembler{Index: ix, Meta: testMeta()}

	table := assembler.Assemble(resolvedFixture(ix))
	totals := table.Rows[len(table.Rows)-1]

	if totals[2] != "TOTAL" {
		t.Fatalf("totals row label missing, got %v", totals[2])
	}
	if totals[7] != 80.0 {
		t.Fatalf("regular hours total wrong: %v", totals[7])
	}
	if totals[8] != 2.0 {
		t.Fatalf("overtime hours total wrong: %v", totals[8])
	}
	if totals[27] != 2389.0 {
		t.Fatalf("amount total wrong: %v", totals[27])
	}
	if totals[5] != "" {
		t.Fatalf("pay rate column must never be summed, got %v", totals[5])
	}
}

func TestAssembleFullRosterOption(t *testing.T) {
	ix := testIndex()
	assembler := Assembler{Index: ix, Meta: testMeta(), Options: Options{IncludeFullRoster: true}}

	mejia, _ := ix.Lookup("Mejia, Jose")
	table := assembler.Assemble([]models.ResolvedEmployee{
		{
			Aggregate: models.WeeklyAggregate{EmployeeName: "Jose Mejia", RegularHours: 40, Rate: 31, TotalAmount: 1240},
			Roster:    mejia,
			Resolved:  true,
		},
	})

	rows := table.EmployeeRows()
	if len(rows) != 2 {
		t.Fatalf("full roster must add a row for the absent employee, got %d rows", len(rows))
	}
	if rows[0][2] != "Torres, Maria" || rows[0][7] != 0.0 {
		t.Fatalf("absent employee must appear in rank order with zero hours, got %v", rows[0])
	}
}

func TestAssembleDeterministicForIdenticalInput(t *testing.T) {
	ix := testIndex()
	assembler := Assembler{Index: ix, Meta: testMeta()}

	first := assembler.Assemble(resolvedFixture(ix))
	second := assembler.Assemble(resolvedFixture(ix))

	firstBytes, err := WriteCSV(first)
	if err != nil {
		t.Fatalf("write csv: %v", err)
	}
	secondBytes, err := WriteCSV(second)
	if err != nil {
		t.Fatalf("write csv: %v", err)
	}

	if string(firstBytes) != string(secondBytes) {
		t.Fatalf("identical input must render identical output")
	}
}
