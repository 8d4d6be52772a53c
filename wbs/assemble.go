package wbs

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"sierra-payroll/models"
	"sierra-payroll/roster"
)

type Options struct {
	// IncludeFullRoster also emits zero rows for roster employees absent
	// from the week's input, reproducing the pre-filled submission layout
	// some processors expect.
	IncludeFullRoster bool
}

// Assembler renders resolved employees into the fixed WBS table. The index
// is only consulted for full-roster fill; ordering comes from the ranks the
// resolver already attached.
type Assembler struct {
	Index   *roster.Index
	Meta    Meta
	Options Options
}

// Assemble orders employees by gold master rank (unresolved last, stable by
// first appearance), renders one row each, and closes with the computed
// totals row.
func (a *Assembler) Assemble(employees []models.ResolvedEmployee) *Table {
	ordered := make([]models.ResolvedEmployee, len(employees))
	copy(ordered, employees)

	if a.Options.IncludeFullRoster {
		ordered = append(ordered, a.missingRosterRows(ordered)...)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Roster.SortRank < ordered[j].Roster.SortRank
	})

	rows := a.Meta.headerRows()
	for _, emp := range ordered {
		rows = append(rows, employeeRow(emp))
	}
	rows = append(rows, totalsRow(rows[DataStartRow-1:]))

	log.Infof("assembled WBS table with %d employee rows", len(ordered))

	return &Table{Rows: rows}
}

// missingRosterRows builds zero aggregates for every roster employee the
// input never mentioned.
func (a *Assembler) missingRosterRows(present []models.ResolvedEmployee) []models.ResolvedEmployee {
	seen := make(map[string]struct{}, len(present))
	for _, emp := range present {
		seen[roster.CanonicalKey(emp.Roster.CanonicalName)] = struct{}{}
	}

	var missing []models.ResolvedEmployee
	for _, entry := range a.Index.Entries() {
		if _, found := seen[roster.CanonicalKey(entry.CanonicalName)]; found {
			continue
		}

		missing = append(missing, models.ResolvedEmployee{
			Aggregate: models.WeeklyAggregate{EmployeeName: entry.CanonicalName},
			Roster:    entry,
			Resolved:  true,
		})
	}

	return missing
}

// employeeRow maps one employee onto the positional layout. Numeric cells
// are always populated, zero included; only text cells may stay blank. The
// name cell carries the roster's identity string verbatim; unresolved
// placeholders already hold the "Last, First" form of the input name.
func employeeRow(emp models.ResolvedEmployee) models.Row {
	row := make(models.Row, ColumnCount)
	row[0] = emp.Roster.EmployeeNumber
	row[1] = emp.Roster.SSN
	row[2] = emp.Roster.CanonicalName
	row[3] = emp.Roster.Status
	row[4] = emp.Roster.Type
	row[5] = emp.Aggregate.Rate
	row[6] = emp.Roster.Department
	row[7] = emp.Aggregate.RegularHours
	row[8] = emp.Aggregate.OvertimeHours
	row[9] = emp.Aggregate.DoubletimeHours

	for i, col := range columns {
		if row[i] != nil {
			continue
		}
		switch col.kind {
		case kindNumeric:
			row[i] = 0.0
		default:
			row[i] = ""
		}
	}

	row[ColumnCount-1] = emp.Aggregate.TotalAmount

	return row
}

// totalsRow sums the numeric columns of the employee block. The label sits
// in the name column; non-summed cells stay blank.
func totalsRow(employeeRows models.Rows) models.Row {
	row := make(models.Row, ColumnCount)

	for i, col := range columns {
		if !col.sum {
			row[i] = ""
			continue
		}

		var total float64
		for _, emp := range employeeRows {
			if v, ok := emp[i].(float64); ok {
				total += v
			}
		}
		row[i] = models.RoundCents(total)
	}

	row[2] = "TOTAL"

	return row
}
