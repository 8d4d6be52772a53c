package wbs

import (
	"fmt"
	"time"

	"sierra-payroll/models"
)

// ColumnCount is fixed by the WBS submission format. Every row the engine
// emits, headers and totals included, carries exactly this many cells.
const ColumnCount = 28

// DataStartRow is the 1-based row where employee rows begin, after six
// metadata rows and the two header rows.
const DataStartRow = 9

type columnKind int

const (
	kindIdentity columnKind = iota // string from roster, blank when absent
	kindNumeric                    // in-schema number, explicit 0 when no value
	kindText                       // free text, blank when no value
)

// column is one slot of the fixed layout. Fill behavior is driven by this
// table, not by conditionals at the write sites.
type column struct {
	label string // descriptive header, row 7
	code  string // machine code header, row 8
	kind  columnKind
	sum   bool // included in the trailing totals row
}

// columns is the positional contract of the WEEKLY sheet. Order matters;
// indexes are 0-based here, 1-based in the file.
var columns = [ColumnCount]column{
	{label: "# B:8", code: "# E:26", kind: kindIdentity},              // 1: employee number
	{label: "", code: "SSN", kind: kindIdentity},                      // 2
	{label: "", code: "Employee Name", kind: kindIdentity},            // 3: "Last, First"
	{label: "", code: "Status", kind: kindIdentity},                   // 4
	{label: "Pay", code: "Type", kind: kindIdentity},                  // 5
	{label: "", code: "Pay Rate", kind: kindNumeric},                  // 6: not summed
	{label: "", code: "Dept", kind: kindIdentity},                     // 7
	{label: "REGULAR", code: "A01", kind: kindNumeric, sum: true},     // 8
	{label: "OVERTIME", code: "A02", kind: kindNumeric, sum: true},    // 9
	{label: "DOUBLETIME", code: "A03", kind: kindNumeric, sum: true},  // 10
	{label: "VACATION", code: "A06", kind: kindNumeric, sum: true},    // 11
	{label: "SICK", code: "A07", kind: kindNumeric, sum: true},        // 12
	{label: "HOLIDAY", code: "A08", kind: kindNumeric, sum: true},     // 13
	{label: "BONUS", code: "A04", kind: kindNumeric, sum: true},       // 14
	{label: "COMMISSION", code: "A05", kind: kindNumeric, sum: true},  // 15
	{label: "PC HRS MON", code: "AH1", kind: kindNumeric, sum: true},  // 16
	{label: "PC TTL MON", code: "AI1", kind: kindNumeric, sum: true},  // 17
	{label: "PC HRS TUE", code: "AH2", kind: kindNumeric, sum: true},  // 18
	{label: "PC TTL TUE", code: "AI2", kind: kindNumeric, sum: true},  // 19
	{label: "PC HRS WED", code: "AH3", kind: kindNumeric, sum: true},  // 20
	{label: "PC TTL WED", code: "AI3", kind: kindNumeric, sum: true},  // 21
	{label: "PC HRS THU", code: "AH4", kind: kindNumeric, sum: true},  // 22
	{label: "PC TTL THU", code: "AI4", kind: kindNumeric, sum: true},  // 23
	{label: "PC HRS FRI", code: "AH5", kind: kindNumeric, sum: true},  // 24
	{label: "PC TTL FRI", code: "AI5", kind: kindNumeric, sum: true},  // 25
	{label: "TRAVEL AMOUNT", code: "ATE", kind: kindNumeric, sum: true}, // 26
	{label: "Notes and", code: "Comments", kind: kindText},            // 27
	{label: "", code: "Totals", kind: kindNumeric, sum: true},         // 28: computed amount
}

// Meta fills the six metadata rows at the top of the sheet. RunTime is
// injected so runs are reproducible under test.
type Meta struct {
	ClientID   string
	ClientName string
	PeriodEnd  time.Time
	ReportDue  time.Time
	CheckDate  time.Time
	RunTime    time.Time
}

const metaDateLayout = "01/02/2006"

func (m Meta) headerRows() models.Rows {
	versionRow := paddedRow(
		"# V", "DO NOT EDIT", "Version = B90216-00", "FmtRev = 2.1",
		fmt.Sprintf("RunTime = %s", m.RunTime.Format("20060102-150405")),
		fmt.Sprintf("CliUnqId = %s", m.ClientID),
		fmt.Sprintf("CliName = %s", m.ClientName),
		"Freq = W",
		fmt.Sprintf("PEDate = %s", m.PeriodEnd.Format(metaDateLayout)),
		fmt.Sprintf("RptDate = %s", m.ReportDue.Format(metaDateLayout)),
		fmt.Sprintf("CkDate = %s", m.CheckDate.Format(metaDateLayout)),
		"EmpType = SSN", "DoNotes = 1", "PayRates = H+;S+;E+;C+",
		"RateCol = 6", "T1 = 7+", "CodeBeg = 8", "CodeEnd = 26", "NoteCol = 27",
	)

	labels := make(models.Row, ColumnCount)
	codes := make(models.Row, ColumnCount)
	for i, col := range columns {
		labels[i] = col.label
		codes[i] = col.code
	}

	return models.Rows{
		versionRow,
		paddedRow("# U", "CliUnqID", m.ClientID),
		paddedRow("# N", "Client", m.ClientName),
		paddedRow("# P", "Period End", m.PeriodEnd.Format(metaDateLayout)),
		paddedRow("# R", "Report Due", m.ReportDue.Format(metaDateLayout)),
		paddedRow("# C", "Check Date", m.CheckDate.Format(metaDateLayout)),
		labels,
		codes,
	}
}

func paddedRow(cells ...interface{}) models.Row {
	row := make(models.Row, ColumnCount)
	copy(row, cells)
	return row
}

// Table is the assembled output: header rows, one row per employee, and the
// trailing totals row, all exactly ColumnCount cells wide.
type Table struct {
	Rows models.Rows
}

// EmployeeRows returns the data block without headers or totals.
func (t *Table) EmployeeRows() models.Rows {
	if len(t.Rows) <= DataStartRow {
		return nil
	}
	return t.Rows[DataStartRow-1 : len(t.Rows)-1]
}
