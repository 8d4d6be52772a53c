package payroll

import (
	"os"

	"github.com/gocarina/gocsv"

	"sierra-payroll/models"
)

type ItemType uint

const (
	PayItem ItemType = 1
)

type PayID uint

const (
	Regular    PayID = 1
	Overtime   PayID = 2
	Doubletime PayID = 3
)

// Entry is one line of the flat pay-item export some processors take instead
// of the WBS workbook: one row per employee per non-empty pay bucket.
type Entry struct {
	Type           ItemType `csv:"type"`
	PayID          PayID    `csv:"id"`
	EmployeeNumber string   `csv:"emp_num"`
	HoursAmount    float64  `csv:"hours"`
	Rate           float64  `csv:"rate"`
}

type Entries []Entry

func (entries Entries) ToCSV(file *os.File) error {
	return gocsv.MarshalFile(entries, file)
}

// ExportEntries flattens resolved employees into pay items. Employees with no
// hours at all are skipped; the WBS workbook, not this export, is the place
// that lists them.
func ExportEntries(employees []models.ResolvedEmployee) Entries {
	var entries Entries

	for _, emp := range employees {
		agg := emp.Aggregate

		if agg.RegularHours > 0 {
			entries = append(entries, Entry{
				Type:           PayItem,
				PayID:          Regular,
				EmployeeNumber: emp.Roster.EmployeeNumber,
				HoursAmount:    agg.RegularHours,
				Rate:           agg.Rate,
			})
		}

		if agg.OvertimeHours > 0 {
			entries = append(entries, Entry{
				Type:           PayItem,
				PayID:          Overtime,
				EmployeeNumber: emp.Roster.EmployeeNumber,
				HoursAmount:    agg.OvertimeHours,
				Rate:           models.RoundCents(agg.Rate * 1.5),
			})
		}

		if agg.DoubletimeHours > 0 {
			entries = append(entries, Entry{
				Type:           PayItem,
				PayID:          Doubletime,
				EmployeeNumber: emp.Roster.EmployeeNumber,
				HoursAmount:    agg.DoubletimeHours,
				Rate:           models.RoundCents(agg.Rate * 2.0),
			})
		}
	}

	return entries
}
