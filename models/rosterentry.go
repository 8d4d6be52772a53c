package models

// RosterEntry is one line of the gold master roster: the canonical identity
// the payroll provider knows an employee by, plus the rank that fixes the
// employee's position in the output file. Loaded once at startup, read-only
// afterwards.
type RosterEntry struct {
	CanonicalName  string `csv:"Employee Name" gorm:"primaryKey"`
	EmployeeNumber string `csv:"Employee Number"`
	SSN            string `csv:"SSN"`
	Status         string `csv:"Status"`
	Type           string `csv:"Type"`
	Department     string `csv:"Department"`
	SortRank       int    `csv:"-"`
}
