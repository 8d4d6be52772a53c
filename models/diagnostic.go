package models

import "fmt"

type DiagnosticKind string

const (
	// DiagnosticRowParse marks a timesheet row whose numeric fields could not
	// be read; the row was skipped, the run continued.
	DiagnosticRowParse DiagnosticKind = "RowParseError"

	// DiagnosticUnresolvedEmployee marks a name with no roster match; the
	// employee still appears in the output under a placeholder identity.
	DiagnosticUnresolvedEmployee DiagnosticKind = "UnresolvedEmployee"
)

// Diagnostic is a recovered condition reported alongside a successful run.
type Diagnostic struct {
	Kind         DiagnosticKind
	EmployeeName string
	Detail       string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Kind, d.EmployeeName, d.Detail)
}
