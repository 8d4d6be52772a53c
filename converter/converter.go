package converter

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"sierra-payroll/models"
	"sierra-payroll/payroll"
	"sierra-payroll/roster"
	"sierra-payroll/sierra"
	"sierra-payroll/wbs"
)

// Engine runs the full Sierra → WBS pipeline for one input file. It holds no
// mutable state of its own: the roster index is read-only, so one engine may
// serve concurrent conversions.
type Engine struct {
	Index   *roster.Index
	Meta    wbs.Meta
	Options wbs.Options
	Parser  sierra.Parser
}

// Result pairs the assembled table with everything the caller needs to
// report on the run.
type Result struct {
	Table       *wbs.Table
	Resolved    []models.ResolvedEmployee
	Diagnostics []models.Diagnostic
	Employees   int
	TotalHours  float64
}

// Convert parses raw timesheet bytes, applies daily overtime, aggregates the
// week, resolves identities, and assembles the output table. Fatal errors
// abort with no partial output; recovered conditions come back as
// diagnostics on a successful result.
func (e *Engine) Convert(filename string, data []byte) (*Result, error) {
	grid, err := sierra.ReadGrid(filename, data)
	if err != nil {
		return nil, err
	}

	entries, diagnostics, err := e.Parser.Parse(grid)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid employee rows found in %s", filename)
	}

	aggregates := payroll.Aggregate(entries)

	resolver := roster.NewResolver(e.Index)
	resolved, unresolvedDiags := resolver.Resolve(aggregates)
	diagnostics = append(diagnostics, unresolvedDiags...)

	assembler := wbs.Assembler{Index: e.Index, Meta: e.Meta, Options: e.Options}
	table := assembler.Assemble(resolved)

	var totalHours float64
	for _, agg := range aggregates {
		totalHours += agg.TotalHours()
	}

	log.Infof("converted %s: %d employees, %.2f hours, %d diagnostics", filename, len(aggregates), totalHours, len(diagnostics))

	return &Result{
		Table:       table,
		Resolved:    resolved,
		Diagnostics: diagnostics,
		Employees:   len(aggregates),
		TotalHours:  totalHours,
	}, nil
}

// Summary is the validation view of an input file: enough to tell a caller
// whether a conversion is worth running.
type Summary struct {
	Employees  int
	Entries    int
	TotalHours float64
}

// Validate parses without assembling, reporting distinct employees, entry
// count, and total hours.
func (e *Engine) Validate(filename string, data []byte) (*Summary, []models.Diagnostic, error) {
	grid, err := sierra.ReadGrid(filename, data)
	if err != nil {
		return nil, nil, err
	}

	entries, diagnostics, err := e.Parser.Parse(grid)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]struct{})
	var totalHours float64
	for _, entry := range entries {
		seen[entry.EmployeeName] = struct{}{}
		totalHours += entry.Hours
	}

	return &Summary{
		Employees:  len(seen),
		Entries:    len(entries),
		TotalHours: totalHours,
	}, diagnostics, nil
}
