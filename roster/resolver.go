package roster

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"sierra-payroll/models"
)

// Resolver matches weekly aggregates against the roster index. The index is
// injected so the pipeline can run against synthetic rosters in tests.
type Resolver struct {
	Index *Index
}

func NewResolver(index *Index) *Resolver {
	return &Resolver{Index: index}
}

// Resolve attaches roster identity to every aggregate. A miss is never
// fatal: the employee keeps a placeholder identity, sorts after all resolved
// employees, and an UnresolvedEmployee diagnostic names the raw input string.
func (r *Resolver) Resolve(aggregates []models.WeeklyAggregate) ([]models.ResolvedEmployee, []models.Diagnostic) {
	resolved := make([]models.ResolvedEmployee, 0, len(aggregates))
	var diagnostics []models.Diagnostic

	for _, agg := range aggregates {
		entry, found := r.Index.Lookup(agg.EmployeeName)
		if !found {
			entry, found = r.Index.FuzzyLookup(agg.EmployeeName)
			if found {
				log.Infof("fuzzy roster match: %q resolved as %q", agg.EmployeeName, entry.CanonicalName)
			}
		}
		if found {
			resolved = append(resolved, models.ResolvedEmployee{
				Aggregate: agg,
				Roster:    entry,
				Resolved:  true,
			})
			continue
		}

		diagnostics = append(diagnostics, models.Diagnostic{
			Kind:         models.DiagnosticUnresolvedEmployee,
			EmployeeName: agg.EmployeeName,
			Detail:       fmt.Sprintf("no roster match for %q", agg.EmployeeName),
		})
		log.Warnf("no roster match for %q, emitting placeholder identity", agg.EmployeeName)

		resolved = append(resolved, models.NewUnresolvedEmployee(agg, DisplayName(agg.EmployeeName)))
	}

	return resolved, diagnostics
}
