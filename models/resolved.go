package models

import "math"

// UnresolvedRank sorts roster misses after every resolved employee.
const UnresolvedRank = math.MaxInt32

const (
	UnresolvedEmployeeNumber = "UNRESOLVED"
	UnresolvedSSN            = "000000000"
	UnresolvedDepartment     = "UNKNOWN"
)

// ResolvedEmployee is a WeeklyAggregate joined with roster identity, or a
// flagged placeholder when the name has no roster match.
type ResolvedEmployee struct {
	Aggregate WeeklyAggregate
	Roster    RosterEntry
	Resolved  bool
}

// NewUnresolvedEmployee builds the sentinel identity for a name the roster
// does not know. The raw input name is kept so the output row is still
// recognizable, and the department falls back to the timesheet hint.
func NewUnresolvedEmployee(agg WeeklyAggregate, canonicalName string) ResolvedEmployee {
	dept := agg.DeptHint
	if dept == "" {
		dept = UnresolvedDepartment
	}

	return ResolvedEmployee{
		Aggregate: agg,
		Roster: RosterEntry{
			CanonicalName:  canonicalName,
			EmployeeNumber: UnresolvedEmployeeNumber,
			SSN:            UnresolvedSSN,
			Status:         "A",
			Type:           "H",
			Department:     dept,
			SortRank:       UnresolvedRank,
		},
		Resolved: false,
	}
}
