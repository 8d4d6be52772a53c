package roster

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"sierra-payroll/models"
)

// LoadError is fatal at startup: the reference roster or the gold master
// order could not be read. Conversions never run without a roster.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load roster data from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Index is the static employee reference: identity fields keyed by canonical
// name, plus the gold master rank that fixes output order. Built once, safe
// for unsynchronized concurrent reads.
type Index struct {
	byKey map[string]models.RosterEntry
	order []models.RosterEntry
}

// Load reads the gold master order (one canonical name per line, top to
// bottom) and the roster csv, and joins them into an Index.
func Load(orderPath string, rosterPath string) (*Index, error) {
	orderBytes, err := os.ReadFile(orderPath)
	if err != nil {
		return nil, &LoadError{Path: orderPath, Err: err}
	}

	var order []string
	for _, line := range strings.Split(string(orderBytes), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			order = append(order, name)
		}
	}

	rosterBytes, err := os.ReadFile(rosterPath)
	if err != nil {
		return nil, &LoadError{Path: rosterPath, Err: err}
	}

	var entries []*models.RosterEntry
	if err := gocsv.UnmarshalBytes(rosterBytes, &entries); err != nil {
		return nil, &LoadError{Path: rosterPath, Err: err}
	}

	if len(entries) == 0 {
		return nil, &LoadError{Path: rosterPath, Err: fmt.Errorf("roster is empty")}
	}

	plain := make([]models.RosterEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry.CanonicalName) == "" {
			continue
		}
		plain = append(plain, *entry)
	}

	return NewIndex(order, plain), nil
}

// NewIndex ranks roster entries by their position in the gold master order.
// Entries the order does not mention keep roster-file order after the ranked
// block; order lines with no roster entry are logged and skipped.
func NewIndex(order []string, entries []models.RosterEntry) *Index {
	ix := &Index{
		byKey: make(map[string]models.RosterEntry, len(entries)),
	}

	rankByKey := make(map[string]int, len(order))
	for i, name := range order {
		rankByKey[CanonicalKey(name)] = i
	}

	unranked := len(order)
	for _, entry := range entries {
		key := CanonicalKey(entry.CanonicalName)

		rank, found := rankByKey[key]
		if !found {
			rank = unranked
			unranked++
			log.Warnf("roster entry %q missing from gold master order, ranked last", entry.CanonicalName)
		}

		entry.SortRank = rank
		ix.byKey[key] = entry
		ix.order = append(ix.order, entry)
	}

	for _, name := range order {
		if _, found := ix.byKey[CanonicalKey(name)]; !found {
			log.Warnf("gold master order names %q but the roster has no such entry", name)
		}
	}

	sortByRank(ix.order)

	return ix
}

// Lookup resolves a raw timesheet name, tolerating case differences and
// "First Last" vs "Last, First" ordering.
func (ix *Index) Lookup(name string) (models.RosterEntry, bool) {
	entry, found := ix.byKey[CanonicalKey(name)]
	return entry, found
}

// FuzzyLookup is the second-pass match behind Lookup: the first and last name
// parts must each appear on both sides after punctuation is stripped, so
// "Maria J Torres" still finds "Torres, Maria". Entries are tried in gold
// master order and the first hit wins, keeping resolution deterministic.
func (ix *Index) FuzzyLookup(name string) (models.RosterEntry, bool) {
	parts := nameParts(name)

	for _, entry := range ix.order {
		if namePartsMatch(parts, nameParts(entry.CanonicalName)) {
			return entry, true
		}
	}

	return models.RosterEntry{}, false
}

// Entries returns the full roster in gold master order. The slice is a copy;
// the index itself stays read-only.
func (ix *Index) Entries() []models.RosterEntry {
	out := make([]models.RosterEntry, len(ix.order))
	copy(out, ix.order)
	return out
}

func (ix *Index) Len() int {
	return len(ix.order)
}

func sortByRank(entries []models.RosterEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortRank < entries[j].SortRank
	})
}

func nameParts(name string) []string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, strings.ToLower(name))

	return strings.Fields(clean)
}

func namePartsMatch(a, b []string) bool {
	if len(a) < 2 || len(b) < 2 {
		return false
	}

	return (containsPart(b, a[0]) || containsPart(a, b[0])) &&
		(containsPart(b, a[len(a)-1]) || containsPart(a, b[len(b)-1]))
}

func containsPart(parts []string, part string) bool {
	for _, p := range parts {
		if p == part {
			return true
		}
	}
	return false
}

// CanonicalKey reduces a name to the comparable form both sides of a lookup
// share: lowercase, periods stripped, whitespace collapsed, and reordered to
// "last, first" when the name arrives as "First Last".
func CanonicalKey(name string) string {
	return strings.ToLower(DisplayName(name))
}

// DisplayName converts "First Last" into the "Last, First" form the WBS
// output uses, leaving names already carrying a comma untouched apart from
// spacing cleanup.
func DisplayName(name string) string {
	name = strings.ReplaceAll(name, ".", "")
	name = strings.Join(strings.Fields(name), " ")

	if name == "" {
		return ""
	}

	if strings.Contains(name, ",") {
		parts := strings.SplitN(name, ",", 2)
		last := strings.TrimSpace(parts[0])
		first := strings.TrimSpace(parts[1])
		if first == "" {
			return last
		}
		return fmt.Sprintf("%s, %s", last, first)
	}

	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}

	return fmt.Sprintf("%s, %s", parts[len(parts)-1], strings.Join(parts[:len(parts)-1], " "))
}
