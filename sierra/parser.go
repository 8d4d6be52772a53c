package sierra

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"sierra-payroll/models"
)

// MalformedInputError aborts a run: the header row is missing a column the
// engine cannot work without.
type MalformedInputError struct {
	Missing []string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("timesheet header missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// header aliases observed across Sierra exports; matched after lowercasing
// and stripping spaces.
var (
	nameAliases = []string{"employeename", "name", "employee", "worker"}
	hourAliases = []string{"hours", "hoursworked", "hrs", "timeworked"}
	rateAliases = []string{"rate", "payrate", "hourlyrate", "wage"}
	dateAliases = []string{"workdate", "date", "day", "weekday"}
	deptAliases = []string{"dept", "department", "task", "job"}
)

const headerScanLimit = 20

type columnMap struct {
	name int
	hour int
	rate int
	date int
	dept int
}

// Parser turns a raw timesheet grid into TimeEntry records. WeekStart anchors
// weekday-only date cells (and rows with no date column at all) onto concrete
// calendar days.
type Parser struct {
	WeekStart time.Time
}

// Parse reads the grid into an ordered entry list. Rows whose numeric fields
// cannot be read become RowParseError diagnostics and are skipped; a header
// without name or hours columns is fatal.
func (p *Parser) Parse(grid [][]string) (models.TimeEntries, []models.Diagnostic, error) {
	headerRow, cols, err := findHeader(grid)
	if err != nil {
		return nil, nil, err
	}

	var entries models.TimeEntries
	var diagnostics []models.Diagnostic

	for i := headerRow + 1; i < len(grid); i++ {
		row := grid[i]

		name := NormalizeName(cellValue(row, cols.name))
		if name == "" {
			continue
		}

		// Repeated header text below the real header shows up in some
		// exports; treat it like a blank row.
		if isHeaderEcho(name) {
			continue
		}

		hoursRaw := cellValue(row, cols.hour)
		if hoursRaw == "" {
			continue
		}

		hours, err := parseNonNegative(hoursRaw)
		if err != nil {
			diagnostics = append(diagnostics, models.Diagnostic{
				Kind:         models.DiagnosticRowParse,
				EmployeeName: name,
				Detail:       fmt.Sprintf("row %d: unreadable hours %q", i+1, hoursRaw),
			})
			log.Warnf("skipping row %d for %s: unreadable hours %q", i+1, name, hoursRaw)
			continue
		}

		if hours == 0 {
			continue
		}

		rate := 0.0
		if cols.rate >= 0 {
			rateRaw := cellValue(row, cols.rate)
			if rateRaw != "" {
				rate, err = parseNonNegative(rateRaw)
				if err != nil {
					diagnostics = append(diagnostics, models.Diagnostic{
						Kind:         models.DiagnosticRowParse,
						EmployeeName: name,
						Detail:       fmt.Sprintf("row %d: unreadable rate %q", i+1, rateRaw),
					})
					log.Warnf("skipping row %d for %s: unreadable rate %q", i+1, name, rateRaw)
					continue
				}
			}
		}

		workDate := p.WeekStart
		if cols.date >= 0 {
			if parsed, ok := p.parseWorkDate(cellValue(row, cols.date)); ok {
				workDate = parsed
			}
		}

		entries = append(entries, models.TimeEntry{
			EmployeeName: name,
			WorkDate:     models.DateOnly(workDate),
			Hours:        hours,
			Rate:         rate,
			DeptHint:     cellValue(row, cols.dept),
		})
	}

	log.Debugf("parsed %d time entries, %d rows skipped with diagnostics", len(entries), len(diagnostics))

	return entries, diagnostics, nil
}

// findHeader scans the top of the grid for a row pairing an employee-name
// label with an hours label, then maps the columns the engine cares about.
// Preamble rows that merely contain a name-like cell are skipped; the error
// names what the whole scan window never produced.
func findHeader(grid [][]string) (int, columnMap, error) {
	limit := len(grid)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	sawName := false
	for i := 0; i < limit; i++ {
		cols := columnMap{name: -1, hour: -1, rate: -1, date: -1, dept: -1}

		for j, label := range grid[i] {
			key := normalizeHeader(label)
			switch {
			case cols.name < 0 && matchesAlias(key, nameAliases):
				cols.name = j
			case cols.hour < 0 && matchesAlias(key, hourAliases):
				cols.hour = j
			case cols.rate < 0 && matchesAlias(key, rateAliases):
				cols.rate = j
			case cols.date < 0 && matchesAlias(key, dateAliases):
				cols.date = j
			case cols.dept < 0 && matchesAlias(key, deptAliases):
				cols.dept = j
			}
		}

		if cols.name >= 0 && cols.hour >= 0 {
			return i, cols, nil
		}

		if cols.name >= 0 {
			sawName = true
		}
	}

	if sawName {
		return 0, columnMap{}, &MalformedInputError{Missing: []string{"hours"}}
	}

	return 0, columnMap{}, &MalformedInputError{Missing: []string{"employee name", "hours"}}
}

func matchesAlias(key string, aliases []string) bool {
	for _, alias := range aliases {
		if key == alias {
			return true
		}
	}
	return false
}

func normalizeHeader(header string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "")
}

func isHeaderEcho(name string) bool {
	return matchesAlias(normalizeHeader(name), nameAliases)
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseNonNegative(raw string) (float64, error) {
	val, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, err
	}

	if val < 0 {
		return 0, fmt.Errorf("negative value %v", val)
	}

	return val, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01/02/06",
	"1-2-2006",
	"Jan 2, 2006",
	"2006/01/02",
	"1/2/2006 15:04",
	"2006-01-02T15:04:05",
}

var weekdayOffsets = map[string]int{
	"monday": 0, "mon": 0,
	"tuesday": 1, "tue": 1, "tues": 1,
	"wednesday": 2, "wed": 2,
	"thursday": 3, "thu": 3, "thur": 3, "thurs": 3,
	"friday": 4, "fri": 4,
	"saturday": 5, "sat": 5,
	"sunday": 6, "sun": 6,
}

// parseWorkDate accepts Excel serial numbers, common date layouts, or a plain
// weekday name anchored to the parser's week start.
func (p *Parser) parseWorkDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	if offset, found := weekdayOffsets[strings.ToLower(raw)]; found {
		return p.WeekStart.AddDate(0, 0, offset), true
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return parsed, true
		}
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}

	log.Debugf("unrecognized work date %q, falling back to week start", raw)

	return time.Time{}, false
}

// NormalizeName trims and collapses internal whitespace. "First Last" order
// is preserved here; reordering happens only against the roster.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
