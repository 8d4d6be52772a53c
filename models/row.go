package models

// Row is one positional output row: every cell is numeric, string, or nil
// (rendered empty). Column meaning is fixed by position, not by header.
type Row []interface{}
type Rows []Row

// Uniform reports whether every row has exactly width cells. The WBS layout
// requires this to hold for header, employee, and totals rows alike.
func (rows Rows) Uniform(width int) bool {
	for _, row := range rows {
		if len(row) != width {
			return false
		}
	}
	return true
}
