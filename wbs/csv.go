package wbs

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// WriteCSV renders the table as a positional csv grid, one record per row,
// all ColumnCount cells present. Useful for diffing runs and for consumers
// without xlsx tooling.
func WriteCSV(table *Table) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range table.Rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = renderCell(cell)
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func renderCell(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
