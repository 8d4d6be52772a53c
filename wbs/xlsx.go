package wbs

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet the payroll provider reads.
const SheetName = "WEEKLY"

// WriteXLSX renders the table into a single-sheet workbook.
func WriteXLSX(table *Table) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}

		values := make([]interface{}, len(row))
		copy(values, row)

		if err := file.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
