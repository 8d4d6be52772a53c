package sierra

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// weeklySheet is the sheet name Sierra exports use; older exports sometimes
// carry a single unnamed sheet instead.
const weeklySheet = "WEEKLY"

const maxXLSRows = 100000

// ReadGrid loads a Sierra timesheet export into a rectangular string grid.
// The format is sniffed from the file extension: legacy .xls, .xlsx, or a
// plain csv export.
func ReadGrid(filename string, data []byte) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("failed to open xls %s: %w", filename, err)
		}

		if workbook.NumSheets() == 0 {
			return nil, fmt.Errorf("no worksheet found in %s", filename)
		}

		rows := workbook.ReadAllCells(maxXLSRows)
		if len(rows) == 0 {
			return nil, fmt.Errorf("worksheet is empty in %s", filename)
		}

		return rows, nil

	case ".csv":
		reader := csv.NewReader(bytes.NewReader(data))
		reader.FieldsPerRecord = -1

		rows, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to read csv %s: %w", filename, err)
		}

		return rows, nil

	default:
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
		}
		defer file.Close()

		sheetName := weeklySheet
		if idx, _ := file.GetSheetIndex(sheetName); idx < 0 {
			sheetName = file.GetSheetName(0)
		}

		if sheetName == "" {
			return nil, fmt.Errorf("no worksheet found in %s", filename)
		}

		rows, err := file.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
		}

		if len(rows) == 0 {
			return nil, fmt.Errorf("worksheet %s is empty", sheetName)
		}

		return rows, nil
	}
}
