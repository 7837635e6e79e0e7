package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet read when the caller does not name one.
const DefaultSheet = "Sheet1"

// ReadExcel parses shipment rows from the named sheet of an .xlsx file.
// An empty sheet name selects DefaultSheet. Column and row semantics match
// ReadCSV: header-mapped columns, per-row error accumulation.
func ReadExcel(path, sheet string) (Result, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Result{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("sheet %q is empty", sheet)
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return Result{}, err
	}

	var result Result
	for i, fields := range rows[1:] {
		record, recErr := buildRecord(fields, columns)
		if recErr != nil {
			result.Errors = append(result.Errors, RowError{Row: i + 2, Err: recErr})
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}
