package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbooks
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Columns returns the union of field names across records in first-seen order.
func Columns(records []Record) []string {
	seen := map[string]bool{}
	var cols []string
	for _, r := range records {
		for _, f := range r {
			if !seen[f.Name] {
				seen[f.Name] = true
				cols = append(cols, f.Name)
			}
		}
	}
	return cols
}

// WriteWorkbook renders records into a single-sheet XLSX document. The first
// row holds the column names.
func WriteWorkbook(sheet string, records []Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	cols := Columns(records)
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range records {
		row := make([]interface{}, len(cols))
		for j, c := range cols {
			v, _ := r.Get(c)
			row[j] = cellValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue keeps numbers and booleans typed so spreadsheets can sort them.
func cellValue(v interface{}) interface{} {
	switch x := v.(type) {
	case int, int64, bool:
		return x
	case *int:
		if x != nil {
			return *x
		}
	case *int64:
		if x != nil {
			return *x
		}
	}
	return FormatValue(v)
}
