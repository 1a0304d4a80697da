package pipeline

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"catalogdiff/internal/table"
)

// ExportXLSX serializes a table as a single-sheet workbook: one header row
// with the column names, then one row per table row. Missing values are
// left blank and quantities are written as numbers.
func ExportXLSX(t *table.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]any, t.Width())
	for i, name := range t.Names() {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for r := 0; r < t.Rows(); r++ {
		row := make([]any, t.Width())
		for c := range row {
			row[c] = t.ColumnAt(c).Value(r)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
