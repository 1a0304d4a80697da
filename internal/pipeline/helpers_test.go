package pipeline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"catalogdiff/internal/table"
)

func mkXLSX(rows [][]any) []byte {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	buf := bytes.NewBuffer(nil)
	_, _ = f.WriteTo(buf)
	return buf.Bytes()
}

func mkCSV(lines ...string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}

// isbnCatalog builds a small ISBN-style csv keyed by ids, preceded by a
// couple of banner rows.
func isbnCatalog(ids ...string) []byte {
	lines := []string{
		"Supplier stock report,,",
		"Generated 2024-01-01,,",
		"ISBN-13,Title,Author,Stock,Publisher",
	}
	for _, id := range ids {
		lines = append(lines, id+",Title "+id+",Author "+id+",5,Pub")
	}
	return mkCSV(lines...)
}

func keys(t *testing.T, tbl *table.Table) []string {
	t.Helper()
	if tbl.Width() == 0 {
		return nil
	}
	out := make([]string, 0, tbl.Rows())
	for r := 0; r < tbl.Rows(); r++ {
		out = append(out, tbl.ColumnAt(0).String(r))
	}
	return out
}

// trimRows drops trailing blank cells so spreadsheet round trips compare
// independently of how empty cells were stored.
func trimRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		n := len(row)
		for n > 0 && row[n-1] == "" {
			n--
		}
		out[i] = row[:n]
	}
	return out
}
