package pipeline

import "fmt"

// MaxHeaderSearchRows is how many leading rows are scanned for the header.
var MaxHeaderSearchRows = 20

// DetectHeader returns the 0-based index of the first row, within the first
// MaxHeaderSearchRows rows, holding an ISBN13 or EAN cell.
func DetectHeader(data []byte, format Format) (int, error) {
	records, err := ReadRecords(data, format, MaxHeaderSearchRows)
	if err != nil {
		return -1, err
	}
	if idx := findHeaderRow(records); idx >= 0 {
		return idx, nil
	}
	return -1, fmt.Errorf("%w (scanned %d rows)", ErrHeaderNotFound, len(records))
}

func findHeaderRow(records [][]string) int {
	maxRows := MaxHeaderSearchRows
	if len(records) < maxRows {
		maxRows = len(records)
	}
	for i := 0; i < maxRows; i++ {
		for _, cell := range records[i] {
			if headerCellMatches(cell) {
				return i
			}
		}
	}
	return -1
}
