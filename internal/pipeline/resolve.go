package pipeline

import (
	"fmt"

	"catalogdiff/internal/schema"
	"catalogdiff/internal/table"
	"catalogdiff/internal/util"
)

// ParseTable re-reads the whole source using headerRow as the header, then
// normalizes column names, canonicalizes the identifier column and coerces
// the stock column (if any) to numbers. It returns the table and the
// normalized name of the identifier column.
func ParseTable(data []byte, format Format, headerRow int) (*table.Table, string, error) {
	records, err := ReadRecords(data, format, 0)
	if err != nil {
		return nil, "", err
	}
	if headerRow < 0 || headerRow >= len(records) {
		return nil, "", fmt.Errorf("%w: header row %d outside %d rows", ErrHeaderNotFound, headerRow, len(records))
	}

	names := NormalizeHeaderRow(records[headerRow])
	body := make([][]string, 0, len(records)-headerRow-1)
	for _, row := range records[headerRow+1:] {
		// Rows of empty cells (",,," or spreadsheet padding rows) carry no
		// identifier and would otherwise surface as blank keys in the diff.
		if isEmptyRow(row) {
			continue
		}
		body = append(body, row)
	}

	idIdx, qtyIdx := -1, -1
	for i, name := range names {
		if idIdx < 0 && schema.IsIdentifierColumn(name) {
			idIdx = i
		}
		if qtyIdx < 0 && schema.IsQuantityColumn(name) {
			qtyIdx = i
		}
	}
	if idIdx < 0 {
		return nil, "", fmt.Errorf("%w (columns: %v)", ErrIdentifierColumnNotFound, names)
	}

	columns := make([]table.Column, len(names))
	for i, name := range names {
		values := make([]string, len(body))
		for r, row := range body {
			if i < len(row) {
				values[r] = row[i]
			}
		}
		switch i {
		case idIdx:
			for r := range values {
				values[r] = util.NormalizeIdentifier(&values[r])
			}
			columns[i] = table.NewTextColumn(name, values)
		case qtyIdx:
			numbers := make([]*float64, len(values))
			for r, v := range values {
				numbers[r] = util.ParseQuantity(v)
			}
			columns[i] = table.NewNumberColumn(name, numbers)
		default:
			columns[i] = table.NewTextColumn(name, values)
		}
	}

	t, err := table.New(len(body), columns...)
	if err != nil {
		return nil, "", err
	}
	return t, names[idIdx], nil
}
