package pipeline

import "catalogdiff/internal/schema"

// Inspection describes how a raw file would be read, without cleaning it.
type Inspection struct {
	HeaderRow        int
	Columns          []string
	IdentifierColumn string
	QuantityColumn   string
	Template         schema.Template
	Rows             int
}

func Inspect(data []byte, format Format) (Inspection, error) {
	headerRow, err := DetectHeader(data, format)
	if err != nil {
		return Inspection{}, err
	}
	parsed, idName, err := ParseTable(data, format, headerRow)
	if err != nil {
		return Inspection{}, err
	}

	out := Inspection{
		HeaderRow:        headerRow,
		Columns:          parsed.Names(),
		IdentifierColumn: idName,
		Template:         schema.Select(parsed.Names()),
		Rows:             parsed.Rows(),
	}
	if i := parsed.IndexFunc(schema.IsQuantityColumn); i >= 0 {
		out.QuantityColumn = parsed.ColumnAt(i).Name
	}
	return out, nil
}
