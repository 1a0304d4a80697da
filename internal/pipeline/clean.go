package pipeline

import (
	"catalogdiff/internal/schema"
	"catalogdiff/internal/table"
	"catalogdiff/internal/util"
)

// Cleaned is a file reshaped into one of the catalog templates.
type Cleaned struct {
	Table    *table.Table
	Template schema.Template
	// SourceRows counts data rows before exclusion filtering.
	SourceRows int
}

// CleanFile turns one raw catalog into a table with exactly the selected
// template's columns, in template order. exclusions may be nil.
func CleanFile(data []byte, format Format, currency string, exclusions ExclusionSet) (Cleaned, error) {
	headerRow, err := DetectHeader(data, format)
	if err != nil {
		return Cleaned{}, err
	}
	parsed, idName, err := ParseTable(data, format, headerRow)
	if err != nil {
		return Cleaned{}, err
	}

	tmpl := schema.Select(parsed.Names())
	keyed, keyIdx, err := bindIdentifier(parsed, tmpl, parsed.Index(idName))
	if err != nil {
		return Cleaned{}, err
	}

	filtered := keyed
	if exclusions.Len() > 0 {
		ids := keyed.ColumnAt(keyIdx)
		filtered = keyed.Filter(func(row int) bool {
			return !exclusions.Contains(ids.Text[row])
		})
	}

	projected, err := project(filtered, tmpl, keyIdx)
	if err != nil {
		return Cleaned{}, err
	}

	withCurrency, err := projected.WithColumn(table.Fill(schema.CurrencyColumn, currency, projected.Rows()))
	if err != nil {
		return Cleaned{}, err
	}

	return Cleaned{
		Table:      withCurrency.Reindex(tmpl.Names()),
		Template:   tmpl,
		SourceRows: parsed.Rows(),
	}, nil
}

// bindIdentifier picks the column that fills the template's identifier slot:
// the column literally named after the slot when present, otherwise the
// resolved identifier column at idIdx. The bound column is normalized.
func bindIdentifier(t *table.Table, tmpl schema.Template, idIdx int) (*table.Table, int, error) {
	keyIdx := t.Index(util.NormalizeColumnName(tmpl.Identifier()))
	if keyIdx < 0 || keyIdx == idIdx {
		return t, idIdx, nil
	}
	src := t.ColumnAt(keyIdx)
	values := make([]string, t.Rows())
	for r := range values {
		raw := src.String(r)
		values[r] = util.NormalizeIdentifier(&raw)
	}
	keyed, err := t.WithColumn(table.NewTextColumn(src.Name, values))
	if err != nil {
		return nil, -1, err
	}
	return keyed, keyIdx, nil
}

// project keeps the template columns present in t, renamed to their template
// headers. The identifier slot takes the column at keyIdx; every other slot
// takes the first source column whose normalized name equals the slot's
// normalized name.
func project(t *table.Table, tmpl schema.Template, keyIdx int) (*table.Table, error) {
	columns := []table.Column{}
	for _, spec := range tmpl.Columns() {
		var src int
		if spec.Role == schema.RoleIdentifier {
			src = keyIdx
		} else {
			src = t.Index(spec.Key())
		}
		if src < 0 {
			continue
		}
		columns = append(columns, t.ColumnAt(src).Renamed(spec.Name))
	}
	return table.New(t.Rows(), columns...)
}
