// Package schema defines the two fixed catalog layouts cleaned files are
// reshaped into, and the keyword rules used to spot identifier and quantity
// columns in arbitrary source headers.
package schema

import (
	"fmt"

	"catalogdiff/internal"
	"catalogdiff/internal/util"
)

// Role marks the columns the cleaner treats specially.
type Role int

const (
	RoleAttribute Role = iota
	RoleIdentifier
	RoleQuantity
	RoleCurrency
)

// ColumnSpec is one output column of a template.
type ColumnSpec struct {
	Name string // output header, written verbatim
	Role Role
}

// Key is the normalized form used to match source headers against Name.
func (c ColumnSpec) Key() string {
	return util.NormalizeColumnName(c.Name)
}

// Template is the closed set of catalog layouts.
type Template int

const (
	ISBN Template = iota
	EAN
)

// CurrencyColumn is shared by both templates and is overwritten per run.
const CurrencyColumn = "CUR"

var (
	// IdentifierKeywords flag a header (spaces removed) as the product code column.
	IdentifierKeywords = []string{"ISBN13", "EAN"}
	// QuantityKeywords flag a header (spaces removed) as the stock column.
	QuantityKeywords = []string{"STOCK", "QTYAV"}
)

var isbnColumns = []ColumnSpec{
	{Name: "ISBN13", Role: RoleIdentifier},
	{Name: "TITLE"},
	{Name: "AUTHOR"},
	{Name: "DISCOUNT"},
	{Name: "STOCK", Role: RoleQuantity},
	{Name: CurrencyColumn, Role: RoleCurrency},
	{Name: "DIM1"},
	{Name: "DIM2"},
	{Name: "DIM3"},
	{Name: "WEIGHT"},
	{Name: "PUBLISHER"},
	{Name: "IMPRINT"},
}

var eanColumns = []ColumnSpec{
	{Name: "EAN #", Role: RoleIdentifier},
	{Name: "TITLE"},
	{Name: "QTYAV", Role: RoleQuantity},
	{Name: CurrencyColumn, Role: RoleCurrency},
	{Name: "PRICE"},
	{Name: "AUTHOR"},
	{Name: "PUBLISHER"},
	{Name: "WGT OZS"},
	{Name: "LENGTH"},
	{Name: "WIDTH"},
	{Name: "HEIGHT"},
	{Name: "CD"},
}

func (t Template) Name() internal.TemplateName {
	switch t {
	case ISBN:
		return internal.TemplateISBN
	case EAN:
		return internal.TemplateEAN
	default:
		return internal.TemplateName(fmt.Sprintf("template(%d)", int(t)))
	}
}

func (t Template) String() string { return string(t.Name()) }

// Columns returns the ordered column specs of the template.
func (t Template) Columns() []ColumnSpec {
	var src []ColumnSpec
	switch t {
	case ISBN:
		src = isbnColumns
	case EAN:
		src = eanColumns
	}
	out := make([]ColumnSpec, len(src))
	copy(out, src)
	return out
}

// Names returns the ordered output headers.
func (t Template) Names() []string {
	cols := t.Columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}

// Identifier is the header of the key column, always first.
func (t Template) Identifier() string {
	return t.Columns()[0].Name
}

// Select picks the ISBN layout when a column is literally named ISBN13
// after header normalization, and the EAN layout otherwise.
func Select(normalizedNames []string) Template {
	for _, n := range normalizedNames {
		if n == "ISBN13" {
			return ISBN
		}
	}
	return EAN
}

// IsIdentifierColumn reports whether a normalized header looks like an ISBN/EAN column.
func IsIdentifierColumn(normalizedName string) bool {
	return util.ContainsAny(util.RemoveSpaces(normalizedName), IdentifierKeywords...)
}

// IsQuantityColumn reports whether a normalized header looks like a stock column.
func IsQuantityColumn(normalizedName string) bool {
	return util.ContainsAny(util.RemoveSpaces(normalizedName), QuantityKeywords...)
}
