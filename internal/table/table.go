// Package table holds the in-memory, column-oriented catalog table the
// cleaning and comparison pipeline passes between its stages.
//
// Tables are never mutated after construction: Filter, WithColumn
// and Reindex all return new tables that may share column storage with the
// receiver.
package table

import (
	"fmt"

	"catalogdiff/internal/util"
)

type Kind int

const (
	Text Kind = iota
	Number
)

func (k Kind) String() string {
	if k == Number {
		return "number"
	}
	return "text"
}

// Column is a named vector of cells. Text columns use Text, Number columns
// use Numbers where nil marks a missing value.
type Column struct {
	Name    string
	Kind    Kind
	Text    []string
	Numbers []*float64
}

func NewTextColumn(name string, values []string) Column {
	return Column{Name: name, Kind: Text, Text: values}
}

func NewNumberColumn(name string, values []*float64) Column {
	return Column{Name: name, Kind: Number, Numbers: values}
}

// Fill builds a text column repeating value for every row.
func Fill(name, value string, rows int) Column {
	values := make([]string, rows)
	for i := range values {
		values[i] = value
	}
	return NewTextColumn(name, values)
}

func (c Column) Len() int {
	if c.Kind == Number {
		return len(c.Numbers)
	}
	return len(c.Text)
}

// String renders a cell as text; missing numbers render as "".
func (c Column) String(row int) string {
	if c.Kind == Number {
		return util.FormatQuantity(c.Numbers[row])
	}
	return c.Text[row]
}

// Value returns the cell as a spreadsheet value: string, float64 or nil when
// the cell is empty.
func (c Column) Value(row int) any {
	if c.Kind == Number {
		if v := c.Numbers[row]; v != nil {
			return *v
		}
		return nil
	}
	if c.Text[row] == "" {
		return nil
	}
	return c.Text[row]
}

func (c Column) Renamed(name string) Column {
	c.Name = name
	return c
}

func (c Column) pick(rows []int) Column {
	out := Column{Name: c.Name, Kind: c.Kind}
	if c.Kind == Number {
		out.Numbers = make([]*float64, len(rows))
		for i, r := range rows {
			out.Numbers[i] = c.Numbers[r]
		}
		return out
	}
	out.Text = make([]string, len(rows))
	for i, r := range rows {
		out.Text[i] = c.Text[r]
	}
	return out
}

type Table struct {
	columns []Column
	rows    int
}

// New assembles a table and checks that every column has rows cells.
func New(rows int, columns ...Column) (*Table, error) {
	for _, c := range columns {
		if c.Len() != rows {
			return nil, fmt.Errorf("column %q has %d rows, table has %d", c.Name, c.Len(), rows)
		}
	}
	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &Table{columns: cols, rows: rows}, nil
}

// MustNew is New for callers that already guarantee consistent lengths.
func MustNew(rows int, columns ...Column) *Table {
	t, err := New(rows, columns...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Rows() int  { return t.rows }
func (t *Table) Width() int { return len(t.columns) }

func (t *Table) Names() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Name
	}
	return out
}

func (t *Table) ColumnAt(i int) Column {
	return t.columns[i]
}

// Index returns the position of the first column called name, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// IndexFunc returns the position of the first column whose name satisfies match, or -1.
func (t *Table) IndexFunc(match func(name string) bool) int {
	for i, c := range t.columns {
		if match(c.Name) {
			return i
		}
	}
	return -1
}

func (t *Table) Column(name string) (Column, bool) {
	i := t.Index(name)
	if i < 0 {
		return Column{}, false
	}
	return t.columns[i], true
}

func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Row renders one row as text cells in column order.
func (t *Table) Row(row int) []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.String(row)
	}
	return out
}

// Filter keeps the rows for which keep returns true, in their original order.
func (t *Table) Filter(keep func(row int) bool) *Table {
	rows := make([]int, 0, t.rows)
	for r := 0; r < t.rows; r++ {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	cols := make([]Column, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c.pick(rows)
	}
	return &Table{columns: cols, rows: len(rows)}
}

// WithColumn replaces the first column sharing c's name, or appends c.
func (t *Table) WithColumn(c Column) (*Table, error) {
	if c.Len() != t.rows {
		return nil, fmt.Errorf("column %q has %d rows, table has %d", c.Name, c.Len(), t.rows)
	}
	cols := make([]Column, len(t.columns), len(t.columns)+1)
	copy(cols, t.columns)
	if i := t.Index(c.Name); i >= 0 {
		cols[i] = c
	} else {
		cols = append(cols, c)
	}
	return &Table{columns: cols, rows: t.rows}, nil
}

// Reindex returns a table with exactly names as columns, in that order.
// Names absent from t become text columns of empty strings.
func (t *Table) Reindex(names []string) *Table {
	cols := make([]Column, len(names))
	for i, name := range names {
		if c, ok := t.Column(name); ok {
			cols[i] = c
			continue
		}
		cols[i] = Fill(name, "", t.rows)
	}
	return &Table{columns: cols, rows: t.rows}
}

// KeySet collects the distinct text values of the column at position col.
func (t *Table) KeySet(col int) map[string]struct{} {
	c := t.columns[col]
	set := make(map[string]struct{}, t.rows)
	for r := 0; r < t.rows; r++ {
		set[c.String(r)] = struct{}{}
	}
	return set
}
