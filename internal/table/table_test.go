package table

import (
	"reflect"
	"testing"

	"catalogdiff/internal/util"
)

func sample(t *testing.T) *Table {
	t.Helper()
	tbl, err := New(3,
		NewTextColumn("ISBN13", []string{"a", "b", "c"}),
		NewTextColumn("TITLE", []string{"A", "B", "C"}),
		NewNumberColumn("STOCK", []*float64{util.FloatPtr(1), nil, util.FloatPtr(2.5)}),
	)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New(2, NewTextColumn("A", []string{"x"}))
	if err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestLookup(t *testing.T) {
	tbl := sample(t)
	if tbl.Rows() != 3 || tbl.Width() != 3 {
		t.Fatalf("rows=%d width=%d", tbl.Rows(), tbl.Width())
	}
	if tbl.Index("TITLE") != 1 || tbl.Index("MISSING") != -1 {
		t.Fatal("unexpected index")
	}
	if !tbl.Has("STOCK") {
		t.Fatal("STOCK should exist")
	}
	if got := tbl.Row(1); !reflect.DeepEqual(got, []string{"b", "B", ""}) {
		t.Fatalf("row 1 = %v", got)
	}
	if got := tbl.Row(2); got[2] != "2.5" {
		t.Fatalf("stock cell = %q", got[2])
	}
}

func TestIndexFirstMatchWins(t *testing.T) {
	tbl := MustNew(1,
		NewTextColumn("TITLE", []string{"first"}),
		NewTextColumn("TITLE", []string{"second"}),
	)
	c, ok := tbl.Column("TITLE")
	if !ok || c.Text[0] != "first" {
		t.Fatalf("got %+v", c)
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	tbl := sample(t)
	out := tbl.Filter(func(row int) bool { return row != 1 })
	if out.Rows() != 2 {
		t.Fatalf("rows=%d", out.Rows())
	}
	if got := out.ColumnAt(0).Text; !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("keys = %v", got)
	}
	if tbl.Rows() != 3 {
		t.Fatal("source table mutated")
	}
}

func TestWithColumnReplacesOrAppends(t *testing.T) {
	tbl := sample(t)
	replaced, err := tbl.WithColumn(Fill("TITLE", "x", 3))
	if err != nil {
		t.Fatal(err)
	}
	if replaced.Width() != 3 || replaced.ColumnAt(1).Text[2] != "x" {
		t.Fatalf("replace failed: %v", replaced.Names())
	}
	if tbl.ColumnAt(1).Text[2] != "C" {
		t.Fatal("source table mutated")
	}

	appended, err := tbl.WithColumn(Fill("CUR", "USD", 3))
	if err != nil {
		t.Fatal(err)
	}
	if got := appended.Names(); !reflect.DeepEqual(got, []string{"ISBN13", "TITLE", "STOCK", "CUR"}) {
		t.Fatalf("names = %v", got)
	}

	if _, err := tbl.WithColumn(Fill("CUR", "USD", 1)); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestReindexFillsMissing(t *testing.T) {
	tbl := sample(t)
	out := tbl.Reindex([]string{"STOCK", "PRICE", "ISBN13"})
	if got := out.Names(); !reflect.DeepEqual(got, []string{"STOCK", "PRICE", "ISBN13"}) {
		t.Fatalf("names = %v", got)
	}
	if got := out.ColumnAt(1).Text; !reflect.DeepEqual(got, []string{"", "", ""}) {
		t.Fatalf("filled = %v", got)
	}
	if out.ColumnAt(0).Kind != Number {
		t.Fatal("STOCK should keep its kind")
	}
}

func TestKeySet(t *testing.T) {
	tbl := MustNew(3, NewTextColumn("K", []string{"1", "1", "2"}), NewTextColumn("V", []string{"a", "b", "c"}))
	set := tbl.KeySet(0)
	if len(set) != 2 {
		t.Fatalf("set = %v", set)
	}
}

func TestValue(t *testing.T) {
	tbl := sample(t)
	stock := tbl.ColumnAt(2)
	if stock.Value(1) != nil {
		t.Fatal("missing number should be nil")
	}
	if stock.Value(0) != 1.0 {
		t.Fatalf("got %v", stock.Value(0))
	}
	empty := NewTextColumn("X", []string{""})
	if empty.Value(0) != nil {
		t.Fatal("empty text should be nil")
	}
}
