package schema

import (
	"reflect"
	"testing"
)

func TestTemplateNames(t *testing.T) {
	wantISBN := []string{"ISBN13", "TITLE", "AUTHOR", "DISCOUNT", "STOCK", "CUR", "DIM1", "DIM2", "DIM3", "WEIGHT", "PUBLISHER", "IMPRINT"}
	wantEAN := []string{"EAN #", "TITLE", "QTYAV", "CUR", "PRICE", "AUTHOR", "PUBLISHER", "WGT OZS", "LENGTH", "WIDTH", "HEIGHT", "CD"}

	if got := ISBN.Names(); !reflect.DeepEqual(got, wantISBN) {
		t.Fatalf("ISBN names = %v", got)
	}
	if got := EAN.Names(); !reflect.DeepEqual(got, wantEAN) {
		t.Fatalf("EAN names = %v", got)
	}
	if ISBN.Identifier() != "ISBN13" || EAN.Identifier() != "EAN #" {
		t.Fatal("identifier must be the first column")
	}
}

func TestColumnsIsACopy(t *testing.T) {
	cols := ISBN.Columns()
	cols[0].Name = "changed"
	if ISBN.Identifier() != "ISBN13" {
		t.Fatal("template mutated through Columns()")
	}
}

func TestRoles(t *testing.T) {
	for _, tmpl := range []Template{ISBN, EAN} {
		counts := map[Role]int{}
		for _, c := range tmpl.Columns() {
			counts[c.Role]++
		}
		if counts[RoleIdentifier] != 1 || counts[RoleQuantity] != 1 || counts[RoleCurrency] != 1 {
			t.Fatalf("%s roles = %v", tmpl, counts)
		}
		if tmpl.Columns()[0].Role != RoleIdentifier {
			t.Fatalf("%s: identifier must come first", tmpl)
		}
	}
}

func TestSelect(t *testing.T) {
	cases := []struct {
		name  string
		names []string
		want  Template
	}{
		{name: "isbn literal", names: []string{"TITLE", "ISBN13"}, want: ISBN},
		{name: "ean", names: []string{"EAN", "TITLE"}, want: EAN},
		{name: "spaced isbn falls back to ean", names: []string{"ISBN 13"}, want: EAN},
		{name: "empty", names: nil, want: EAN},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Select(tc.names); got != tc.want {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestKeywordMatching(t *testing.T) {
	if !IsIdentifierColumn("ISBN 13") || !IsIdentifierColumn("EAN") || !IsIdentifierColumn("EAN13 CODE") {
		t.Fatal("identifier headers not recognised")
	}
	if IsIdentifierColumn("TITLE") {
		t.Fatal("TITLE is not an identifier")
	}
	if !IsQuantityColumn("QTY AV") || !IsQuantityColumn("IN STOCK") {
		t.Fatal("quantity headers not recognised")
	}
	if IsQuantityColumn("QTY") {
		t.Fatal("QTY alone is not a quantity header")
	}
}

func TestKey(t *testing.T) {
	if got := (ColumnSpec{Name: "EAN #"}).Key(); got != "EAN" {
		t.Fatalf("got %q", got)
	}
	if got := (ColumnSpec{Name: "WGT OZS"}).Key(); got != "WGT OZS" {
		t.Fatalf("got %q", got)
	}
}
