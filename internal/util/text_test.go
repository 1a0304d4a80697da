package util

import "testing"

func TestNormalizeIdentifier(t *testing.T) {
	cases := []struct {
		name  string
		input *string
		want  string
	}{
		{name: "nil", input: nil, want: ""},
		{name: "empty", input: StringPtr(""), want: ""},
		{name: "short numeric padded", input: StringPtr("123"), want: "0000000000123"},
		{name: "full isbn unchanged", input: StringPtr("9780134685991"), want: "9780134685991"},
		{name: "longer numeric unchanged", input: StringPtr("97801346859912"), want: "97801346859912"},
		{name: "whitespace trimmed", input: StringPtr("  456 "), want: "0000000000456"},
		{name: "invisible chars removed", input: StringPtr("\ufeff978\u200b0134\u00a0685991"), want: "9780134685991"},
		{name: "alphanumeric untouched", input: StringPtr("ABC123"), want: "ABC123"},
		{name: "hyphenated untouched", input: StringPtr("978-0-13"), want: "978-0-13"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeIdentifier(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeIdentifierIdempotent(t *testing.T) {
	inputs := []string{"", "1", "123", " 00123 ", "9780134685991", "X-1", "\u00a0\u00a0", "12345678901234", "\u0661\u0662\u0663", "\u200b 123", "\ufeff 456 "}
	for _, in := range inputs {
		once := NormalizeIdentifier(StringPtr(in))
		twice := NormalizeIdentifier(StringPtr(once))
		if once != twice {
			t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeIdentifierInvisibleBeforeSpace(t *testing.T) {
	cases := map[string]string{
		"\u200b 123":   "0000000000123",
		"\ufeff 456 ":  "0000000000456",
		" 789\u00a0 ":  "0000000000789",
	}
	for in, want := range cases {
		if got := NormalizeIdentifier(StringPtr(in)); got != want {
			t.Fatalf("NormalizeIdentifier(%q) = %q want %q", in, got, want)
		}
	}
}

func TestNormalizeColumnName(t *testing.T) {
	cases := map[string]string{
		"isbn-13":   "ISBN13",
		"ISBN#13":   "ISBN13",
		" Isbn13 ":  "ISBN13",
		"EAN #":     "EAN",
		"wgt. ozs":  "WGT OZS",
		"Qty Av.":   "QTY AV",
		"":          "",
		"in_stock?": "IN_STOCK",
	}
	for in, want := range cases {
		if got := NormalizeColumnName(in); got != want {
			t.Fatalf("NormalizeColumnName(%q) = %q want %q", in, got, want)
		}
	}
}

func TestIsDigits(t *testing.T) {
	if IsDigits("") {
		t.Fatal("empty string must not be numeric")
	}
	if !IsDigits("0123") {
		t.Fatal("0123 should be numeric")
	}
	if IsDigits("12.5") || IsDigits("-1") || IsDigits("1 2") {
		t.Fatal("punctuated values must not be numeric")
	}
}

func TestRemoveSpaces(t *testing.T) {
	if got := RemoveSpaces(" IS BN\t13\n"); got != "ISBN13" {
		t.Fatalf("got %q", got)
	}
}
