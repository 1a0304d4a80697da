package pipeline

import (
	"errors"
	"testing"
)

func TestLoadExclusions(t *testing.T) {
	blob := mkXLSX([][]any{
		{"Do not list", nil, "123"},
		{9780134685991, "12a", ""},
		{" 456 ", 789},
	})
	set, err := LoadExclusions(blob)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"0000000000123", "9780134685991", "0000000000789"} {
		if !set.Contains(id) {
			t.Fatalf("missing %s", id)
		}
	}
	if set.Len() != 3 {
		t.Fatalf("len = %d", set.Len())
	}
}

func TestLoadExclusionsUnreadable(t *testing.T) {
	set, err := LoadExclusions([]byte("not a workbook"))
	if !errors.Is(err, ErrExclusionParse) {
		t.Fatalf("err = %v", err)
	}
	if !errors.Is(err, ErrParse) {
		t.Fatalf("cause should be kept: %v", err)
	}
	if set == nil || set.Len() != 0 {
		t.Fatalf("set = %v", set)
	}
}

func TestNilExclusionSet(t *testing.T) {
	var set ExclusionSet
	if set.Contains("0000000000001") || set.Len() != 0 {
		t.Fatal("nil set should be empty")
	}
}
