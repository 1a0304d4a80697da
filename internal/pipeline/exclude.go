package pipeline

import (
	"fmt"

	"catalogdiff/internal/util"
)

// ExclusionSet holds normalized identifiers to drop from cleaned output.
// A nil set excludes nothing.
type ExclusionSet map[string]struct{}

func (s ExclusionSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s ExclusionSet) Len() int { return len(s) }

// LoadExclusions collects every purely numeric cell of a spreadsheet into an
// ExclusionSet. On failure it returns an empty set together with an error
// wrapping ErrExclusionParse; callers log it and carry on.
func LoadExclusions(data []byte) (ExclusionSet, error) {
	records, err := ReadRecords(data, FormatXLSX, 0)
	if err != nil {
		return ExclusionSet{}, fmt.Errorf("%w: %w", ErrExclusionParse, err)
	}

	set := ExclusionSet{}
	for _, row := range records {
		for _, cell := range row {
			if !util.IsDigits(cell) {
				continue
			}
			set[util.NormalizeIdentifier(&cell)] = struct{}{}
		}
	}
	return set, nil
}
