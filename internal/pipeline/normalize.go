package pipeline

import (
	"strings"

	"catalogdiff/internal/schema"
	"catalogdiff/internal/util"
)

// headerCellMatches applies the header-scan rule to one raw cell: uppercase,
// drop punctuation and all whitespace, then look for an identifier keyword.
func headerCellMatches(cell string) bool {
	key := util.RemoveSpaces(util.StripPunctuation(strings.ToUpper(cell)))
	return util.ContainsAny(key, schema.IdentifierKeywords...)
}

// NormalizeHeaderRow maps raw header cells to normalized column names.
func NormalizeHeaderRow(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, util.NormalizeColumnName(c))
	}
	return out
}
