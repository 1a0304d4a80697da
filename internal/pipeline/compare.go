package pipeline

import "catalogdiff/internal/table"

type ComparisonResult struct {
	// NewItems are rows of the second table whose key is absent from the first.
	NewItems *table.Table
	// InactiveItems are rows of the first table whose key is absent from the second.
	InactiveItems *table.Table
}

// Compare diffs two cleaned tables on their first column. Membership is by
// set, so duplicate keys never matter, and both outputs keep their source
// schema and row order.
func Compare(first, second *table.Table) ComparisonResult {
	return ComparisonResult{
		NewItems:      missingFrom(second, first),
		InactiveItems: missingFrom(first, second),
	}
}

// missingFrom returns the rows of t whose key does not occur in other.
func missingFrom(t, other *table.Table) *table.Table {
	if t.Width() == 0 {
		return t
	}
	keys := map[string]struct{}{}
	if other.Width() > 0 {
		keys = other.KeySet(0)
	}
	key := t.ColumnAt(0)
	return t.Filter(func(row int) bool {
		_, seen := keys[key.String(row)]
		return !seen
	})
}
