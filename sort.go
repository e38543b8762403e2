package prettytable

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Sort orders the rows by column. The sort is stable. Two numbers compare
// numerically, anything else compares by display text, and empty values
// sort first (last when descending).
func (t *Table) Sort(column string, descending bool) error {
	ci := slices.Index(t.columns, column)
	if ci < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	t.SortFunc(func(a, b []Value) int {
		c := compareValues(a[ci], b[ci])
		if descending {
			return -c
		}
		return c
	})
	return nil
}

// SortFunc orders the rows with a stable sort using fn, which receives
// whole rows in column order.
func (t *Table) SortFunc(fn func(a, b []Value) int) {
	slices.SortStableFunc(t.rows, fn)
}

func compareValues(a, b Value) int {
	switch {
	case a.IsEmpty() || b.IsEmpty():
		return cmp.Compare(boolRank(!a.IsEmpty()), boolRank(!b.IsEmpty()))
	case a.Kind() == KindInt && b.Kind() == KindInt:
		return cmp.Compare(a.i, b.i)
	case a.IsNumber() && b.IsNumber():
		return cmp.Compare(a.float(), b.float())
	default:
		return strings.Compare(a.String(), b.String())
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
