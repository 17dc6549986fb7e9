package availability

import (
	"cmp"
	"slices"
)

// Normalize orders slots by start time, shorter first on ties, and collapses
// exact duplicates. Adjacent or overlapping distinct slots are left alone.
func Normalize(slots []Slot) []Slot {
	out := slices.Clone(slots)

	slices.SortStableFunc(out, func(a, b Slot) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Duration(), b.Duration())
	})

	return slices.CompactFunc(out, func(a, b Slot) bool {
		return a.Start.Equal(b.Start) && a.End.Equal(b.End)
	})
}
