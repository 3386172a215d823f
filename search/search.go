// Package search holds slice lookups built on binary search.
package search

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Disjoint reports whether a and b share no element. Neither slice needs to
// be sorted and duplicates are allowed. A sorted copy of the shorter slice is
// searched for each element of the longer one; the inputs are not modified.
func Disjoint[T constraints.Ordered](a, b []T) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return true
	}
	small := slices.Clone(a)
	slices.Sort(small)
	for _, v := range b {
		if _, found := slices.BinarySearch(small, v); found {
			return false
		}
	}
	return true
}

// BinarySearch returns the index of x in the sorted slice s.
func BinarySearch[T constraints.Ordered](s []T, x T) (int, bool) {
	i, ok := slices.BinarySearch(s, x)
	if !ok {
		return -1, false
	}
	return i, true
}
