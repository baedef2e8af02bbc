package sorted

import (
	"github.com/npillmayer/setalg/sets"
	"golang.org/x/exp/constraints"
)

// IsDisjoint is like HasEmptySetIntersection, but more efficient for sets which do not
// overlap at all: it first compares the bounds of the two sets and only then
// falls back to a merge scan. Items are compared with < and == directly.
//
// WARNING: IsDisjoint does not check whether the items of s1 and s2 are sorted.
// It is only valid if both sets iterate in the natural order of T. Otherwise the
// result is undefined.
func IsDisjoint[T constraints.Ordered](s1, s2 sets.BoundedSet[T]) bool {
	if s1.Empty() || s2.Empty() {
		return true
	}
	min1, _ := s1.Min()
	min2, _ := s2.Min()
	max1, _ := s1.Max()
	max2, _ := s2.Max()
	if max2 < min1 || max1 < min2 {
		return true
	}
	r1, r2 := s1.Values(), s2.Values()
	i, j := 0, 0
	for i < len(r1) && j < len(r2) {
		if r1[i] == r2[j] {
			return false
		}
		if r1[i] < r2[j] {
			i++
		} else {
			j++
		}
	}
	return true
}
