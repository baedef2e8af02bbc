package combinat

import (
	"github.com/npillmayer/setalg/sets"
)

// PowerSet returns the set of all subsets of s, including the empty set and s
// itself. For |s| = n the result has 2^n members.
func PowerSet[T any](s *sets.TreeSet[T]) *sets.TreeSet[*sets.TreeSet[T]] {
	return BoundedPowerSet(s, s.Size(), false)
}

// BoundedPowerSet returns the power set ps of s such that all members of ps are
// subsets of size n or below. If exact is true, subsets below size n are not
// included. If n is larger than |s|, then the largest subsets are of size |s|
// (and, with exact set, the result is empty).
//
// Subsets share the ordering of s; the result is ordered by sets.SetLess.
func BoundedPowerSet[T any](s *sets.TreeSet[T], n int, exact bool) *sets.TreeSet[*sets.TreeSet[T]] {
	less := s.KeyLess()
	res := sets.NewTreeSet(sets.SetLess(less))
	if n <= 0 {
		res.Add(sets.NewTreeSet(less))
		return res
	}
	ps := BoundedPowerSet(s, n-1, exact)
	elems := s.Values()
	ps.Each(func(ss *sets.TreeSet[T]) {
		for _, el := range elems {
			if ss.Contains(el) {
				continue
			}
			subset := ss.Copy()
			subset.Add(el)
			res.Add(subset)
		}
	})
	if !exact {
		sets.UnionModify[*sets.TreeSet[T]](res, ps)
	}
	tracer().Debugf("powerset of %d elements, n = %d, exact = %v: %d subsets",
		s.Size(), n, exact, res.Size())
	return res
}
