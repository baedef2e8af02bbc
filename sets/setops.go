package sets

import (
	"github.com/npillmayer/setalg"
)

// Singleton returns a tree set with a single item v, ordered by less.
func Singleton[T any](less setalg.Less[T], v T) *TreeSet[T] {
	return NewTreeSet(less, v)
}

// UnionModify adds all items of s2 to s1, leaving s1 = s1 ∪ s2.
func UnionModify[T any](s1 Set[T], s2 Set[T]) {
	for _, item := range s2.Values() {
		s1.Add(item)
	}
}

// Union returns s1 ∪ s2 as a fresh set, ordered by s1's ordering.
func Union[T any](s1, s2 *TreeSet[T]) *TreeSet[T] {
	res := s1.Copy()
	UnionModify[T](res, s2)
	return res
}

// Intersection returns s1 ∩ s2 as a fresh set, ordered by s1's ordering.
// Both sets have to be ordered equivalently.
func Intersection[T any](s1, s2 *TreeSet[T]) *TreeSet[T] {
	less := s1.KeyLess()
	res := NewTreeSet(less)
	a, b := s1.Values(), s2.Values()
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(a[i], b[j]) {
			i++
		} else if less(b[j], a[i]) {
			j++
		} else {
			res.tree.Add(a[i])
			i++
			j++
		}
	}
	tracer().Debugf("|%d ∩ %d| = %d", len(a), len(b), res.Size())
	return res
}

// Difference returns s1 − s2 as a fresh set, ordered by s1's ordering.
// Both sets have to be ordered equivalently.
func Difference[T any](s1, s2 *TreeSet[T]) *TreeSet[T] {
	less := s1.KeyLess()
	res := NewTreeSet(less)
	a, b := s1.Values(), s2.Values()
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(a[i], b[j]) {
			res.tree.Add(a[i])
			i++
		} else if less(b[j], a[i]) {
			j++
		} else {
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		res.tree.Add(a[i])
	}
	tracer().Debugf("|%d − %d| = %d", len(a), len(b), res.Size())
	return res
}

// SymmetricDifference returns (s1 − s2) ∪ (s2 − s1) as a fresh set, ordered by s1's
// ordering. Both sets have to be ordered equivalently.
func SymmetricDifference[T any](s1, s2 *TreeSet[T]) *TreeSet[T] {
	less := s1.KeyLess()
	res := NewTreeSet(less)
	a, b := s1.Values(), s2.Values()
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(a[i], b[j]) {
			res.tree.Add(a[i])
			i++
		} else if less(b[j], a[i]) {
			res.tree.Add(b[j])
			j++
		} else {
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		res.tree.Add(a[i])
	}
	for ; j < len(b); j++ {
		res.tree.Add(b[j])
	}
	tracer().Debugf("|%d ∆ %d| = %d", len(a), len(b), res.Size())
	return res
}
