package sorted

import (
	"github.com/npillmayer/setalg"
	"github.com/npillmayer/setalg/sets"
)

// EraseSetIntersection erases the intersection of sorted ranges r1 and r2 from the
// container backing r1, leaving the difference r1 − r2. For every element of r1
// with an equivalent element in r2, erase is called with the element's position in r1.
// Each element of r2 cancels at most one element of r1.
func EraseSetIntersection[T any](erase setalg.Eraser[T], r1, r2 []T, less setalg.Less[T]) {
	assertSorted("EraseSetIntersection", r1, r2, less)
	i, j, n := 0, 0, 0
	for i < len(r1) && j < len(r2) {
		if less(r1[i], r2[j]) {
			i++
		} else if less(r2[j], r1[i]) {
			j++
		} else {
			erase.Erase(i, r1[i])
			i++
			j++
			n++
		}
	}
	tracer().Debugf("erased %d elements of intersection", n)
}

// EraseSetDifference erases the difference r1 − r2 of sorted ranges from the container
// backing r1, leaving the intersection. erase is called for every element of r1
// without an equivalent element in r2, including all elements of r1 past the end
// of r2.
func EraseSetDifference[T any](erase setalg.Eraser[T], r1, r2 []T, less setalg.Less[T]) {
	assertSorted("EraseSetDifference", r1, r2, less)
	i, j, n := 0, 0, 0
	for i < len(r1) && j < len(r2) {
		if less(r1[i], r2[j]) {
			erase.Erase(i, r1[i])
			i++
			n++
		} else if less(r2[j], r1[i]) {
			j++
		} else {
			i++
			j++
		}
	}
	for ; i < len(r1); i++ { // r2 exhausted
		erase.Erase(i, r1[i])
		n++
	}
	tracer().Debugf("erased %d elements of difference", n)
}

// InsertSetComplement inserts r2 − r1 with insert. If insert inserts into the container
// backing r1, it will hold the union r1 ∪ r2 afterwards. insert is called with the
// position of r1's cursor at the time the element of r2 is found missing, i.e. in
// front of the first element of r1 greater than it, or len(r1).
func InsertSetComplement[T any](insert setalg.Inserter[T], r1, r2 []T, less setalg.Less[T]) {
	assertSorted("InsertSetComplement", r1, r2, less)
	i, j, n := 0, 0, 0
	for i < len(r1) && j < len(r2) {
		if less(r1[i], r2[j]) {
			i++
		} else if less(r2[j], r1[i]) {
			insert.Insert(i, r2[j])
			j++
			n++
		} else {
			i++
			j++
		}
	}
	for ; j < len(r2); j++ { // r1 exhausted
		insert.Insert(i, r2[j])
		n++
	}
	tracer().Debugf("inserted %d elements of complement", n)
}

// HasEmptyIntersection determines if the intersection of sorted ranges r1 and r2 is
// empty. It returns as soon as a common element is found.
func HasEmptyIntersection[T any](r1, r2 []T, less setalg.Less[T]) bool {
	assertSorted("HasEmptyIntersection", r1, r2, less)
	i, j := 0, 0
	for i < len(r1) && j < len(r2) {
		if less(r1[i], r2[j]) {
			i++
		} else if less(r2[j], r1[i]) {
			j++
		} else {
			return false
		}
	}
	return true
}

// HasEmptySetIntersection determines if the intersection of two ordered sets is empty.
// The key ordering of s1 is used for both sets.
func HasEmptySetIntersection[T any](s1, s2 sets.OrderedSet[T]) bool {
	return HasEmptyIntersection(s1.Values(), s2.Values(), s1.KeyLess())
}
