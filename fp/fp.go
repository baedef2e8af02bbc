/*
Package fp contains small helpers on slices, mostly forwarding to library functions.

None of the helpers check their arguments beyond what the Go runtime does.
Slices handed to the parallel iterators have to be at least as long as the first
one, indices handed to SeqFiltered have to be in range.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

import (
	"github.com/npillmayer/setalg/sets"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// AnyOf is true if p holds for at least one element of c.
func AnyOf[T any](c []T, p func(T) bool) bool {
	return slices.IndexFunc(c, p) >= 0
}

// AllOf is true if p holds for every element of c.
func AllOf[T any](c []T, p func(T) bool) bool {
	return !AnyOf(c, func(x T) bool { return !p(x) })
}

// NoneOf is true if p holds for no element of c.
func NoneOf[T any](c []T, p func(T) bool) bool {
	return !AnyOf(c, p)
}

// IsIn returns true if el is an element of c, searching linearly.
func IsIn[T comparable](el T, c []T) bool {
	return slices.Contains(c, el)
}

// IsInSet returns true if el is a member of s, using the set's key lookup.
func IsInSet[T any](el T, s sets.Set[T]) bool {
	return s.Contains(el)
}

// ForEach2 calls f for pairs of elements with equal index, for every index of a.
func ForEach2[A, B any](a []A, b []B, f func(A, B)) {
	for i := range a {
		f(a[i], b[i])
	}
}

// ForEach3 calls f for triples of elements with equal index, for every index of a.
func ForEach3[A, B, C any](a []A, b []B, c []C, f func(A, B, C)) {
	for i := range a {
		f(a[i], b[i], c[i])
	}
}

// ForEach4 calls f for quadruples of elements with equal index, for every index of a.
func ForEach4[A, B, C, D any](a []A, b []B, c []C, d []D, f func(A, B, C, D)) {
	for i := range a {
		f(a[i], b[i], c[i], d[i])
	}
}

// Number is a type constraint for values which can be accumulated.
type Number interface {
	constraints.Integer | constraints.Float
}

// Accumulate2D sums up all elements of a range of ranges, starting with init.
func Accumulate2D[T Number](rows [][]T, init T) T {
	for _, row := range rows {
		for _, v := range row {
			init += v
		}
	}
	return init
}

// Append appends b at the end of a, that is a = a@b.
func Append[T any](a *[]T, b []T) {
	*a = append(*a, b...)
}

// ClearBySwap clears c and releases its backing array, contrary to c = c[:0].
func ClearBySwap[T any](c *[]T) {
	var empty []T
	*c = empty
}

// SeqFiltered returns the elements of seq at the given indices, in the order of
// the indices.
func SeqFiltered[T any](seq []T, indices []int) []T {
	res := make([]T, 0, len(indices))
	for _, inx := range indices {
		res = append(res, seq[inx])
	}
	return res
}

// NWayPartition distributes the elements of c into n buckets. p maps every element
// to a bucket number in the range [0, n). Within each bucket, elements keep
// their relative order.
func NWayPartition[T any](c []T, p func(T) int, n int) [][]T {
	buckets := make([][]T, n)
	for _, x := range c {
		b := p(x)
		buckets[b] = append(buckets[b], x)
	}
	return buckets
}
