package combinat

import (
	"github.com/npillmayer/setalg"
	"github.com/npillmayer/setalg/sets"
	"golang.org/x/exp/slices"
)

// CartesianProduct returns the n-fold Cartesian product of c with itself. For
// instance, for
//
//     c = [1, 2, 3], nfold = 2
//
// the result is
//
//     { [1, 1], [1, 2], [1, 3],
//       [2, 1], [2, 2], [2, 3],
//       [3, 1], [3, 2], [3, 3] }
//
// The result is a set of tuples ordered lexicographically by less. Duplicate
// elements in c produce duplicate tuples, which collapse. The 0-fold product is
// the set containing just the empty tuple.
func CartesianProduct[T any](c []T, nfold int, less setalg.Less[T]) *sets.TreeSet[[]T] {
	res := sets.NewTreeSet(sets.LexicalLess(less))
	if nfold <= 0 {
		res.Add([]T{})
		return res
	}
	cp := CartesianProduct(c, nfold-1, less)
	cp.Each(func(t []T) {
		for _, el := range c {
			tel := slices.Clone(t)
			tel = append(tel, el)
			res.Add(tel)
		}
	})
	tracer().Debugf("%d-fold product of %d elements: %d tuples", nfold, len(c), res.Size())
	return res
}

// CartesianSquare returns c × c.
func CartesianSquare[T any](c []T, less setalg.Less[T]) *sets.TreeSet[[]T] {
	return CartesianProduct(c, 2, less)
}
