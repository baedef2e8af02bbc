package sets

import (
	"github.com/npillmayer/setalg"
)

// Set is the capability every set realization has to offer: unique-key membership,
// insertion and erasure, and access to its items.
type Set[T any] interface {
	Add(item T) bool      // add item, return false if it was already present
	Remove(item T) bool   // remove item, return false if it has not been present
	Contains(item T) bool // is item a member of the set?
	Size() int            // number of items
	Empty() bool          // is Size() == 0 ?
	Values() []T          // all items, in iteration order
	Clear()               // remove all items
}

// OrderedSet is a set which iterates over its items in the order of its key
// ordering. Values() of an ordered set is a sorted range with respect
// to KeyLess().
type OrderedSet[T any] interface {
	Set[T]
	KeyLess() setalg.Less[T]
}

// BoundedSet is an ordered set with direct access to its first and last item.
type BoundedSet[T any] interface {
	OrderedSet[T]
	Min() (T, bool)
	Max() (T, bool)
}

// LexicalLess lifts an item ordering to a lexicographic ordering of sequences.
// A proper prefix of a sequence is less than the sequence.
func LexicalLess[T any](less setalg.Less[T]) setalg.Less[[]T] {
	return func(a, b []T) bool {
		for i := 0; i < len(a) && i < len(b); i++ {
			if less(a[i], b[i]) {
				return true
			} else if less(b[i], a[i]) {
				return false
			}
		}
		return len(a) < len(b)
	}
}

// SetLess lifts an item ordering to an ordering of tree sets, comparing their
// (ordered) items lexicographically. The tree sets are expected to be ordered
// by less.
func SetLess[T any](less setalg.Less[T]) setalg.Less[*TreeSet[T]] {
	lex := LexicalLess(less)
	return func(a, b *TreeSet[T]) bool {
		return lex(a.Values(), b.Values())
	}
}
