package sets

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/setalg"
)

// TreeSet is an ordered set, backed by a red-black tree. Create with
//
//     S := NewTreeSet(setalg.Natural[int], 3, 1, 2)
//
// Now
//
//     S.Values()      // returns [1 2 3]
//     S.Max()         // returns 3, true
//     S.Add(2)        // returns false, 2 is already a member
//
// The zero value is not usable.
type TreeSet[T any] struct {
	tree *treeset.Set
	less setalg.Less[T]
}

var _ BoundedSet[int] = (*TreeSet[int])(nil)

// NewTreeSet creates an ordered set with items ordered by less.
func NewTreeSet[T any](less setalg.Less[T], items ...T) *TreeSet[T] {
	s := &TreeSet[T]{
		tree: treeset.NewWith(less.Comparator()),
		less: less,
	}
	for _, item := range items {
		s.tree.Add(item)
	}
	return s
}

// KeyLess returns the ordering of the set.
func (s *TreeSet[T]) KeyLess() setalg.Less[T] {
	return s.less
}

// Add inserts an item. It returns false if an equivalent item is
// already a member.
func (s *TreeSet[T]) Add(item T) bool {
	if s.tree.Contains(item) {
		return false
	}
	s.tree.Add(item)
	return true
}

// Remove deletes an item. It returns false if no equivalent item has
// been a member.
func (s *TreeSet[T]) Remove(item T) bool {
	if !s.tree.Contains(item) {
		return false
	}
	s.tree.Remove(item)
	return true
}

// Contains checks membership of an item.
func (s *TreeSet[T]) Contains(item T) bool {
	return s.tree.Contains(item)
}

// Size returns the number of items.
func (s *TreeSet[T]) Size() int {
	return s.tree.Size()
}

// Empty is true for sets without items.
func (s *TreeSet[T]) Empty() bool {
	return s.tree.Empty()
}

// Clear removes all items.
func (s *TreeSet[T]) Clear() {
	s.tree.Clear()
}

// Values returns all items in ascending order.
func (s *TreeSet[T]) Values() []T {
	values := make([]T, 0, s.tree.Size())
	for _, v := range s.tree.Values() {
		values = append(values, v.(T))
	}
	return values
}

// Min returns the smallest item, if the set is non-empty.
func (s *TreeSet[T]) Min() (T, bool) {
	it := s.tree.Iterator()
	if it.First() {
		return it.Value().(T), true
	}
	var zero T
	return zero, false
}

// Max returns the largest item, if the set is non-empty.
func (s *TreeSet[T]) Max() (T, bool) {
	it := s.tree.Iterator()
	if it.Last() {
		return it.Value().(T), true
	}
	var zero T
	return zero, false
}

// Each calls f for every item, in ascending order.
func (s *TreeSet[T]) Each(f func(T)) {
	it := s.tree.Iterator()
	for it.Next() {
		f(it.Value().(T))
	}
}

// Copy returns a shallow copy of s, with the same ordering.
func (s *TreeSet[T]) Copy() *TreeSet[T] {
	c := NewTreeSet(s.less)
	c.tree.Add(s.tree.Values()...)
	return c
}

// Equals is true if s and other contain equivalent items.
func (s *TreeSet[T]) Equals(other *TreeSet[T]) bool {
	if s.Size() != other.Size() {
		return false
	}
	a, b := s.Values(), other.Values()
	for i := range a {
		if !s.less.Equiv(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (s *TreeSet[T]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	s.Each(func(item T) {
		if first {
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", item))
	})
	b.WriteString("}")
	return b.String()
}
