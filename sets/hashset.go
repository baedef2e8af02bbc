package sets

import (
	"reflect"

	"github.com/cnf/structhash"
	"github.com/npillmayer/setalg"
	"golang.org/x/exp/slices"
)

// HashSet is an unordered set. Items need not be comparable: tuples ([]T) or
// structs containing slices are valid items. Items are bucketed by a structural
// fingerprint of their exported content; within a bucket, equality is decided
// by reflect.DeepEqual. Fingerprints may collide (structhash does not escape
// strings, and a nil pointer dumps like a pointer to a zero value), collisions
// only cost a linear search in the bucket.
//
// Iteration order is unspecified. Use Sorted to obtain a sorted range of the items.
type HashSet[T any] struct {
	buckets map[string][]T
	size    int
}

var _ Set[int] = (*HashSet[int])(nil)

// NewHashSet creates a hash set from a list of items.
func NewHashSet[T any](items ...T) *HashSet[T] {
	s := &HashSet[T]{buckets: make(map[string][]T, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// fingerprintVersion is the structhash version to consider for struct tags.
const fingerprintVersion = 1

func fingerprint(item interface{}) string {
	return string(structhash.Dump(item, fingerprintVersion))
}

// find returns the bucket key for item and the index of item within its bucket,
// or -1.
func (s *HashSet[T]) find(item T) (string, int) {
	key := fingerprint(item)
	inx := slices.IndexFunc(s.buckets[key], func(x T) bool {
		return reflect.DeepEqual(x, item)
	})
	return key, inx
}

// Add inserts an item. It returns false if it is already a member.
func (s *HashSet[T]) Add(item T) bool {
	key, inx := s.find(item)
	if inx >= 0 {
		return false
	}
	s.buckets[key] = append(s.buckets[key], item)
	s.size++
	return true
}

// Remove deletes item. It returns false if item has not been a member.
func (s *HashSet[T]) Remove(item T) bool {
	key, inx := s.find(item)
	if inx < 0 {
		return false
	}
	if bucket := slices.Delete(s.buckets[key], inx, inx+1); len(bucket) == 0 {
		delete(s.buckets, key)
	} else {
		s.buckets[key] = bucket
	}
	s.size--
	return true
}

// Contains checks membership of an item.
func (s *HashSet[T]) Contains(item T) bool {
	_, inx := s.find(item)
	return inx >= 0
}

// Size returns the number of items.
func (s *HashSet[T]) Size() int {
	return s.size
}

// Empty is true for sets without items.
func (s *HashSet[T]) Empty() bool {
	return s.size == 0
}

// Clear removes all items.
func (s *HashSet[T]) Clear() {
	s.buckets = make(map[string][]T)
	s.size = 0
}

// Values returns all items, in no particular order.
func (s *HashSet[T]) Values() []T {
	values := make([]T, 0, s.size)
	for _, bucket := range s.buckets {
		values = append(values, bucket...)
	}
	return values
}

// Sorted returns the items of s as a range sorted by less.
func (s *HashSet[T]) Sorted(less setalg.Less[T]) []T {
	values := s.Values()
	slices.SortFunc(values, less)
	return values
}
