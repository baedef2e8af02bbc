package setalg

//go:generate mockgen -source setalg.go -destination setalg_mocks.go -package setalg

import (
	"fmt"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// --- Orderings -------------------------------------------------------------

// Less is a strict weak ordering on values of type T. It is supplied by clients
// for all algorithms working on sorted ranges. Two values a and b are considered
// equivalent if neither less(a,b) nor less(b,a) holds.
type Less[T any] func(a, b T) bool

// Natural is the natural ordering of ordered types, i.e. a < b.
func Natural[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Equiv returns true if a and b are equivalent under less.
func (less Less[T]) Equiv(a, b T) bool {
	return !less(a, b) && !less(b, a)
}

// Compare returns -1, 0 or +1, depending on a being less than, equivalent to or
// greater than b.
func (less Less[T]) Compare(a, b T) int {
	if less(a, b) {
		return -1
	} else if less(b, a) {
		return 1
	}
	return 0
}

// Comparator adapts less to the comparator convention of gods containers.
// Values handed to the comparator have to be of type T.
func (less Less[T]) Comparator() utils.Comparator {
	return func(a, b interface{}) int {
		return less.Compare(a.(T), b.(T))
	}
}

// --- Mutation strategies ---------------------------------------------------

// Eraser is a strategy for removing an element from a container while a merge scan
// is in progress. pos is the index of item within the scanned range, as it was
// handed to the algorithm. During a single scan, positions strictly increase.
type Eraser[T any] interface {
	Erase(pos int, item T)
}

// EraseFunc is a function type implementing Eraser.
type EraseFunc[T any] func(pos int, item T)

// Erase calls f(pos, item).
func (f EraseFunc[T]) Erase(pos int, item T) {
	f(pos, item)
}

// Inserter is a strategy for inserting an element into a container while a merge scan
// is in progress. pos is the index in the scanned range in front of which item
// belongs, i.e. the current cursor into the range. It is len(range) when the
// range has been exhausted. During a single scan, positions never decrease.
type Inserter[T any] interface {
	Insert(pos int, item T)
}

// InsertFunc is a function type implementing Inserter.
type InsertFunc[T any] func(pos int, item T)

// Insert calls f(pos, item).
func (f InsertFunc[T]) Insert(pos int, item T) {
	f(pos, item)
}

// --- Errors ----------------------------------------------------------------

// PreconditionError is raised (as a panic) by algorithms which require sorted input
// ranges but find one of them unsorted. This is a programming error on the
// client's side and is not meant to be recovered from.
type PreconditionError struct {
	Op    string // operation which detected the violation
	Range string // which input range is unsorted, "R1" or "R2"
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("setalg: range %s is not sorted (%s)", e.Range, e.Op)
}
