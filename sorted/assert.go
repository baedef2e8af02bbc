package sorted

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/setalg"
	"golang.org/x/exp/slices"
)

// IsSorted returns true if r is non-decreasing with respect to less.
func IsSorted[T any](r []T, less setalg.Less[T]) bool {
	return slices.IsSortedFunc(r, less)
}

// assertSorted checks both input ranges of a merge-scan operation op.
func assertSorted[T any](op string, r1, r2 []T, less setalg.Less[T]) {
	if !IsSorted(r1, less) {
		unsorted(&setalg.PreconditionError{Op: op, Range: "R1"})
	}
	if !IsSorted(r2, less) {
		unsorted(&setalg.PreconditionError{Op: op, Range: "R2"})
	}
}

func unsorted(err *setalg.PreconditionError) {
	tracer().Errorf(err.Error())
	if gconf.GetBool("setalg.tolerate-unsorted") {
		return
	}
	panic(err)
}
