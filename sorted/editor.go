package sorted

import (
	"github.com/npillmayer/setalg"
	"github.com/npillmayer/setalg/sets"
	"golang.org/x/exp/slices"
)

// SliceEditor is a mutation strategy for slices. Mutating a slice in place while it
// is being scanned would shift the elements under the scan's cursor, therefore
// the editor collects erasures and insertions and applies them with Commit.
//
//     R1 := []int{1, 3}
//     ed := NewSliceEditor(&R1)
//     InsertSetComplement(ed, R1, []int{2, 4}, setalg.Natural[int])
//     ed.Commit()                        // R1 = [1 2 3 4]
//
// SliceEditor implements setalg.Eraser as well as setalg.Inserter. Positions refer to
// the slice's state at the time of the last commit.
type SliceEditor[T any] struct {
	target  *[]T
	erased  []int
	inserts []insertion[T]
}

type insertion[T any] struct {
	pos  int
	item T
}

var _ setalg.Eraser[int] = (*SliceEditor[int])(nil)
var _ setalg.Inserter[int] = (*SliceEditor[int])(nil)

// NewSliceEditor creates an editor for slice *s.
func NewSliceEditor[T any](s *[]T) *SliceEditor[T] {
	return &SliceEditor[T]{target: s}
}

// Erase notes the erasure of the element at position pos.
func (ed *SliceEditor[T]) Erase(pos int, _ T) {
	ed.erased = append(ed.erased, pos)
}

// Insert notes the insertion of item in front of position pos.
func (ed *SliceEditor[T]) Insert(pos int, item T) {
	ed.inserts = append(ed.inserts, insertion[T]{pos: pos, item: item})
}

// Pending returns the number of edits not yet committed.
func (ed *SliceEditor[T]) Pending() int {
	return len(ed.erased) + len(ed.inserts)
}

// Commit applies all pending edits to the target slice. Items inserted at the same
// position keep the order in which they have been inserted. The target slice
// will be replaced by a freshly allocated one.
func (ed *SliceEditor[T]) Commit() {
	if ed.Pending() == 0 {
		return
	}
	slices.Sort(ed.erased)
	slices.SortStableFunc(ed.inserts, func(a, b insertion[T]) bool {
		return a.pos < b.pos
	})
	src := *ed.target
	out := make([]T, 0, len(src)+len(ed.inserts))
	e, k := 0, 0
	for i := 0; i <= len(src); i++ {
		for k < len(ed.inserts) && (ed.inserts[k].pos <= i || i == len(src)) {
			out = append(out, ed.inserts[k].item)
			k++
		}
		if i == len(src) {
			break
		}
		if e < len(ed.erased) && ed.erased[e] == i {
			for e < len(ed.erased) && ed.erased[e] == i {
				e++
			}
			continue
		}
		out = append(out, src[i])
	}
	tracer().Debugf("committed %d erasures and %d insertions", len(ed.erased), len(ed.inserts))
	*ed.target = out
	ed.erased = ed.erased[:0]
	ed.inserts = ed.inserts[:0]
}

// SetEraser returns a strategy which erases items from s by value.
// Positions are ignored. Ranges to scan should be obtained by s.Values(), which
// is a snapshot and unaffected by the erasures.
func SetEraser[T any](s sets.Set[T]) setalg.EraseFunc[T] {
	return func(_ int, item T) {
		s.Remove(item)
	}
}

// SetInserter returns a strategy which adds items to s by value.
// Positions are ignored.
func SetInserter[T any](s sets.Set[T]) setalg.InsertFunc[T] {
	return func(_ int, item T) {
		s.Add(item)
	}
}
