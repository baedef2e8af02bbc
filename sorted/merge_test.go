package sorted

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/setalg"
	"github.com/npillmayer/setalg/sets"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slices"
)

var natural = setalg.Less[int](setalg.Natural[int])

func same(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEraseSetIntersection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setalg.sorted")
	defer teardown()
	//
	R1 := []int{1, 2, 3, 4, 5}
	ed := NewSliceEditor(&R1)
	EraseSetIntersection[int](ed, R1, []int{2, 4, 6}, natural)
	ed.Commit()
	if !same(R1, []int{1, 3, 5}) {
		t.Errorf("expected R1 = [1 3 5], is %v", R1)
	}
}

func TestEraseSetIntersectionMultiset(t *testing.T) {
	R1 := []int{1, 2, 2, 3}
	ed := NewSliceEditor(&R1)
	EraseSetIntersection[int](ed, R1, []int{2}, natural)
	ed.Commit()
	if !same(R1, []int{1, 2, 3}) {
		t.Errorf("expected a single 2 to be cancelled, R1 = %v", R1)
	}
}

func TestEraseSetDifference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setalg.sorted")
	defer teardown()
	//
	R1 := []int{1, 2, 3, 4, 5, 7, 8}
	ed := NewSliceEditor(&R1)
	EraseSetDifference[int](ed, R1, []int{2, 4, 6}, natural)
	ed.Commit()
	if !same(R1, []int{2, 4}) {
		t.Errorf("expected R1 = [2 4], is %v", R1)
	}
}

func TestEraseSetDifferenceEmptyR2(t *testing.T) {
	R1 := []int{1, 2}
	ed := NewSliceEditor(&R1)
	EraseSetDifference[int](ed, R1, nil, natural)
	ed.Commit()
	if len(R1) != 0 {
		t.Errorf("expected R1 to be erased completely, is %v", R1)
	}
}

func TestInsertSetComplement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setalg.sorted")
	defer teardown()
	//
	R1 := []int{1, 3, 5}
	ed := NewSliceEditor(&R1)
	InsertSetComplement[int](ed, R1, []int{0, 2, 3, 6, 7}, natural)
	if ed.Pending() != 4 {
		t.Errorf("expected 4 pending insertions, have %d", ed.Pending())
	}
	ed.Commit()
	if !same(R1, []int{0, 1, 2, 3, 5, 6, 7}) {
		t.Errorf("expected R1 = [0 1 2 3 5 6 7], is %v", R1)
	}
}

func TestEraseCallbackPositions(t *testing.T) {
	ctrl := gomock.NewController(t)
	eraser := setalg.NewMockEraser[int](ctrl)
	gomock.InOrder(
		eraser.EXPECT().Erase(1, 2),
		eraser.EXPECT().Erase(3, 4),
	)
	EraseSetIntersection[int](eraser, []int{1, 2, 3, 4}, []int{2, 4}, natural)
}

func TestEraseDifferenceCallbackPositions(t *testing.T) {
	ctrl := gomock.NewController(t)
	eraser := setalg.NewMockEraser[int](ctrl)
	gomock.InOrder(
		eraser.EXPECT().Erase(0, 1),
		eraser.EXPECT().Erase(2, 5), // trailing elements of R1
		eraser.EXPECT().Erase(3, 6),
	)
	EraseSetDifference[int](eraser, []int{1, 3, 5, 6}, []int{2, 3}, natural)
}

func TestInsertCallbackPositions(t *testing.T) {
	ctrl := gomock.NewController(t)
	inserter := setalg.NewMockInserter[int](ctrl)
	gomock.InOrder(
		inserter.EXPECT().Insert(1, 2),
		inserter.EXPECT().Insert(2, 4), // R1 exhausted
		inserter.EXPECT().Insert(2, 5),
	)
	InsertSetComplement[int](inserter, []int{1, 3}, []int{2, 4, 5}, natural)
}

func TestNoCallbacksForEmptyRanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	eraser := setalg.NewMockEraser[int](ctrl)
	inserter := setalg.NewMockInserter[int](ctrl)
	eraser.EXPECT().Erase(gomock.Any(), gomock.Any()).Times(0)
	inserter.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
	EraseSetIntersection[int](eraser, nil, []int{1}, natural)
	EraseSetDifference[int](eraser, nil, []int{1}, natural)
	InsertSetComplement[int](inserter, []int{1}, nil, natural)
}

func TestTreeSetStrategies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setalg.sorted")
	defer teardown()
	//
	S := sets.NewTreeSet(natural, 1, 2, 3, 4)
	EraseSetIntersection[int](SetEraser[int](S), S.Values(), []int{1, 3}, S.KeyLess())
	if !same(S.Values(), []int{2, 4}) {
		t.Errorf("expected S = {2, 4}, is %s", S)
	}
	InsertSetComplement[int](SetInserter[int](S), S.Values(), []int{1, 4, 9}, S.KeyLess())
	if !same(S.Values(), []int{1, 2, 4, 9}) {
		t.Errorf("expected S = {1, 2, 4, 9}, is %s", S)
	}
}

func TestHashSetWithExplicitSorting(t *testing.T) {
	H := sets.NewHashSet(5, 1, 3, 7)
	EraseSetDifference[int](SetEraser[int](H), H.Sorted(natural), []int{3, 7, 9}, natural)
	if !same(H.Sorted(natural), []int{3, 7}) {
		t.Errorf("expected H = {3, 7}, is %v", H.Sorted(natural))
	}
}

func TestHasEmptyIntersection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setalg.sorted")
	defer teardown()
	//
	if HasEmptyIntersection([]int{1, 3, 5}, []int{0, 3, 9}, natural) {
		t.Errorf("ranges share 3, intersection is not empty")
	}
	if !HasEmptyIntersection([]int{1, 3, 5}, []int{2, 4, 6}, natural) {
		t.Errorf("interleaved ranges are disjoint")
	}
	if !HasEmptyIntersection([]int{1, 2}, []int{7, 8}, natural) {
		t.Errorf("separated ranges are disjoint")
	}
	if !HasEmptyIntersection(nil, []int{1}, natural) {
		t.Errorf("empty range has empty intersection with every range")
	}
}

func TestHasEmptySetIntersectionUsesKeyOrdering(t *testing.T) {
	desc := setalg.Less[int](func(a, b int) bool { return a > b })
	s1 := sets.NewTreeSet(desc, 1, 5, 9)
	s2 := sets.NewTreeSet(desc, 2, 9)
	if HasEmptySetIntersection[int](s1, s2) {
		t.Errorf("sets share 9, intersection is not empty")
	}
	s2.Remove(9)
	if !HasEmptySetIntersection[int](s1, s2) {
		t.Errorf("sets should be disjoint")
	}
}

func TestIsDisjoint(t *testing.T) {
	ints := func(items ...int) *sets.TreeSet[int] {
		return sets.NewTreeSet(natural, items...)
	}
	if !IsDisjoint[int](ints(1, 3, 5), ints(2, 4, 6)) {
		t.Errorf("{1,3,5} and {2,4,6} are disjoint")
	}
	if IsDisjoint[int](ints(1, 2, 3), ints(3, 4, 5)) {
		t.Errorf("{1,2,3} and {3,4,5} share 3")
	}
	if !IsDisjoint[int](ints(), ints(1)) {
		t.Errorf("{} and {1} are disjoint")
	}
	if !IsDisjoint[int](ints(7, 8), ints(1, 2)) {
		t.Errorf("{7,8} and {1,2} are disjoint by their bounds")
	}
}

func expectUnsortedPanic(t *testing.T, op string, rng string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected panic for unsorted range %s", op, rng)
			return
		}
		if err, ok := r.(*setalg.PreconditionError); ok {
			if err.Op != op || err.Range != rng {
				t.Errorf("expected violation of %s in %s, have %v", rng, op, err)
			}
		}
	}()
	f()
}

func TestUnsortedInputPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "setalg.sorted")
	defer teardown()
	//
	sorted, unsorted := []int{1, 2, 3}, []int{3, 1, 2}
	noop := setalg.EraseFunc[int](func(int, int) {})
	noins := setalg.InsertFunc[int](func(int, int) {})
	for _, c := range []struct {
		rng    string
		r1, r2 []int
	}{
		{"R1", unsorted, sorted},
		{"R2", sorted, unsorted},
	} {
		r1, r2 := c.r1, c.r2
		expectUnsortedPanic(t, "EraseSetIntersection", c.rng, func() {
			EraseSetIntersection[int](noop, r1, r2, natural)
		})
		expectUnsortedPanic(t, "EraseSetDifference", c.rng, func() {
			EraseSetDifference[int](noop, r1, r2, natural)
		})
		expectUnsortedPanic(t, "InsertSetComplement", c.rng, func() {
			InsertSetComplement[int](noins, r1, r2, natural)
		})
		expectUnsortedPanic(t, "HasEmptyIntersection", c.rng, func() {
			HasEmptyIntersection(r1, r2, natural)
		})
	}
}

func TestUnsortedInputTolerated(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"setalg.tolerate-unsorted": "true",
	})
	defer teardown()
	//
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("flag setalg.tolerate-unsorted is set, expected no panic, have %v", r)
		}
	}()
	cnt := 0
	eraser := setalg.EraseFunc[int](func(int, int) { cnt++ })
	EraseSetIntersection[int](eraser, []int{3, 1}, []int{1}, natural)
	if !HasEmptyIntersection([]int{2, 1}, []int{5, 4}, natural) {
		t.Errorf("expected scan of unsorted ranges to return without common element")
	}
	t.Logf("unsorted scan erased %d elements", cnt)
}

func TestHasEmptyIntersectionShortCircuits(t *testing.T) {
	calls := 0
	counting := setalg.Less[int](func(a, b int) bool {
		calls++
		return a < b
	})
	r1, r2 := []int{1, 2, 3, 4, 5}, []int{1, 6, 7, 8, 9}
	IsSorted(r1, counting)
	IsSorted(r2, counting)
	checks := calls // comparisons spent on the sortedness assertion
	calls = 0
	if HasEmptyIntersection(r1, r2, counting) {
		t.Fatalf("ranges share 1, intersection is not empty")
	}
	if scan := calls - checks; scan != 2 {
		t.Errorf("expected scan to stop after 2 comparisons at the first common element, took %d", scan)
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int{}, natural) || !IsSorted([]int{1, 1, 2}, natural) {
		t.Errorf("empty and non-decreasing ranges are sorted")
	}
	if IsSorted([]int{2, 1}, natural) {
		t.Errorf("[2 1] is not sorted")
	}
}

// --- Properties against naive multiset computations -----------------------

func randomSorted(rnd *rand.Rand) []int {
	n := rnd.Intn(12)
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10)
	}
	slices.Sort(r)
	return r
}

func counts(r []int) map[int]int {
	c := make(map[int]int)
	for _, v := range r {
		c[v]++
	}
	return c
}

func TestMergeScanProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	for n := 0; n < 200; n++ {
		r1, r2 := randomSorted(rnd), randomSorted(rnd)
		// difference
		diff, c2 := []int{}, counts(r2)
		for _, v := range r1 {
			if c2[v] > 0 {
				c2[v]--
			} else {
				diff = append(diff, v)
			}
		}
		R := append([]int{}, r1...)
		ed := NewSliceEditor(&R)
		EraseSetIntersection[int](ed, R, r2, natural)
		ed.Commit()
		if !same(R, diff) {
			t.Fatalf("%v − %v: expected %v, have %v", r1, r2, diff, R)
		}
		// intersection
		inter, c2 := []int{}, counts(r2)
		for _, v := range r1 {
			if c2[v] > 0 {
				c2[v]--
				inter = append(inter, v)
			}
		}
		R = append([]int{}, r1...)
		ed = NewSliceEditor(&R)
		EraseSetDifference[int](ed, R, r2, natural)
		ed.Commit()
		if !same(R, inter) {
			t.Fatalf("%v ∩ %v: expected %v, have %v", r1, r2, inter, R)
		}
		if HasEmptyIntersection(r1, r2, natural) != (len(inter) == 0) {
			t.Fatalf("%v ∩ %v: emptiness test disagrees with intersection %v", r1, r2, inter)
		}
		// union
		union, c1 := append([]int{}, r1...), counts(r1)
		for _, v := range r2 {
			if c1[v] > 0 {
				c1[v]--
			} else {
				union = append(union, v)
			}
		}
		slices.Sort(union)
		R = append([]int{}, r1...)
		ed = NewSliceEditor(&R)
		InsertSetComplement[int](ed, R, r2, natural)
		ed.Commit()
		if !same(R, union) {
			t.Fatalf("%v ∪ %v: expected %v, have %v", r1, r2, union, R)
		}
	}
}
