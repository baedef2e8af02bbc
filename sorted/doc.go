/*
Package sorted implements merge-scan algorithms over sorted ranges.

A range is a slice, sorted with respect to an ordering supplied by the client
(see setalg.Less). Algorithms co-iterate over two ranges, classifying elements
as unique to the left range, unique to the right range, or common to both.

Algorithms which mutate a container do not know about the container. Instead,
clients hand in strategies (setalg.Eraser, setalg.Inserter) which perform the
actual mutation. Given

    R1 := []int{1, 2, 3, 4}
    R2 := []int{2, 4, 6}

then

    ed := NewSliceEditor(&R1)
    EraseSetIntersection[int](ed, R1, R2, setalg.Natural[int])
    ed.Commit()                        // R1 = [1 3]

whereas a strategy for a tree set would erase by value:

    EraseSetIntersection[int](SetEraser[int](S), S.Values(), R2, S.KeyLess())

All algorithms, except IsDisjoint, check their input ranges for sortedness and
panic with a *setalg.PreconditionError if they are not. This is a programming error.
Setting the configuration flag 'setalg.tolerate-unsorted' will suppress the panic,
logging an error instead; results are undefined in this case.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sorted

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'setalg.sorted'.
func tracer() tracing.Trace {
	return tracing.Select("setalg.sorted")
}
