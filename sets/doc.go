/*
Package sets provides a set capability for the algorithms of setalg, together with
two concrete realizations.

TreeSet is an ordered set, backed by a red-black tree. Iteration order is the
order given by the set's key ordering, which makes tree sets directly usable as
sorted ranges.

HashSet is an unordered set. Items are identified by a structural fingerprint,
which allows for items which are not comparable in the Go sense (slices, e.g.).
To take part in merge scans, its items have to be explicitly sorted first.

Sets of sets are supported for tree sets: SetLess lifts an element ordering to a
lexicographic ordering of sets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sets

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'setalg.sets'.
func tracer() tracing.Trace {
	return tracing.Select("setalg.sets")
}
