/*
Package combinat implements combinatorial generators: power sets, bounded by a
maximum subset size, and n-fold Cartesian products of a container with itself.

Results are fully materialized as ordered sets (see package sets). Their size is
exponential in the size of the input, which is inherent to the problem. Clients
are expected to bound the subset size or the number of folds for tractability;
there is no cut-off.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package combinat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'setalg.combinat'.
func tracer() tracing.Trace {
	return tracing.Select("setalg.combinat")
}
