/*
Package setalg is a small toolbox of algorithms on sorted sequences and sets.

Many algorithms around sets are most naturally expressed as merge scans over
ordered ranges, or as set constructions. Package structure is as follows:

■ sorted: Package sorted implements merge-scan algorithms over sorted ranges
(slices), mutating a target container through injected erase/insert
strategies, plus intersection tests.

■ sets: Package sets provides an abstract set capability together with an
ordered (tree-based) and a hash-based realization, and the classical set
operations on them.

■ combinat: Package combinat implements combinatorial generators, i.e. bounded
power sets and n-fold Cartesian products.

■ fp: Package fp contains thin forwarding helpers for slices (any/all/none-of,
parallel iteration, filtering by index, etc.).

The base package contains types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package setalg
