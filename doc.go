// Package geomcore is the numerical and data-structure foundation of a
// geometric constraint solver.
//
// The module is organized as small leaf packages consumed by the constraint
// and equation layer sitting above it:
//
//   - geom: immutable algebraic values (3D vectors, homogeneous 4-vectors,
//     2D points, quaternions) and the tolerance-aware intersection and
//     projection queries built on them.
//   - list: the generic containers storing the solver's entities and
//     parameters, an insertion-ordered List and a handle-sorted IdList
//     with O(log n) lookup and mark-and-sweep removal.
//   - handleset: Roaring-bitmap sets of handles for selection groups and
//     bulk removal.
//   - linsys: the fixed-capacity (<= 16 unknowns) dense solver driven once
//     per Newton iteration.
//   - color: the 4-byte color value with the bit-exact packed form shared
//     with rendering and serialization.
//
// Everything is single-threaded and synchronous: no operation blocks,
// suspends, or spawns goroutines, and no container is safe for concurrent
// mutation of the same instance without external locking.
//
// # Error Model
//
// Programmer errors (duplicate handle inserts, lookups that must succeed,
// out-of-range solver sizes) panic with typed invariant errors; geometric
// degeneracies (parallel planes, skew lines) are ordinary outcomes reported
// through boolean flags; and the linear solver reports an unsolvable system
// with a typed error value. See the package documentation of list, geom and
// linsys respectively.
//
// This package itself carries only the structured [Logger] used by the
// layers driving the core.
package geomcore
