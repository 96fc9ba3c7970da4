// Package geom provides the algebraic value types (3D vectors, homogeneous
// 4-vectors, 2D points, quaternions) and the intersection/projection queries
// built on them.
//
// All types are immutable values: every operation returns a new value and has
// no visible side effect beyond its result. Equality between geometric
// quantities is tolerance-based by default (see [LengthEps]); exact
// comparison is available where callers need it.
//
// # Degenerate Cases
//
// Geometric degeneracies (parallel planes, skew lines, near-parallel lines)
// are runtime conditions, not bugs. They are reported through explicit
// boolean flags on the query results, never through errors or panics.
// A result returned alongside a degeneracy flag is not meaningful and must
// not be used:
//
//	pi, skew := geom.AtIntersectionOfLines(a0, a1, b0, b1)
//	if skew {
//	    // the lines do not meet; pi carries no information
//	}
//
// # Pivoting
//
// Every 2-equation solve in this package divides through the better
// conditioned of the candidate denominators (see [Vector.DivPivoting]).
// Callers that build their own small solves on top of these types should use
// the same primitive to get the same numerical behavior.
package geom
