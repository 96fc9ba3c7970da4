// Package linsys provides the fixed-capacity dense linear solver consumed
// by the Newton iteration of the constraint solver. Systems are at most 16
// unknowns; the caller fills A and B, calls Solve, and reads X.
//
// Systems arising from nearly-redundant geometric constraints are close to
// singular, so elimination pivots on the largest remaining column entry at
// every step. A system with no usable pivot has no unique solution and is
// reported with a [*SingularError]; the redundant-constraint handling above
// this package decides what to do with it.
package linsys
