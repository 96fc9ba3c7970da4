// Package list provides the two generic containers backing the solver's
// entity and parameter stores: a plain growable [List], and an [IdList] kept
// sorted by a 32-bit handle with O(log n) lookup.
//
// # Element Contract
//
// Elements are stored by value and addressed through their pointer type,
// which must carry a sweep tag (embed [Mark] to get one for free). IdList
// elements additionally expose their handle:
//
//	type Entity struct {
//	    list.Mark
//	    H      EntityHandle
//	    // ...
//	}
//
//	func (e *Entity) Handle() EntityHandle     { return e.H }
//	func (e *Entity) SetHandle(h EntityHandle) { e.H = h }
//	func (e *Entity) Clear()                   {}
//
//	var entities list.IdList[Entity, EntityHandle, *Entity]
//
// # Removal
//
// Deletion is mark-and-sweep: set a nonzero tag on the elements to drop,
// then call RemoveTagged, which compacts in one O(n) pass preserving the
// relative order of the survivors.
//
// # Invariant Violations
//
// Programmer errors (inserting a duplicate handle, looking up a handle that
// must exist and is not there, removing more elements than the container
// holds) are not runtime conditions and are not returned as errors. They
// panic with an [*InvariantError]. FindByIDNoOops is the one lookup offering
// a non-fatal absence result, for callers expecting optional presence.
//
// # Pointer Stability
//
// Element pointers obtained from First, NextAfter, All or FindByID remain
// valid only until the next mutating call: any Add may reallocate the
// backing storage and any removal may shift elements. Re-obtain pointers
// after mutating.
//
// Containers assume single-owner mutation and are not safe for concurrent
// use on the same instance without external locking. Distinct instances are
// independent.
package list
