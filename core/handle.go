package core

// Handle is the constraint satisfied by the 32-bit identifier types that key
// the solver's containers. Each entity class (entities, params, groups, ...)
// declares its own concrete handle type so that handles of different classes
// cannot be mixed up at compile time:
//
//	type EntityHandle uint32
//	type ParamHandle uint32
//
// Within one container a handle is unique and, once assigned, is never reused
// for the lifetime of that container.
type Handle interface {
	~uint32
}

// MaxHandle is the largest representable raw handle value.
const MaxHandle = ^uint32(0)
