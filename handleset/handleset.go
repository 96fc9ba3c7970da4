// Package handleset provides a compact set of 32-bit handles, backed by a
// Roaring bitmap. The external solver uses it for selection groups and for
// bulk tag-and-sweep removal from the handle-indexed containers.
package handleset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/geomcore/core"
)

// Set is a set of handles of one concrete handle type H.
// The zero value is not usable; call New.
type Set[H core.Handle] struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New[H core.Handle]() *Set[H] {
	return &Set[H]{
		rb: roaring.New(),
	}
}

// Of creates a set holding the given handles.
func Of[H core.Handle](hs ...H) *Set[H] {
	s := New[H]()
	for _, h := range hs {
		s.Add(h)
	}
	return s
}

// Add adds a handle to the set.
func (s *Set[H]) Add(h H) {
	s.rb.Add(uint32(h))
}

// Remove removes a handle from the set.
func (s *Set[H]) Remove(h H) {
	s.rb.Remove(uint32(h))
}

// Contains checks if a handle is in the set.
func (s *Set[H]) Contains(h H) bool {
	return s.rb.Contains(uint32(h))
}

// IsEmpty returns true if the set is empty.
func (s *Set[H]) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of handles in the set.
func (s *Set[H]) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set[H]) Clone() *Set[H] {
	return &Set[H]{
		rb: s.rb.Clone(),
	}
}

// Union adds every handle of other to s.
func (s *Set[H]) Union(other *Set[H]) {
	s.rb.Or(other.rb)
}

// Clear removes all handles from the set.
func (s *Set[H]) Clear() {
	s.rb.Clear()
}

// All returns an iterator over the handles in ascending order.
func (s *Set[H]) All() iter.Seq[H] {
	return func(yield func(H) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(H(it.Next())) {
				return
			}
		}
	}
}
