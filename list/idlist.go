package list

import (
	"iter"

	"github.com/hupe1980/geomcore/core"
	"github.com/hupe1980/geomcore/handleset"
)

// IDElem constrains the pointer type of an IdList element: tagged, keyed by
// a handle of type H, and owning a teardown hook for nested resources
// (a no-op method for plain elements).
type IDElem[T any, H core.Handle] interface {
	*T
	Taggable
	Handle() H
	SetHandle(H)
	Clear()
}

// IdList is a sequence of T kept sorted in strictly ascending handle order
// at all times, with no duplicate handles. Lookup by handle is O(log n).
// The zero value is an empty list ready for use.
type IdList[T any, H core.Handle, PT IDElem[T, H]] struct {
	elem []T

	// assigned is the high-water mark of handles ever inserted, so that
	// AddAndAssignID never hands out a handle again after its element was
	// removed.
	assigned H
}

// grow matches the List growth curve, (cap+32)*2.
func (l *IdList[T, H, PT]) grow() {
	if len(l.elem) < cap(l.elem) {
		return
	}
	grown := make([]T, len(l.elem), (cap(l.elem)+32)*2)
	copy(grown, l.elem)
	l.elem = grown
}

// Len returns the number of elements.
func (l *IdList[T, H, PT]) Len() int {
	return len(l.elem)
}

// IsEmpty reports whether the list holds no elements.
func (l *IdList[T, H, PT]) IsEmpty() bool {
	return len(l.elem) == 0
}

// MaximumID returns the largest handle present, or zero for an empty list.
// O(n); the list is sorted, but a full scan keeps this correct even if a
// future layout stores survivors of a sweep unsorted before compaction.
func (l *IdList[T, H, PT]) MaximumID() H {
	var id H
	for i := range l.elem {
		if h := PT(&l.elem[i]).Handle(); h > id {
			id = h
		}
	}
	return id
}

// AddAndAssignID assigns t the handle one past the largest handle ever held,
// inserts it, and returns the handle. Handles assigned this way are never
// reused within the lifetime of the container, even after removals.
func (l *IdList[T, H, PT]) AddAndAssignID(t T) H {
	h := l.MaximumID()
	if l.assigned > h {
		h = l.assigned
	}
	h++
	PT(&t).SetHandle(h)
	l.Add(t)
	return h
}

// Add inserts t at its sorted position by handle. O(log n) search plus
// O(n) shift. Inserting a handle already present violates the uniqueness
// invariant and panics with an [*InvariantError].
func (l *IdList[T, H, PT]) Add(t T) {
	h := PT(&t).Handle()

	// The insertion point lies within the closed interval [first, last].
	first, last := 0, len(l.elem)
	for first != last {
		mid := (first + last) / 2
		hm := PT(&l.elem[mid]).Handle()
		switch {
		case hm > h:
			last = mid
		case hm < h:
			first = mid + 1
		default:
			oops("can't insert in list; handle %d is not unique", h)
		}
	}

	n := len(l.elem)
	l.grow()
	l.elem = append(l.elem, t)
	copy(l.elem[first+1:], l.elem[first:n])
	l.elem[first] = t

	if h > l.assigned {
		l.assigned = h
	}
}

// FindByID returns a pointer to the element with handle h. The element must
// exist; a miss is a caller bug and panics with an [*InvariantError]. Use
// FindByIDNoOops where absence is an expected outcome.
func (l *IdList[T, H, PT]) FindByID(h H) *T {
	t, ok := l.FindByIDNoOops(h)
	if !ok {
		oops("failed to look up item %08x, searched %d items", uint32(h), len(l.elem))
	}
	return t
}

// FindByIDNoOops returns a pointer to the element with handle h, or
// (nil, false) when no such element exists.
func (l *IdList[T, H, PT]) FindByIDNoOops(h H) (*T, bool) {
	first, last := 0, len(l.elem)-1
	for first <= last {
		mid := (first + last) / 2
		hm := PT(&l.elem[mid]).Handle()
		switch {
		case hm > h:
			last = mid - 1
		case hm < h:
			first = mid + 1
		default:
			return &l.elem[mid], true
		}
	}
	return nil, false
}

// Exists reports whether an element with handle h is present.
func (l *IdList[T, H, PT]) Exists(h H) bool {
	_, ok := l.FindByIDNoOops(h)
	return ok
}

// First returns a pointer to the element with the smallest handle, or nil
// if the list is empty.
func (l *IdList[T, H, PT]) First() *T {
	if len(l.elem) == 0 {
		return nil
	}
	return &l.elem[0]
}

// NextAfter returns a pointer to the element following prev in handle
// order, or nil after the last element (or for a nil prev). prev must be a
// pointer previously obtained from this list with no mutation in between.
func (l *IdList[T, H, PT]) NextAfter(prev *T) *T {
	if prev == nil {
		return nil
	}
	for i := range l.elem {
		if &l.elem[i] == prev {
			if i == len(l.elem)-1 {
				return nil
			}
			return &l.elem[i+1]
		}
	}
	return nil
}

// All returns an iterator over pointers to the elements in ascending handle
// order. The list must not be mutated during iteration.
func (l *IdList[T, H, PT]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range l.elem {
			if !yield(&l.elem[i]) {
				return
			}
		}
	}
}

// ClearTags resets every element's tag to zero.
func (l *IdList[T, H, PT]) ClearTags() {
	for i := range l.elem {
		PT(&l.elem[i]).SetTag(0)
	}
}

// Tag sets the tag of every element with handle h. A scan, not a binary
// search: tagging routinely follows arbitrary caller-side filtering, and
// the sweep that follows is O(n) anyway.
func (l *IdList[T, H, PT]) Tag(h H, tag int) {
	for i := range l.elem {
		p := PT(&l.elem[i])
		if p.Handle() == h {
			p.SetTag(tag)
		}
	}
}

// TagSet sets the tag of every element whose handle is in the set. One O(n)
// pass regardless of the set's cardinality.
func (l *IdList[T, H, PT]) TagSet(s *handleset.Set[H], tag int) {
	for i := range l.elem {
		p := PT(&l.elem[i])
		if s.Contains(p.Handle()) {
			p.SetTag(tag)
		}
	}
}

// RemoveTagged deletes every element with a nonzero tag, compacting in one
// order-preserving O(n) pass. The backing storage is not resized, and the
// dropped elements' Clear hooks are not run; removal hands the elements
// back to the caller's ownership, unlike [IdList.Clear].
func (l *IdList[T, H, PT]) RemoveTagged() {
	dest := 0
	for src := range l.elem {
		if PT(&l.elem[src]).Tag() != 0 {
			continue
		}
		if src != dest {
			l.elem[dest] = l.elem[src]
		}
		dest++
	}
	l.elem = l.elem[:dest]
}

// RemoveByID removes the element with handle h. The element must exist; a
// miss panics with an [*InvariantError].
func (l *IdList[T, H, PT]) RemoveByID(h H) {
	l.ClearTags()
	PT(l.FindByID(h)).SetTag(1)
	l.RemoveTagged()
}

// RemoveSet removes every element whose handle is in the set, in one sweep.
func (l *IdList[T, H, PT]) RemoveSet(s *handleset.Set[H]) {
	l.ClearTags()
	l.TagSet(s, 1)
	l.RemoveTagged()
}

// MoveSelfInto transfers the backing storage to dst, whose previous
// contents are discarded without teardown. The receiver is left empty but
// usable; callers depend on the source being drained, not copied.
func (l *IdList[T, H, PT]) MoveSelfInto(dst *IdList[T, H, PT]) {
	dst.elem = l.elem
	dst.assigned = l.assigned
	l.elem = nil
	l.assigned = 0
}

// DeepCopyInto makes dst an independent copy: separate backing storage with
// identical contents and capacity. Elements are copied by value; an element
// holding its own pointers shares them with the copy. The receiver remains
// usable.
func (l *IdList[T, H, PT]) DeepCopyInto(dst *IdList[T, H, PT]) {
	dst.elem = make([]T, len(l.elem), cap(l.elem))
	copy(dst.elem, l.elem)
	dst.assigned = l.assigned
}

// Clear invokes each element's Clear hook, then releases the backing
// storage. This ends the container's lifetime: a cleared list starts a
// fresh handle sequence.
func (l *IdList[T, H, PT]) Clear() {
	for i := range l.elem {
		PT(&l.elem[i]).Clear()
	}
	l.elem = nil
	l.assigned = 0
}
