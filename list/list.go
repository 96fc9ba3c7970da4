package list

import (
	"iter"
	"slices"
)

// Taggable is the tag access implemented by element pointer types. The tag
// is an auxiliary integer used by the mark-and-sweep removal primitives; it
// carries no meaning to the container beyond zero versus nonzero.
type Taggable interface {
	Tag() int
	SetTag(int)
}

// Mark is an embeddable tag field satisfying [Taggable].
type Mark struct {
	tag int
}

// Tag returns the current tag value.
func (m *Mark) Tag() int { return m.tag }

// SetTag sets the tag value.
func (m *Mark) SetTag(t int) { m.tag = t }

// Elem constrains the pointer type of a List element.
type Elem[T any] interface {
	*T
	Taggable
}

// List is an ordered growable sequence of T. Insertion order is significant
// and preserved by every operation except Reverse. The zero value is an
// empty list ready for use.
type List[T any, PT Elem[T]] struct {
	elem []T
}

// grow reallocates the backing storage when full. The capacity curve is
// (cap+32)*2, giving amortized O(1) append without thrashing small lists.
func (l *List[T, PT]) grow() {
	if len(l.elem) < cap(l.elem) {
		return
	}
	grown := make([]T, len(l.elem), (cap(l.elem)+32)*2)
	copy(grown, l.elem)
	l.elem = grown
}

// Add appends t. Amortized O(1). A reallocation here invalidates all
// previously obtained element pointers.
func (l *List[T, PT]) Add(t T) {
	l.grow()
	l.elem = append(l.elem, t)
}

// AddToBeginning inserts t in front of every existing element, shifting
// them all. O(n).
func (l *List[T, PT]) AddToBeginning(t T) {
	l.grow()
	l.elem = append(l.elem, t)
	copy(l.elem[1:], l.elem[:len(l.elem)-1])
	l.elem[0] = t
}

// Len returns the number of elements.
func (l *List[T, PT]) Len() int {
	return len(l.elem)
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T, PT]) IsEmpty() bool {
	return len(l.elem) == 0
}

// First returns a pointer to the first element, or nil if the list is
// empty.
func (l *List[T, PT]) First() *T {
	if len(l.elem) == 0 {
		return nil
	}
	return &l.elem[0]
}

// NextAfter returns a pointer to the element following prev, or nil after
// the last element (or for a nil prev). prev must be a pointer previously
// obtained from this list with no mutation in between.
func (l *List[T, PT]) NextAfter(prev *T) *T {
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

// All returns an iterator over pointers to the elements in order. The list
// must not be mutated during iteration.
func (l *List[T, PT]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range l.elem {
			if !yield(&l.elem[i]) {
				return
			}
		}
	}
}

// ClearTags resets every element's tag to zero.
func (l *List[T, PT]) ClearTags() {
	for i := range l.elem {
		PT(&l.elem[i]).SetTag(0)
	}
}

// RemoveTagged deletes every element with a nonzero tag, compacting in one
// O(n) pass. The relative order of the survivors is preserved and the
// backing storage is not resized.
func (l *List[T, PT]) RemoveTagged() {
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

// RemoveLast drops the last cnt elements without resizing the backing
// storage. Removing more elements than the list holds is a caller bug and
// panics with an [*InvariantError].
func (l *List[T, PT]) RemoveLast(cnt int) {
	if len(l.elem) < cnt {
		oops("can't remove %d elements from a list of %d", cnt, len(l.elem))
	}
	l.elem = l.elem[:len(l.elem)-cnt]
}

// Reverse reverses the element order in place.
func (l *List[T, PT]) Reverse() {
	slices.Reverse(l.elem)
}

// Clear releases the backing storage. It performs no per-element teardown;
// elements owning nested resources belong in an [IdList], whose Clear calls
// their hook.
func (l *List[T, PT]) Clear() {
	l.elem = nil
}
