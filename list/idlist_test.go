package list

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/geomcore/handleset"
)

type entityHandle uint32

type entity struct {
	Mark
	h       entityHandle
	val     int
	cleared *int
}

func (e *entity) Handle() entityHandle     { return e.h }
func (e *entity) SetHandle(h entityHandle) { e.h = h }

func (e *entity) Clear() {
	if e.cleared != nil {
		*e.cleared++
	}
}

type entityList = IdList[entity, entityHandle, *entity]

// requireSortedUnique asserts the container invariant: strictly ascending
// handle order, which also rules out duplicates.
func requireSortedUnique(t *testing.T, l *entityList) {
	t.Helper()
	var prev entityHandle
	first := true
	for p := range l.All() {
		if !first {
			require.Greater(t, p.Handle(), prev, "handles out of order")
		}
		prev = p.Handle()
		first = false
	}
}

func TestIdListAddKeepsSorted(t *testing.T) {
	var l entityList

	for _, h := range []entityHandle{5, 1, 9, 3, 7, 2, 8} {
		l.Add(entity{h: h})
		requireSortedUnique(t, &l)
	}

	require.Equal(t, 7, l.Len())
	assert.Equal(t, entityHandle(1), l.First().Handle())
}

func TestIdListAddDuplicatePanics(t *testing.T) {
	var l entityList

	l.Add(entity{h: 5})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		var ie *InvariantError
		require.ErrorAs(t, r.(error), &ie)
	}()
	l.Add(entity{h: 5})
}

func TestIdListAddAndAssignID(t *testing.T) {
	var l entityList

	h1 := l.AddAndAssignID(entity{val: 10})
	h2 := l.AddAndAssignID(entity{val: 20})

	assert.Equal(t, entityHandle(1), h1)
	assert.Equal(t, entityHandle(2), h2)
	assert.Equal(t, 10, l.FindByID(h1).val)
	assert.Equal(t, 20, l.FindByID(h2).val)
}

func TestIdListAddAndAssignIDNeverReuses(t *testing.T) {
	var l entityList

	h1 := l.AddAndAssignID(entity{})
	h2 := l.AddAndAssignID(entity{})
	require.Equal(t, entityHandle(2), h2)

	// Removing the maximum must not make its handle available again.
	l.RemoveByID(h2)
	h3 := l.AddAndAssignID(entity{})
	assert.Equal(t, entityHandle(3), h3)

	// Not even after everything is removed.
	l.RemoveByID(h1)
	l.RemoveByID(h3)
	require.True(t, l.IsEmpty())
	h4 := l.AddAndAssignID(entity{})
	assert.Equal(t, entityHandle(4), h4)
}

func TestIdListFindByID(t *testing.T) {
	var l entityList

	for i := 1; i <= 100; i++ {
		l.Add(entity{h: entityHandle(i * 3), val: i})
	}

	assert.Equal(t, 7, l.FindByID(21).val)
	assert.Equal(t, 100, l.FindByID(300).val)

	p, ok := l.FindByIDNoOops(22)
	assert.Nil(t, p)
	assert.False(t, ok)

	assert.True(t, l.Exists(21))
	assert.False(t, l.Exists(22))
}

func TestIdListFindByIDMissPanics(t *testing.T) {
	var l entityList

	l.Add(entity{h: 1})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		var ie *InvariantError
		require.ErrorAs(t, r.(error), &ie)
	}()
	l.FindByID(42)
}

func TestIdListRandomOperationSequence(t *testing.T) {
	var l entityList
	rng := rand.New(rand.NewSource(1)) // nolint gosec

	live := map[entityHandle]int{}

	for i := 0; i < 1000; i++ {
		switch rng.Intn(3) {
		case 0: // explicit handle
			h := entityHandle(rng.Intn(2000) + 1)
			if _, exists := live[h]; exists {
				break
			}
			l.Add(entity{h: h, val: i})
			live[h] = i
		case 1: // assigned handle
			h := l.AddAndAssignID(entity{val: i})
			_, exists := live[h]
			require.False(t, exists, "handle %d reused", h)
			live[h] = i
		case 2: // removal
			if len(live) == 0 {
				break
			}
			for h := range live {
				l.RemoveByID(h)
				delete(live, h)
				break
			}
		}

		requireSortedUnique(t, &l)
		require.Equal(t, len(live), l.Len())
	}

	for h, val := range live {
		assert.Equal(t, val, l.FindByID(h).val)
	}
}

func TestIdListTagAndSweep(t *testing.T) {
	var l entityList

	for i := 1; i <= 6; i++ {
		l.Add(entity{h: entityHandle(i)})
	}

	l.ClearTags()
	l.Tag(2, 1)
	l.Tag(5, 1)
	l.RemoveTagged()

	require.Equal(t, 4, l.Len())
	assert.False(t, l.Exists(2))
	assert.False(t, l.Exists(5))
	requireSortedUnique(t, &l)
}

func TestIdListTagSet(t *testing.T) {
	var l entityList

	for i := 1; i <= 10; i++ {
		l.Add(entity{h: entityHandle(i)})
	}

	sel := handleset.Of[entityHandle](2, 3, 5, 7, 99)
	l.RemoveSet(sel)

	require.Equal(t, 6, l.Len())
	for _, h := range []entityHandle{2, 3, 5, 7} {
		assert.False(t, l.Exists(h))
	}
	for _, h := range []entityHandle{1, 4, 6, 8, 9, 10} {
		assert.True(t, l.Exists(h))
	}
}

func TestIdListRemoveByID(t *testing.T) {
	var l entityList

	l.Add(entity{h: 1, val: 10})
	l.Add(entity{h: 2, val: 20})
	l.Add(entity{h: 3, val: 30})

	l.RemoveByID(2)

	require.Equal(t, 2, l.Len())
	assert.Equal(t, 10, l.FindByID(1).val)
	assert.Equal(t, 30, l.FindByID(3).val)
}

func TestIdListMoveSelfInto(t *testing.T) {
	var src, dst entityList

	src.AddAndAssignID(entity{val: 1})
	src.AddAndAssignID(entity{val: 2})

	src.MoveSelfInto(&dst)

	// Ownership transferred: source drained, destination holds the
	// elements.
	assert.True(t, src.IsEmpty())
	require.Equal(t, 2, dst.Len())
	assert.Equal(t, 1, dst.FindByID(1).val)

	// The destination continues the handle sequence, the source starts
	// over.
	assert.Equal(t, entityHandle(3), dst.AddAndAssignID(entity{}))
	assert.Equal(t, entityHandle(1), src.AddAndAssignID(entity{}))
}

func TestIdListDeepCopyInto(t *testing.T) {
	var src, dst entityList

	src.Add(entity{h: 1, val: 10})
	src.Add(entity{h: 2, val: 20})

	src.DeepCopyInto(&dst)

	require.Equal(t, 2, dst.Len())

	// Independent backing storage: mutating one side does not touch the
	// other.
	dst.FindByID(1).val = 99
	assert.Equal(t, 10, src.FindByID(1).val)

	src.RemoveByID(2)
	assert.True(t, dst.Exists(2))

	// Both sides keep the same handle history.
	assert.Equal(t, entityHandle(3), dst.AddAndAssignID(entity{}))
}

func TestIdListClearRunsTeardown(t *testing.T) {
	var l entityList

	cleared := 0
	l.Add(entity{h: 1, cleared: &cleared})
	l.Add(entity{h: 2, cleared: &cleared})

	l.Clear()

	assert.Equal(t, 2, cleared)
	assert.True(t, l.IsEmpty())

	// Clear ends the container lifetime; the handle sequence restarts.
	assert.Equal(t, entityHandle(1), l.AddAndAssignID(entity{}))
}

func TestIdListGrowthCurve(t *testing.T) {
	var l entityList

	l.Add(entity{h: 1})
	assert.Equal(t, 64, cap(l.elem))

	for i := 2; i <= 65; i++ {
		l.Add(entity{h: entityHandle(i)})
	}
	assert.Equal(t, 192, cap(l.elem))
}
