package entitylist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/entitylist"
	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/units"
)

func newJunctionAt(x, y float64) *model.Junction {
	return model.NewJunction(geometry.NewPoint(units.FromMillimeters(x), units.FromMillimeters(y)))
}

func TestList_AppendAndQuery(t *testing.T) {
	l := entitylist.New[*model.Junction]()
	require.True(t, l.IsEmpty())

	a := newJunctionAt(0, 0)
	b := newJunctionAt(1, 1)
	l.Append(a)
	l.Append(b)

	require.Equal(t, 2, l.Len())
	require.False(t, l.IsEmpty())
	require.Same(t, a, l.At(0))
	require.Same(t, b, l.At(1))

	first, ok := l.First()
	require.True(t, ok)
	require.Same(t, a, first)

	last, ok := l.Last()
	require.True(t, ok)
	require.Same(t, b, last)

	require.True(t, l.Contains(a.Uuid()))
	idx, ok := l.IndexOfUuid(b.Uuid())
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestList_InsertShiftsLaterElements(t *testing.T) {
	l := entitylist.New[*model.Junction]()
	a := newJunctionAt(0, 0)
	b := newJunctionAt(1, 1)
	c := newJunctionAt(2, 2)
	l.Append(a)
	l.Append(c)
	l.Insert(1, b)

	require.Equal(t, []*model.Junction{a, b, c}, l.Values())
}

func TestList_GetByUuid_NotFound(t *testing.T) {
	l := entitylist.New[*model.Junction]()
	_, err := l.GetByUuid(model.NewUuid())
	require.Error(t, err)
}

func TestList_TakeAndRemoveByUuid(t *testing.T) {
	l := entitylist.New[*model.Junction]()
	a := newJunctionAt(0, 0)
	b := newJunctionAt(1, 1)
	l.Append(a)
	l.Append(b)

	taken := l.Take(0)
	require.Same(t, a, taken)
	require.Equal(t, 1, l.Len())
	require.Same(t, b, l.At(0))

	require.True(t, l.RemoveByUuid(b.Uuid()))
	require.True(t, l.IsEmpty())
	require.False(t, l.RemoveByUuid(b.Uuid()))
}

func TestList_Swap(t *testing.T) {
	l := entitylist.New[*model.Junction]()
	a := newJunctionAt(0, 0)
	b := newJunctionAt(1, 1)
	l.Append(a)
	l.Append(b)
	l.Swap(0, 1)
	require.Same(t, b, l.At(0))
	require.Same(t, a, l.At(1))
}

func TestList_ClearRemovesInReverseOrder(t *testing.T) {
	l := entitylist.New[*model.Junction]()
	a, b, c := newJunctionAt(0, 0), newJunctionAt(1, 1), newJunctionAt(2, 2)
	l.Append(a)
	l.Append(b)
	l.Append(c)

	var removedOrder []int
	l.OnRemoved().Connect(func(e entitylist.ElementRemoved) {
		removedOrder = append(removedOrder, e.Index)
	})
	l.Clear()

	require.True(t, l.IsEmpty())
	require.Equal(t, []int{2, 1, 0}, removedOrder)
}

func TestList_OnAddedFiresWithIndex(t *testing.T) {
	l := entitylist.New[*model.Junction]()
	var got []int
	l.OnAdded().Connect(func(e entitylist.ElementAdded) { got = append(got, e.Index) })

	l.Append(newJunctionAt(0, 0))
	l.Append(newJunctionAt(1, 1))
	l.Insert(0, newJunctionAt(-1, -1))

	require.Equal(t, []int{0, 1, 0}, got)
}

func TestList_ForwardsElementEditsWithCurrentIndex(t *testing.T) {
	l := entitylist.New[*model.Junction]()
	a := newJunctionAt(0, 0)
	b := newJunctionAt(1, 1)
	l.Append(a)
	l.Append(b)

	var editedIndex int
	var calls int
	l.OnEdited().Connect(func(e entitylist.ElementEdited) {
		editedIndex = e.Index
		calls++
	})

	b.SetPosition(geometry.NewPoint(units.FromMillimeters(5), units.FromMillimeters(5)))
	require.Equal(t, 1, calls)
	require.Equal(t, 1, editedIndex)

	// Reorder, then edit the element now at a different index: the list
	// must report the index at emit time, not at subscribe time.
	l.Swap(0, 1)
	a.SetPosition(geometry.NewPoint(units.FromMillimeters(9), units.FromMillimeters(9)))
	require.Equal(t, 2, calls)
	require.Equal(t, 1, editedIndex)
}

func TestList_TakeStopsForwardingEdits(t *testing.T) {
	l := entitylist.New[*model.Junction]()
	a := newJunctionAt(0, 0)
	l.Append(a)

	var calls int
	l.OnEdited().Connect(func(entitylist.ElementEdited) { calls++ })

	l.Take(0)
	a.SetPosition(geometry.NewPoint(units.FromMillimeters(3), units.FromMillimeters(3)))
	require.Equal(t, 0, calls)
}

func TestList_ValuesIsACopy(t *testing.T) {
	l := entitylist.New[*model.Junction]()
	a := newJunctionAt(0, 0)
	l.Append(a)

	vs := l.Values()
	vs[0] = newJunctionAt(9, 9)
	require.Same(t, a, l.At(0))
}
