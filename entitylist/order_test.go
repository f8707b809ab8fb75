package entitylist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/entitylist"
	"github.com/katalvlaran/edakernel/model"
)

func TestIndexOfName_AndGetByName(t *testing.T) {
	l := entitylist.New[*model.Bus]()
	l.Append(model.NewBus("DATA"))
	l.Append(model.NewBus("ADDR"))

	idx, ok := entitylist.IndexOfName(l, "ADDR")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	bus, err := entitylist.GetByName(l, "DATA")
	require.NoError(t, err)
	require.Equal(t, "DATA", bus.Name())

	_, err = entitylist.GetByName(l, "MISSING")
	require.Error(t, err)
}

func TestSortedByUuid_DoesNotMutateOriginal(t *testing.T) {
	l := entitylist.New[*model.Bus]()
	a := model.NewBus("A")
	b := model.NewBus("B")
	l.Append(a)
	l.Append(b)

	sorted := entitylist.SortedByUuid(l)
	require.Equal(t, 2, sorted.Len())
	require.Equal(t, l.Values(), []*model.Bus{a, b}) // original order untouched

	uA, uB := sorted.At(0).Uuid(), sorted.At(1).Uuid()
	require.True(t, uA.Cmp(uB) <= 0)
}

func TestSortedBy_CustomComparator(t *testing.T) {
	l := entitylist.New[*model.Bus]()
	l.Append(model.NewBus("ZETA"))
	l.Append(model.NewBus("ALPHA"))

	byName := entitylist.SortedBy(l, func(a, b *model.Bus) bool { return a.Name() < b.Name() })
	require.Equal(t, "ALPHA", byName.At(0).Name())
	require.Equal(t, "ZETA", byName.At(1).Name())
}
