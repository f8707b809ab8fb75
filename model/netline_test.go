package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/units"
)

func mustUnsignedLength(t *testing.T, mm float64) units.UnsignedLength {
	t.Helper()
	v, err := units.NewUnsignedLength(units.FromMillimeters(mm))
	require.NoError(t, err)
	return v
}

func mustPositiveLength(t *testing.T, mm float64) units.PositiveLength {
	t.Helper()
	v, err := units.NewPositiveLength(units.FromMillimeters(mm))
	require.NoError(t, err)
	return v
}

func TestNetLine_CanonicalizesAnchorsOnConstruction(t *testing.T) {
	pin := model.NetLineAnchorPinOf(model.NewUuid(), model.NewUuid())
	junction := model.NetLineAnchorJunctionOf(model.NewUuid())

	line := model.NewNetLine(mustUnsignedLength(t, 0.2), junction, pin)

	require.Equal(t, 0, line.P1().Cmp(pin))
	require.Equal(t, 0, line.P2().Cmp(junction))
	require.True(t, line.P1().Cmp(line.P2()) <= 0)
}

func TestNetLine_SetAnchorsRecanonicalizes(t *testing.T) {
	pin := model.NetLineAnchorPinOf(model.NewUuid(), model.NewUuid())
	junction := model.NetLineAnchorJunctionOf(model.NewUuid())
	line := model.NewNetLine(mustUnsignedLength(t, 0.2), pin, junction)

	changed := line.SetAnchors(junction, pin)
	require.False(t, changed)
}

func TestNetLine_SetWidthFiresOnChange(t *testing.T) {
	pin := model.NetLineAnchorPinOf(model.NewUuid(), model.NewUuid())
	junction := model.NetLineAnchorJunctionOf(model.NewUuid())
	line := model.NewNetLine(mustUnsignedLength(t, 0.2), pin, junction)

	var edits int
	line.OnEdited().Connect(func(e model.NetLineEdit) {
		if e.WidthChanged {
			edits++
		}
	})

	require.True(t, line.SetWidth(mustUnsignedLength(t, 0.3)))
	require.False(t, line.SetWidth(mustUnsignedLength(t, 0.3)))
	require.Equal(t, 1, edits)
}
