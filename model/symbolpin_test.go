package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/units"
)

func TestSymbolPin_Basics(t *testing.T) {
	pin := model.NewSymbolPin(
		"1", geometry.Origin, mustUnsignedLength(t, 2.54), units.Angle(0),
		geometry.PointFromMillimeters(3, 0), units.Angle(0), mustPositiveLength(t, 1),
		geometry.NewAlignment(geometry.HAlignLeft, geometry.VAlignCenter),
	)
	require.Equal(t, "1", pin.Name())
	require.Equal(t, geometry.Origin, pin.Position())
}
