package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/geometry"
)

func TestAlignment_MirrorSwapsBothAxes(t *testing.T) {
	a := geometry.NewAlignment(geometry.HAlignLeft, geometry.VAlignTop)
	m := a.Mirror()
	require.Equal(t, geometry.HAlignRight, m.H)
	require.Equal(t, geometry.VAlignBottom, m.V)
}

func TestAlignment_MirrorHOnlyFlipsHorizontal(t *testing.T) {
	a := geometry.NewAlignment(geometry.HAlignLeft, geometry.VAlignTop)
	m := a.MirrorH()
	require.Equal(t, geometry.HAlignRight, m.H)
	require.Equal(t, geometry.VAlignTop, m.V)
}

func TestAlignment_CenterIsMirrorInvariant(t *testing.T) {
	a := geometry.NewAlignment(geometry.HAlignCenter, geometry.VAlignCenter)
	require.Equal(t, a, a.Mirror())
}

func TestHAlign_ParseRoundTrip(t *testing.T) {
	for _, h := range []geometry.HAlign{geometry.HAlignLeft, geometry.HAlignCenter, geometry.HAlignRight} {
		parsed, err := geometry.ParseHAlign(h.String())
		require.NoError(t, err)
		require.Equal(t, h, parsed)
	}
}

func TestVAlign_ParseRoundTrip(t *testing.T) {
	for _, v := range []geometry.VAlign{geometry.VAlignTop, geometry.VAlignCenter, geometry.VAlignBottom} {
		parsed, err := geometry.ParseVAlign(v.String())
		require.NoError(t, err)
		require.Equal(t, v, parsed)
	}
}

func TestParseHAlign_UnknownToken(t *testing.T) {
	_, err := geometry.ParseHAlign("nope")
	require.Error(t, err)
}
