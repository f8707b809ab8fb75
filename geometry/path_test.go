package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/units"
)

func onePointMm(x, y float64) geometry.Point { return geometry.PointFromMillimeters(x, y) }

func TestPath_IsClosed(t *testing.T) {
	open := geometry.NewPath(
		geometry.NewVertex(onePointMm(0, 0), units.AngleZero),
		geometry.NewVertex(onePointMm(1, 0), units.AngleZero),
	)
	require.False(t, open.IsClosed())

	closed, did := open.Close()
	require.True(t, did)
	require.True(t, closed.IsClosed())
}

func TestPath_CleanRemovesDuplicates(t *testing.T) {
	p := geometry.NewPath(
		geometry.NewVertex(onePointMm(0, 0), units.AngleZero),
		geometry.NewVertex(onePointMm(0, 0), units.AngleZero),
		geometry.NewVertex(onePointMm(1, 0), units.AngleZero),
	)
	cleaned, modified := p.Clean()
	require.True(t, modified)
	require.Len(t, cleaned.Vertices(), 2)
}

func TestPath_ReverseIsInvolution(t *testing.T) {
	p := geometry.NewPath(
		geometry.NewVertex(onePointMm(0, 0), units.FromDeg(30)),
		geometry.NewVertex(onePointMm(1, 0), units.FromDeg(-45)),
		geometry.NewVertex(onePointMm(2, 1), units.AngleZero),
	)
	require.Equal(t, p, p.Reverse().Reverse())
}

func TestPath_MirrorTwiceIsIdentity(t *testing.T) {
	p := geometry.NewPath(
		geometry.NewVertex(onePointMm(1, 2), units.FromDeg(30)),
		geometry.NewVertex(onePointMm(3, -4), units.AngleZero),
	)
	mirrored := p.Mirror(geometry.Horizontal, geometry.Origin).Mirror(geometry.Horizontal, geometry.Origin)
	require.Equal(t, p, mirrored)
}

func TestPath_FlattenArcsStaysWithinTolerance(t *testing.T) {
	p := geometry.NewPath(
		geometry.NewVertex(onePointMm(-5, 0), units.FromDeg(180)),
		geometry.NewVertex(onePointMm(5, 0), units.AngleZero),
	)
	tol := units.MustPositiveLength(units.FromMillimeters(0.01))
	flat := p.FlattenArcs(tol)
	require.False(t, flat.IsCurved())
	require.GreaterOrEqual(t, len(flat.Vertices()), 3)

	center := onePointMm(0, 0)
	for _, v := range flat.Vertices() {
		dist := geometry.Distance(v.Pos(), center)
		require.InDelta(t, 5, dist.Value().ToMillimeters(), 0.02)
	}
}

func TestPath_ToOutlineStrokesSingleVertexYieldsCircle(t *testing.T) {
	p := geometry.NewPath(geometry.NewVertex(onePointMm(0, 0), units.AngleZero))
	width := units.MustPositiveLength(units.FromMillimeters(1))
	strokes := p.ToOutlineStrokes(width)
	require.Len(t, strokes, 1)
}

func TestPath_ToOutlineStrokesStraightSegment(t *testing.T) {
	p := geometry.NewPath(
		geometry.NewVertex(onePointMm(0, 0), units.AngleZero),
		geometry.NewVertex(onePointMm(10, 0), units.AngleZero),
	)
	width := units.MustPositiveLength(units.FromMillimeters(1))
	strokes := p.ToOutlineStrokes(width)
	require.Len(t, strokes, 1)
	require.True(t, strokes[0].IsClosed())
}

func TestObround_SquareDegeneratesToSemicircles(t *testing.T) {
	diameter := units.MustPositiveLength(units.FromMillimeters(2))
	p := geometry.Circle(diameter)
	require.True(t, p.IsCurved())
}

func TestCenteredRect_ZeroRadiusIsPlainRectangle(t *testing.T) {
	w := units.MustPositiveLength(units.FromMillimeters(4))
	h := units.MustPositiveLength(units.FromMillimeters(2))
	zero, _ := units.NewUnsignedLength(units.Zero)
	rect := geometry.CenteredRect(w, h, zero)
	require.False(t, rect.IsCurved())
	require.True(t, rect.IsClosed())
}

func TestCenteredRect_OverlargeRadiusDegeneratesToObround(t *testing.T) {
	w := units.MustPositiveLength(units.FromMillimeters(4))
	h := units.MustPositiveLength(units.FromMillimeters(2))
	tooLarge, _ := units.NewUnsignedLength(units.FromMillimeters(5))
	rect := geometry.CenteredRect(w, h, tooLarge)
	require.True(t, rect.IsCurved())
}

func TestRect_HasFourCornersAndIsClosed(t *testing.T) {
	p := geometry.Rect(onePointMm(0, 0), onePointMm(3, 2))
	require.True(t, p.IsClosed())
	require.Len(t, p.Vertices(), 5)
}
