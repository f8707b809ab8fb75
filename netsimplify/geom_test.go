package netsimplify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/units"
)

func TestIsStraightLine_AxisAligned(t *testing.T) {
	p0 := geometry.PointFromMillimeters(0, 0)
	mid := geometry.PointFromMillimeters(5, 0)
	p2 := geometry.PointFromMillimeters(10, 0)
	require.True(t, isStraightLine(p0, mid, p2))

	beyond := geometry.PointFromMillimeters(15, 0)
	require.False(t, isStraightLine(p0, beyond, p2))

	offAxis := geometry.PointFromMillimeters(5, 1)
	require.False(t, isStraightLine(p0, offAxis, p2))
}

func TestIsStraightLine_DiagonalWithinTolerance(t *testing.T) {
	p0 := geometry.PointFromMillimeters(0, 0)
	p2 := geometry.PointFromMillimeters(10, 10)
	onLine := geometry.PointFromMillimeters(5, 5)
	require.True(t, isStraightLine(p0, onLine, p2))

	farOff := geometry.PointFromMillimeters(5, 8)
	require.False(t, isStraightLine(p0, farOff, p2))
}

func TestLinesCross_OpenInteriorOnly(t *testing.T) {
	hA, hB := geometry.PointFromMillimeters(0, 0), geometry.PointFromMillimeters(10, 0)
	vA, vB := geometry.PointFromMillimeters(5, -5), geometry.PointFromMillimeters(5, 5)
	pt, ok := linesCross(hA, hB, vA, vB)
	require.True(t, ok)
	require.Equal(t, geometry.PointFromMillimeters(5, 0), pt)

	// Vertical segment touches the horizontal one only at its endpoint:
	// not an open-interior crossing.
	vA2, vB2 := geometry.PointFromMillimeters(0, -5), geometry.PointFromMillimeters(0, 5)
	_, ok = linesCross(hA, hB, vA2, vB2)
	require.False(t, ok)
}

func TestSplitLinesAtIntermediateAnchors_OverflowRevertsToUnsplitState(t *testing.T) {
	const layer = model.LayerTopCopper
	w, err := units.NewPositiveLength(units.FromMillimeters(0.2))
	require.NoError(t, err)

	start := Anchor{ID: model.NewUuid(), Kind: AnchorPinOrPad, Position: geometry.PointFromMillimeters(0, 0), Layers: model.SingleLayer(layer)}
	end := Anchor{ID: model.NewUuid(), Kind: AnchorPinOrPad, Position: geometry.PointFromMillimeters(20, 0), Layers: model.SingleLayer(layer)}

	seg := &Segment{Anchors: []Anchor{start, end}, Lines: []Line{{ID: model.NewUuid(), A: start.ID, B: end.ID, Layer: layer, Width: w}}}

	// 19 evenly spaced anchors between start and end: resolving them all
	// would need far more than the 2*1+10=12 line safety cap.
	for x := 1; x < 20; x++ {
		seg.Anchors = append(seg.Anchors, Anchor{
			ID:       model.NewUuid(),
			Kind:     AnchorPinOrPad,
			Position: geometry.PointFromMillimeters(float64(x), 0),
			Layers:   model.SingleLayer(layer),
		})
	}

	res := Result{NewJunctions: map[model.Uuid]geometry.Point{}}
	splitLinesAtIntermediateAnchors(seg, &res)

	require.True(t, res.SplitOverflow)
	require.False(t, res.Modified)
	require.Len(t, seg.Lines, 1)
}
