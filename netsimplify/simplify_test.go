package netsimplify_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/netsimplify"
	"github.com/katalvlaran/edakernel/units"
)

func mustWidth(t *testing.T, mm float64) units.PositiveLength {
	t.Helper()
	w, err := units.NewPositiveLength(units.FromMillimeters(mm))
	require.NoError(t, err)
	return w
}

func pinAt(x, y float64, layer model.Layer) netsimplify.Anchor {
	return netsimplify.Anchor{
		ID:       model.NewUuid(),
		Kind:     netsimplify.AnchorPinOrPad,
		Position: geometry.PointFromMillimeters(x, y),
		Layers:   model.SingleLayer(layer),
	}
}

func lineBetween(a, b netsimplify.Anchor, layer model.Layer, w units.PositiveLength) netsimplify.Line {
	return netsimplify.Line{ID: model.NewUuid(), A: a.ID, B: b.ID, Layer: layer, Width: w}
}

func TestSimplify_AddsJunctionAtOrthogonalCrossingAndSplitsBothLines(t *testing.T) {
	const layer = model.LayerTopCopper
	w := mustWidth(t, 0.2)

	p1 := pinAt(0, 0, layer)
	p2 := pinAt(10, 0, layer)
	p3 := pinAt(5, -5, layer)
	p4 := pinAt(5, 5, layer)

	h := lineBetween(p1, p2, layer, w)
	v := lineBetween(p3, p4, layer, w)

	seg := &netsimplify.Segment{
		Anchors: []netsimplify.Anchor{p1, p2, p3, p4},
		Lines:   []netsimplify.Line{h, v},
	}

	res := netsimplify.Simplify(seg)

	require.True(t, res.Modified)
	require.Len(t, res.NewJunctions, 1)
	require.Len(t, seg.Lines, 4)
	require.Empty(t, res.DisconnectedPinsOrPads)

	var junctionID model.Uuid
	for id := range res.NewJunctions {
		junctionID = id
	}
	touchesJunction := 0
	for _, ln := range seg.Lines {
		if ln.A == junctionID || ln.B == junctionID {
			touchesJunction++
		}
	}
	require.Equal(t, 4, touchesJunction)
}

func TestSimplify_MergesColinearThroughJunction(t *testing.T) {
	const layer = model.LayerTopCopper
	w := mustWidth(t, 0.2)

	p1 := pinAt(0, 0, layer)
	p2 := pinAt(10, 0, layer)
	j := netsimplify.Anchor{
		ID:       model.NewUuid(),
		Kind:     netsimplify.AnchorJunction,
		Position: geometry.PointFromMillimeters(5, 0),
		Layers:   model.SingleLayer(layer),
	}

	seg := &netsimplify.Segment{
		Anchors: []netsimplify.Anchor{p1, p2, j},
		Lines: []netsimplify.Line{
			lineBetween(p1, j, layer, w),
			lineBetween(j, p2, layer, w),
		},
	}

	res := netsimplify.Simplify(seg)

	require.True(t, res.Modified)
	require.Len(t, seg.Lines, 1)
	merged := seg.Lines[0]
	require.ElementsMatch(t, []model.Uuid{p1.ID, p2.ID}, []model.Uuid{merged.A, merged.B})
}

func TestSimplify_RemovesRedundantThinnerLine(t *testing.T) {
	const layer = model.LayerTopCopper
	thick := mustWidth(t, 0.3)
	thin := mustWidth(t, 0.1)

	p1 := pinAt(0, 0, layer)
	p2 := pinAt(10, 0, layer)

	l1 := lineBetween(p1, p2, layer, thick)
	l2 := netsimplify.Line{ID: model.NewUuid(), A: p2.ID, B: p1.ID, Layer: layer, Width: thin}

	seg := &netsimplify.Segment{
		Anchors: []netsimplify.Anchor{p1, p2},
		Lines:   []netsimplify.Line{l1, l2},
	}

	res := netsimplify.Simplify(seg)

	require.True(t, res.Modified)
	require.Len(t, seg.Lines, 1)
	require.Equal(t, thick.Value(), seg.Lines[0].Width.Value())
}

func TestSimplify_DisconnectsPinWhenDuplicateJunctionCollapsesItsOnlyLine(t *testing.T) {
	const layer = model.LayerTopCopper
	w := mustWidth(t, 0.2)

	p1 := pinAt(0, 0, layer)
	j := netsimplify.Anchor{
		ID:       model.NewUuid(),
		Kind:     netsimplify.AnchorJunction,
		Position: p1.Position, // exactly coincident with the pin
		Layers:   model.SingleLayer(layer),
	}

	seg := &netsimplify.Segment{
		Anchors: []netsimplify.Anchor{p1, j},
		Lines:   []netsimplify.Line{lineBetween(p1, j, layer, w)},
	}

	res := netsimplify.Simplify(seg)

	require.True(t, res.Modified)
	require.Empty(t, seg.Lines)
	require.Equal(t, []model.Uuid{p1.ID}, res.DisconnectedPinsOrPads)
}

func TestSimplify_NoOpOnAlreadyCanonicalSegment(t *testing.T) {
	const layer = model.LayerTopCopper
	w := mustWidth(t, 0.2)

	p1 := pinAt(0, 0, layer)
	p2 := pinAt(10, 10, layer)

	seg := &netsimplify.Segment{
		Anchors: []netsimplify.Anchor{p1, p2},
		Lines:   []netsimplify.Line{lineBetween(p1, p2, layer, w)},
	}

	res := netsimplify.Simplify(seg)

	require.False(t, res.Modified)
	require.Len(t, seg.Lines, 1)
	require.Empty(t, res.NewJunctions)
	require.Empty(t, res.DisconnectedPinsOrPads)
}

func TestSimplifier_WithLogger_WarnsOnSplitOverflow(t *testing.T) {
	const layer = model.LayerTopCopper
	w := mustWidth(t, 0.2)

	start := pinAt(0, 0, layer)
	end := pinAt(20, 0, layer)
	seg := &netsimplify.Segment{
		Anchors: []netsimplify.Anchor{start, end},
		Lines:   []netsimplify.Line{lineBetween(start, end, layer, w)},
	}
	for x := 1; x < 20; x++ {
		seg.Anchors = append(seg.Anchors, pinAt(float64(x), 0, layer))
	}

	var buf bytes.Buffer
	s := netsimplify.NewSimplifier(netsimplify.WithLogger(log.New(&buf, "", 0)))
	res := s.Simplify(seg)

	require.True(t, res.SplitOverflow)
	require.NotEmpty(t, buf.String())
}
