package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/sexpr"
	"github.com/katalvlaran/edakernel/units"
)

func TestNetLine_SerializeDeserialize_RoundTrip(t *testing.T) {
	pin := model.NetLineAnchorPinOf(model.NewUuid(), model.NewUuid())
	junction := model.NetLineAnchorJunctionOf(model.NewUuid())
	line := model.NewNetLine(mustUnsignedLength(t, 0.2), pin, junction)

	parsed := roundTrip(t, line.Serialize())
	got, err := model.DeserializeNetLine(parsed)
	require.NoError(t, err)
	require.Equal(t, line.Uuid(), got.Uuid())
	require.Equal(t, 0, line.P1().Cmp(got.P1()))
	require.Equal(t, 0, line.P2().Cmp(got.P2()))
}

func TestTrace_SerializeDeserialize_RoundTrip(t *testing.T) {
	via := model.TraceAnchorViaOf(model.NewUuid())
	footprintPad := model.TraceAnchorFootprintPadOf(model.NewUuid(), model.NewUuid())
	trace := model.NewTrace(model.LayerTopCopper, mustPositiveLength(t, 0.25), via, footprintPad)

	parsed := roundTrip(t, trace.Serialize())
	got, err := model.DeserializeTrace(parsed)
	require.NoError(t, err)
	require.Equal(t, trace.Uuid(), got.Uuid())
	require.Equal(t, trace.Layer(), got.Layer())
	require.Equal(t, trace.Width().Value(), got.Width().Value())
	require.Equal(t, 0, trace.P1().Cmp(got.P1()))
	require.Equal(t, 0, trace.P2().Cmp(got.P2()))
}

func TestPolygon_SerializeDeserialize_RoundTrip(t *testing.T) {
	path := geometry.NewPath(
		geometry.NewVertex(geometry.PointFromMillimeters(0, 0), units.AngleZero),
		geometry.NewVertex(geometry.PointFromMillimeters(1, 1), units.AngleZero),
	)
	poly := model.NewPolygon(model.LayerTopSilkscreen, mustUnsignedLength(t, 0.15), true, false, path)

	parsed := roundTrip(t, poly.Serialize())
	got, err := model.DeserializePolygon(parsed)
	require.NoError(t, err)
	require.Equal(t, poly.Uuid(), got.Uuid())
	require.Equal(t, poly.Layer(), got.Layer())
	require.True(t, got.IsFilled())
	require.False(t, got.IsGrabArea())
	require.Equal(t, poly.Path().Vertices(), got.Path().Vertices())
}

func TestZone_SerializeDeserialize_RoundTrip(t *testing.T) {
	path := geometry.NewPath(
		geometry.NewVertex(geometry.PointFromMillimeters(0, 0), units.AngleZero),
		geometry.NewVertex(geometry.PointFromMillimeters(2, 0), units.AngleZero),
	)
	zone := model.NewZone(model.ZoneLayerTop|model.ZoneLayerBottom, model.ZoneRuleNoCopper, path)

	parsed := roundTrip(t, zone.Serialize())
	got, err := model.DeserializeZone(parsed)
	require.NoError(t, err)
	require.Equal(t, zone.Uuid(), got.Uuid())
	require.Equal(t, zone.Layers(), got.Layers())
	require.Equal(t, zone.Rules(), got.Rules())
	require.True(t, got.HasLayer(model.ZoneLayerTop))
	require.True(t, got.HasRule(model.ZoneRuleNoCopper))
}

func TestStrokeText_SerializeDeserialize_RoundTrip(t *testing.T) {
	alignment := geometry.NewAlignment(geometry.HAlignLeft, geometry.VAlignTop)
	text := model.NewStrokeText(
		model.LayerTopSilkscreen, "REF**", geometry.PointFromMillimeters(3, 4),
		units.FromDeg(90), mustPositiveLength(t, 1.0), mustUnsignedLength(t, 0.2),
		model.AutoStrokeTextSpacing(), model.ExplicitStrokeTextSpacing(units.RatioFromPercent(150)),
		alignment, true, false,
	)

	parsed := roundTrip(t, text.Serialize())
	got, err := model.DeserializeStrokeText(parsed)
	require.NoError(t, err)
	require.Equal(t, text.Uuid(), got.Uuid())
	require.Equal(t, text.Text(), got.Text())
	require.True(t, got.LetterSpacing().IsAuto())
	gotRatio, ok := got.LineSpacing().Ratio()
	require.True(t, ok)
	wantRatio, _ := text.LineSpacing().Ratio()
	require.Equal(t, wantRatio, gotRatio)
	require.Equal(t, text.Alignment(), got.Alignment())
	require.True(t, got.Mirrored())
	require.False(t, got.AutoRotate())
}

func TestImage_SerializeDeserialize_RoundTrip(t *testing.T) {
	border := mustUnsignedLength(t, 0.1)
	img := model.NewImage("logo.png", model.ImageFormatPng, geometry.PointFromMillimeters(0, 0),
		units.AngleZero, mustPositiveLength(t, 10), mustPositiveLength(t, 5), &border)

	parsed := roundTrip(t, img.Serialize())
	got, err := model.DeserializeImage(parsed)
	require.NoError(t, err)
	require.Equal(t, img.Uuid(), got.Uuid())
	require.Equal(t, img.FileName(), got.FileName())
	require.Equal(t, img.Format(), got.Format())
	gotBorder, ok := got.BorderWidth()
	require.True(t, ok)
	require.Equal(t, border.Value(), gotBorder.Value())

	imgNoBorder := model.NewImage("a.svg", model.ImageFormatSvg, geometry.PointFromMillimeters(0, 0),
		units.AngleZero, mustPositiveLength(t, 10), mustPositiveLength(t, 5), nil)
	parsed2 := roundTrip(t, imgNoBorder.Serialize())
	got2, err := model.DeserializeImage(parsed2)
	require.NoError(t, err)
	_, ok2 := got2.BorderWidth()
	require.False(t, ok2)
}

func TestSymbolPin_SerializeDeserialize_RoundTrip(t *testing.T) {
	alignment := geometry.NewAlignment(geometry.HAlignCenter, geometry.VAlignCenter)
	pin := model.NewSymbolPin("A1", geometry.PointFromMillimeters(0, 0), mustUnsignedLength(t, 2.54),
		units.AngleZero, geometry.PointFromMillimeters(3, 0), units.AngleZero, mustPositiveLength(t, 1), alignment)

	parsed := roundTrip(t, pin.Serialize())
	got, err := model.DeserializeSymbolPin(parsed)
	require.NoError(t, err)
	require.Equal(t, pin.Uuid(), got.Uuid())
	require.Equal(t, pin.Name(), got.Name())
	require.Equal(t, pin.Position(), got.Position())
	require.Equal(t, pin.Length().Value(), got.Length().Value())
	require.Equal(t, pin.NamePosition(), got.NamePosition())
	require.Equal(t, pin.NameHeight().Value(), got.NameHeight().Value())
	require.Equal(t, pin.NameAlignment(), got.NameAlignment())
}

func TestPad_SerializeDeserialize_RoundTrip(t *testing.T) {
	cornerRadius, err := units.NewUnsignedLimitedRatio(units.RatioFromPercent(25))
	require.NoError(t, err)
	hole := model.NewPadHole(mustPositiveLength(t, 0.8), geometry.NewPath(
		geometry.NewVertex(geometry.PointFromMillimeters(0, 0), units.AngleZero),
	))
	pad := model.NewPad(
		geometry.PointFromMillimeters(1, 1), units.AngleZero, model.PadShapeRoundedRect,
		mustPositiveLength(t, 1.5), mustPositiveLength(t, 1.0), cornerRadius,
		geometry.Path{}, model.MaskConfigAuto(), model.MaskConfigOff(),
		mustUnsignedLength(t, 0.05), model.ComponentSideTop, model.PadFunctionStandardPad,
		[]*model.PadHole{hole},
	)

	parsed := roundTrip(t, pad.Serialize())
	got, err := model.DeserializePad(parsed)
	require.NoError(t, err)
	require.Equal(t, pad.Uuid(), got.Uuid())
	require.Equal(t, pad.Shape(), got.Shape())
	require.Equal(t, pad.Width().Value(), got.Width().Value())
	require.Equal(t, pad.Height().Value(), got.Height().Value())
	require.Equal(t, pad.CornerRadius().Value(), got.CornerRadius().Value())
	require.Equal(t, pad.ComponentSide(), got.ComponentSide())
	require.Equal(t, pad.Function(), got.Function())
	require.Len(t, got.Holes(), 1)
	require.Equal(t, hole.Diameter().Value(), got.Holes()[0].Diameter().Value())
}

func TestDeserializeNetLine_RejectsUnknownAnchorKind(t *testing.T) {
	bad := sexpr.NewList("net_line",
		sexpr.NewToken(model.NewUuid().String()),
		sexpr.NewToken("0.000000"),
		sexpr.NewList("bogus_anchor", sexpr.NewToken(model.NewUuid().String())),
		sexpr.NewList("junction", sexpr.NewToken(model.NewUuid().String())),
	)
	_, err := model.DeserializeNetLine(bad)
	require.Error(t, err)
}

func TestDeserializeZone_RejectsNonIntegerLayers(t *testing.T) {
	bad := sexpr.NewList("zone",
		sexpr.NewToken(model.NewUuid().String()),
		sexpr.NewToken("not-a-number"),
		sexpr.NewToken("0"),
		sexpr.NewList("path"),
	)
	_, err := model.DeserializeZone(bad)
	require.Error(t, err)
}
