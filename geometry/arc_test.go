package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/units"
)

func TestArcCenter_ZeroAngleHasNoCenter(t *testing.T) {
	p1 := geometry.PointFromMillimeters(0, 0)
	p2 := geometry.PointFromMillimeters(10, 0)
	_, ok := geometry.ArcCenter(p1, p2, units.AngleZero)
	require.False(t, ok)
}

func TestArcCenter_Semicircle(t *testing.T) {
	p1 := geometry.PointFromMillimeters(-5, 0)
	p2 := geometry.PointFromMillimeters(5, 0)
	center, ok := geometry.ArcCenter(p1, p2, units.FromDeg(180))
	require.True(t, ok)
	require.InDelta(t, 0, center.X().ToMillimeters(), 1e-6)
	require.InDelta(t, 0, center.Y().ToMillimeters(), 1e-6)
}

func TestArcRadius_MatchesDistanceForSemicircle(t *testing.T) {
	p1 := geometry.PointFromMillimeters(-5, 0)
	p2 := geometry.PointFromMillimeters(5, 0)
	r := geometry.ArcRadius(p1, p2, units.FromDeg(180))
	// 180° maps to -180° in [-180°, 180°), so the signed radius is negative.
	require.InDelta(t, -5, r.ToMillimeters(), 1e-6)
}

func TestArcAngle_RoundTripsWithArcCenter(t *testing.T) {
	p1 := geometry.PointFromMillimeters(-5, 0)
	p2 := geometry.PointFromMillimeters(5, 0)
	center, ok := geometry.ArcCenter(p1, p2, units.FromDeg(90))
	require.True(t, ok)
	angle := geometry.ArcAngle(p1, p2, center)
	require.InDelta(t, 90, angle.ToRad()*180/3.14159265358979, 1e-3)
}

func TestNearestPointOnLine_ClampsToSegment(t *testing.T) {
	l1 := geometry.PointFromMillimeters(0, 0)
	l2 := geometry.PointFromMillimeters(10, 0)

	before := geometry.NearestPointOnLine(geometry.PointFromMillimeters(-5, 3), l1, l2)
	require.Equal(t, l1, before)

	after := geometry.NearestPointOnLine(geometry.PointFromMillimeters(15, 3), l1, l2)
	require.Equal(t, l2, after)

	mid := geometry.NearestPointOnLine(geometry.PointFromMillimeters(5, 3), l1, l2)
	require.InDelta(t, 5, mid.X().ToMillimeters(), 1e-6)
	require.InDelta(t, 0, mid.Y().ToMillimeters(), 1e-6)
}

func TestShortestDistanceBetweenPointAndLine(t *testing.T) {
	l1 := geometry.PointFromMillimeters(0, 0)
	l2 := geometry.PointFromMillimeters(10, 0)
	dist, nearest := geometry.ShortestDistanceBetweenPointAndLine(geometry.PointFromMillimeters(5, 3), l1, l2)
	require.InDelta(t, 3, dist.Value().ToMillimeters(), 1e-6)
	require.InDelta(t, 5, nearest.X().ToMillimeters(), 1e-6)
}
