// SPDX-License-Identifier: MIT
package geometry

import (
	"math"

	"github.com/katalvlaran/edakernel/units"
)

// ArcRadius returns the radius of the arc from p1 to p2 sweeping through
// angle a. The result is signed: it takes the sign of a mapped into
// [-180°, 180°), so a negative angle, and a 180° sweep (which maps to
// -180°), give a negative radius. A zero angle has no well-defined radius
// and returns zero.
// Grounded on Toolbox::arcRadius in LibrePCB's core/utils/toolbox.cpp.
func ArcRadius(p1, p2 Point, a units.Angle) units.Length {
	if a.MicroDeg() == 0 {
		return 0
	}
	x1, y1 := p1.x.ToMillimeters(), p1.y.ToMillimeters()
	x2, y2 := p2.x.ToMillimeters(), p2.y.ToMillimeters()
	rad := a.MapTo180().ToRad()
	d := math.Hypot(x2-x1, y2-y1)
	r := d / (2 * math.Sin(rad/2))
	return units.FromMillimeters(r)
}

// ArcCenter returns the center of the arc from p1 to p2 sweeping through
// angle a, and false if a is zero (no arc, p1/p2 are joined by a straight
// line and have no center). Grounded on Toolbox::arcCenter.
func ArcCenter(p1, p2 Point, a units.Angle) (Point, bool) {
	if a.MicroDeg() == 0 {
		return Midpoint(p1, p2), false
	}
	x0, y0 := p1.x.ToMillimeters(), p1.y.ToMillimeters()
	x1, y1 := p2.x.ToMillimeters(), p2.y.ToMillimeters()
	rad := a.MapTo180().ToRad()
	sign := 1.0
	if rad < 0 {
		sign = -1.0
	}
	d := math.Hypot(x1-x0, y1-y0)
	r := d / (2 * math.Sin(rad/2))
	h := math.Sqrt(math.Max(r*r-d*d/4, 0))
	u := (x1 - x0) / d
	v := (y1 - y0) / d
	cx := (x0+x1)/2 - h*v*sign
	cy := (y0+y1)/2 + h*u*sign
	return PointFromMillimeters(cx, cy), true
}

// ArcAngle returns the sweep angle, in [0, 360) degrees, of the arc from
// p1 to p2 around center. Returns zero if either point coincides with
// center. Grounded on Toolbox::arcAngle.
func ArcAngle(p1, p2, center Point) units.Angle {
	d1 := p1.Sub(center)
	d2 := p2.Sub(center)
	if d1.IsOrigin() || d2.IsOrigin() {
		return units.AngleZero
	}
	a1 := math.Atan2(d1.y.ToMillimeters(), d1.x.ToMillimeters())
	a2 := math.Atan2(d2.y.ToMillimeters(), d2.x.ToMillimeters())
	return units.FromRad(a2 - a1).MapTo0360()
}

// NearestPointOnLine returns the closest point to p on the segment l1-l2
// (clamped to the segment's endpoints, not the infinite line through
// them). Grounded on Toolbox::nearestPointOnLine.
func NearestPointOnLine(p, l1, l2 Point) Point {
	a := l2.Sub(l1)
	b := p.Sub(l1)
	c := p.Sub(l2)
	ax, ay := a.x.ToMillimeters(), a.y.ToMillimeters()
	d := b.x.ToMillimeters()*ax + b.y.ToMillimeters()*ay
	e := ax*ax + ay*ay
	switch {
	case a.IsOrigin() || b.IsOrigin() || d <= 0:
		return l1
	case c.IsOrigin() || e <= d:
		return l2
	default:
		return l1.Add(PointFromMillimeters(ax*d/e, ay*d/e))
	}
}

// ShortestDistanceBetweenPointAndLine returns the distance from p to the
// segment l1-l2, and the nearest point realizing that distance. Grounded
// on Toolbox::shortestDistanceBetweenPointAndLine.
func ShortestDistanceBetweenPointAndLine(p, l1, l2 Point) (units.UnsignedLength, Point) {
	nearest := NearestPointOnLine(p, l1, l2)
	return Distance(p, nearest), nearest
}

// flatArc approximates the arc from p1 to p2 (sweep angle a) with straight
// line segments such that no point on the approximation deviates from the
// true arc by more than maxTolerance. Falls back to a single straight
// segment when the angle is zero or the arc is small enough that one
// segment already satisfies the tolerance. Grounded on Path::flatArc.
func flatArc(p1, p2 Point, a units.Angle, maxTolerance units.PositiveLength) Path {
	center, ok := ArcCenter(p1, p2, a)
	if !ok {
		return line(p1, p2, units.AngleZero)
	}
	radius := Distance(p1, center)
	tol := maxTolerance.Value()
	if radius.Value() <= tol.DivInt64(2) {
		return line(p1, p2, units.AngleZero)
	}
	radiusNm := float64(radius.Value().Nanometers())
	tolNm := float64(tol.Nanometers())
	y := clampFloat(tolNm, 0, radiusNm/4)
	stepsPerRad := math.Min(0.5/math.Acos(1-y/radiusNm), radiusNm/2)
	steps := int(math.Ceil(stepsPerRad * a.Abs().ToRad()))
	if steps < 1 {
		steps = 1
	}

	p := Path{}
	p.vertices = append(p.vertices, NewVertex(p1, units.AngleZero))
	angleDelta := float64(a.MicroDeg()) / float64(steps)
	for i := 1; i < steps; i++ {
		rotated := p1.Rotated(units.AngleFromMicroDeg(int32(angleDelta*float64(i))), center)
		p.vertices = append(p.vertices, NewVertex(rotated, units.AngleZero))
	}
	p.vertices = append(p.vertices, NewVertex(p2, units.AngleZero))
	return p
}

func clampFloat(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
