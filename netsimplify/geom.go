// SPDX-License-Identifier: MIT
package netsimplify

import (
	"math"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/units"
)

// isStraightLine reports whether p1 lies on the closed segment p0–p2 and
// the three points are colinear. Axis-aligned cases are decided exactly
// on integer coordinates; the general case falls back to the orthogonal
// distance from p1 to the line through p0 and p2, accepted within a
// tolerance of min(|p0p2|/100, 50nm).
func isStraightLine(p0, p1, p2 geometry.Point) bool {
	switch {
	case p0.X() == p1.X():
		return p2.X() == p1.X() && between(p1.Y(), p0.Y(), p2.Y())
	case p0.Y() == p1.Y():
		return p2.Y() == p1.Y() && between(p1.X(), p0.X(), p2.X())
	default:
		span := geometry.Distance(p0, p2).Value()
		tol := span.DivInt64(100)
		if cap50 := units.LengthFromNanometers(50); tol > cap50 {
			tol = cap50
		}
		return orthogonalDistance(p0, p1, p2) <= tol
	}
}

func between(v, a, b units.Length) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo <= v && v <= hi
}

// orthogonalDistance returns the perpendicular distance from p1 to the
// (infinite) line through p0 and p2, via a float nanometer intermediate —
// the same style of float scratch computation used throughout this
// kernel's arc math for quantities that have no exact integer form.
func orthogonalDistance(p0, p1, p2 geometry.Point) units.Length {
	x0, y0 := float64(p0.X().Nanometers()), float64(p0.Y().Nanometers())
	x1, y1 := float64(p1.X().Nanometers()), float64(p1.Y().Nanometers())
	x2, y2 := float64(p2.X().Nanometers()), float64(p2.Y().Nanometers())

	dx, dy := x2-x0, y2-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return units.Length(int64(math.Hypot(x1-x0, y1-y0)))
	}
	cross := dx*(y1-y0) - dy*(x1-x0)
	return units.LengthFromNanometers(int64(math.Round(math.Abs(cross) / length)))
}

// linesCross reports whether horizontal segment h and vertical segment v
// meet in the open interior of both, and if so returns the crossing
// point. Both segments must already be known to be horizontal and
// vertical respectively (hA.Y()==hB.Y(), vA.X()==vB.X()).
func linesCross(hA, hB, vA, vB geometry.Point) (geometry.Point, bool) {
	hy := hA.Y()
	vx := vA.X()

	hxLo, hxHi := hA.X(), hB.X()
	if hxLo > hxHi {
		hxLo, hxHi = hxHi, hxLo
	}
	vyLo, vyHi := vA.Y(), vB.Y()
	if vyLo > vyHi {
		vyLo, vyHi = vyHi, vyLo
	}

	if vx > hxLo && vx < hxHi && hy > vyLo && hy < vyHi {
		return geometry.NewPoint(vx, hy), true
	}
	return geometry.Point{}, false
}

// isHorizontal reports whether a-b is a non-degenerate horizontal segment.
func isHorizontal(a, b geometry.Point) bool { return a.Y() == b.Y() && a.X() != b.X() }

// isVertical reports whether a-b is a non-degenerate vertical segment.
func isVertical(a, b geometry.Point) bool { return a.X() == b.X() && a.Y() != b.Y() }
