// SPDX-License-Identifier: MIT
package geometry

import (
	"math"

	"github.com/katalvlaran/edakernel/units"
)

// Point is an exact 2D coordinate in nanometers.
type Point struct {
	x units.Length
	y units.Length
}

// Origin is (0, 0).
var Origin = Point{}

// NewPoint builds a Point from its two Length components.
func NewPoint(x, y units.Length) Point { return Point{x: x, y: y} }

// PointFromMillimeters builds a Point from millimeter floats, rounding each
// axis independently to the nearest nanometer.
func PointFromMillimeters(xMm, yMm float64) Point {
	return Point{x: units.FromMillimeters(xMm), y: units.FromMillimeters(yMm)}
}

// X returns the x coordinate.
func (p Point) X() units.Length { return p.x }

// Y returns the y coordinate.
func (p Point) Y() units.Length { return p.y }

// IsOrigin reports whether p is exactly (0, 0).
func (p Point) IsOrigin() bool { return p.x == 0 && p.y == 0 }

// Add returns p+other, componentwise.
func (p Point) Add(other Point) Point {
	return Point{x: p.x.Add(other.x), y: p.y.Add(other.y)}
}

// Sub returns p-other, componentwise.
func (p Point) Sub(other Point) Point {
	return Point{x: p.x.Sub(other.x), y: p.y.Sub(other.y)}
}

// Neg returns -p.
func (p Point) Neg() Point { return Point{x: p.x.Neg(), y: p.y.Neg()} }

// DivInt64 divides both components by n.
func (p Point) DivInt64(n int64) Point {
	return Point{x: p.x.DivInt64(n), y: p.y.DivInt64(n)}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point { return a.Add(b).DivInt64(2) }

// Length returns the Euclidean distance from the origin to p, computed via
// a millimeter-float intermediate and rounded to the nearest nanometer —
// the same float-scratch construction used throughout the arc math this
// package is grounded on.
func (p Point) Length() units.UnsignedLength {
	xMm := p.x.ToMillimeters()
	yMm := p.y.ToMillimeters()
	mm := math.Sqrt(xMm*xMm + yMm*yMm)
	v, _ := units.NewUnsignedLength(units.FromMillimeters(mm))
	return v
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) units.UnsignedLength {
	return a.Sub(b).Length()
}

// MappedToGrid snaps both axes independently to the nearest multiple of
// interval.
func (p Point) MappedToGrid(interval units.PositiveLength) Point {
	return Point{x: mapLengthToGrid(p.x, interval.Value()), y: mapLengthToGrid(p.y, interval.Value())}
}

func mapLengthToGrid(l units.Length, interval units.Length) units.Length {
	if interval == 0 {
		return l
	}
	nm := float64(l.Nanometers())
	step := float64(interval.Nanometers())
	snapped := math.Round(nm/step) * step
	return units.LengthFromNanometers(int64(snapped))
}

// Rotated rotates p counter-clockwise around center by angle (a negative
// angle rotates clockwise). Multiples of 90 degrees are
// handled exactly with integer swaps/negations; any other angle falls back
// to a sin/cos float intermediate, matching Point::rotate in the source
// this is grounded on (librepcbcommon/units/point.cpp).
func (p Point) Rotated(angle units.Angle, center Point) Point {
	dx := p.x.Sub(center.x)
	dy := p.y.Sub(center.y)
	switch angle.MapTo0360().MicroDeg() {
	case 0:
		return p
	case 90_000_000:
		return Point{x: center.x.Sub(dy), y: center.y.Add(dx)}
	case 180_000_000:
		return Point{x: center.x.Sub(dx), y: center.y.Sub(dy)}
	case 270_000_000:
		return Point{x: center.x.Add(dy), y: center.y.Sub(dx)}
	default:
		rad := angle.ToRad()
		sin, cos := math.Sin(rad), math.Cos(rad)
		dxNm := float64(dx.Nanometers())
		dyNm := float64(dy.Nanometers())
		x := float64(center.x.Nanometers()) + cos*dxNm - sin*dyNm
		y := float64(center.y.Nanometers()) + sin*dxNm + cos*dyNm
		return Point{
			x: units.LengthFromNanometers(int64(math.Round(x))),
			y: units.LengthFromNanometers(int64(math.Round(y))),
		}
	}
}

// Axis names the reflection axis used by Mirrored.
type Axis int

const (
	// Horizontal reflects across a vertical line (negates the x offset from
	// center) — flips a shape left-right.
	Horizontal Axis = iota
	// Vertical reflects across a horizontal line (negates the y offset from
	// center) — flips a shape top-bottom.
	Vertical
)

// Mirrored reflects p across the line through center perpendicular to
// axis.
func (p Point) Mirrored(axis Axis, center Point) Point {
	switch axis {
	case Horizontal:
		return Point{x: center.x.Sub(p.x.Sub(center.x)), y: p.y}
	default:
		return Point{x: p.x, y: center.y.Sub(p.y.Sub(center.y))}
	}
}
