// SPDX-License-Identifier: MIT
package geometry

import "github.com/katalvlaran/edakernel/units"

// PadShape enumerates the outline families a footprint pad can take.
type PadShape int

const (
	// PadShapeRoundedRect is a CenteredRect with corner radius derived from
	// CornerRadius.
	PadShapeRoundedRect PadShape = iota
	// PadShapeRoundedOctagon is an Octagon with corner radius derived from
	// CornerRadius.
	PadShapeRoundedOctagon
	// PadShapeCustom uses CustomOutline verbatim.
	PadShapeCustom
)

// PadGeometry is the resolved outline of a footprint pad: a shape family
// plus the dimensions needed to build its Path. It has no notion of
// position or rotation — callers translate/rotate the resulting Path
// themselves, the same separation of concerns Path's own constructors
// use.
type PadGeometry struct {
	Shape        PadShape
	Width        units.PositiveLength
	Height       units.PositiveLength
	CornerRadius units.UnsignedLimitedRatio
	CustomOutline Path
}

// Outline resolves the geometry to a concrete Path. For the two rounded
// shapes, CornerRadius is a ratio of half the smaller dimension (0 means
// square corners, 100% means a full obround/octagon-with-no-straight-
// edge), matching the ratio-of-min-half-dimension convention used
// throughout the library's derived shapes (e.g. BoundedUnsignedRatio's
// ratio-of-input-length construction).
func (g PadGeometry) Outline() Path {
	switch g.Shape {
	case PadShapeRoundedOctagon:
		return Octagon(g.Width, g.Height, g.resolvedCornerRadius())
	case PadShapeCustom:
		return g.CustomOutline
	default:
		return CenteredRect(g.Width, g.Height, g.resolvedCornerRadius())
	}
}

func (g PadGeometry) resolvedCornerRadius() units.UnsignedLength {
	w := g.Width.Value()
	h := g.Height.Value()
	minHalf := w.DivInt64(2)
	if h.Cmp(w) < 0 {
		minHalf = h.DivInt64(2)
	}
	scaled := units.FromMillimeters(minHalf.ToMillimeters() * g.CornerRadius.Value().Normalized())
	v, _ := units.NewUnsignedLength(scaled)
	return v
}
