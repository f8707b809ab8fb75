// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/units"

// StrokeTextSpacing is the letter/line spacing of a StrokeText: either
// "auto" (the renderer picks a spacing proportional to the stroke width)
// or an explicit ratio of the text height.
type StrokeTextSpacing struct {
	ratio *units.Ratio
}

// AutoStrokeTextSpacing returns the automatic variant.
func AutoStrokeTextSpacing() StrokeTextSpacing {
	return StrokeTextSpacing{}
}

// ExplicitStrokeTextSpacing returns the explicit-ratio variant.
func ExplicitStrokeTextSpacing(ratio units.Ratio) StrokeTextSpacing {
	return StrokeTextSpacing{ratio: &ratio}
}

// IsAuto reports whether s is the automatic variant.
func (s StrokeTextSpacing) IsAuto() bool { return s.ratio == nil }

// Ratio returns the explicit ratio and true, or the zero ratio and false
// if s is automatic.
func (s StrokeTextSpacing) Ratio() (units.Ratio, bool) {
	if s.ratio == nil {
		return units.Ratio(0), false
	}
	return *s.ratio, true
}
