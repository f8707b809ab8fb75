// SPDX-License-Identifier: MIT
package geometry

import "github.com/katalvlaran/edakernel/internal/errkind"

// HAlign is a horizontal text alignment. Grounded on HAlign in
// LibrePCB's core/types/alignment.cpp.
type HAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

// Mirror swaps left and right; center is unaffected.
func (h HAlign) Mirror() HAlign {
	switch h {
	case HAlignLeft:
		return HAlignRight
	case HAlignRight:
		return HAlignLeft
	default:
		return h
	}
}

// String renders the lowercase token used by the serialized file format.
func (h HAlign) String() string {
	switch h {
	case HAlignLeft:
		return "left"
	case HAlignRight:
		return "right"
	default:
		return "center"
	}
}

// ParseHAlign maps the serialized token back to an HAlign.
func ParseHAlign(token string) (HAlign, error) {
	switch token {
	case "left":
		return HAlignLeft, nil
	case "center":
		return HAlignCenter, nil
	case "right":
		return HAlignRight, nil
	default:
		return 0, errkind.New(errkind.UnknownToken, "invalid horizontal alignment: "+token)
	}
}

// VAlign is a vertical text alignment.
type VAlign int

const (
	VAlignBottom VAlign = iota
	VAlignCenter
	VAlignTop
)

// Mirror swaps top and bottom; center is unaffected.
func (v VAlign) Mirror() VAlign {
	switch v {
	case VAlignTop:
		return VAlignBottom
	case VAlignBottom:
		return VAlignTop
	default:
		return v
	}
}

// String renders the lowercase token used by the serialized file format.
func (v VAlign) String() string {
	switch v {
	case VAlignTop:
		return "top"
	case VAlignBottom:
		return "bottom"
	default:
		return "center"
	}
}

// ParseVAlign maps the serialized token back to a VAlign.
func ParseVAlign(token string) (VAlign, error) {
	switch token {
	case "top":
		return VAlignTop, nil
	case "center":
		return VAlignCenter, nil
	case "bottom":
		return VAlignBottom, nil
	default:
		return 0, errkind.New(errkind.UnknownToken, "invalid vertical alignment: "+token)
	}
}

// Alignment is a (horizontal, vertical) text anchor pair, e.g. for stroke
// text or labels.
type Alignment struct {
	H HAlign
	V VAlign
}

// NewAlignment builds an Alignment.
func NewAlignment(h HAlign, v VAlign) Alignment { return Alignment{H: h, V: v} }

// Mirror flips both axes.
func (a Alignment) Mirror() Alignment { return Alignment{H: a.H.Mirror(), V: a.V.Mirror()} }

// MirrorH flips only the horizontal axis.
func (a Alignment) MirrorH() Alignment { return Alignment{H: a.H.Mirror(), V: a.V} }

// MirrorV flips only the vertical axis.
func (a Alignment) MirrorV() Alignment { return Alignment{H: a.H, V: a.V.Mirror()} }
