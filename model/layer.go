// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/internal/errkind"

// Layer identifies one copper or silkscreen layer of a board, or the single
// implicit layer of a schematic. Layers are totally ordered top-to-bottom so
// a LayerInterval can be compared and so two layers can be tested for
// "does this interval cover that layer" without a lookup table. No source
// file describing a layer stack was available to ground this against, so
// the set below is an inferred minimal stack covering what Trace, Zone,
// Polygon and StrokeText actually need: a top and bottom copper layer, one
// inner layer as a stand-in for however many a real board has, and the two
// silkscreen layers used by StrokeText/Polygon artwork.
type Layer int

const (
	// LayerSchematic is the sentinel layer used by schematic entities
	// (NetLine, SymbolPin) that have no physical board layer.
	LayerSchematic Layer = iota
	LayerTopCopper
	LayerInnerCopper
	LayerBottomCopper
	LayerTopSilkscreen
	LayerBottomSilkscreen
)

func (l Layer) String() string {
	switch l {
	case LayerSchematic:
		return "schematic"
	case LayerTopCopper:
		return "top_copper"
	case LayerInnerCopper:
		return "inner_copper"
	case LayerBottomCopper:
		return "bottom_copper"
	case LayerTopSilkscreen:
		return "top_silkscreen"
	case LayerBottomSilkscreen:
		return "bottom_silkscreen"
	default:
		return "unknown_layer"
	}
}

// ParseLayer maps a serialized layer token back to a Layer.
func ParseLayer(s string) (Layer, error) {
	for _, l := range []Layer{LayerSchematic, LayerTopCopper, LayerInnerCopper, LayerBottomCopper, LayerTopSilkscreen, LayerBottomSilkscreen} {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, errkind.New(errkind.UnknownToken, "unknown layer: "+s)
}

// IsBoard reports whether l is a physical board layer, as opposed to the
// schematic sentinel.
func (l Layer) IsBoard() bool { return l != LayerSchematic }

// LayerInterval is the closed range of board layers a Via or Pad anchor
// spans, used by the net-segment simplifier to decide whether an anchor is
// reachable from a given line's layer. A schematic anchor uses the
// single-layer interval {LayerSchematic, LayerSchematic}.
type LayerInterval struct {
	Start Layer
	End   Layer
}

// NewLayerInterval builds the interval [start, end], swapping the two if
// given in reverse order so Start is always the topmost layer.
func NewLayerInterval(start, end Layer) LayerInterval {
	if start > end {
		start, end = end, start
	}
	return LayerInterval{Start: start, End: end}
}

// SingleLayer is the degenerate interval spanning exactly one layer, used
// by Junction anchors (which span only the single layer of the line they
// sit on) and by through-hole-less schematic anchors.
func SingleLayer(l Layer) LayerInterval {
	return LayerInterval{Start: l, End: l}
}

// Covers reports whether l falls within the interval, inclusive.
func (iv LayerInterval) Covers(l Layer) bool {
	return iv.Start <= l && l <= iv.End
}
