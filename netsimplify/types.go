// SPDX-License-Identifier: MIT
package netsimplify

import (
	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/internal/errkind"
	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/units"
)

// AnchorKind classifies what kind of thing an Anchor is. Values are
// ordered Via < PinOrPad < Junction, the sort order step 1 of the
// pipeline uses within each position bucket and that step 5 relies on
// when a Junction loses a collision to a Via or PinOrPad.
type AnchorKind int

const (
	AnchorVia AnchorKind = iota
	AnchorPinOrPad
	AnchorJunction
)

func (k AnchorKind) String() string {
	switch k {
	case AnchorVia:
		return "via"
	case AnchorPinOrPad:
		return "pin_or_pad"
	case AnchorJunction:
		return "junction"
	default:
		return "unknown_anchor_kind"
	}
}

// ParseAnchorKind maps a serialized anchor-kind token back to an AnchorKind.
func ParseAnchorKind(s string) (AnchorKind, error) {
	for _, k := range []AnchorKind{AnchorVia, AnchorPinOrPad, AnchorJunction} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, errkind.New(errkind.UnknownToken, "unknown anchor kind: "+s)
}

// Anchor is one connection point in a segment: a Via, a pin/pad, or a
// Junction, at a position, spanning a range of layers. A schematic
// anchor's Layers is the degenerate SingleLayer(LayerSchematic)
// interval; a Junction anchor's Layers is always a single layer too,
// since a junction only ever sits on the one line it was created on.
type Anchor struct {
	ID       model.Uuid
	Kind     AnchorKind
	Position geometry.Point
	Layers   model.LayerInterval
}

// Line is one wire or trace segment between two anchors, identified by
// their IDs. Layer is LayerSchematic for a schematic NetLine. Modified
// is set by the pipeline whenever this exact Line's endpoints, width or
// existence changed relative to how it entered Simplify.
type Line struct {
	ID       model.Uuid
	A, B     model.Uuid
	Layer    model.Layer
	Width    units.PositiveLength
	Modified bool
}

// Segment is the mutable multiset Simplify operates on: every anchor and
// line belonging to one electrical net's one segment (schematic sheet or
// board). Simplify mutates Anchors and Lines in place.
type Segment struct {
	Anchors []Anchor
	Lines   []Line
}

// Result reports what Simplify changed. NewJunctions lists every anchor
// added during step 3 (by ID and position, for callers that need to
// materialize a corresponding model.Junction). DisconnectedPinsOrPads is
// the set of pin/pad anchor IDs that were reachable by some line before
// Simplify ran and are not reachable by any line afterward. Modified is
// true iff any pipeline step changed the segment.
type Result struct {
	NewJunctions           map[model.Uuid]geometry.Point
	DisconnectedPinsOrPads []model.Uuid
	SplitOverflow          bool
	Modified               bool
}

func newAnchor(kind AnchorKind, pos geometry.Point, layers model.LayerInterval) Anchor {
	return Anchor{ID: model.NewUuid(), Kind: kind, Position: pos, Layers: layers}
}
