// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/units"
)

// PadShape mirrors geometry.PadShape at the entity level (RoundedRect,
// RoundedOctagon, Custom); kept as a distinct type because Pad's
// serialized tokens ("roundrect"/"octagon"/"custom") differ from
// geometry.PadShape's and because not every geometry.PadShape consumer
// needs a Pad's full set of fields.
type PadShape int

const (
	PadShapeRoundedRect PadShape = iota
	PadShapeRoundedOctagon
	PadShapeCustom
)

// ComponentSide is which side of the board a surface-mount pad sits on.
type ComponentSide int

const (
	ComponentSideTop ComponentSide = iota
	ComponentSideBottom
)

// PadFunction classifies what a pad is used for, which in turn decides
// whether it needs solder and whether it counts as a fiducial.
type PadFunction int

const (
	PadFunctionUnspecified PadFunction = iota
	PadFunctionStandardPad
	PadFunctionPressFitPad
	PadFunctionThermalPad
	PadFunctionBgaPad
	PadFunctionEdgeConnectorPad
	PadFunctionTestPad
	PadFunctionLocalFiducial
	PadFunctionGlobalFiducial
)

// IsFiducial reports whether f marks a fiducial pad.
func (f PadFunction) IsFiducial() bool {
	return f == PadFunctionLocalFiducial || f == PadFunctionGlobalFiducial
}

// NeedsSoldering reports whether a pad with this function is expected to
// carry solder, as opposed to being a mechanical or optical reference only.
func (f PadFunction) NeedsSoldering() bool {
	switch f {
	case PadFunctionEdgeConnectorPad, PadFunctionTestPad, PadFunctionLocalFiducial, PadFunctionGlobalFiducial:
		return false
	default:
		return true
	}
}

// Pad is a footprint pad: its geometry, placement, electrical role, and
// mask/paste configuration. A pad with at least one PadHole is
// through-hole (THT); otherwise it is surface-mount (SMT).
type Pad struct {
	uuid             Uuid
	position         geometry.Point
	rotation         units.Angle
	shape            PadShape
	width, height    units.PositiveLength
	cornerRadius     units.UnsignedLimitedRatio
	customOutline    geometry.Path
	stopMask         MaskConfig
	solderPaste      MaskConfig
	copperClearance  units.UnsignedLength
	side             ComponentSide
	function         PadFunction
	holes            []*PadHole
}

// NewPad builds a Pad with a fresh identity.
func NewPad(
	position geometry.Point, rotation units.Angle, shape PadShape,
	width, height units.PositiveLength, cornerRadius units.UnsignedLimitedRatio,
	customOutline geometry.Path, stopMask, solderPaste MaskConfig,
	copperClearance units.UnsignedLength, side ComponentSide, function PadFunction,
	holes []*PadHole,
) *Pad {
	return &Pad{
		uuid: NewUuid(), position: position, rotation: rotation, shape: shape,
		width: width, height: height, cornerRadius: cornerRadius,
		customOutline: customOutline, stopMask: stopMask, solderPaste: solderPaste,
		copperClearance: copperClearance, side: side, function: function, holes: holes,
	}
}

func (p *Pad) Uuid() Uuid                             { return p.uuid }
func (p *Pad) Position() geometry.Point                { return p.position }
func (p *Pad) Rotation() units.Angle                   { return p.rotation }
func (p *Pad) Shape() PadShape                         { return p.shape }
func (p *Pad) Width() units.PositiveLength             { return p.width }
func (p *Pad) Height() units.PositiveLength            { return p.height }
func (p *Pad) CornerRadius() units.UnsignedLimitedRatio { return p.cornerRadius }
func (p *Pad) CustomOutline() geometry.Path            { return p.customOutline }
func (p *Pad) StopMaskConfig() MaskConfig              { return p.stopMask }
func (p *Pad) SolderPasteConfig() MaskConfig           { return p.solderPaste }
func (p *Pad) CopperClearance() units.UnsignedLength   { return p.copperClearance }
func (p *Pad) ComponentSide() ComponentSide            { return p.side }
func (p *Pad) Function() PadFunction                   { return p.function }
func (p *Pad) Holes() []*PadHole                       { return p.holes }

// IsTht reports whether the pad is through-hole (has at least one hole).
func (p *Pad) IsTht() bool { return len(p.holes) > 0 }

// HasTopCopper reports whether the pad has copper on the top layer: always
// true for THT pads, and for SMT pads only when mounted on the top side.
func (p *Pad) HasTopCopper() bool {
	return p.IsTht() || p.side == ComponentSideTop
}

// HasBottomCopper reports whether the pad has copper on the bottom layer.
func (p *Pad) HasBottomCopper() bool {
	return p.IsTht() || p.side == ComponentSideBottom
}

// HasAutoTopStopMask reports whether an automatic top stop-mask opening
// should be generated.
func (p *Pad) HasAutoTopStopMask() bool {
	return p.stopMask.Enabled && p.HasTopCopper()
}

// HasAutoBottomStopMask reports whether an automatic bottom stop-mask
// opening should be generated.
func (p *Pad) HasAutoBottomStopMask() bool {
	return p.stopMask.Enabled && p.HasBottomCopper()
}

// HasAutoTopSolderPaste reports whether an automatic top solder-paste
// opening should be generated: a THT pad gets paste only on the side
// opposite its component side, an SMT pad only on its component side.
func (p *Pad) HasAutoTopSolderPaste() bool {
	return p.solderPaste.Enabled && (p.IsTht() != (p.side == ComponentSideTop))
}

// HasAutoBottomSolderPaste reports the bottom-side analog of
// HasAutoTopSolderPaste.
func (p *Pad) HasAutoBottomSolderPaste() bool {
	return p.solderPaste.Enabled && (p.IsTht() != (p.side == ComponentSideBottom))
}

// Geometry resolves the pad's shape family and dimensions into a concrete
// outline via geometry.PadGeometry.
func (p *Pad) Geometry() geometry.PadGeometry {
	switch p.shape {
	case PadShapeRoundedRect:
		return geometry.PadGeometry{Shape: geometry.PadShapeRoundedRect, Width: p.width, Height: p.height, CornerRadius: p.cornerRadius}
	case PadShapeRoundedOctagon:
		return geometry.PadGeometry{Shape: geometry.PadShapeRoundedOctagon, Width: p.width, Height: p.height, CornerRadius: p.cornerRadius}
	default:
		return geometry.PadGeometry{Shape: geometry.PadShapeCustom, CustomOutline: p.customOutline}
	}
}
