// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/edakernel/internal/errkind"
	"github.com/katalvlaran/edakernel/sexpr"
)

func padShapeToken(s PadShape) string {
	switch s {
	case PadShapeRoundedOctagon:
		return "octagon"
	case PadShapeCustom:
		return "custom"
	default:
		return "roundrect"
	}
}

func parsePadShapeToken(tok string) (PadShape, error) {
	switch tok {
	case "roundrect":
		return PadShapeRoundedRect, nil
	case "octagon":
		return PadShapeRoundedOctagon, nil
	case "custom":
		return PadShapeCustom, nil
	default:
		return 0, errkind.New(errkind.UnknownToken, "unknown pad shape: "+tok)
	}
}

func componentSideToken(s ComponentSide) string {
	if s == ComponentSideBottom {
		return "bottom"
	}
	return "top"
}

func parseComponentSideToken(tok string) (ComponentSide, error) {
	switch tok {
	case "top":
		return ComponentSideTop, nil
	case "bottom":
		return ComponentSideBottom, nil
	default:
		return 0, errkind.New(errkind.UnknownToken, "unknown component side: "+tok)
	}
}

func padFunctionToken(f PadFunction) string {
	switch f {
	case PadFunctionStandardPad:
		return "standard"
	case PadFunctionPressFitPad:
		return "press_fit"
	case PadFunctionThermalPad:
		return "thermal"
	case PadFunctionBgaPad:
		return "bga"
	case PadFunctionEdgeConnectorPad:
		return "edge_connector"
	case PadFunctionTestPad:
		return "test"
	case PadFunctionLocalFiducial:
		return "local_fiducial"
	case PadFunctionGlobalFiducial:
		return "global_fiducial"
	default:
		return "unspecified"
	}
}

func parsePadFunctionToken(tok string) (PadFunction, error) {
	switch tok {
	case "unspecified":
		return PadFunctionUnspecified, nil
	case "standard":
		return PadFunctionStandardPad, nil
	case "press_fit":
		return PadFunctionPressFitPad, nil
	case "thermal":
		return PadFunctionThermalPad, nil
	case "bga":
		return PadFunctionBgaPad, nil
	case "edge_connector":
		return PadFunctionEdgeConnectorPad, nil
	case "test":
		return PadFunctionTestPad, nil
	case "local_fiducial":
		return PadFunctionLocalFiducial, nil
	case "global_fiducial":
		return PadFunctionGlobalFiducial, nil
	default:
		return 0, errkind.New(errkind.UnknownToken, "unknown pad function: "+tok)
	}
}

// Serialize renders p as a (pad <uuid> (position x y) <rotation> <shape>
// <width> <height> <corner_radius> (path ...) (stop_mask ...)
// (stop_mask ...) <copper_clearance> <side> <function> (hole ...)*) list.
// The pad holes are the variable-length tail, matching the typed codec
// convention of fixed fields before variable-length child lists.
func (p *Pad) Serialize() *sexpr.Node {
	n := sexpr.NewList("pad",
		encodeUuid(p.uuid), encodePosition(p.position), encodeAngle(p.rotation),
		sexpr.NewToken(padShapeToken(p.shape)),
		encodePositiveLength(p.width), encodePositiveLength(p.height),
		encodeUnsignedLimitedRatio(p.cornerRadius), encodePath(p.customOutline),
		encodeMaskConfig(p.stopMask), encodeMaskConfig(p.solderPaste),
		encodeUnsignedLength(p.copperClearance),
		sexpr.NewToken(componentSideToken(p.side)), sexpr.NewToken(padFunctionToken(p.function)),
	)
	for _, h := range p.holes {
		n.AppendChild(sexpr.EnsureLineBreak(h.Serialize()))
	}
	return n
}

// DeserializePad parses the inverse of (*Pad).Serialize.
func DeserializePad(n *sexpr.Node) (*Pad, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	posNode, err := n.At(1)
	if err != nil {
		return nil, err
	}
	position, err := decodePosition(posNode)
	if err != nil {
		return nil, err
	}
	rotation, err := decodeAngleAt(n, 2)
	if err != nil {
		return nil, err
	}
	shapeTok, err := decodeToken(n, 3)
	if err != nil {
		return nil, err
	}
	shape, err := parsePadShapeToken(shapeTok)
	if err != nil {
		return nil, err
	}
	width, err := decodePositiveLengthAt(n, 4)
	if err != nil {
		return nil, err
	}
	height, err := decodePositiveLengthAt(n, 5)
	if err != nil {
		return nil, err
	}
	cornerRadius, err := decodeUnsignedLimitedRatioAt(n, 6)
	if err != nil {
		return nil, err
	}
	outlineNode, err := n.At(7)
	if err != nil {
		return nil, err
	}
	customOutline, err := decodePath(outlineNode)
	if err != nil {
		return nil, err
	}
	stopMaskNode, err := n.At(8)
	if err != nil {
		return nil, err
	}
	stopMask, err := decodeMaskConfig(stopMaskNode)
	if err != nil {
		return nil, err
	}
	solderPasteNode, err := n.At(9)
	if err != nil {
		return nil, err
	}
	solderPaste, err := decodeMaskConfig(solderPasteNode)
	if err != nil {
		return nil, err
	}
	copperClearance, err := decodeUnsignedLengthAt(n, 10)
	if err != nil {
		return nil, err
	}
	sideTok, err := decodeToken(n, 11)
	if err != nil {
		return nil, err
	}
	side, err := parseComponentSideToken(sideTok)
	if err != nil {
		return nil, err
	}
	functionTok, err := decodeToken(n, 12)
	if err != nil {
		return nil, err
	}
	function, err := parsePadFunctionToken(functionTok)
	if err != nil {
		return nil, err
	}
	children := n.Children()
	if len(children) < 13 {
		return nil, errkind.New(errkind.InvalidSExpression, "pad: missing required fields")
	}
	var holes []*PadHole
	for _, child := range children[13:] {
		h, err := DeserializePadHole(child)
		if err != nil {
			return nil, err
		}
		holes = append(holes, h)
	}
	return &Pad{
		uuid: u, position: position, rotation: rotation, shape: shape,
		width: width, height: height, cornerRadius: cornerRadius,
		customOutline: customOutline, stopMask: stopMask, solderPaste: solderPaste,
		copperClearance: copperClearance, side: side, function: function, holes: holes,
	}, nil
}
