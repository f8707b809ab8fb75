// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/sexpr"

// Serialize renders s as a (stroke_text <uuid> <layer> <text> (position x
// y) <rotation> <height> <stroke_width> (spacing ...) (spacing ...)
// (alignment h v) <mirrored> <auto_rotate>) list.
func (s *StrokeText) Serialize() *sexpr.Node {
	mirrored, autoRotate := "no", "no"
	if s.mirrored {
		mirrored = "yes"
	}
	if s.autoRotate {
		autoRotate = "yes"
	}
	return sexpr.NewList("stroke_text",
		encodeUuid(s.uuid), encodeLayer(s.layer), sexpr.NewString(s.text),
		encodePosition(s.position), encodeAngle(s.rotation),
		encodePositiveLength(s.height), encodeUnsignedLength(s.strokeWidth),
		encodeStrokeTextSpacing(s.letterSpacing), encodeStrokeTextSpacing(s.lineSpacing),
		encodeAlignment(s.alignment), sexpr.NewToken(mirrored), sexpr.NewToken(autoRotate),
	)
}

// DeserializeStrokeText parses the inverse of (*StrokeText).Serialize.
func DeserializeStrokeText(n *sexpr.Node) (*StrokeText, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	layer, err := decodeLayerAt(n, 1)
	if err != nil {
		return nil, err
	}
	text, err := decodeStringAt(n, 2)
	if err != nil {
		return nil, err
	}
	posNode, err := n.At(3)
	if err != nil {
		return nil, err
	}
	position, err := decodePosition(posNode)
	if err != nil {
		return nil, err
	}
	rotation, err := decodeAngleAt(n, 4)
	if err != nil {
		return nil, err
	}
	height, err := decodePositiveLengthAt(n, 5)
	if err != nil {
		return nil, err
	}
	strokeWidth, err := decodeUnsignedLengthAt(n, 6)
	if err != nil {
		return nil, err
	}
	letterSpacingNode, err := n.At(7)
	if err != nil {
		return nil, err
	}
	letterSpacing, err := decodeStrokeTextSpacing(letterSpacingNode)
	if err != nil {
		return nil, err
	}
	lineSpacingNode, err := n.At(8)
	if err != nil {
		return nil, err
	}
	lineSpacing, err := decodeStrokeTextSpacing(lineSpacingNode)
	if err != nil {
		return nil, err
	}
	alignmentNode, err := n.At(9)
	if err != nil {
		return nil, err
	}
	alignment, err := decodeAlignment(alignmentNode)
	if err != nil {
		return nil, err
	}
	mirroredTok, err := decodeToken(n, 10)
	if err != nil {
		return nil, err
	}
	autoRotateTok, err := decodeToken(n, 11)
	if err != nil {
		return nil, err
	}
	return &StrokeText{
		uuid: u, layer: layer, text: text, position: position, rotation: rotation,
		height: height, strokeWidth: strokeWidth, letterSpacing: letterSpacing,
		lineSpacing: lineSpacing, alignment: alignment,
		mirrored: mirroredTok == "yes", autoRotate: autoRotateTok == "yes",
	}, nil
}
