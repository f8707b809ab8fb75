// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/sexpr"

// Serialize renders p as a
// (symbol_pin <uuid> <name> (position x y) <length> <rotation>
// (position x y) <rotation> <height> (alignment h v)) list.
func (p *SymbolPin) Serialize() *sexpr.Node {
	return sexpr.NewList("symbol_pin",
		encodeUuid(p.uuid), sexpr.NewString(p.name),
		encodePosition(p.position), encodeUnsignedLength(p.length), encodeAngle(p.rotation),
		encodePosition(p.namePosition), encodeAngle(p.nameRotation),
		encodePositiveLength(p.nameHeight), encodeAlignment(p.nameAlignment),
	)
}

// DeserializeSymbolPin parses the inverse of (*SymbolPin).Serialize.
func DeserializeSymbolPin(n *sexpr.Node) (*SymbolPin, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	name, err := decodeStringAt(n, 1)
	if err != nil {
		return nil, err
	}
	posNode, err := n.At(2)
	if err != nil {
		return nil, err
	}
	position, err := decodePosition(posNode)
	if err != nil {
		return nil, err
	}
	length, err := decodeUnsignedLengthAt(n, 3)
	if err != nil {
		return nil, err
	}
	rotation, err := decodeAngleAt(n, 4)
	if err != nil {
		return nil, err
	}
	namePosNode, err := n.At(5)
	if err != nil {
		return nil, err
	}
	namePosition, err := decodePosition(namePosNode)
	if err != nil {
		return nil, err
	}
	nameRotation, err := decodeAngleAt(n, 6)
	if err != nil {
		return nil, err
	}
	nameHeight, err := decodePositiveLengthAt(n, 7)
	if err != nil {
		return nil, err
	}
	nameAlignmentNode, err := n.At(8)
	if err != nil {
		return nil, err
	}
	nameAlignment, err := decodeAlignment(nameAlignmentNode)
	if err != nil {
		return nil, err
	}
	return &SymbolPin{
		uuid: u, name: name, position: position, length: length, rotation: rotation,
		namePosition: namePosition, nameRotation: nameRotation, nameHeight: nameHeight, nameAlignment: nameAlignment,
	}, nil
}
