// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/sexpr"

// Serialize renders v as a
// (via <uuid> (position x y) <size> <drill> (stop_mask ...)) list.
func (v *Via) Serialize() *sexpr.Node {
	return sexpr.NewList("via",
		encodeUuid(v.uuid),
		encodePosition(v.position),
		encodePositiveLength(v.size),
		encodePositiveLength(v.drill),
		encodeMaskConfig(v.stopMask),
	)
}

// DeserializeVia parses the inverse of (*Via).Serialize.
func DeserializeVia(n *sexpr.Node) (*Via, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	posNode, err := n.At(1)
	if err != nil {
		return nil, err
	}
	pos, err := decodePosition(posNode)
	if err != nil {
		return nil, err
	}
	size, err := decodePositiveLengthAt(n, 2)
	if err != nil {
		return nil, err
	}
	drill, err := decodePositiveLengthAt(n, 3)
	if err != nil {
		return nil, err
	}
	maskNode, err := n.At(4)
	if err != nil {
		return nil, err
	}
	mask, err := decodeMaskConfig(maskNode)
	if err != nil {
		return nil, err
	}
	return &Via{uuid: u, position: pos, size: size, drill: drill, stopMask: mask}, nil
}
