// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/sexpr"

// Serialize renders h as a (pad_hole <uuid> <diameter> (path ...)) list.
func (h *PadHole) Serialize() *sexpr.Node {
	return sexpr.NewList("pad_hole", encodeUuid(h.uuid), encodePositiveLength(h.diameter), encodePath(h.path))
}

// DeserializePadHole parses the inverse of (*PadHole).Serialize.
func DeserializePadHole(n *sexpr.Node) (*PadHole, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	diameter, err := decodePositiveLengthAt(n, 1)
	if err != nil {
		return nil, err
	}
	pathNode, err := n.At(2)
	if err != nil {
		return nil, err
	}
	path, err := decodePath(pathNode)
	if err != nil {
		return nil, err
	}
	return &PadHole{uuid: u, diameter: diameter, path: path}, nil
}
