// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/sexpr"

// Serialize renders l as a
// (net_line <uuid> <width> <p1-anchor> <p2-anchor>) list.
func (l *NetLine) Serialize() *sexpr.Node {
	return sexpr.NewList("net_line",
		encodeUuid(l.uuid), encodeUnsignedLength(l.width),
		encodeNetLineAnchor(l.p1), encodeNetLineAnchor(l.p2),
	)
}

// DeserializeNetLine parses the inverse of (*NetLine).Serialize.
func DeserializeNetLine(n *sexpr.Node) (*NetLine, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	width, err := decodeUnsignedLengthAt(n, 1)
	if err != nil {
		return nil, err
	}
	p1Node, err := n.At(2)
	if err != nil {
		return nil, err
	}
	p1, err := decodeNetLineAnchor(p1Node)
	if err != nil {
		return nil, err
	}
	p2Node, err := n.At(3)
	if err != nil {
		return nil, err
	}
	p2, err := decodeNetLineAnchor(p2Node)
	if err != nil {
		return nil, err
	}
	cp1, cp2 := canonicalizeNetLineAnchors(p1, p2)
	return &NetLine{uuid: u, width: width, p1: cp1, p2: cp2}, nil
}
