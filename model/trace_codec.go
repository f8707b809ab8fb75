// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/sexpr"

// Serialize renders t as a
// (trace <uuid> <layer> <width> <p1-anchor> <p2-anchor>) list.
func (t *Trace) Serialize() *sexpr.Node {
	return sexpr.NewList("trace",
		encodeUuid(t.uuid), encodeLayer(t.layer), encodePositiveLength(t.width),
		encodeTraceAnchor(t.p1), encodeTraceAnchor(t.p2),
	)
}

// DeserializeTrace parses the inverse of (*Trace).Serialize.
func DeserializeTrace(n *sexpr.Node) (*Trace, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	layer, err := decodeLayerAt(n, 1)
	if err != nil {
		return nil, err
	}
	width, err := decodePositiveLengthAt(n, 2)
	if err != nil {
		return nil, err
	}
	p1Node, err := n.At(3)
	if err != nil {
		return nil, err
	}
	p1, err := decodeTraceAnchor(p1Node)
	if err != nil {
		return nil, err
	}
	p2Node, err := n.At(4)
	if err != nil {
		return nil, err
	}
	p2, err := decodeTraceAnchor(p2Node)
	if err != nil {
		return nil, err
	}
	cp1, cp2 := canonicalizeTraceAnchors(p1, p2)
	return &Trace{uuid: u, layer: layer, width: width, p1: cp1, p2: cp2}, nil
}
