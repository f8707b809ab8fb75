// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/sexpr"

// Serialize renders p as a
// (polygon <uuid> <layer> <width> <filled> <grab_area> (path ...)) list.
func (p *Polygon) Serialize() *sexpr.Node {
	filled, grabArea := "no", "no"
	if p.filled {
		filled = "yes"
	}
	if p.grabArea {
		grabArea = "yes"
	}
	return sexpr.NewList("polygon",
		encodeUuid(p.uuid), encodeLayer(p.layer), encodeUnsignedLength(p.width),
		sexpr.NewToken(filled), sexpr.NewToken(grabArea), encodePath(p.path),
	)
}

// DeserializePolygon parses the inverse of (*Polygon).Serialize.
func DeserializePolygon(n *sexpr.Node) (*Polygon, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	layer, err := decodeLayerAt(n, 1)
	if err != nil {
		return nil, err
	}
	width, err := decodeUnsignedLengthAt(n, 2)
	if err != nil {
		return nil, err
	}
	filledTok, err := decodeToken(n, 3)
	if err != nil {
		return nil, err
	}
	grabAreaTok, err := decodeToken(n, 4)
	if err != nil {
		return nil, err
	}
	pathNode, err := n.At(5)
	if err != nil {
		return nil, err
	}
	path, err := decodePath(pathNode)
	if err != nil {
		return nil, err
	}
	return &Polygon{uuid: u, layer: layer, width: width, filled: filledTok == "yes", grabArea: grabAreaTok == "yes", path: path}, nil
}
