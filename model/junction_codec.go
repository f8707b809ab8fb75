// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/sexpr"

// Serialize renders j as a (junction <uuid> (position x y)) list.
func (j *Junction) Serialize() *sexpr.Node {
	return sexpr.NewList("junction", encodeUuid(j.uuid), encodePosition(j.position))
}

// DeserializeJunction parses the inverse of (*Junction).Serialize.
func DeserializeJunction(n *sexpr.Node) (*Junction, error) {
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
	return &Junction{uuid: u, position: pos}, nil
}
