// SPDX-License-Identifier: MIT
package model

import (
	"strconv"

	"github.com/katalvlaran/edakernel/internal/errkind"
	"github.com/katalvlaran/edakernel/sexpr"
)

// Serialize renders z as a
// (zone <uuid> <layers> <rules> (path ...)) list, with the layers and
// rules bit sets rendered as their raw integer value since neither flag
// type carries a named-token convention of its own.
func (z *Zone) Serialize() *sexpr.Node {
	return sexpr.NewList("zone",
		encodeUuid(z.uuid),
		sexpr.NewToken(strconv.Itoa(int(z.layers))),
		sexpr.NewToken(strconv.Itoa(int(z.rules))),
		encodePath(z.outline),
	)
}

// DeserializeZone parses the inverse of (*Zone).Serialize.
func DeserializeZone(n *sexpr.Node) (*Zone, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	layersTok, err := decodeToken(n, 1)
	if err != nil {
		return nil, err
	}
	layers, err := strconv.Atoi(layersTok)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidNumber, "invalid zone layers: "+layersTok, err)
	}
	rulesTok, err := decodeToken(n, 2)
	if err != nil {
		return nil, err
	}
	rules, err := strconv.Atoi(rulesTok)
	if err != nil {
		return nil, errkind.Wrap(errkind.InvalidNumber, "invalid zone rules: "+rulesTok, err)
	}
	outlineNode, err := n.At(3)
	if err != nil {
		return nil, err
	}
	outline, err := decodePath(outlineNode)
	if err != nil {
		return nil, err
	}
	return &Zone{uuid: u, layers: ZoneLayer(layers), rules: ZoneRule(rules), outline: outline}, nil
}
