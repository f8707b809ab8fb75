// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/internal/errkind"
	"github.com/katalvlaran/edakernel/sexpr"
	"github.com/katalvlaran/edakernel/units"
)

// encodeUuid renders u as a bare token child.
func encodeUuid(u Uuid) *sexpr.Node { return sexpr.NewToken(u.String()) }

// decodeToken reads the token at the i'th child of n.
func decodeToken(n *sexpr.Node, i int) (string, error) {
	child, err := n.At(i)
	if err != nil {
		return "", err
	}
	tok, ok := child.TokenValue()
	if !ok {
		return "", errkind.New(errkind.InvalidSExpression, "expected a token child")
	}
	return tok, nil
}

func decodeUuidAt(n *sexpr.Node, i int) (Uuid, error) {
	tok, err := decodeToken(n, i)
	if err != nil {
		return NilUuid, err
	}
	return ParseUuid(tok)
}

func decodeStringAt(n *sexpr.Node, i int) (string, error) {
	return decodeToken(n, i)
}

// encodePosition renders p as a (position x y) list.
func encodePosition(p geometry.Point) *sexpr.Node {
	return sexpr.NewList("position", sexpr.NewToken(p.X().String()), sexpr.NewToken(p.Y().String()))
}

func decodePosition(n *sexpr.Node) (geometry.Point, error) {
	head, ok := n.Head()
	if !ok || head != "position" {
		return geometry.Point{}, errkind.New(errkind.InvalidSExpression, "expected a position list")
	}
	xTok, err := decodeToken(n, 0)
	if err != nil {
		return geometry.Point{}, err
	}
	yTok, err := decodeToken(n, 1)
	if err != nil {
		return geometry.Point{}, err
	}
	x, err := units.ParseLength(xTok)
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := units.ParseLength(yTok)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.NewPoint(x, y), nil
}

// encodeVertex renders v as a (vertex x y angle) list.
func encodeVertex(v geometry.Vertex) *sexpr.Node {
	return sexpr.NewList("vertex",
		sexpr.NewToken(v.Pos().X().String()),
		sexpr.NewToken(v.Pos().Y().String()),
		sexpr.NewToken(v.Angle().String()),
	)
}

func decodeVertex(n *sexpr.Node) (geometry.Vertex, error) {
	xTok, err := decodeToken(n, 0)
	if err != nil {
		return geometry.Vertex{}, err
	}
	yTok, err := decodeToken(n, 1)
	if err != nil {
		return geometry.Vertex{}, err
	}
	angleTok, err := decodeToken(n, 2)
	if err != nil {
		return geometry.Vertex{}, err
	}
	x, err := units.ParseLength(xTok)
	if err != nil {
		return geometry.Vertex{}, err
	}
	y, err := units.ParseLength(yTok)
	if err != nil {
		return geometry.Vertex{}, err
	}
	angle, err := units.ParseAngle(angleTok)
	if err != nil {
		return geometry.Vertex{}, err
	}
	return geometry.NewVertex(geometry.NewPoint(x, y), angle), nil
}

// encodePath renders path as a (path (vertex ...)*) list.
func encodePath(path geometry.Path) *sexpr.Node {
	n := sexpr.NewList("path")
	for _, v := range path.Vertices() {
		n.AppendChild(sexpr.EnsureLineBreak(encodeVertex(v)))
	}
	return n
}

func decodePath(n *sexpr.Node) (geometry.Path, error) {
	head, ok := n.Head()
	if !ok || head != "path" {
		return geometry.Path{}, errkind.New(errkind.InvalidSExpression, "expected a path list")
	}
	var vertices []geometry.Vertex
	for _, child := range n.Children() {
		v, err := decodeVertex(child)
		if err != nil {
			return geometry.Path{}, err
		}
		vertices = append(vertices, v)
	}
	return geometry.NewPath(vertices...), nil
}

// encodePositiveLength renders l as a bare decimal-millimeter token.
func encodePositiveLength(l units.PositiveLength) *sexpr.Node {
	return sexpr.NewToken(l.Value().String())
}

// encodeMaskConfig renders cfg as (stop_mask <enabled|disabled> <auto|length>).
func encodeMaskConfig(cfg MaskConfig) *sexpr.Node {
	state := "disabled"
	if cfg.Enabled {
		state = "enabled"
	}
	offset := "auto"
	if cfg.Offset != nil {
		offset = cfg.Offset.String()
	}
	return sexpr.NewList("stop_mask", sexpr.NewToken(state), sexpr.NewToken(offset))
}

func decodeMaskConfig(n *sexpr.Node) (MaskConfig, error) {
	head, ok := n.Head()
	if !ok || head != "stop_mask" {
		return MaskConfig{}, errkind.New(errkind.InvalidSExpression, "expected a stop_mask list")
	}
	stateTok, err := decodeToken(n, 0)
	if err != nil {
		return MaskConfig{}, err
	}
	offsetTok, err := decodeToken(n, 1)
	if err != nil {
		return MaskConfig{}, err
	}
	enabled := stateTok == "enabled"
	if offsetTok == "auto" {
		return MaskConfig{Enabled: enabled}, nil
	}
	l, err := units.ParseLength(offsetTok)
	if err != nil {
		return MaskConfig{}, err
	}
	return MaskConfig{Enabled: enabled, Offset: &l}, nil
}

func decodePositiveLengthAt(n *sexpr.Node, i int) (units.PositiveLength, error) {
	tok, err := decodeToken(n, i)
	if err != nil {
		return units.PositiveLength{}, err
	}
	l, err := units.ParseLength(tok)
	if err != nil {
		return units.PositiveLength{}, err
	}
	return units.NewPositiveLength(l)
}

// encodeUnsignedLength renders u as a bare decimal-millimeter token.
func encodeUnsignedLength(u units.UnsignedLength) *sexpr.Node {
	return sexpr.NewToken(u.Value().String())
}

func decodeUnsignedLengthAt(n *sexpr.Node, i int) (units.UnsignedLength, error) {
	tok, err := decodeToken(n, i)
	if err != nil {
		return units.UnsignedLength{}, err
	}
	l, err := units.ParseLength(tok)
	if err != nil {
		return units.UnsignedLength{}, err
	}
	return units.NewUnsignedLength(l)
}

// encodeUnsignedLimitedRatio renders r as a bare normalized-decimal token.
func encodeUnsignedLimitedRatio(r units.UnsignedLimitedRatio) *sexpr.Node {
	return sexpr.NewToken(r.Value().String())
}

func decodeUnsignedLimitedRatioAt(n *sexpr.Node, i int) (units.UnsignedLimitedRatio, error) {
	tok, err := decodeToken(n, i)
	if err != nil {
		return units.UnsignedLimitedRatio{}, err
	}
	r, err := units.ParseRatio(tok)
	if err != nil {
		return units.UnsignedLimitedRatio{}, err
	}
	return units.NewUnsignedLimitedRatio(r)
}

// encodeAngle renders a as a bare token child.
func encodeAngle(a units.Angle) *sexpr.Node { return sexpr.NewToken(a.String()) }

func decodeAngleAt(n *sexpr.Node, i int) (units.Angle, error) {
	tok, err := decodeToken(n, i)
	if err != nil {
		return 0, err
	}
	return units.ParseAngle(tok)
}

// encodeLayer renders l as a bare token child using Layer's own textual
// token convention.
func encodeLayer(l Layer) *sexpr.Node { return sexpr.NewToken(l.String()) }

func decodeLayerAt(n *sexpr.Node, i int) (Layer, error) {
	tok, err := decodeToken(n, i)
	if err != nil {
		return 0, err
	}
	return ParseLayer(tok)
}

// encodeAlignment renders a as a (alignment h v) list.
func encodeAlignment(a geometry.Alignment) *sexpr.Node {
	return sexpr.NewList("alignment", sexpr.NewToken(a.H.String()), sexpr.NewToken(a.V.String()))
}

func decodeAlignment(n *sexpr.Node) (geometry.Alignment, error) {
	head, ok := n.Head()
	if !ok || head != "alignment" {
		return geometry.Alignment{}, errkind.New(errkind.InvalidSExpression, "expected an alignment list")
	}
	hTok, err := decodeToken(n, 0)
	if err != nil {
		return geometry.Alignment{}, err
	}
	vTok, err := decodeToken(n, 1)
	if err != nil {
		return geometry.Alignment{}, err
	}
	h, err := geometry.ParseHAlign(hTok)
	if err != nil {
		return geometry.Alignment{}, err
	}
	v, err := geometry.ParseVAlign(vTok)
	if err != nil {
		return geometry.Alignment{}, err
	}
	return geometry.NewAlignment(h, v), nil
}

// encodeStrokeTextSpacing renders s as a (spacing <auto|ratio>) list.
func encodeStrokeTextSpacing(s StrokeTextSpacing) *sexpr.Node {
	tok := "auto"
	if r, ok := s.Ratio(); ok {
		tok = r.String()
	}
	return sexpr.NewList("spacing", sexpr.NewToken(tok))
}

func decodeStrokeTextSpacing(n *sexpr.Node) (StrokeTextSpacing, error) {
	head, ok := n.Head()
	if !ok || head != "spacing" {
		return StrokeTextSpacing{}, errkind.New(errkind.InvalidSExpression, "expected a spacing list")
	}
	tok, err := decodeToken(n, 0)
	if err != nil {
		return StrokeTextSpacing{}, err
	}
	if tok == "auto" {
		return AutoStrokeTextSpacing(), nil
	}
	r, err := units.ParseRatio(tok)
	if err != nil {
		return StrokeTextSpacing{}, err
	}
	return ExplicitStrokeTextSpacing(r), nil
}
