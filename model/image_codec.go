// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/edakernel/sexpr"
	"github.com/katalvlaran/edakernel/units"
)

// imageFormatExt renders format back to the file extension token
// ParseImageFormat accepts, so the codec's round trip reuses that parser
// directly instead of growing a second format<->token mapping.
func imageFormatExt(format ImageFormat) string {
	switch format {
	case ImageFormatPng:
		return "png"
	case ImageFormatSvg:
		return "svg"
	default:
		return "jpg"
	}
}

// Serialize renders img as a
// (image <uuid> <file_name> <format> (position x y) <rotation> <width>
// <height> <border_width-or-none>) list.
func (img *Image) Serialize() *sexpr.Node {
	borderTok := "none"
	if b, ok := img.BorderWidth(); ok {
		borderTok = b.Value().String()
	}
	return sexpr.NewList("image",
		encodeUuid(img.uuid), sexpr.NewString(img.fileName), sexpr.NewToken(imageFormatExt(img.format)),
		encodePosition(img.position), encodeAngle(img.rotation),
		encodePositiveLength(img.width), encodePositiveLength(img.height),
		sexpr.NewToken(borderTok),
	)
}

// DeserializeImage parses the inverse of (*Image).Serialize.
func DeserializeImage(n *sexpr.Node) (*Image, error) {
	u, err := decodeUuidAt(n, 0)
	if err != nil {
		return nil, err
	}
	fileName, err := decodeStringAt(n, 1)
	if err != nil {
		return nil, err
	}
	formatTok, err := decodeToken(n, 2)
	if err != nil {
		return nil, err
	}
	format, err := ParseImageFormat(formatTok)
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
	width, err := decodePositiveLengthAt(n, 5)
	if err != nil {
		return nil, err
	}
	height, err := decodePositiveLengthAt(n, 6)
	if err != nil {
		return nil, err
	}
	borderTok, err := decodeToken(n, 7)
	if err != nil {
		return nil, err
	}
	var borderWidth *units.UnsignedLength
	if borderTok != "none" {
		l, err := units.ParseLength(borderTok)
		if err != nil {
			return nil, err
		}
		b, err := units.NewUnsignedLength(l)
		if err != nil {
			return nil, err
		}
		borderWidth = &b
	}
	return &Image{
		uuid: u, fileName: fileName, format: format, position: position, rotation: rotation,
		width: width, height: height, borderWidth: borderWidth,
	}, nil
}
