// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/units"
	"github.com/katalvlaran/edakernel/internal/errkind"
)

// ImageFormat is the file format backing an Image. This package only
// records the format; it does not load, decode or rasterize image files.
type ImageFormat int

const (
	ImageFormatJpg ImageFormat = iota
	ImageFormatPng
	ImageFormatSvg
)

// MinRasterizedSvgPixels is the minimum long-side pixel size for an SVG
// reference once rasterized. No code in this module rasterizes SVGs or
// reads this value.
const MinRasterizedSvgPixels = 800

// ParseImageFormat maps a file extension (without the dot) to an
// ImageFormat.
func ParseImageFormat(ext string) (ImageFormat, error) {
	switch ext {
	case "jpg", "jpeg":
		return ImageFormatJpg, nil
	case "png":
		return ImageFormatPng, nil
	case "svg":
		return ImageFormatSvg, nil
	default:
		return 0, errkind.New(errkind.UnknownToken, "unsupported image format: "+ext)
	}
}

// Image is a schematic illustration referencing an external file.
type Image struct {
	uuid         Uuid
	fileName     string
	format       ImageFormat
	position     geometry.Point
	rotation     units.Angle
	width        units.PositiveLength
	height       units.PositiveLength
	borderWidth  *units.UnsignedLength
}

// NewImage builds an Image with a fresh identity.
func NewImage(fileName string, format ImageFormat, position geometry.Point, rotation units.Angle, width, height units.PositiveLength, borderWidth *units.UnsignedLength) *Image {
	return &Image{uuid: NewUuid(), fileName: fileName, format: format, position: position, rotation: rotation, width: width, height: height, borderWidth: borderWidth}
}

func (img *Image) Uuid() Uuid                      { return img.uuid }
func (img *Image) FileName() string                { return img.fileName }
func (img *Image) Format() ImageFormat              { return img.format }
func (img *Image) Position() geometry.Point        { return img.position }
func (img *Image) Rotation() units.Angle           { return img.rotation }
func (img *Image) Width() units.PositiveLength     { return img.width }
func (img *Image) Height() units.PositiveLength    { return img.height }

// BorderWidth returns the configured border width and true, or the zero
// value and false if the image has no border.
func (img *Image) BorderWidth() (units.UnsignedLength, bool) {
	if img.borderWidth == nil {
		return units.UnsignedLength{}, false
	}
	return *img.borderWidth, true
}
