package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/units"
)

func TestParseImageFormat_RoundTrip(t *testing.T) {
	for ext, want := range map[string]model.ImageFormat{
		"jpg": model.ImageFormatJpg, "png": model.ImageFormatPng, "svg": model.ImageFormatSvg,
	} {
		got, err := model.ParseImageFormat(ext)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseImageFormat_Unknown(t *testing.T) {
	_, err := model.ParseImageFormat("bmp")
	require.Error(t, err)
}

func TestImage_BorderWidthOptional(t *testing.T) {
	img := model.NewImage("logo.png", model.ImageFormatPng, geometry.Origin, units.Angle(0), mustPositiveLength(t, 10), mustPositiveLength(t, 10), nil)
	_, ok := img.BorderWidth()
	require.False(t, ok)

	bw := mustUnsignedLength(t, 0.1)
	img2 := model.NewImage("logo.png", model.ImageFormatPng, geometry.Origin, units.Angle(0), mustPositiveLength(t, 10), mustPositiveLength(t, 10), &bw)
	got, ok := img2.BorderWidth()
	require.True(t, ok)
	require.Equal(t, bw, got)
}
