package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/units"
)

func TestStrokeTextSpacing_Auto(t *testing.T) {
	s := model.AutoStrokeTextSpacing()
	require.True(t, s.IsAuto())
	_, ok := s.Ratio()
	require.False(t, ok)
}

func TestStrokeTextSpacing_Explicit(t *testing.T) {
	r := units.RatioFromPercent(50)
	s := model.ExplicitStrokeTextSpacing(r)
	require.False(t, s.IsAuto())
	got, ok := s.Ratio()
	require.True(t, ok)
	require.Equal(t, r, got)
}
