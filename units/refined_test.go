package units_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/internal/errkind"
	"github.com/katalvlaran/edakernel/units"
)

func TestUnsignedLength_RejectsNegative(t *testing.T) {
	_, err := units.NewUnsignedLength(units.LengthFromNanometers(-1))
	require.Error(t, err)
	require.Equal(t, errkind.InvalidValue, err.(*errkind.Error).Kind)

	v, err := units.NewUnsignedLength(units.Zero)
	require.NoError(t, err)
	require.Equal(t, units.Zero, v.Value())
}

func TestPositiveLength_RejectsZeroAndNegative(t *testing.T) {
	_, err := units.NewPositiveLength(units.Zero)
	require.Error(t, err)
	require.Equal(t, errkind.InvalidValue, err.(*errkind.Error).Kind)

	_, err = units.NewPositiveLength(units.LengthFromNanometers(-1))
	require.Error(t, err)

	v, err := units.NewPositiveLength(units.LengthFromNanometers(1))
	require.NoError(t, err)
	require.Equal(t, units.LengthFromNanometers(1), v.Value())
}

func TestPositiveLength_MustPanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() {
		units.MustPositiveLength(units.Zero)
	})
}

func TestUnsignedRatio_RejectsNegative(t *testing.T) {
	_, err := units.NewUnsignedRatio(units.RatioFromPercent(-1))
	require.Error(t, err)
}

func TestUnsignedLimitedRatio_RejectsAboveHundredPercent(t *testing.T) {
	_, err := units.NewUnsignedLimitedRatio(units.RatioFromPercent(101))
	require.Error(t, err)
	require.Equal(t, errkind.InvalidValue, err.(*errkind.Error).Kind)

	v, err := units.NewUnsignedLimitedRatio(units.RatioFromPercent(100))
	require.NoError(t, err)
	require.Equal(t, units.RatioFromPercent(100), v.Value())
}

func TestUnsignedLimitedRatio_RejectsNegative(t *testing.T) {
	_, err := units.NewUnsignedLimitedRatio(units.RatioFromPercent(-1))
	require.Error(t, err)
}

func TestBoundedUnsignedRatio_RejectsMinGreaterThanMax(t *testing.T) {
	ratio := mustUnsignedRatio(t, units.RatioFromPercent(50))
	min := mustUnsignedLength(t, units.FromMillimeters(2))
	max := mustUnsignedLength(t, units.FromMillimeters(1))

	_, err := units.NewBoundedUnsignedRatio(ratio, min, max)
	require.Error(t, err)
}

func TestBoundedUnsignedRatio_CalcValueClamps(t *testing.T) {
	ratio := mustUnsignedRatio(t, units.RatioFromPercent(50))
	min := mustUnsignedLength(t, units.FromMillimeters(0.1))
	max := mustUnsignedLength(t, units.FromMillimeters(1))
	b, err := units.NewBoundedUnsignedRatio(ratio, min, max)
	require.NoError(t, err)

	require.Equal(t, min.Value(), b.CalcValue(units.Zero).Value())
	require.Equal(t, max.Value(), b.CalcValue(units.FromMillimeters(10)).Value())

	mid := b.CalcValue(units.FromMillimeters(1))
	require.Equal(t, units.FromMillimeters(0.5), mid.Value())
}

func mustUnsignedRatio(t *testing.T, r units.Ratio) units.UnsignedRatio {
	t.Helper()
	v, err := units.NewUnsignedRatio(r)
	require.NoError(t, err)
	return v
}

func mustUnsignedLength(t *testing.T, l units.Length) units.UnsignedLength {
	t.Helper()
	v, err := units.NewUnsignedLength(l)
	require.NoError(t, err)
	return v
}
