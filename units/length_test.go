package units_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/units"
)

func TestLength_RoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "1.5", "-0.000001", "10.25", "0.1", "123456.654321"}
	for _, s := range cases {
		l, err := units.ParseLength(s)
		require.NoError(t, err, s)
		l2, err := units.ParseLength(l.String())
		require.NoError(t, err, s)
		require.Equal(t, l, l2, "round trip for %s", s)
	}
}

func TestLength_ParseRejectsBadSeparator(t *testing.T) {
	_, err := units.ParseLength("1,5")
	require.Error(t, err)
}

func TestLength_Arithmetic(t *testing.T) {
	a := units.LengthFromNanometers(1_000_000)
	b := units.LengthFromNanometers(500_000)
	require.Equal(t, units.LengthFromNanometers(1_500_000), a.Add(b))
	require.Equal(t, units.LengthFromNanometers(500_000), a.Sub(b))
	require.Equal(t, units.LengthFromNanometers(-1_000_000), a.Neg())
	require.Equal(t, units.LengthFromNanometers(2_000_000), a.MulInt64(2))
	require.Equal(t, units.LengthFromNanometers(500_000), a.DivInt64(2))
}

func TestLength_MillimeterConversion(t *testing.T) {
	l := units.FromMillimeters(25.4)
	require.Equal(t, units.LengthFromNanometers(25_400_000), l)
	require.InDelta(t, 25.4, l.ToMillimeters(), 1e-9)
}

func TestLength_InchAndMilConversion(t *testing.T) {
	inch := units.FromInches(1)
	require.Equal(t, units.LengthFromNanometers(25_400_000), inch)

	mil := units.FromMils(1)
	require.Equal(t, units.LengthFromNanometers(25_400), mil)
}

func TestLength_Cmp(t *testing.T) {
	a := units.LengthFromNanometers(1)
	b := units.LengthFromNanometers(2)
	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(a))
}
