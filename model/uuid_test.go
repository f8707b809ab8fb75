package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edakernel/model"
)

func TestUuid_RoundTrip(t *testing.T) {
	u := model.NewUuid()
	parsed, err := model.ParseUuid(u.String())
	require.NoError(t, err)
	require.Equal(t, u, parsed)
	require.Equal(t, 0, u.Cmp(parsed))
}

func TestUuid_VersionAndVariantBits(t *testing.T) {
	u := model.NewUuid()
	require.Equal(t, byte(0x40), u[6]&0xf0)
	require.Equal(t, byte(0x80), u[8]&0xc0)
}

func TestUuid_Distinct(t *testing.T) {
	a := model.NewUuid()
	b := model.NewUuid()
	require.NotEqual(t, a, b)
}

func TestParseUuid_RejectsBadLength(t *testing.T) {
	_, err := model.ParseUuid("not-a-uuid")
	require.Error(t, err)
}

func TestParseUuid_RejectsBadFormat(t *testing.T) {
	_, err := model.ParseUuid("00000000x0000-0000-0000-000000000000")
	require.Error(t, err)
}

func TestParseUuid_RejectsBadHex(t *testing.T) {
	_, err := model.ParseUuid("zzzzzzzz-0000-0000-0000-000000000000")
	require.Error(t, err)
}

func TestUuid_Cmp(t *testing.T) {
	a, err := model.ParseUuid("00000000-0000-4000-8000-000000000001")
	require.NoError(t, err)
	b, err := model.ParseUuid("00000000-0000-4000-8000-000000000002")
	require.NoError(t, err)
	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
}

func TestNilUuid_IsZero(t *testing.T) {
	require.Equal(t, model.Uuid{}, model.NilUuid)
}
