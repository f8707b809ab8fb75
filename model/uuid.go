// SPDX-License-Identifier: MIT
package model

import (
	"crypto/rand"
	"fmt"

	"github.com/katalvlaran/edakernel/internal/errkind"
)

// Uuid is a 128-bit RFC 4122 version-4 identifier, the identity of every
// entity in this package. No pack library provides UUID generation (see
// DESIGN.md), so this is built directly on crypto/rand.
type Uuid [16]byte

// NilUuid is the all-zero Uuid, used only as an explicit "no value"
// sentinel where a field is genuinely optional; it is never a valid
// generated identity.
var NilUuid = Uuid{}

// NewUuid generates a fresh random v4 Uuid.
func NewUuid() Uuid {
	var u Uuid
	// crypto/rand.Read on a fixed-size array never returns a short read
	// without an error, and the error case here (entropy source failure)
	// is not recoverable by the caller, so this panics rather than
	// threading an error through every identity-needing constructor.
	if _, err := rand.Read(u[:]); err != nil {
		panic(fmt.Sprintf("model: failed to read random bytes for uuid: %v", err))
	}
	u[6] = (u[6] & 0x0f) | 0x40 // version 4
	u[8] = (u[8] & 0x3f) | 0x80 // RFC 4122 variant
	return u
}

// String renders the canonical 8-4-4-4-12 hyphenated lowercase form.
func (u Uuid) String() string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}

// ParseUuid parses the canonical hyphenated form back into a Uuid.
func ParseUuid(s string) (Uuid, error) {
	var u Uuid
	if len(s) != 36 {
		return u, errkind.New(errkind.InvalidValue, "invalid uuid length: "+s)
	}
	for _, p := range []int{8, 13, 18, 23} {
		if s[p] != '-' {
			return u, errkind.New(errkind.InvalidValue, "invalid uuid format: "+s)
		}
	}
	hex := s[0:8] + s[9:13] + s[14:18] + s[19:23] + s[24:36]
	if len(hex) != 32 {
		return u, errkind.New(errkind.InvalidValue, "invalid uuid format: "+s)
	}
	for i := 0; i < 16; i++ {
		b, err := parseHexByte(hex[i*2 : i*2+2])
		if err != nil {
			return Uuid{}, errkind.Wrap(errkind.InvalidValue, "invalid uuid: "+s, err)
		}
		u[i] = b
	}
	return u, nil
}

func parseHexByte(s string) (byte, error) {
	hi, err := hexDigit(s[0])
	if err != nil {
		return 0, err
	}
	lo, err := hexDigit(s[1])
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errkind.New(errkind.InvalidNumber, "invalid hex digit")
	}
}

// Cmp returns -1, 0 or 1 as u is less than, equal to, or greater than
// other, comparing byte-by-byte. Used to give entities and anchors a
// total order when no other field distinguishes them.
func (u Uuid) Cmp(other Uuid) int {
	for i := range u {
		if u[i] != other[i] {
			if u[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
