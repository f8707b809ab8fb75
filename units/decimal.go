// SPDX-License-Identifier: MIT
package units

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/edakernel/internal/errkind"
)

// parseFixedPoint parses a decimal string into an integer count of the
// smallest represented unit, padding or truncating the fractional part to
// exactly decimals digits. It rejects any separator other than '.', and
// accepts an optional leading '+' or '-'.
//
// Grounded on Toolbox::decimalFixedPointFromString from LibrePCB's
// core/utils/toolbox.h: split integer/fractional parts, pad-or-truncate
// the fraction, then parse the concatenated digits as a plain integer.
func parseFixedPoint(s string, decimals int) (int64, error) {
	if s == "" {
		return 0, errkind.New(errkind.InvalidNumber, "empty numeric string")
	}

	negative := false
	rest := s
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		negative = true
		rest = rest[1:]
	}
	if rest == "" {
		return 0, errkind.New(errkind.InvalidNumber, "numeric string has no digits: "+s)
	}

	intPart := rest
	fracPart := ""
	if idx := strings.IndexByte(rest, '.'); idx >= 0 {
		intPart = rest[:idx]
		fracPart = rest[idx+1:]
		if strings.ContainsRune(fracPart, '.') {
			return 0, errkind.New(errkind.InvalidNumber, "multiple decimal points in: "+s)
		}
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return 0, errkind.New(errkind.InvalidNumber, "non-digit character in: "+s)
		}
	}

	if len(fracPart) > decimals {
		fracPart = fracPart[:decimals]
	} else {
		fracPart += strings.Repeat("0", decimals-len(fracPart))
	}

	digits := intPart + fracPart
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, errkind.Wrap(errkind.OutOfRange, "value overflows backing integer: "+s, err)
		}
		return 0, errkind.Wrap(errkind.InvalidNumber, "cannot parse: "+s, err)
	}
	if negative {
		value = -value
	}
	return value, nil
}

// formatFixedPoint renders value (a count of the smallest represented unit)
// back to its decimal string with exactly decimals fractional digits,
// trimming trailing zeros but always keeping at least one digit before '.'.
func formatFixedPoint(value int64, decimals int) string {
	negative := value < 0
	abs := value
	if negative {
		abs = -abs
	}

	scale := int64(1)
	for i := 0; i < decimals; i++ {
		scale *= 10
	}

	intPart := abs / scale
	fracPart := abs % scale

	fracStr := ""
	if decimals > 0 {
		fracStr = strconv.FormatInt(fracPart, 10)
		fracStr = strings.Repeat("0", decimals-len(fracStr)) + fracStr
		fracStr = strings.TrimRight(fracStr, "0")
	}

	var b strings.Builder
	if negative && (intPart != 0 || fracStr != "") {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(intPart, 10))
	if fracStr != "" {
		b.WriteByte('.')
		b.WriteString(fracStr)
	}
	return b.String()
}
