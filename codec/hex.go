// File: codec/hex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package codec

const upperHex = "0123456789ABCDEF"

// IsHexDigit reports whether c is in [0-9a-fA-F].
func IsHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}

// HexValue returns the numeric value of a hex digit and false for any other byte.
func HexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ToHex returns the upper-case digit for the low nibble of v.
func ToHex(v byte) byte {
	return upperHex[v&0x0F]
}

// DecodeHexPair combines two hex digits into one byte.
func DecodeHexPair(hi, lo byte) (byte, bool) {
	h, ok := HexValue(hi)
	if !ok {
		return 0, false
	}
	l, ok := HexValue(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}
