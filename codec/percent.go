// File: codec/percent.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Percent-encoding for URI components. Decoding is permissive: malformed
// escapes are copied through literally and never reported as errors.

package codec

import "strings"

// EncodeMode selects which bytes EncodeURISafeString escapes.
type EncodeMode int

const (
	// EncodeRFC3986 escapes the reserved set including '/' and '\'. Use for data.
	EncodeRFC3986 EncodeMode = iota
	// EncodeRFC3986Path escapes the reserved set but leaves '/' and '\'. Use for paths.
	EncodeRFC3986Path
	// EncodeAllNonAlphanumeric escapes everything outside A-Z, a-z, 0-9.
	EncodeAllNonAlphanumeric
)

// String names the mode.
func (m EncodeMode) String() string {
	switch m {
	case EncodeRFC3986:
		return "rfc3986"
	case EncodeRFC3986Path:
		return "rfc3986-path"
	case EncodeAllNonAlphanumeric:
		return "all-non-alphanumeric"
	default:
		return "unknown"
	}
}

const reservedRFC3986 = " !*'\"();:@&=+$,?%#[]"

// IsAlphaNumeric reports whether c is an ASCII letter or digit.
func IsAlphaNumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// needsEncode reports whether c must be escaped under mode.
// Control bytes and non-ASCII bytes are escaped in every mode.
func needsEncode(c byte, mode EncodeMode) bool {
	if c < 0x20 || c >= 0x7F {
		return true
	}
	switch mode {
	case EncodeRFC3986:
		return c == '/' || c == '\\' || strings.IndexByte(reservedRFC3986, c) >= 0
	case EncodeRFC3986Path:
		return strings.IndexByte(reservedRFC3986, c) >= 0
	default:
		return !IsAlphaNumeric(c)
	}
}

// EncodeURISafeString escapes s as %XX sequences according to mode.
func EncodeURISafeString(s string, mode EncodeMode) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if needsEncode(s[i], mode) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if needsEncode(c, mode) {
			b.WriteByte('%')
			b.WriteByte(ToHex(c >> 4))
			b.WriteByte(ToHex(c))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// DecodeURISafeString replaces %XX escapes with their byte value.
// An escape decodes only when both digits are hex and the value is at least 0x20;
// otherwise the '%' and what follows are kept as-is.
func DecodeURISafeString(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) {
			if c, ok := DecodeHexPair(s[i+1], s[i+2]); ok && c >= 0x20 {
				b.WriteByte(c)
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
