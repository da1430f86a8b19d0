// File: codec/base64.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package codec

import (
	"encoding/base64"
	"strings"

	"github.com/momentics/hioload-wire/api"
)

// ErrInvalidBase64 is returned when a Base64 payload cannot be decoded.
var ErrInvalidBase64 = api.NewError(api.ErrCodeInvalidBase64, "codec: invalid base64 payload")

// Base64Encode encodes data with the standard alphabet and '=' padding.
func Base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64EncodeString is Base64Encode for string input.
func Base64EncodeString(s string) string {
	return Base64Encode([]byte(s))
}

// Base64Decode decodes a padded standard-alphabet payload.
// Surrounding whitespace is ignored, anything else outside the alphabet fails.
func Base64Decode(s string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, ErrInvalidBase64.WithContext("cause", err.Error())
	}
	return out, nil
}
