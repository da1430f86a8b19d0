// File: protocol/sha1.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import (
	"crypto/sha1"
	"encoding/binary"
)

// SHA1 adapts crypto/sha1 to HashFunc for hosts that have no digest of their own.
func SHA1(data []byte) [5]uint32 {
	sum := sha1.Sum(data)
	var words [5]uint32
	for i := range words {
		words[i] = binary.BigEndian.Uint32(sum[i*4:])
	}
	return words
}
