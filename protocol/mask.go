// File: protocol/mask.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import "github.com/momentics/hioload-wire/codec"

func maskBytes(key uint32) [4]byte {
	var k [4]byte
	codec.NativeEndian.PutUint32(k[:], key)
	return k
}

// Mask writes src XOR the masking key into dst and returns the number of
// bytes written, min(len(dst), len(src)). dst and src may be the same slice.
func Mask(dst, src []byte, key uint32) int {
	return MaskAt(dst, src, key, 0)
}

// Unmask is Mask: XOR masking is its own inverse.
func Unmask(dst, src []byte, key uint32) int {
	return Mask(dst, src, key)
}

// MaskInPlace masks buf in place.
func MaskInPlace(buf []byte, key uint32) {
	MaskAt(buf, buf, key, 0)
}

// MaskAt masks a chunk that starts pos bytes into the payload, so a payload
// can be processed piecewise.
func MaskAt(dst, src []byte, key uint32, pos int) int {
	k := maskBytes(key)
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i] ^ k[(pos+i)&3]
	}
	return n
}
