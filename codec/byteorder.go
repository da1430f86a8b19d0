// File: codec/byteorder.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte-order helpers. Wire lengths are big-endian; the WebSocket masking key
// is kept as a host-order integer, so both the reader and the writer go through
// NativeEndian.

package codec

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// NativeEndian is the byte order of the running CPU.
var NativeEndian binary.ByteOrder = nativeOrder()

// NetworkOrder is the byte order used for all multi-byte wire fields.
var NetworkOrder binary.ByteOrder = binary.BigEndian

func nativeOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// IsBigEndianHost reports whether the host stores integers big-endian.
func IsBigEndianHost() bool {
	return cpu.IsBigEndian
}

// ByteSwap16 reverses the byte order of v.
func ByteSwap16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// ByteSwap32 reverses the byte order of v.
func ByteSwap32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// ByteSwap64 reverses the byte order of v.
func ByteSwap64(v uint64) uint64 { return bits.ReverseBytes64(v) }

// PutWordsNetworkOrder writes each word big-endian into dst, which must hold 4*len(words) bytes.
func PutWordsNetworkOrder(dst []byte, words []uint32) {
	for i, w := range words {
		binary.BigEndian.PutUint32(dst[i*4:], w)
	}
}
