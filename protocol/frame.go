// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Frame header value types. Flag bits are kept in one byte and accessed
// through explicit masks rather than struct bit-fields.

package protocol

// flagMasked shares the flags byte with FIN/RSV, which live in the high nibble.
const flagMasked = 0x01

// FrameInfo describes one frame header.
type FrameInfo struct {
	flags byte

	Opcode Opcode

	// MaskingKey is meaningful only when Masked() is true. It is a host-order
	// integer: ParseFrame and SetFrame both move it through codec.NativeEndian.
	MaskingKey uint32

	// PayloadLength is at most MaxPayloadLen.
	PayloadLength uint64
}

func (f FrameInfo) has(bit byte) bool { return f.flags&bit != 0 }

func (f *FrameInfo) set(bit byte, on bool) {
	if on {
		f.flags |= bit
	} else {
		f.flags &^= bit
	}
}

func (f FrameInfo) Final() bool  { return f.has(FinBit) }
func (f FrameInfo) RSV1() bool   { return f.has(Rsv1Bit) }
func (f FrameInfo) RSV2() bool   { return f.has(Rsv2Bit) }
func (f FrameInfo) RSV3() bool   { return f.has(Rsv3Bit) }
func (f FrameInfo) Masked() bool { return f.has(flagMasked) }

func (f *FrameInfo) SetFinal(on bool)  { f.set(FinBit, on) }
func (f *FrameInfo) SetRSV1(on bool)   { f.set(Rsv1Bit, on) }
func (f *FrameInfo) SetRSV2(on bool)   { f.set(Rsv2Bit, on) }
func (f *FrameInfo) SetRSV3(on bool)   { f.set(Rsv3Bit, on) }
func (f *FrameInfo) SetMasked(on bool) { f.set(flagMasked, on) }

// SetMaskingKey stores key and marks the frame masked.
func (f *FrameInfo) SetMaskingKey(key uint32) {
	f.MaskingKey = key
	f.SetMasked(true)
}

// HeaderLen is the encoded header size for this description.
func (f FrameInfo) HeaderLen() int {
	n := 2
	switch {
	case f.PayloadLength > 0xFFFF:
		n += 8
	case f.PayloadLength > MaxInlineLen:
		n += 2
	}
	if f.Masked() {
		n += 4
	}
	return n
}

// NewFrameInfo returns an unmasked final frame description.
func NewFrameInfo(op Opcode, payloadLength uint64) FrameInfo {
	f := FrameInfo{Opcode: op, PayloadLength: payloadLength}
	f.SetFinal(true)
	return f
}

// PackedHeader holds an encoded frame header, optionally followed by the
// 2-byte close reason, in a fixed buffer.
type PackedHeader struct {
	data [MaxPackedHeaderLen]byte
	n    int
}

// Bytes returns the used part of the buffer. The slice aliases h.
func (h *PackedHeader) Bytes() []byte { return h.data[:h.n] }

// Len is the number of bytes in use.
func (h *PackedHeader) Len() int { return h.n }

// append adds b after the used bytes, failing instead of overflowing.
func (h *PackedHeader) append(b ...byte) error {
	if h.n+len(b) > len(h.data) {
		return ErrFrame.WithContext("reason", "packed header overflow")
	}
	h.n += copy(h.data[h.n:], b)
	return nil
}
