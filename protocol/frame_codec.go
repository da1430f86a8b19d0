// File: protocol/frame_codec.go
// Package protocol implements the zero-copy frame header codec.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Wire layout:
//
//	byte 0: FIN RSV1 RSV2 RSV3 opcode(4)
//	byte 1: MASK length(7)       126 → 16-bit length follows, 127 → 64-bit length follows
//	[2 or 8 bytes network-order length] [4 bytes masking key] payload...

package protocol

import (
	"encoding/binary"

	"github.com/momentics/hioload-wire/codec"
)

// ParseFrame decodes the frame header at the start of buf and returns the
// offset of the payload. The payload itself is neither copied nor required
// to be present; see FramePayload.
//
// A control frame without FIN yields the decoded header together with
// ErrFragmentedOpcode so the host can answer with a protocol-error close.
func ParseFrame(buf []byte) (FrameInfo, int, error) {
	var info FrameInfo
	if len(buf) < 2 {
		return FrameInfo{}, 0, ErrFrame.WithContext("need", 2).WithContext("have", len(buf))
	}

	info.flags = buf[0] & (FinBit | Rsv1Bit | Rsv2Bit | Rsv3Bit)
	info.Opcode = Opcode(buf[0] & OpcodeMask)
	info.SetMasked(buf[1]&MaskBit != 0)

	off := 2
	switch n := buf[1] & LengthMask; n {
	case Length64Bit:
		if len(buf) < off+8 {
			return FrameInfo{}, 0, ErrFrame.WithContext("need", off+8).WithContext("have", len(buf))
		}
		info.PayloadLength = binary.BigEndian.Uint64(buf[off:]) & MaxPayloadLen
		off += 8
	case Length16Bit:
		if len(buf) < off+2 {
			return FrameInfo{}, 0, ErrFrame.WithContext("need", off+2).WithContext("have", len(buf))
		}
		info.PayloadLength = uint64(binary.BigEndian.Uint16(buf[off:]))
		off += 2
	default:
		info.PayloadLength = uint64(n)
	}

	if info.Masked() {
		if len(buf) < off+4 {
			return FrameInfo{}, 0, ErrFrame.WithContext("need", off+4).WithContext("have", len(buf))
		}
		info.MaskingKey = codec.NativeEndian.Uint32(buf[off:])
		off += 4
	}

	if info.Opcode.IsControl() && !info.Final() {
		return info, off, ErrFragmentedOpcode.WithContext("opcode", info.Opcode.String())
	}
	return info, off, nil
}

// FramePayload returns the payload view of a frame parsed from buf.
// The slice borrows from buf.
func FramePayload(buf []byte, info FrameInfo, offset int) ([]byte, error) {
	if offset < 0 || offset > len(buf) || uint64(len(buf)-offset) < info.PayloadLength {
		return nil, ErrFrame.WithContext("reason", "payload truncated")
	}
	return buf[offset : offset+int(info.PayloadLength)], nil
}

// SetFrame encodes info into a packed header using the smallest length tier.
func SetFrame(info FrameInfo) (PackedHeader, error) {
	var h PackedHeader
	if info.Opcode > OpcodeMask {
		return h, ErrFrame.WithContext("reason", "opcode out of range")
	}
	if info.PayloadLength > MaxPayloadLen {
		return h, ErrFrame.WithContext("reason", "payload length out of range")
	}
	if info.Opcode.IsControl() && !info.Final() {
		return h, ErrFragmentedOpcode.WithContext("opcode", info.Opcode.String())
	}

	h.data[0] = info.flags&(FinBit|Rsv1Bit|Rsv2Bit|Rsv3Bit) | byte(info.Opcode)
	if info.Masked() {
		h.data[1] = MaskBit
	}
	h.n = 2

	switch {
	case info.PayloadLength > 0xFFFF:
		h.data[1] |= Length64Bit
		binary.BigEndian.PutUint64(h.data[h.n:], info.PayloadLength)
		h.n += 8
	case info.PayloadLength > MaxInlineLen:
		h.data[1] |= Length16Bit
		binary.BigEndian.PutUint16(h.data[h.n:], uint16(info.PayloadLength))
		h.n += 2
	default:
		h.data[1] |= byte(info.PayloadLength)
	}

	if info.Masked() {
		codec.NativeEndian.PutUint32(h.data[h.n:], info.MaskingKey)
		h.n += 4
	}
	return h, nil
}

// SetControlFrame encodes a final, unmasked frame with no RSV bits.
func SetControlFrame(op Opcode, payloadLength uint64) (PackedHeader, error) {
	return SetFrame(NewFrameInfo(op, payloadLength))
}

// SetCloseFrame encodes a close frame header followed by the big-endian
// reason code. payloadLength counts only the bytes after the reason; the
// encoded length includes the two reason bytes.
func SetCloseFrame(reason CloseReason, payloadLength uint64) (PackedHeader, error) {
	if payloadLength > MaxPayloadLen-2 {
		return PackedHeader{}, ErrFrame.WithContext("reason", "payload length out of range")
	}
	h, err := SetFrame(NewFrameInfo(OpcodeClose, payloadLength+2))
	if err != nil {
		return PackedHeader{}, err
	}
	if err := h.append(byte(reason>>8), byte(reason)); err != nil {
		return PackedHeader{}, err
	}
	return h, nil
}

// ParseCloseReason reads the reason code from a close frame payload.
// An empty payload carries no status and reports CloseNoStatusRcvd.
func ParseCloseReason(payload []byte) (CloseReason, []byte, error) {
	switch len(payload) {
	case 0:
		return CloseNoStatusRcvd, nil, nil
	case 1:
		return 0, nil, ErrFrame.WithContext("reason", "close payload of one byte")
	}
	return CloseReason(binary.BigEndian.Uint16(payload)), payload[2:], nil
}
