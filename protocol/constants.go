// Package protocol
// Author: momentics <momentics@gmail.com>
//
// WebSocket wire protocol constants

package protocol

import "strconv"

// Opcode is the 4-bit frame type.
type Opcode byte

const (
	// Data opcodes (<0x8)
	OpcodeContinuation Opcode = 0x0
	OpcodeText         Opcode = 0x1
	OpcodeBinary       Opcode = 0x2

	// Control opcodes (>=0x8)
	OpcodeClose Opcode = 0x8
	OpcodePing  Opcode = 0x9
	OpcodePong  Opcode = 0xA
)

// IsControl reports whether the opcode has its top bit set.
func (o Opcode) IsControl() bool { return o&controlBit != 0 }

func (o Opcode) String() string {
	switch o {
	case OpcodeContinuation:
		return "continuation"
	case OpcodeText:
		return "text"
	case OpcodeBinary:
		return "binary"
	case OpcodeClose:
		return "close"
	case OpcodePing:
		return "ping"
	case OpcodePong:
		return "pong"
	default:
		return "opcode_" + strconv.Itoa(int(o))
	}
}

const (
	// Frame limit settings
	MaxControlPayloadLen = 125
	MaxFrameHeaderLen    = 14 // base + 8-byte length + masking key
	MaxPackedHeaderLen   = MaxFrameHeaderLen + 2

	// Byte 0
	FinBit     = 0x80
	Rsv1Bit    = 0x40
	Rsv2Bit    = 0x20
	Rsv3Bit    = 0x10
	OpcodeMask = 0x0F

	// Byte 1
	MaskBit       = 0x80
	LengthMask    = 0x7F
	Length16Bit   = 126
	Length64Bit   = 127
	MaxInlineLen  = 125
	MaxPayloadLen = 1<<63 - 1

	controlBit = 0x08
)

// CloseReason is the 16-bit status code carried by a close frame.
type CloseReason uint16

// Close codes
const (
	CloseNormalClosure      CloseReason = 1000
	CloseGoingAway          CloseReason = 1001
	CloseProtocolError      CloseReason = 1002
	CloseUnsupportedData    CloseReason = 1003
	CloseReserved           CloseReason = 1004
	CloseNoStatusRcvd       CloseReason = 1005
	CloseAbnormalClosure    CloseReason = 1006
	CloseInvalidPayloadData CloseReason = 1007
	ClosePolicyViolation    CloseReason = 1008
	CloseMessageTooBig      CloseReason = 1009
	CloseMissingExtension   CloseReason = 1010
	CloseInternalServerErr  CloseReason = 1011
)

var closeReasonNames = map[CloseReason]string{
	CloseNormalClosure:      "normal closure",
	CloseGoingAway:          "going away",
	CloseProtocolError:      "protocol error",
	CloseUnsupportedData:    "unsupported data",
	CloseReserved:           "reserved",
	CloseNoStatusRcvd:       "no status received",
	CloseAbnormalClosure:    "abnormal closure",
	CloseInvalidPayloadData: "invalid payload data",
	ClosePolicyViolation:    "policy violation",
	CloseMessageTooBig:      "message too big",
	CloseMissingExtension:   "missing extension",
	CloseInternalServerErr:  "internal server error",
}

func (r CloseReason) String() string {
	if s, ok := closeReasonNames[r]; ok {
		return s
	}
	return "close_" + strconv.Itoa(int(r))
}
