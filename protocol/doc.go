// Package protocol
// Author: momentics <momentics@gmail.com>
//
// Implements the WebSocket wire layer (RFC 6455) for hioload-wire.
//
// Includes:
//   - Upgrade detection and the Sec-WebSocket-Accept handshake response
//   - Frame header decode/encode over caller-owned byte slices
//   - Control and close frame helpers
//   - Payload masking
//
// Every call is a pure transform; nothing is buffered between frames and
// fragmented messages are never reassembled. The SHA-1 primitive used by the
// handshake is injected by the host as a HashFunc.
package protocol
