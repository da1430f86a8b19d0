// Package codec
// Author: momentics <momentics@gmail.com>
//
// Byte and string transforms shared by the HTTP and WebSocket layers of hioload-wire.
//
// Includes:
//   - Base64 (standard alphabet, '=' padding)
//   - Percent-encoding in three eligibility modes and permissive percent-decoding
//   - Hex digit helpers
//   - Native/network byte-order helpers
//
// Every function is pure and safe for concurrent use.
package codec
