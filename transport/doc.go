// Package transport
// Author: momentics <momentics@gmail.com>
//
// Buffered connection wrapper used by hosts that feed the wire parsers
// straight from a socket.
package transport
