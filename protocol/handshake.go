// File: protocol/handshake.go
// Package protocol implements the server side of the WebSocket upgrade.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The accept key is base64(hash(key + GUID)) where hash is a 160-bit digest
// supplied by the host as five 32-bit words.

package protocol

import (
	"strings"

	"github.com/momentics/hioload-wire/codec"
	"github.com/momentics/hioload-wire/httpmsg"
)

// Constants used for handshake processing.
const (
	WebSocketGUID             = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"
	HeaderConnection          = "Connection"
	HeaderUpgrade             = "Upgrade"
	HeaderSecWebSocketKey     = "Sec-WebSocket-Key"
	HeaderSecWebSocketAccept  = "Sec-WebSocket-Accept"
	HeaderSecWebSocketVersion = "Sec-WebSocket-Version"
	ValueUpgrade              = "Upgrade"
	ValueWebSocket            = "websocket"
	ServerWebSocketVersion    = "17"
)

// HashFunc computes a 160-bit digest as five host-order words (H0..H4).
type HashFunc func(data []byte) [5]uint32

// IsWebsocketRequest reports whether req carries both Upgrade and
// Sec-WebSocket-Key headers.
func IsWebsocketRequest(req *httpmsg.Request) bool {
	_, upgrade := req.Headers[HeaderUpgrade]
	_, key := req.Headers[HeaderSecWebSocketKey]
	return upgrade && key
}

// ValidateUpgrade additionally checks that Connection lists "upgrade" and
// Upgrade lists "websocket" (comma-separated, case-insensitive).
func ValidateUpgrade(req *httpmsg.Request) error {
	if !containsToken(req.Headers[HeaderConnection], ValueUpgrade) ||
		!containsToken(req.Headers[HeaderUpgrade], ValueWebSocket) {
		return ErrInvalidUpgradeHeaders
	}
	if req.Headers[HeaderSecWebSocketKey] == "" {
		return ErrMissingKey
	}
	return nil
}

// ComputeAcceptKey derives the Sec-WebSocket-Accept value for key.
func ComputeAcceptKey(key string, hash HashFunc) string {
	words := hash([]byte(key + WebSocketGUID))
	var digest [20]byte
	codec.PutWordsNetworkOrder(digest[:], words[:])
	return codec.Base64Encode(digest[:])
}

// BuildResponse prepares the 101 Switching Protocols response for req.
func BuildResponse(req *httpmsg.Request, hash HashFunc) (*httpmsg.ResponseBuilder, error) {
	key := req.Headers[HeaderSecWebSocketKey]
	if key == "" {
		return nil, ErrMissingKey
	}
	if hash == nil {
		return nil, ErrMissingKey.WithContext("reason", "no hash function")
	}

	resp := httpmsg.NewResponseBuilder()
	resp.Protocol = httpmsg.ProtocolHTTP11
	resp.Code = httpmsg.StatusSwitchingProtocols
	resp.AddKey(HeaderUpgrade, ValueWebSocket).
		AddKey(HeaderConnection, ValueUpgrade).
		AddKey(HeaderSecWebSocketAccept, ComputeAcceptKey(key, hash)).
		AddKey(HeaderSecWebSocketVersion, ServerWebSocketVersion)
	return resp, nil
}

// containsToken checks if a comma-separated header value holds token (case-insensitive).
func containsToken(headerValue, token string) bool {
	for _, p := range strings.Split(headerValue, ",") {
		if strings.EqualFold(strings.TrimSpace(p), token) {
			return true
		}
	}
	return false
}
