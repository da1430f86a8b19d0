// File: protocol/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import "github.com/momentics/hioload-wire/api"

var (
	// ErrFrame reports malformed or truncated frame input, or an
	// unrepresentable frame description.
	ErrFrame = api.NewError(api.ErrCodeFrame, "protocol: malformed frame")

	// ErrFragmentedOpcode reports a control frame without FIN. It is a peer
	// protocol violation, not a decoding failure: ParseFrame still returns
	// the decoded header alongside it.
	ErrFragmentedOpcode = api.NewError(api.ErrCodeFragmentedOpcode, "protocol: fragmented control frame")

	// ErrMissingKey reports an upgrade request without a usable Sec-WebSocket-Key.
	ErrMissingKey = api.NewError(api.ErrCodeMissingKey, "protocol: missing Sec-WebSocket-Key")

	// ErrInvalidUpgradeHeaders reports Connection/Upgrade tokens that do not request websocket.
	ErrInvalidUpgradeHeaders = api.NewError(api.ErrCodeInvalidUpgrade, "protocol: invalid upgrade headers")
)
