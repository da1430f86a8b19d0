// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-wire.

package api

import "fmt"

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota

	// Request grammar.
	ErrCodeMalformed
	ErrCodeUnknownMethod
	ErrCodeUnknownProtocol
	ErrCodeMalformedAuth

	// Response preamble construction.
	ErrCodeNeedContentMime
	ErrCodeNeedRedirectURI
	ErrCodeNeedAuthMode
	ErrCodeNeedAuthRealm

	// WebSocket.
	ErrCodeFrame
	ErrCodeFragmentedOpcode
	ErrCodeMissingKey
	ErrCodeInvalidUpgrade

	ErrCodeInvalidBase64
	ErrCodeInvalidConfig
	ErrCodeInvalidArgument
	ErrCodeInternal
)

var codeNames = map[ErrorCode]string{
	ErrCodeOK:               "ok",
	ErrCodeMalformed:        "malformed",
	ErrCodeUnknownMethod:    "unknown_method",
	ErrCodeUnknownProtocol:  "unknown_protocol",
	ErrCodeMalformedAuth:    "malformed_auth",
	ErrCodeNeedContentMime:  "need_content_mime",
	ErrCodeNeedRedirectURI:  "need_redirect_uri",
	ErrCodeNeedAuthMode:     "need_auth_mode",
	ErrCodeNeedAuthRealm:    "need_auth_realm",
	ErrCodeFrame:            "frame_error",
	ErrCodeFragmentedOpcode: "fragmented_opcode",
	ErrCodeMissingKey:       "missing_key",
	ErrCodeInvalidUpgrade:   "invalid_upgrade",
	ErrCodeInvalidBase64:    "invalid_base64",
	ErrCodeInvalidConfig:    "invalid_config",
	ErrCodeInvalidArgument:  "invalid_argument",
	ErrCodeInternal:         "internal",
}

// String returns a stable snake_case name, suitable as a metric label.
func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code_%d", int(c))
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Is reports whether target is an *Error with the same code.
// Context is ignored, so a sentinel matches every error derived from it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext returns a copy of e carrying an extra context entry.
// The receiver is left untouched so package-level sentinels stay immutable.
func (e *Error) WithContext(key string, value any) *Error {
	ctx := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// CodeOf extracts the ErrorCode carried by err, or ErrCodeInternal
// for foreign errors and ErrCodeOK for nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrCodeInternal
}
