// File: httpmsg/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package httpmsg

import "github.com/momentics/hioload-wire/api"

// Request grammar errors. Each aborts the parse that produced it.
var (
	ErrMalformed       = api.NewError(api.ErrCodeMalformed, "httpmsg: malformed request")
	ErrUnknownMethod   = api.NewError(api.ErrCodeUnknownMethod, "httpmsg: unknown method")
	ErrUnknownProtocol = api.NewError(api.ErrCodeUnknownProtocol, "httpmsg: unknown protocol")
	ErrMalformedAuth   = api.NewError(api.ErrCodeMalformedAuth, "httpmsg: malformed authorization")
)

// Response construction errors: the builder was not fully configured.
var (
	ErrNeedContentMime = api.NewError(api.ErrCodeNeedContentMime, "httpmsg: content mime type required")
	ErrNeedRedirectURI = api.NewError(api.ErrCodeNeedRedirectURI, "httpmsg: redirect uri required")
	ErrNeedAuthMode    = api.NewError(api.ErrCodeNeedAuthMode, "httpmsg: auth mode required")
	ErrNeedAuthRealm   = api.NewError(api.ErrCodeNeedAuthRealm, "httpmsg: auth realm required")
)
