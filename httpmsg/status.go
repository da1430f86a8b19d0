// File: httpmsg/status.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Status codes and their reason phrases. The default table is read-only
// package data; hosts that need other phrases derive their own StatusTable.

package httpmsg

// StatusCode is a numeric response code.
type StatusCode int

const (
	// Informational
	StatusContinue           StatusCode = 100
	StatusSwitchingProtocols StatusCode = 101
	StatusProcessing         StatusCode = 102

	// Success
	StatusOK               StatusCode = 200
	StatusCreated          StatusCode = 201
	StatusAccepted         StatusCode = 202
	StatusNonAuthoritative StatusCode = 203
	StatusNoContent        StatusCode = 204
	StatusResetContent     StatusCode = 205
	StatusPartialContent   StatusCode = 206

	// Redirection. 301/302 use the "URI:" status-line form, 303 the "Method:" form.
	StatusMoved       StatusCode = 301
	StatusFound       StatusCode = 302
	StatusMethod      StatusCode = 303
	StatusNotModified StatusCode = 304

	// Client error
	StatusBadRequest      StatusCode = 400
	StatusUnauthorized    StatusCode = 401
	StatusPaymentRequired StatusCode = 402
	StatusForbidden       StatusCode = 403
	StatusNotFound        StatusCode = 404

	// Server error
	StatusNotImplemented StatusCode = 500
	StatusServerBusy     StatusCode = 501
	StatusGatewayTimeout StatusCode = 502
)

// StatusTable maps status codes to reason phrases.
type StatusTable map[StatusCode]string

var defaultStatusText = StatusTable{
	StatusContinue:           "Continue",
	StatusSwitchingProtocols: "Switching Protocols",
	StatusProcessing:         "Processing",

	StatusOK:               "OK",
	StatusCreated:          "Created",
	StatusAccepted:         "Accepted",
	StatusNonAuthoritative: "Non-Authoritative Information",
	StatusNoContent:        "No Content",
	StatusResetContent:     "Reset Content",
	StatusPartialContent:   "Partial Content",

	StatusMoved:       "",
	StatusFound:       "",
	StatusMethod:      "",
	StatusNotModified: "",

	StatusBadRequest:      "Bad Request",
	StatusUnauthorized:    "Unauthorized",
	StatusPaymentRequired: "Payment Required",
	StatusForbidden:       "Forbidden",
	StatusNotFound:        "Not Found",

	StatusNotImplemented: "Not Implemented",
	StatusServerBusy:     "Server Busy",
	StatusGatewayTimeout: "Gateway Time-Out",
}

// StatusText returns the default reason phrase for code, "" when unknown.
func StatusText(code StatusCode) string {
	return defaultStatusText[code]
}

// DefaultStatusTable returns a private copy of the built-in table.
func DefaultStatusTable() StatusTable {
	return defaultStatusText.Extend(nil)
}

// Extend returns a new table holding t overlaid with overrides.
// Neither t nor overrides is modified.
func (t StatusTable) Extend(overrides map[StatusCode]string) StatusTable {
	out := make(StatusTable, len(t)+len(overrides))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Text looks code up in t, falling back to the default table for a nil t.
func (t StatusTable) Text(code StatusCode) string {
	if t == nil {
		return StatusText(code)
	}
	return t[code]
}
