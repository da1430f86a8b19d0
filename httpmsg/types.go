// File: httpmsg/types.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package httpmsg

// Method is a supported request method.
type Method int

const (
	MethodGet Method = iota
	MethodPut
	MethodPost
	MethodDelete
	MethodHead
	MethodOptions
)

var methodNames = [...]string{
	MethodGet:     "GET",
	MethodPut:     "PUT",
	MethodPost:    "POST",
	MethodDelete:  "DELETE",
	MethodHead:    "HEAD",
	MethodOptions: "OPTIONS",
}

// String returns the wire literal, or "" for values outside the table.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return ""
	}
	return methodNames[m]
}

// Protocol is the HTTP version of a request or response.
type Protocol int

const (
	ProtocolHTTP10 Protocol = iota
	ProtocolHTTP11
)

var protocolNames = [...]string{
	ProtocolHTTP10: "HTTP/1.0",
	ProtocolHTTP11: "HTTP/1.1",
}

func (p Protocol) String() string {
	if p < 0 || int(p) >= len(protocolNames) {
		return ""
	}
	return protocolNames[p]
}

// AuthMode is the authentication scheme of a request or challenge.
type AuthMode int

const (
	AuthNone AuthMode = iota
	AuthBasic
)

func (a AuthMode) String() string {
	switch a {
	case AuthNone:
		return "None"
	case AuthBasic:
		return "Basic"
	default:
		return ""
	}
}
