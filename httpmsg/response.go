// File: httpmsg/response.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Response preamble builder. Status-line variants:
//
//	301, 302  → "<proto> URI: <redirect>"
//	303       → "<proto> Method: <METHOD> <redirect>"
//	otherwise → "<proto> <code> <reason>"
//
// followed by an optional WWW-Authenticate challenge (401 only), an optional
// Server line, the extra header lines in insertion order and a blank line.

package httpmsg

import (
	"strconv"

	"github.com/eapache/queue"
	"github.com/valyala/bytebufferpool"
)

const crlf = "\r\n"

// Header names set by the content helpers.
const (
	HeaderContentType     = "Content-Type"
	HeaderContentLength   = "Content-Length"
	HeaderConnection      = "Connection"
	HeaderServer          = "Server"
	HeaderWWWAuthenticate = "WWW-Authenticate"
)

// ResponseBuilder accumulates a response description and serializes it.
// Build does not consume the builder, so the same state can be emitted
// any number of times. A builder is not safe for concurrent mutation.
type ResponseBuilder struct {
	Protocol Protocol
	Code     StatusCode

	// Method and RedirectURI feed the 301/302/303 status-line forms.
	Method      Method
	RedirectURI string

	// AuthMode and AuthRealm are required for 401 responses.
	AuthMode  AuthMode
	AuthRealm string

	// ServerName, when set, is emitted as a Server header.
	ServerName string

	// StatusText overrides the reason-phrase table; nil selects the default.
	StatusText StatusTable

	order *queue.Queue
	extra map[string]string
}

// NewResponseBuilder returns a builder for "HTTP/1.1 200 OK" without auth.
func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{
		Protocol: ProtocolHTTP11,
		Code:     StatusOK,
		Method:   MethodGet,
		AuthMode: AuthNone,
	}
}

// AddKey records an extra header line. Empty names are ignored; adding a
// name again replaces its value but keeps its original position.
func (b *ResponseBuilder) AddKey(name, value string) *ResponseBuilder {
	if name == "" {
		return b
	}
	if b.extra == nil {
		b.extra = make(map[string]string)
		b.order = queue.New()
	}
	if _, seen := b.extra[name]; !seen {
		b.order.Add(name)
	}
	b.extra[name] = value
	return b
}

// Key returns the value recorded for an extra header line.
func (b *ResponseBuilder) Key(name string) (string, bool) {
	v, ok := b.extra[name]
	return v, ok
}

// Keys returns the extra header names in emission order.
func (b *ResponseBuilder) Keys() []string {
	if b.order == nil {
		return nil
	}
	keys := make([]string, b.order.Length())
	for i := range keys {
		keys[i] = b.order.Get(i).(string)
	}
	return keys
}

// AddBinaryHeaders sets Content-Type, Content-Length and Connection: close.
func (b *ResponseBuilder) AddBinaryHeaders(contentLength uint64, mimeType string) error {
	if mimeType == "" {
		return ErrNeedContentMime
	}
	b.addContentHeaders(contentLength, mimeType)
	return nil
}

// AddTextHeaders is AddBinaryHeaders with a "; <encoding>" suffix on the type.
func (b *ResponseBuilder) AddTextHeaders(contentLength uint64, mimeType, encoding string) error {
	if mimeType == "" || encoding == "" {
		return ErrNeedContentMime
	}
	b.addContentHeaders(contentLength, mimeType+"; "+encoding)
	return nil
}

func (b *ResponseBuilder) addContentHeaders(contentLength uint64, contentType string) {
	b.AddKey(HeaderContentType, contentType)
	b.AddKey(HeaderContentLength, strconv.FormatUint(contentLength, 10))
	b.AddKey(HeaderConnection, "close")
}

// Validate reports the first configuration error Build would return.
func (b *ResponseBuilder) Validate() error {
	switch b.Code {
	case StatusMoved, StatusFound, StatusMethod:
		if b.RedirectURI == "" {
			return ErrNeedRedirectURI.WithContext("code", int(b.Code))
		}
	case StatusUnauthorized:
		if b.AuthMode == AuthNone {
			return ErrNeedAuthMode
		}
		if b.AuthRealm == "" {
			return ErrNeedAuthRealm
		}
	}
	return nil
}

// Build serializes the preamble. On error no bytes are produced.
// The returned slice is owned by the caller.
func (b *ResponseBuilder) Build() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(b.Protocol.String())
	buf.WriteByte(' ')

	switch b.Code {
	case StatusMoved, StatusFound:
		buf.WriteString("URI: ")
		buf.WriteString(b.RedirectURI)
	case StatusMethod:
		buf.WriteString("Method: ")
		buf.WriteString(b.Method.String())
		buf.WriteByte(' ')
		buf.WriteString(b.RedirectURI)
	default:
		buf.B = strconv.AppendInt(buf.B, int64(b.Code), 10)
		buf.WriteByte(' ')
		buf.WriteString(b.StatusText.Text(b.Code))
	}
	buf.WriteString(crlf)

	if b.Code == StatusUnauthorized {
		writeLine(buf, HeaderWWWAuthenticate, b.AuthMode.String()+` realm="`+b.AuthRealm+`"`)
	}
	if b.ServerName != "" {
		writeLine(buf, HeaderServer, b.ServerName)
	}
	for _, name := range b.Keys() {
		writeLine(buf, name, b.extra[name])
	}
	buf.WriteString(crlf)

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

// writeLine emits "Name: value", or "Name:" for an empty value.
func writeLine(buf *bytebufferpool.ByteBuffer, name, value string) {
	buf.WriteString(name)
	buf.WriteByte(':')
	if value != "" {
		buf.WriteByte(' ')
		buf.WriteString(value)
	}
	buf.WriteString(crlf)
}
