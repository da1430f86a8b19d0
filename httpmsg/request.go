// File: httpmsg/request.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Request preamble parser:
//
//	METHOD SP resource SP HTTP/1.x CRLF
//	*(Key: Value CRLF)
//	CRLF
//
// A bare LF is accepted wherever CRLF is. The first grammar violation aborts
// the parse; no partially filled Request is ever returned.

package httpmsg

import (
	"strings"

	"github.com/momentics/hioload-wire/api"
	"github.com/momentics/hioload-wire/codec"
	"github.com/momentics/hioload-wire/uri"
)

// HeaderAuthorization is consumed by the parser and never stored in Headers.
const HeaderAuthorization = "Authorization"

// Request is a parsed request preamble.
type Request struct {
	Method   Method
	Protocol Protocol

	// ResourceURI is the raw request target, not percent-decoded.
	ResourceURI string

	// AuthMode is AuthNone when no credentials were sent; with AuthBasic
	// AuthUser and AuthPassword hold the decoded credentials.
	AuthMode     AuthMode
	AuthUser     string
	AuthPassword string

	// Headers holds every other header line. Keys are case-sensitive as
	// received and the last duplicate wins.
	Headers map[string]string
}

// Header returns the value stored under exactly name.
func (r *Request) Header(name string) (string, bool) {
	v, ok := r.Headers[name]
	return v, ok
}

// URI decodes ResourceURI into its path, parameters and anchor.
func (r *Request) URI() uri.URI {
	return uri.Parse(r.ResourceURI)
}

// ParseRequest parses the request preamble at the start of buf.
// On success it also returns the offset of the first byte after the blank
// line that ends the header block; anything from there on is body data the
// caller interprets. A header block cut short by the end of buf is accepted.
func ParseRequest(buf []byte) (Request, int, error) {
	c := &cursor{buf: buf}
	req := Request{
		Protocol: ProtocolHTTP11,
		Headers:  make(map[string]string),
	}

	if err := parseRequestLine(c, &req); err != nil {
		return Request{}, 0, err
	}

	for !c.eof() {
		if c.newline() {
			break
		}
		key, value, err := parseHeaderLine(c)
		if err != nil {
			return Request{}, 0, err
		}
		if strings.EqualFold(key, HeaderAuthorization) {
			if err := decodeBasicAuth(value, &req); err != nil {
				return Request{}, 0, err.WithContext("offset", c.pos)
			}
			continue
		}
		req.Headers[key] = value
	}

	return req, c.pos, nil
}

func parseRequestLine(c *cursor, req *Request) error {
	method, ok := matchMethod(c)
	if !ok {
		return ErrUnknownMethod.WithContext("offset", c.pos)
	}
	req.Method = method

	c.skipBlanks()
	req.ResourceURI = c.word()
	if req.ResourceURI == "" {
		return ErrMalformed.WithContext("offset", c.pos).WithContext("reason", "empty resource")
	}
	c.skipBlanks()

	switch {
	case c.match("HTTP/1.0"):
		req.Protocol = ProtocolHTTP10
	case c.match("HTTP/1.1"):
		req.Protocol = ProtocolHTTP11
	default:
		return ErrUnknownProtocol.WithContext("offset", c.pos)
	}

	if !c.newline() {
		return ErrMalformed.WithContext("offset", c.pos).WithContext("reason", "request line not terminated")
	}
	return nil
}

// matchMethod consumes the longest method literal at the cursor.
func matchMethod(c *cursor) (Method, bool) {
	best, bestLen := Method(-1), 0
	for m, name := range methodNames {
		if len(name) > bestLen && c.hasPrefix(name) {
			best, bestLen = Method(m), len(name)
		}
	}
	if bestLen == 0 {
		return 0, false
	}
	c.pos += bestLen
	return best, true
}

// parseHeaderLine reads "Key: Value" and the optional line terminator.
func parseHeaderLine(c *cursor) (string, string, error) {
	start := c.pos
	for !c.eof() {
		b := c.buf[c.pos]
		if b == ':' || isNewline(b) {
			break
		}
		if isSpace(b) {
			return "", "", ErrMalformed.WithContext("offset", c.pos).WithContext("reason", "whitespace in header name")
		}
		c.pos++
	}
	if c.peek() != ':' || c.pos == start {
		return "", "", ErrMalformed.WithContext("offset", c.pos).WithContext("reason", "header line without name")
	}
	key := string(c.buf[start:c.pos])
	c.pos++

	c.skipBlanks()
	value := c.line()
	if !c.newline() && c.pos == len(c.buf)-1 && c.peek() == '\r' {
		// CR cut off from its LF by the end of input
		c.pos++
	}
	return key, value, nil
}

// decodeBasicAuth handles "Basic <base64(user:password)>".
func decodeBasicAuth(value string, req *Request) *api.Error {
	rest, ok := strings.CutPrefix(value, "Basic")
	if !ok || rest == "" || !isSpace(rest[0]) {
		return ErrMalformedAuth
	}
	payload := strings.TrimLeft(rest, " \t\v\f")
	if payload == "" {
		return ErrMalformedAuth
	}

	credentials, err := codec.Base64Decode(payload)
	if err != nil {
		return ErrMalformedAuth.WithContext("cause", err.Error())
	}

	user, password, _ := strings.Cut(string(credentials), ":")
	req.AuthMode = AuthBasic
	req.AuthUser = user
	req.AuthPassword = password
	return nil
}
