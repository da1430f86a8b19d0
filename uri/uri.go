// Package uri
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Splits a request target into its decoded resource path, query parameters
// and fragment, and composes it back.
//
//	/resource/path%20with%20spaces.ext?param=lolcats%20%26%20cake#anchor
//
// parses into Resource "/resource/path with spaces.ext", Anchor "anchor"
// and Parameters {param: "lolcats & cake"}; String() yields the original form.
package uri

import (
	"strings"

	"github.com/momentics/hioload-wire/codec"
)

// URI is a decoded request target.
type URI struct {
	Resource   string
	Anchor     string
	Parameters map[string]string
}

// Parse splits s on the first '?' and '#' and percent-decodes every part.
// Parsing is best-effort and never fails.
func Parse(s string) URI {
	u := URI{Parameters: make(map[string]string)}

	end := strings.IndexAny(s, "?#")
	if end < 0 {
		u.Resource = codec.DecodeURISafeString(s)
		return u
	}
	u.Resource = codec.DecodeURISafeString(s[:end])
	s = s[end:]

	if s[0] == '?' {
		s = s[1:]
		query := s
		if i := strings.IndexByte(s, '#'); i >= 0 {
			query, s = s[:i], s[i:]
		} else {
			s = ""
		}
		for k, v := range ParseParameterList(query) {
			u.Parameters[codec.DecodeURISafeString(k)] = codec.DecodeURISafeString(v)
		}
	}

	if strings.HasPrefix(s, "#") {
		u.Anchor = codec.DecodeURISafeString(strings.TrimLeft(s, "#"))
	}
	return u
}

// String composes the URI with percent-encoding applied.
func (u URI) String() string {
	return u.Format(true)
}

// Format composes resource, parameters (in key order) and anchor.
// With safe set the resource is encoded in path mode and every other field
// in full RFC 3986 mode; otherwise the stored strings are emitted raw.
func (u URI) Format(safe bool) string {
	path, data := identity, identity
	if safe {
		path = func(s string) string { return codec.EncodeURISafeString(s, codec.EncodeRFC3986Path) }
		data = func(s string) string { return codec.EncodeURISafeString(s, codec.EncodeRFC3986) }
	}

	var b strings.Builder
	b.WriteString(path(u.Resource))
	if params := joinParams(u.Parameters, data); params != "" {
		b.WriteByte('?')
		b.WriteString(params)
	}
	if u.Anchor != "" {
		b.WriteByte('#')
		b.WriteString(data(u.Anchor))
	}
	return b.String()
}

// Param returns a decoded parameter value.
func (u URI) Param(key string) (string, bool) {
	v, ok := u.Parameters[key]
	return v, ok
}

func identity(s string) string { return s }
