// File: uri/params.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package uri

import (
	"sort"
	"strings"
)

// ParseParameterList splits an '&'-delimited key[=value] list.
// Keys and values are returned raw (still percent-encoded). Stray '&'
// separators are skipped, a key without '=' maps to the empty string and
// later duplicates overwrite earlier ones. It never fails.
//
//	sourceid=chrome&ie=UTF-8&q=foo+%26+bar → {sourceid: chrome, ie: UTF-8, q: foo+%26+bar}
func ParseParameterList(s string) map[string]string {
	out := make(map[string]string)
	for s != "" {
		var field string
		if i := strings.IndexByte(s, '&'); i >= 0 {
			field, s = s[:i], s[i+1:]
		} else {
			field, s = s, ""
		}
		if field == "" {
			continue
		}
		key, value, _ := strings.Cut(field, "=")
		if key == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// BuildParameterList joins params as key[=value] pairs in key order.
// Empty keys are dropped and "=value" is omitted for empty values.
// Entries are written verbatim; callers encode them first when needed.
func BuildParameterList(params map[string]string) string {
	return joinParams(params, func(s string) string { return s })
}

func joinParams(params map[string]string, enc func(string) string) string {
	keys := sortedKeys(params)
	var b strings.Builder
	for _, k := range keys {
		if k == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(enc(k))
		if v := params[k]; v != "" {
			b.WriteByte('=')
			b.WriteString(enc(v))
		}
	}
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
