package uri_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-wire/uri"
)

func TestParseFullTarget(t *testing.T) {
	u := uri.Parse("/resource/path%20with%20spaces.ext?param=lolcats%20%26%20cake#anchor")
	require.Equal(t, "/resource/path with spaces.ext", u.Resource)
	require.Equal(t, "anchor", u.Anchor)
	require.Equal(t, map[string]string{"param": "lolcats & cake"}, u.Parameters)

	require.Equal(t, "/resource/path%20with%20spaces.ext?param=lolcats%20%26%20cake#anchor", u.String())
}

func TestParseVariants(t *testing.T) {
	u := uri.Parse("/only/path")
	require.Equal(t, "/only/path", u.Resource)
	require.Empty(t, u.Parameters)
	require.Empty(t, u.Anchor)

	u = uri.Parse("/p#frag")
	require.Equal(t, "/p", u.Resource)
	require.Equal(t, "frag", u.Anchor)
	require.Empty(t, u.Parameters)

	u = uri.Parse("/p?&&a=1&&b&=skip#x#y")
	require.Equal(t, map[string]string{"a": "1", "b": ""}, u.Parameters)
	require.Equal(t, "x#y", u.Anchor)

	u = uri.Parse("/p?a=1###z")
	require.Equal(t, "z", u.Anchor)

	u = uri.Parse("")
	require.Equal(t, "", u.Resource)
	require.NotNil(t, u.Parameters)
}

func TestParseParameterList(t *testing.T) {
	got := uri.ParseParameterList("sourceid=chrome&ie=UTF-8&q=foo+%26+bar&ie=latin1")
	require.Equal(t, map[string]string{
		"sourceid": "chrome",
		"ie":       "latin1",
		"q":        "foo+%26+bar",
	}, got)
	require.Empty(t, uri.ParseParameterList("&&&"))
}

func TestBuildParameterList(t *testing.T) {
	got := uri.BuildParameterList(map[string]string{"b": "2", "a": "1", "flag": "", "": "dropped"})
	require.Equal(t, "a=1&b=2&flag", got)
	require.Equal(t, "", uri.BuildParameterList(nil))
}

func TestRoundTripSafeTargets(t *testing.T) {
	targets := []string{
		"/",
		"/a/b/c.html",
		"/a?x=1",
		"/a?k=v&z=last#top",
		"/a%20b?q=x%26y#a%23b",
		`/win\path?x=a%2Fb`,
	}
	for _, s := range targets {
		require.Equal(t, s, uri.Parse(s).String(), s)
	}
}

func TestFormatRaw(t *testing.T) {
	u := uri.URI{
		Resource:   "/a b",
		Anchor:     "c d",
		Parameters: map[string]string{"k": "v w"},
	}
	require.Equal(t, "/a b?k=v w#c d", u.Format(false))
	require.Equal(t, "/a%20b?k=v%20w#c%20d", u.Format(true))

	v, ok := u.Param("k")
	require.True(t, ok)
	require.Equal(t, "v w", v)
}
