package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionReqMatches(t *testing.T) {
	cases := []struct {
		req     string
		matches []string
		rejects []string
	}{
		{"^1.2.3", []string{"1.2.3", "1.9.0"}, []string{"1.2.2", "2.0.0"}},
		{"~1.2.3", []string{"1.2.3", "1.2.9"}, []string{"1.3.0", "1.2.2"}},
		{"=1.2.3", []string{"1.2.3"}, []string{"1.2.4"}},
		{">=1.2.3, <2.0.0", []string{"1.2.3", "1.9.9"}, []string{"2.0.0", "1.2.2"}},
		{"*", []string{"0.0.1", "9.9.9"}, nil},
	}
	for _, c := range cases {
		req, err := ParseVersionReq(c.req)
		require.NoError(t, err, c.req)
		for _, v := range c.matches {
			assert.True(t, req.Matches(MustParse(v)), "%s should match %s", c.req, v)
		}
		for _, v := range c.rejects {
			assert.False(t, req.Matches(MustParse(v)), "%s should reject %s", c.req, v)
		}
	}
}

func TestToPkgConfigString(t *testing.T) {
	req, err := ParseVersionReq("^1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "foo >= 1.2.3, foo < 2.0.0", req.ToPkgConfigString("foo"))

	req, err = ParseVersionReq(">=1.2")
	require.NoError(t, err)
	assert.Equal(t, "foo >= 1.2", req.ToPkgConfigString("foo"))

	req, err = ParseVersionReq("*")
	require.NoError(t, err)
	assert.Equal(t, "foo", req.ToPkgConfigString("foo"))
}
