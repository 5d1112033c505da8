package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"0.0.0",
		"1.2.3",
		"10.20.30",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-0.3.7",
		"1.0.0-x.7.z.92",
		"1.0.0+20130313144700",
		"1.0.0-beta+exp.sha.5114f85",
	}
	for _, in := range inputs {
		v, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, v.String(), "round-trip for %q", in)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	inputs := []string{
		"1",
		"1.2",
		"01.2.3",
		"1.02.3",
		"1.2.03",
		"1.2.3-",
		"1.2.3-01",
		"a.b.c",
		"1.2.3.4",
		"18446744073709551616.0.0", // overflow (2^64)
	}
	for _, in := range inputs {
		_, err := Parse(in)
		assert.Error(t, err, in)
		var pe *ParseError
		assert.ErrorAs(t, err, &pe)
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	ordered := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}
	var versions []Version
	for _, s := range ordered {
		versions = append(versions, MustParse(s))
	}
	for i := 0; i < len(versions)-1; i++ {
		assert.Truef(t, versions[i].Less(versions[i+1]), "%s should be < %s", ordered[i], ordered[i+1])
		assert.Falsef(t, versions[i+1].Less(versions[i]), "%s should not be < %s", ordered[i+1], ordered[i])
	}
}

func TestBuildMetadataTieBreak(t *testing.T) {
	a := MustParse("1.0.0+001")
	b := MustParse("1.0.0+002")
	assert.True(t, a.Less(b))
	assert.False(t, a.Equal(b))

	c := MustParse("1.0.0")
	d := MustParse("1.0.0")
	assert.True(t, c.Equal(d))
}

func TestCompareIgnoresBuildForPrecedenceOtherwise(t *testing.T) {
	// 1.0.0+a and 1.0.0-alpha+b: the pre-release alone decides, build
	// metadata never promotes a pre-release above its release.
	pre := MustParse("1.0.0-alpha+b")
	rel := MustParse("1.0.0+a")
	assert.True(t, pre.Less(rel))
}
