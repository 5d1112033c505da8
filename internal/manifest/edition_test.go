package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEditionAliases(t *testing.T) {
	cases := map[string]string{
		"98": "98", "03": "03",
		"0x": "11", "11": "11",
		"1y": "14", "14": "14",
		"1z": "17", "17": "17",
		"2a": "20", "20": "20",
		"2b": "23", "23": "23",
		"2c": "2c",
	}
	for input, canonical := range cases {
		e, err := ParseEdition(input)
		require.NoError(t, err, input)
		assert.Equal(t, canonical, e.String())
		assert.Equal(t, "c++"+canonical, e.StdFlag())
	}
}

func TestParseEditionRejectsUnknown(t *testing.T) {
	_, err := ParseEdition("99")
	assert.Error(t, err)
}
