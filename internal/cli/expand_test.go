package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLongEquals(t *testing.T) {
	out, err := ExpandArgs([]string{"--color=always", "build"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"--color", "always", "build"}, out)
}

func TestExpandClusterNoArg(t *testing.T) {
	opts := []ShortOption{{Letter: 'v'}, {Letter: 'q'}}
	out, err := ExpandArgs([]string{"-vv"}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"-v", "-v"}, out)
}

func TestExpandClusterTrailingArgConsumesRemainder(t *testing.T) {
	opts := []ShortOption{{Letter: 'v'}, {Letter: 'j', TakesArg: true}}
	out, err := ExpandArgs([]string{"-vj4"}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"-v", "-j", "4"}, out)
}

func TestExpandClusterTrailingArgConsumesNextToken(t *testing.T) {
	opts := []ShortOption{{Letter: 'j', TakesArg: true}}
	out, err := ExpandArgs([]string{"-j", "8"}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"-j", "8"}, out)
}

func TestExpandClusterMissingArgErrors(t *testing.T) {
	opts := []ShortOption{{Letter: 'j', TakesArg: true}}
	_, err := ExpandArgs([]string{"-j"}, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing argument for `-j`")
}

func TestExpandClusterUnknownPassesThrough(t *testing.T) {
	out, err := ExpandArgs([]string{"-z"}, []ShortOption{{Letter: 'v'}})
	require.NoError(t, err)
	assert.Equal(t, []string{"-z"}, out)
}
