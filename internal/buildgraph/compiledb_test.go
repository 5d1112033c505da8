package buildgraph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCommandsShape(t *testing.T) {
	records := []compileRecord{
		{source: "/proj/src/main.cc", object: "/proj/cabin-out/debug/mypkg.d/main.o"},
	}
	data, err := CompileCommands("/proj", "g++", []string{"-std=c++20"}, records)
	require.NoError(t, err)

	var parsed []CompileCommand
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "/proj", parsed[0].Directory)
	assert.Contains(t, parsed[0].Command, "-DCABIN_TEST")
	assert.Contains(t, parsed[0].Command, "g++")
}
