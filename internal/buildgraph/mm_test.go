package buildgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMakeRuleSkipsSource(t *testing.T) {
	output := "main.o: src/main.cc src/foo.hpp \\\n src/bar.hpp\n"
	rule, err := parseMakeRule("src/main.cc", output)
	require.NoError(t, err)
	assert.Equal(t, "main.o", rule.objName)
	assert.Equal(t, []string{"src/foo.hpp", "src/bar.hpp"}, rule.headers)
}

func TestParseMakeRuleNoHeaders(t *testing.T) {
	rule, err := parseMakeRule("src/main.cc", "main.o: src/main.cc\n")
	require.NoError(t, err)
	assert.Empty(t, rule.headers)
}

func TestParseMakeRuleUnparseable(t *testing.T) {
	_, err := parseMakeRule("src/main.cc", "garbage with no colon")
	assert.Error(t, err)
}
