package buildgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCandidateTest(t *testing.T) {
	dir := t.TempDir()
	withMacro := filepath.Join(dir, "a.cc")
	require.NoError(t, os.WriteFile(withMacro, []byte("#ifdef CABIN_TEST\nvoid t();\n#endif"), 0o644))
	without := filepath.Join(dir, "b.cc")
	require.NoError(t, os.WriteFile(without, []byte("int main(){}"), 0o644))

	ok, err := IsCandidateTest(withMacro)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsCandidateTest(without)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNormalizePreprocessedStripsLineMarkers(t *testing.T) {
	a := []byte("# 1 \"foo.cc\"\nint x;\n# 2 \"foo.cc\"\nint y;\n")
	b := []byte("# 1 \"foo.cc\"\nint x;\n# 5 \"foo.cc\"\nint y;\n")
	assert.Equal(t, normalizePreprocessed(a), normalizePreprocessed(b))
}
