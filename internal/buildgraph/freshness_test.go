package buildgraph

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFreshMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	fresh, err := IsFresh(filepath.Join(dir, "Makefile"), filepath.Join(dir, "src"), filepath.Join(dir, "cabin.toml"))
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestIsFreshStaleAfterSourceEdit(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	manifestPath := filepath.Join(dir, "cabin.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("x"), 0o644))
	srcFile := filepath.Join(srcDir, "main.cc")
	require.NoError(t, os.WriteFile(srcFile, []byte("int main(){}"), 0o644))

	artifact := filepath.Join(dir, "Makefile")
	require.NoError(t, os.WriteFile(artifact, []byte("all:"), 0o644))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(artifact, old, old))

	fresh, err := IsFresh(artifact, srcDir, manifestPath)
	require.NoError(t, err)
	assert.False(t, fresh)
}
