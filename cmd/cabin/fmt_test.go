package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFilesDiscoversUnderSrcAndInclude(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "include"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.cc"), []byte("int main(){}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "include", "widget.hpp"), []byte("#pragma once"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "README.md"), []byte("not source"), 0o644))

	files, err := sourceFiles(dir, nil)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestSourceFilesExcludesGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "vendor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.cc"), []byte("int main(){}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "vendor", "skip.cc"), []byte("x"), 0o644))

	files, err := sourceFiles(dir, []string{"skip.cc"})
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Contains(t, files[0], "main.cc")
}

func TestSourceFilesMissingDirsAreSkipped(t *testing.T) {
	dir := t.TempDir()
	files, err := sourceFiles(dir, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}
