package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yssource/cabin/internal/manifest"
)

func resetAddFlags() {
	addSys, addVer, addTag, addRev, addBranch, addGit, addPath, addDev = false, "", "", "", "", "", "", false
}

func TestBuildDependencyGitDefaultsURL(t *testing.T) {
	resetAddFlags()
	defer resetAddFlags()

	dep, err := buildDependency("fmt")
	require.NoError(t, err)
	assert.Equal(t, manifest.DependencyGit, dep.Kind)
	assert.Equal(t, "https://github.com/fmt/fmt", dep.URL)
}

func TestBuildDependencyGitExplicitURL(t *testing.T) {
	resetAddFlags()
	defer resetAddFlags()

	addGit = "https://example.com/fmt.git"
	addTag = "v9.0.0"
	dep, err := buildDependency("fmt")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/fmt.git", dep.URL)
	assert.Equal(t, "v9.0.0", dep.Target.Tag)
}

func TestBuildDependencyPath(t *testing.T) {
	resetAddFlags()
	defer resetAddFlags()

	addPath = "../mydep"
	dep, err := buildDependency("mydep")
	require.NoError(t, err)
	assert.Equal(t, manifest.DependencyPath, dep.Kind)
	assert.Equal(t, "../mydep", dep.Path)
}

func TestBuildDependencySysRequiresVersion(t *testing.T) {
	resetAddFlags()
	defer resetAddFlags()

	addSys = true
	_, err := buildDependency("zlib")
	require.Error(t, err)
}

func TestBuildDependencySys(t *testing.T) {
	resetAddFlags()
	defer resetAddFlags()

	addSys = true
	addVer = "^1.2.3"
	dep, err := buildDependency("zlib")
	require.NoError(t, err)
	assert.Equal(t, manifest.DependencySystem, dep.Kind)
}
