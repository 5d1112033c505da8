package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yssource/cabin/internal/compiler"
	"github.com/yssource/cabin/internal/config"
	"github.com/yssource/cabin/internal/manifest"
	"github.com/yssource/cabin/internal/semver"
)

func testPackage(t *testing.T) manifest.Package {
	t.Helper()
	edition, err := manifest.ParseEdition("20")
	require.NoError(t, err)
	version, err := semver.Parse("1.2.3")
	require.NoError(t, err)
	return manifest.Package{Name: "mypkg", Edition: edition, Version: version}
}

func TestAssembleCFlagsOrder(t *testing.T) {
	pkg := testPackage(t)
	profile := manifest.Profile{Debug: true, OptLevel: 0, CxxFlags: []string{"-Wall"}}

	cflags, err := AssembleCFlags(t.TempDir(), pkg, profile, "dev", compiler.CFlags{}, AssembleOptions{
		ColorMode: config.ColorNever,
		Getenv:    func(string) string { return "" },
	})
	require.NoError(t, err)

	assert.Contains(t, cflags.Other, "-std=c++20")
	assert.Contains(t, cflags.Other, "-g")
	assert.Contains(t, cflags.Other, "-DDEBUG")
	assert.Contains(t, cflags.Other, "-O0")
	assert.Contains(t, cflags.Other, "-Wall")
}

func TestAssembleCFlagsAppendsEnvLast(t *testing.T) {
	pkg := testPackage(t)
	profile := manifest.Profile{Debug: false, OptLevel: 3, CxxFlags: []string{"-Wall"}}

	cflags, err := AssembleCFlags(t.TempDir(), pkg, profile, "release", compiler.CFlags{}, AssembleOptions{
		ColorMode: config.ColorNever,
		Getenv: func(k string) string {
			if k == "CXXFLAGS" {
				return "-march=native"
			}
			return ""
		},
	})
	require.NoError(t, err)

	last := cflags.Other[len(cflags.Other)-1]
	assert.Equal(t, "-march=native", last)
}

func TestBuiltinMacrosUsePackageName(t *testing.T) {
	pkg := testPackage(t)
	profile := manifest.Profile{}
	cflags, err := AssembleCFlags(t.TempDir(), pkg, profile, "dev", compiler.CFlags{}, AssembleOptions{
		ColorMode: config.ColorNever,
		Getenv:    func(string) string { return "" },
	})
	require.NoError(t, err)

	names := make([]string, len(cflags.Macros))
	for i, m := range cflags.Macros {
		names[i] = m.Name
	}
	assert.Contains(t, names, "CABIN_MYPKG_NAME")
	assert.Contains(t, names, "CABIN_MYPKG_VERSION_MAJOR")
}
