package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yssource/cabin/internal/compiler"
	"github.com/yssource/cabin/internal/config"
	"github.com/yssource/cabin/internal/manifest"
)

// AssembleOptions carries the ambient context flag assembly needs but
// that isn't part of the manifest itself: whether output is going to
// a color-capable terminal, and the environment lookup to read
// CXXFLAGS/LDFLAGS from.
type AssembleOptions struct {
	ColorMode  config.ColorMode
	StderrIsTTY bool
	Getenv     func(string) string
}

// AssembleCFlags builds the CFlags bundle for a compilation unit, in
// the order spec.md §4.4 specifies: -std, diagnostics color, profile
// flags, per-profile cxxflags, other flags from installed
// dependencies, $CXXFLAGS (last, so it wins on conflict), the project
// include dir, and the CABIN_<PKGNAME>_* built-in macros.
func AssembleCFlags(root string, pkg manifest.Package, profile manifest.Profile, profileName string, installed compiler.CFlags, opts AssembleOptions) (compiler.CFlags, error) {
	var other []string

	other = append(other, "-std="+pkg.Edition.StdFlag())

	if colorEnabled(opts) {
		other = append(other, "-fdiagnostics-color")
	}

	if profile.Debug {
		other = append(other, "-g", "-DDEBUG")
	} else {
		other = append(other, "-DNDEBUG")
	}
	other = append(other, fmt.Sprintf("-O%d", profile.OptLevel))
	if profile.LTO {
		other = append(other, "-flto")
	}

	other = append(other, profile.CxxFlags...)
	other = append(other, installed.Other...)

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if envFlags := getenv(config.EnvCXXFlags); envFlags != "" {
		other = append(other, strings.Fields(envFlags)...)
	}

	var includeDirs []compiler.IncludeDir
	includeRoot := filepath.Join(root, "include")
	if info, err := os.Stat(includeRoot); err == nil && info.IsDir() {
		includeDirs = append(includeDirs, compiler.IncludeDir{Path: includeRoot})
	}
	includeDirs = append(includeDirs, installed.IncludeDirs...)

	macros := append([]compiler.Macro{}, builtinMacros(root, pkg, profileName)...)
	macros = append(macros, installed.Macros...)

	return compiler.CFlags{
		Macros:      macros,
		IncludeDirs: includeDirs,
		Other:       other,
	}, nil
}

// AssembleLdFlags builds the LdFlags bundle: profile ldflags, then
// $LDFLAGS, then whatever dependency installation produced.
func AssembleLdFlags(profile manifest.Profile, installed compiler.LdFlags) compiler.LdFlags {
	other := append([]string{}, profile.LdFlags...)
	if env := os.Getenv(config.EnvLDFlags); env != "" {
		other = append(other, strings.Fields(env)...)
	}
	return compiler.LdFlags{
		LibDirs: installed.LibDirs,
		Libs:    installed.Libs,
		Other:   append(other, installed.Other...),
	}
}

func colorEnabled(opts AssembleOptions) bool {
	switch opts.ColorMode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return opts.StderrIsTTY
	}
}

// builtinMacros produces the CABIN_<PKGNAME>_* preprocessor
// definitions describing the package's identity and VCS state
// (spec.md §4.4). String values are single-quoted then double-quoted
// so they survive both the shell and the preprocessor intact.
func builtinMacros(root string, pkg manifest.Package, profileName string) []compiler.Macro {
	upper := strings.ToUpper(strings.NewReplacer("-", "_").Replace(pkg.Name))
	prefix := "CABIN_" + upper + "_"

	macros := []compiler.Macro{
		{Name: prefix + "NAME", Value: quoted(pkg.Name)},
		{Name: prefix + "VERSION", Value: quoted(pkg.Version.String())},
		{Name: prefix + "VERSION_MAJOR", Value: fmt.Sprintf("%d", pkg.Version.Major)},
		{Name: prefix + "VERSION_MINOR", Value: fmt.Sprintf("%d", pkg.Version.Minor)},
		{Name: prefix + "VERSION_PATCH", Value: fmt.Sprintf("%d", pkg.Version.Patch)},
		{Name: prefix + "PROFILE", Value: quoted(profileName)},
	}

	if info, err := gitInfo(root); err == nil {
		macros = append(macros,
			compiler.Macro{Name: prefix + "COMMIT_HASH", Value: quoted(info.hash)},
			compiler.Macro{Name: prefix + "COMMIT_SHORT_HASH", Value: quoted(info.shortHash)},
			compiler.Macro{Name: prefix + "COMMIT_DATE", Value: quoted(info.date)},
		)
	}

	return macros
}

func quoted(s string) string {
	return `'"` + s + `"'`
}
