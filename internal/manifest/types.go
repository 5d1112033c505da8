// Package manifest loads and validates cabin.toml, exposing a typed
// model of a package's declaration: its identity, its dependency
// lists, and its build profiles.
package manifest

import (
	"github.com/yssource/cabin/internal/semver"
)

// Manifest is the parsed, validated contents of a cabin.toml file.
// AddDependency and RemoveDependency modify it in place.
type Manifest struct {
	// Path is the absolute path to the manifest file this was loaded
	// from.
	Path string

	Package Package

	// Dependencies and DevDependencies preserve declaration order;
	// order matters for deterministic CompilerOptions assembly.
	Dependencies    []Dependency
	DevDependencies []Dependency

	// Profiles always contains exactly "dev" and "release".
	Profiles map[string]Profile

	Lint LintConfig
}

// Package identifies a cabin package: its name, C++ edition, and
// version.
type Package struct {
	Name    string
	Edition Edition
	Version semver.Version
}

// Edition is a C++ language-standard tag. The zero value is invalid;
// use ParseEdition.
type Edition struct {
	// Year is the four-digit year the edition normalizes to (e.g.
	// 2020 for C++20), used for ordering.
	Year int
	// raw is the canonical edition code ("20" for both "20" and "2a"),
	// as used in -std= flags and written back by Save.
	raw string
}

// String renders the edition the way it reads in a -std= flag, e.g.
// "20" for C++20.
func (e Edition) String() string {
	return e.raw
}

// StdFlag returns the edition as it appears in `-std=c++<code>`.
func (e Edition) StdFlag() string {
	return "c++" + e.raw
}

// Profile is a named bundle of compiler/linker flags and build
// toggles (spec.md §3).
type Profile struct {
	CxxFlags []string
	LdFlags  []string
	LTO      bool
	Debug    bool
	CompDB   bool
	OptLevel int
}

// LintConfig holds per-linter settings read from the manifest's
// [lint.*] tables.
type LintConfig struct {
	Cpplint CpplintConfig
}

// CpplintConfig is the [lint.cpplint] table.
type CpplintConfig struct {
	Filters []string
}

// DependencyKind distinguishes the three dependency source variants.
type DependencyKind int

const (
	DependencyGit DependencyKind = iota
	DependencyPath
	DependencySystem
)

// GitTarget selects which ref a Git dependency checks out. At most one
// of Rev/Tag/Branch may be set in the manifest, and FromTOML rejects
// a dependency that sets more than one; for a GitTarget built in code
// with several set, Ref gives Rev precedence, then Tag, then Branch.
type GitTarget struct {
	Rev    string
	Tag    string
	Branch string
}

// IsZero reports whether no target was specified, meaning the
// dependency tracks the remote's default branch.
func (t GitTarget) IsZero() bool {
	return t.Rev == "" && t.Tag == "" && t.Branch == ""
}

// Ref returns the selected ref string and a human label for it
// ("rev", "tag", or "branch"), honoring the rev>tag>branch
// precedence.
func (t GitTarget) Ref() (ref, kind string) {
	switch {
	case t.Rev != "":
		return t.Rev, "rev"
	case t.Tag != "":
		return t.Tag, "tag"
	case t.Branch != "":
		return t.Branch, "branch"
	default:
		return "", ""
	}
}

// Dependency is a tagged variant over Git/Path/System dependency
// shapes (spec.md §3).
type Dependency struct {
	Name string
	Kind DependencyKind

	// Git fields.
	URL    string
	Target GitTarget

	// Path fields.
	Path string

	// System fields.
	VersionReq semver.VersionReq
}
