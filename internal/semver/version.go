// Package semver implements SemVer 2.0.0 parsing and comparison plus
// Cargo-style version requirements, as used by cabin's manifest and
// dependency resolver.
package semver

import (
	"fmt"
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"
)

// Version is a parsed SemVer 2.0.0 version: major.minor.patch, an
// optional dotted pre-release, and an optional dotted build metadata
// tag. Build metadata participates only as a deterministic tie-break
// in this implementation's ordering, never in precedence proper.
type Version struct {
	Major, Minor, Patch uint64
	Pre                 string // dotted pre-release identifiers, "" if none
	Build                string // dotted build metadata, "" if none

	raw string // the exact accepted input, for round-trip String()
}

// Parse parses s as a SemVer 2.0.0 version string. On failure it
// returns a *ParseError carrying a two-line "input / caret" rendering.
func Parse(s string) (Version, error) {
	toks, err := lex(s)
	if err != nil {
		return Version{}, err
	}
	v, err := parseVersion(s, toks)
	if err != nil {
		return Version{}, err
	}
	v.raw = s
	return v, nil
}

// MustParse parses s and panics on error. Intended for tests and
// literal version constants, never for user input.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the version, reproducing the original accepted input
// verbatim when the Version came from Parse (the round-trip property
// required by the invariant SemVer.parse(x).toString() == x).
func (v Version) String() string {
	if v.raw != "" {
		return v.raw
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		b.WriteByte('-')
		b.WriteString(v.Pre)
	}
	if v.Build != "" {
		b.WriteByte('+')
		b.WriteString(v.Build)
	}
	return b.String()
}

// mm converts to the Masterminds representation used for comparisons,
// since this implementation delegates precedence math to that library
// (spec: semver parsing is in scope at interface level only) while
// keeping its own Version type for the caret-pointing parser errors.
func (v Version) mm() *mmsemver.Version {
	// Masterminds/semver round-trips "major.minor.patch[-pre][+build]"
	// identically to this package's own textual form; construct it
	// from the core fields rather than v.raw so that stripped/equivalent
	// forms (rarely produced here) still compare correctly.
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	mv, err := mmsemver.NewVersion(s)
	if err != nil {
		// Unreachable: Version was built by this package's own parser,
		// which only accepts SemVer-conformant input.
		panic(fmt.Sprintf("semver: internal version %q rejected by comparator: %v", s, err))
	}
	return mv
}

// Compare returns -1, 0, or +1 as v is less than, equal to, or
// greater than other, per SemVer 2.0.0 precedence. Build metadata is
// ignored by SemVer precedence; this implementation uses it as a
// secondary, purely-for-determinism tie-break (spec.md §3) once
// precedence alone reports equal.
func (v Version) Compare(other Version) int {
	if c := v.mm().Compare(other.mm()); c != 0 {
		return c
	}
	if v.Build == other.Build {
		return 0
	}
	if v.Build < other.Build {
		return -1
	}
	return 1
}

// Less reports whether v orders strictly before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// Equal reports whether v and other have identical precedence (build
// metadata included, per this package's tie-break rule).
func (v Version) Equal(other Version) bool { return v.Compare(other) == 0 }
