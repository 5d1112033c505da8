// Package buildinfo provides version information derived from Go build
// metadata, used by cabin's `version` subcommand and `-vV`/`-Vv` flags.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version returns the semver-ish version string for the current
// build: the tagged release version if built via `go install <tag>`,
// otherwise "0.0.0-dev".
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "0.0.0-dev"
	}
	return versionFromInfo(info)
}

func versionFromInfo(info *debug.BuildInfo) string {
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "0.0.0-dev"
}

// ShortHash and BuildDate return the VCS short commit hash and commit
// date embedded by the Go toolchain, used to render
// "cabin <version> (<short-hash> <YYYY-MM-DD>)" (spec.md §8, S6).
func ShortHash() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return shortHashFromInfo(info)
}

func shortHashFromInfo(info *debug.BuildInfo) string {
	rev, _ := vcsSettings(info)
	if rev == "" {
		return "unknown"
	}
	if len(rev) > 9 {
		rev = rev[:9]
	}
	return rev
}

func BuildDate() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return buildDateFromInfo(info)
}

func buildDateFromInfo(info *debug.BuildInfo) string {
	_, t := vcsSettings(info)
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02")
}

// LongVersion renders the full "cabin <version> (<short-hash>
// <date>)" string spec.md's S6 end-to-end scenario specifies.
func LongVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "cabin 0.0.0-dev (unknown unknown)"
	}
	return longVersionFromInfo(info)
}

func longVersionFromInfo(info *debug.BuildInfo) string {
	return fmt.Sprintf("cabin %s (%s %s)", versionFromInfo(info), shortHashFromInfo(info), buildDateFromInfo(info))
}

// vcsSettings extracts the commit revision and commit time the Go
// toolchain embeds in info.Settings when built from a VCS checkout.
func vcsSettings(info *debug.BuildInfo) (revision string, t time.Time) {
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			t, _ = time.Parse(time.RFC3339, s.Value)
		}
	}
	return revision, t
}
