// Package config resolves cabin's process-wide directory layout and
// environment-variable-configured knobs (spec.md §6).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// EnvCXX overrides compiler detection (spec.md §4.4).
	EnvCXX = "CXX"

	// EnvCXXFlags / EnvLDFlags are appended after manifest flags.
	EnvCXXFlags = "CXXFLAGS"
	EnvLDFlags  = "LDFLAGS"

	// EnvTermColor is the initial color mode (auto/always/never).
	EnvTermColor = "CABIN_TERM_COLOR"

	// EnvLog / EnvLogLegacy name the log-level variables. Neither is
	// read: the diagnostic log level comes only from -v/-vv/-q.
	EnvLog       = "CABIN_LOG"
	EnvLogLegacy = "SPDLOG_LEVEL"

	// EnvFmt overrides the path to the formatter binary.
	EnvFmt = "CABIN_FMT"

	// EnvLint overrides the path to the cpplint binary.
	EnvLint = "CABIN_LINT"

	// EnvXDGCacheHome / EnvHome locate the git dependency cache.
	EnvXDGCacheHome = "XDG_CACHE_HOME"
	EnvHome         = "HOME"

	// DefaultAPITimeout is a default timeout value; no subprocess or
	// network call currently applies it.
	DefaultAPITimeout = 60 * time.Second
)

// GitCacheDir returns "<XDG_CACHE_HOME or $HOME/.cache>/cabin/git/src",
// the shared, lock-free git clone cache spec.md §5/§6 describe.
func GitCacheDir() (string, error) {
	base := os.Getenv(EnvXDGCacheHome)
	if base == "" {
		home := os.Getenv(EnvHome)
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to determine home directory: %w", err)
			}
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "cabin", "git", "src"), nil
}

// ColorMode is the process-wide color configuration, set once during
// argument parsing and treated as read-only afterwards; it is passed
// by value to the packages that need it.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses the --color flag value or CABIN_TERM_COLOR.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid --color value %q: expected auto, always, or never", s)
	}
}

// DefaultColorMode reads CABIN_TERM_COLOR, defaulting to auto.
func DefaultColorMode() ColorMode {
	mode, err := ParseColorMode(os.Getenv(EnvTermColor))
	if err != nil {
		return ColorAuto
	}
	return mode
}

// Parallelism resolves the -j N flag: 0 (unset) means "number of
// hardware threads reported by the runtime"; 1 disables fan-out.
func Parallelism(flagValue int, numCPU int) int {
	if flagValue > 0 {
		return flagValue
	}
	if numCPU < 1 {
		return 1
	}
	return numCPU
}
