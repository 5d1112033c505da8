package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yssource/cabin/internal/compiler"
	"github.com/yssource/cabin/internal/config"
	"github.com/yssource/cabin/internal/manifest"
	"github.com/yssource/cabin/internal/project"
)

// profileName resolves the -d/-r flag pair to "dev"/"release",
// defaulting to "dev".
func profileName(release bool) string {
	if release {
		return "release"
	}
	return "dev"
}

// loadProject parses cabin.toml from the current directory upward,
// installs its dependencies, and assembles the Project for the given
// profile (spec.md §4.1/§4.4).
func loadProject(ctx context.Context, profile string) (*project.Project, error) {
	m, err := manifest.Parse(".", true)
	if err != nil {
		return nil, err
	}

	installed, err := m.InstallDeps(ctx, profile == "dev")
	if err != nil {
		return nil, err
	}
	merged := compiler.MergeAll(installed)

	opts := project.AssembleOptions{
		ColorMode:   resolvedColorMode(),
		StderrIsTTY: isStderrTTY(),
		Getenv:      os.Getenv,
	}

	return project.Load(ctx, m, profile, merged, opts)
}

func resolvedColorMode() config.ColorMode {
	mode, err := config.ParseColorMode(colorFlag)
	if err != nil {
		return config.DefaultColorMode()
	}
	return mode
}

func isStderrTTY() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// profileDescription renders the "`dev` profile [unoptimized +
// debuginfo]" / "`release` profile [optimized]" fragment spec.md §8
// S4's end-to-end scenario specifies.
func profileDescription(p *project.Project) string {
	if p.ProfileName == "release" {
		return "`release` profile [optimized]"
	}
	return "`dev` profile [unoptimized + debuginfo]"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
