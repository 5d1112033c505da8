// Package project aggregates a loaded Manifest, a selected profile,
// and resolved dependency CompilerOptions into the concrete compiler
// invocation spec the build graph compiles and links against
// (spec.md §3's Project/Compiler data flow, §4.4's flag assembly).
package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/compiler"
	"github.com/yssource/cabin/internal/manifest"
)

// Project is the fully resolved build configuration input: a
// manifest, the profile selected for this invocation, and the
// compiler binary plus assembled flags to use.
type Project struct {
	Manifest    *manifest.Manifest
	ProfileName string
	Profile     manifest.Profile
	Root        string // directory containing cabin.toml

	CXX     string
	Options compiler.Options
}

// Load resolves a Project from a manifest, a profile name ("dev" or
// "release"), the dependency CompilerOptions produced by installing
// the manifest's dependencies, and the live environment.
func Load(ctx context.Context, m *manifest.Manifest, profileName string, installed compiler.Options, opts AssembleOptions) (*Project, error) {
	profile, ok := m.Profiles[profileName]
	if !ok {
		return nil, cabinerr.New(cabinerr.KindUserInput, fmt.Sprintf("unknown profile %q", profileName))
	}

	cxx, err := compiler.Detect(ctx, os.Getenv)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(m.Path)

	cflags, err := AssembleCFlags(root, m.Package, profile, profileName, installed.CFlags, opts)
	if err != nil {
		return nil, err
	}
	ldflags := AssembleLdFlags(profile, installed.LdFlags)

	return &Project{
		Manifest:    m,
		ProfileName: profileName,
		Profile:     profile,
		Root:        root,
		CXX:         cxx,
		Options:     compiler.Options{CFlags: cflags, LdFlags: ldflags},
	}, nil
}

// OutBasePath is `<project>/cabin-out/<debug|release>`.
func (p *Project) OutBasePath() string {
	dir := "debug"
	if p.ProfileName == "release" {
		dir = "release"
	}
	return filepath.Join(p.Root, "cabin-out", dir)
}

// BuildOutPath is `<outBase>/<pkgname>.d`.
func (p *Project) BuildOutPath() string {
	return filepath.Join(p.OutBasePath(), p.Manifest.Package.Name+".d")
}

// UnitTestOutPath is `<outBase>/unittests`.
func (p *Project) UnitTestOutPath() string {
	return filepath.Join(p.OutBasePath(), "unittests")
}

// BinaryName is the final binary artifact's basename.
func (p *Project) BinaryName() string {
	return p.Manifest.Package.Name
}

// LibraryName is the final static library artifact's basename.
func (p *Project) LibraryName() string {
	return "lib" + p.Manifest.Package.Name + ".a"
}
