package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/semver"
)

// ManifestFileName is the fixed basename cabin looks for in a
// project directory.
const ManifestFileName = "cabin.toml"

// Parse loads and validates a manifest from path. If findParents is
// set, path is treated as a starting directory and cabin ascends
// toward the filesystem root looking for cabin.toml, returning the
// first one found.
func Parse(path string, findParents bool) (*Manifest, error) {
	if findParents {
		dir, err := findManifestDir(path)
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, ManifestFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cabinerr.Wrap(cabinerr.KindIO, fmt.Sprintf("failed to read %s", path), err)
	}
	return FromTOML(data, path)
}

func findManifestDir(start string) (string, error) {
	dir := start
	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, ManifestFileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", cabinerr.New(cabinerr.KindUserInput,
				fmt.Sprintf("%s not found in %s and its parents", ManifestFileName, start))
		}
		dir = parent
	}
}

// FromTOML parses and fully validates manifest bytes already in
// memory, attributing errors to path for diagnostics.
func FromTOML(data []byte, path string) (*Manifest, error) {
	var raw rawManifest
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, cabinerr.Wrap(cabinerr.KindUserInput, fmt.Sprintf("failed to parse %s", path), err)
	}

	if err := validatePackageName(raw.Package.Name); err != nil {
		return nil, cabinerr.New(cabinerr.KindUserInput, err.Error())
	}
	edition, err := ParseEdition(raw.Package.Edition)
	if err != nil {
		return nil, cabinerr.New(cabinerr.KindUserInput, err.Error())
	}
	version, err := semver.Parse(raw.Package.Version)
	if err != nil {
		return nil, cabinerr.Wrap(cabinerr.KindUserInput, "invalid package version", err)
	}

	deps, err := convertDeps(raw.Dependencies, depOrder(meta, "dependencies"))
	if err != nil {
		return nil, err
	}
	devDeps, err := convertDeps(raw.DevDependencies, depOrder(meta, "dev-dependencies"))
	if err != nil {
		return nil, err
	}

	profiles, err := buildProfiles(raw.Profile)
	if err != nil {
		return nil, err
	}

	lint := LintConfig{Cpplint: CpplintConfig{Filters: raw.Lint.Cpplint.Filters}}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return &Manifest{
		Path:            abs,
		Package:         Package{Name: raw.Package.Name, Edition: edition, Version: version},
		Dependencies:    deps,
		DevDependencies: devDeps,
		Profiles:        profiles,
		Lint:            lint,
	}, nil
}
