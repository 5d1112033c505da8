package manifest

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/semver"
)

// depOrder returns dependency names in the order they were declared
// in the TOML document, read from meta's key list so iteration over
// Dependencies/DevDependencies is deterministic rather than following
// Go's randomized map order (spec.md's ordered-list invariant).
func depOrder(meta toml.MetaData, section string) []string {
	var names []string
	for _, key := range meta.Keys() {
		if len(key) == 2 && key[0] == section {
			names = append(names, key[1])
		}
	}
	return names
}

func convertDeps(raw map[string]rawDependency, order []string) ([]Dependency, error) {
	deps := make([]Dependency, 0, len(order))
	for _, name := range order {
		r := raw[name]
		dep, err := convertDep(name, r)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func convertDep(name string, r rawDependency) (Dependency, error) {
	if err := validateDepName(name); err != nil {
		return Dependency{}, cabinerr.New(cabinerr.KindUserInput, err.Error())
	}

	switch {
	case r.Git != "":
		targets := 0
		if r.Rev != "" {
			targets++
		}
		if r.Tag != "" {
			targets++
		}
		if r.Branch != "" {
			targets++
		}
		if targets > 1 {
			return Dependency{}, cabinerr.New(cabinerr.KindUserInput,
				fmt.Sprintf("dependency %q: at most one of rev/tag/branch may be set", name))
		}
		return Dependency{
			Name: name,
			Kind: DependencyGit,
			URL:  r.Git,
			Target: GitTarget{
				Rev:    r.Rev,
				Tag:    r.Tag,
				Branch: r.Branch,
			},
		}, nil

	case r.Path != "":
		return Dependency{Name: name, Kind: DependencyPath, Path: r.Path}, nil

	case r.System:
		if r.Version == "" {
			return Dependency{}, cabinerr.New(cabinerr.KindUserInput,
				fmt.Sprintf("dependency %q: system dependencies require a version", name))
		}
		req, err := semver.ParseVersionReq(r.Version)
		if err != nil {
			return Dependency{}, cabinerr.Wrap(cabinerr.KindUserInput,
				fmt.Sprintf("dependency %q: invalid version requirement", name), err)
		}
		return Dependency{Name: name, Kind: DependencySystem, VersionReq: req}, nil

	default:
		return Dependency{}, cabinerr.New(cabinerr.KindUserInput,
			"Only Git, path, and system dependencies are supported")
	}
}
