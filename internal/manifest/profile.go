package manifest

import (
	"fmt"

	"github.com/yssource/cabin/internal/cabinerr"
)

// profileDefault holds the hardcoded dev/release defaults applied
// when neither the base [profile] table nor the per-profile override
// sets a value (spec.md §3).
type profileDefault struct {
	debug    bool
	optLevel int
	lto      bool
}

var profileDefaults = map[string]profileDefault{
	"dev":     {debug: true, optLevel: 0, lto: false},
	"release": {debug: false, optLevel: 3, lto: false},
}

// buildProfiles merges the base [profile] table into the dev and
// release profiles, applying per-profile overrides and then the
// hardcoded defaults for anything still unset.
func buildProfiles(raw rawProfile) (map[string]Profile, error) {
	profiles := make(map[string]Profile, 2)

	dev, err := mergeProfile("dev", raw, raw.Dev)
	if err != nil {
		return nil, err
	}
	profiles["dev"] = dev

	release, err := mergeProfile("release", raw, raw.Release)
	if err != nil {
		return nil, err
	}
	profiles["release"] = release

	return profiles, nil
}

func mergeProfile(name string, base rawProfile, override rawProfileOverride) (Profile, error) {
	def := profileDefaults[name]

	p := Profile{
		CxxFlags: append([]string{}, base.CxxFlags...),
		LdFlags:  append([]string{}, base.LdFlags...),
		LTO:      boolOr(override.LTO, boolOr(base.LTO, def.lto)),
		Debug:    boolOr(override.Debug, boolOr(base.Debug, def.debug)),
		CompDB:   boolOr(override.CompDB, boolOr(base.CompDB, false)),
		OptLevel: intOr(override.OptLevel, intOr(base.OptLevel, def.optLevel)),
	}
	if len(override.CxxFlags) > 0 {
		p.CxxFlags = append(p.CxxFlags, override.CxxFlags...)
	}
	if len(override.LdFlags) > 0 {
		p.LdFlags = append(p.LdFlags, override.LdFlags...)
	}

	if p.OptLevel < 0 || p.OptLevel > 3 {
		return Profile{}, cabinerr.New(cabinerr.KindUserInput,
			fmt.Sprintf("invalid profile %q: opt-level must be between 0 and 3, got %d", name, p.OptLevel))
	}
	for _, f := range p.CxxFlags {
		if err := validateFlag(f); err != nil {
			return Profile{}, cabinerr.New(cabinerr.KindUserInput, err.Error())
		}
	}
	for _, f := range p.LdFlags {
		if err := validateFlag(f); err != nil {
			return Profile{}, cabinerr.New(cabinerr.KindUserInput, err.Error())
		}
	}

	return p, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
