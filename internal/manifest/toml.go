package manifest

// rawManifest mirrors cabin.toml's on-disk shape for decoding via
// github.com/BurntSushi/toml. Every field is validated and converted
// into the public Manifest/Package/Profile/Dependency types by
// FromTOML; nothing in this file is exposed outside the package.
type rawManifest struct {
	Package      rawPackage                `toml:"package"`
	Dependencies    map[string]rawDependency `toml:"dependencies"`
	DevDependencies map[string]rawDependency `toml:"dev-dependencies"`
	Profile      rawProfile                `toml:"profile"`
	Lint         rawLint                    `toml:"lint"`
}

type rawPackage struct {
	Name    string `toml:"name"`
	Edition string `toml:"edition"`
	Version string `toml:"version"`
}

// rawDependency holds every field any of the three dependency shapes
// might use; exactly one shape's required fields may be populated.
type rawDependency struct {
	Git    string `toml:"git"`
	Rev    string `toml:"rev"`
	Tag    string `toml:"tag"`
	Branch string `toml:"branch"`

	Path string `toml:"path"`

	System  bool   `toml:"system"`
	Version string `toml:"version"`
}

type rawProfile struct {
	CxxFlags []string `toml:"cxxflags"`
	LdFlags  []string `toml:"ldflags"`
	LTO      *bool    `toml:"lto"`
	Debug    *bool    `toml:"debug"`
	CompDB   *bool    `toml:"comp-db"`
	OptLevel *int     `toml:"opt-level"`

	Dev     rawProfileOverride `toml:"dev"`
	Release rawProfileOverride `toml:"release"`
}

// rawProfileOverride is the per-profile [profile.dev]/[profile.release]
// table; any field left nil inherits from the base [profile] table or,
// failing that, the hardcoded per-profile default (spec.md §3).
type rawProfileOverride struct {
	CxxFlags []string `toml:"cxxflags"`
	LdFlags  []string `toml:"ldflags"`
	LTO      *bool    `toml:"lto"`
	Debug    *bool    `toml:"debug"`
	CompDB   *bool    `toml:"comp-db"`
	OptLevel *int     `toml:"opt-level"`
}

type rawLint struct {
	Cpplint rawCpplint `toml:"cpplint"`
}

type rawCpplint struct {
	Filters []string `toml:"filters"`
}
