package manifest

import (
	"fmt"
	"os"
	"strings"
)

// Save serializes the manifest back to path in cabin.toml's canonical
// layout, following the teacher's hand-rolled-string approach to TOML
// emission rather than a generic encoder, so field order and quoting
// match what `cabin add`/`cabin remove` users expect to see.
func (m *Manifest) Save(path string) error {
	var b strings.Builder

	b.WriteString("[package]\n")
	fmt.Fprintf(&b, "name = %q\n", m.Package.Name)
	fmt.Fprintf(&b, "edition = %q\n", m.Package.Edition.String())
	fmt.Fprintf(&b, "version = %q\n", m.Package.Version.String())
	b.WriteString("\n")

	writeDepTable(&b, "[dependencies]", m.Dependencies)
	writeDepTable(&b, "[dev-dependencies]", m.DevDependencies)

	if profile, ok := m.Profiles["dev"]; ok {
		writeProfileOverride(&b, "[profile.dev]", profile)
	}
	if profile, ok := m.Profiles["release"]; ok {
		writeProfileOverride(&b, "[profile.release]", profile)
	}

	if len(m.Lint.Cpplint.Filters) > 0 {
		b.WriteString("[lint.cpplint]\n")
		fmt.Fprintf(&b, "filters = %s\n", quoteList(m.Lint.Cpplint.Filters))
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func writeDepTable(b *strings.Builder, header string, deps []Dependency) {
	if len(deps) == 0 {
		return
	}
	b.WriteString(header)
	b.WriteByte('\n')
	for _, d := range deps {
		fmt.Fprintf(b, "%s = { %s }\n", d.Name, depInlineTable(d))
	}
	b.WriteByte('\n')
}

func depInlineTable(d Dependency) string {
	switch d.Kind {
	case DependencyGit:
		parts := []string{fmt.Sprintf("git = %q", d.URL)}
		if ref, kind := d.Target.Ref(); ref != "" {
			parts = append(parts, fmt.Sprintf("%s = %q", kind, ref))
		}
		return strings.Join(parts, ", ")
	case DependencyPath:
		return fmt.Sprintf("path = %q", d.Path)
	case DependencySystem:
		return fmt.Sprintf("version = %q, system = true", d.VersionReq.String())
	default:
		return ""
	}
}

func writeProfileOverride(b *strings.Builder, header string, p Profile) {
	b.WriteString(header)
	b.WriteByte('\n')
	if len(p.CxxFlags) > 0 {
		fmt.Fprintf(b, "cxxflags = %s\n", quoteList(p.CxxFlags))
	}
	if len(p.LdFlags) > 0 {
		fmt.Fprintf(b, "ldflags = %s\n", quoteList(p.LdFlags))
	}
	fmt.Fprintf(b, "lto = %t\n", p.LTO)
	fmt.Fprintf(b, "debug = %t\n", p.Debug)
	fmt.Fprintf(b, "comp-db = %t\n", p.CompDB)
	fmt.Fprintf(b, "opt-level = %d\n", p.OptLevel)
	b.WriteByte('\n')
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
