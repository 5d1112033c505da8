package semver

import (
	"fmt"
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"
)

// VersionReq is a Cargo-style version requirement: a comma-separated
// intersection of comparator clauses (^1.2, ~1.2.3, =1.2.3, >1.2,
// >=1.2, <2, <=1.9, or a bare *). Cargo's default operator (no
// prefix) is caret, matching this package's ParseVersionReq.
type VersionReq struct {
	raw         string
	constraints *mmsemver.Constraints
	clauses     []string // individual comparator clauses, for toPkgConfigString
}

// ParseVersionReq parses a Cargo-style requirement string.
func ParseVersionReq(s string) (VersionReq, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "*" {
		c, _ := mmsemver.NewConstraint("*")
		return VersionReq{raw: s, constraints: c, clauses: []string{"*"}}, nil
	}

	// Masterminds/semver already understands ^, ~, =, >, >=, <, <=, *,
	// and comma-separated intersections with the same semantics Cargo
	// gives them, so VersionReq parsing is delegated to it directly
	// (spec.md §1: "in scope at interface level only"). A bare version
	// means exact equality to Masterminds, so it is given the caret
	// prefix first.
	var clauses []string
	for _, part := range strings.Split(trimmed, ",") {
		clause := strings.TrimSpace(part)
		if clause != "" && clause[0] >= '0' && clause[0] <= '9' {
			clause = "^" + clause
		}
		clauses = append(clauses, clause)
	}

	c, err := mmsemver.NewConstraint(strings.Join(clauses, ", "))
	if err != nil {
		return VersionReq{}, fmt.Errorf("invalid version requirement %q: %w", s, err)
	}

	return VersionReq{raw: s, constraints: c, clauses: clauses}, nil
}

// String returns the original requirement text.
func (r VersionReq) String() string { return r.raw }

// Matches reports whether v satisfies every clause of the
// requirement.
func (r VersionReq) Matches(v Version) bool {
	return r.constraints.Check(v.mm())
}

// ToPkgConfigString renders the requirement in pkg-config's own
// `name op version` expression syntax for the named package, e.g. `pkgname >= 1.2.0, pkgname < 2.0.0` for a
// caret requirement. Pre-release identifiers in a clause's operand
// are carried through verbatim: pkg-config's comparator is a plain
// dpkg-style string compare with no defined pre-release semantics, so
// no clause rewriting can make the result exact in that case — this
// is the implementation-defined choice recorded in DESIGN.md.
func (r VersionReq) ToPkgConfigString(pkgName string) string {
	var out []string
	for _, clause := range r.clauses {
		out = append(out, pkgConfigClause(pkgName, clause)...)
	}
	return strings.Join(out, ", ")
}

func pkgConfigClause(pkgName, clause string) []string {
	if clause == "" || clause == "*" {
		return []string{pkgName}
	}

	switch {
	case strings.HasPrefix(clause, "^"):
		v := strings.TrimPrefix(clause, "^")
		return caretOrTildeRange(pkgName, v, caretUpperBound)
	case strings.HasPrefix(clause, "~"):
		v := strings.TrimPrefix(clause, "~")
		return caretOrTildeRange(pkgName, v, tildeUpperBound)
	case strings.HasPrefix(clause, ">="):
		return []string{fmt.Sprintf("%s >= %s", pkgName, strings.TrimSpace(strings.TrimPrefix(clause, ">=")))}
	case strings.HasPrefix(clause, "<="):
		return []string{fmt.Sprintf("%s <= %s", pkgName, strings.TrimSpace(strings.TrimPrefix(clause, "<=")))}
	case strings.HasPrefix(clause, ">"):
		return []string{fmt.Sprintf("%s > %s", pkgName, strings.TrimSpace(strings.TrimPrefix(clause, ">")))}
	case strings.HasPrefix(clause, "<"):
		return []string{fmt.Sprintf("%s < %s", pkgName, strings.TrimSpace(strings.TrimPrefix(clause, "<")))}
	case strings.HasPrefix(clause, "="):
		return []string{fmt.Sprintf("%s = %s", pkgName, strings.TrimSpace(strings.TrimPrefix(clause, "=")))}
	default:
		// Bare version defaults to caret, per Cargo.
		return caretOrTildeRange(pkgName, clause, caretUpperBound)
	}
}

// upperBoundFn computes the exclusive upper bound version string for
// a caret/tilde range given its lower-bound operand.
type upperBoundFn func(v Version) string

func caretOrTildeRange(pkgName, operand string, upper upperBoundFn) []string {
	v, err := Parse(normalizePartial(operand))
	if err != nil {
		// Operand didn't parse as a full version (e.g. "1" or "1.2");
		// fall back to a lower-bound-only clause rather than erroring,
		// since pkg-config still accepts a single relational operator.
		return []string{fmt.Sprintf("%s >= %s", pkgName, operand)}
	}
	return []string{
		fmt.Sprintf("%s >= %s", pkgName, v.String()),
		fmt.Sprintf("%s < %s", pkgName, upper(v)),
	}
}

func caretUpperBound(v Version) string {
	switch {
	case v.Major > 0:
		return fmt.Sprintf("%d.0.0", v.Major+1)
	case v.Minor > 0:
		return fmt.Sprintf("0.%d.0", v.Minor+1)
	default:
		return fmt.Sprintf("0.0.%d", v.Patch+1)
	}
}

func tildeUpperBound(v Version) string {
	return fmt.Sprintf("%d.%d.0", v.Major, v.Minor+1)
}

// normalizePartial fills in missing minor/patch components
// ("1" -> "1.0.0", "1.2" -> "1.2.0") so partial version operands
// parse with this package's strict full-version grammar.
func normalizePartial(s string) string {
	s = strings.TrimSpace(s)
	switch strings.Count(s, ".") {
	case 0:
		return s + ".0.0"
	case 1:
		return s + ".0"
	default:
		return s
	}
}
