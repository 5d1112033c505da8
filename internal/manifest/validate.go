package manifest

import "fmt"

// cppKeywords is the set of reserved words a package name must not
// collide with (spec.md §3: "not a C++ keyword").
var cppKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "and_eq": true,
	"asm": true, "auto": true, "bitand": true, "bitor": true,
	"bool": true, "break": true, "case": true, "catch": true,
	"char": true, "char8_t": true, "char16_t": true, "char32_t": true,
	"class": true, "compl": true, "concept": true, "const": true,
	"consteval": true, "constexpr": true, "constinit": true,
	"const_cast": true, "continue": true, "co_await": true,
	"co_return": true, "co_yield": true, "decltype": true,
	"default": true, "delete": true, "do": true, "double": true,
	"dynamic_cast": true, "else": true, "enum": true, "explicit": true,
	"export": true, "extern": true, "false": true, "float": true,
	"for": true, "friend": true, "goto": true, "if": true,
	"inline": true, "int": true, "long": true, "mutable": true,
	"namespace": true, "new": true, "noexcept": true, "not": true,
	"not_eq": true, "nullptr": true, "operator": true, "or": true,
	"or_eq": true, "private": true, "protected": true, "public": true,
	"register": true, "reinterpret_cast": true, "requires": true,
	"return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "static_assert": true, "static_cast": true,
	"struct": true, "switch": true, "template": true, "this": true,
	"thread_local": true, "throw": true, "true": true, "try": true,
	"typedef": true, "typeid": true, "typename": true, "union": true,
	"unsigned": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "wchar_t": true, "while": true, "xor": true,
	"xor_eq": true,
}

func isLower(b byte) bool  { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isAlnum(b byte) bool  { return isLower(b) || isDigit(b) }

// validatePackageName enforces spec.md §3's package-name invariant:
// non-empty, length ≥ 2, starts with a letter, ends with a
// letter/digit, characters limited to lowercase letters, digits, `-`,
// `_`, and not a reserved C++ keyword.
func validatePackageName(name string) error {
	if name == "" {
		return fmt.Errorf("package name must not be empty")
	}
	if len(name) < 2 {
		return fmt.Errorf("invalid package name %q: must be at least 2 characters", name)
	}
	if !isLower(name[0]) {
		return fmt.Errorf("invalid package name %q: must start with a letter", name)
	}
	last := name[len(name)-1]
	if !isAlnum(last) {
		return fmt.Errorf("invalid package name %q: must end with a letter or digit", name)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(isLower(c) || isDigit(c) || c == '-' || c == '_') {
			return fmt.Errorf("invalid package name %q: character %q is not allowed", name, string(c))
		}
	}
	if cppKeywords[name] {
		return fmt.Errorf("invalid package name %q: must not be a C++ keyword", name)
	}
	return nil
}

// validateDepName enforces spec.md §3's dependency-name invariant:
// non-empty; begins and ends with an alphanumeric (the end may also
// be `+`); characters are alphanumerics plus `-_/.+`; no two
// consecutive non-alphanumerics except a `+` `+` pair; every `.` is
// flanked by digits; at most one `/`; and `+` appears either zero or
// exactly twice, consecutively.
func validateDepName(name string) error {
	fail := func() error { return fmt.Errorf("invalid dependency name %q", name) }

	if name == "" {
		return fail()
	}
	n := len(name)
	first := name[0]
	if !isAlnum(first) && !(first >= 'A' && first <= 'Z') {
		return fail()
	}
	last := name[n-1]
	if !isAlnum(last) && last != '+' && !(last >= 'A' && last <= 'Z') {
		return fail()
	}

	isAlnumAny := func(b byte) bool {
		return isAlnum(b) || (b >= 'A' && b <= 'Z')
	}

	slashCount := 0
	plusCount := 0
	for i := 0; i < n; i++ {
		c := name[i]
		switch {
		case isAlnumAny(c):
			// fine
		case c == '-' || c == '_' || c == '/' || c == '.' || c == '+':
			// fine, subject to further rules below
		default:
			return fail()
		}
		if c == '/' {
			slashCount++
		}
		if c == '+' {
			plusCount++
		}
		if c == '.' {
			if i == 0 || i == n-1 || !isDigit(name[i-1]) || !isDigit(name[i+1]) {
				return fail()
			}
		}
		if !isAlnumAny(c) && i+1 < n && !isAlnumAny(name[i+1]) {
			// consecutive non-alphanumerics are only allowed as a "++" pair
			if !(c == '+' && name[i+1] == '+') {
				return fail()
			}
		}
	}
	if slashCount > 1 {
		return fail()
	}
	if plusCount != 0 && plusCount != 2 {
		return fail()
	}
	if plusCount == 2 {
		idx := -1
		for i := 0; i < n-1; i++ {
			if name[i] == '+' && name[i+1] == '+' {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fail()
		}
	}
	return nil
}

// validateFlag enforces spec.md §3's Profile flag invariant: every
// flag starts with `-` and contains only alphanumerics and
// `-_=+:.`.
func validateFlag(flag string) error {
	if flag == "" || flag[0] != '-' {
		return fmt.Errorf("invalid flag %q: must start with '-'", flag)
	}
	for i := 1; i < len(flag); i++ {
		c := flag[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', isDigit(c):
		case c == '-' || c == '_' || c == '=' || c == '+' || c == ':' || c == '.':
		default:
			return fmt.Errorf("invalid flag %q: character %q is not allowed", flag, string(c))
		}
	}
	return nil
}
