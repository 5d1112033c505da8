package semver

import "math"

const maxUint64 = math.MaxUint64

// parseVersion parses a full "major.minor.patch[-pre][+build]" string
// from its token stream, per the grammar spec.md §3/§4.2 describe.
func parseVersion(input string, toks []token) (Version, error) {
	p := &parser{input: input, toks: toks}

	major, err := p.numericIdent("major")
	if err != nil {
		return Version{}, err
	}
	if err := p.expect(tokDot, "expected '.' after major version"); err != nil {
		return Version{}, err
	}
	minor, err := p.numericIdent("minor")
	if err != nil {
		return Version{}, err
	}
	if err := p.expect(tokDot, "expected '.' after minor version"); err != nil {
		return Version{}, err
	}
	patch, err := p.numericIdent("patch")
	if err != nil {
		return Version{}, err
	}

	v := Version{Major: major, Minor: minor, Patch: patch}

	if p.cur().kind == tokHyphen {
		p.advance()
		pre, err := p.dottedIdentList(true)
		if err != nil {
			return Version{}, err
		}
		v.Pre = pre
	}

	if p.cur().kind == tokPlus {
		p.advance()
		build, err := p.dottedIdentList(false)
		if err != nil {
			return Version{}, err
		}
		v.Build = build
	}

	if p.cur().kind != tokEOF {
		return Version{}, newParseError(input, p.cur().pos, "unexpected character %q", p.cur().text)
	}

	return v, nil
}

type parser struct {
	input string
	toks  []token
	i     int
}

func (p *parser) cur() token {
	return p.toks[p.i]
}

func (p *parser) advance() {
	if p.i < len(p.toks)-1 {
		p.i++
	}
}

func (p *parser) expect(k tokenKind, msg string) error {
	if p.cur().kind != k {
		return newParseError(p.input, p.cur().pos, "%s", msg)
	}
	p.advance()
	return nil
}

// numericIdent parses a single numeric version component (major,
// minor, or patch): a run of digits, no leading zero (unless it is
// exactly "0"), no overflow past 2^64-1.
func (p *parser) numericIdent(which string) (uint64, error) {
	t := p.cur()
	if t.kind == tokUnknown {
		return 0, newParseError(p.input, t.pos, "unexpected character %q in %s version", t.text, which)
	}
	if t.kind != tokNum {
		return 0, newParseError(p.input, t.pos, "expected numeric %s version", which)
	}
	if hasLeadingZero(t.text) {
		return 0, newParseError(p.input, t.pos, "leading zeros are not allowed in %s version", which)
	}
	n, err := parseUint64(t.text)
	if err != nil {
		return 0, newParseError(p.input, t.pos, "%s version overflows a 64-bit integer", which)
	}
	p.advance()
	return n, nil
}

func parseUint64(s string) (uint64, error) {
	var n uint64
	for i := 0; i < len(s); i++ {
		d := uint64(s[i] - '0')
		if n > (maxUint64-d)/10 {
			return 0, errOverflow
		}
		n = n*10 + d
	}
	return n, nil
}

var errOverflow = &ParseError{Message: "numeric identifier overflow"}

// dottedIdentList parses a dot-separated list of identifiers, each of
// which is either a numeric identifier (digits; no leading zero in a
// pre-release, while build metadata numerics may have leading zeros)
// or an alphanumeric identifier (may contain hyphens).
// numericLeadingZeroMatters toggles the leading-zero rule, which
// SemVer 2.0.0 applies to pre-release numeric identifiers but not to
// build metadata.
func (p *parser) dottedIdentList(numericLeadingZeroMatters bool) (string, error) {
	var parts []string
	for {
		part, err := p.dottedIdent(numericLeadingZeroMatters)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
		if p.cur().kind == tokDot {
			p.advance()
			continue
		}
		break
	}
	out := parts[0]
	for _, part := range parts[1:] {
		out += "." + part
	}
	return out, nil
}

// dottedIdent parses one identifier between dots: a contiguous run of
// tokNum/tokIdent/tokHyphen tokens (alphanumerics and hyphens, no
// dots, no plus).
func (p *parser) dottedIdent(numericLeadingZeroMatters bool) (string, error) {
	start := p.i
	hasAlpha := false
	hasHyphen := false
	var text string
	for {
		t := p.cur()
		switch t.kind {
		case tokNum, tokIdent, tokHyphen:
			if t.kind == tokIdent {
				hasAlpha = true
			}
			if t.kind == tokHyphen {
				hasHyphen = true
			}
			text += t.text
			p.advance()
		default:
			goto done
		}
	}
done:
	if text == "" {
		return "", newParseError(p.input, p.toks[start].pos, "expected an identifier")
	}
	if !hasAlpha && !hasHyphen && numericLeadingZeroMatters && hasLeadingZero(text) {
		return "", newParseError(p.input, p.toks[start].pos, "leading zeros are not allowed in numeric pre-release identifiers")
	}
	return text, nil
}
