// Package cli pre-processes os.Args before cobra ever sees them:
// splitting `--long=value` tokens, expanding bundled short options
// against a registered set, and suggesting near-matches for unknown
// subcommands/options (spec.md §4.6).
package cli

import (
	"fmt"
	"strings"
)

// ShortOption describes one registered short flag for bundling
// purposes: its letter and whether it consumes a following value.
type ShortOption struct {
	Letter   byte
	TakesArg bool
}

// ExpandArgs applies spec.md §4.6's two token transformations in
// order: `--long=value` splitting, then short-option bundle
// expansion. shortOpts is the full set of registered short options
// across the invoked command's scope.
func ExpandArgs(args []string, shortOpts []ShortOption) ([]string, error) {
	expanded := make([]string, 0, len(args))
	for _, a := range args {
		expanded = append(expanded, splitLongEquals(a)...)
	}

	byLetter := make(map[byte]ShortOption, len(shortOpts))
	for _, o := range shortOpts {
		byLetter[o.Letter] = o
	}

	var out []string
	for i := 0; i < len(expanded); i++ {
		a := expanded[i]
		if !isShortCluster(a) {
			out = append(out, a)
			continue
		}
		tokens, consumed, err := expandCluster(a, expanded, i, byLetter)
		if err != nil {
			return nil, err
		}
		out = append(out, tokens...)
		i += consumed
	}
	return out, nil
}

// splitLongEquals turns `--long=value` into `--long` `value`; any
// other token passes through unchanged.
func splitLongEquals(a string) []string {
	if !strings.HasPrefix(a, "--") {
		return []string{a}
	}
	if idx := strings.IndexByte(a, '='); idx > 0 {
		return []string{a[:idx], a[idx+1:]}
	}
	return []string{a}
}

func isShortCluster(a string) bool {
	return len(a) > 1 && a[0] == '-' && a[1] != '-'
}

// expandCluster splits a single-dash cluster ("-vvj1") against the
// registered short-option set, longest-prefix-first: a trailing
// argument-taking option consumes the following cluster remainder
// or, if none, the next CLI token. Unknown short clusters pass
// through untouched. Returns the expanded tokens and how many
// additional input tokens (beyond args[i] itself) were consumed.
func expandCluster(cluster string, all []string, i int, byLetter map[byte]ShortOption) ([]string, int, error) {
	body := cluster[1:]
	var tokens []string

	for pos := 0; pos < len(body); pos++ {
		letter := body[pos]
		opt, known := byLetter[letter]
		if !known {
			// Unknown short cluster: pass the whole original token
			// through untouched, per spec.md §4.6.
			return []string{cluster}, 0, nil
		}
		tokens = append(tokens, "-"+string(letter))
		if opt.TakesArg {
			rest := body[pos+1:]
			if rest != "" {
				tokens = append(tokens, rest)
				return tokens, 0, nil
			}
			if i+1 < len(all) {
				tokens = append(tokens, all[i+1])
				return tokens, 1, nil
			}
			return nil, 0, fmt.Errorf("Missing argument for `-%c`", letter)
		}
	}
	return tokens, 0, nil
}
