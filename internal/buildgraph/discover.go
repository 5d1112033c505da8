// Package buildgraph discovers a project's source tree under
// `src/` and constructs the Makefile-shaped dependency graph that
// produces binaries, static libraries, unit-test binaries, and
// a compile_commands.json (spec.md §4.5).
package buildgraph

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yssource/cabin/internal/cabinerr"
)

var sourceExts = map[string]bool{
	".c": true, ".c++": true, ".cc": true, ".cpp": true, ".cxx": true,
}

var headerExts = map[string]bool{
	".h": true, ".h++": true, ".hh": true, ".hpp": true, ".hxx": true,
}

// IsSource reports whether path's extension marks it as a C/C++
// source file.
func IsSource(path string) bool { return sourceExts[filepath.Ext(path)] }

// IsHeader reports whether path's extension marks it as a C/C++
// header file.
func IsHeader(path string) bool { return headerExts[filepath.Ext(path)] }

// SourceTree is the result of walking `<root>/src/`.
type SourceTree struct {
	Root string // the src/ directory itself

	// Sources and Headers hold paths relative to Root, sorted for
	// deterministic iteration.
	Sources []string
	Headers []string

	// MainEntry/LibEntry hold the relative path (directly under
	// Root) of the main./lib. stem source, if found.
	MainEntry string
	LibEntry  string
}

// HasBinary/HasLibrary report whether an entry point of that kind was
// found.
func (t SourceTree) HasBinary() bool  { return t.MainEntry != "" }
func (t SourceTree) HasLibrary() bool { return t.LibEntry != "" }

// Discover walks srcDir, classifying files by extension and locating
// the main/lib entry points that must sit directly in srcDir (spec.md
// §4.5). Stray main/lib-stem files elsewhere produce warnings, which
// are returned alongside the tree rather than surfaced as errors.
func Discover(srcDir string) (*SourceTree, []string, error) {
	tree := &SourceTree{Root: srcDir}
	var warnings []string

	var mainMatches, libMatches []string

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		stem := stemOf(rel)
		directlyInRoot := !strings.Contains(rel, string(filepath.Separator))

		switch {
		case IsSource(path):
			tree.Sources = append(tree.Sources, rel)
			if stem == "main" {
				if directlyInRoot {
					mainMatches = append(mainMatches, rel)
				} else {
					warnings = append(warnings, "source file with stem \"main\" found in a subdirectory of src/: "+rel)
				}
			}
			if stem == "lib" {
				if directlyInRoot {
					libMatches = append(libMatches, rel)
				} else {
					warnings = append(warnings, "source file with stem \"lib\" found in a subdirectory of src/: "+rel)
				}
			}
		case IsHeader(path):
			tree.Headers = append(tree.Headers, rel)
		}
		return nil
	})
	if err != nil {
		return nil, nil, cabinerr.Wrap(cabinerr.KindIO, "failed to walk src/", err)
	}

	sort.Strings(tree.Sources)
	sort.Strings(tree.Headers)

	if len(mainMatches) > 1 {
		return nil, nil, cabinerr.MultipleEntryPoints("main")
	}
	if len(libMatches) > 1 {
		return nil, nil, cabinerr.MultipleEntryPoints("lib")
	}
	if len(mainMatches) == 1 {
		tree.MainEntry = mainMatches[0]
	}
	if len(libMatches) == 1 {
		tree.LibEntry = libMatches[0]
	}

	if !tree.HasBinary() && !tree.HasLibrary() {
		return nil, nil, cabinerr.MissingEntryPoint("main")
	}

	return tree, warnings, nil
}

// stemOf returns the filename without its extension, e.g.
// "sub/main.cc" -> "main".
func stemOf(rel string) string {
	base := filepath.Base(rel)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
