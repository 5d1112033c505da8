package buildgraph

import (
	"context"
	"path/filepath"

	"github.com/yssource/cabin/internal/project"
)

// Result is everything Construct produces: the populated Graph, the
// compile_commands.json records, and any discovery warnings (stray
// main/lib-stem files) to surface to the user without failing the
// build.
type Result struct {
	Graph          *Graph
	CompileRecords []compileRecord
	Warnings       []string
	HasBinary      bool
	HasLibrary     bool
	BinaryPath     string
	LibraryPath    string
	TestBinaries   []string
}

// Construct discovers proj's source tree and builds the full Makefile
// graph: compile targets for every source (production and, where
// CABIN_TEST is confirmed, test variants), the binary/library link
// target, test binary targets, and the tidy aggregate (spec.md §4.5
// end to end).
func Construct(ctx context.Context, proj *project.Project, parallelism int) (*Result, error) {
	srcDir := filepath.Join(proj.Root, "src")
	tree, warnings, err := Discover(srcDir)
	if err != nil {
		return nil, err
	}

	absSources := make([]string, len(tree.Sources))
	for i, rel := range tree.Sources {
		absSources[i] = filepath.Join(srcDir, rel)
	}

	cflagTokens := proj.Options.CFlags.Tokens()
	rules, err := extractDeps(ctx, proj.CXX, cflagTokens, proj.OutBasePath(), absSources, parallelism)
	if err != nil {
		return nil, err
	}
	ruleBySource := make(map[string]depRule, len(rules))
	for _, r := range rules {
		ruleBySource[r.source] = r
	}

	graph := NewGraph()
	builder := NewBuilder(graph, srcDir, proj.BuildOutPath(), proj.UnitTestOutPath())

	result := &Result{Graph: graph, Warnings: warnings}

	var compileRecords []compileRecord
	for _, rule := range rules {
		objPath := builder.RegisterCompileTarget(rule, false)
		compileRecords = append(compileRecords, compileRecord{source: rule.source, object: objPath})
	}

	var allTargets []string

	if tree.HasBinary() {
		absMain := filepath.Join(srcDir, tree.MainEntry)
		mainRule := ruleBySource[absMain]
		entryObj := builder.buildObjTarget(absMain)
		binPath := filepath.Join(proj.OutBasePath(), proj.BinaryName())
		builder.RegisterLinkTarget(binPath, entryObj, mainRule.headers, false)
		result.HasBinary = true
		result.BinaryPath = binPath
		allTargets = append(allTargets, binPath)
	}

	if tree.HasLibrary() {
		absLib := filepath.Join(srcDir, tree.LibEntry)
		libRule := ruleBySource[absLib]
		entryObj := builder.buildObjTarget(absLib)
		libPath := filepath.Join(proj.OutBasePath(), proj.LibraryName())
		builder.RegisterLinkTarget(libPath, entryObj, libRule.headers, true)
		result.HasLibrary = true
		result.LibraryPath = libPath
		allTargets = append(allTargets, libPath)
	}

	testBinaries, err := discoverAndRegisterTests(ctx, proj, builder, rules, cflagTokens)
	if err != nil {
		return nil, err
	}
	allTargets = append(allTargets, testBinaries...)

	graph.SetAll(allTargets)
	graph.AddTidyTargets(absSources)

	result.CompileRecords = compileRecords
	result.TestBinaries = testBinaries
	return result, nil
}

func discoverAndRegisterTests(ctx context.Context, proj *project.Project, builder *Builder, rules []depRule, cflagTokens []string) ([]string, error) {
	var testBinaries []string
	for _, rule := range rules {
		candidate, err := IsCandidateTest(rule.source)
		if err != nil {
			return nil, err
		}
		if !candidate {
			continue
		}
		confirmed, err := isConfirmedTest(ctx, proj.CXX, cflagTokens, proj.OutBasePath(), rule.source)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			continue
		}

		testObj := builder.RegisterCompileTarget(rule, true)
		testBinaryPath := builder.TestBinaryTarget(rule.source)
		builder.RegisterTestTarget(testObj, rule.headers, testBinaryPath)
		testBinaries = append(testBinaries, testBinaryPath)
	}
	return testBinaries, nil
}
