package buildgraph

import (
	"path/filepath"
	"strings"
)

// Builder constructs a Graph from a discovered SourceTree and a set
// of resolved -MM dependency rules.
//
// Sources and headers are identified by absolute paths throughout:
// -MM is invoked with an absolute source path and absolute include
// directories (the Project's assembled CFlags already produce
// absolute IncludeDir entries), so GCC/Clang echo absolute paths in
// the generated dependency rule too.
type Builder struct {
	graph *Graph

	srcRoot      string // <project>/src, absolute
	buildOutPath string // <outBase>/<pkgname>.d
	testOutPath  string // <outBase>/unittests

	// headersByObj maps a registered production object's path to the
	// header set its compile rule depends on, so transitive expansion
	// can recurse without re-running -MM.
	headersByObj map[string][]string
}

// NewBuilder returns a Builder that will populate graph.
func NewBuilder(graph *Graph, srcRoot, buildOutPath, testOutPath string) *Builder {
	return &Builder{
		graph:        graph,
		srcRoot:      srcRoot,
		buildOutPath: buildOutPath,
		testOutPath:  testOutPath,
		headersByObj: make(map[string][]string),
	}
}

// buildObjTarget computes <buildOutPath>/<relative-dir>/obj.o for an
// absolute source path under srcRoot (spec.md §4.5b).
func (b *Builder) buildObjTarget(absSrc string) string {
	rel, _ := filepath.Rel(b.srcRoot, absSrc)
	stem := strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(b.buildOutPath, stem+".o")
}

func (b *Builder) testObjTarget(absSrc string) string {
	rel, _ := filepath.Rel(b.srcRoot, absSrc)
	stem := strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(b.testOutPath, stem+".o")
}

// TestBinaryTarget computes `<unittestOutPath>/<relative-dir>/<filename>.test`
// for an absolute source path under srcRoot (spec.md §4.5 "Unit-test
// discovery").
func (b *Builder) TestBinaryTarget(absSrc string) string {
	rel, _ := filepath.Rel(b.srcRoot, absSrc)
	return filepath.Join(b.testOutPath, rel+".test")
}

// headerToObj maps an absolute header path to its paired production
// object, returning ok=false if the header isn't under srcRoot or
// has no known compiled object (spec.md §4.5's transitive expansion).
func (b *Builder) headerToObj(absHeader string) (string, bool) {
	rel, err := filepath.Rel(b.srcRoot, absHeader)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	stem := strings.TrimSuffix(rel, filepath.Ext(rel))
	objPath := filepath.Join(b.buildOutPath, stem+".o")
	if _, ok := b.headersByObj[objPath]; !ok {
		return "", false
	}
	return objPath, true
}

// RegisterCompileTarget defines the compile target for rule (spec.md
// §4.5c). The test variant's second command gets -DCABIN_TEST
// appended and writes under testOutPath instead of buildOutPath, and
// is not recorded in headersByObj since test objects are never a
// transitive-expansion target themselves.
func (b *Builder) RegisterCompileTarget(rule depRule, isTest bool) string {
	var objPath string
	if isTest {
		objPath = b.testObjTarget(rule.source)
	} else {
		objPath = b.buildObjTarget(rule.source)
		b.headersByObj[objPath] = rule.headers
	}

	compileCmd := CompileInvocation()
	if isTest {
		compileCmd += " -DCABIN_TEST"
	}

	b.graph.AddTarget(Target{
		Name:       objPath,
		SourceFile: rule.source,
		RemDeps:    append([]string{}, rule.headers...),
		Commands:   []string{"@mkdir -p $(@D)", compileCmd},
	}, append([]string{rule.source}, rule.headers...))

	return objPath
}

// ExpandTransitive computes the full set of objects a compile unit's
// header set pulls in, recursively, skipping headers that share the
// compiling source's stem and any header with no known paired object
// (spec.md §4.5's "critical subroutine"). added tracks objects
// already included, preventing both duplicate entries and cycles.
func (b *Builder) ExpandTransitive(sourceStem string, headers []string, added map[string]bool) []string {
	var objs []string
	for _, h := range headers {
		if !IsHeader(h) {
			continue
		}
		if stemOf(h) == sourceStem {
			continue
		}
		obj, ok := b.headerToObj(h)
		if !ok {
			continue
		}
		if added[obj] {
			continue
		}
		added[obj] = true
		objs = append(objs, obj)
		objs = append(objs, b.ExpandTransitive(sourceStem, b.headersByObj[obj], added)...)
	}
	return objs
}

// RegisterLinkTarget defines the binary or library output target,
// whose prerequisites are entryObj transitively expanded (spec.md
// §4.5 "Binary/library output targets").
func (b *Builder) RegisterLinkTarget(outPath, entryObj string, entryHeaders []string, isLibrary bool) {
	added := map[string]bool{entryObj: true}
	stem := stemOf(entryObj)
	deps := append([]string{entryObj}, b.ExpandTransitive(stem, entryHeaders, added)...)

	commands := []string{"$(CXX) $(LDFLAGS) $^ $(LIBS) -o $@"}
	if isLibrary {
		commands = []string{"$(AR) rcs $@ $^"}
	}

	b.graph.AddTarget(Target{
		Name:     outPath,
		RemDeps:  deps,
		Commands: commands,
	}, deps)
}

// RegisterTestTarget defines a confirmed unit test's binary target
// (spec.md §4.5 "Unit-test discovery"), expanding transitively
// against the production object set as the spec requires.
func (b *Builder) RegisterTestTarget(testObj string, prodHeaders []string, testBinaryPath string) {
	added := map[string]bool{testObj: true}
	stem := stemOf(testObj)
	deps := append([]string{testObj}, b.ExpandTransitive(stem, prodHeaders, added)...)

	b.graph.AddTarget(Target{
		Name:     testBinaryPath,
		RemDeps:  deps,
		Commands: []string{"$(CXX) $(LDFLAGS) $^ $(LIBS) -o $@"},
	}, deps)
}

// CompileInvocation renders the compile command from spec.md §4.5c:
// `$(CXX) $(CXXFLAGS) $(DEFINES) $(INCLUDES) -c $< -o $@`.
func CompileInvocation() string {
	return "$(CXX) $(CXXFLAGS) $(DEFINES) $(INCLUDES) -c $< -o $@"
}
