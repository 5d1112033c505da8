package buildgraph

import "sync"

// VarType selects the Makefile assignment operator a Variable emits
// with (spec.md §3).
type VarType int

const (
	VarRecursive VarType = iota // =
	VarSimple                   // :=
	VarCond                     // ?=
	VarAppend                   // +=
	VarShell                    // !=
)

func (t VarType) operator() string {
	switch t {
	case VarSimple:
		return ":="
	case VarCond:
		return "?="
	case VarAppend:
		return "+="
	case VarShell:
		return "!="
	default:
		return "="
	}
}

// Variable is a Makefile variable assignment.
type Variable struct {
	Name  string
	Type  VarType
	Value string
}

// Target is a Makefile rule: an output, its prerequisites, and the
// commands that build it.
type Target struct {
	Name string

	// SourceFile, if set, is the target's primary input and appears
	// first in the prerequisite list.
	SourceFile string

	// RemDeps are any further ("remaining") prerequisites: extra
	// headers, other objects, and so on.
	RemDeps []string

	// Commands are emitted TAB-indented, one per line; a line not
	// already starting with `@` gets a `$(Q)` prefix so quiet mode
	// can silence echoing.
	Commands []string

	Phony bool
}

// Prerequisites returns SourceFile (if set) followed by RemDeps, the
// order spec.md §3 specifies for emission.
func (t Target) Prerequisites() []string {
	if t.SourceFile == "" {
		return append([]string{}, t.RemDeps...)
	}
	prereqs := make([]string, 0, len(t.RemDeps)+1)
	prereqs = append(prereqs, t.SourceFile)
	prereqs = append(prereqs, t.RemDeps...)
	return prereqs
}

// Graph is the full set of Variables and Targets that make up a
// Makefile, plus the adjacency needed to topologically sort each
// (spec.md §3's BuildConfig).
type Graph struct {
	mu sync.Mutex

	variables map[string]*Variable
	targets   map[string]*Target

	// varDeps/targetDeps record, for each name, the set of other
	// names it references — the edges the topological sort walks.
	varDeps    map[string][]string
	targetDeps map[string][]string

	phony map[string]bool
	all   []string // names to list as prerequisites of the `all` target

	varOrder    []string
	targetOrder []string
}

// NewGraph returns an empty Graph ready for population.
func NewGraph() *Graph {
	return &Graph{
		variables:  make(map[string]*Variable),
		targets:    make(map[string]*Target),
		varDeps:    make(map[string][]string),
		targetDeps: make(map[string][]string),
		phony:      make(map[string]bool),
	}
}

// AddVariable registers a variable, recording deps as the names of
// other variables referenced in value (via $(NAME) substitution) so
// the topological sort can order declarations correctly.
func (g *Graph) AddVariable(v Variable, deps []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.variables[v.Name]; !exists {
		g.varOrder = append(g.varOrder, v.Name)
	}
	g.variables[v.Name] = &v
	g.varDeps[v.Name] = deps
}

// AddTarget registers a target under the graph's short-held lock.
func (g *Graph) AddTarget(t Target, deps []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.targets[t.Name]; !exists {
		g.targetOrder = append(g.targetOrder, t.Name)
	}
	g.targets[t.Name] = &t
	g.targetDeps[t.Name] = deps
	if t.Phony {
		g.phony[t.Name] = true
	}
}

// HasTarget reports whether name is already a registered target.
func (g *Graph) HasTarget(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.targets[name]
	return ok
}

// SetAll records the names that the `all` phony target depends on.
func (g *Graph) SetAll(names []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.all = append([]string{}, names...)
}
