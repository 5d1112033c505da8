package buildgraph

import (
	"sort"

	"github.com/yssource/cabin/internal/cabinerr"
)

// topoSort orders names by dependency edges (name -> its deps), with
// a stable lexical tie-break among names that have no ordering
// constraint between them — the determinism invariant spec.md §5/§8
// require for byte-identical Makefile output. A cycle produces
// cabinerr.ErrTooComplexBuildGraph.
func topoSort(names []string, deps map[string][]string) ([]string, error) {
	sortedNames := append([]string{}, names...)
	sort.Strings(sortedNames)

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(sortedNames))
	var order []string

	var visit func(name string) error
	visit = func(name string) error {
		switch color[name] {
		case black:
			return nil
		case gray:
			return cabinerr.ErrTooComplexBuildGraph
		}
		color[name] = gray
		depList := append([]string{}, deps[name]...)
		sort.Strings(depList)
		for _, d := range depList {
			if _, known := color[d]; !known {
				if _, exists := deps[d]; !exists {
					// Reference to a name outside the sorted set (e.g.
					// a built-in Make variable); nothing to order it
					// against.
					continue
				}
			}
			if err := visit(d); err != nil {
				return err
			}
		}
		color[name] = black
		order = append(order, name)
		return nil
	}

	for _, name := range sortedNames {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// TopoSortVariables returns variable names in forward topological
// order: a variable referencing another appears after it.
func (g *Graph) TopoSortVariables() ([]string, error) {
	return topoSort(g.varOrder, g.varDeps)
}

// TopoSortTargets returns target names in forward topological order
// (prerequisite before dependent); callers that need reverse order
// for emission (spec.md §4.5: "targets are emitted in reverse topo
// order") simply iterate it backwards.
func (g *Graph) TopoSortTargets() ([]string, error) {
	return topoSort(g.targetOrder, g.targetDeps)
}
