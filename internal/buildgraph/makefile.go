package buildgraph

import (
	"sort"
	"strings"
)

const wrapColumn = 80

// Render emits the graph as Makefile text: variables in forward
// topological order, then the `all`/`.PHONY` block, then targets in
// reverse topological order (spec.md §4.5 "Makefile text format",
// "Topological emission").
func (g *Graph) Render() (string, error) {
	varOrder, err := g.TopoSortVariables()
	if err != nil {
		return "", err
	}
	targetOrder, err := g.TopoSortTargets()
	if err != nil {
		return "", err
	}

	var b strings.Builder

	for _, name := range varOrder {
		v := g.variables[name]
		b.WriteString(renderVariable(*v))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if len(g.all) > 0 {
		b.WriteString(wrapPrereqLine("all:", g.all))
		b.WriteString("\n\n")
	}

	phonyNames := sortedKeys(g.phony)
	if len(phonyNames) > 0 {
		b.WriteString(wrapPrereqLine(".PHONY:", phonyNames))
		b.WriteString("\n\n")
	}

	for i := len(targetOrder) - 1; i >= 0; i-- {
		t := g.targets[targetOrder[i]]
		b.WriteString(renderTarget(*t))
		b.WriteByte('\n')
	}

	return b.String(), nil
}

func renderVariable(v Variable) string {
	return v.Name + " " + v.Type.operator() + " " + v.Value
}

func renderTarget(t Target) string {
	var b strings.Builder
	b.WriteString(wrapPrereqLine(t.Name+":", t.Prerequisites()))
	b.WriteByte('\n')
	for _, cmd := range t.Commands {
		line := cmd
		if !strings.HasPrefix(line, "@") {
			line = "$(Q)" + line
		}
		b.WriteByte('\t')
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// wrapPrereqLine wraps "<header> item item item…" at column 80 with
// backslash continuations and a two-space indent on continuation
// lines (spec.md §4.5 "Makefile text format").
func wrapPrereqLine(header string, items []string) string {
	if len(items) == 0 {
		return header
	}
	var b strings.Builder
	b.WriteString(header)
	col := len(header)
	for _, item := range items {
		if col+1+len(item) > wrapColumn {
			b.WriteString(" \\\n  ")
			col = 2
		} else {
			b.WriteByte(' ')
			col++
		}
		b.WriteString(item)
		col += len(item)
	}
	return b.String()
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
