package buildgraph

// AddTidyTargets defines the CABIN_TIDY variable, the `tidy_%: %`
// pattern rule, and the aggregate phony `tidy` target (spec.md §4.5
// "Tidy targets").
func (g *Graph) AddTidyTargets(sources []string) {
	g.AddVariable(Variable{Name: "CABIN_TIDY", Type: VarCond, Value: "clang-tidy"}, nil)

	g.AddTarget(Target{
		Name:     "tidy_%",
		RemDeps:  []string{"%"},
		Commands: []string{"$(CABIN_TIDY) $(CABIN_TIDY_FLAGS) $< -- $(CXXFLAGS) $(DEFINES) -DCABIN_TEST $(INCLUDES)"},
	}, []string{"CABIN_TIDY"})

	tidyDeps := make([]string, len(sources))
	for i, src := range sources {
		tidyDeps[i] = "tidy_" + src
	}
	g.AddTarget(Target{
		Name:    "tidy",
		RemDeps: tidyDeps,
		Phony:   true,
	}, tidyDeps)
}
