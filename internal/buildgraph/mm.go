package buildgraph

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/process"
)

// depRule is the parsed result of `<cxx> -MM <src>`: the object file
// the source produces and the set of headers it includes.
type depRule struct {
	source  string
	objName string
	headers []string
}

// extractDeps runs `-MM` for every source in sources, in parallel
// bounded by parallelism (spec.md §4.5/§5). Results are returned in
// the same order as sources regardless of completion order, so
// downstream consumers don't need their own sort.
func extractDeps(ctx context.Context, cxx string, cflagTokens []string, cwd string, sources []string, parallelism int) ([]depRule, error) {
	results := make([]depRule, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallelism, 1))

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			rule, err := runMM(gctx, cxx, cflagTokens, cwd, src)
			if err != nil {
				return err
			}
			results[i] = rule
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runMM(ctx context.Context, cxx string, cflagTokens []string, cwd, src string) (depRule, error) {
	args := append(append([]string{}, cflagTokens...), "-MM", src)
	cmd := process.New(cxx, args...)
	cmd.Cwd = cwd
	out, err := cmd.Output(ctx)
	if err != nil || !out.Status.Success() {
		stderr := strings.TrimSpace(string(out.Stderr))
		return depRule{}, cabinerr.New(cabinerr.KindSubprocess,
			fmt.Sprintf("failed to extract dependencies for %s: %s", src, stderr))
	}
	return parseMakeRule(src, string(out.Stdout))
}

// parseMakeRule parses `obj.o: src header1 header2 \` output into its
// object name and header set, skipping the first item after the
// colon (the source itself, per spec.md §4.5a).
func parseMakeRule(src, output string) (depRule, error) {
	joined := strings.ReplaceAll(output, "\\\n", " ")
	joined = strings.ReplaceAll(joined, "\n", " ")

	colon := strings.IndexByte(joined, ':')
	if colon < 0 {
		return depRule{}, cabinerr.New(cabinerr.KindBuildGraph, fmt.Sprintf("unparseable -MM output for %s", src))
	}
	objName := strings.TrimSpace(joined[:colon])
	rest := strings.Fields(joined[colon+1:])

	if len(rest) == 0 {
		return depRule{source: src, objName: objName}, nil
	}
	// rest[0] is the source itself; everything after is a header.
	headers := append([]string{}, rest[1:]...)
	return depRule{source: src, objName: objName, headers: headers}, nil
}
