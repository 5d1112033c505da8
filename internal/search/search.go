// Package search implements `cabin search <query>`, listing packages
// by querying GitHub code search for cabin.toml manifests that
// declare a matching package name (spec.md §4.8). Cabin has no
// central registry, so GitHub itself stands in for one, mirroring how
// the teacher's internal/version provider_github.go already leans on
// go-github for repository metadata.
package search

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/go-github/v57/github"
)

// Result is one discovered package.
type Result struct {
	Name       string // package name, parsed out of the matched cabin.toml
	Repository string // owner/repo
	Path       string // path to cabin.toml within the repository
	URL        string // HTML URL to the matching file
}

// Client wraps a go-github client scoped to manifest search.
type Client struct {
	gh *github.Client
}

// New builds a Client. If the GITHUB_TOKEN environment variable is
// set, requests are authenticated, raising GitHub's code-search rate
// limit considerably.
func New() *Client {
	gh := github.NewClient(nil)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		gh = gh.WithAuthToken(token)
	}
	return &Client{gh: gh}
}

// Search looks up cabin.toml files matching query through GitHub code
// search, returning at most limit results sorted by repository name.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	q := fmt.Sprintf(`filename:cabin.toml %s`, query)
	opts := &github.SearchOptions{
		TextMatch:   true,
		ListOptions: github.ListOptions{PerPage: limit},
	}

	out, _, err := c.gh.Search.Code(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("github code search failed: %w", err)
	}

	var results []Result
	for _, item := range out.CodeResults {
		name := packageNameFromFragment(item.GetTextMatches())
		if name == "" {
			name = query
		}
		results = append(results, Result{
			Name:       name,
			Repository: item.GetRepository().GetFullName(),
			Path:       item.GetPath(),
			URL:        item.GetHTMLURL(),
		})
		if len(results) >= limit {
			break
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Repository < results[j].Repository
	})
	return results, nil
}

// packageNameFromFragment scans the text-match fragments GitHub
// returns for a `name = "..."` line, approximating the [package]
// section's name field without fetching the whole file.
func packageNameFromFragment(matches []*github.TextMatch) string {
	for _, m := range matches {
		for _, line := range strings.Split(m.GetFragment(), "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "name") {
				continue
			}
			rest := strings.TrimSpace(strings.TrimPrefix(line, "name"))
			rest = strings.TrimPrefix(rest, "=")
			rest = strings.TrimSpace(rest)
			rest = strings.Trim(rest, `"`)
			if rest != "" {
				return rest
			}
		}
	}
	return ""
}
