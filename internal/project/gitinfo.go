package project

import (
	"context"
	"strings"
	"time"

	"github.com/yssource/cabin/internal/process"
)

// commitInfo is the subset of `git log` metadata the CABIN_* built-in
// macros describe. The teacher pack and spec.md both mention libgit2
// for this; since no libgit2 binding ships with the examples, this
// shells out to the `git` binary instead, following the same
// subprocess-over-library idiom cabin already uses for dependency
// cloning.
type commitInfo struct {
	hash      string
	shortHash string
	date      string
}

// gitInfo reads HEAD's commit metadata for root, returning an error
// if root isn't inside a git repository.
func gitInfo(root string) (commitInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := process.New("git", "log", "-1", "--format=%H %h %cs")
	cmd.Cwd = root
	out, err := cmd.Output(ctx)
	if err != nil || !out.Status.Success() {
		return commitInfo{}, &noGitRepoError{}
	}
	fields := strings.Fields(string(out.Stdout))
	if len(fields) != 3 {
		return commitInfo{}, &noGitRepoError{}
	}
	return commitInfo{hash: fields[0], shortHash: fields[1], date: fields[2]}, nil
}

type noGitRepoError struct{}

func (*noGitRepoError) Error() string { return "not a git repository" }
