package process

import (
	"context"
	"time"
)

// RetryOutput runs build with exponential backoff (1s, 2s, 4s) between
// attempts, retrying up to attempts times after the first run when the
// command exits non-zero. Used for network-flaky subprocesses like
// `git clone` against a remote that hiccuped (spec.md §4.3).
func RetryOutput(ctx context.Context, attempts int, build func() *Command) (CommandOutput, error) {
	if attempts < 1 {
		attempts = 1
	}
	var out CommandOutput
	var err error
	backoff := time.Second
	for i := 0; i <= attempts; i++ {
		out, err = build().Output(ctx)
		if err == nil && out.Status.Success() {
			return out, nil
		}
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return out, err
}
