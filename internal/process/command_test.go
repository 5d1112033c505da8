package process

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputSuccess(t *testing.T) {
	cmd := New("echo", "hello")
	out, err := cmd.Output(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Status.Success())
	assert.Equal(t, "hello\n", string(out.Stdout))
}

func TestOutputNonZeroExit(t *testing.T) {
	cmd := New("sh", "-c", "exit 3")
	out, err := cmd.Output(context.Background())
	require.NoError(t, err)
	assert.False(t, out.Status.Success())
	code, ok := out.Status.ExitCode()
	assert.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestSpawnAndWaitWithOutput(t *testing.T) {
	cmd := &Command{Program: "sh", Args: []string{"-c", "echo out; echo err >&2"}, Stdout: Piped, Stderr: Piped}
	child, err := cmd.Spawn(context.Background())
	require.NoError(t, err)
	out, err := child.WaitWithOutput()
	require.NoError(t, err)
	assert.Equal(t, "out\n", string(out.Stdout))
	assert.Equal(t, "err\n", string(out.Stderr))
}

func TestRetryOutputSucceedsEventually(t *testing.T) {
	attempt := 0
	out, err := RetryOutput(context.Background(), 3, func() *Command {
		attempt++
		if attempt < 2 {
			return New("sh", "-c", "exit 1")
		}
		return New("sh", "-c", "exit 0")
	})
	require.NoError(t, err)
	assert.True(t, out.Status.Success())
	assert.Equal(t, 2, attempt)
}

func TestRetryOutputExhausted(t *testing.T) {
	out, err := RetryOutput(context.Background(), 2, func() *Command {
		return New("sh", "-c", "exit 1")
	})
	require.NoError(t, err)
	assert.False(t, out.Status.Success())
}
