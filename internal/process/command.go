// Package process wraps os/exec with cabin's typed Command/Child model
// (spec.md §4.3): stdio modes, a POSIX-flavored ExitStatus, and a
// retrying output-capturing helper used by dependency resolution.
package process

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Stdio selects how a Command's stdout/stderr are handled.
type Stdio int

const (
	// Inherit connects the child directly to the parent's stream.
	Inherit Stdio = iota
	// Null discards all output.
	Null
	// Piped captures output for the caller to read.
	Piped
)

// Command describes a subprocess invocation before it is spawned.
type Command struct {
	Program string
	Args    []string
	Cwd     string
	Stdout  Stdio
	Stderr  Stdio
	Env     []string // additional environment variables, appended to the parent's
}

// New returns a Command with Inherit stdio, the common case for
// delegating to `make` or a formatter/linter where output should
// stream directly to the user.
func New(program string, args ...string) *Command {
	return &Command{Program: program, Args: args, Stdout: Inherit, Stderr: Inherit}
}

// Child is a spawned, not-yet-reaped subprocess.
type Child struct {
	cmd            *exec.Cmd
	stdout, stderr *bytes.Buffer // set for Piped streams
}

// Spawn starts the command. The returned Child must be reaped with
// Wait or WaitWithOutput on every code path.
func (c *Command) Spawn(ctx context.Context) (*Child, error) {
	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	cmd.Dir = c.Cwd
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdoutBuf, stderrBuf *bytes.Buffer
	switch c.Stdout {
	case Null:
		cmd.Stdout = nil
	case Piped:
		stdoutBuf = &bytes.Buffer{}
		cmd.Stdout = stdoutBuf
	default:
		cmd.Stdout = os.Stdout
	}
	switch c.Stderr {
	case Null:
		cmd.Stderr = nil
	case Piped:
		stderrBuf = &bytes.Buffer{}
		cmd.Stderr = stderrBuf
	default:
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", c.Program, err)
	}
	return &Child{cmd: cmd, stdout: stdoutBuf, stderr: stderrBuf}, nil
}

// Wait reaps the child without capturing output.
func (ch *Child) Wait() (ExitStatus, error) {
	err := ch.cmd.Wait()
	return statusFromError(ch.cmd, err), nil
}

// CommandOutput is the captured result of a piped invocation.
type CommandOutput struct {
	Status ExitStatus
	Stdout []byte
	Stderr []byte
}

// WaitWithOutput reaps the child, returning anything written to its
// piped stdout/stderr. The command must have been spawned with
// Stdout/Stderr set to Piped for output to be captured; otherwise the
// corresponding field is empty.
func (ch *Child) WaitWithOutput() (CommandOutput, error) {
	err := ch.cmd.Wait()
	out := CommandOutput{Status: statusFromError(ch.cmd, err)}
	if ch.stdout != nil {
		out.Stdout = ch.stdout.Bytes()
	}
	if ch.stderr != nil {
		out.Stderr = ch.stderr.Bytes()
	}
	return out, nil
}

// Output runs the command to completion, capturing stdout/stderr
// regardless of the configured Stdio (spec.md's `Command.output`).
func (c *Command) Output(ctx context.Context) (CommandOutput, error) {
	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	cmd.Dir = c.Cwd
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err := cmd.Run()
	return CommandOutput{
		Status: statusFromError(cmd, err),
		Stdout: stdoutBuf.Bytes(),
		Stderr: stderrBuf.Bytes(),
	}, nil
}

// ExitStatus mirrors POSIX wait(2) semantics (spec.md §4.3).
type ExitStatus struct {
	exited    bool
	code      int
	signal    syscall.Signal
	signaled  bool
	stopped   bool
	coreDump  bool
}

func statusFromError(cmd *exec.Cmd, err error) ExitStatus {
	if err == nil {
		return ExitStatus{exited: true, code: 0}
	}
	var exitErr *exec.ExitError
	if !asExitError(err, &exitErr) {
		// A non-ExitError failure (e.g. the binary couldn't be found
		// or exec'd) has no meaningful wait status; report it as a
		// non-zero, non-signaled exit so callers can still branch on
		// Success() without a type assertion.
		return ExitStatus{exited: true, code: -1}
	}
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		return ExitStatus{exited: true, code: exitErr.ExitCode()}
	}
	switch {
	case ws.Exited():
		return ExitStatus{exited: true, code: ws.ExitStatus()}
	case ws.Signaled():
		return ExitStatus{signaled: true, signal: ws.Signal(), coreDump: ws.CoreDump()}
	case ws.Stopped():
		return ExitStatus{stopped: true, signal: ws.StopSignal()}
	default:
		return ExitStatus{exited: true, code: exitErr.ExitCode()}
	}
}

func asExitError(err error, target **exec.ExitError) bool {
	if ee, ok := err.(*exec.ExitError); ok {
		*target = ee
		return true
	}
	return false
}

func (s ExitStatus) ExitedNormally() bool { return s.exited }
func (s ExitStatus) KilledBySignal() bool { return s.signaled }
func (s ExitStatus) StoppedBySignal() bool { return s.stopped }
func (s ExitStatus) CoreDumped() bool     { return s.coreDump }
func (s ExitStatus) Success() bool        { return s.exited && s.code == 0 }

// ExitCode returns the exit code and true if the process exited
// normally (as opposed to being killed/stopped by a signal).
func (s ExitStatus) ExitCode() (int, bool) {
	if !s.exited {
		return 0, false
	}
	return s.code, true
}

// TermSignal returns the terminating signal and true if the process
// was killed by one.
func (s ExitStatus) TermSignal() (syscall.Signal, bool) {
	if !s.signaled {
		return 0, false
	}
	return s.signal, true
}

// StopSignal returns the stopping signal and true if the process was
// stopped (ptrace-style) by one.
func (s ExitStatus) StopSignal() (syscall.Signal, bool) {
	if !s.stopped {
		return 0, false
	}
	return s.signal, true
}

func (s ExitStatus) String() string {
	switch {
	case s.signaled:
		if s.coreDump {
			return fmt.Sprintf("killed by signal %d (core dumped)", s.signal)
		}
		return fmt.Sprintf("killed by signal %d", s.signal)
	case s.stopped:
		return fmt.Sprintf("stopped by signal %d", s.signal)
	default:
		return fmt.Sprintf("exited with code %d", s.code)
	}
}
