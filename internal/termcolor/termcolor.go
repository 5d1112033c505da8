// Package termcolor renders cabin's Cargo-style status lines: a
// right-aligned, bold action verb followed by a plain-text message,
// plus red Error:/yellow Caused by: chain rendering for failures.
// Color is gated by --color auto/always/never and NO_COLOR, with TTY
// detection via golang.org/x/term (spec.md §4.6/§4.7).
package termcolor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yssource/cabin/internal/config"
)

const (
	ansiReset      = "\x1b[0m"
	ansiBold       = "\x1b[1m"
	ansiBoldGreen  = "\x1b[1;32m"
	ansiBoldRed    = "\x1b[1;31m"
	ansiBoldYellow = "\x1b[1;33m"
)

// headingWidth is the column the action verb is right-aligned to,
// matching Cargo's twelve-character status gutter.
const headingWidth = 12

// Shell renders Cargo-style status lines and error chains to an
// output stream, honoring a resolved color mode.
type Shell struct {
	out     io.Writer
	errOut  io.Writer
	colorOn bool
}

// New builds a Shell writing stdout/stderr-shaped status lines,
// resolving whether color should be enabled for out/errOut per mode.
func New(out, errOut io.Writer, mode config.ColorMode) *Shell {
	return &Shell{out: out, errOut: errOut, colorOn: resolveColor(mode, out)}
}

// NewStdio is a convenience constructor wired to os.Stdout/os.Stderr.
func NewStdio(mode config.ColorMode) *Shell {
	return New(os.Stdout, os.Stderr, mode)
}

func resolveColor(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		f, ok := out.(*os.File)
		if !ok {
			return false
		}
		return term.IsTerminal(int(f.Fd()))
	}
}

// Status prints a right-aligned, bold-green action verb followed by
// message, e.g. "   Compiling mypkg v0.1.0".
func (s *Shell) Status(verb, message string) {
	s.statusWith(ansiBoldGreen, verb, message)
}

// Warn prints a bold-yellow "Warning:" prefixed message to stderr.
func (s *Shell) Warn(message string) {
	s.printColored(s.errOut, ansiBoldYellow, "Warning", message)
}

// Error prints a bold-red "Error:" prefixed message, followed by any
// "Caused by:" chain entries, to stderr.
func (s *Shell) Error(message string, causes ...string) {
	s.printColored(s.errOut, ansiBoldRed, "Error", message)
	if len(causes) == 0 {
		return
	}
	header := "Caused by:"
	if s.colorOn {
		header = ansiBoldYellow + header + ansiReset
	}
	fmt.Fprintln(s.errOut, "\n"+header)
	for i, c := range causes {
		fmt.Fprintf(s.errOut, "  %d: %s\n", i, c)
	}
}

func (s *Shell) statusWith(color, verb, message string) {
	padded := fmt.Sprintf("%*s", headingWidth, verb)
	if s.colorOn {
		fmt.Fprintf(s.out, "%s%s%s %s\n", color, padded, ansiReset, message)
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", padded, message)
}

func (s *Shell) printColored(w io.Writer, color, tag, message string) {
	if s.colorOn {
		fmt.Fprintf(w, "%s%s%s: %s%s%s\n", color, tag, ansiReset, ansiBold, message, ansiReset)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", tag, message)
}

// StripANSI removes ANSI escape sequences, used when color output
// must be captured as plain text (e.g. writing to a log file).
func StripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if inEscape {
			c := s[i]
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '~' {
				inEscape = false
			}
			continue
		}
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
