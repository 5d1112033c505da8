package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewCLIHandler returns a slog.Handler tuned for cabin's CLI: compact,
// single-line records to stderr, with a timestamp prefix added only
// at DEBUG level.
func NewCLIHandler(level slog.Level) slog.Handler {
	return &cliHandler{level: level, out: os.Stderr}
}

type cliHandler struct {
	level slog.Level
	out   io.Writer
	attrs []slog.Attr
}

func (h *cliHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *cliHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	if h.level <= slog.LevelDebug {
		fmt.Fprintf(&b, "%s ", r.Time.Format("15:04:05.000"))
	}
	fmt.Fprintf(&b, "%s: %s", levelTag(r.Level), r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})
	b.WriteByte('\n')
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *cliHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &cliHandler{level: h.level, out: h.out, attrs: merged}
}

func (h *cliHandler) WithGroup(_ string) slog.Handler {
	return h
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "error"
	case l >= slog.LevelWarn:
		return "warning"
	case l >= slog.LevelInfo:
		return "info"
	default:
		return "debug"
	}
}
