package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newTestHandler(level slog.Level) (*cliHandler, *bytes.Buffer) {
	var buf bytes.Buffer
	return &cliHandler{level: level, out: &buf}, &buf
}

func TestCLIHandlerEnabled(t *testing.T) {
	h, _ := newTestHandler(slog.LevelWarn)

	if h.Enabled(nil, slog.LevelDebug) {
		t.Error("debug should not be enabled at warn level")
	}
	if h.Enabled(nil, slog.LevelInfo) {
		t.Error("info should not be enabled at warn level")
	}
	if !h.Enabled(nil, slog.LevelWarn) {
		t.Error("warn should be enabled at warn level")
	}
	if !h.Enabled(nil, slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestCLIHandlerFormatsLevelTagAndMessage(t *testing.T) {
	h, buf := newTestHandler(slog.LevelInfo)

	r := slog.NewRecord(time.Time{}, slog.LevelWarn, "dependency not found in cabin.toml", 0)
	if err := h.Handle(nil, r); err != nil {
		t.Fatalf("Handle() failed: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "warning: dependency not found in cabin.toml") {
		t.Errorf("Handle() output = %q, want prefix %q", got, "warning: dependency not found in cabin.toml")
	}
}

func TestCLIHandlerOmitsTimestampAboveDebug(t *testing.T) {
	h, buf := newTestHandler(slog.LevelInfo)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "compiling mypkg", 0)
	if err := h.Handle(nil, r); err != nil {
		t.Fatalf("Handle() failed: %v", err)
	}

	got := buf.String()
	if got != "info: compiling mypkg\n" {
		t.Errorf("Handle() output = %q, want %q", got, "info: compiling mypkg\n")
	}
}

func TestCLIHandlerIncludesTimestampAtDebug(t *testing.T) {
	h, buf := newTestHandler(slog.LevelDebug)

	r := slog.NewRecord(time.Time{}, slog.LevelDebug, "cache hit", 0)
	if err := h.Handle(nil, r); err != nil {
		t.Fatalf("Handle() failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "debug: cache hit") {
		t.Errorf("Handle() output = %q, want it to contain %q", got, "debug: cache hit")
	}
	// A debug-level handler prefixes the HH:MM:SS.mmm timestamp.
	if strings.HasPrefix(got, "debug:") {
		t.Error("expected a timestamp prefix before the level tag at debug level")
	}
}

func TestCLIHandlerRecordAttrs(t *testing.T) {
	h, buf := newTestHandler(slog.LevelInfo)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "added dependency", 0)
	r.AddAttrs(slog.String("name", "fmt"), slog.Int("jobs", 4))
	if err := h.Handle(nil, r); err != nil {
		t.Fatalf("Handle() failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "name=fmt") {
		t.Errorf("Handle() output = %q, want it to contain %q", got, "name=fmt")
	}
	if !strings.Contains(got, "jobs=4") {
		t.Errorf("Handle() output = %q, want it to contain %q", got, "jobs=4")
	}
}

func TestCLIHandlerWithAttrsMergesAcrossCalls(t *testing.T) {
	h, buf := newTestHandler(slog.LevelInfo)

	withOne := h.WithAttrs([]slog.Attr{slog.String("package", "fmt")})
	withTwo := withOne.WithAttrs([]slog.Attr{slog.String("profile", "release")})

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "finished", 0)
	if err := withTwo.Handle(nil, r); err != nil {
		t.Fatalf("Handle() failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "package=fmt") {
		t.Errorf("Handle() output = %q, want it to contain %q", got, "package=fmt")
	}
	if !strings.Contains(got, "profile=release") {
		t.Errorf("Handle() output = %q, want it to contain %q", got, "profile=release")
	}
}

func TestCLIHandlerWithGroupIsANoop(t *testing.T) {
	h, _ := newTestHandler(slog.LevelInfo)
	if h.WithGroup("anything") != slog.Handler(h) {
		t.Error("WithGroup should return the same handler unchanged")
	}
}

func TestLevelTag(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, "debug"},
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warning"},
		{slog.LevelError, "error"},
	}
	for _, tt := range tests {
		if got := levelTag(tt.level); got != tt.want {
			t.Errorf("levelTag(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
