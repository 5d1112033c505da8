package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(h)

	logger.Info("resolved dependency", "package", "fmt")

	output := buf.String()
	if !strings.Contains(output, "resolved dependency") {
		t.Errorf("expected output to contain 'resolved dependency', got: %s", output)
	}
	if !strings.Contains(output, "package=fmt") {
		t.Errorf("expected output to contain 'package=fmt', got: %s", output)
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger)
		level    slog.Level
		contains string
	}{
		{
			name:     "Debug",
			logFunc:  func(l Logger) { l.Debug("cache hit for git clone") },
			level:    slog.LevelDebug,
			contains: "cache hit for git clone",
		},
		{
			name:     "Info",
			logFunc:  func(l Logger) { l.Info("compiling mypkg") },
			level:    slog.LevelInfo,
			contains: "compiling mypkg",
		},
		{
			name:     "Warn",
			logFunc:  func(l Logger) { l.Warn("dependency not found in cabin.toml") },
			level:    slog.LevelWarn,
			contains: "dependency not found in cabin.toml",
		},
		{
			name:     "Error",
			logFunc:  func(l Logger) { l.Error("make invocation failed") },
			level:    slog.LevelError,
			contains: "make invocation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			logger := New(h)

			tt.logFunc(logger)

			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got: %s", tt.contains, output)
			}
			if !strings.Contains(output, strings.ToUpper(tt.name)) {
				t.Errorf("expected output to contain level %q, got: %s", tt.name, output)
			}
		})
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(h)

	childLogger := logger.With("dependency", "fmt", "version", "9.1.0")
	childLogger.Info("cloning dependency")

	output := buf.String()
	if !strings.Contains(output, "dependency=fmt") {
		t.Errorf("expected output to contain 'dependency=fmt', got: %s", output)
	}
	if !strings.Contains(output, "version=9.1.0") {
		t.Errorf("expected output to contain 'version=9.1.0', got: %s", output)
	}
	if !strings.Contains(output, "cloning dependency") {
		t.Errorf("expected output to contain 'cloning dependency', got: %s", output)
	}
}

func TestLoggerWithChaining(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(h)

	childLogger := logger.With("dependency", "fmt").With("action", "clone")
	childLogger.Debug("starting")

	output := buf.String()
	if !strings.Contains(output, "dependency=fmt") {
		t.Errorf("expected output to contain 'dependency=fmt', got: %s", output)
	}
	if !strings.Contains(output, "action=clone") {
		t.Errorf("expected output to contain 'action=clone', got: %s", output)
	}
}

func TestNewNoop(t *testing.T) {
	logger := NewNoop()

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	child := logger.With("key", "value")
	child.Info("should not panic")
}

func TestNoopLoggerWith(t *testing.T) {
	logger := NewNoop()

	child := logger.With("key", "value")

	_, ok := child.(noopLogger)
	if !ok {
		t.Error("expected With() on noopLogger to return noopLogger")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	Default().Info("should not panic")

	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	customLogger := New(h)
	SetDefault(customLogger)

	Default().Info("custom logger message")

	output := buf.String()
	if !strings.Contains(output, "custom logger message") {
		t.Errorf("expected custom logger to be used, got: %s", output)
	}
}

func TestDefaultLoggerConcurrency(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				Default().Info("concurrent read")
			}
			done <- true
		}()
		go func() {
			for j := 0; j < 100; j++ {
				SetDefault(NewNoop())
			}
			done <- true
		}()
	}

	for i := 0; i < 20; i++ {
		<-done
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := New(h)

	logger.Debug("debug - should not appear")
	logger.Info("info - should not appear")
	logger.Warn("warn - should appear")
	logger.Error("error - should appear")

	output := buf.String()

	if strings.Contains(output, "debug - should not appear") {
		t.Error("debug message should have been filtered")
	}
	if strings.Contains(output, "info - should not appear") {
		t.Error("info message should have been filtered")
	}
	if !strings.Contains(output, "warn - should appear") {
		t.Errorf("warn message should appear, got: %s", output)
	}
	if !strings.Contains(output, "error - should appear") {
		t.Errorf("error message should appear, got: %s", output)
	}
}

func TestLoggerWithKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(h)

	logger.Info("resolved",
		"package", "fmt",
		"jobs", 4,
		"fresh", true,
		"elapsed", 1.25,
	)

	output := buf.String()
	if !strings.Contains(output, "package=fmt") {
		t.Errorf("expected 'package=fmt' in output: %s", output)
	}
	if !strings.Contains(output, "jobs=4") {
		t.Errorf("expected 'jobs=4' in output: %s", output)
	}
	if !strings.Contains(output, "fresh=true") {
		t.Errorf("expected 'fresh=true' in output: %s", output)
	}
}
