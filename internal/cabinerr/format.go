package cabinerr

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorContext carries optional extra context used to tailor
// suggestions, e.g. the dependency name a resolver error concerns.
type ErrorContext struct {
	DepName string
}

// Format returns a formatted error message with possible causes and
// suggestions appended, mirroring the teacher's errmsg.Format shape.
// Pass nil for ctx when no extra context is available.
func Format(err error, ctx *ErrorContext) string {
	if err == nil {
		return ""
	}
	msg := err.Error()

	var cerr *Error
	if errors.As(err, &cerr) {
		switch cerr.Kind {
		case KindEnvironment:
			return formatEnvironmentError(msg, ctx)
		case KindDependency:
			return formatDependencyError(msg, ctx)
		case KindBuildGraph:
			return msg // these are precise and self-explanatory; no padding
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return formatNetworkError(msg, ctx)
	}
	if isNetworkError(msg) {
		return formatNetworkError(msg, ctx)
	}
	if isNotFoundError(msg) {
		return formatNotFoundError(msg, ctx)
	}
	if isPermissionError(msg) {
		return formatPermissionError(msg, ctx)
	}
	return msg
}

func formatEnvironmentError(msg string, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\n\nPossible causes:\n")
	sb.WriteString("  - The required tool is not installed\n")
	sb.WriteString("  - The tool is installed but not on PATH\n")
	sb.WriteString("\nSuggestions:\n")
	if strings.Contains(msg, "pkg-config") {
		sb.WriteString("  - Install pkg-config via your system package manager\n")
	} else if strings.Contains(msg, "compiler") {
		sb.WriteString("  - Install a C++ compiler (g++ or clang++)\n")
		sb.WriteString("  - Or set the CXX environment variable to its path\n")
	} else {
		sb.WriteString("  - Install the missing tool via your system package manager\n")
	}
	return sb.String()
}

func formatDependencyError(msg string, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\n\nPossible causes:\n")
	sb.WriteString("  - The dependency's git URL, path, or pkg-config name is wrong\n")
	sb.WriteString("  - The requested rev/tag/branch does not exist\n")
	sb.WriteString("\nSuggestions:\n")
	if ctx != nil && ctx.DepName != "" {
		sb.WriteString(fmt.Sprintf("  - Check the [dependencies] entry for %q in cabin.toml\n", ctx.DepName))
	} else {
		sb.WriteString("  - Check the dependency's entry in cabin.toml\n")
	}
	return sb.String()
}

func formatNetworkError(msg string, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\n\nPossible causes:\n")
	sb.WriteString("  - Network connectivity issue\n")
	sb.WriteString("  - Remote host temporarily unavailable\n")
	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - Check your internet connection\n")
	sb.WriteString("  - Try again in a few minutes\n")
	return sb.String()
}

func formatNotFoundError(msg string, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\n\nSuggestions:\n")
	sb.WriteString("  - Double-check the path or name for typos\n")
	return sb.String()
}

func formatPermissionError(msg string, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\n\nSuggestions:\n")
	sb.WriteString("  - Check file and directory permissions\n")
	return sb.String()
}

func isNetworkError(msg string) bool {
	for _, s := range []string{"connection refused", "no such host", "network is unreachable", "timeout"} {
		if strings.Contains(strings.ToLower(msg), s) {
			return true
		}
	}
	return false
}

func isNotFoundError(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "not found") || strings.Contains(m, "no such file")
}

func isPermissionError(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "permission denied") || strings.Contains(m, "access is denied")
}
