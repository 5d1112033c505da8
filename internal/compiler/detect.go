package compiler

import (
	"context"
	"regexp"

	"github.com/yssource/cabin/internal/cabinerr"
	"github.com/yssource/cabin/internal/config"
	"github.com/yssource/cabin/internal/process"
)

var makeDatabaseCXX = regexp.MustCompile(`(?m)^CXX\s*=\s*(.+)$`)

// Detect finds the C++ compiler to invoke: the CXX environment
// variable first, else a probe of `make`'s built-in variable database
// (spec.md §4.4). It fails with an environment error when neither
// yields a value.
func Detect(ctx context.Context, env func(string) string) (string, error) {
	if cxx := env(config.EnvCXX); cxx != "" {
		return cxx, nil
	}

	out, err := process.New("make", "--print-data-base", "--question", "-f", "/dev/null").Output(ctx)
	if err == nil {
		if m := makeDatabaseCXX.FindSubmatch(out.Stdout); m != nil {
			return string(m[1]), nil
		}
	}

	return "", cabinerr.New(cabinerr.KindEnvironment,
		"no C++ compiler found; set $CXX or install a toolchain that provides `make`'s default CXX")
}
