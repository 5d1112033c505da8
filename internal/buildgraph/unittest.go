package buildgraph

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/yssource/cabin/internal/process"
)

// IsCandidateTest does the cheap textual pre-filter: a source with no
// literal "CABIN_TEST" occurrence can never be a unit test, so the
// expensive dual-preprocess check (isConfirmedTest) is skipped for it
// (spec.md §4.5 "Unit-test discovery").
func IsCandidateTest(src string) (bool, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return false, err
	}
	return bytes.Contains(data, []byte("CABIN_TEST")), nil
}

// isConfirmedTest preprocesses src twice, with and without
// -DCABIN_TEST; a byte-difference between the two outputs confirms
// the macro is semantically meaningful (conditionally compiles
// different code) rather than appearing only in a comment or string
// literal.
func isConfirmedTest(ctx context.Context, cxx string, cflagTokens []string, cwd, src string) (bool, error) {
	withoutOut, err := preprocess(ctx, cxx, cflagTokens, cwd, src, false)
	if err != nil {
		return false, err
	}
	withOut, err := preprocess(ctx, cxx, cflagTokens, cwd, src, true)
	if err != nil {
		return false, err
	}
	return !bytes.Equal(withoutOut, withOut), nil
}

func preprocess(ctx context.Context, cxx string, cflagTokens []string, cwd, src string, defineTest bool) ([]byte, error) {
	args := append([]string{}, cflagTokens...)
	if defineTest {
		args = append(args, "-DCABIN_TEST")
	}
	args = append(args, "-E", src)

	cmd := process.New(cxx, args...)
	cmd.Cwd = cwd
	out, err := cmd.Output(ctx)
	if err != nil {
		return nil, err
	}
	return normalizePreprocessed(out.Stdout), nil
}

// normalizePreprocessed strips line-marker directives (`# 1 "file"`)
// that every preprocessor invocation emits with different line
// numbers even when the meaningful content is identical, which would
// otherwise make every pair of runs look different.
func normalizePreprocessed(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return []byte(strings.Join(kept, "\n"))
}
