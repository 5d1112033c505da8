package termcolor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yssource/cabin/internal/config"
)

func TestStatusNoColor(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut, config.ColorNever)
	s.Status("Compiling", "mypkg v0.1.0")
	assert.Equal(t, "   Compiling mypkg v0.1.0\n", out.String())
}

func TestStatusAlwaysColor(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut, config.ColorAlways)
	s.Status("Finished", "dev [unoptimized] target(s)")
	assert.Contains(t, out.String(), ansiBoldGreen)
	assert.Contains(t, out.String(), "Finished")
}

func TestErrorWithCauses(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut, config.ColorNever)
	s.Error("failed to build mypkg", "missing header foo.h", "file not found")
	got := errOut.String()
	assert.Contains(t, got, "Error: failed to build mypkg")
	assert.Contains(t, got, "Caused by:")
	assert.Contains(t, got, "0: missing header foo.h")
	assert.Contains(t, got, "1: file not found")
}

func TestStripANSI(t *testing.T) {
	got := StripANSI(ansiBoldRed + "error" + ansiReset + ": oops")
	assert.Equal(t, "error: oops", got)
}

func TestAutoColorNonTTYDisabled(t *testing.T) {
	var out, errOut bytes.Buffer
	s := New(&out, &errOut, config.ColorAuto)
	assert.False(t, s.colorOn)
}
