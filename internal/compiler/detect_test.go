package compiler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPrefersCXXEnv(t *testing.T) {
	cxx, err := Detect(context.Background(), func(k string) string {
		if k == "CXX" {
			return "clang++"
		}
		return ""
	})
	require.NoError(t, err)
	assert.Equal(t, "clang++", cxx)
}
