package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCloseTypo(t *testing.T) {
	got := Suggest("buld", []string{"build", "test", "run", "clean"})
	assert.Equal(t, "build", got)
}

func TestSuggestNoCandidateWithinThreshold(t *testing.T) {
	got := Suggest("xyz", []string{"build", "test", "run"})
	assert.Equal(t, "", got)
}

func TestSuggestPicksClosest(t *testing.T) {
	got := Suggest("tst", []string{"test", "rust", "list"})
	assert.Equal(t, "test", got)
}
