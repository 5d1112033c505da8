package search

import (
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
)

func TestPackageNameFromFragment(t *testing.T) {
	fragment := "[package]\nname = \"fizzbuzz\"\nversion = \"0.1.0\"\n"
	matches := []*github.TextMatch{
		{Fragment: github.String(fragment)},
	}
	assert.Equal(t, "fizzbuzz", packageNameFromFragment(matches))
}

func TestPackageNameFromFragmentNoMatch(t *testing.T) {
	matches := []*github.TextMatch{
		{Fragment: github.String("[dependencies]\nfmt = { git = \"...\" }\n")},
	}
	assert.Equal(t, "", packageNameFromFragment(matches))
}
