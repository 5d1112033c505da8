package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestVersionFromInfo(t *testing.T) {
	tests := []struct {
		name     string
		info     *debug.BuildInfo
		expected string
	}{
		{
			name:     "no main version returns dev placeholder",
			info:     &debug.BuildInfo{},
			expected: "0.0.0-dev",
		},
		{
			name:     "devel main version returns dev placeholder",
			info:     &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expected: "0.0.0-dev",
		},
		{
			name:     "tagged release version is passed through",
			info:     &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}},
			expected: "v1.2.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := versionFromInfo(tt.info)
			if got != tt.expected {
				t.Errorf("versionFromInfo() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestShortHashFromInfo(t *testing.T) {
	tests := []struct {
		name     string
		info     *debug.BuildInfo
		expected string
	}{
		{
			name:     "no vcs info returns unknown",
			info:     &debug.BuildInfo{},
			expected: "unknown",
		},
		{
			name: "revision truncated to 9 characters",
			info: &debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123def456789"},
				},
			},
			expected: "abc123def",
		},
		{
			name: "short revision left as-is",
			info: &debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
				},
			},
			expected: "abc123",
		},
		{
			name: "empty revision returns unknown",
			info: &debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: ""},
				},
			},
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shortHashFromInfo(tt.info)
			if got != tt.expected {
				t.Errorf("shortHashFromInfo() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuildDateFromInfo(t *testing.T) {
	tests := []struct {
		name     string
		info     *debug.BuildInfo
		expected string
	}{
		{
			name:     "no vcs time returns unknown",
			info:     &debug.BuildInfo{},
			expected: "unknown",
		},
		{
			name: "vcs time formatted as YYYY-MM-DD",
			info: &debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.time", Value: "2025-01-15T12:00:00Z"},
				},
			},
			expected: "2025-01-15",
		},
		{
			name: "unparseable vcs time returns unknown",
			info: &debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.time", Value: "not-a-time"},
				},
			},
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildDateFromInfo(tt.info)
			if got != tt.expected {
				t.Errorf("buildDateFromInfo() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLongVersionFromInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123def456789"},
			{Key: "vcs.time", Value: "2025-01-15T12:00:00Z"},
		},
	}
	got := longVersionFromInfo(info)
	want := "cabin v1.2.3 (abc123def 2025-01-15)"
	if got != want {
		t.Errorf("longVersionFromInfo() = %q, want %q", got, want)
	}
}

func TestVcsSettings(t *testing.T) {
	info := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123def456"},
			{Key: "vcs.time", Value: "2025-01-15T12:00:00Z"},
		},
	}
	rev, tm := vcsSettings(info)
	if rev != "abc123def456" {
		t.Errorf("vcsSettings() revision = %q, want %q", rev, "abc123def456")
	}
	if tm.Format("2006-01-02") != "2025-01-15" {
		t.Errorf("vcsSettings() time = %v, want date 2025-01-15", tm)
	}
}

// TestVersion_Integration exercises the real ReadBuildInfo() path; under
// `go test` this succeeds with the test binary's own build info.
func TestVersion_Integration(t *testing.T) {
	v := Version()
	if v == "" {
		t.Error("Version() returned empty string")
	}
	if LongVersion() == "" {
		t.Error("LongVersion() returned empty string")
	}
}
