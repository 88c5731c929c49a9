package version

import (
	"strings"
	"testing"
)

// setBuildInfo overrides the link-time variables for one test.
func setBuildInfo(t *testing.T, version, commit, buildDate string) {
	t.Helper()
	origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
	})
	Version, Commit, BuildDate = version, commit, buildDate
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		want   string
	}{
		{"unknown commit", "unknown", "1.0.0"},
		{"short commit is omitted", "abc", "1.0.0"},
		{"seven chars is omitted", "1234567", "1.0.0"},
		{"long commit is abbreviated", "abc1234567890", "1.0.0 (abc1234)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuildInfo(t, "1.0.0", tt.commit, "unknown")

			if got := Info(); got != tt.want {
				t.Errorf("Info() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Full is the cobra --version template, so its exact lines are the output
// users see.
func TestFull(t *testing.T) {
	setBuildInfo(t, "1.2.3", "abcdef123456", "2024-01-15")

	got := strings.Split(Full(), "\n")
	want := []string{
		"wordcounter version 1.2.3",
		"Commit: abcdef123456",
		"Built: 2024-01-15",
	}

	if len(got) != len(want) {
		t.Fatalf("Full() has %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultVersion(t *testing.T) {
	if Version != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0 to match the discovery document", Version)
	}
}
