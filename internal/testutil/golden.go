package testutil

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// updateGolden controls whether golden files should be updated.
// Use: go test ./... -run Golden -update
var updateGolden = flag.Bool("update", false, "update golden files")

// MarshalGolden renders v the way golden files store it: indented JSON with
// a trailing newline.
func MarshalGolden(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal golden data: %v", err)
	}
	return append(data, '\n')
}

// CompareGolden compares got against the golden file, failing with a diff on
// mismatch. If -update is set, the golden file is rewritten instead.
func CompareGolden(t *testing.T, goldenPath string, got any) {
	t.Helper()

	rendered := MarshalGolden(t, got)

	if *updateGolden {
		UpdateGolden(t, goldenPath, rendered)
		t.Logf("Updated golden: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file missing: %s\n\nGot:\n%s\n\nRun with -update to create:\n  go test ./... -run %s -update",
				goldenPath, string(rendered), t.Name())
		}
		t.Fatalf("Failed to read golden file: %v", err)
	}

	if !bytes.Equal(rendered, expected) {
		diff := lineDiff(string(expected), string(rendered), goldenPath)
		t.Fatalf("Golden mismatch:\n%s\n\nRun with -update to refresh:\n  go test ./... -run %s -update",
			diff, t.Name())
	}
}

// UpdateGolden writes data to the golden file, creating parent directories.
func UpdateGolden(t *testing.T, goldenPath string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(goldenPath), 0o755); err != nil {
		t.Fatalf("Failed to create golden directory: %v", err)
	}

	if err := os.WriteFile(goldenPath, data, 0o644); err != nil {
		t.Fatalf("Failed to write golden file: %v", err)
	}
}

// lineDiff reports the difference between two renderings line by line.
func lineDiff(expected, got, path string) string {
	diff := cmp.Diff(strings.Split(expected, "\n"), strings.Split(got, "\n"))
	return fmt.Sprintf("%s (-expected +got):\n%s", path, diff)
}
