// Package testutil provides helpers for golden-file tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
)

// Fixture is one text file from the shared corpus together with the path
// of its expected counts.
type Fixture struct {
	// Name is the file name without the .txt extension
	Name string

	// Path is the absolute path to the text file
	Path string

	// ExpectedPath is the golden JSON file for this fixture
	ExpectedPath string
}

// LoadFixtures returns every *.txt file under testdata/fixtures, sorted by
// name. Expected results live in testdata/fixtures/expected/<name>.json.
func LoadFixtures(t *testing.T) []Fixture {
	t.Helper()

	root := FixturesRoot(t)
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("Failed to read fixtures directory: %v", err)
	}

	var fixtures []Fixture
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".txt")
		fixtures = append(fixtures, Fixture{
			Name:         name,
			Path:         filepath.Join(root, entry.Name()),
			ExpectedPath: filepath.Join(root, "expected", name+".json"),
		})
	}

	sort.Slice(fixtures, func(i, j int) bool {
		return fixtures[i].Name < fixtures[j].Name
	})
	return fixtures
}

// ForEachFixture runs fn as a subtest for each corpus file.
func ForEachFixture(t *testing.T, fn func(t *testing.T, fixture Fixture)) {
	t.Helper()

	fixtures := LoadFixtures(t)
	if len(fixtures) == 0 {
		t.Skip("No fixtures available")
	}

	for _, fixture := range fixtures {
		t.Run(fixture.Name, func(t *testing.T) {
			fn(t, fixture)
		})
	}
}

// FixturesRoot returns the absolute path to testdata/fixtures/.
func FixturesRoot(t *testing.T) string {
	t.Helper()

	// Get the directory of this source file
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get caller information")
	}

	// Navigate from internal/testutil to project root
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	fixturesRoot := filepath.Join(projectRoot, "testdata", "fixtures")

	if _, err := os.Stat(fixturesRoot); os.IsNotExist(err) {
		t.Fatalf("Fixtures root not found: %s", fixturesRoot)
	}

	return fixturesRoot
}
