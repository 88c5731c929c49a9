package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarshalGolden(t *testing.T) {
	got := string(MarshalGolden(t, map[string]int{"b": 2, "a": 1}))
	want := "{\n  \"a\": 1,\n  \"b\": 2\n}\n"
	if got != want {
		t.Errorf("MarshalGolden() = %q, want %q", got, want)
	}
}

func TestCompareGolden_Match(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.json")
	if err := os.WriteFile(path, []byte("{\n  \"n\": 1\n}\n"), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}

	CompareGolden(t, path, map[string]int{"n": 1})
}

func TestUpdateGolden_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")

	UpdateGolden(t, path, []byte("{}\n"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(data) != "{}\n" {
		t.Errorf("golden = %q", data)
	}
}

func TestLineDiff(t *testing.T) {
	diff := lineDiff("a\nb\nc\n", "a\nx\nc\n", "f.json")

	for _, want := range []string{"f.json (-expected +got)", `"b"`, `"x"`} {
		if !strings.Contains(diff, want) {
			t.Errorf("diff missing %q:\n%s", want, diff)
		}
	}
}

func TestLoadFixtures(t *testing.T) {
	fixtures := LoadFixtures(t)
	if len(fixtures) == 0 {
		t.Fatal("expected corpus fixtures under testdata/fixtures")
	}

	for i, f := range fixtures {
		if i > 0 && fixtures[i-1].Name >= f.Name {
			t.Errorf("fixtures not sorted: %q before %q", fixtures[i-1].Name, f.Name)
		}
		if _, err := os.Stat(f.Path); err != nil {
			t.Errorf("fixture %s: %v", f.Name, err)
		}
		if filepath.Base(f.ExpectedPath) != f.Name+".json" {
			t.Errorf("ExpectedPath = %s", f.ExpectedPath)
		}
	}
}
