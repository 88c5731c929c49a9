package stats

import (
	"testing"

	"wordcounter/internal/testutil"
)

// TestGoldenCorpus counts every corpus file and compares against the
// recorded results.
func TestGoldenCorpus(t *testing.T) {
	engine := NewEngine(nil)

	testutil.ForEachFixture(t, func(t *testing.T, fixture testutil.Fixture) {
		got, err := engine.Count(fixture.Path)
		if err != nil {
			t.Fatalf("Count(%s) error = %v", fixture.Name, err)
		}
		testutil.CompareGolden(t, fixture.ExpectedPath, got)
	})
}
