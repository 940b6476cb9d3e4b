package curvesep

import (
	"embed"
	"log"

	"github.com/osuushi/curvesep/internal/loopio"
)

// Fixtures are SVG documents in the fixtures/ directory, loaded by name sans
// extension. Each one holds one or more loops. If anything goes wrong, the test
// binary exits.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []loopio.Loop {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	loops, err := loopio.ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(loops) == 0 {
		log.Fatalf("No loops found in fixture %q", name)
	}
	return loops
}
