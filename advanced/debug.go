package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/curvesep/dbg"
)

// Every edge in the arena, including detached ones.
func (k *ConnectivityKernel) String() string {
	parts := make([]string, 0, len(k.edges))
	for i, e := range k.edges {
		id := EdgeID(i)
		if e.Removed {
			parts = append(parts, fmt.Sprintf("Edge %s (removed)", aurora.Red(dbg.Name(id)).String()))
			continue
		}
		parts = append(parts, fmt.Sprintf("Edge %s { v%d, ⬅ %s, ➡ %s }",
			aurora.Green(dbg.Name(id)).String(),
			e.Vertex,
			dbg.Name(e.Prev),
			dbg.Name(e.Next),
		))
	}
	return strings.Join(parts, "\n")
}

func (poly *Polygon) String() string {
	parts := make([]string, 0, poly.n)
	for p := range poly.Points() {
		parts = append(parts, fmt.Sprintf("%s:v%d", dbg.Name(p), poly.vertices[p]))
	}
	return fmt.Sprintf("Polygon [%s]", strings.Join(parts, " ➡ "))
}

// A one-line picture of a loop, with control points highlighted.
func DescribeLoop[C comparable](b Boundary[C], start C, vertices VertexStore) string {
	n := b.LoopLength(start)
	parts := make([]string, 0, n)
	it := start
	for i := 0; i < n; i++ {
		data := vertices.PointData(b.Vertex(it))
		name := fmt.Sprintf("%s(%g, %g)", dbg.Name(it), data.Position.X, data.Position.Y)
		if data.Type == Control {
			name = aurora.Cyan(name).String()
		}
		parts = append(parts, name)
		it = b.Next(it)
	}
	return strings.Join(parts, " ➡ ")
}
