package advanced

// A mutable cyclic boundary. The separator is written against this, so that
// the connectivity kernel and the indexed polygon share one walk.
//
// C is the cursor type: whatever identifies one element of the loop. Cursors
// that are not excised must stay valid across an Excise.
type Boundary[C comparable] interface {
	Next(c C) C
	Previous(c C) C
	Vertex(c C) VertexID
	// Remove c from its loop, making its neighbors adjacent.
	Excise(c C)
	// Number of elements in the loop containing c.
	LoopLength(c C) int
}

var (
	_ Boundary[EdgeID]  = (*ConnectivityKernel)(nil)
	_ Boundary[PointID] = (*Polygon)(nil)
)

// Read the positions of a loop, starting at start.
func LoopOutline[C comparable](b Boundary[C], start C, vertices VertexStore) Outline {
	n := b.LoopLength(start)
	outline := make(Outline, 0, n)
	it := start
	for i := 0; i < n; i++ {
		outline = append(outline, vertices.PointData(b.Vertex(it)).Position)
		it = b.Next(it)
	}
	return outline
}

// Read the vertex ids of a loop, starting at start.
func LoopVertices[C comparable](b Boundary[C], start C) []VertexID {
	n := b.LoopLength(start)
	ids := make([]VertexID, 0, n)
	it := start
	for i := 0; i < n; i++ {
		ids = append(ids, b.Vertex(it))
		it = b.Next(it)
	}
	return ids
}
