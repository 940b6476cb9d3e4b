package advanced

import "iter"

// A position in a Polygon. Positions are assigned in construction order and
// stay valid until they are removed.
type PointID int

// A polygon addressed by position in its cyclic sequence. It is a doubly
// linked ring over parallel arrays, so removing a position splices it out
// without moving anything.
type Polygon struct {
	vertices []VertexID
	next     []PointID
	prev     []PointID
	removed  []bool
	first    PointID
	n        int
}

func NewPolygon(vertices ...VertexID) *Polygon {
	n := len(vertices)
	if n < 3 {
		fatalf(ErrMalformedLoop, "polygon needs at least 3 vertices, got %d", n)
	}
	poly := &Polygon{
		vertices: append([]VertexID(nil), vertices...),
		next:     make([]PointID, n),
		prev:     make([]PointID, n),
		removed:  make([]bool, n),
		n:        n,
	}
	for i := range vertices {
		poly.next[i] = PointID(CircularIndex(i+1, n))
		poly.prev[i] = PointID(CircularIndex(i-1, n))
	}
	return poly
}

func (poly *Polygon) check(p PointID) {
	if p < 0 || int(p) >= len(poly.vertices) {
		fatalf(ErrMalformedLoop, "unknown polygon point %d", p)
	}
	if poly.removed[p] {
		fatalf(ErrMalformedLoop, "polygon point %d has been removed", p)
	}
}

// Number of points still in the polygon.
func (poly *Polygon) Len() int {
	return poly.n
}

// The polygon has a single loop, so this is Len.
func (poly *Polygon) LoopLength(p PointID) int {
	poly.check(p)
	return poly.n
}

// Where iteration starts. Initially position 0. When it is removed, its
// successor takes over.
func (poly *Polygon) First() PointID {
	return poly.first
}

func (poly *Polygon) Next(p PointID) PointID {
	poly.check(p)
	return poly.next[p]
}

func (poly *Polygon) Previous(p PointID) PointID {
	poly.check(p)
	return poly.prev[p]
}

func (poly *Polygon) Vertex(p PointID) VertexID {
	poly.check(p)
	return poly.vertices[p]
}

func (poly *Polygon) NextVertex(p PointID) VertexID {
	return poly.vertices[poly.Next(p)]
}

func (poly *Polygon) PreviousVertex(p PointID) VertexID {
	return poly.vertices[poly.Previous(p)]
}

// Splice p out of the polygon. Its neighbors become adjacent.
func (poly *Polygon) RemoveVertex(p PointID) {
	poly.check(p)
	if poly.n <= 3 {
		fatalf(ErrMalformedLoop, "cannot remove point %d from a polygon of %d points", p, poly.n)
	}
	prev, next := poly.prev[p], poly.next[p]
	poly.next[prev] = next
	poly.prev[next] = prev
	poly.removed[p] = true
	poly.n--
	if poly.first == p {
		poly.first = next
	}
}

func (poly *Polygon) Excise(p PointID) {
	poly.RemoveVertex(p)
}

// Iterate the surviving positions in loop order, starting at First.
func (poly *Polygon) Points() iter.Seq[PointID] {
	return func(yield func(PointID) bool) {
		it := poly.first
		for i := 0; i < poly.n; i++ {
			if !yield(it) {
				return
			}
			it = poly.next[it]
		}
	}
}

// The surviving vertices in loop order, starting at First.
func (poly *Polygon) Vertices() []VertexID {
	return LoopVertices[PointID](poly, poly.first)
}
