package advanced

import "iter"

type EdgeID int

// Stands in for a missing link. Detached edges point here in both directions.
const NoEdge EdgeID = -1

// A directed edge of a boundary loop. It originates at Vertex and ends at the
// vertex of Next.
type Edge struct {
	Vertex     VertexID
	Next, Prev EdgeID
	Removed    bool
}

// An arena of edges addressed by stable integer ids. Edges are never freed or
// moved. Detaching an edge only flags it, so every id handed out stays valid
// for the life of the kernel, and excising a span is a matter of updating two
// links.
type ConnectivityKernel struct {
	edges []Edge
}

func NewConnectivityKernel() *ConnectivityKernel {
	return &ConnectivityKernel{}
}

// Add a closed loop visiting the vertices in order, and return the edge
// leaving the first vertex.
func (k *ConnectivityKernel) AddLoop(vertices ...VertexID) EdgeID {
	if len(vertices) < 3 {
		fatalf(ErrMalformedLoop, "loop needs at least 3 vertices, got %d", len(vertices))
	}
	first := EdgeID(len(k.edges))
	n := len(vertices)
	for i, v := range vertices {
		k.edges = append(k.edges, Edge{
			Vertex: v,
			Next:   first + EdgeID(CircularIndex(i+1, n)),
			Prev:   first + EdgeID(CircularIndex(i-1, n)),
		})
	}
	return first
}

func (k *ConnectivityKernel) EdgeCount() int {
	return len(k.edges)
}

// A copy of the edge record, including detached edges.
func (k *ConnectivityKernel) Edge(e EdgeID) Edge {
	if e < 0 || int(e) >= len(k.edges) {
		fatalf(ErrMalformedLoop, "unknown edge %d", e)
	}
	return k.edges[e]
}

func (k *ConnectivityKernel) IsRemoved(e EdgeID) bool {
	return k.Edge(e).Removed
}

// Access to a live edge. Anything else means the caller is holding a stale id
// or the links are broken.
func (k *ConnectivityKernel) edge(e EdgeID) *Edge {
	if e < 0 || int(e) >= len(k.edges) {
		fatalf(ErrMalformedLoop, "unknown edge %d", e)
	}
	if k.edges[e].Removed {
		fatalf(ErrMalformedLoop, "edge %d has been removed", e)
	}
	return &k.edges[e]
}

func (k *ConnectivityKernel) Next(e EdgeID) EdgeID {
	return k.edge(e).Next
}

func (k *ConnectivityKernel) Previous(e EdgeID) EdgeID {
	return k.edge(e).Prev
}

func (k *ConnectivityKernel) Vertex(e EdgeID) VertexID {
	return k.edge(e).Vertex
}

// Make b follow a directly. Every edge strictly between them (following next
// links from a) is detached from the loop.
func (k *ConnectivityKernel) ConnectEdges(a, b EdgeID) {
	ea := k.edge(a)
	eb := k.edge(b)

	// Make sure b is actually ahead of a before touching any links, so a bad
	// call can't leave a half detached span behind.
	span := 0
	for it := ea.Next; it != b; it = k.edge(it).Next {
		if it == a || span > len(k.edges) {
			fatalf(ErrMalformedLoop, "edge %d is not reachable from edge %d", b, a)
		}
		span++
	}

	it := ea.Next
	for i := 0; i < span; i++ {
		e := k.edge(it)
		next := e.Next
		e.Next, e.Prev, e.Removed = NoEdge, NoEdge, true
		it = next
	}
	ea.Next = b
	eb.Prev = a
}

// Remove e from its loop. The edge before e now ends where e did.
func (k *ConnectivityKernel) Excise(e EdgeID) {
	k.ConnectEdges(k.Previous(e), k.Next(e))
}

// Number of edges in the loop containing e. A loop that doesn't close within
// the size of the arena is malformed.
func (k *ConnectivityKernel) LoopLength(e EdgeID) int {
	n := 1
	for it := k.Next(e); it != e; it = k.Next(it) {
		n++
		if n > len(k.edges) {
			fatalf(ErrMalformedLoop, "loop from edge %d does not close", e)
		}
	}
	return n
}

// Iterate the loop containing e, starting with e.
func (k *ConnectivityKernel) Loop(e EdgeID) iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		n := k.LoopLength(e)
		it := e
		for i := 0; i < n; i++ {
			if !yield(it) {
				return
			}
			it = k.Next(it)
		}
	}
}

// Check the loop containing e for self-consistency: every link is mirrored by
// the opposite link, and no removed edge is reachable.
func (k *ConnectivityKernel) CheckLoop(e EdgeID) {
	for it := range k.Loop(e) {
		next := k.Next(it)
		if k.Previous(next) != it {
			fatalf(ErrMalformedLoop, "edge %d links to %d, which links back to %d", it, next, k.Previous(next))
		}
	}
}
