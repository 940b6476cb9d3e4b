package advanced

// The positions of a loop, in order. This is what is left for the rest of the
// tessellation pipeline once the curves are separated.
type Outline []Point

func KernelOutline(kernel *ConnectivityKernel, e EdgeID, vertices VertexStore) Outline {
	return LoopOutline[EdgeID](kernel, e, vertices)
}

func PolygonOutline(polygon *Polygon, vertices VertexStore) Outline {
	return LoopOutline[PointID](polygon, polygon.First(), vertices)
}

// Shoelace area. Positive for counterclockwise outlines.
func (outline Outline) SignedArea() float64 {
	var area float64
	for i, p := range outline {
		next := outline[CircularIndex(i+1, len(outline))]
		area += p.Cross(next)
	}
	return area / 2
}

func (outline Outline) IsCCW() bool {
	return outline.SignedArea() > 0
}

// Even-odd point-in-polygon. Mostly useful for checking separation results.
func (outline Outline) ContainsPointByEvenOdd(p Point) bool {
	return outline.CrossingCount(p)%2 == 1
}

// Number of outline edges crossed by a ray from p in the +X direction.
func (outline Outline) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range outline {
		nextVertex := outline[CircularIndex(i+1, len(outline))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		// X of the edge at the ray's height
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (outline Outline) Reverse() Outline {
	reversed := make(Outline, 0, len(outline))
	for i := len(outline) - 1; i >= 0; i-- {
		reversed = append(reversed, outline[i])
	}
	return reversed
}
