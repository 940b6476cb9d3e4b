package advanced

// Receives every curve found by the separator.
type BezierSink interface {
	WriteBezier(curve QuadraticBezier)
}

// Collects curves in the order they were found.
type BezierList []QuadraticBezier

func (list *BezierList) WriteBezier(curve QuadraticBezier) {
	*list = append(*list, curve)
}

// An index into the vertices of a geometry.
type Index uint32

// Receives flattened geometry. Indices are local to the geometry started by the
// last BeginGeometry call: the first vertex pushed after it is 0.
type GeometrySink interface {
	BeginGeometry()
	PushVertex(position Point) Index
	PushIndices(a, b, c Index)
}

// Vertex and index buffers ready to upload to a renderer. Several geometries
// can be written into the same buffers; their local indices are rebased onto
// the shared vertex buffer.
type VertexBuffers struct {
	Vertices []Point
	Indices  []Index
	base     Index
}

func (buffers *VertexBuffers) BeginGeometry() {
	buffers.base = Index(len(buffers.Vertices))
}

func (buffers *VertexBuffers) PushVertex(position Point) Index {
	buffers.Vertices = append(buffers.Vertices, position)
	return Index(len(buffers.Vertices)-1) - buffers.base
}

func (buffers *VertexBuffers) PushIndices(a, b, c Index) {
	buffers.Indices = append(buffers.Indices, buffers.base+a, buffers.base+b, buffers.base+c)
}

// Resolve the index buffer into triangles. An index that has no vertex means
// the buffers were written incorrectly.
func (buffers *VertexBuffers) Triangles() []Triangle {
	triangles := make([]Triangle, 0, len(buffers.Indices)/3)
	for i := 0; i+2 < len(buffers.Indices); i += 3 {
		var corners [3]Point
		for j := range corners {
			index := buffers.Indices[i+j]
			if int(index) >= len(buffers.Vertices) {
				fatalf(ErrMalformedLoop, "index %d out of range (%d vertices)", index, len(buffers.Vertices))
			}
			corners[j] = buffers.Vertices[index]
		}
		triangles = append(triangles, Triangle{corners[0], corners[1], corners[2]})
	}
	return triangles
}
