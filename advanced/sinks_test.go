package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBezierList(t *testing.T) {
	var list BezierList
	var sink BezierSink = &list
	sink.WriteBezier(QuadraticBezier{Point{0, 0}, Point{1, 1}, Point{2, 0}})
	sink.WriteBezier(QuadraticBezier{Point{2, 0}, Point{3, 1}, Point{4, 0}})
	assert.Len(t, list, 2)
	assert.Equal(t, Point{3, 1}, list[1].Ctrl)
}

func TestVertexBuffers(t *testing.T) {
	t.Run("rebases local indices", func(t *testing.T) {
		var buffers VertexBuffers
		FlattenQuadratic(Point{0, 0}, Point{1, -1}, Point{2, 0}, 3, &buffers)
		FlattenQuadratic(Point{2, 0}, Point{3, 1}, Point{4, 0}, 3, &buffers)

		// First geometry: 3 samples, one triangle. Second: control plus 3
		// samples, two triangles, all offset by 3.
		assert.Len(t, buffers.Vertices, 7)
		assert.Equal(t, []Index{0, 1, 2, 3, 4, 5, 3, 5, 6}, buffers.Indices)
		assertIndicesInRange(t, &buffers)
	})

	t.Run("push vertex returns local index", func(t *testing.T) {
		var buffers VertexBuffers
		buffers.BeginGeometry()
		assert.Equal(t, Index(0), buffers.PushVertex(Point{0, 0}))
		assert.Equal(t, Index(1), buffers.PushVertex(Point{1, 0}))
		buffers.BeginGeometry()
		assert.Equal(t, Index(0), buffers.PushVertex(Point{2, 0}))
	})

	t.Run("triangles", func(t *testing.T) {
		var buffers VertexBuffers
		FlattenQuadratic(Point{0, 0}, Point{1, 1}, Point{2, 0}, 2, &buffers)
		diff(t, []Triangle{{Point{1, 1}, Point{0, 0}, Point{2, 0}}}, buffers.Triangles(), approx)
	})

	t.Run("bad index", func(t *testing.T) {
		var buffers VertexBuffers
		buffers.BeginGeometry()
		buffers.PushVertex(Point{0, 0})
		buffers.PushIndices(0, 1, 2)
		err := catch(func() { buffers.Triangles() })
		assert.True(t, errors.Is(err, ErrMalformedLoop))
	})
}
