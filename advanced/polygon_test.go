package advanced

import (
	"slices"
	"testing"

	"github.com/osuushi/curvesep/dbg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewPolygon(t *testing.T) {
	poly := NewPolygon(10, 11, 12, 13)
	assert.Equal(t, 4, poly.Len())
	assert.Equal(t, PointID(0), poly.First())
	assert.Equal(t, PointID(1), poly.Next(0))
	assert.Equal(t, PointID(3), poly.Previous(0))
	assert.Equal(t, PointID(0), poly.Next(3))
	assert.Equal(t, VertexID(12), poly.Vertex(2))
	assert.Equal(t, VertexID(13), poly.NextVertex(2))
	assert.Equal(t, VertexID(10), poly.NextVertex(3))
	assert.Equal(t, VertexID(13), poly.PreviousVertex(0))
	assert.Equal(t, []VertexID{10, 11, 12, 13}, poly.Vertices())

	t.Run("degenerate polygon", func(t *testing.T) {
		err := catch(func() { NewPolygon(1, 2) })
		assert.True(t, errors.Is(err, ErrMalformedLoop))
	})
}

func TestRemoveVertex(t *testing.T) {
	t.Run("splices the point out", func(t *testing.T) {
		poly := NewPolygon(0, 1, 2, 3, 4)
		poly.RemoveVertex(2)
		assert.Equal(t, 4, poly.Len())
		assert.Equal(t, PointID(3), poly.Next(1))
		assert.Equal(t, PointID(1), poly.Previous(3))
		assert.Equal(t, []VertexID{0, 1, 3, 4}, poly.Vertices())
		assert.Equal(t, []PointID{0, 1, 3, 4}, slices.Collect(poly.Points()))
	})

	t.Run("removing the first point moves it", func(t *testing.T) {
		poly := NewPolygon(0, 1, 2, 3)
		poly.RemoveVertex(0)
		assert.Equal(t, PointID(1), poly.First())
		assert.Equal(t, []VertexID{1, 2, 3}, poly.Vertices())
	})

	t.Run("never below a triangle", func(t *testing.T) {
		poly := NewPolygon(0, 1, 2, 3)
		poly.RemoveVertex(1)
		err := catch(func() { poly.RemoveVertex(2) })
		assert.True(t, errors.Is(err, ErrMalformedLoop))
		assert.Equal(t, 3, poly.Len())
	})

	t.Run("stale ids", func(t *testing.T) {
		poly := NewPolygon(0, 1, 2, 3)
		poly.RemoveVertex(1)
		assert.True(t, errors.Is(catch(func() { poly.Next(1) }), ErrMalformedLoop))
		assert.True(t, errors.Is(catch(func() { poly.RemoveVertex(1) }), ErrMalformedLoop))
		assert.True(t, errors.Is(catch(func() { poly.Vertex(7) }), ErrMalformedLoop))
	})
}

func TestPolygonString(t *testing.T) {
	poly := NewPolygon(5, 6, 7, 8)
	poly.RemoveVertex(1)
	s := poly.String()
	assert.Contains(t, s, dbg.Name(PointID(0))+":v5")
	assert.Contains(t, s, dbg.Name(PointID(2))+":v7")
	assert.NotContains(t, s, ":v6")
}
