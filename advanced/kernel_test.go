package advanced

import (
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/curvesep/dbg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLoop(t *testing.T) {
	k := NewConnectivityKernel()
	first := k.AddLoop(10, 11, 12, 13)
	assert.Equal(t, EdgeID(0), first)
	assert.Equal(t, 4, k.EdgeCount())

	assert.Equal(t, EdgeID(1), k.Next(first))
	assert.Equal(t, EdgeID(3), k.Previous(first))
	assert.Equal(t, first, k.Next(3))
	assert.Equal(t, VertexID(12), k.Vertex(2))
	assert.Equal(t, 4, k.LoopLength(2))
	k.CheckLoop(first)

	t.Run("second loop is independent", func(t *testing.T) {
		second := k.AddLoop(20, 21, 22)
		assert.Equal(t, EdgeID(4), second)
		assert.Equal(t, 3, k.LoopLength(second))
		assert.Equal(t, 4, k.LoopLength(first))
		assert.Equal(t, second, k.Next(6))
	})

	t.Run("degenerate loop", func(t *testing.T) {
		err := catch(func() { k.AddLoop(1, 2) })
		assert.True(t, errors.Is(err, ErrMalformedLoop))
	})
}

func TestLoop(t *testing.T) {
	k := NewConnectivityKernel()
	first := k.AddLoop(0, 1, 2, 3, 4)

	assert.Equal(t, []EdgeID{2, 3, 4, 0, 1}, slices.Collect(k.Loop(2)))

	t.Run("early exit", func(t *testing.T) {
		var seen []EdgeID
		for e := range k.Loop(first) {
			seen = append(seen, e)
			if len(seen) == 2 {
				break
			}
		}
		assert.Equal(t, []EdgeID{0, 1}, seen)
	})
}

func TestConnectEdges(t *testing.T) {
	t.Run("detaches the span between the edges", func(t *testing.T) {
		k := NewConnectivityKernel()
		first := k.AddLoop(0, 1, 2, 3, 4, 5)
		k.ConnectEdges(1, 4)

		assert.Equal(t, EdgeID(4), k.Next(1))
		assert.Equal(t, EdgeID(1), k.Previous(4))
		assert.True(t, k.IsRemoved(2))
		assert.True(t, k.IsRemoved(3))
		assert.Equal(t, Edge{Vertex: 2, Next: NoEdge, Prev: NoEdge, Removed: true}, k.Edge(2))
		assert.Equal(t, 4, k.LoopLength(first))
		k.CheckLoop(first)
		assert.Equal(t, []EdgeID{0, 1, 4, 5}, slices.Collect(k.Loop(first)))
	})

	t.Run("adjacent edges are a no-op", func(t *testing.T) {
		k := NewConnectivityKernel()
		first := k.AddLoop(0, 1, 2)
		k.ConnectEdges(0, 1)
		assert.Equal(t, 3, k.LoopLength(first))
		k.CheckLoop(first)
	})

	t.Run("across the wraparound", func(t *testing.T) {
		k := NewConnectivityKernel()
		k.AddLoop(0, 1, 2, 3, 4)
		k.ConnectEdges(4, 1)
		assert.True(t, k.IsRemoved(0))
		assert.Equal(t, []EdgeID{1, 2, 3, 4}, slices.Collect(k.Loop(1)))
		k.CheckLoop(1)
	})

	t.Run("unreachable edge leaves the loops alone", func(t *testing.T) {
		k := NewConnectivityKernel()
		a := k.AddLoop(0, 1, 2)
		b := k.AddLoop(3, 4, 5)
		err := catch(func() { k.ConnectEdges(a, b) })
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedLoop))
		assert.Equal(t, 3, k.LoopLength(a))
		assert.Equal(t, 3, k.LoopLength(b))
		k.CheckLoop(a)
		k.CheckLoop(b)
	})

	t.Run("removed edges can't be used", func(t *testing.T) {
		k := NewConnectivityKernel()
		k.AddLoop(0, 1, 2, 3)
		k.ConnectEdges(0, 2)
		err := catch(func() { k.Next(1) })
		assert.True(t, errors.Is(err, ErrMalformedLoop))
		err = catch(func() { k.ConnectEdges(1, 3) })
		assert.True(t, errors.Is(err, ErrMalformedLoop))
	})
}

func TestKernelExcise(t *testing.T) {
	k := NewConnectivityKernel()
	first := k.AddLoop(0, 1, 2, 3)
	k.Excise(1)

	assert.True(t, k.IsRemoved(1))
	assert.Equal(t, EdgeID(2), k.Next(first))
	assert.Equal(t, []VertexID{0, 2, 3}, LoopVertices[EdgeID](k, first))
	k.CheckLoop(first)
}

func TestKernelMalformed(t *testing.T) {
	t.Run("loop that never returns", func(t *testing.T) {
		k := NewConnectivityKernel()
		first := k.AddLoop(0, 1, 2, 3)
		// 1 -> 2 -> 1 -> ... never comes back to 0
		k.edges[2].Next = 1

		err := catch(func() { k.LoopLength(first) })
		assert.True(t, errors.Is(err, ErrMalformedLoop), spew.Sdump(k.edges))
	})

	t.Run("asymmetric links", func(t *testing.T) {
		k := NewConnectivityKernel()
		first := k.AddLoop(0, 1, 2, 3)
		k.edges[2].Prev = 0

		err := catch(func() { k.CheckLoop(first) })
		assert.True(t, errors.Is(err, ErrMalformedLoop), spew.Sdump(k.edges))
	})

	t.Run("unknown edge", func(t *testing.T) {
		k := NewConnectivityKernel()
		k.AddLoop(0, 1, 2)
		assert.True(t, errors.Is(catch(func() { k.Vertex(3) }), ErrMalformedLoop))
		assert.True(t, errors.Is(catch(func() { k.Edge(NoEdge) }), ErrMalformedLoop))
	})
}

func TestKernelString(t *testing.T) {
	k := NewConnectivityKernel()
	k.AddLoop(0, 1, 2, 3)
	k.Excise(2)

	s := k.String()
	assert.Contains(t, s, dbg.Name(EdgeID(0)))
	assert.Contains(t, s, dbg.Name(EdgeID(2)))
	assert.Contains(t, s, "(removed)")
	assert.Contains(t, s, "v3")

	// Live and detached edges are told apart by color
	assert.Contains(t, s, aurora.Green(dbg.Name(EdgeID(0))).String())
	assert.Contains(t, s, aurora.Red(dbg.Name(EdgeID(2))).String()+" (removed)")
}
