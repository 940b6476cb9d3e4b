// Package render draws separation results, for inspecting what the separator
// and the flattener did to a shape.
package render

import (
	"github.com/jbeda/geom"
	"github.com/osuushi/curvesep/advanced"
)

// One separated loop.
type Item struct {
	// The polygon left after separation.
	Outline advanced.Outline
	// The curves pulled out of the loop.
	Curves advanced.BezierList
	// The flattened curves.
	Triangles []advanced.Triangle
}

func coord(p advanced.Point) geom.Coord {
	return geom.Coord{X: p.X, Y: p.Y}
}

// Bounding box of everything in the items, control points included. The zero
// rect if there is nothing to draw.
func Bounds(items []Item) geom.Rect {
	var r geom.Rect
	first := true
	add := func(p advanced.Point) {
		if first {
			r = geom.Rect{Min: coord(p), Max: coord(p)}
			first = false
			return
		}
		r.ExpandToContainCoord(coord(p))
	}
	for _, item := range items {
		for _, p := range item.Outline {
			add(p)
		}
		for _, curve := range item.Curves {
			add(curve.From)
			add(curve.Ctrl)
			add(curve.To)
		}
		for _, tri := range item.Triangles {
			add(tri.A)
			add(tri.B)
			add(tri.C)
		}
	}
	return r
}

// Grow the rect by amount on every side
func pad(r geom.Rect, amount float64) geom.Rect {
	r.Min.X -= amount
	r.Min.Y -= amount
	r.Max.X += amount
	r.Max.Y += amount
	return r
}
