package advanced

import "math"

const Tolerance = 1e-9

// Equality for floats is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// The point a fraction t of the way from p to o.
func (p Point) Lerp(o Point, t float64) Point {
	return p.Add(o.Sub(p).Mul(t))
}

// The z component of the 3D cross product. Positive when o is counterclockwise
// from p.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

func (p Point) Equal(o Point) bool {
	return Equal(p.X, o.X) && Equal(p.Y, o.Y)
}

// Is the control point outside of the shape, relative to the chord from -> to?
//
// The loop is counterclockwise, so the inside of the shape is to the left of
// the chord. A control point to the right of it (negative cross product) bulges
// out of the shape. Collinear control points count as inside.
func IsControlOutside(from, ctrl, to Point) bool {
	return to.Sub(from).Cross(ctrl.Sub(from)) < 0
}

func (tri Triangle) SignedArea() float64 {
	return tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A)) / 2
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
