package advanced

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Shorthands for building loops in tests.
func normal(x, y float64) PointData  { return PointData{Point{x, y}, Normal} }
func control(x, y float64) PointData { return PointData{Point{x, y}, Control} }

// Run fn and convert a fatalf panic into an error.
func catch(fn func()) (err error) {
	defer func() {
		err = HandlePanicRecover(recover())
	}()
	fn()
	return nil
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, Tolerance)

// Rotate a cyclic id sequence so the smallest id comes first. Two loops are
// the same loop iff their rotated sequences are equal.
func canonicalLoop(ids []VertexID) []VertexID {
	if len(ids) == 0 {
		return ids
	}
	minIndex := 0
	for i, id := range ids {
		if id < ids[minIndex] {
			minIndex = i
		}
	}
	result := make([]VertexID, 0, len(ids))
	for i := range ids {
		result = append(result, ids[CircularIndex(minIndex+i, len(ids))])
	}
	return result
}

// Some ad hoc shapes. All of them are counterclockwise.

// A 2x2 square whose bottom edge is a curve.
func squareWithCurve(ctrl PointData) VertexList {
	return VertexList{
		normal(0, 0),
		ctrl,
		normal(2, 0),
		normal(2, 2),
		normal(0, 2),
	}
}

// A 2x2 square whose bottom and right edges are curves.
func squareWithTwoCurves(bottom, right PointData) VertexList {
	return VertexList{
		normal(0, 0),
		bottom,
		normal(2, 0),
		right,
		normal(2, 2),
		normal(0, 2),
	}
}

// A circle approximated by arcs: eight normal points on the unit circle, with a
// control point between each pair at controlRadius.
func ring(controlRadius float64) VertexList {
	var vertices VertexList
	const n = 8
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / n
		midAngle := angle + math.Pi/n
		vertices.Add(Point{math.Cos(angle), math.Sin(angle)}, Normal)
		vertices.Add(Point{controlRadius * math.Cos(midAngle), controlRadius * math.Sin(midAngle)}, Control)
	}
	return vertices
}
