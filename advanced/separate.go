package advanced

import (
	"context"
	"log/slog"
)

// Walk the loop containing loop and pull out every quadratic bezier curve.
//
// Each control point, together with its two neighbors, is one curve. When the
// control point lies outside the shape, the control point is removed from the
// loop, so the outline follows the chord instead. When it lies inside, the
// loop already wraps around it and is left alone. Either way, the three
// positions are written to out.
//
// Only quadratic curves are supported. A control point next to another control
// point panics with ErrUnsupportedCurveOrder. A loop that doesn't close panics
// with ErrMalformedLoop. Both are detected before anything is excised or
// written, so a failed loop is left as it was.
func SeparateBezierFaces[C comparable](b Boundary[C], loop C, vertices VertexStore, out BezierSink) {
	if Logger().Enabled(context.Background(), slog.LevelDebug) {
		Logger().Debug("separate bezier faces", slog.String("loop", DescribeLoop(b, loop, vertices)))
	}

	length := b.LoopLength(loop)
	checkCurveOrder(b, loop, length, vertices)

	start := loop
	it := start
	// Each step either advances by one element or removes the element it was
	// on and advances past it, so one lap can't take more steps than this.
	limit := length + 1
	for steps := 0; ; steps++ {
		if steps > limit {
			fatalf(ErrMalformedLoop, "walk did not return to its start after %d steps", steps)
		}

		if vertices.PointData(b.Vertex(it)).Type == Control {
			ctrl := it
			prev := b.Previous(ctrl)
			next := b.Next(ctrl)
			if separateQuadratic(b, ctrl, length, vertices, out) {
				length--
				if ctrl == start {
					// The start of the walk no longer exists. The previous point is
					// normal, so ending there instead doesn't skip a curve.
					start = prev
				}
			}
			it = next
		} else {
			it = b.Next(it)
		}

		if it == start {
			return
		}
	}
}

// Make sure every control point in the loop has normal neighbors, without
// changing anything.
func checkCurveOrder[C comparable](b Boundary[C], loop C, length int, vertices VertexStore) {
	it := loop
	prevType := vertices.PointData(b.Vertex(b.Previous(loop))).Type
	for i := 0; i < length; i++ {
		pointType := vertices.PointData(b.Vertex(it)).Type
		if pointType == Control && prevType == Control {
			fatalf(ErrUnsupportedCurveOrder, "consecutive control points at %v", it)
		}
		prevType = pointType
		it = b.Next(it)
	}
	if it != loop {
		fatalf(ErrMalformedLoop, "loop from %v does not close after %d steps", loop, length)
	}
}

// Separate the single curve whose control point is at ctrl, returning whether
// the control point was excised from the loop.
//
// A loop which is only the curve's own triangle is never excised, since that
// would leave a degenerate polygon.
func SeparateQuadratic[C comparable](b Boundary[C], ctrl C, vertices VertexStore, out BezierSink) bool {
	return separateQuadratic(b, ctrl, b.LoopLength(ctrl), vertices, out)
}

// length is the current length of ctrl's loop.
func separateQuadratic[C comparable](b Boundary[C], ctrl C, length int, vertices VertexStore, out BezierSink) bool {
	prev := b.Previous(ctrl)
	next := b.Next(ctrl)
	from := vertices.PointData(b.Vertex(prev))
	control := vertices.PointData(b.Vertex(ctrl))
	to := vertices.PointData(b.Vertex(next))

	if control.Type != Control {
		fatalf(ErrMalformedLoop, "point %v is not a control point", ctrl)
	}
	if from.Type != Normal || to.Type != Normal {
		fatalf(ErrUnsupportedCurveOrder, "control point %v has neighbors %s and %s", ctrl, from.Type, to.Type)
	}

	curve := QuadraticBezier{from.Position, control.Position, to.Position}
	outside := IsControlOutside(curve.From, curve.Ctrl, curve.To)
	excised := false
	if outside && length > 3 {
		// The control point is outside the shape, so cut its triangle out.
		b.Excise(ctrl)
		excised = true
	}
	// Otherwise the control point is inside the shape, and the loop already
	// wraps around it.

	Logger().Debug("separate quadratic",
		slog.Any("ctrl", ctrl),
		slog.Bool("outside", outside),
		slog.Bool("excised", excised),
	)
	out.WriteBezier(curve)
	return excised
}

// Separate the loop containing edgeLoop in a connectivity kernel.
func SeparateKernelLoop(kernel *ConnectivityKernel, edgeLoop EdgeID, vertices VertexStore, out BezierSink) {
	SeparateBezierFaces[EdgeID](kernel, edgeLoop, vertices, out)
}

// Separate an indexed polygon, starting from its first point.
func SeparatePolygon(polygon *Polygon, vertices VertexStore, out BezierSink) {
	SeparateBezierFaces[PointID](polygon, polygon.First(), vertices, out)
}
