package advanced

import "log/slog"

// Evaluate the curve at t in [0, 1] by de Casteljau's construction.
func (q QuadraticBezier) Eval(t float64) Point {
	return q.From.Lerp(q.Ctrl, t).Lerp(q.Ctrl.Lerp(q.To, t), t)
}

// Sample n points at evenly spaced parameter values, including both ends. The
// ends are copied rather than evaluated, so they match the curve's endpoints
// exactly.
func (q QuadraticBezier) Sample(n int) []Point {
	if n < 2 {
		fatalf(ErrDegenerateSampleCount, "cannot sample a curve with %d points", n)
	}
	points := make([]Point, n)
	for i := range points {
		switch i {
		case 0:
			points[i] = q.From
		case n - 1:
			points[i] = q.To
		default:
			points[i] = q.Eval(float64(i) / float64(n-1))
		}
	}
	return points
}

func (q QuadraticBezier) IsControlOutside() bool {
	return IsControlOutside(q.From, q.Ctrl, q.To)
}

// Flatten one quadratic arc into a triangle fan of numPoints samples.
//
// When the control point is outside the shape, the fan is anchored at the
// first sample and covers the area between the chord and the arc:
// numPoints-2 triangles.
//
// When it is inside, the control point itself is pushed first and anchors the
// fan, which covers the area between the control point and the arc:
// numPoints-1 triangles.
//
// numPoints must be at least 2. With exactly 2 on the outside, there are no
// triangles, only the two endpoints.
func FlattenQuadratic(from, ctrl, to Point, numPoints int, out GeometrySink) {
	curve := QuadraticBezier{from, ctrl, to}
	samples := curve.Sample(numPoints)
	outside := curve.IsControlOutside()
	Logger().Debug("flatten quadratic",
		slog.Any("from", from),
		slog.Any("ctrl", ctrl),
		slog.Any("to", to),
		slog.Int("points", numPoints),
		slog.Bool("outside", outside),
	)

	out.BeginGeometry()
	last := Index(numPoints - 2)
	if !outside {
		out.PushVertex(ctrl)
		// The control point shifted every sample up by one.
		last = Index(numPoints - 1)
	}
	for _, sample := range samples {
		out.PushVertex(sample)
	}
	for i := Index(1); i <= last; i++ {
		out.PushIndices(0, i, i+1)
	}
}
