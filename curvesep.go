// Separation and flattening of quadratic bezier curves embedded in polygon
// outlines, as the first stage of a path tessellator.
//
// A boundary loop is a polygon whose points are either normal vertices or
// quadratic control points. Separation walks the loop, pulls out every curve,
// and removes the control points that bulge out of the shape, leaving a plain
// polygon for the rest of the pipeline. Flattening turns each curve into a
// triangle fan that covers the difference between that polygon and the curved
// shape.
//
// The functions here return errors. The advanced package has the same
// operations, which panic instead, as well as the building blocks used to
// implement them.
package curvesep

import "github.com/osuushi/curvesep/advanced"

type Point = advanced.Point
type PointType = advanced.PointType
type PointData = advanced.PointData
type VertexID = advanced.VertexID
type VertexList = advanced.VertexList
type QuadraticBezier = advanced.QuadraticBezier
type BezierList = advanced.BezierList
type VertexBuffers = advanced.VertexBuffers
type Outline = advanced.Outline
type ConnectivityKernel = advanced.ConnectivityKernel
type EdgeID = advanced.EdgeID
type Polygon = advanced.Polygon

const (
	Normal  = advanced.Normal
	Control = advanced.Control
)

var (
	ErrUnsupportedCurveOrder = advanced.ErrUnsupportedCurveOrder
	ErrMalformedLoop         = advanced.ErrMalformedLoop
	ErrDegenerateSampleCount = advanced.ErrDegenerateSampleCount
)

// Separate the curves out of the loop containing edgeLoop. See
// advanced.SeparateBezierFaces.
func SeparateKernelLoop(kernel *ConnectivityKernel, edgeLoop EdgeID, vertices advanced.VertexStore, out advanced.BezierSink) (err error) {
	defer func() {
		err = advanced.HandlePanicRecover(recover())
	}()
	advanced.SeparateKernelLoop(kernel, edgeLoop, vertices, out)
	return nil
}

// Separate the curves out of an indexed polygon. See
// advanced.SeparateBezierFaces.
func SeparatePolygon(polygon *Polygon, vertices advanced.VertexStore, out advanced.BezierSink) (err error) {
	defer func() {
		err = advanced.HandlePanicRecover(recover())
	}()
	advanced.SeparatePolygon(polygon, vertices, out)
	return nil
}

// Flatten one curve into a triangle fan. See advanced.FlattenQuadratic.
func FlattenQuadratic(from, ctrl, to Point, numPoints int, out advanced.GeometrySink) (err error) {
	defer func() {
		err = advanced.HandlePanicRecover(recover())
	}()
	advanced.FlattenQuadratic(from, ctrl, to, numPoints, out)
	return nil
}
