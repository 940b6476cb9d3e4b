package curvesep

import (
	"github.com/osuushi/curvesep/advanced"
	"github.com/pkg/errors"
)

// The output of separating and flattening one loop.
type Result struct {
	// The loop with every outside control point removed.
	Outline Outline
	// Every curve, in the order found.
	Curves BezierList
	// One triangle fan per curve, in the same order.
	Geometry VertexBuffers
}

// Separate a loop and flatten every curve in it with numPoints samples each.
// The loop should be counterclockwise.
func Tessellate(loop []PointData, numPoints int) (result *Result, err error) {
	if numPoints < 2 {
		return nil, errors.Wrapf(ErrDegenerateSampleCount, "cannot flatten curves with %d points", numPoints)
	}
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	vertices := VertexList(loop)
	polygon := advanced.NewPolygon(vertices.IDs()...)
	result = &Result{}
	advanced.SeparatePolygon(polygon, vertices, &result.Curves)
	result.Outline = advanced.PolygonOutline(polygon, vertices)
	flattenAll(result, numPoints)
	return result, nil
}

// Same as Tessellate, but through a connectivity kernel. The results are
// identical.
func TessellateKernel(loop []PointData, numPoints int) (result *Result, err error) {
	if numPoints < 2 {
		return nil, errors.Wrapf(ErrDegenerateSampleCount, "cannot flatten curves with %d points", numPoints)
	}
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	vertices := VertexList(loop)
	kernel := advanced.NewConnectivityKernel()
	first := kernel.AddLoop(vertices.IDs()...)
	result = &Result{}
	advanced.SeparateKernelLoop(kernel, first, vertices, &result.Curves)
	// The first edge may have been excised. Read the outline from the lowest
	// surviving edge, which is where the polygon would start too.
	for e := first; int(e) < kernel.EdgeCount(); e++ {
		if !kernel.IsRemoved(e) {
			result.Outline = advanced.KernelOutline(kernel, e, vertices)
			break
		}
	}
	flattenAll(result, numPoints)
	return result, nil
}

func flattenAll(result *Result, numPoints int) {
	for _, curve := range result.Curves {
		advanced.FlattenQuadratic(curve.From, curve.Ctrl, curve.To, numPoints, &result.Geometry)
	}
}
