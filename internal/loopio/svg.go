package loopio

import (
	"io"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/curvesep/advanced"
	"github.com/pkg/errors"
	"github.com/tdewolff/canvas"
)

// This is not a full (or even correct) SVG reader. It finds every <path> and
// <polygon> element in the document, in document order, and converts each
// closed subpath into a loop. Transforms, styles and units are ignored.
//
// Path data is parsed by canvas, so every command is understood, but only lines
// and bezier curves can become loops. Cubic curves are read as two consecutive
// control points, which the separator rejects, since only quadratic curves are
// supported. Arcs are an error.
func ReadSVG(in io.Reader) ([]Loop, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var loops []Loop
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "path":
			pathLoops, err := ParsePathData(el.Attributes["d"])
			if err != nil {
				return errors.Wrapf(err, "path %q", el.Attributes["id"])
			}
			loops = append(loops, pathLoops...)
		case "polygon":
			loop, err := parsePolygonPoints(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "polygon %q", el.Attributes["id"])
			}
			loops = append(loops, loop)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return loops, nil
}

// Polygon points are all normal points: "x,y x,y ...". They are read as the
// path data "M x,y x,y ... Z".
func parsePolygonPoints(points string) (Loop, error) {
	loops, err := ParsePathData("M" + points + "Z")
	if err != nil {
		return nil, errors.Wrap(err, "bad polygon points")
	}
	if len(loops) != 1 {
		return nil, errors.Errorf("expected one loop in polygon points %q, got %d", points, len(loops))
	}
	return loops[0], nil
}

func normalPoint(p canvas.Point) advanced.PointData {
	return advanced.PointData{Position: advanced.Point{X: p.X, Y: p.Y}, Type: advanced.Normal}
}

func controlPoint(p canvas.Point) advanced.PointData {
	return advanced.PointData{Position: advanced.Point{X: p.X, Y: p.Y}, Type: advanced.Control}
}

// Convert SVG path data into loops, one per subpath. Every subpath is closed,
// whether or not it ends with Z. A final point equal to the starting point is
// dropped, since the loop closes back to it anyway.
//
// The path is normalized while parsing: zero length segments are dropped,
// consecutive collinear lines are merged, and a curve whose control points lie
// on its chord becomes a line.
func ParsePathData(d string) ([]Loop, error) {
	path, err := canvas.ParseSVG(d)
	if err != nil {
		return nil, errors.Wrap(err, "parsing path data")
	}

	var loops []Loop
	var loop Loop
	closeLoop := func() {
		if len(loop) > 1 && loop[len(loop)-1].Type == advanced.Normal && loop[len(loop)-1].Position.Equal(loop[0].Position) {
			loop = loop[:len(loop)-1]
		}
		if len(loop) > 0 {
			loops = append(loops, loop)
		}
		loop = nil
	}

	for _, seg := range path.Segments() {
		switch seg.Cmd {
		case canvas.MoveToCmd:
			closeLoop()
			loop = append(loop, normalPoint(seg.End))
		case canvas.LineToCmd:
			loop = append(loop, normalPoint(seg.End))
		case canvas.QuadToCmd:
			loop = append(loop, controlPoint(seg.CP1()), normalPoint(seg.End))
		case canvas.CubeToCmd:
			loop = append(loop, controlPoint(seg.CP1()), controlPoint(seg.CP2()), normalPoint(seg.End))
		case canvas.CloseCmd:
			// The closing line ends where the subpath started
			closeLoop()
		default:
			return nil, errors.Errorf("unsupported segment from (%g, %g) to (%g, %g) in path data: only lines and bezier curves can be read",
				seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
		}
	}
	closeLoop()
	return loops, nil
}
