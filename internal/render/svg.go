package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"
)

// Minimal SVG serializer. Write errors are sticky and reported by End.
type svgWriter struct {
	writer io.Writer
	err    error
}

func (svg *svgWriter) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

func styleAttr(style []string) string {
	if len(style) == 0 {
		return ""
	}
	return fmt.Sprintf("style='%s' ", strings.Join(style, ";"))
}

func (svg *svgWriter) start(viewBox geom.Rect) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (svg *svgWriter) end() error {
	svg.printf("</svg>\n")
	return svg.err
}

func (svg *svgWriter) polygon(points []geom.Coord, style ...string) {
	svg.printf("<polygon %spoints='", styleAttr(style))
	for i, p := range points {
		if i > 0 {
			svg.printf(" ")
		}
		svg.printf("%f,%f", p.X, p.Y)
	}
	svg.printf("'/>\n")
}

func (svg *svgWriter) line(p1, p2 geom.Coord, style ...string) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X, p1.Y, p2.X, p2.Y, styleAttr(style))
}

func (svg *svgWriter) circle(c geom.Coord, r float64, style ...string) {
	svg.printf("<circle cx='%f' cy='%f' r='%f' %s/>\n", c.X, c.Y, r, styleAttr(style))
}

func (svg *svgWriter) quadBezier(p1, ctrl, p2 geom.Coord, style ...string) {
	svg.printf("<path d='M%f,%f Q%f,%f %f,%f' %s/>\n",
		p1.X, p1.Y, ctrl.X, ctrl.Y, p2.X, p2.Y, styleAttr(style))
}

// Write the items as an SVG document, in the coordinate system of the input.
// The outline is filled, fans are filled in a second color, curves are
// stroked, and control points are marked with a dashed hull.
func WriteSVG(w io.Writer, items []Item) error {
	bounds := Bounds(items)
	// Scale strokes and markers to the drawing
	unit := math.Max(bounds.Width(), bounds.Height()) / 200
	if unit == 0 {
		unit = 1
	}
	bounds = pad(bounds, unit*10)

	svg := &svgWriter{writer: w}
	svg.start(bounds)
	strokeWidth := fmt.Sprintf("stroke-width:%f", unit)
	for _, item := range items {
		outline := make([]geom.Coord, len(item.Outline))
		for i, p := range item.Outline {
			outline[i] = coord(p)
		}
		svg.polygon(outline, "fill:#2a7f2a", "stroke:#00ffff", strokeWidth)

		for _, tri := range item.Triangles {
			svg.polygon([]geom.Coord{coord(tri.A), coord(tri.B), coord(tri.C)},
				"fill:#7f7f2a", "stroke:#ffff00", fmt.Sprintf("stroke-width:%f", unit/4))
		}

		for _, curve := range item.Curves {
			color := "#ff00ff"
			if curve.IsControlOutside() {
				color = "#ff7f00"
			}
			dashed := fmt.Sprintf("stroke-dasharray:%f", unit*2)
			svg.line(coord(curve.From), coord(curve.Ctrl), "stroke:"+color, strokeWidth, dashed)
			svg.line(coord(curve.Ctrl), coord(curve.To), "stroke:"+color, strokeWidth, dashed)
			svg.quadBezier(coord(curve.From), coord(curve.Ctrl), coord(curve.To),
				"fill:none", "stroke:"+color, strokeWidth)
			svg.circle(coord(curve.Ctrl), unit*2, "fill:"+color)
		}
	}
	return errors.Wrap(svg.end(), "writing svg")
}
