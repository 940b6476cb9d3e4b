package render

import (
	"image/color"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/curvesep/advanced"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const drawPadding = 20

var (
	outlineFill   = color.RGBA{0, 128, 0, 255}
	outlineStroke = color.RGBA{0, 255, 255, 255}
	fanFill       = color.RGBA{128, 128, 0, 255}
	outsideCurve  = color.RGBA{255, 128, 0, 255}
	insideCurve   = color.RGBA{255, 0, 255, 255}
)

// Draw the items at scale pixels per unit, with the origin at the bottom left.
func Draw(items []Item, scale float64) *gg.Context {
	bounds := Bounds(items)

	// Set up the context
	width := int(scale*bounds.Width()) + drawPadding*2
	height := int(scale*bounds.Height()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.Min.X, -bounds.Min.Y)

	for _, item := range items {
		drawOutline(c, item.Outline, scale)
		for _, tri := range item.Triangles {
			drawTriangle(c, tri)
		}
		for _, curve := range item.Curves {
			drawCurve(c, curve, scale)
		}
	}
	return c
}

func drawOutline(c *gg.Context, outline advanced.Outline, scale float64) {
	if len(outline) == 0 {
		return
	}
	c.MoveTo(outline[0].X, outline[0].Y)
	for _, p := range outline[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetColor(outlineFill)
	c.FillPreserve()
	c.SetColor(outlineStroke)
	c.SetLineWidth(2 / scale)
	c.Stroke()
}

func drawTriangle(c *gg.Context, tri advanced.Triangle) {
	c.MoveTo(tri.A.X, tri.A.Y)
	c.LineTo(tri.B.X, tri.B.Y)
	c.LineTo(tri.C.X, tri.C.Y)
	c.ClosePath()
	c.SetColor(fanFill)
	c.Fill()
}

func drawCurve(c *gg.Context, curve advanced.QuadraticBezier, scale float64) {
	col := insideCurve
	if curve.IsControlOutside() {
		col = outsideCurve
	}
	c.SetColor(col)
	c.SetLineWidth(2 / scale)
	c.MoveTo(curve.From.X, curve.From.Y)
	c.QuadraticTo(curve.Ctrl.X, curve.Ctrl.Y, curve.To.X, curve.To.Y)
	c.Stroke()

	c.SetDash(4/scale, 4/scale)
	c.MoveTo(curve.From.X, curve.From.Y)
	c.LineTo(curve.Ctrl.X, curve.Ctrl.Y)
	c.LineTo(curve.To.X, curve.To.Y)
	c.Stroke()
	c.SetDash()

	c.DrawCircle(curve.Ctrl.X, curve.Ctrl.Y, 3/scale)
	c.Fill()
}

func WritePNG(path string, items []Item, scale float64) error {
	return errors.Wrap(Draw(items, scale).SavePNG(path), "writing png")
}

// Print a PNG file to stdout. Only works in iTerm.
func Preview(path string) {
	imgcat.CatFile(path, os.Stdout)
}
