// Command curvesep separates the quadratic curves out of boundary loops, and
// flattens them into triangle fans.
//
// Loops are read from stdin, one point per line ("x y" for a normal point,
// "x y c" for a control point) with blank lines between loops, or from the
// paths and polygons of an SVG file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/osuushi/curvesep"
	"github.com/osuushi/curvesep/advanced"
	"github.com/osuushi/curvesep/internal/config"
	"github.com/osuushi/curvesep/internal/loopio"
	"github.com/osuushi/curvesep/internal/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("curvesep", "Separate quadratic curves out of polygon outlines and flatten them into triangle fans.")

	configPath     = app.Flag("config", "YAML configuration file.").ExistingFile()
	svgIn          = app.Flag("svg", "Read loops from an SVG file instead of stdin.").ExistingFile()
	samples        = app.Flag("samples", "Points sampled along each curve, including both ends.").Short('n').Int()
	representation = app.Flag("representation", "Boundary representation used for separation.").Enum(config.RepresentationPolygon, config.RepresentationKernel)
	ensureCCW      = app.Flag("ensure-ccw", "Reverse clockwise loops before separating.").Bool()
	svgOut         = app.Flag("svg-out", "Write the result as SVG.").String()
	pngOut         = app.Flag("png-out", "Write the result as PNG.").String()
	scale          = app.Flag("scale", "Pixels per unit in the PNG.").Float64()
	preview        = app.Flag("preview", "Show the PNG in the terminal (iTerm only).").Bool()
	printOutlines  = app.Flag("outlines", "Print the separated outlines in the input text format.").Bool()
	debug          = app.Flag("debug", "Log every classification and flatten call to stderr.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		app.FatalIfError(err, "")
	}
	cfg = cfg.Apply(config.Overrides{
		Samples:        *samples,
		Representation: *representation,
		EnsureCCW:      *ensureCCW,
		SVGOut:         *svgOut,
		PNGOut:         *pngOut,
		Scale:          *scale,
		Preview:        *preview,
		Debug:          *debug,
	})
	app.FatalIfError(cfg.Validate(), "invalid configuration")

	if cfg.Debug {
		advanced.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	in := io.Reader(os.Stdin)
	if *svgIn != "" {
		f, err := os.Open(*svgIn)
		app.FatalIfError(err, "")
		defer f.Close()
		in = f
	}
	loops, err := readLoops(in, *svgIn != "")
	app.FatalIfError(err, "reading loops")

	items, err := run(cfg, loops, os.Stdout)
	app.FatalIfError(err, "")
	if *printOutlines {
		app.FatalIfError(writeOutlines(os.Stdout, items), "")
	}
	app.FatalIfError(writeOutputs(cfg, items), "")
}

func readLoops(in io.Reader, svg bool) ([]loopio.Loop, error) {
	if svg {
		return loopio.ReadSVG(in)
	}
	return loopio.ReadText(in)
}

// Separate and flatten every loop, printing a summary line for each.
func run(cfg config.Config, loops []loopio.Loop, out io.Writer) ([]render.Item, error) {
	tessellate := curvesep.Tessellate
	if cfg.Representation == config.RepresentationKernel {
		tessellate = curvesep.TessellateKernel
	}

	items := make([]render.Item, 0, len(loops))
	for i, loop := range loops {
		if cfg.EnsureCCW {
			loop = loop.EnsureCCW()
		}
		result, err := tessellate(loop, cfg.Samples)
		if err != nil {
			return nil, errors.Wrapf(err, "loop %d", i)
		}
		triangles := result.Geometry.Triangles()
		outside := 0
		for _, curve := range result.Curves {
			if curve.IsControlOutside() {
				outside++
			}
		}
		fmt.Fprintf(out, "loop %d: %d points, %d curves (%d outside), %d outline points, %d triangles\n",
			i, len(loop), len(result.Curves), outside, len(result.Outline), len(triangles))
		items = append(items, render.Item{
			Outline:   result.Outline,
			Curves:    result.Curves,
			Triangles: triangles,
		})
	}
	return items, nil
}

func writeOutlines(out io.Writer, items []render.Item) error {
	loops := make([]loopio.Loop, len(items))
	for i, item := range items {
		for _, p := range item.Outline {
			loops[i] = append(loops[i], advanced.PointData{Position: p, Type: advanced.Normal})
		}
	}
	return loopio.WriteText(out, loops)
}

func writeOutputs(cfg config.Config, items []render.Item) error {
	if cfg.SVGOut != "" {
		f, err := os.Create(cfg.SVGOut)
		if err != nil {
			return errors.Wrap(err, "creating svg")
		}
		if err := render.WriteSVG(f, items); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrap(err, "closing svg")
		}
	}
	if cfg.PNGOut != "" {
		if err := render.WritePNG(cfg.PNGOut, items, cfg.Scale); err != nil {
			return err
		}
		if cfg.Preview {
			render.Preview(cfg.PNGOut)
		}
	}
	return nil
}
