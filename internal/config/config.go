// Package config holds the settings of the curvesep command.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	RepresentationPolygon = "polygon"
	RepresentationKernel  = "kernel"
)

type Config struct {
	// Points sampled along each curve, including both ends.
	Samples int `yaml:"samples"`
	// Which boundary representation does the separation. Results are the same
	// either way.
	Representation string `yaml:"representation"`
	// Reverse clockwise loops before separating them.
	EnsureCCW bool `yaml:"ensure_ccw"`

	SVGOut string `yaml:"svg_out"`
	PNGOut string `yaml:"png_out"`
	// Pixels per unit in the PNG.
	Scale float64 `yaml:"scale"`
	// Show the PNG in the terminal (iTerm only).
	Preview bool `yaml:"preview"`

	Debug bool `yaml:"debug"`
}

func Default() Config {
	return Config{
		Samples:        16,
		Representation: RepresentationPolygon,
		Scale:          20,
	}
}

// Load a YAML file over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Values given on the command line. Zero values mean the flag wasn't given,
// so boolean flags can only switch things on.
type Overrides struct {
	Samples        int
	Representation string
	EnsureCCW      bool
	SVGOut         string
	PNGOut         string
	Scale          float64
	Preview        bool
	Debug          bool
}

func (cfg Config) Apply(o Overrides) Config {
	if o.Samples != 0 {
		cfg.Samples = o.Samples
	}
	if o.Representation != "" {
		cfg.Representation = o.Representation
	}
	if o.SVGOut != "" {
		cfg.SVGOut = o.SVGOut
	}
	if o.PNGOut != "" {
		cfg.PNGOut = o.PNGOut
	}
	if o.Scale != 0 {
		cfg.Scale = o.Scale
	}
	cfg.EnsureCCW = cfg.EnsureCCW || o.EnsureCCW
	cfg.Preview = cfg.Preview || o.Preview
	cfg.Debug = cfg.Debug || o.Debug
	return cfg
}

func (cfg Config) Validate() error {
	if cfg.Samples < 2 {
		return errors.Errorf("samples must be at least 2, got %d", cfg.Samples)
	}
	switch cfg.Representation {
	case RepresentationPolygon, RepresentationKernel:
	default:
		return errors.Errorf("unknown representation %q", cfg.Representation)
	}
	if cfg.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %g", cfg.Scale)
	}
	if cfg.Preview && cfg.PNGOut == "" {
		return errors.New("preview needs a png output")
	}
	return nil
}
