// Package options collects the demo's settings from defaults, an optional
// YAML file, the environment and command-line flags, in that order.
package options

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/richinsley/glcircle/graphics"
	"github.com/richinsley/glcircle/logging"
	"gopkg.in/yaml.v3"
)

type WindowOptions struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	BarHeight int    `yaml:"bar_height"`
	// Canvas is the logical name of the drawing surface.
	Canvas string `yaml:"canvas"`
}

type CircleOptions struct {
	CenterX  float32 `yaml:"center_x"`
	CenterY  float32 `yaml:"center_y"`
	Radius   float32 `yaml:"radius"`
	Segments int     `yaml:"segments"`
}

type Options struct {
	Window     WindowOptions   `yaml:"window"`
	Circle     CircleOptions   `yaml:"circle"`
	Background [4]float32      `yaml:"background"`
	Translate  bool            `yaml:"translate"`
	Logging    logging.Options `yaml:"logging"`
}

// Defaults returns the built-in settings.
func Defaults() Options {
	return Options{
		Window: WindowOptions{
			Title:     "glcircle",
			Width:     640,
			Height:    480,
			BarHeight: 48,
			Canvas:    "glCanvas",
		},
		Circle: CircleOptions{
			Radius:   0.5,
			Segments: 50,
		},
		Background: [4]float32{0, 0, 0, 1},
		Translate:  true,
		Logging:    logging.Options{Level: "info", Format: "console"},
	}
}

// ClearColor is Background as a color.
func (o Options) ClearColor() graphics.Color {
	b := o.Background
	return graphics.Color{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Options, error) {
	opts := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return opts, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	logging.ApplyEnv(&opts.Logging)
	return opts, nil
}

// RegisterFlags binds command-line flags to o. Parsing fs afterwards
// overrides whatever Load produced.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&o.Window.Width, "width", o.Window.Width, "Width of the canvas")
	fs.IntVar(&o.Window.Height, "height", o.Window.Height, "Height of the canvas")
	fs.IntVar(&o.Circle.Segments, "segments", o.Circle.Segments, "Number of triangle fan segments (>= 3)")
	fs.Var((*float32Value)(&o.Circle.Radius), "radius", "Circle radius in normalized device coordinates")
	fs.BoolVar(&o.Translate, "translate", o.Translate, "Translate WebGL2 shader sources with goshadertranslator")
	fs.StringVar(&o.Logging.Level, "log-level", o.Logging.Level, "Log level: debug, info, warn, error")
	fs.StringVar(&o.Logging.File, "log-file", o.Logging.File, "Optional rotating JSON log file")
}

// Validate reports every setting the demo cannot run with.
func (o Options) Validate() error {
	var errs []string
	if o.Circle.Segments < 3 {
		errs = append(errs, fmt.Sprintf("segments must be at least 3, got %d", o.Circle.Segments))
	}
	if r := float64(o.Circle.Radius); r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		errs = append(errs, fmt.Sprintf("radius must be a positive finite number, got %v", o.Circle.Radius))
	}
	if o.Window.Width <= 0 || o.Window.Height <= 0 {
		errs = append(errs, fmt.Sprintf("window size must be positive, got %dx%d", o.Window.Width, o.Window.Height))
	}
	if o.Window.BarHeight <= 0 {
		errs = append(errs, fmt.Sprintf("bar height must be positive, got %d", o.Window.BarHeight))
	}
	if len(errs) > 0 {
		return errors.New("invalid options: " + strings.Join(errs, "; "))
	}
	return nil
}

// Parse registers the flags on fs and parses args. A -config file is loaded
// under the flags, so anything given on the command line still wins.
func Parse(fs *flag.FlagSet, args []string) (Options, error) {
	opts := Defaults()
	configPath := fs.String("config", "", "Optional YAML config file")
	opts.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	explicit := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			explicit[f.Name] = f.Value.String()
		}
	})

	loaded, err := Load(*configPath)
	if err != nil {
		return opts, err
	}
	opts = loaded
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return opts, fmt.Errorf("flag -%s: %w", name, err)
		}
	}
	return opts, opts.Validate()
}

type float32Value float32

func (f *float32Value) String() string {
	return strconv.FormatFloat(float64(*f), 'g', -1, 32)
}

func (f *float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f = float32Value(v)
	return nil
}
