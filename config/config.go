// Package config assembles and validates the per-run settings: built-in
// defaults, an optional TOML settings file, then command-line overrides
// applied by the caller.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/holoterm/render"
	"github.com/lixenwraith/holoterm/toml"
)

// Built-in defaults, the classic tuning of the display
const (
	DefaultSpeedA     = 0.04
	DefaultSpeedB     = 0.02
	DefaultWidth      = 8.0
	DefaultHeight     = 12.0
	DefaultTilt       = 0.3
	DefaultSpacing    = 1.5
	DefaultSegWidth   = 1.75
	DefaultSegThick   = 1.75
	DefaultPointLen   = 0.85
	DefaultLightX     = 0.3
	DefaultLightY     = 0.7
	DefaultContrast   = 20.0
	DefaultDensity    = 0.1
	DefaultPalette    = ".,-~:;=!*#$@"
	DefaultTimeFormat = "15:04" // Go reference layout
)

// Config is the full run configuration. Immutable once validated.
type Config struct {
	// Animation
	SpeedA float64
	SpeedB float64

	// Geometry
	Width    float64
	Height   float64
	Spacing  float64
	Tilt     float64
	Zoom     float64 // <= 0 selects auto-zoom
	SegWidth float64
	SegThick float64
	PointLen float64

	// Shading
	Density  float64
	LightX   float64
	LightY   float64
	Contrast float64
	Palette  string
	Color    bool

	// Output
	Backend    string
	FPS        int
	TimeFormat string
	Chime      bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		SpeedA:     DefaultSpeedA,
		SpeedB:     DefaultSpeedB,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Spacing:    DefaultSpacing,
		Tilt:       DefaultTilt,
		Zoom:       -1,
		SegWidth:   DefaultSegWidth,
		SegThick:   DefaultSegThick,
		PointLen:   DefaultPointLen,
		Density:    DefaultDensity,
		LightX:     DefaultLightX,
		LightY:     DefaultLightY,
		Contrast:   DefaultContrast,
		Palette:    DefaultPalette,
		Backend:    "ansi",
		FPS:        render.TargetFPS,
		TimeFormat: DefaultTimeFormat,
	}
}

// LoadFile merges a TOML settings file over c. Unknown keys are ignored,
// wrong value types are errors.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("settings file: %w", err)
	}
	doc, err := toml.Parse(data)
	if err != nil {
		return fmt.Errorf("settings file %s: %w", path, err)
	}
	if err := c.apply(doc); err != nil {
		return fmt.Errorf("settings file %s: %w", path, err)
	}
	return nil
}

func (c *Config) apply(doc map[string]any) error {
	animation, err := toml.Table(doc, "animation")
	if err != nil {
		return err
	}
	geometry, err := toml.Table(doc, "geometry")
	if err != nil {
		return err
	}
	shading, err := toml.Table(doc, "shading")
	if err != nil {
		return err
	}
	output, err := toml.Table(doc, "output")
	if err != nil {
		return err
	}

	steps := []error{
		toml.Float(animation, "pitch_speed", &c.SpeedA),
		toml.Float(animation, "yaw_speed", &c.SpeedB),
		toml.Float(geometry, "width", &c.Width),
		toml.Float(geometry, "height", &c.Height),
		toml.Float(geometry, "spacing", &c.Spacing),
		toml.Float(geometry, "tilt", &c.Tilt),
		toml.Float(geometry, "zoom", &c.Zoom),
		toml.Float(geometry, "segment_width", &c.SegWidth),
		toml.Float(geometry, "segment_thickness", &c.SegThick),
		toml.Float(geometry, "point_length", &c.PointLen),
		toml.Float(shading, "density", &c.Density),
		toml.Float(shading, "light_x", &c.LightX),
		toml.Float(shading, "light_y", &c.LightY),
		toml.Float(shading, "contrast", &c.Contrast),
		toml.Str(shading, "palette", &c.Palette),
		toml.Bool(shading, "color", &c.Color),
		toml.Str(output, "backend", &c.Backend),
		toml.Int(output, "fps", &c.FPS),
		toml.Str(output, "time_format", &c.TimeFormat),
		toml.Bool(output, "chime", &c.Chime),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate rejects configurations the pipeline cannot render. Called once
// before the frame loop starts; nothing re-validates afterward.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("character dimensions must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.SegWidth <= 0 || c.SegThick <= 0 {
		return fmt.Errorf("segment width and thickness must be positive")
	}
	if c.SegWidth > math.Min(c.Width, c.Height)/2 {
		return fmt.Errorf("segment width %g too large for %gx%g characters", c.SegWidth, c.Width, c.Height)
	}
	if c.PointLen < 0 {
		return fmt.Errorf("point length must not be negative")
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("spacing must be positive")
	}
	if c.Density <= 0 {
		return fmt.Errorf("density must be > 0")
	}
	if c.Palette == "" {
		return fmt.Errorf("palette must not be empty")
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive")
	}
	return nil
}

// Options maps the validated configuration onto the render pipeline
func (c *Config) Options() render.Options {
	return render.Options{
		SpeedA:   c.SpeedA,
		SpeedB:   c.SpeedB,
		Width:    c.Width,
		Height:   c.Height,
		Spacing:  c.Spacing,
		Tilt:     c.Tilt,
		Zoom:     c.Zoom,
		SegWidth: c.SegWidth,
		SegThick: c.SegThick,
		PointLen: c.PointLen,
		Density:  c.Density,
		LightX:   c.LightX,
		LightY:   c.LightY,
		Contrast: c.Contrast,
		Palette:  c.Palette,
	}
}

// ParseLight parses an "x,y" light vector
func ParseLight(s string) (x, y float64, err error) {
	sx, sy, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid light vector %q, use x,y", s)
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(sx), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid light vector %q: %w", s, err)
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(sy), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid light vector %q: %w", s, err)
	}
	return x, y, nil
}
