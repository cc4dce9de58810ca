package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/lixenwraith/holoterm/chime"
	"github.com/lixenwraith/holoterm/config"
	"github.com/lixenwraith/holoterm/glyph"
	"github.com/lixenwraith/holoterm/render"
	"github.com/lixenwraith/holoterm/terminal"
)

// Ramp endpoints for --color shading
var (
	rampDark   = terminal.RGB{R: 16, G: 60, B: 90}
	rampBright = terminal.RGB{R: 180, G: 255, B: 255}
)

func main() {
	// Panic recovery: restore the terminal before the stack trace so it
	// stays readable
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHOLOTERM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	log.SetFlags(0)
	log.SetPrefix("holoterm: ")

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "holoterm: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, text, err := parseArgs(args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	flags := &terminal.Flags{}
	style := terminal.Style{
		Color:  cfg.Color,
		Levels: len(cfg.Palette),
		Dark:   rampDark,
		Bright: rampBright,
		Mode:   terminal.DetectColorMode(),
	}
	term, err := terminal.New(cfg.Backend, style, flags)
	if err != nil {
		return err
	}

	geom := glyph.NewGeometry(cfg.Width, cfg.Height, cfg.SegWidth)
	frame := render.NewFrame()
	rend := render.NewRenderer(cfg.Options(), geom, frame)

	clockMode := text == ""
	var src render.TextSource
	if clockMode {
		src = render.Clock{Layout: cfg.TimeFormat}
	} else {
		src = render.StaticText(text)
	}

	// SIGINT/SIGTERM raise the stop flag; the loop polls it at the top of
	// each frame
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		flags.Stop()
	}()

	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	if cfg.Chime && clockMode {
		if c, err := chime.New(); err != nil {
			log.Printf("chime unavailable: %v", err)
		} else {
			c.Start()
			defer c.Stop()
		}
	}

	return render.NewLoop(term, flags, src, rend, frame, cfg.FPS).Run()
}

// parseArgs resolves settings with precedence defaults < file < flags.
// Remaining positional arguments join into the text to display; none
// selects clock mode.
func parseArgs(args []string) (config.Config, string, error) {
	cfg := config.Default()

	// First pass finds --config only, so file values sit under explicit
	// flags in the second pass
	pre := flag.NewFlagSet("holoterm", flag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.SetOutput(io.Discard)
	pre.Usage = func() {}
	preConfig := pre.String("config", "", "")
	_ = pre.Parse(args)
	if *preConfig != "" {
		if err := cfg.LoadFile(*preConfig); err != nil {
			return cfg, "", err
		}
	}

	fs := flag.NewFlagSet("holoterm", flag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { usage(fs) }

	fs.String("config", *preConfig, "TOML settings file")
	speed := fs.Float64P("speed", "s", 0, "set both speeds (pitch=v, yaw=v/2)")
	fs.Float64VarP(&cfg.SpeedA, "pitch-speed", "a", cfg.SpeedA, "pitch rotation per frame")
	fs.Float64VarP(&cfg.SpeedB, "yaw-speed", "b", cfg.SpeedB, "yaw rotation per frame")
	fs.Float64VarP(&cfg.Width, "width", "w", cfg.Width, "character width")
	fs.Float64VarP(&cfg.Height, "height", "h", cfg.Height, "character height")
	fs.Float64VarP(&cfg.Spacing, "spacing", "S", cfg.Spacing, "character spacing multiplier")
	fs.Float64VarP(&cfg.Tilt, "tilt", "t", cfg.Tilt, "italic/tilt factor")
	fs.Float64VarP(&cfg.Zoom, "zoom", "z", cfg.Zoom, "manual zoom, overrides auto-sizing")
	fs.Float64VarP(&cfg.SegWidth, "segment-width", "W", cfg.SegWidth, "segment width (fatness)")
	fs.Float64VarP(&cfg.SegThick, "segment-thickness", "T", cfg.SegThick, "segment thickness (depth)")
	fs.Float64VarP(&cfg.PointLen, "point-length", "p", cfg.PointLen, "pointy end length")
	fs.Float64VarP(&cfg.Density, "density", "d", cfg.Density, "sampling step, smaller is denser")
	light := fs.StringP("light", "L", fmt.Sprintf("%g,%g", cfg.LightX, cfg.LightY), "light vector x,y")
	fs.Float64VarP(&cfg.Contrast, "contrast", "c", cfg.Contrast, "shading contrast")
	fs.StringVarP(&cfg.Palette, "palette", "P", cfg.Palette, "shading palette, darkest to brightest")
	fs.StringVarP(&cfg.TimeFormat, "format", "f", cfg.TimeFormat, "clock layout (Go reference time)")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "terminal backend: ansi or tcell")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frame rate")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "tint output by shade level")
	fs.BoolVar(&cfg.Chime, "chime", cfg.Chime, "ring on the hour in clock mode")

	if err := fs.Parse(args); err != nil {
		return cfg, "", err
	}

	// --speed is a convenience; explicit per-axis flags win
	if fs.Changed("speed") {
		if !fs.Changed("pitch-speed") {
			cfg.SpeedA = *speed
		}
		if !fs.Changed("yaw-speed") {
			cfg.SpeedB = *speed / 2
		}
	}

	lx, ly, err := config.ParseLight(*light)
	if err != nil {
		return cfg, "", err
	}
	cfg.LightX, cfg.LightY = lx, ly

	return cfg, strings.Join(fs.Args(), " "), nil
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: holoterm [options] [text to display...]")
	fmt.Fprintln(os.Stderr, "With no text, the current time is rendered.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprint(os.Stderr, fs.FlagUsages())
}
