package terminal

import (
	"testing"
)

func TestLerp(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 200, G: 100, B: 0}

	tests := []struct {
		name string
		t    float64
		want RGB
	}{
		{"At start", 0, a},
		{"At end", 1, b},
		{"Midpoint", 0.5, RGB{R: 100, G: 100, B: 100}},
		{"Clamped below", -2, a},
		{"Clamped above", 3, b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(a, b, tt.t); got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestStyleRamp(t *testing.T) {
	s := Style{
		Levels: 12,
		Dark:   RGB{R: 16, G: 60, B: 90},
		Bright: RGB{R: 180, G: 255, B: 255},
	}

	ramp := s.Ramp()
	if len(ramp) != 12 {
		t.Fatalf("ramp length = %d, want 12", len(ramp))
	}
	if ramp[0] != s.Dark {
		t.Errorf("ramp[0] = %v, want %v", ramp[0], s.Dark)
	}
	if ramp[11] != s.Bright {
		t.Errorf("ramp[11] = %v, want %v", ramp[11], s.Bright)
	}
	// Monotonic on a channel that spans the ramp
	for i := 1; i < len(ramp); i++ {
		if ramp[i].R < ramp[i-1].R {
			t.Fatalf("ramp red channel regresses at %d: %d -> %d", i, ramp[i-1].R, ramp[i].R)
		}
	}
}

func TestStyleRampDegenerateLevels(t *testing.T) {
	ramp := Style{Levels: 0, Dark: RGB{R: 7}}.Ramp()
	if len(ramp) != 1 || ramp[0] != (RGB{R: 7}) {
		t.Errorf("degenerate ramp = %v, want single dark entry", ramp)
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want uint8
	}{
		{"Black", RGB{0, 0, 0}, 16},
		{"White", RGB{255, 255, 255}, 231},
		{"Pure red", RGB{255, 0, 0}, 196},
		{"Cube exact", RGB{95, 135, 175}, 67},
		{"Mid gray uses gray ramp", RGB{128, 128, 128}, 244},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.c); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestDetectColorMode(t *testing.T) {
	clearTermEnv := func(t *testing.T) {
		t.Helper()
		for _, k := range []string{
			"COLORTERM", "TERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION",
			"ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE",
		} {
			t.Setenv(k, "")
		}
	}

	t.Run("COLORTERM truecolor", func(t *testing.T) {
		clearTermEnv(t)
		t.Setenv("COLORTERM", "truecolor")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("mode = %v, want truecolor", got)
		}
	})

	t.Run("Terminal program variable", func(t *testing.T) {
		clearTermEnv(t)
		t.Setenv("KITTY_WINDOW_ID", "1")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("mode = %v, want truecolor", got)
		}
	})

	t.Run("TERM direct", func(t *testing.T) {
		clearTermEnv(t)
		t.Setenv("TERM", "xterm-direct")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("mode = %v, want truecolor", got)
		}
	})

	t.Run("Plain 256-color", func(t *testing.T) {
		clearTermEnv(t)
		t.Setenv("TERM", "xterm-256color")
		if got := DetectColorMode(); got != ColorMode256 {
			t.Errorf("mode = %v, want 256", got)
		}
	})
}
