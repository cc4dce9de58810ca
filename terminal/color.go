package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Style selects how frames are written to the terminal
type Style struct {
	Color  bool // tint cells by shade level; off means plain ASCII
	Levels int  // palette length, sizes the color ramp
	Dark   RGB  // ramp color at level 0
	Bright RGB  // ramp color at the last level
	Mode   ColorMode
}

// Ramp interpolates the style's color ramp, one RGB per shade level
func (s Style) Ramp() []RGB {
	n := s.Levels
	if n < 1 {
		n = 1
	}
	ramp := make([]RGB, n)
	for i := range ramp {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		ramp[i] = Lerp(s.Dark, s.Bright, t)
	}
	return ramp
}

// Lerp linearly interpolates between two colors, t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Color cube values for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// RGBTo256 maps a color to the nearest xterm-256 palette index, checking
// the grayscale ramp (232-255) when the channels are close
func RGBTo256(c RGB) uint8 {
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := max(absInt(int(c.R)-gray), absInt(int(c.G)-gray), absInt(int(c.B)-gray))

	cubeR := nearestCube(c.R)
	cubeG := nearestCube(c.G)
	cubeB := nearestCube(c.B)
	cubeIdx := 16 + 36*cubeR + 6*cubeG + cubeB
	cubeDist := absInt(int(c.R)-int(cubeValues[cubeR])) +
		absInt(int(c.G)-int(cubeValues[cubeG])) +
		absInt(int(c.B)-int(cubeValues[cubeB]))

	if maxDiff < 10 && gray >= 4 && gray <= 243 {
		grayIdx := 232 + (gray-8)/10
		if grayIdx > 255 {
			grayIdx = 255
		}
		grayLevel := 8 + (grayIdx-232)*10
		grayDist := absInt(int(c.R)-grayLevel) + absInt(int(c.G)-grayLevel) + absInt(int(c.B)-grayLevel)
		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}
	return uint8(cubeIdx)
}

func nearestCube(v uint8) int {
	best := 0
	bestDist := absInt(int(v) - int(cubeValues[0]))
	for j := 1; j < 6; j++ {
		if d := absInt(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DetectColorMode determines color capability from the environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
