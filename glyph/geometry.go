package glyph

import (
	"math"
)

// Segment places one bar of the figure: center offset relative to the
// character center plus rotation about the depth axis. Cos/Sin are
// precomputed so the per-sample rotation costs two multiplies.
type Segment struct {
	X, Y  float64
	Angle float64 // radians
	Cos   float64
	Sin   float64
}

// Geometry is the per-run segment layout shared by every character.
// Derived once after configuration is fixed, immutable afterward.
type Geometry struct {
	Segments [SegmentCount]Segment
	Lengths  [SegmentCount]float64
	Width    float64
	Height   float64
}

// NewGeometry derives segment placement and lengths from character
// dimensions and the segment bar width. Lengths are shortened by one bar
// width of overlap so segments meet cleanly at the joints. Callers reject
// degenerate dimensions before calling (see config.Validate).
func NewGeometry(w, h, segWidth float64) Geometry {
	quarterW := w / 4
	quarterH := h / 4
	diag := math.Atan2(quarterH, quarterW)
	right := math.Pi / 2

	g := Geometry{Width: w, Height: h}
	g.Segments = [SegmentCount]Segment{
		{X: 0, Y: h / 2, Angle: 0},                   // A  top
		{X: w / 2, Y: quarterH, Angle: right},        // B  upper right
		{X: w / 2, Y: -quarterH, Angle: right},       // C  lower right
		{X: 0, Y: -h / 2, Angle: 0},                  // D  bottom
		{X: -w / 2, Y: -quarterH, Angle: right},      // E  lower left
		{X: -w / 2, Y: quarterH, Angle: right},       // F  upper left
		{X: -quarterW, Y: 0, Angle: 0},               // G1 mid left
		{X: quarterW, Y: 0, Angle: 0},                // G2 mid right
		{X: -quarterW, Y: quarterH, Angle: -diag},    // H
		{X: 0, Y: quarterH, Angle: right},            // I  upper center
		{X: quarterW, Y: quarterH, Angle: diag},      // J
		{X: -quarterW, Y: -quarterH, Angle: diag},    // K
		{X: 0, Y: -quarterH, Angle: right},           // L  lower center
		{X: quarterW, Y: -quarterH, Angle: -diag},    // M
	}
	for i := range g.Segments {
		s := &g.Segments[i]
		s.Cos = math.Cos(s.Angle)
		s.Sin = math.Sin(s.Angle)
	}

	horiz := w/2 - segWidth/2
	vertOuter := h/2 - segWidth
	vertInner := quarterH - segWidth/2
	diagLen := math.Sqrt(quarterW*quarterW+quarterH*quarterH) - segWidth
	g.Lengths = [SegmentCount]float64{
		horiz, vertOuter, vertOuter, horiz, vertOuter, vertOuter,
		horiz, horiz, diagLen, vertInner, diagLen, diagLen, vertInner, diagLen,
	}
	// A wide bar on a small character can out-shorten its own length;
	// clamp to a point rather than hand a negative span downstream
	for i, l := range g.Lengths {
		if l < 0 {
			g.Lengths[i] = 0
		}
	}
	return g
}
