package glyph

import (
	"math"
	"reflect"
	"testing"
)

func TestNewGeometryDeterministic(t *testing.T) {
	a := NewGeometry(8, 12, 1.75)
	b := NewGeometry(8, 12, 1.75)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different geometry")
	}
}

func TestNewGeometryLengthsNonNegative(t *testing.T) {
	tests := []struct {
		name     string
		w, h     float64
		segWidth float64
	}{
		{"Defaults", 8, 12, 1.75},
		{"Square", 10, 10, 2},
		{"Tall narrow", 4, 20, 1},
		{"Wide flat", 20, 4, 1},
		// The widest bar Validate accepts out-shortens the diagonals;
		// their lengths clamp to zero instead of going negative
		{"Segment width at the limit", 8, 12, 4},
		{"Tiny", 0.5, 0.5, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeometry(tt.w, tt.h, tt.segWidth)
			for i, l := range g.Lengths {
				if l < 0 {
					t.Errorf("segment %d length %g < 0", i, l)
				}
			}
		})
	}
}

func TestNewGeometryClampsOvershortenedLengths(t *testing.T) {
	g := NewGeometry(8, 12, 4) // diagonal span is shorter than the bar is wide
	for _, idx := range []int{8, 10, 11, 13} {
		if got := g.Lengths[idx]; got != 0 {
			t.Errorf("diagonal %d length = %g, want 0", idx, got)
		}
	}
}

func TestNewGeometryDefaultLengths(t *testing.T) {
	g := NewGeometry(8, 12, 1.75)

	wantHoriz := 8.0/2 - 1.75/2
	wantOuter := 12.0/2 - 1.75
	wantInner := 12.0/4 - 1.75/2
	wantDiag := math.Hypot(2, 3) - 1.75

	checks := []struct {
		idx  int
		want float64
	}{
		{0, wantHoriz}, {3, wantHoriz}, {6, wantHoriz}, {7, wantHoriz},
		{1, wantOuter}, {2, wantOuter}, {4, wantOuter}, {5, wantOuter},
		{9, wantInner}, {12, wantInner},
		{8, wantDiag}, {10, wantDiag}, {11, wantDiag}, {13, wantDiag},
	}
	for _, c := range checks {
		if got := g.Lengths[c.idx]; math.Abs(got-c.want) > 1e-12 {
			t.Errorf("segment %d length = %g, want %g", c.idx, got, c.want)
		}
	}
}

func TestNewGeometryLayout(t *testing.T) {
	const w, h = 8.0, 12.0
	g := NewGeometry(w, h, 1.75)

	// Diagonals run corner to middle at +-atan2(H/4, W/4)
	diag := math.Atan2(h/4, w/4)
	if g.Segments[8].Angle != -diag || g.Segments[13].Angle != -diag {
		t.Errorf("H/M angles = %g, %g, want %g", g.Segments[8].Angle, g.Segments[13].Angle, -diag)
	}
	if g.Segments[10].Angle != diag || g.Segments[11].Angle != diag {
		t.Errorf("J/K angles = %g, %g, want %g", g.Segments[10].Angle, g.Segments[11].Angle, diag)
	}

	// Top and bottom bars sit on the horizontal midline at +-H/2
	if g.Segments[0].X != 0 || g.Segments[0].Y != h/2 {
		t.Errorf("segment A at (%g,%g), want (0,%g)", g.Segments[0].X, g.Segments[0].Y, h/2)
	}
	if g.Segments[3].X != 0 || g.Segments[3].Y != -h/2 {
		t.Errorf("segment D at (%g,%g), want (0,%g)", g.Segments[3].X, g.Segments[3].Y, -h/2)
	}

	// Precomputed trig matches the stored angle
	for i, s := range g.Segments {
		if s.Cos != math.Cos(s.Angle) || s.Sin != math.Sin(s.Angle) {
			t.Errorf("segment %d trig out of sync with angle %g", i, s.Angle)
		}
	}

	// Outer verticals are shorter than the half height, horizontals
	// shorter than the half width
	if g.Lengths[1] >= h/2 {
		t.Errorf("outer vertical length %g not shortened", g.Lengths[1])
	}
	if g.Lengths[0] >= w/2 {
		t.Errorf("horizontal length %g not shortened", g.Lengths[0])
	}
}
