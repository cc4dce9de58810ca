package render

import (
	"math"

	"github.com/lixenwraith/holoterm/glyph"
	"github.com/lixenwraith/holoterm/vmath"
)

// Renderer walks the lit segments of each character and projects shaded
// samples into a Frame. plot is the single write path into the buffers.
type Renderer struct {
	opts    Options
	geom    glyph.Geometry
	frame   *Frame
	palette []byte
	light   vmath.Vec3F
	spacing float64 // world units between character centers

	// Per-frame animation state
	cosA, sinA float64
	cosB, sinB float64
	zoom       float64
}

// NewRenderer builds a renderer over validated options and derived geometry
func NewRenderer(opts Options, geom glyph.Geometry, frame *Frame) *Renderer {
	r := &Renderer{
		opts:    opts,
		geom:    geom,
		frame:   frame,
		palette: []byte(opts.Palette),
		light:   vmath.Vec3F{X: opts.LightX, Y: opts.LightY},
		spacing: opts.Width * opts.Spacing,
		zoom:    1,
	}
	r.SetAngles(0, 0)
	return r
}

// SetAngles fixes the pitch and yaw for the current frame
func (r *Renderer) SetAngles(a, b float64) {
	r.cosA, r.sinA = math.Cos(a), math.Sin(a)
	r.cosB, r.sinB = math.Cos(b), math.Sin(b)
}

// SetZoom overrides the projection scale
func (r *Renderer) SetZoom(zoom float64) {
	r.zoom = zoom
}

func (r *Renderer) Zoom() float64 {
	return r.zoom
}

// AutoZoom fits the 3D bounding box of textLen characters into the padded
// screen; the width fit accounts for the x2 horizontal stretch
func (r *Renderer) AutoZoom(textLen, sw, sh int) float64 {
	totalW := r.opts.Width
	if textLen > 1 {
		totalW = float64(textLen-1)*r.spacing + r.opts.Width
	}
	zoomH := float64(sh) * ScreenPadding * CameraDistance / r.opts.Height
	zoomW := float64(sw) * ScreenPadding * CameraDistance / (totalW * 2)
	return math.Min(zoomH, zoomW)
}

// RenderText samples every lit segment of every character into the frame.
// Text is centered horizontally around the world origin.
func (r *Renderer) RenderText(text string) {
	n := len(text)
	if n == 0 {
		return
	}
	startX := -float64(n-1) * r.spacing / 2
	for i := 0; i < n; i++ {
		mask := glyph.Lookup(text[i])
		if mask == 0 {
			continue
		}
		charX := startX + float64(i)*r.spacing
		for s := 0; s < glyph.SegmentCount; s++ {
			if mask.Has(s) {
				r.drawSegment(&r.geom.Segments[s], r.geom.Lengths[s], charX)
			}
		}
	}
}

// plot projects one sampled surface point into the frame buffers:
// shear, yaw then pitch rotation, camera translation, perspective divide,
// z-test and palette shading. Rejected samples leave the buffers untouched.
func (r *Renderer) plot(p, n vmath.Vec3F) {
	// Shear for the italic effect; the normal is left alone, the lighting
	// follows the unsheared surface
	x := p.X + p.Y*r.opts.Tilt
	y, z := p.Y, p.Z

	rotX := x*r.cosB - z*r.sinB
	rotZ := x*r.sinB + z*r.cosB
	finalY := y*r.cosA - rotZ*r.sinA
	finalZ := y*r.sinA + rotZ*r.cosA + CameraDistance
	if finalZ <= 0 {
		return
	}

	ooz := 1 / finalZ
	f := r.frame
	// Horizontal stretch x2 compensates for tall terminal cells
	xp := int(float64(f.width)/2 + r.zoom*2*rotX*ooz)
	yp := int(float64(f.height)/2 - r.zoom*finalY*ooz)
	if xp < 0 || xp >= f.width || yp < 0 || yp >= f.height {
		return
	}
	idx := yp*f.width + xp
	// Strictly nearer samples win, ties keep the earlier write
	if ooz <= f.depth[idx] {
		return
	}

	// Rotate the normal the same way; only the rotated x/y components
	// light against the 2D light vector
	nRotX := n.X*r.cosB - n.Z*r.sinB
	nRotZ := n.X*r.sinB + n.Z*r.cosB
	nFinalY := n.Y*r.cosA - nRotZ*r.sinA
	lum := vmath.V3FDot(vmath.Vec3F{X: nRotX, Y: nFinalY}, r.light)

	level := int(lum * r.opts.Contrast)
	if level < 0 {
		level = 0
	} else if level >= len(r.palette) {
		level = len(r.palette) - 1
	}
	f.depth[idx] = ooz
	f.chars[idx] = r.palette[level]
	f.shades[idx] = uint8(level)
}
