package render

import (
	"github.com/lixenwraith/holoterm/glyph"
	"github.com/lixenwraith/holoterm/vmath"
)

// sampleFunc receives one surface sample in character space
type sampleFunc func(point, normal vmath.Vec3F)

// sampleSegment enumerates the analytic surface of one segment bar at the
// configured density: the two flat faces swept along length and thickness,
// then the four tapered end faces with slanted normals. Each local sample
// is rotated by the segment's precomputed angle and translated to its
// place in the character before fn sees it. Calling again restarts the
// walk from the beginning.
func sampleSegment(seg *glyph.Segment, length float64, o *Options, charX float64, fn sampleFunc) {
	halfW := o.SegWidth / 2
	halfT := o.SegThick / 2

	emit := func(p, n vmath.Vec3F) {
		rp := vmath.V3FRotZ(p, seg.Cos, seg.Sin)
		rn := vmath.V3FRotZ(n, seg.Cos, seg.Sin)
		fn(vmath.V3FAdd(rp, vmath.Vec3F{X: seg.X + charX, Y: seg.Y}), rn)
	}

	// Flat top and bottom faces
	for i := -length / 2; i < length/2; i += o.Density {
		for j := -halfT; j < halfT; j += o.Density {
			emit(vmath.Vec3F{X: i, Y: halfW, Z: j}, vmath.Vec3F{Y: 1})
			emit(vmath.Vec3F{X: i, Y: -halfW, Z: j}, vmath.Vec3F{Y: -1})
		}
	}

	// Tapered ends; a degenerate slant means no point to draw
	slant := vmath.Vec3F{X: halfW, Y: o.PointLen}
	if vmath.V3FMag(slant) < 1e-5 {
		return
	}
	cn := vmath.V3FNormalize(slant)

	for u := 0.0; u < o.PointLen; u += o.Density {
		yp := halfW * (1 - u/o.PointLen)
		front := length/2 + u
		back := -length/2 - u
		for z := -halfT; z < halfT; z += o.Density {
			emit(vmath.Vec3F{X: front, Y: yp, Z: z}, cn)
			emit(vmath.Vec3F{X: front, Y: -yp, Z: z}, vmath.Vec3F{X: cn.X, Y: -cn.Y})
			emit(vmath.Vec3F{X: back, Y: yp, Z: z}, vmath.Vec3F{X: -cn.X, Y: cn.Y})
			emit(vmath.Vec3F{X: back, Y: -yp, Z: z}, vmath.Vec3F{X: -cn.X, Y: -cn.Y})
		}
	}
}

// drawSegment feeds one segment's samples through the projector
func (r *Renderer) drawSegment(seg *glyph.Segment, length, charX float64) {
	sampleSegment(seg, length, &r.opts, charX, r.plot)
}
