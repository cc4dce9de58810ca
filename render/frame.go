package render

import (
	"fmt"
)

// Frame owns the depth and character buffers for one screen size.
// All three buffers always share identical dimensions and are fully
// rewritten every frame before anything reads them.
type Frame struct {
	depth  []float64 // inverse depth, 0 = infinitely far
	chars  []byte    // palette character per cell
	shades []uint8   // palette index per cell, drives optional color output
	width  int
	height int
}

// NewFrame returns an empty frame; Resize allocates the buffers
func NewFrame() *Frame {
	return &Frame{}
}

// Resize reallocates the buffers for new dimensions. It either fully
// succeeds or leaves the previous buffers untouched.
func (f *Frame) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("frame dimensions %dx%d out of range", width, height)
	}
	size := width * height
	f.depth = make([]float64, size)
	f.chars = make([]byte, size)
	f.shades = make([]uint8, size)
	f.width = width
	f.height = height
	f.Clear()
	return nil
}

// Clear resets every cell to blank and infinitely far using exponential copy
func (f *Frame) Clear() {
	if len(f.chars) == 0 {
		return
	}
	f.chars[0] = ' '
	for filled := 1; filled < len(f.chars); filled *= 2 {
		copy(f.chars[filled:], f.chars[:filled])
	}
	for i := range f.depth {
		f.depth[i] = 0
	}
	for i := range f.shades {
		f.shades[i] = 0
	}
}

func (f *Frame) Width() int { return f.width }

func (f *Frame) Height() int { return f.height }

// Chars exposes the character buffer, row-major
func (f *Frame) Chars() []byte { return f.chars }

// Shades exposes the palette-index buffer, row-major
func (f *Frame) Shades() []uint8 { return f.shades }

// Row returns one row of the character buffer
func (f *Frame) Row(y int) []byte {
	return f.chars[y*f.width : (y+1)*f.width]
}

// At returns the character at a cell
func (f *Frame) At(x, y int) byte {
	return f.chars[y*f.width+x]
}

// DepthAt returns the stored inverse depth at a cell
func (f *Frame) DepthAt(x, y int) float64 {
	return f.depth[y*f.width+x]
}
