package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Larger depth values are closer to the viewer.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, cleared to -inf
}

// NewFrameBuffer allocates a transparent color buffer and a cleared z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float64, n),
	}
	fb.ClearDepth()
	return fb
}

// Clear fills the color buffer with c.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	if len(fb.Color) == 0 {
		return
	}
	fb.Color[0], fb.Color[1], fb.Color[2], fb.Color[3] = c.R, c.G, c.B, c.A
	for filled := 4; filled < len(fb.Color); filled *= 2 {
		copy(fb.Color[filled:], fb.Color[:filled])
	}
}

// ClearDepth resets every depth sample to -inf.
func (fb *FrameBuffer) ClearDepth() {
	inf := math.Inf(-1)
	for i := range fb.ZBuf {
		fb.ZBuf[i] = inf
	}
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
