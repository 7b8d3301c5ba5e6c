package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearAndImage(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.Clear(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img := fb.Image()
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(2, 1))
	assert.True(t, math.IsInf(fb.ZBuf[5], -1))
}

func TestRasterizeCoversInterior(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	lc := DefaultLightConfig()
	white := [4]uint8{255, 255, 255, 255}
	RasterizeTriangle(fb, Vertex{X: 0, Y: 0}, Vertex{X: 16, Y: 0}, Vertex{X: 0, Y: 16}, nil, white, 1, &lc)

	img := fb.Image()
	assert.Equal(t, uint8(255), img.NRGBAAt(2, 2).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(15, 15).A)
	assert.Equal(t, 0.0, fb.ZBuf[2*16+2])
}

func TestDepthTestKeepsCloser(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	lc := DefaultLightConfig()
	near := [4]uint8{255, 0, 0, 255}
	far := [4]uint8{0, 0, 255, 255}
	quad := func(z float64, c [4]uint8) {
		RasterizeTriangle(fb, Vertex{X: 0, Y: 0, Z: z}, Vertex{X: 8, Y: 0, Z: z}, Vertex{X: 0, Y: 8, Z: z}, nil, c, 1, &lc)
		RasterizeTriangle(fb, Vertex{X: 8, Y: 0, Z: z}, Vertex{X: 8, Y: 8, Z: z}, Vertex{X: 0, Y: 8, Z: z}, nil, c, 1, &lc)
	}
	quad(1, near)
	quad(-1, far)

	px := fb.Image().NRGBAAt(4, 4)
	assert.Greater(t, px.R, px.B)

	fb.ClearDepth()
	quad(-1, far)
	px = fb.Image().NRGBAAt(4, 4)
	assert.Greater(t, px.B, px.R)
}

func TestDegenerateTriangleIsSkipped(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	lc := DefaultLightConfig()
	RasterizeTriangle(fb, Vertex{X: 0, Y: 0}, Vertex{X: 2, Y: 2}, Vertex{X: 4, Y: 4}, nil, [4]uint8{255, 255, 255, 255}, 1, &lc)
	for _, v := range fb.Color {
		assert.Zero(t, v)
	}
}

func TestSampleTextureWraps(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range tex.Pix {
		tex.Pix[i] = 200
	}
	r, _, _, a := SampleTexture(tex, 1.25, -0.5)
	assert.Equal(t, uint8(200), r)
	assert.Equal(t, uint8(200), a)
}

func TestComputeShadeFacesLight(t *testing.T) {
	lc := DefaultLightConfig()
	lit := lc.ComputeShade(lc.LightDir)
	away := lc.ComputeShade(lc.LightDir.Scale(-1))
	assert.Greater(t, lit, away)
	assert.InDelta(t, 0, ACESTonemap(0), 1e-12)
}

func TestTranslucentTexelBlendsOverBackground(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	fb.Clear(color.NRGBA{R: 0, G: 0, B: 200, A: 255})
	lc := DefaultLightConfig()
	tex := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	RasterizeTriangle(fb, Vertex{X: 0, Y: 0}, Vertex{X: 8, Y: 0}, Vertex{X: 0, Y: 8}, tex, [4]uint8{}, 1, &lc)

	px := fb.Image().NRGBAAt(1, 1)
	assert.Equal(t, uint8(255), px.A)
	assert.Greater(t, px.R, uint8(0))
	assert.Less(t, px.R, uint8(255))
	assert.Greater(t, px.B, px.R)
}

func TestBlendOver(t *testing.T) {
	dst := []uint8{0, 0, 0, 255}
	blendOver(dst, 255, 255, 255, 128)
	assert.Equal(t, []uint8{128, 128, 128, 255}, dst)

	dst = []uint8{0, 0, 0, 0}
	blendOver(dst, 200, 100, 50, 64)
	assert.Equal(t, []uint8{200, 100, 50, 64}, dst)
}
