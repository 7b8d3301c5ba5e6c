package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownsampleKeepsSolidColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	dst := Downsample(src, 4, 2)
	assert.Equal(t, image.Rect(0, 0, 4, 2), dst.Bounds())
	got := dst.NRGBAAt(1, 1)
	assert.InDelta(t, 200, int(got.R), 1)
	assert.InDelta(t, 100, int(got.G), 1)
	assert.InDelta(t, 50, int(got.B), 1)
	assert.Equal(t, uint8(255), got.A)
}

func TestDownsampleNoopWhenSmall(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, src, Downsample(src, 4, 4))
}

func TestDownsampleTransparentStaysBlack(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	dst := Downsample(src, 2, 2)
	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(0, 0))
}
