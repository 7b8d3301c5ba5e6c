package raster

import (
	"image"
	"math"
)

// SampleTexture performs bilinear filtering with UV wrapping.
// Reads tex.Pix directly; tex must have a zero-origin rectangle.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return 0, 0, 0, 0
	}

	u -= math.Floor(u)
	v -= math.Floor(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	ch := func(o int) uint8 {
		f := float64(pix[i00+o])*w00 + float64(pix[i10+o])*w10 +
			float64(pix[i01+o])*w01 + float64(pix[i11+o])*w11
		return uint8(f + 0.5)
	}
	return ch(0), ch(1), ch(2), ch(3)
}
