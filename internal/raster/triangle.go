package raster

import (
	"image"
	"math"
)

// Vertex is a projected vertex: screen position, depth (larger is closer)
// and texture coordinate.
type Vertex struct {
	X, Y, Z float64
	U, V    float64
}

// RasterizeTriangle fills one triangle with z-buffering, bilinear texture
// sampling and a flat shade. A nil tex uses the fallback color.
//
// This is the hot path; the pixel loop does not allocate.
func RasterizeTriangle(
	fb *FrameBuffer,
	a, b, c Vertex,
	tex *image.NRGBA,
	fallback [4]uint8,
	shade float64,
	lc *LightConfig,
) {
	x0, y0, z0 := a.X, a.Y, a.Z
	x1, y1, z1 := b.X, b.Y, b.Z
	x2, y2, z2 := c.X, c.Y, c.Z

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	exposure := lc.Exposure
	invGamma := lc.InvGamma

	for sy := minY; sy <= maxY; sy++ {
		// Sample at pixel centers.
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			var cr, cg, cb, ca uint8
			if tex != nil {
				u := w0*a.U + w1*b.U + w2*c.U
				v := w0*a.V + w1*b.V + w2*c.V
				cr, cg, cb, ca = SampleTexture(tex, u, v)
			} else {
				cr, cg, cb, ca = fallback[0], fallback[1], fallback[2], fallback[3]
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			// sRGB decode, shade, tonemap, encode.
			tr := ACESTonemap(srgbToLinear[cr] * shade * exposure)
			tg := ACESTonemap(srgbToLinear[cg] * shade * exposure)
			tb := ACESTonemap(srgbToLinear[cb] * shade * exposure)

			pxIdx := zIdx * 4
			sr := clamp255(math.Pow(tr, invGamma) * 255)
			sg := clamp255(math.Pow(tg, invGamma) * 255)
			sb := clamp255(math.Pow(tb, invGamma) * 255)
			if ca == 255 {
				fb.Color[pxIdx], fb.Color[pxIdx+1], fb.Color[pxIdx+2], fb.Color[pxIdx+3] = sr, sg, sb, 255
				continue
			}
			blendOver(fb.Color[pxIdx:pxIdx+4], sr, sg, sb, ca)
		}
	}
}

// blendOver composites a straight-alpha source color over dst (straight
// RGBA) in place.
func blendOver(dst []uint8, r, g, b, a uint8) {
	sa := float64(a) / 255
	da := float64(dst[3]) / 255
	oa := sa + da*(1-sa)
	if oa <= 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}
	mix := func(s, d uint8) uint8 {
		return clamp255((float64(s)*sa + float64(d)*da*(1-sa)) / oa)
	}
	dst[0], dst[1], dst[2] = mix(r, dst[0]), mix(g, dst[1]), mix(b, dst[2])
	dst[3] = clamp255(oa * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
