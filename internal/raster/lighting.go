package raster

import (
	"math"

	"rig-renderer/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	LightDir mathutil.Vec3
	RimDir   mathutil.Vec3
	HalfMain mathutil.Vec3 // half-vector for Blinn-Phong
	Ambient  float64
	Hemi     float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns a key light from the upper left front, a rim
// light from behind and a camera looking down +Z.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{-0.5, 0.8, -0.6}.Normalize()
	rimDir := mathutil.Vec3{0.4, 0.3, 0.9}.Normalize()
	viewDir := mathutil.Vec3{0, 0, 1}

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		HalfMain: lightDir.Sub(viewDir).Normalize(),
		Ambient:  0.25,
		Hemi:     0.20,
		Direct:   0.80,
		Rim:      0.25,
		SpecInt:  0.30,
		SpecPow:  16.0,
		Exposure: 1.0,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a world-space
// face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	ndlMain := normal.Dot(lc.LightDir)
	if ndlMain < 0 {
		ndlMain = 0
	}
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	// Hemisphere fill: brighter when facing up.
	hemi := normal[1]*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
