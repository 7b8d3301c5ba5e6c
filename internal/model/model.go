package model

import (
	"image"

	"rig-renderer/internal/mathutil"
	"rig-renderer/internal/raster"
)

// Model is a drawable mesh.
type Model struct {
	Mesh  *Mesh
	Light raster.LightConfig

	// Fallback is used when Draw is given no texture.
	Fallback [4]uint8

	// scratch, reused across draws
	world  []mathutil.Vec3
	screen []raster.Vertex
	culled []bool
}

// Create returns the default cube model.
func Create() *Model {
	return New(Cube())
}

// New wraps a mesh with the default lighting.
func New(m *Mesh) *Model {
	return &Model{
		Mesh:     m,
		Light:    raster.DefaultLightConfig(),
		Fallback: [4]uint8{160, 160, 170, 255},
	}
}

// nearW is the smallest clip-space w accepted; vertices behind it are
// treated as behind the camera.
const nearW = 1e-6

// Draw rasterizes the mesh placed by world and seen through viewProj
// into fb. tex may be nil.
func (m *Model) Draw(fb *raster.FrameBuffer, world, viewProj mathutil.Mat4, tex *image.NRGBA) {
	n := len(m.Mesh.Verts)
	if cap(m.world) < n {
		m.world = make([]mathutil.Vec3, n)
		m.screen = make([]raster.Vertex, n)
		m.culled = make([]bool, n)
	}
	m.world = m.world[:n]
	m.screen = m.screen[:n]
	m.culled = m.culled[:n]

	w, h := float64(fb.Width), float64(fb.Height)
	for i, v := range m.Mesh.Verts {
		wp := world.MulPoint(v)
		m.world[i] = wp
		cx, cy, cz, cw := viewProj.MulVec4(wp)
		if cw < nearW {
			m.culled[i] = true
			continue
		}
		m.culled[i] = false
		m.screen[i] = raster.Vertex{
			X: (cx/cw*0.5 + 0.5) * w,
			Y: (0.5 - cy/cw*0.5) * h,
			Z: -cz / cw,
		}
	}

	m.Mesh.Triangles(func(vi, ti [3]int) {
		if m.culled[vi[0]] || m.culled[vi[1]] || m.culled[vi[2]] {
			return
		}
		p0, p1, p2 := m.world[vi[0]], m.world[vi[1]], m.world[vi[2]]
		normal := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		if normal == (mathutil.Vec3{}) {
			return
		}
		shade := m.Light.ComputeShade(normal)

		var tri [3]raster.Vertex
		for k := 0; k < 3; k++ {
			tri[k] = m.screen[vi[k]]
			uv := m.Mesh.UVs[ti[k]]
			tri[k].U, tri[k].V = uv[0], uv[1]
		}
		raster.RasterizeTriangle(fb, tri[0], tri[1], tri[2], tex, m.Fallback, shade, &m.Light)
	})
}
