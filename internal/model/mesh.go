// Package model holds mesh geometry and draws it through the raster
// pipeline.
package model

import "rig-renderer/internal/mathutil"

// Face holds polygon size and indices into the vertex and UV arrays.
// Polygon == 4 means quad (two triangles: 0-1-2 and 0-2-3).
type Face struct {
	Polygon int
	VI      [4]int
	TI      [4]int
}

// Mesh is indexed geometry in model space.
type Mesh struct {
	Verts []mathutil.Vec3
	UVs   [][2]float64
	Faces []Face
}

// Cube returns a 2×2×2 cube centered on the origin with one full UV tile
// per face. The cross product of each face's first two edges points out
// of the cube.
func Cube() *Mesh {
	m := &Mesh{
		UVs: [][2]float64{{0, 1}, {0, 0}, {1, 0}, {1, 1}},
	}
	faces := [6][4]mathutil.Vec3{
		{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}, // front (-Z)
		{{1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}},     // back (+Z)
		{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, // left (-X)
		{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}},     // right (+X)
		{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},     // top (+Y)
		{{-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {1, -1, 1}}, // bottom (-Y)
	}
	for _, f := range faces {
		base := len(m.Verts)
		m.Verts = append(m.Verts, f[0], f[1], f[2], f[3])
		m.Faces = append(m.Faces, Face{
			Polygon: 4,
			VI:      [4]int{base, base + 1, base + 2, base + 3},
			TI:      [4]int{0, 1, 2, 3},
		})
	}
	return m
}

// Triangles calls fn for every triangle of the mesh as vertex and UV
// index triples.
func (m *Mesh) Triangles(fn func(vi, ti [3]int)) {
	for _, f := range m.Faces {
		fn([3]int{f.VI[0], f.VI[1], f.VI[2]}, [3]int{f.TI[0], f.TI[1], f.TI[2]})
		if f.Polygon == 4 {
			fn([3]int{f.VI[0], f.VI[2], f.VI[3]}, [3]int{f.TI[0], f.TI[2], f.TI[3]})
		}
	}
}
