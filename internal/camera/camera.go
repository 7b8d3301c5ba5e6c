// Package camera holds the view/projection state used to draw the scene.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"rig-renderer/internal/mathutil"
)

// ViewProjection is a perspective camera in left-handed world space
// (+X right, +Y up, +Z into the screen).
type ViewProjection struct {
	Eye    mathutil.Vec3
	Target mathutil.Vec3
	Up     mathutil.Vec3

	FovAngleY   float64 // radians
	AspectRatio float64
	NearZ       float64
	FarZ        float64

	View       mathutil.Mat4
	Projection mathutil.Mat4
}

// New returns a camera with default settings, already initialized.
func New() *ViewProjection {
	vp := &ViewProjection{
		Eye:         mathutil.Vec3{0, 0, -50},
		Target:      mathutil.Vec3{0, 0, 0},
		Up:          mathutil.Vec3{0, 1, 0},
		FovAngleY:   mathutil.Deg2Rad(45),
		AspectRatio: 16.0 / 9.0,
		NearZ:       0.1,
		FarZ:        1000,
	}
	vp.Initialize()
	return vp
}

// Initialize computes View and Projection from the current fields.
func (vp *ViewProjection) Initialize() {
	vp.UpdateMatrix()
}

// UpdateMatrix recomputes View and Projection.
//
// mathgl builds right-handed matrices, so world points are mirrored
// through Z before the look-at and the eye/target are mirrored to match.
func (vp *ViewProjection) UpdateMatrix() {
	eye := mgl64.Vec3{vp.Eye[0], vp.Eye[1], -vp.Eye[2]}
	target := mgl64.Vec3{vp.Target[0], vp.Target[1], -vp.Target[2]}
	up := mgl64.Vec3{vp.Up[0], vp.Up[1], -vp.Up[2]}
	view := fromMGL(mgl64.LookAtV(eye, target, up))
	vp.View = mathutil.Mat4Mul(view, mathutil.FlipZ)
	vp.Projection = fromMGL(mgl64.Perspective(vp.FovAngleY, vp.AspectRatio, vp.NearZ, vp.FarZ))
}

// ViewProjection returns Projection × View.
func (vp *ViewProjection) ViewProjection() mathutil.Mat4 {
	return mathutil.Mat4Mul(vp.Projection, vp.View)
}

// fromMGL converts mathgl's column-major storage to row-major.
func fromMGL(m mgl64.Mat4) mathutil.Mat4 {
	var out mathutil.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m.At(r, c)
		}
	}
	return out
}
