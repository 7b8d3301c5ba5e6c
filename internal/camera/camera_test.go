package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rig-renderer/internal/mathutil"
)

func project(vp *ViewProjection, p mathutil.Vec3) (x, y, z float64) {
	cx, cy, cz, w := vp.ViewProjection().MulVec4(p)
	return cx / w, cy / w, cz / w
}

func TestTargetProjectsToCenter(t *testing.T) {
	vp := New()
	x, y, z := project(vp, vp.Target)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
	assert.True(t, z > -1 && z < 1, "depth %v outside clip range", z)
}

func TestHandedness(t *testing.T) {
	vp := New()
	xr, _, _ := project(vp, mathutil.Vec3{5, 0, 0})
	_, yu, _ := project(vp, mathutil.Vec3{0, 5, 0})
	assert.Greater(t, xr, 0.0, "+X should be right of center")
	assert.Greater(t, yu, 0.0, "+Y should be above center")

	// Points further along +Z are further from an eye at -Z.
	_, _, zNear := project(vp, mathutil.Vec3{0, 0, -10})
	_, _, zFar := project(vp, mathutil.Vec3{0, 0, 10})
	assert.Less(t, zNear, zFar)
}

func TestViewMovesWithEye(t *testing.T) {
	vp := New()
	vp.Eye = mathutil.Vec3{10, 0, -50}
	vp.Target = mathutil.Vec3{10, 0, 0}
	vp.UpdateMatrix()
	x, _, _ := project(vp, mathutil.Vec3{10, 0, 0})
	assert.InDelta(t, 0, x, 1e-9)
}

func TestViewIsRigid(t *testing.T) {
	vp := New()
	// Distance from the eye is preserved by the view transform.
	p := vp.View.MulPoint(vp.Target)
	assert.InDelta(t, 50, p.Len(), 1e-9)
}
