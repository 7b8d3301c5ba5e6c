// Package transform holds the per-node scale/rotation/translation state
// of a transform hierarchy and its cached world matrix.
package transform

import "rig-renderer/internal/mathutil"

// WorldTransform is one node of a transform hierarchy.
// Rotation is Euler radians around X, Y and Z.
type WorldTransform struct {
	Scale       mathutil.Vec3
	Rotation    mathutil.Vec3
	Translation mathutil.Vec3

	// Parent is nil for a root node. Its World must be current before
	// UpdateMatrix is called on this node.
	Parent *WorldTransform

	// World is the cached result of the last UpdateMatrix.
	World mathutil.Mat4
}

// Initialize fills a zero scale with {1,1,1} and computes World.
func (t *WorldTransform) Initialize() {
	if t.Scale == (mathutil.Vec3{}) {
		t.Scale = mathutil.Vec3{1, 1, 1}
	}
	t.UpdateMatrix()
}

// Local returns T · R · S where R applies Z, then X, then Y.
func (t *WorldTransform) Local() mathutil.Mat4 {
	rs := mathutil.Mat4Mul(
		mathutil.FromMat3Translation(mathutil.EulerZXY(t.Rotation), mathutil.Vec3{}),
		mathutil.Mat4Scale(t.Scale),
	)
	return mathutil.Mat4Mul(mathutil.Mat4Translate(t.Translation), rs)
}

// UpdateMatrix recomputes World from the local transform and the parent's
// cached World.
func (t *WorldTransform) UpdateMatrix() {
	local := t.Local()
	if t.Parent != nil {
		t.World = mathutil.Mat4Mul(t.Parent.World, local)
		return
	}
	t.World = local
}

// Position returns the world-space origin of the node.
func (t *WorldTransform) Position() mathutil.Vec3 {
	return t.World.Translation()
}
