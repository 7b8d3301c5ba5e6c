// Package rig builds the fixed nine-part character rig and drives it from
// keyboard input.
package rig

import (
	"fmt"

	"rig-renderer/internal/hierarchy"
	"rig-renderer/internal/input"
	"rig-renderer/internal/mathutil"
	"rig-renderer/internal/transform"
)

// Per-frame speeds.
const (
	MoveSpeed     = 0.2  // root translation, units/frame
	ChestRotSpeed = 0.05 // radians/frame
	HipRotSpeed   = 0.05 // radians/frame
)

type partDef struct {
	id     PartID
	parent PartID
	offset mathutil.Vec3
}

// layout lists every part after its parent. Root has no parent.
var layout = [PartCount]partDef{
	{Root, -1, mathutil.Vec3{}},
	{Spine, Root, mathutil.Vec3{0, 4.5, 0}},
	{Chest, Spine, mathutil.Vec3{0, 0, 0}},
	{Head, Chest, mathutil.Vec3{0, 4.5, 0}},
	{ArmL, Chest, mathutil.Vec3{-4.5, 0, 0}},
	{ArmR, Chest, mathutil.Vec3{4.5, 0, 0}},
	{Hip, Spine, mathutil.Vec3{0, -4.5, 0}},
	{LegL, Hip, mathutil.Vec3{-3, -4.5, 0}},
	{LegR, Hip, mathutil.Vec3{3, -4.5, 0}},
}

// drawable are the parts issued to the model pipeline. Root and Spine
// are pivots only.
var drawable = []PartID{Chest, Head, ArmL, ArmR, Hip, LegL, LegR}

// Rig is the character's transform tree.
type Rig struct {
	parts  [PartCount]transform.WorldTransform
	graph  hierarchy.Graph
	locals []mathutil.Mat4
	worlds []mathutil.Mat4
}

// New builds and initializes the rig in its rest pose.
func New() *Rig {
	r := &Rig{
		locals: make([]mathutil.Mat4, PartCount),
		worlds: make([]mathutil.Mat4, PartCount),
	}
	for _, d := range layout {
		parent := hierarchy.NoParent
		if d.parent >= 0 {
			parent = int(d.parent)
		}
		if _, err := r.graph.Add(d.id.String(), parent); err != nil {
			// layout is static; a failure here is a programming error.
			panic(fmt.Sprintf("rig: layout: %v", err))
		}
	}
	r.Reset()
	return r
}

// Reset returns every part to the rest pose.
func (r *Rig) Reset() {
	for _, d := range layout {
		p := &r.parts[d.id]
		*p = transform.WorldTransform{Translation: d.offset}
		if d.parent >= 0 {
			p.Parent = &r.parts[d.parent]
		}
		p.Initialize()
	}
}

// Part returns the transform of id. The pointer stays valid for the
// lifetime of the rig.
func (r *Rig) Part(id PartID) *transform.WorldTransform {
	return &r.parts[id]
}

// Graph returns the rig's hierarchy.
func (r *Rig) Graph() *hierarchy.Graph { return &r.graph }

// Drawable returns the parts that get a model drawn at them.
func (r *Rig) Drawable() []PartID {
	out := make([]PartID, len(drawable))
	copy(out, drawable)
	return out
}

// Update applies one frame of input and recomputes every world matrix.
func (r *Rig) Update(keys input.State) {
	var move mathutil.Vec3
	if keys.Pressed(input.KeyLeft) {
		move = mathutil.Vec3{-MoveSpeed, 0, 0}
	} else if keys.Pressed(input.KeyRight) {
		move = mathutil.Vec3{MoveSpeed, 0, 0}
	}
	root := &r.parts[Root]
	root.Translation = root.Translation.Add(move)

	if keys.Pressed(input.KeyU) {
		r.parts[Chest].Rotation[1] -= ChestRotSpeed
	} else if keys.Pressed(input.KeyI) {
		r.parts[Chest].Rotation[1] += ChestRotSpeed
	}

	if keys.Pressed(input.KeyJ) {
		r.parts[Hip].Rotation[1] -= HipRotSpeed
	} else if keys.Pressed(input.KeyK) {
		r.parts[Hip].Rotation[1] += HipRotSpeed
	}

	r.UpdateMatrices()
}

// UpdateMatrices recomputes every world matrix, parents first.
func (r *Rig) UpdateMatrices() {
	for i := range r.parts {
		r.locals[i] = r.parts[i].Local()
	}
	r.graph.UpdateInto(r.worlds, r.locals)
	for i := range r.parts {
		r.parts[i].World = r.worlds[i]
	}
}

// PartState is a read-only view of one part for dumps and manifests.
type PartState struct {
	Part        string        `json:"part" yaml:"part"`
	Parent      string        `json:"parent,omitempty" yaml:"parent,omitempty"`
	Translation mathutil.Vec3 `json:"translation" yaml:"translation"`
	Rotation    mathutil.Vec3 `json:"rotation" yaml:"rotation"`
	World       mathutil.Vec3 `json:"world" yaml:"world"`
}

// Snapshot returns the state of every part in PartID order.
func (r *Rig) Snapshot() []PartState {
	out := make([]PartState, PartCount)
	for _, d := range layout {
		p := &r.parts[d.id]
		s := PartState{
			Part:        d.id.String(),
			Translation: p.Translation,
			Rotation:    p.Rotation,
			World:       p.Position(),
		}
		if d.parent >= 0 {
			s.Parent = d.parent.String()
		}
		out[d.id] = s
	}
	return out
}
