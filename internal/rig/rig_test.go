package rig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rig-renderer/internal/input"
	"rig-renderer/internal/mathutil"
)

const eps = 1e-9

func TestRestPose(t *testing.T) {
	r := New()
	want := map[PartID]mathutil.Vec3{
		Root:  {0, 0, 0},
		Spine: {0, 4.5, 0},
		Chest: {0, 4.5, 0},
		Head:  {0, 9, 0},
		ArmL:  {-4.5, 4.5, 0},
		ArmR:  {4.5, 4.5, 0},
		Hip:   {0, 0, 0},
		LegL:  {-3, -4.5, 0},
		LegR:  {3, -4.5, 0},
	}
	for id, pos := range want {
		got := r.Part(id).Position()
		assert.True(t, got.ApproxEqual(pos, eps), "%v: got %v want %v", id, got, pos)
	}
}

func TestGraphMatchesLayout(t *testing.T) {
	r := New()
	g := r.Graph()
	require.Equal(t, PartCount, g.Len())
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, PartID(i).String(), g.Name(i))
	}
	assert.Equal(t, []int{int(Head), int(ArmL), int(ArmR)}, g.Children(int(Chest)))
	assert.Equal(t, []int{int(LegL), int(LegR)}, g.Children(int(Hip)))
	assert.Equal(t, 0, g.Depth(int(Root)))
	assert.Equal(t, 3, g.Depth(int(LegL)))
	assert.Equal(t, 3, g.Depth(int(Head)))
}

func TestMoveLeftCarriesWholeBody(t *testing.T) {
	r := New()
	for i := 0; i < 5; i++ {
		r.Update(input.NewSet(input.KeyLeft))
	}
	assert.InDelta(t, -1.0, r.Part(Root).Translation[0], eps)
	assert.InDelta(t, -1.0-4.5, r.Part(ArmL).Position()[0], eps)
	assert.InDelta(t, -1.0+3, r.Part(LegR).Position()[0], eps)
}

func TestLeftWinsOverRight(t *testing.T) {
	r := New()
	r.Update(input.NewSet(input.KeyLeft, input.KeyRight))
	assert.InDelta(t, -MoveSpeed, r.Part(Root).Translation[0], eps)
}

func TestChestRotationSwingsArmsOnly(t *testing.T) {
	r := New()
	frames := int(math.Round((math.Pi / 2) / ChestRotSpeed))
	for i := 0; i < frames; i++ {
		r.Update(input.NewSet(input.KeyI))
	}
	angle := float64(frames) * ChestRotSpeed
	assert.InDelta(t, angle, r.Part(Chest).Rotation[1], eps)

	// ArmR sits at +4.5 X on the chest; rotating +angle around Y moves it to
	// (4.5cos, _, -4.5sin).
	arm := r.Part(ArmR).Position()
	assert.InDelta(t, 4.5*math.Cos(angle), arm[0], eps)
	assert.InDelta(t, -4.5*math.Sin(angle), arm[2], eps)

	// The head is on the rotation axis and the legs hang off the hip.
	assert.True(t, r.Part(Head).Position().ApproxEqual(mathutil.Vec3{0, 9, 0}, eps))
	assert.True(t, r.Part(LegL).Position().ApproxEqual(mathutil.Vec3{-3, -4.5, 0}, eps))
}

func TestHipRotation(t *testing.T) {
	r := New()
	r.Update(input.NewSet(input.KeyJ, input.KeyK))
	assert.InDelta(t, -HipRotSpeed, r.Part(Hip).Rotation[1], eps)
	r.Update(input.NewSet(input.KeyK))
	r.Update(input.NewSet(input.KeyK))
	assert.InDelta(t, HipRotSpeed, r.Part(Hip).Rotation[1], eps)
	assert.Zero(t, r.Part(Chest).Rotation[1])
}

func TestUChestNegative(t *testing.T) {
	r := New()
	r.Update(input.NewSet(input.KeyU, input.KeyI))
	assert.InDelta(t, -ChestRotSpeed, r.Part(Chest).Rotation[1], eps)
}

func TestNoInputIsStable(t *testing.T) {
	r := New()
	before := r.Snapshot()
	r.Update(input.Set(0))
	assert.Equal(t, before, r.Snapshot())
}

func TestReset(t *testing.T) {
	r := New()
	r.Update(input.NewSet(input.KeyRight, input.KeyI, input.KeyK))
	r.Reset()
	assert.Equal(t, New().Snapshot(), r.Snapshot())
	assert.Same(t, r.Part(Chest), r.Part(Head).Parent)
}

func TestDrawable(t *testing.T) {
	r := New()
	d := r.Drawable()
	assert.Equal(t, []PartID{Chest, Head, ArmL, ArmR, Hip, LegL, LegR}, d)
	d[0] = Root
	assert.Equal(t, Chest, r.Drawable()[0])
}

func TestParsePartID(t *testing.T) {
	id, err := ParsePartID("legl")
	require.NoError(t, err)
	assert.Equal(t, LegL, id)
	_, err = ParsePartID("tail")
	assert.Error(t, err)
	assert.Equal(t, "PartID(42)", PartID(42).String())
}

func TestSnapshotParents(t *testing.T) {
	s := New().Snapshot()
	assert.Empty(t, s[Root].Parent)
	assert.Equal(t, "Hip", s[LegR].Parent)
	assert.Equal(t, "Chest", s[Head].Parent)
}
