package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rig-renderer/internal/mathutil"
)

func buildChain(t *testing.T) *Graph {
	t.Helper()
	var g Graph
	root, err := g.Add("root", NoParent)
	require.NoError(t, err)
	a, err := g.Add("a", root)
	require.NoError(t, err)
	_, err = g.Add("b", a)
	require.NoError(t, err)
	_, err = g.Add("c", root)
	require.NoError(t, err)
	return &g
}

func TestAddRejectsUnknownParent(t *testing.T) {
	var g Graph
	_, err := g.Add("orphan", 3)
	assert.ErrorIs(t, err, ErrUnknownParent)
}

func TestAddRejectsDuplicateName(t *testing.T) {
	g := buildChain(t)
	_, err := g.Add("a", NoParent)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestStructure(t *testing.T) {
	g := buildChain(t)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []int{1, 3}, g.Children(0))
	assert.Equal(t, 2, g.Depth(2))
	assert.Equal(t, NoParent, g.Parent(0))
	i, ok := g.Index("b")
	assert.True(t, ok)
	assert.Equal(t, "b", g.Name(i))
	assert.Equal(t, []int{0, 1, 2, 3}, g.Order())
}

func TestParentPrecedesChild(t *testing.T) {
	g := buildChain(t)
	for i := 0; i < g.Len(); i++ {
		if p := g.Parent(i); p != NoParent {
			assert.Less(t, p, i)
		}
	}
}

func TestUpdateComposesTranslations(t *testing.T) {
	g := buildChain(t)
	locals := []mathutil.Mat4{
		mathutil.Mat4Translate(mathutil.Vec3{1, 0, 0}),
		mathutil.Mat4Translate(mathutil.Vec3{0, 2, 0}),
		mathutil.Mat4Translate(mathutil.Vec3{0, 0, 3}),
		mathutil.Mat4Translate(mathutil.Vec3{-1, 0, 0}),
	}
	worlds, err := g.Update(locals)
	require.NoError(t, err)
	assert.Equal(t, mathutil.Vec3{1, 2, 3}, worlds[2].Translation())
	assert.Equal(t, mathutil.Vec3{0, 0, 0}, worlds[3].Translation())
}

func TestUpdateCountMismatch(t *testing.T) {
	g := buildChain(t)
	_, err := g.Update(make([]mathutil.Mat4, 2))
	assert.ErrorIs(t, err, ErrLocalCount)
}
