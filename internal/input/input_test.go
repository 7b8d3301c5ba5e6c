package input

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	k, err := ParseKey(" LEFT ")
	require.NoError(t, err)
	assert.Equal(t, KeyLeft, k)

	_, err = ParseKey("space")
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	s := NewSet(KeyU, KeyRight)
	assert.True(t, s.Pressed(KeyU))
	assert.True(t, s.Pressed(KeyRight))
	assert.False(t, s.Pressed(KeyLeft))
	assert.Equal(t, "[right u]", s.String())

	var zero Set
	for _, k := range Keys() {
		assert.False(t, zero.Pressed(k))
	}
}

func TestScript(t *testing.T) {
	s, err := ParseScript([]byte(`
- frames: 2
  keys: [left, u]
- frames: 3
- frames: 1
  keys: [k]
`))
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, NewSet(KeyLeft, KeyU), s.At(0))
	assert.Equal(t, NewSet(KeyLeft, KeyU), s.At(1))
	assert.Equal(t, Set(0), s.At(2))
	assert.Equal(t, NewSet(KeyK), s.At(5))
	assert.Equal(t, Set(0), s.At(6))
	assert.Equal(t, Set(0), s.At(-1))
}

func TestScriptRejectsBadSteps(t *testing.T) {
	_, err := NewScript([]Step{{Frames: 0}})
	assert.Error(t, err)

	_, err = NewScript([]Step{{Frames: 1, Keys: []string{"x"}}})
	assert.Error(t, err)

	_, err = ParseScript([]byte("frames: [oops"))
	assert.Error(t, err)
}

func TestSampleScriptLoads(t *testing.T) {
	s, err := LoadScript(filepath.Join("..", "..", "scripts", "turn.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 70, s.Len())
	assert.Equal(t, NewSet(KeyRight, KeyI), s.At(0))
	assert.Equal(t, Set(0), s.At(35))
	assert.Equal(t, NewSet(KeyLeft, KeyJ), s.At(69))
}
