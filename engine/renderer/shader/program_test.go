package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver/drivertest"
)

func compilePair(t *testing.T, rec *drivertest.Recorder) (*Shader, *Shader) {
	t.Helper()
	vert, err := Compile(rec, FromString("vert", goodVertexSrc), StageVertex)
	require.NoError(t, err)
	frag, err := Compile(rec, FromString("frag", "void main() {}"), StageFragment)
	require.NoError(t, err)
	return vert, frag
}

func TestLinkSuccess(t *testing.T) {
	rec := drivertest.NewRecorder()
	vert, frag := compilePair(t, rec)

	p, err := Link(rec, vert, frag)
	require.NoError(t, err)
	require.NotZero(t, p.ID())

	state := rec.Programs[p.ID()]
	require.NotNil(t, state)
	assert.Equal(t, []uint32{vert.ID(), frag.ID()}, state.Attached)
	assert.True(t, state.Linked)
}

func TestLinkFailureDestroysProgramAndCarriesLog(t *testing.T) {
	rec := drivertest.NewRecorder()
	vert, frag := compilePair(t, rec)
	rec.LinkFunc = func(attached []uint32) (bool, string) {
		return false, "error: varying v_color not written by vertex shader"
	}

	p, err := Link(rec, vert, frag)
	require.Error(t, err)
	assert.Nil(t, p)

	var linkErr *LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.NotEmpty(t, linkErr.Log)

	// The partially created program object must not leak, and the input
	// shaders stay owned by the caller.
	for _, state := range rec.Programs {
		assert.True(t, state.Deleted)
	}
	assert.False(t, rec.Shaders[vert.ID()].Deleted)
	assert.False(t, rec.Shaders[frag.ID()].Deleted)
}

func TestShadersMayBeDestroyedAfterLink(t *testing.T) {
	rec := drivertest.NewRecorder()
	vert, frag := compilePair(t, rec)

	p, err := Link(rec, vert, frag)
	require.NoError(t, err)

	vert.Destroy(rec)
	frag.Destroy(rec)
	assert.False(t, rec.Programs[p.ID()].Deleted)
	assert.True(t, rec.Programs[p.ID()].Linked)
}

func TestActivate(t *testing.T) {
	rec := drivertest.NewRecorder()
	vert, frag := compilePair(t, rec)

	p, err := Link(rec, vert, frag)
	require.NoError(t, err)

	p.Activate(rec)
	assert.Equal(t, p.ID(), rec.CurrentProgram())
}

func TestProgramDestroyUnbindsCurrentFirst(t *testing.T) {
	rec := drivertest.NewRecorder()
	vert, frag := compilePair(t, rec)

	p, err := Link(rec, vert, frag)
	require.NoError(t, err)
	id := p.ID()

	p.Activate(rec)
	p.Destroy(rec)

	assert.Zero(t, p.ID())
	assert.Zero(t, rec.CurrentProgram())
	assert.True(t, rec.Programs[id].Deleted)

	// Destroy is idempotent.
	p.Destroy(rec)
}

func TestProgramDestroyLeavesOtherProgramCurrent(t *testing.T) {
	rec := drivertest.NewRecorder()

	vert1, frag1 := compilePair(t, rec)
	p1, err := Link(rec, vert1, frag1)
	require.NoError(t, err)

	vert2, frag2 := compilePair(t, rec)
	p2, err := Link(rec, vert2, frag2)
	require.NoError(t, err)

	p2.Activate(rec)
	p1.Destroy(rec)
	assert.Equal(t, p2.ID(), rec.CurrentProgram())
}
