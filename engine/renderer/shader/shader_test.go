package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver/drivertest"
)

const goodVertexSrc = "#version 410 core\nvoid main() { gl_Position = vec4(0.0); }\n"

func TestCompileSuccess(t *testing.T) {
	rec := drivertest.NewRecorder()

	s, err := Compile(rec, FromString("vert", goodVertexSrc), StageVertex)
	require.NoError(t, err)
	require.NotZero(t, s.ID())
	assert.Equal(t, StageVertex, s.Stage())

	state := rec.Shaders[s.ID()]
	require.NotNil(t, state)
	assert.Equal(t, driver.StageVertex, state.Stage)
	assert.Equal(t, goodVertexSrc, state.Source)
	assert.False(t, state.Deleted)
}

func TestCompileStageMapping(t *testing.T) {
	rec := drivertest.NewRecorder()

	frag, err := Compile(rec, FromString("frag", "void main() {}"), StageFragment)
	require.NoError(t, err)
	assert.Equal(t, driver.StageFragment, rec.Shaders[frag.ID()].Stage)
}

func TestCompileFailureDestroysShaderAndCarriesLog(t *testing.T) {
	rec := drivertest.NewRecorder()
	rec.CompileFunc = func(src string, stage driver.Stage) (bool, string) {
		if strings.Contains(src, "syntax error") {
			return false, "0:1(1): error: syntax error, unexpected IDENTIFIER"
		}
		return true, ""
	}

	s, err := Compile(rec, FromString("broken.glsl", "syntax error here"), StageFragment)
	require.Error(t, err)
	assert.Nil(t, s)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, StageFragment, compileErr.Stage)
	assert.Equal(t, "broken.glsl", compileErr.Name)
	assert.NotEmpty(t, compileErr.Log)
	assert.Contains(t, compileErr.Error(), "fragment")
	assert.Contains(t, compileErr.Error(), "syntax error")

	// The partially created shader object must not leak.
	require.Len(t, rec.Shaders, 1)
	for _, state := range rec.Shaders {
		assert.True(t, state.Deleted)
	}
}

func TestShaderDestroy(t *testing.T) {
	rec := drivertest.NewRecorder()

	s, err := Compile(rec, FromString("vert", goodVertexSrc), StageVertex)
	require.NoError(t, err)

	id := s.ID()
	s.Destroy(rec)
	assert.Zero(t, s.ID())
	assert.True(t, rec.Shaders[id].Deleted)

	// Destroy is idempotent.
	s.Destroy(rec)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex", StageVertex.String())
	assert.Equal(t, "fragment", StageFragment.String())
	assert.Equal(t, "unknown", Stage(42).String())
}
