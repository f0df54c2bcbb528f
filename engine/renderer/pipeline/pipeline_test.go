package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver/drivertest"
	"github.com/Carmen-Shannon/oxygl/engine/renderer/shader"
)

const (
	vertSrc = "#version 410 core\nvoid main() { gl_Position = vec4(0.0); }\n"
	fragSrc = "#version 410 core\nout vec4 frag_color;\nvoid main() { frag_color = vec4(1.0); }\n"
)

func newTestPipeline(t *testing.T, rec *drivertest.Recorder) Pipeline {
	t.Helper()
	p, err := NewPipeline(rec,
		WithVertexSource(shader.FromString("vert", vertSrc)),
		WithFragmentSource(shader.FromString("frag", fragSrc)),
	)
	require.NoError(t, err)
	return p
}

func TestNewPipelineBuildsAndActivates(t *testing.T) {
	rec := drivertest.NewRecorder()
	p := newTestPipeline(t, rec)

	require.NotNil(t, p.Program())
	assert.NotZero(t, p.Program().ID())
	assert.Equal(t, p.Program().ID(), rec.CurrentProgram())
}

func TestNewPipelineRequiresBothStages(t *testing.T) {
	rec := drivertest.NewRecorder()
	_, err := NewPipeline(rec, WithVertexSource(shader.FromString("vert", vertSrc)))
	require.Error(t, err)
}

func TestBuildReleasesStageObjects(t *testing.T) {
	rec := drivertest.NewRecorder()
	newTestPipeline(t, rec)

	// The linked program owns the executable; the compiled stage objects
	// must all have been released after the build.
	for id, state := range rec.Shaders {
		assert.True(t, state.Deleted, "shader %d leaked", id)
	}
}

func TestRebuildSwapsPrograms(t *testing.T) {
	rec := drivertest.NewRecorder()
	p := newTestPipeline(t, rec)
	oldID := p.Program().ID()

	require.NoError(t, p.Rebuild(rec))

	newID := p.Program().ID()
	assert.NotEqual(t, oldID, newID)
	assert.Equal(t, newID, rec.CurrentProgram())
	assert.True(t, rec.Programs[oldID].Deleted)
	assert.False(t, rec.Programs[newID].Deleted)
}

func TestRebuildCompileFailureKeepsPreviousProgram(t *testing.T) {
	rec := drivertest.NewRecorder()
	p := newTestPipeline(t, rec)
	oldID := p.Program().ID()

	rec.CompileFunc = func(src string, stage driver.Stage) (bool, string) {
		if stage == driver.StageFragment {
			return false, "0:3(1): error: syntax error"
		}
		return true, ""
	}

	err := p.Rebuild(rec)
	require.Error(t, err)
	var compileErr *shader.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.NotEmpty(t, compileErr.Log)

	// The previous, still-functional program stays live and active.
	assert.Equal(t, oldID, p.Program().ID())
	assert.Equal(t, oldID, rec.CurrentProgram())
	assert.False(t, rec.Programs[oldID].Deleted)
}

func TestRebuildLinkFailureKeepsPreviousProgram(t *testing.T) {
	rec := drivertest.NewRecorder()
	p := newTestPipeline(t, rec)
	oldID := p.Program().ID()

	rec.LinkFunc = func(attached []uint32) (bool, string) {
		return false, "error: entry point mismatch"
	}

	err := p.Rebuild(rec)
	require.Error(t, err)
	var linkErr *shader.LinkError
	require.ErrorAs(t, err, &linkErr)

	assert.Equal(t, oldID, p.Program().ID())
	assert.Equal(t, oldID, rec.CurrentProgram())
	assert.False(t, rec.Programs[oldID].Deleted)
}

func TestRebuildSourceErrorKeepsPreviousProgram(t *testing.T) {
	rec := drivertest.NewRecorder()

	calls := 0
	p, err := NewPipeline(rec,
		WithVertexSourceLoader(func() (shader.Source, error) {
			calls++
			if calls > 1 {
				return shader.Source{}, assert.AnError
			}
			return shader.FromString("vert", vertSrc), nil
		}),
		WithFragmentSource(shader.FromString("frag", fragSrc)),
	)
	require.NoError(t, err)
	oldID := p.Program().ID()

	require.Error(t, p.Rebuild(rec))
	assert.Equal(t, oldID, p.Program().ID())
	assert.False(t, rec.Programs[oldID].Deleted)
}

func TestRebuildReloadsFromDisk(t *testing.T) {
	rec := drivertest.NewRecorder()

	loaded := []string{}
	p, err := NewPipeline(rec,
		WithVertexSourceLoader(func() (shader.Source, error) {
			loaded = append(loaded, "vert")
			return shader.FromString("vert", vertSrc), nil
		}),
		WithFragmentSourceLoader(func() (shader.Source, error) {
			loaded = append(loaded, "frag")
			return shader.FromString("frag", fragSrc), nil
		}),
	)
	require.NoError(t, err)

	require.NoError(t, p.Rebuild(rec))
	assert.Equal(t, []string{"vert", "frag", "vert", "frag"}, loaded)
}

func TestWatchPaths(t *testing.T) {
	p := &pipeline{}
	WithVertexSourcePath("shaders/vert.glsl")(p)
	WithFragmentSourcePath("shaders/frag.glsl")(p)
	assert.Equal(t, []string{"shaders/vert.glsl", "shaders/frag.glsl"}, p.WatchPaths())

	q := &pipeline{}
	WithVertexSource(shader.FromString("vert", vertSrc))(q)
	WithFragmentSource(shader.FromString("frag", fragSrc))(q)
	assert.Empty(t, q.WatchPaths())
}

func TestDestroy(t *testing.T) {
	rec := drivertest.NewRecorder()
	p := newTestPipeline(t, rec)
	id := p.Program().ID()

	p.Destroy(rec)
	assert.Nil(t, p.Program())
	assert.True(t, rec.Programs[id].Deleted)
	assert.Zero(t, rec.CurrentProgram())
}

func TestCompileErrorMentionsStage(t *testing.T) {
	rec := drivertest.NewRecorder()
	rec.CompileFunc = func(src string, stage driver.Stage) (bool, string) {
		return false, "error: undeclared identifier"
	}

	_, err := NewPipeline(rec,
		WithVertexSource(shader.FromString("vert", vertSrc)),
		WithFragmentSource(shader.FromString("frag", fragSrc)),
	)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "vertex"))
}
