package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
)

// Stage identifies the GPU pipeline stage a compiled shader targets.
type Stage int

const (
	// StageVertex is the vertex shader stage, used for per-vertex processing.
	StageVertex Stage = iota

	// StageFragment is the fragment shader stage, used for per-pixel shading
	// in pair with a vertex shader.
	StageFragment
)

// String returns the stage name as used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// glEnum maps the stage to the driver-level shader stage enum.
func (s Stage) glEnum() driver.Stage {
	if s == StageFragment {
		return driver.StageFragment
	}
	return driver.StageVertex
}

// CompileError reports a shader source that failed to compile.
// It carries the full driver diagnostic log so the caller can inspect the
// failure and retry with corrected input; compilation failure is always
// recoverable and never fatal to the core.
type CompileError struct {
	// Stage is the pipeline stage of the failed shader.
	Stage Stage

	// Name is the source name (file path or label) if one was provided.
	Name string

	// Log is the full driver diagnostic text.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader %q: %s", e.Stage, e.Name, strings.TrimSpace(e.Log))
}

// Shader owns one compiled GPU shader-stage object. The identifier is
// non-zero for a live shader; Destroy releases the object and resets the
// identifier to the zero sentinel.
type Shader struct {
	id    uint32
	stage Stage
}

// Compile compiles one shader stage from source into a GPU-owned compiled
// shader object. On compile failure the partially created shader object is
// destroyed before returning, so a failed compile never leaks.
//
// Parameters:
//   - ctx: the driver context
//   - src: the shader source
//   - stage: the pipeline stage to compile for
//
// Returns:
//   - *Shader: the owning handle, identifier guaranteed non-zero
//   - error: *CompileError carrying the driver log on failure
func Compile(ctx driver.Context, src Source, stage Stage) (*Shader, error) {
	id := ctx.CreateShader(stage.glEnum())
	ctx.ShaderSource(id, src.Text())
	ctx.CompileShader(id)

	if !ctx.ShaderCompiled(id) {
		log := ctx.ShaderInfoLog(id)
		ctx.DeleteShader(id)
		return nil, &CompileError{Stage: stage, Name: src.Name(), Log: log}
	}

	return &Shader{id: id, stage: stage}, nil
}

// ID retrieves the GPU shader identifier (0 after Destroy).
//
// Returns:
//   - uint32: the shader identifier
func (s *Shader) ID() uint32 {
	return s.id
}

// Stage retrieves the pipeline stage this shader was compiled for.
//
// Returns:
//   - Stage: the shader stage
func (s *Shader) Stage() Stage {
	return s.stage
}

// Destroy releases the GPU shader object. Safe to call after the shader has
// been attached and linked into a program; the linked program keeps its own
// copy of the executable. Subsequent calls are no-ops.
//
// Parameters:
//   - ctx: the driver context
func (s *Shader) Destroy(ctx driver.Context) {
	if s.id == 0 {
		return
	}
	ctx.DeleteShader(s.id)
	s.id = 0
}
