package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
)

// LinkError reports a set of compiled shaders that failed to link into an
// executable program. Like CompileError it is recoverable; the caller keeps
// whatever program was previously live.
type LinkError struct {
	// Log is the full driver diagnostic text.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", strings.TrimSpace(e.Log))
}

// Program owns one linked, executable GPU program object. The attached
// shader objects may be destroyed independently after a successful link
// without invalidating the program.
type Program struct {
	id uint32
}

// Link links a set of compiled shader-stage objects into an executable
// program. On link failure the partially created program object is destroyed
// before returning, so a failed link never leaks; the input shaders are left
// untouched either way and remain owned by the caller.
//
// Parameters:
//   - ctx: the driver context
//   - shaders: the compiled shader stages to link
//
// Returns:
//   - *Program: the owning handle, identifier guaranteed non-zero
//   - error: *LinkError carrying the driver log on failure
func Link(ctx driver.Context, shaders ...*Shader) (*Program, error) {
	id := ctx.CreateProgram()
	for _, s := range shaders {
		ctx.AttachShader(id, s.ID())
	}
	ctx.LinkProgram(id)

	if !ctx.ProgramLinked(id) {
		log := ctx.ProgramInfoLog(id)
		ctx.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}

	return &Program{id: id}, nil
}

// ID retrieves the GPU program identifier (0 after Destroy).
//
// Returns:
//   - uint32: the program identifier
func (p *Program) ID() uint32 {
	return p.id
}

// Activate makes this program the context-wide current program. This is a
// global side effect: subsequent draw calls and uniform setters operate on
// this program until another one is activated.
//
// Parameters:
//   - ctx: the driver context
func (p *Program) Activate(ctx driver.Context) {
	ctx.UseProgram(p.id)
}

// Destroy releases the GPU program object. If the program is the current
// one, the current-program register is reset to "none" first so the delete
// never happens while bound. Subsequent calls are no-ops.
//
// Parameters:
//   - ctx: the driver context
func (p *Program) Destroy(ctx driver.Context) {
	if p.id == 0 {
		return
	}
	if ctx.CurrentProgram() == p.id {
		ctx.UseProgram(0)
	}
	ctx.DeleteProgram(p.id)
	p.id = 0
}
