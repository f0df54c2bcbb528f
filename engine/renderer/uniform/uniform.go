// Package uniform resolves named parameter slots inside linked programs and
// exposes typed setters for them.
package uniform

import (
	"fmt"

	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
	"github.com/Carmen-Shannon/oxygl/engine/renderer/shader"
)

// LookupError reports a uniform name that is not present in the linked
// program. Uniforms that the shader compiler proves unused are stripped by
// the driver and also report as absent.
type LookupError struct {
	// Name is the requested uniform name.
	Name string

	// Program is the identifier of the program the lookup ran against.
	Program uint32
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("uniform %q not found in program %d", e.Name, e.Program)
}

// Handle is a resolved uniform location scoped to one specific program
// identifier. It is a plain value, never explicitly destroyed, and stays
// valid for the remainder of that program's lifetime. If the owning program
// is destroyed or replaced the handle is stale; detecting that is the
// caller's responsibility.
type Handle struct {
	program  uint32
	location int32
}

// Resolve queries the location of a named uniform inside a linked program.
//
// Parameters:
//   - ctx: the driver context
//   - program: the linked program to resolve against
//   - name: the uniform name as written in the shader source
//
// Returns:
//   - Handle: the resolved handle, reusable for the program's lifetime
//   - error: *LookupError if the driver reports the name as absent
func Resolve(ctx driver.Context, program *shader.Program, name string) (Handle, error) {
	location := ctx.UniformLocation(program.ID(), name)
	if location == -1 {
		return Handle{}, &LookupError{Name: name, Program: program.ID()}
	}
	return Handle{program: program.ID(), location: location}, nil
}

// Program retrieves the identifier of the program this handle was resolved
// against.
//
// Returns:
//   - uint32: the owning program identifier
func (h Handle) Program() uint32 {
	return h.program
}

// Location retrieves the resolved uniform location.
//
// Returns:
//   - int32: the location inside the owning program
func (h Handle) Location() int32 {
	return h.location
}

// Set1f writes a scalar float to the uniform. Only meaningful while the
// owning program is the context-wide current one; the handle does not
// verify this, and a write issued under a different active program lands in
// that program's location instead.
//
// Parameters:
//   - ctx: the driver context
//   - v: the value to write
func (h Handle) Set1f(ctx driver.Context, v float32) {
	ctx.Uniform1f(h.location, v)
}

// Set2f writes a 2-component float vector to the uniform. Same activation
// precondition as Set1f.
//
// Parameters:
//   - ctx: the driver context
//   - x, y: the component values to write
func (h Handle) Set2f(ctx driver.Context, x, y float32) {
	ctx.Uniform2f(h.location, x, y)
}
