package driver

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glContext is the go-gl implementation of the Context interface.
// It shadows the context-wide current-binding register (buffer per target,
// vertex array, program) so components can observe binding order without a
// driver round trip.
type glContext struct {
	boundBuffers     map[Target]uint32
	boundVertexArray uint32
	currentProgram   uint32
}

var _ Context = &glContext{}

// NewGLContext initializes the go-gl function pointers against the rendering
// context current on the calling thread and returns a Context backed by it.
// The window must have made its OpenGL context current first; the returned
// Context must only be used from that same thread.
//
// Returns:
//   - Context: the driver context
//   - error: error if the OpenGL bindings could not be initialized
func NewGLContext() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL bindings: %w", err)
	}
	return &glContext{
		boundBuffers: make(map[Target]uint32),
	}, nil
}

func (c *glContext) CreateShader(stage Stage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (c *glContext) ShaderSource(shader uint32, src string) {
	// gl.Strs requires every string to be NUL terminated.
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (c *glContext) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *glContext) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *glContext) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (c *glContext) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *glContext) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *glContext) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *glContext) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *glContext) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *glContext) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (c *glContext) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *glContext) UseProgram(program uint32) {
	gl.UseProgram(program)
	c.currentProgram = program
}

func (c *glContext) CurrentProgram() uint32 {
	return c.currentProgram
}

func (c *glContext) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (c *glContext) BindBuffer(target Target, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
	c.boundBuffers[target] = buffer
}

func (c *glContext) BufferData(target Target, data []byte, usage Usage) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(uint32(target), len(data), ptr, uint32(usage))
}

func (c *glContext) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (c *glContext) BoundBuffer(target Target) uint32 {
	return c.boundBuffers[target]
}

func (c *glContext) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (c *glContext) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
	c.boundVertexArray = array
}

func (c *glContext) EnableVertexAttrib(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

func (c *glContext) VertexAttribPointer(slot uint32, components int32, typ AttribType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(slot, components, uint32(typ), normalized, stride, offset)
}

func (c *glContext) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (c *glContext) BoundVertexArray() uint32 {
	return c.boundVertexArray
}

func (c *glContext) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *glContext) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (c *glContext) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (c *glContext) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *glContext) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *glContext) Clear(mask uint32) {
	gl.Clear(mask)
}

func (c *glContext) DrawElements(mode Mode, count int32, typ AttribType) {
	gl.DrawElements(uint32(mode), count, uint32(typ), gl.PtrOffset(0))
}
