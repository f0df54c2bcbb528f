// Package driver defines the GPU driver boundary for the renderer. Every
// component that talks to OpenGL does so through an explicit Context handle
// rather than the ambient global GL state, so the bind-before-use ordering
// between components is visible at each call site.
package driver

// Stage is the GL shader stage enum passed to CreateShader.
type Stage uint32

const (
	// StageVertex is GL_VERTEX_SHADER.
	StageVertex Stage = 0x8B31

	// StageFragment is GL_FRAGMENT_SHADER.
	StageFragment Stage = 0x8B30
)

// Target is the GL buffer binding target enum.
type Target uint32

const (
	// TargetVertex is GL_ARRAY_BUFFER, the binding target for vertex data.
	TargetVertex Target = 0x8892

	// TargetIndex is GL_ELEMENT_ARRAY_BUFFER, the binding target for index data.
	TargetIndex Target = 0x8893
)

// Usage is the GL buffer usage hint enum passed to BufferData.
type Usage uint32

const (
	// UsageStaticDraw is GL_STATIC_DRAW, for data uploaded once and drawn many times.
	UsageStaticDraw Usage = 0x88E4

	// UsageDynamicDraw is GL_DYNAMIC_DRAW, for data expected to change across frames.
	UsageDynamicDraw Usage = 0x88E8
)

// AttribType is the GL component data type enum used for vertex attributes
// and index buffers.
type AttribType uint32

const (
	// TypeFloat is GL_FLOAT.
	TypeFloat AttribType = 0x1406

	// TypeUnsignedInt is GL_UNSIGNED_INT.
	TypeUnsignedInt AttribType = 0x1405
)

// Mode is the GL primitive mode enum passed to DrawElements.
type Mode uint32

const (
	// ModeTriangles is GL_TRIANGLES.
	ModeTriangles Mode = 0x0004
)

// ColorBufferBit is GL_COLOR_BUFFER_BIT, the clear mask for the color buffer.
const ColorBufferBit uint32 = 0x00004000

// Context is the driver call surface the rendering resource components need:
// allocate, configure, verify status, retrieve diagnostics, and roll back per
// object kind (shader, program, buffer, vertex array), plus uniform updates
// and the per-frame viewport/clear/draw calls.
//
// A Context is owned by the single OS thread that owns the GL rendering
// context. None of its methods are safe for concurrent use; every call is
// synchronous and returns before the next statement executes.
//
// The Context also mirrors the context-wide current-binding register (one
// slot per target kind) so that ordering-dependent operations can be
// observed and asserted without reading GL state back from the driver.
type Context interface {
	// CreateShader allocates a new shader object of the given stage.
	//
	// Parameters:
	//   - stage: the pipeline stage the shader targets
	//
	// Returns:
	//   - uint32: the new shader identifier (0 indicates driver failure)
	CreateShader(stage Stage) uint32

	// ShaderSource replaces the source text of the shader object.
	//
	// Parameters:
	//   - shader: the shader identifier
	//   - src: the complete shader source text
	ShaderSource(shader uint32, src string)

	// CompileShader triggers compilation of the shader's current source.
	//
	// Parameters:
	//   - shader: the shader identifier
	CompileShader(shader uint32)

	// ShaderCompiled queries GL_COMPILE_STATUS for the shader.
	//
	// Parameters:
	//   - shader: the shader identifier
	//
	// Returns:
	//   - bool: true if the last compile succeeded
	ShaderCompiled(shader uint32) bool

	// ShaderInfoLog retrieves the driver diagnostic log for the shader using
	// the length-then-text protocol (GL_INFO_LOG_LENGTH, then the log bytes).
	//
	// Parameters:
	//   - shader: the shader identifier
	//
	// Returns:
	//   - string: the full diagnostic text, empty if the driver reported none
	ShaderInfoLog(shader uint32) string

	// DeleteShader releases the shader object.
	//
	// Parameters:
	//   - shader: the shader identifier
	DeleteShader(shader uint32)

	// CreateProgram allocates a new program object.
	//
	// Returns:
	//   - uint32: the new program identifier (0 indicates driver failure)
	CreateProgram() uint32

	// AttachShader attaches a compiled shader object to a program.
	//
	// Parameters:
	//   - program: the program identifier
	//   - shader: the shader identifier
	AttachShader(program, shader uint32)

	// LinkProgram links the program's attached shader stages.
	//
	// Parameters:
	//   - program: the program identifier
	LinkProgram(program uint32)

	// ProgramLinked queries GL_LINK_STATUS for the program.
	//
	// Parameters:
	//   - program: the program identifier
	//
	// Returns:
	//   - bool: true if the last link succeeded
	ProgramLinked(program uint32) bool

	// ProgramInfoLog retrieves the driver diagnostic log for the program
	// using the same length-then-text protocol as ShaderInfoLog.
	//
	// Parameters:
	//   - program: the program identifier
	//
	// Returns:
	//   - string: the full diagnostic text, empty if the driver reported none
	ProgramInfoLog(program uint32) string

	// DeleteProgram releases the program object.
	//
	// Parameters:
	//   - program: the program identifier
	DeleteProgram(program uint32)

	// UseProgram makes the program the context-wide current program (0 resets
	// the register to "none"). This is a global side effect visible to all
	// subsequent draw calls and uniform setters.
	//
	// Parameters:
	//   - program: the program identifier, or 0 to unbind
	UseProgram(program uint32)

	// CurrentProgram reports the current-program register.
	//
	// Returns:
	//   - uint32: the identifier of the current program, 0 if none
	CurrentProgram() uint32

	// GenBuffer allocates a fresh buffer identifier with no backing storage.
	//
	// Returns:
	//   - uint32: the new buffer identifier
	GenBuffer() uint32

	// BindBuffer makes the buffer current for the target, displacing whatever
	// buffer of the same target was previously bound (0 resets to "none").
	//
	// Parameters:
	//   - target: the binding target
	//   - buffer: the buffer identifier, or 0 to unbind
	BindBuffer(target Target, buffer uint32)

	// BufferData fully replaces the backing storage of the buffer currently
	// bound to the target.
	//
	// Parameters:
	//   - target: the binding target whose current buffer receives the data
	//   - data: the complete new contents
	//   - usage: the driver usage hint
	BufferData(target Target, data []byte, usage Usage)

	// DeleteBuffer releases the buffer object.
	//
	// Parameters:
	//   - buffer: the buffer identifier
	DeleteBuffer(buffer uint32)

	// BoundBuffer reports the current-binding register for the target.
	//
	// Parameters:
	//   - target: the binding target to query
	//
	// Returns:
	//   - uint32: the identifier of the bound buffer, 0 if none
	BoundBuffer(target Target) uint32

	// GenVertexArray allocates a fresh vertex-array identifier.
	//
	// Returns:
	//   - uint32: the new vertex-array identifier
	GenVertexArray() uint32

	// BindVertexArray makes the vertex array current (0 resets to "none").
	//
	// Parameters:
	//   - array: the vertex-array identifier, or 0 to unbind
	BindVertexArray(array uint32)

	// EnableVertexAttrib enables the attribute slot on the current vertex array.
	//
	// Parameters:
	//   - slot: the attribute slot index
	EnableVertexAttrib(slot uint32)

	// VertexAttribPointer registers the layout of one attribute slot against
	// whichever buffer is currently bound to TargetVertex.
	//
	// Parameters:
	//   - slot: the attribute slot index
	//   - components: number of components per record field (1-4)
	//   - typ: the component data type
	//   - normalized: whether integer data is normalized to [0,1]/[-1,1]
	//   - stride: byte distance between consecutive records
	//   - offset: byte offset of the field within the record
	VertexAttribPointer(slot uint32, components int32, typ AttribType, normalized bool, stride int32, offset uintptr)

	// DeleteVertexArray releases the vertex-array object.
	//
	// Parameters:
	//   - array: the vertex-array identifier
	DeleteVertexArray(array uint32)

	// BoundVertexArray reports the current vertex-array register.
	//
	// Returns:
	//   - uint32: the identifier of the bound vertex array, 0 if none
	BoundVertexArray() uint32

	// UniformLocation queries a named uniform's location inside a linked
	// program. The driver reports -1 for names not present in the program.
	//
	// Parameters:
	//   - program: the program identifier
	//   - name: the uniform name as written in the shader source
	//
	// Returns:
	//   - int32: the resolved location, or -1 if not found
	UniformLocation(program uint32, name string) int32

	// Uniform1f writes a scalar float uniform at the location within the
	// currently active program.
	//
	// Parameters:
	//   - location: the resolved uniform location
	//   - v: the value to write
	Uniform1f(location int32, v float32)

	// Uniform2f writes a 2-component float uniform at the location within the
	// currently active program.
	//
	// Parameters:
	//   - location: the resolved uniform location
	//   - x, y: the component values to write
	Uniform2f(location int32, x, y float32)

	// Viewport sets the rendering viewport in pixels.
	//
	// Parameters:
	//   - x, y: lower-left corner
	//   - width, height: viewport dimensions
	Viewport(x, y, width, height int32)

	// ClearColor sets the color used by Clear.
	//
	// Parameters:
	//   - r, g, b, a: color components in [0,1]
	ClearColor(r, g, b, a float32)

	// Clear clears the buffers selected by the mask.
	//
	// Parameters:
	//   - mask: bitwise OR of clear bits (ColorBufferBit)
	Clear(mask uint32)

	// DrawElements issues an indexed draw over the currently bound vertex
	// array using the index buffer bound at its configuration time.
	//
	// Parameters:
	//   - mode: the primitive mode
	//   - count: number of indices to draw
	//   - typ: the index data type
	DrawElements(mode Mode, count int32, typ AttribType)
}
