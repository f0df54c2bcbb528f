// Package drivertest provides an in-memory driver.Context for unit tests.
// The Recorder allocates identifiers, stores buffer contents, mirrors the
// current-binding register, and records every destructive or order-sensitive
// call so tests can assert bind/upload/delete sequencing without a live GL
// context.
package drivertest

import (
	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
)

// ShaderState holds the Recorder's view of one shader object.
type ShaderState struct {
	Stage   driver.Stage
	Source  string
	Deleted bool
}

// ProgramState holds the Recorder's view of one program object.
type ProgramState struct {
	Attached []uint32
	Linked   bool
	Deleted  bool
}

// BufferState holds the Recorder's view of one buffer object.
type BufferState struct {
	Data    []byte
	Usage   driver.Usage
	Deleted bool
}

// AttribState records one VertexAttribPointer call, including which vertex
// buffer was bound to TargetVertex at configuration time.
type AttribState struct {
	Slot       uint32
	Components int32
	Type       driver.AttribType
	Normalized bool
	Stride     int32
	Offset     uintptr
	Buffer     uint32
}

// VertexArrayState holds the Recorder's view of one vertex-array object.
type VertexArrayState struct {
	Enabled []uint32
	Attribs []AttribState
	Deleted bool
}

// DrawCall records one DrawElements call together with the binding register
// at the time of the call.
type DrawCall struct {
	Mode    driver.Mode
	Count   int32
	Type    driver.AttribType
	Program uint32
	Array   uint32
}

// UniformWrite records one uniform setter call together with the program
// that was current when it was issued.
type UniformWrite struct {
	Location int32
	Values   []float32
	Program  uint32
}

// Recorder is a scriptable fake driver.Context.
// Compile and link outcomes default to success; set CompileFunc or LinkFunc
// to script failures and their diagnostic logs.
type Recorder struct {
	// CompileFunc decides the outcome of CompileShader given the shader's
	// source and stage. Return ok=false with a log to script a failure.
	CompileFunc func(src string, stage driver.Stage) (ok bool, log string)

	// LinkFunc decides the outcome of LinkProgram given the attached shader
	// identifiers. Return ok=false with a log to script a failure.
	LinkFunc func(attached []uint32) (ok bool, log string)

	// Locations maps program id -> uniform name -> location. Names absent
	// from the map resolve to -1, matching the driver sentinel.
	Locations map[uint32]map[string]int32

	// DeletedWhileBound collects identifiers of buffers and vertex arrays
	// that were deleted while still present in the binding register. A
	// non-empty slice means the unbind-then-delete invariant was violated.
	DeletedWhileBound []uint32

	Shaders      map[uint32]*ShaderState
	Programs     map[uint32]*ProgramState
	Buffers      map[uint32]*BufferState
	VertexArrays map[uint32]*VertexArrayState

	Draws    []DrawCall
	Uniforms []UniformWrite

	// ClearColorValue and Viewports record the frame-level state calls.
	ClearColorValue [4]float32
	Clears          int
	Viewports       [][4]int32

	compileResult map[uint32]bool
	linkResult    map[uint32]bool

	bound   map[driver.Target]uint32
	array   uint32
	program uint32

	nextID uint32
}

var _ driver.Context = &Recorder{}

// NewRecorder creates a Recorder with empty state and all outcomes
// defaulting to success.
//
// Returns:
//   - *Recorder: the fake context
func NewRecorder() *Recorder {
	return &Recorder{
		Locations:     make(map[uint32]map[string]int32),
		Shaders:       make(map[uint32]*ShaderState),
		Programs:      make(map[uint32]*ProgramState),
		Buffers:       make(map[uint32]*BufferState),
		VertexArrays:  make(map[uint32]*VertexArrayState),
		compileResult: make(map[uint32]bool),
		linkResult:    make(map[uint32]bool),
		bound:         make(map[driver.Target]uint32),
	}
}

// SetLocation scripts a uniform location for a program/name pair.
//
// Parameters:
//   - program: the program identifier
//   - name: the uniform name
//   - location: the location to resolve the name to
func (r *Recorder) SetLocation(program uint32, name string, location int32) {
	if r.Locations[program] == nil {
		r.Locations[program] = make(map[string]int32)
	}
	r.Locations[program][name] = location
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

func (r *Recorder) CreateShader(stage driver.Stage) uint32 {
	id := r.id()
	r.Shaders[id] = &ShaderState{Stage: stage}
	return id
}

func (r *Recorder) ShaderSource(shader uint32, src string) {
	r.Shaders[shader].Source = src
}

func (r *Recorder) CompileShader(shader uint32) {
	s := r.Shaders[shader]
	ok := true
	if r.CompileFunc != nil {
		ok, _ = r.CompileFunc(s.Source, s.Stage)
	}
	r.compileResult[shader] = ok
}

func (r *Recorder) ShaderCompiled(shader uint32) bool {
	return r.compileResult[shader]
}

func (r *Recorder) ShaderInfoLog(shader uint32) string {
	s := r.Shaders[shader]
	if r.CompileFunc != nil {
		if ok, log := r.CompileFunc(s.Source, s.Stage); !ok {
			return log
		}
	}
	return ""
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.Shaders[shader].Deleted = true
}

func (r *Recorder) CreateProgram() uint32 {
	id := r.id()
	r.Programs[id] = &ProgramState{}
	return id
}

func (r *Recorder) AttachShader(program, shader uint32) {
	p := r.Programs[program]
	p.Attached = append(p.Attached, shader)
}

func (r *Recorder) LinkProgram(program uint32) {
	p := r.Programs[program]
	ok := true
	if r.LinkFunc != nil {
		ok, _ = r.LinkFunc(p.Attached)
	}
	p.Linked = ok
	r.linkResult[program] = ok
}

func (r *Recorder) ProgramLinked(program uint32) bool {
	return r.linkResult[program]
}

func (r *Recorder) ProgramInfoLog(program uint32) string {
	p := r.Programs[program]
	if r.LinkFunc != nil {
		if ok, log := r.LinkFunc(p.Attached); !ok {
			return log
		}
	}
	return ""
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.Programs[program].Deleted = true
}

func (r *Recorder) UseProgram(program uint32) {
	r.program = program
}

func (r *Recorder) CurrentProgram() uint32 {
	return r.program
}

func (r *Recorder) GenBuffer() uint32 {
	id := r.id()
	r.Buffers[id] = &BufferState{}
	return id
}

func (r *Recorder) BindBuffer(target driver.Target, buffer uint32) {
	r.bound[target] = buffer
}

func (r *Recorder) BufferData(target driver.Target, data []byte, usage driver.Usage) {
	id := r.bound[target]
	if id == 0 {
		return
	}
	b := r.Buffers[id]
	b.Data = append([]byte(nil), data...)
	b.Usage = usage
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	for _, id := range r.bound {
		if id == buffer {
			r.DeletedWhileBound = append(r.DeletedWhileBound, buffer)
		}
	}
	r.Buffers[buffer].Deleted = true
}

func (r *Recorder) BoundBuffer(target driver.Target) uint32 {
	return r.bound[target]
}

func (r *Recorder) GenVertexArray() uint32 {
	id := r.id()
	r.VertexArrays[id] = &VertexArrayState{}
	return id
}

func (r *Recorder) BindVertexArray(array uint32) {
	r.array = array
}

func (r *Recorder) EnableVertexAttrib(slot uint32) {
	va := r.VertexArrays[r.array]
	va.Enabled = append(va.Enabled, slot)
}

func (r *Recorder) VertexAttribPointer(slot uint32, components int32, typ driver.AttribType, normalized bool, stride int32, offset uintptr) {
	va := r.VertexArrays[r.array]
	va.Attribs = append(va.Attribs, AttribState{
		Slot:       slot,
		Components: components,
		Type:       typ,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
		Buffer:     r.bound[driver.TargetVertex],
	})
}

func (r *Recorder) DeleteVertexArray(array uint32) {
	if r.array == array {
		r.DeletedWhileBound = append(r.DeletedWhileBound, array)
	}
	r.VertexArrays[array].Deleted = true
}

func (r *Recorder) BoundVertexArray() uint32 {
	return r.array
}

func (r *Recorder) UniformLocation(program uint32, name string) int32 {
	if locs, ok := r.Locations[program]; ok {
		if loc, ok := locs[name]; ok {
			return loc
		}
	}
	return -1
}

func (r *Recorder) Uniform1f(location int32, v float32) {
	r.Uniforms = append(r.Uniforms, UniformWrite{Location: location, Values: []float32{v}, Program: r.program})
}

func (r *Recorder) Uniform2f(location int32, x, y float32) {
	r.Uniforms = append(r.Uniforms, UniformWrite{Location: location, Values: []float32{x, y}, Program: r.program})
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.Viewports = append(r.Viewports, [4]int32{x, y, width, height})
}

func (r *Recorder) ClearColor(red, g, b, a float32) {
	r.ClearColorValue = [4]float32{red, g, b, a}
}

func (r *Recorder) Clear(mask uint32) {
	r.Clears++
}

func (r *Recorder) DrawElements(mode driver.Mode, count int32, typ driver.AttribType) {
	r.Draws = append(r.Draws, DrawCall{
		Mode:    mode,
		Count:   count,
		Type:    typ,
		Program: r.program,
		Array:   r.array,
	})
}
