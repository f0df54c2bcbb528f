package renderer

import (
	"github.com/Carmen-Shannon/oxygl/engine/renderer/buffer"
	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	ctx driver.Context

	clearColor [4]float32
	width      int
	height     int
}

// Renderer drives the per-frame draw sequence over resources the caller has
// already set up: clear the frame, then issue indexed draws against
// configured vertex arrays. Program activation and uniform updates stay with
// the caller, because they are global side effects the renderer cannot
// schedule on the caller's behalf.
type Renderer interface {
	// Context retrieves the driver context the renderer was built on.
	//
	// Returns:
	//   - driver.Context: the driver context
	Context() driver.Context

	// SetClearColor sets the color used to clear the frame.
	//
	// Parameters:
	//   - r, g, b, a: color components in [0,1]
	SetClearColor(r, g, b, a float32)

	// Resize updates the viewport to new framebuffer pixel dimensions.
	//
	// Parameters:
	//   - width: new framebuffer width in pixels
	//   - height: new framebuffer height in pixels
	Resize(width, height int)

	// Width retrieves the current viewport width in pixels.
	//
	// Returns:
	//   - int: viewport width
	Width() int

	// Height retrieves the current viewport height in pixels.
	//
	// Returns:
	//   - int: viewport height
	Height() int

	// BeginFrame clears the color buffer with the configured clear color.
	BeginFrame()

	// DrawIndexed binds the vertex array and issues one indexed triangle
	// draw over count unsigned 32-bit indices. The caller must have
	// activated the intended program first.
	//
	// Parameters:
	//   - va: the configured vertex array to draw with
	//   - count: the number of indices to draw
	DrawIndexed(va *buffer.VertexArray, count int32)
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer over the given driver context with the
// provided options applied. The initial viewport is set from the configured
// dimensions.
//
// Parameters:
//   - ctx: the driver context
//   - options: functional options for clear color and viewport size
//
// Returns:
//   - Renderer: the configured renderer
func NewRenderer(ctx driver.Context, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		ctx:        ctx,
		clearColor: [4]float32{0.1, 0.1, 0.1, 1.0},
		width:      1280,
		height:     720,
	}
	for _, opt := range options {
		opt(r)
	}
	r.ctx.Viewport(0, 0, int32(r.width), int32(r.height))
	return r
}

func (r *renderer) Context() driver.Context {
	return r.ctx
}

func (r *renderer) SetClearColor(red, g, b, a float32) {
	r.clearColor = [4]float32{red, g, b, a}
}

func (r *renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.ctx.Viewport(0, 0, int32(width), int32(height))
}

func (r *renderer) Width() int {
	return r.width
}

func (r *renderer) Height() int {
	return r.height
}

func (r *renderer) BeginFrame() {
	c := r.clearColor
	r.ctx.ClearColor(c[0], c[1], c[2], c[3])
	r.ctx.Clear(driver.ColorBufferBit)
}

func (r *renderer) DrawIndexed(va *buffer.VertexArray, count int32) {
	va.Bind(r.ctx)
	r.ctx.DrawElements(driver.ModeTriangles, count, buffer.IndexType)
}
