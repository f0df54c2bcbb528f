package buffer

import (
	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
)

// VertexArray owns one GPU vertex-array object holding an attribute-layout
// configuration. The configuration implicitly references whichever vertex
// buffer is bound to the vertex-data target at Configure time: that buffer
// must stay valid and correctly shaped for as long as draw calls use this
// vertex array. The VertexArray cannot enforce this; it is a caller
// contract.
type VertexArray struct {
	id uint32
}

// NewVertexArray allocates a fresh GPU vertex-array identifier with no
// configuration.
//
// Parameters:
//   - ctx: the driver context
//
// Returns:
//   - *VertexArray: the owning handle
func NewVertexArray(ctx driver.Context) *VertexArray {
	return &VertexArray{id: ctx.GenVertexArray()}
}

// ID retrieves the GPU vertex-array identifier (0 after Destroy).
//
// Returns:
//   - uint32: the vertex-array identifier
func (va *VertexArray) ID() uint32 {
	return va.id
}

// Bind makes this vertex array current.
//
// Parameters:
//   - ctx: the driver context
func (va *VertexArray) Bind(ctx driver.Context) {
	ctx.BindVertexArray(va.id)
}

// Unbind resets the vertex-array binding to "none".
//
// Parameters:
//   - ctx: the driver context
func (va *VertexArray) Unbind(ctx driver.Context) {
	ctx.BindVertexArray(0)
}

// Configure binds the vertex array, then enables and registers each
// attribute slot against the vertex buffer currently bound to the
// vertex-data target. The caller must have bound the intended vertex buffer
// beforehand; configuring with the wrong (or no) buffer bound silently
// captures that binding instead.
//
// Parameters:
//   - ctx: the driver context
//   - layout: the attribute descriptors, one per slot
func (va *VertexArray) Configure(ctx driver.Context, layout []Attribute) {
	va.Bind(ctx)
	for _, attr := range layout {
		ctx.EnableVertexAttrib(attr.Slot)
		ctx.VertexAttribPointer(attr.Slot, attr.Components, attr.Type, attr.Normalized, attr.Stride, attr.Offset)
	}
}

// Destroy unbinds the vertex array and deletes the GPU identifier. The
// unbind comes first so the current-binding state never dangles on a
// deleted object. Subsequent calls are no-ops.
//
// Parameters:
//   - ctx: the driver context
func (va *VertexArray) Destroy(ctx driver.Context) {
	if va.id == 0 {
		return
	}
	va.Unbind(ctx)
	ctx.DeleteVertexArray(va.id)
	va.id = 0
}
