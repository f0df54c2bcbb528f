// Package buffer owns GPU memory blocks for vertex and index data and the
// vertex-array configurations that describe how to read them. All operations
// go through an explicit driver.Context; the bind calls they issue displace
// whatever object of the same kind was previously bound, which is the
// ordering contract callers must respect.
package buffer

import (
	"github.com/Carmen-Shannon/oxygl/common"
	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
)

// Role selects which kind of data a buffer holds, which determines its GL
// binding target.
type Role int

const (
	// RoleVertex marks a buffer holding vertex records (GL_ARRAY_BUFFER).
	RoleVertex Role = iota

	// RoleIndex marks a buffer holding draw indices (GL_ELEMENT_ARRAY_BUFFER).
	RoleIndex
)

// target maps the role to its driver binding target.
func (r Role) target() driver.Target {
	if r == RoleIndex {
		return driver.TargetIndex
	}
	return driver.TargetVertex
}

// Buffer owns one GPU memory block for either vertex or index data. The
// identifier is non-zero for a live buffer. Buffers are handle types with
// pointer semantics; share the pointer rather than copying the struct, since
// two copies would both claim ownership of the same GPU identifier.
type Buffer struct {
	id     uint32
	target driver.Target
}

// NewBuffer allocates a fresh GPU buffer identifier for the role. No backing
// storage exists until the first Upload.
//
// Parameters:
//   - ctx: the driver context
//   - role: whether the buffer holds vertex or index data
//
// Returns:
//   - *Buffer: the owning handle
func NewBuffer(ctx driver.Context, role Role) *Buffer {
	return &Buffer{
		id:     ctx.GenBuffer(),
		target: role.target(),
	}
}

// ID retrieves the GPU buffer identifier (0 after Destroy).
//
// Returns:
//   - uint32: the buffer identifier
func (b *Buffer) ID() uint32 {
	return b.id
}

// Target retrieves the driver binding target implied by the buffer's role.
//
// Returns:
//   - driver.Target: the binding target
func (b *Buffer) Target() driver.Target {
	return b.target
}

// Bind makes this buffer current for its target, displacing whatever buffer
// of the same role was previously bound.
//
// Parameters:
//   - ctx: the driver context
func (b *Buffer) Bind(ctx driver.Context) {
	ctx.BindBuffer(b.target, b.id)
}

// Unbind resets the buffer's target binding to "none".
//
// Parameters:
//   - ctx: the driver context
func (b *Buffer) Unbind(ctx driver.Context) {
	ctx.BindBuffer(b.target, 0)
}

// Upload binds the buffer and fully replaces its backing storage with data.
// Each call replaces the prior contents and may change the length. The
// DYNAMIC_DRAW usage hint tells the driver the contents are expected to
// change across frames.
//
// Parameters:
//   - ctx: the driver context
//   - data: the complete new contents
func (b *Buffer) Upload(ctx driver.Context, data []byte) {
	b.Bind(ctx)
	ctx.BufferData(b.target, data, driver.UsageDynamicDraw)
}

// Destroy unbinds the buffer from its target and deletes the GPU
// identifier. The unbind comes first so the target's current-binding state
// never dangles on a deleted object. Subsequent calls are no-ops.
//
// Parameters:
//   - ctx: the driver context
func (b *Buffer) Destroy(ctx driver.Context) {
	if b.id == 0 {
		return
	}
	b.Unbind(ctx)
	ctx.DeleteBuffer(b.id)
	b.id = 0
}

// Upload uploads a slice of fixed-size records into the buffer, replacing
// its entire contents. The byte size is len(records) * sizeof(record).
//
// Parameters:
//   - ctx: the driver context
//   - b: the destination buffer
//   - records: the records to upload
func Upload[T any](ctx driver.Context, b *Buffer, records []T) {
	b.Upload(ctx, common.SliceToBytes(records))
}
