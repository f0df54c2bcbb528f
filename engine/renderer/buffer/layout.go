package buffer

import (
	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
)

// Attribute describes one vertex attribute slot: where the field lives
// inside a vertex record and how the GPU should interpret its bytes.
type Attribute struct {
	// Slot is the generic attribute index (layout (location = N) in GLSL).
	Slot uint32

	// Components is the number of components per field (1-4).
	Components int32

	// Type is the component data type.
	Type driver.AttribType

	// Normalized converts integer data to [0,1] or [-1,1] floats when set.
	Normalized bool

	// Stride is the byte distance between consecutive vertex records.
	Stride int32

	// Offset is the byte offset of the field within the record.
	Offset uintptr
}

// IndexType is the data type of all index buffers in this engine. Draw
// calls over configured vertex arrays always cite unsigned 32-bit indices.
const IndexType = driver.TypeUnsignedInt

// Vertex2D is a 2D demo vertex record: position, color, and texture
// coordinate, tightly packed float32 fields (28 bytes).
// The offset table below is hand-authored and must match this struct
// field-for-field; Vertex2DLayout is the single source the GPU side sees.
type Vertex2D struct {
	Position [2]float32 // offset  0: position in clip space (8 bytes)
	Color    [3]float32 // offset  8: per-vertex RGB color (12 bytes)
	TexCoord [2]float32 // offset 20: UV texture coordinate (8 bytes)
}

// Vertex2DStride is the byte size of one Vertex2D record.
const Vertex2DStride = 28

const (
	vertex2DPositionOffset = 0
	vertex2DColorOffset    = 8
	vertex2DTexCoordOffset = 20
)

// Vertex2DLayout returns the attribute descriptors for a buffer of Vertex2D
// records, in slot order.
//
// Returns:
//   - []Attribute: the attribute layout for Vertex2D
func Vertex2DLayout() []Attribute {
	return []Attribute{
		{Slot: 0, Components: 2, Type: driver.TypeFloat, Stride: Vertex2DStride, Offset: vertex2DPositionOffset},
		{Slot: 1, Components: 3, Type: driver.TypeFloat, Stride: Vertex2DStride, Offset: vertex2DColorOffset},
		{Slot: 2, Components: 2, Type: driver.TypeFloat, Stride: Vertex2DStride, Offset: vertex2DTexCoordOffset},
	}
}
