package buffer

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxygl/engine/renderer/driver"
)

// The offset table is hand-authored; this pins it against the real memory
// layout of Vertex2D so a drifting struct definition fails loudly instead of
// silently feeding the GPU garbage.
func TestVertex2DOffsetsMatchStruct(t *testing.T) {
	var v Vertex2D

	assert.EqualValues(t, Vertex2DStride, unsafe.Sizeof(v))
	assert.EqualValues(t, vertex2DPositionOffset, unsafe.Offsetof(v.Position))
	assert.EqualValues(t, vertex2DColorOffset, unsafe.Offsetof(v.Color))
	assert.EqualValues(t, vertex2DTexCoordOffset, unsafe.Offsetof(v.TexCoord))
}

func TestVertex2DLayout(t *testing.T) {
	layout := Vertex2DLayout()
	require.Len(t, layout, 3)

	for i, attr := range layout {
		assert.EqualValues(t, i, attr.Slot)
		assert.Equal(t, driver.TypeFloat, attr.Type)
		assert.False(t, attr.Normalized)
		assert.EqualValues(t, Vertex2DStride, attr.Stride)
	}

	assert.EqualValues(t, 2, layout[0].Components)
	assert.EqualValues(t, 3, layout[1].Components)
	assert.EqualValues(t, 2, layout[2].Components)

	// Components*4 bytes per float field, laid out back to back.
	assert.EqualValues(t, 0, layout[0].Offset)
	assert.EqualValues(t, 8, layout[1].Offset)
	assert.EqualValues(t, 20, layout[2].Offset)
}

func TestMismatchedStrideIsDetectable(t *testing.T) {
	// A layout whose stride disagrees with the record size is the latent
	// bug the configuration cannot catch; the discrepancy must at least be
	// visible by comparing against the real record size.
	var v Vertex2D
	bad := Attribute{Slot: 0, Components: 2, Type: driver.TypeFloat, Stride: 24, Offset: 0}
	assert.NotEqualValues(t, unsafe.Sizeof(v), bad.Stride)
}

func TestIndexType(t *testing.T) {
	assert.Equal(t, driver.TypeUnsignedInt, IndexType)
}
