package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceToBytes(t *testing.T) {
	data := []uint32{0x04030201, 0x08070605}
	b := SliceToBytes(data)
	require.Len(t, b, 8)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b)

	assert.Nil(t, SliceToBytes([]uint32(nil)))
}

func TestSliceToBytesFloats(t *testing.T) {
	data := []float32{1.0}
	b := SliceToBytes(data)
	require.Len(t, b, 4)
	// IEEE-754 little-endian encoding of 1.0.
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, b)
}

func TestStructToBytes(t *testing.T) {
	v := struct {
		A uint32
		B uint32
	}{A: 1, B: 2}
	b := StructToBytes(&v)
	require.Len(t, b, 8)
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0}, b)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 5, 7))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce(0, 0))
}

func TestNearlyEqual(t *testing.T) {
	assert.True(t, NearlyEqual(1.0, 1.0000001, 1e-5))
	assert.False(t, NearlyEqual(1.0, 1.1, 1e-5))
}

func TestPulse(t *testing.T) {
	assert.True(t, NearlyEqual(Pulse(0), 0.5, 1e-6))
	for _, v := range []float32{0, 1, 2, 3.14, 100} {
		p := Pulse(v)
		assert.GreaterOrEqual(t, p, float32(0))
		assert.LessOrEqual(t, p, float32(1))
	}
}
