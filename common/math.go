// Package common contains small helpers shared across the engine. They are
// not interface-wrapped structs, just plain functions over commonly used
// data-types.
package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// NearlyEqual reports whether two float32 values differ by less than eps.
//
// Parameters:
//   - a, b: the values to compare
//   - eps: the tolerance
//
// Returns:
//   - bool: true if |a-b| < eps
func NearlyEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) < eps
}

// Pulse maps a monotonically growing time value onto [0,1] as a smooth
// sine pulse. Useful for time-driven shader parameters.
//
// Parameters:
//   - t: time in seconds
//
// Returns:
//   - float32: the pulse value in [0,1]
func Pulse(t float32) float32 {
	return 0.5 + 0.5*math32.Sin(t)
}
