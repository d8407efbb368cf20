// Copyright 2025 The Axial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package buffer provides the public API for axial's dense storage layer.
//
// The package defines the raw positional types the named layer is built on:
//   - Buffer: dense, row-major, refcounted element storage
//   - Shape: buffer dimensions
//   - DataType / DType: runtime and compile-time element types
//   - Backend: the capability interface compute backends implement
//
// Most users construct arrays through the named package and never touch
// buffers directly; this surface exists for backend implementers and for
// zero-copy interop with positional code.
package buffer

import (
	"github.com/axial-ml/axial/internal/buffer"
)

// Type aliases for public API

// DType is a constraint for buffer element types.
// Supported types: float64, float32, int64, int32, bool.
type DType = buffer.DType

// DataType represents the runtime element type of a buffer.
type DataType = buffer.DataType

// Element type constants.
const (
	Float64 DataType = buffer.Float64
	Float32 DataType = buffer.Float32
	Int64   DataType = buffer.Int64
	Int32   DataType = buffer.Int32
	Bool    DataType = buffer.Bool
)

// Shape represents the dimensions of a buffer.
// Example: Shape{2, 3, 4} represents a 3D buffer with dimensions 2×3×4.
type Shape = buffer.Shape

// Buffer is a dense, row-major block of elements with refcounted storage.
type Buffer = buffer.Buffer

// Backend is the capability interface that all compute backends implement.
// The named layer validates inputs and delegates every positional
// operation to a Backend.
type Backend = buffer.Backend

// Sentinel errors, matchable with errors.Is.
var (
	ErrShapeMismatch    = buffer.ErrShapeMismatch
	ErrInvalidParameter = buffer.ErrInvalidParameter
)

// Creation functions

// New allocates a zeroed buffer.
//
// Example:
//
//	buf, err := buffer.New(buffer.Shape{2, 3}, buffer.Float64)
func New(shape Shape, dtype DataType) (*Buffer, error) {
	return buffer.New(shape, dtype)
}

// FromSlice builds a buffer from a flat slice laid out row-major.
//
// Example:
//
//	buf, err := buffer.FromSlice([]float64{1, 2, 3, 4, 5, 6}, buffer.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Buffer, error) {
	return buffer.FromSlice(data, shape)
}

// Scalar builds a rank-0 float64 buffer holding a single value.
func Scalar(v float64) *Buffer {
	return buffer.Scalar(v)
}

// FromNested builds a buffer from nested Go slices, inferring the shape
// from the nesting. Ragged nesting is rejected.
//
// Example:
//
//	buf, shape, err := buffer.FromNested([][]float64{{1, 2}, {3, 4}})
func FromNested(value any) (*Buffer, Shape, error) {
	return buffer.FromNested(value)
}

// Utility functions

// BroadcastShapes computes the broadcast result shape for two shapes
// following NumPy trailing-edge rules and reports whether either operand
// needs expansion.
//
// Example:
//
//	shape, expands, err := buffer.BroadcastShapes(
//	    buffer.Shape{3, 1},
//	    buffer.Shape{3, 4},
//	)
//	// shape = [3, 4], expands = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return buffer.BroadcastShapes(a, b)
}
