// Copyright 2025 The Axial Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package named provides the public API for named-axis arrays in the Axial framework.
//
// The package defines the core types for name-aligned array operations:
//   - Array: a dense array whose dimensions are addressed by name
//   - AxisSet, Axis: ordered axis descriptions (name plus extent)
//   - ArrayLike: anything usable as an operand, explicit or implicit
//   - Index, Selector: named selection
//
// Example:
//
//	backend := cpu.New()
//	x, _ := named.FromSlice([]float64{1, 2, 3}, named.AxisSet{{Name: "x", Extent: 3}}, backend)
//	y, _ := named.FromSlice([]float64{10, 20}, named.AxisSet{{Name: "y", Extent: 2}}, backend)
//	z, _ := named.Add(x, y) // axes {x:3, y:2}
package named

import (
	"github.com/axial-ml/axial/buffer"
	"github.com/axial-ml/axial/internal/named"
)

// Type aliases for public API

// Array is a dense array whose dimensions are addressed by name.
//
// Every operation aligns operands by axis name before computing, so two
// arrays never have to agree on dimension order, only on the extents of
// the axes they share.
type Array = named.Array

// Axis describes one dimension: a name and an extent.
type Axis = named.Axis

// AxisSet is an ordered list of axes. Order fixes the in-memory layout
// but never affects operation semantics.
type AxisSet = named.AxisSet

// ArrayLike is anything usable as an operand: explicit arrays and
// implicit arrays such as LinearSpace or UniformRandomSample.
type ArrayLike = named.ArrayLike

// Index maps axis names to selectors for Array.Get.
type Index = named.Index

// Selector picks positions along one axis. Construct with At, Span,
// SpanStep, or Mask.
type Selector = named.Selector

// DataType represents the element type of an array.
type DataType = buffer.DataType

// Data type constants.
const (
	Float64 DataType = buffer.Float64
	Float32 DataType = buffer.Float32
	Int64   DataType = buffer.Int64
	Int32   DataType = buffer.Int32
	Bool    DataType = buffer.Bool
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrAxisMismatch     = named.ErrAxisMismatch
	ErrAxisNotFound     = named.ErrAxisNotFound
	ErrShapeMismatch    = named.ErrShapeMismatch
	ErrInvalidParameter = named.ErrInvalidParameter
)

// Creation functions

// New wraps a raw buffer in an Array, attaching one axis name per
// dimension in layout order.
//
// This is a low-level function. Most users should use FromSlice,
// FromNested, or the implicit array constructors instead.
func New(raw *buffer.Buffer, names []string, b buffer.Backend) (*Array, error) {
	return named.New(raw, names, b)
}

// FromSlice creates an array from a flat slice laid out row-major in the
// axis order given.
//
// Example:
//
//	backend := cpu.New()
//	x, err := named.FromSlice(
//	    []float64{1, 2, 3, 4, 5, 6},
//	    named.AxisSet{{Name: "x", Extent: 2}, {Name: "y", Extent: 3}},
//	    backend,
//	)
func FromSlice[T buffer.DType](data []T, axes AxisSet, b buffer.Backend) (*Array, error) {
	return named.FromSlice(data, axes, b)
}

// FromNested creates an array from nested Go slices, inferring extents
// from the nesting. One axis name is required per nesting level.
//
// Example:
//
//	backend := cpu.New()
//	x, err := named.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}}, []string{"x", "y"}, backend)
func FromNested(value any, names []string, b buffer.Backend) (*Array, error) {
	return named.FromNested(value, names, b)
}

// Zeros creates an array filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x, err := named.Zeros(named.AxisSet{{Name: "x", Extent: 2}}, named.Float64, backend)
func Zeros(axes AxisSet, dtype DataType, b buffer.Backend) (*Array, error) {
	return named.Zeros(axes, dtype, b)
}

// Ones creates an array filled with ones (true for Bool).
//
// Example:
//
//	backend := cpu.New()
//	x, err := named.Ones(named.AxisSet{{Name: "x", Extent: 2}}, named.Float64, backend)
func Ones(axes AxisSet, dtype DataType, b buffer.Backend) (*Array, error) {
	return named.Ones(axes, dtype, b)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x, err := named.Full(named.AxisSet{{Name: "x", Extent: 3}}, 3.14, named.Float64, backend)
func Full(axes AxisSet, value float64, dtype DataType, b buffer.Backend) (*Array, error) {
	return named.Full(axes, value, dtype, b)
}

// Scalar creates a rank-0 float64 array. Scalars broadcast against every
// operand.
//
// Example:
//
//	backend := cpu.New()
//	two, err := named.Scalar(2, backend)
func Scalar(v float64, b buffer.Backend) (*Array, error) {
	return named.Scalar(v, b)
}

// Element-wise functions
//
// Each of these also exists as a method on Array. The package-level forms
// accept any ArrayLike operand, including implicit arrays.

// Add returns the element-wise sum of x and y, aligned by axis name.
//
// Example:
//
//	z, err := named.Add(x, y)
func Add(x, y ArrayLike) (*Array, error) {
	return named.Add(x, y)
}

// Sub returns the element-wise difference x - y, aligned by axis name.
func Sub(x, y ArrayLike) (*Array, error) {
	return named.Sub(x, y)
}

// Mul returns the element-wise product of x and y, aligned by axis name.
func Mul(x, y ArrayLike) (*Array, error) {
	return named.Mul(x, y)
}

// Div returns the element-wise quotient x / y, aligned by axis name.
// Integer division truncates toward zero.
func Div(x, y ArrayLike) (*Array, error) {
	return named.Div(x, y)
}

// Pow returns x raised to the power y element-wise, aligned by axis name.
func Pow(x, y ArrayLike) (*Array, error) {
	return named.Pow(x, y)
}

// Greater returns the Bool array x > y, aligned by axis name.
func Greater(x, y ArrayLike) (*Array, error) {
	return named.Greater(x, y)
}

// GreaterEqual returns the Bool array x >= y, aligned by axis name.
func GreaterEqual(x, y ArrayLike) (*Array, error) {
	return named.GreaterEqual(x, y)
}

// Less returns the Bool array x < y, aligned by axis name.
func Less(x, y ArrayLike) (*Array, error) {
	return named.Less(x, y)
}

// LessEqual returns the Bool array x <= y, aligned by axis name.
func LessEqual(x, y ArrayLike) (*Array, error) {
	return named.LessEqual(x, y)
}

// ElemEqual returns the Bool array x == y element-wise, aligned by axis
// name. Compare with Array.Equal, which reports whole-array equality.
func ElemEqual(x, y ArrayLike) (*Array, error) {
	return named.ElemEqual(x, y)
}

// NotEqual returns the Bool array x != y element-wise, aligned by axis name.
func NotEqual(x, y ArrayLike) (*Array, error) {
	return named.NotEqual(x, y)
}

// And returns the element-wise conjunction of two Bool arrays.
func And(x, y ArrayLike) (*Array, error) {
	return named.And(x, y)
}

// Or returns the element-wise disjunction of two Bool arrays.
func Or(x, y ArrayLike) (*Array, error) {
	return named.Or(x, y)
}

// Xor returns the element-wise exclusive or of two Bool arrays.
func Xor(x, y ArrayLike) (*Array, error) {
	return named.Xor(x, y)
}

// Where selects elements from x or y based on a Bool condition. All three
// operands align by axis name; the result spans their united axes.
//
// Example:
//
//	zero, _ := named.Scalar(0, backend)
//	mask, _ := named.Greater(x, zero)
//	z, err := named.Where(mask, x, zero)
func Where(cond, x, y ArrayLike) (*Array, error) {
	return named.Where(cond, x, y)
}

// Manipulation functions

// Stack joins arrays along a fresh axis. Parts are aligned and broadcast
// to a common frame first; the new axis indexes the parts in order.
//
// Example:
//
//	batch, err := named.Stack([]named.ArrayLike{a, b}, "batch") // axes {batch:2, ...}
func Stack(parts []ArrayLike, axis string) (*Array, error) {
	return named.Stack(parts, axis)
}

// Concat joins arrays along an existing axis, which every part must
// carry. Remaining axes are aligned and broadcast to a common frame; the
// joined extent is the sum of the part extents.
//
// Example:
//
//	all, err := named.Concat([]named.ArrayLike{a, b}, "x")
func Concat(parts []ArrayLike, axis string) (*Array, error) {
	return named.Concat(parts, axis)
}

// Selectors

// At selects a single position and collapses the axis. Negative positions
// count from the end.
//
// Example:
//
//	first, err := arr.Get(named.Index{"x": named.At(0)})
//	last, err := arr.Get(named.Index{"x": named.At(-1)})
func At(i int) Selector {
	return named.At(i)
}

// Span selects the half-open range [start, stop) and keeps the axis.
// Negative endpoints count from the end; out-of-range endpoints clamp.
//
// Example:
//
//	window, err := arr.Get(named.Index{"x": named.Span(2, 5)})
func Span(start, stop int) Selector {
	return named.Span(start, stop)
}

// SpanStep selects every step-th position in [start, stop). The step must
// be positive.
//
// Example:
//
//	evens, err := arr.Get(named.Index{"x": named.SpanStep(0, 10, 2)})
func SpanStep(start, stop, step int) Selector {
	return named.SpanStep(start, stop, step)
}

// Mask selects positions where keep is true. The mask length must equal
// the axis extent.
//
// Example:
//
//	kept, err := arr.Get(named.Index{"x": named.Mask([]bool{true, false, true})})
func Mask(keep []bool) Selector {
	return named.Mask(keep)
}
