// Package named implements n-dimensional arrays whose dimensions carry
// semantic names instead of bare positions. Arithmetic, broadcasting,
// reduction, and indexing are all driven by axis names: operands align
// automatically on matching names, and axes missing from one operand are
// broadcast. Implicit array variants (linear, logarithmic, geometric
// progressions, random samples) describe generated content lazily and
// materialize on first use.
package named

import (
	"errors"
	"fmt"

	"github.com/axial-ml/axial/internal/buffer"
)

// Array pairs a dense buffer with one axis name per buffer dimension.
// The buffer may be shared between arrays (refcounted); operations never
// mutate operand buffers, so aliased arrays are safe.
type Array struct {
	buf     *buffer.Buffer
	names   []string
	backend buffer.Backend
}

// New wraps a buffer with axis names. names must have exactly one entry
// per buffer dimension; the slice is copied.
func New(raw *buffer.Buffer, names []string, b buffer.Backend) (*Array, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrInvalidParameter)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidParameter)
	}
	if len(names) != raw.Rank() {
		return nil, fmt.Errorf("%w: buffer has %d dimensions but %d axis names given",
			ErrShapeMismatch, raw.Rank(), len(names))
	}

	axes := make(AxisSet, len(names))
	for i, name := range names {
		axes[i] = Axis{Name: name, Extent: raw.Shape()[i]}
	}
	if err := axes.Validate(); err != nil {
		return nil, err
	}

	return &Array{
		buf:     raw,
		names:   append([]string(nil), names...),
		backend: b,
	}, nil
}

// FromSlice builds an array from a flat slice laid out row-major for the
// given axes.
//
// Example:
//
//	a, err := named.FromSlice([]float64{1, 2, 3, 4, 5, 6},
//	        named.AxisSet{{"x", 2}, {"y", 3}}, be)
func FromSlice[T buffer.DType](data []T, axes AxisSet, b buffer.Backend) (*Array, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrInvalidParameter)
	}
	if err := axes.Validate(); err != nil {
		return nil, err
	}
	if n := axes.Extents().NumElements(); n != len(data) {
		return nil, fmt.Errorf("%w: axes %s require %d elements, got %d",
			ErrShapeMismatch, axes, n, len(data))
	}

	buf, err := buffer.FromSlice(data, axes.Extents())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return New(buf, axes.Names(), b)
}

// FromNested builds an array from nested Go slices, one nesting level per
// axis name, outermost first. Ragged nesting is rejected.
//
// Example:
//
//	a, err := named.FromNested([][]float64{{1, 2}, {3, 4}},
//	        []string{"row", "col"}, be)
func FromNested(value any, names []string, b buffer.Backend) (*Array, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrInvalidParameter)
	}

	buf, _, err := buffer.FromNested(value)
	if err != nil {
		switch {
		case errors.Is(err, buffer.ErrShapeMismatch):
			return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
		}
	}
	return New(buf, names, b)
}

// Zeros creates a zero-filled array over the given axes.
func Zeros(axes AxisSet, dtype buffer.DataType, b buffer.Backend) (*Array, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrInvalidParameter)
	}
	if err := axes.Validate(); err != nil {
		return nil, err
	}

	buf, err := buffer.New(axes.Extents(), dtype)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return New(buf, axes.Names(), b)
}

// Ones creates an array of ones over the given axes. For Bool the fill
// value is true.
func Ones(axes AxisSet, dtype buffer.DataType, b buffer.Backend) (*Array, error) {
	return Full(axes, 1, dtype, b)
}

// Full creates an array filled with the given value, converted to dtype.
func Full(axes AxisSet, value float64, dtype buffer.DataType, b buffer.Backend) (*Array, error) {
	a, err := Zeros(axes, dtype, b)
	if err != nil {
		return nil, err
	}
	fillValue(a.buf, value)
	return a, nil
}

// Scalar creates a rank-0 float64 array holding a single value. Its
// AxisSet is empty; it broadcasts against every axis.
func Scalar(v float64, b buffer.Backend) (*Array, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrInvalidParameter)
	}
	return New(buffer.Scalar(v), nil, b)
}

func fillValue(buf *buffer.Buffer, v float64) {
	switch buf.DType() {
	case buffer.Float64:
		data := buf.AsFloat64()
		for i := range data {
			data[i] = v
		}
	case buffer.Float32:
		data := buf.AsFloat32()
		for i := range data {
			data[i] = float32(v)
		}
	case buffer.Int64:
		data := buf.AsInt64()
		for i := range data {
			data[i] = int64(v)
		}
	case buffer.Int32:
		data := buf.AsInt32()
		for i := range data {
			data[i] = int32(v)
		}
	case buffer.Bool:
		data := buf.AsBool()
		for i := range data {
			data[i] = v != 0
		}
	}
}

// Axes returns the array's named shape, outermost first.
func (a *Array) Axes() AxisSet {
	axes := make(AxisSet, len(a.names))
	for i, name := range a.names {
		axes[i] = Axis{Name: name, Extent: a.buf.Shape()[i]}
	}
	return axes
}

// AxisNames returns the axis names in order.
func (a *Array) AxisNames() []string {
	return append([]string(nil), a.names...)
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.names)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return a.buf.NumElements()
}

// DType returns the element type.
func (a *Array) DType() buffer.DataType {
	return a.buf.DType()
}

// Buffer returns the underlying storage. Treat it as read-only; writing
// through it breaks the aliasing guarantees.
func (a *Array) Buffer() *buffer.Buffer {
	return a.buf
}

// Backend returns the backend that operates on this array.
func (a *Array) Backend() buffer.Backend {
	return a.backend
}

// Clone returns a new array sharing the same storage. Cheap: the buffer is
// refcounted, not copied.
func (a *Array) Clone() *Array {
	return &Array{
		buf:     a.buf.Clone(),
		names:   append([]string(nil), a.names...),
		backend: a.backend,
	}
}

// Item returns the value of a single-element array as a float64.
func (a *Array) Item() (float64, error) {
	if a.Size() != 1 {
		return 0, fmt.Errorf("%w: item requires exactly one element, array has %d",
			ErrShapeMismatch, a.Size())
	}
	idx := make([]int, a.Rank())
	return a.buf.Float64At(idx...), nil
}

// Materialize returns the array itself; it is already concrete.
func (a *Array) Materialize() (*Array, error) {
	return a, nil
}

func (a *Array) isArrayLike() {}
