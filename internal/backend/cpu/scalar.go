package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/axial-ml/axial/internal/buffer"
)

// Scalar operations. The float64 scalar is converted to the buffer dtype
// (integer dtypes truncate).

// AddScalar adds a scalar value to each element of the buffer.
func (cpu *CPUBackend) AddScalar(x *buffer.Buffer, s float64) *buffer.Buffer {
	result, err := buffer.New(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("addScalar: failed to create result buffer: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		dst := result.AsFloat64()
		copy(dst, x.AsFloat64())
		floats.AddConst(s, dst)
	case buffer.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		sf := float32(s)
		for i := range dst {
			dst[i] = src[i] + sf
		}
	case buffer.Int64:
		src := x.AsInt64()
		dst := result.AsInt64()
		si := int64(s)
		for i := range dst {
			dst[i] = src[i] + si
		}
	case buffer.Int32:
		src := x.AsInt32()
		dst := result.AsInt32()
		si := int32(s)
		for i := range dst {
			dst[i] = src[i] + si
		}
	default:
		panic(fmt.Sprintf("addScalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// SubScalar subtracts a scalar value from each element of the buffer.
func (cpu *CPUBackend) SubScalar(x *buffer.Buffer, s float64) *buffer.Buffer {
	result, err := buffer.New(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("subScalar: failed to create result buffer: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		dst := result.AsFloat64()
		copy(dst, x.AsFloat64())
		floats.AddConst(-s, dst)
	case buffer.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		sf := float32(s)
		for i := range dst {
			dst[i] = src[i] - sf
		}
	case buffer.Int64:
		src := x.AsInt64()
		dst := result.AsInt64()
		si := int64(s)
		for i := range dst {
			dst[i] = src[i] - si
		}
	case buffer.Int32:
		src := x.AsInt32()
		dst := result.AsInt32()
		si := int32(s)
		for i := range dst {
			dst[i] = src[i] - si
		}
	default:
		panic(fmt.Sprintf("subScalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// MulScalar multiplies each element of the buffer by a scalar value.
func (cpu *CPUBackend) MulScalar(x *buffer.Buffer, s float64) *buffer.Buffer {
	result, err := buffer.New(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("mulScalar: failed to create result buffer: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		floats.ScaleTo(result.AsFloat64(), s, x.AsFloat64())
	case buffer.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		sf := float32(s)
		for i := range dst {
			dst[i] = src[i] * sf
		}
	case buffer.Int64:
		src := x.AsInt64()
		dst := result.AsInt64()
		si := int64(s)
		for i := range dst {
			dst[i] = src[i] * si
		}
	case buffer.Int32:
		src := x.AsInt32()
		dst := result.AsInt32()
		si := int32(s)
		for i := range dst {
			dst[i] = src[i] * si
		}
	default:
		panic(fmt.Sprintf("mulScalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// DivScalar divides each element of the buffer by a scalar value.
// Plain division per element: no reciprocal trick, so IEEE rounding
// matches elementwise Div.
func (cpu *CPUBackend) DivScalar(x *buffer.Buffer, s float64) *buffer.Buffer {
	result, err := buffer.New(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("divScalar: failed to create result buffer: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i := range dst {
			dst[i] = src[i] / s
		}
	case buffer.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		sf := float32(s)
		for i := range dst {
			dst[i] = src[i] / sf
		}
	case buffer.Int64:
		src := x.AsInt64()
		dst := result.AsInt64()
		si := int64(s)
		for i := range dst {
			dst[i] = src[i] / si
		}
	case buffer.Int32:
		src := x.AsInt32()
		dst := result.AsInt32()
		si := int32(s)
		for i := range dst {
			dst[i] = src[i] / si
		}
	default:
		panic(fmt.Sprintf("divScalar: unsupported dtype %s", x.DType()))
	}

	return result
}
