package cpu

import (
	"fmt"
	"math"

	"github.com/axial-ml/axial/internal/buffer"
)

// Unary math operations. Transcendental operations require float dtypes
// and follow IEEE semantics: Log of a negative value is NaN, Log(0) is
// -Inf, Sqrt of a negative value is NaN. No panics for out-of-domain
// values.

// Neg negates each element.
func (cpu *CPUBackend) Neg(x *buffer.Buffer) *buffer.Buffer {
	result, err := buffer.New(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("neg: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = -v
		}
	case buffer.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = -v
		}
	case buffer.Int64:
		src := x.AsInt64()
		dst := result.AsInt64()
		for i, v := range src {
			dst[i] = -v
		}
	case buffer.Int32:
		src := x.AsInt32()
		dst := result.AsInt32()
		for i, v := range src {
			dst[i] = -v
		}
	default:
		panic(fmt.Sprintf("neg: unsupported dtype %s", x.DType()))
	}

	return result
}

// Abs computes the absolute value of each element.
func (cpu *CPUBackend) Abs(x *buffer.Buffer) *buffer.Buffer {
	result, err := buffer.New(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("abs: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = math.Abs(v)
		}
	case buffer.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(math.Abs(float64(v)))
		}
	case buffer.Int64:
		src := x.AsInt64()
		dst := result.AsInt64()
		for i, v := range src {
			if v < 0 {
				dst[i] = -v
			} else {
				dst[i] = v
			}
		}
	case buffer.Int32:
		src := x.AsInt32()
		dst := result.AsInt32()
		for i, v := range src {
			if v < 0 {
				dst[i] = -v
			} else {
				dst[i] = v
			}
		}
	default:
		panic(fmt.Sprintf("abs: unsupported dtype %s", x.DType()))
	}

	return result
}

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *buffer.Buffer) *buffer.Buffer {
	return floatUnary("exp", x, math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
func (cpu *CPUBackend) Log(x *buffer.Buffer) *buffer.Buffer {
	return floatUnary("log", x, math.Log)
}

// Sqrt computes element-wise square root: sqrt(x).
func (cpu *CPUBackend) Sqrt(x *buffer.Buffer) *buffer.Buffer {
	return floatUnary("sqrt", x, math.Sqrt)
}

// Sin computes element-wise sine.
func (cpu *CPUBackend) Sin(x *buffer.Buffer) *buffer.Buffer {
	return floatUnary("sin", x, math.Sin)
}

// Cos computes element-wise cosine.
func (cpu *CPUBackend) Cos(x *buffer.Buffer) *buffer.Buffer {
	return floatUnary("cos", x, math.Cos)
}

func floatUnary(op string, x *buffer.Buffer, fn func(float64) float64) *buffer.Buffer {
	result, err := buffer.New(x.Shape(), x.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	switch x.DType() {
	case buffer.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = fn(v)
		}
	case buffer.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(fn(float64(v)))
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}
