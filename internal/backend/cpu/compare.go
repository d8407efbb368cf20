package cpu

import (
	"fmt"

	"github.com/axial-ml/axial/internal/buffer"
)

// Comparison operations. Results are Bool buffers; operands broadcast
// like binary arithmetic.

// ordered is the element-type set admitting <, <=, >, >=.
type ordered interface {
	~float64 | ~float32 | ~int64 | ~int32
}

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *buffer.Buffer) *buffer.Buffer {
	return compareOp("greater", a, b, func(dst []bool, a, b *buffer.Buffer, outShape buffer.Shape) {
		switch a.DType() {
		case buffer.Float64:
			cmpBroadcast(dst, a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, gt)
		case buffer.Float32:
			cmpBroadcast(dst, a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, gt)
		case buffer.Int64:
			cmpBroadcast(dst, a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, gt)
		case buffer.Int32:
			cmpBroadcast(dst, a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, gt)
		default:
			panic(fmt.Sprintf("greater: unsupported dtype %s", a.DType()))
		}
	})
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *buffer.Buffer) *buffer.Buffer {
	return compareOp("greaterEqual", a, b, func(dst []bool, a, b *buffer.Buffer, outShape buffer.Shape) {
		switch a.DType() {
		case buffer.Float64:
			cmpBroadcast(dst, a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, ge)
		case buffer.Float32:
			cmpBroadcast(dst, a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, ge)
		case buffer.Int64:
			cmpBroadcast(dst, a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, ge)
		case buffer.Int32:
			cmpBroadcast(dst, a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, ge)
		default:
			panic(fmt.Sprintf("greaterEqual: unsupported dtype %s", a.DType()))
		}
	})
}

// Less returns a < b element-wise.
func (cpu *CPUBackend) Less(a, b *buffer.Buffer) *buffer.Buffer {
	return compareOp("less", a, b, func(dst []bool, a, b *buffer.Buffer, outShape buffer.Shape) {
		switch a.DType() {
		case buffer.Float64:
			cmpBroadcast(dst, a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, lt)
		case buffer.Float32:
			cmpBroadcast(dst, a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, lt)
		case buffer.Int64:
			cmpBroadcast(dst, a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, lt)
		case buffer.Int32:
			cmpBroadcast(dst, a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, lt)
		default:
			panic(fmt.Sprintf("less: unsupported dtype %s", a.DType()))
		}
	})
}

// LessEqual returns a <= b element-wise.
func (cpu *CPUBackend) LessEqual(a, b *buffer.Buffer) *buffer.Buffer {
	return compareOp("lessEqual", a, b, func(dst []bool, a, b *buffer.Buffer, outShape buffer.Shape) {
		switch a.DType() {
		case buffer.Float64:
			cmpBroadcast(dst, a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, le)
		case buffer.Float32:
			cmpBroadcast(dst, a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, le)
		case buffer.Int64:
			cmpBroadcast(dst, a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, le)
		case buffer.Int32:
			cmpBroadcast(dst, a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, le)
		default:
			panic(fmt.Sprintf("lessEqual: unsupported dtype %s", a.DType()))
		}
	})
}

// EqualElem returns a == b element-wise.
func (cpu *CPUBackend) EqualElem(a, b *buffer.Buffer) *buffer.Buffer {
	return compareOp("equal", a, b, func(dst []bool, a, b *buffer.Buffer, outShape buffer.Shape) {
		switch a.DType() {
		case buffer.Float64:
			cmpBroadcast(dst, a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, eq)
		case buffer.Float32:
			cmpBroadcast(dst, a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, eq)
		case buffer.Int64:
			cmpBroadcast(dst, a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, eq)
		case buffer.Int32:
			cmpBroadcast(dst, a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, eq)
		case buffer.Bool:
			cmpBroadcast(dst, a.AsBool(), b.AsBool(), a.Shape(), b.Shape(), outShape, eqBool)
		default:
			panic(fmt.Sprintf("equal: unsupported dtype %s", a.DType()))
		}
	})
}

// NotEqualElem returns a != b element-wise.
func (cpu *CPUBackend) NotEqualElem(a, b *buffer.Buffer) *buffer.Buffer {
	return compareOp("notEqual", a, b, func(dst []bool, a, b *buffer.Buffer, outShape buffer.Shape) {
		switch a.DType() {
		case buffer.Float64:
			cmpBroadcast(dst, a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, ne)
		case buffer.Float32:
			cmpBroadcast(dst, a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, ne)
		case buffer.Int64:
			cmpBroadcast(dst, a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, ne)
		case buffer.Int32:
			cmpBroadcast(dst, a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, ne)
		case buffer.Bool:
			cmpBroadcast(dst, a.AsBool(), b.AsBool(), a.Shape(), b.Shape(), outShape, neBool)
		default:
			panic(fmt.Sprintf("notEqual: unsupported dtype %s", a.DType()))
		}
	})
}

// compareOp validates operands, allocates the Bool result, and invokes
// the kernel.
func compareOp(op string, a, b *buffer.Buffer, kernel func([]bool, *buffer.Buffer, *buffer.Buffer, buffer.Shape)) *buffer.Buffer {
	outShape, _ := binaryShape(op, a, b)

	result, err := buffer.New(outShape, buffer.Bool)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	kernel(result.AsBool(), a, b, outShape)
	return result
}

// cmpBroadcast evaluates cmp over broadcast-aligned elements. The stride
// trick makes the same-shape case fall out naturally (all strides real).
func cmpBroadcast[T any](dst []bool, a, b []T, aShape, bShape, outShape buffer.Shape, cmp func(x, y T) bool) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = cmp(a[sourceIndex(i, outStrides, aStrides)], b[sourceIndex(i, outStrides, bStrides)])
	}
}

func gt[T ordered](x, y T) bool { return x > y }
func ge[T ordered](x, y T) bool { return x >= y }
func lt[T ordered](x, y T) bool { return x < y }
func le[T ordered](x, y T) bool { return x <= y }
func eq[T ordered](x, y T) bool { return x == y }
func ne[T ordered](x, y T) bool { return x != y }

func eqBool(x, y bool) bool { return x == y }
func neBool(x, y bool) bool { return x != y }
