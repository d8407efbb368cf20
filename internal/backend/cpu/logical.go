package cpu

import (
	"fmt"

	"github.com/axial-ml/axial/internal/buffer"
)

// Logical operations. Operands must be Bool; results broadcast like
// binary arithmetic.

// And computes element-wise logical AND.
func (cpu *CPUBackend) And(a, b *buffer.Buffer) *buffer.Buffer {
	return logicalOp("and", a, b, func(x, y bool) bool { return x && y })
}

// Or computes element-wise logical OR.
func (cpu *CPUBackend) Or(a, b *buffer.Buffer) *buffer.Buffer {
	return logicalOp("or", a, b, func(x, y bool) bool { return x || y })
}

// Xor computes element-wise logical XOR.
func (cpu *CPUBackend) Xor(a, b *buffer.Buffer) *buffer.Buffer {
	return logicalOp("xor", a, b, func(x, y bool) bool { return x != y })
}

// Not computes element-wise logical NOT.
func (cpu *CPUBackend) Not(x *buffer.Buffer) *buffer.Buffer {
	if x.DType() != buffer.Bool {
		panic(fmt.Sprintf("not: buffer must be bool dtype, got %s", x.DType()))
	}

	result, err := buffer.New(x.Shape(), buffer.Bool)
	if err != nil {
		panic(fmt.Sprintf("not: %v", err))
	}

	src := x.AsBool()
	dst := result.AsBool()
	for i := range dst {
		dst[i] = !src[i]
	}

	return result
}

func logicalOp(op string, a, b *buffer.Buffer, apply func(x, y bool) bool) *buffer.Buffer {
	if a.DType() != buffer.Bool || b.DType() != buffer.Bool {
		panic(fmt.Sprintf("%s: both buffers must be bool dtype, got %s and %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := buffer.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := buffer.New(outShape, buffer.Bool)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	cmpBroadcast(result.AsBool(), a.AsBool(), b.AsBool(), a.Shape(), b.Shape(), outShape, apply)
	return result
}
