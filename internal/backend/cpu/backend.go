// Package cpu implements the CPU backend with gonum-accelerated float64 paths.
package cpu

import (
	"fmt"

	"github.com/axial-ml/axial/internal/buffer"
)

// CPUBackend implements buffer operations on CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// binaryShape validates operand dtypes and computes the broadcast result
// shape for a binary operation.
func binaryShape(op string, a, b *buffer.Buffer) (buffer.Shape, bool) {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}
	outShape, needsBroadcast, err := buffer.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	return outShape, needsBroadcast
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *buffer.Buffer) *buffer.Buffer {
	outShape, needsBroadcast := binaryShape("add", a, b)

	result, err := buffer.New(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("add: failed to create result buffer: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		addVectorized(result, a, b)
	} else {
		addWithBroadcast(result, a, b, outShape)
	}

	return result
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *buffer.Buffer) *buffer.Buffer {
	outShape, needsBroadcast := binaryShape("sub", a, b)

	result, err := buffer.New(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("sub: failed to create result buffer: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		subVectorized(result, a, b)
	} else {
		subWithBroadcast(result, a, b, outShape)
	}

	return result
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *buffer.Buffer) *buffer.Buffer {
	outShape, needsBroadcast := binaryShape("mul", a, b)

	result, err := buffer.New(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("mul: failed to create result buffer: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		mulVectorized(result, a, b)
	} else {
		mulWithBroadcast(result, a, b, outShape)
	}

	return result
}

// Div performs element-wise division with broadcasting.
// Float division follows IEEE semantics; integer division by zero panics.
func (cpu *CPUBackend) Div(a, b *buffer.Buffer) *buffer.Buffer {
	outShape, needsBroadcast := binaryShape("div", a, b)

	result, err := buffer.New(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("div: failed to create result buffer: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		divVectorized(result, a, b)
	} else {
		divWithBroadcast(result, a, b, outShape)
	}

	return result
}

// Pow raises a to the power b element-wise with broadcasting.
func (cpu *CPUBackend) Pow(a, b *buffer.Buffer) *buffer.Buffer {
	outShape, needsBroadcast := binaryShape("pow", a, b)

	result, err := buffer.New(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("pow: failed to create result buffer: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		powVectorized(result, a, b)
	} else {
		powWithBroadcast(result, a, b, outShape)
	}

	return result
}
