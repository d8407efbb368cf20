package buffer

// Backend defines the interface that compute backends must implement.
// Backends handle raw positional computation over buffers; axis names
// never reach this layer.
//
// Implementations:
//   - backend/cpu: pure Go kernels with gonum-accelerated float64 paths
//
// Backend methods panic on violated preconditions (shape or dtype
// conflicts). The named layer validates user input and returns errors
// before calling in, so a backend panic indicates a library bug.
//
// Example:
//
//	import (
//	    "github.com/axial-ml/axial/buffer"
//	    "github.com/axial-ml/axial/backend/cpu"
//	)
//
//	be := cpu.New()
//	sum := be.Add(a, b) // NumPy-style broadcasting
type Backend interface {
	// Name returns a human-readable backend identifier.
	Name() string

	// Element-wise binary operations with NumPy-style broadcasting.
	// Operands must share a dtype; the result keeps it.
	Add(a, b *Buffer) *Buffer
	Sub(a, b *Buffer) *Buffer
	Mul(a, b *Buffer) *Buffer
	Div(a, b *Buffer) *Buffer
	Pow(a, b *Buffer) *Buffer

	// Comparisons broadcast like binary operations and yield Bool buffers.
	Greater(a, b *Buffer) *Buffer
	GreaterEqual(a, b *Buffer) *Buffer
	Less(a, b *Buffer) *Buffer
	LessEqual(a, b *Buffer) *Buffer
	EqualElem(a, b *Buffer) *Buffer
	NotEqualElem(a, b *Buffer) *Buffer

	// Logical operations require Bool operands.
	And(a, b *Buffer) *Buffer
	Or(a, b *Buffer) *Buffer
	Xor(a, b *Buffer) *Buffer
	Not(x *Buffer) *Buffer

	// Scalar operations broadcast a Go scalar over every element.
	// The scalar is converted to the buffer dtype.
	AddScalar(x *Buffer, s float64) *Buffer
	SubScalar(x *Buffer, s float64) *Buffer
	MulScalar(x *Buffer, s float64) *Buffer
	DivScalar(x *Buffer, s float64) *Buffer

	// Unary math. Transcendental operations require float dtypes and
	// follow IEEE semantics (Log of a negative value is NaN).
	Neg(x *Buffer) *Buffer
	Abs(x *Buffer) *Buffer
	Exp(x *Buffer) *Buffer
	Log(x *Buffer) *Buffer
	Sqrt(x *Buffer) *Buffer
	Sin(x *Buffer) *Buffer
	Cos(x *Buffer) *Buffer

	// Reductions along one dimension. keepDim retains a size-1 extent in
	// place of the reduced dimension.
	SumDim(x *Buffer, dim int, keepDim bool) *Buffer
	ProdDim(x *Buffer, dim int, keepDim bool) *Buffer
	MeanDim(x *Buffer, dim int, keepDim bool) *Buffer
	StdDim(x *Buffer, dim int, keepDim bool) *Buffer
	MinDim(x *Buffer, dim int, keepDim bool) *Buffer
	MaxDim(x *Buffer, dim int, keepDim bool) *Buffer
	AllDim(x *Buffer, dim int, keepDim bool) *Buffer
	AnyDim(x *Buffer, dim int, keepDim bool) *Buffer

	// Structural operations.
	Reshape(x *Buffer, shape Shape) *Buffer
	Transpose(x *Buffer, perm []int) *Buffer
	Expand(x *Buffer, shape Shape) *Buffer
	Take(x *Buffer, picks [][]int) *Buffer
	Concat(xs []*Buffer, dim int) *Buffer
	Cast(x *Buffer, dtype DataType) *Buffer
	Where(cond, a, b *Buffer) *Buffer
}
