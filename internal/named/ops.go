package named

import (
	"fmt"

	"github.com/axial-ml/axial/internal/buffer"
)

// Binary arithmetic. Operands align by axis name (first-seen unified
// order); axes missing from one operand broadcast. Implicit operands
// materialize on entry. Results always use fresh storage.

// Add returns x + y element-wise after named alignment.
func Add(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("add", x, y, requireNumeric)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.Add(p.left, p.right)), nil
}

// Sub returns x - y element-wise after named alignment.
func Sub(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("sub", x, y, requireNumeric)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.Sub(p.left, p.right)), nil
}

// Mul returns x * y element-wise after named alignment.
func Mul(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("mul", x, y, requireNumeric)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.Mul(p.left, p.right)), nil
}

// Div returns x / y element-wise after named alignment. Float division
// follows IEEE semantics; integer division by zero panics.
func Div(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("div", x, y, requireNumeric)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.Div(p.left, p.right)), nil
}

// Pow returns x ** y element-wise after named alignment. Integer operands
// require non-negative exponents.
func Pow(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("pow", x, y, requireNumeric)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.Pow(p.left, p.right)), nil
}

// Comparisons align like arithmetic and yield Bool arrays.

// Greater returns x > y element-wise after named alignment.
func Greater(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("greater", x, y, requireNumeric)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.Greater(p.left, p.right)), nil
}

// GreaterEqual returns x >= y element-wise after named alignment.
func GreaterEqual(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("greaterEqual", x, y, requireNumeric)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.GreaterEqual(p.left, p.right)), nil
}

// Less returns x < y element-wise after named alignment.
func Less(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("less", x, y, requireNumeric)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.Less(p.left, p.right)), nil
}

// LessEqual returns x <= y element-wise after named alignment.
func LessEqual(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("lessEqual", x, y, requireNumeric)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.LessEqual(p.left, p.right)), nil
}

// ElemEqual returns x == y element-wise after named alignment. Unlike
// Equal, this broadcasts and yields a Bool array.
func ElemEqual(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("elemEqual", x, y, nil)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.EqualElem(p.left, p.right)), nil
}

// NotEqual returns x != y element-wise after named alignment.
func NotEqual(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("notEqual", x, y, nil)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.NotEqualElem(p.left, p.right)), nil
}

// Logical ops require Bool operands.

// And returns x && y element-wise after named alignment.
func And(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("and", x, y, requireBool)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.And(p.left, p.right)), nil
}

// Or returns x || y element-wise after named alignment.
func Or(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("or", x, y, requireBool)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.Or(p.left, p.right)), nil
}

// Xor returns x != y for Bool operands after named alignment.
func Xor(x, y ArrayLike) (*Array, error) {
	p, err := alignOperands("xor", x, y, requireBool)
	if err != nil {
		return nil, err
	}
	return p.wrap(p.backend.Xor(p.left, p.right)), nil
}

// Where selects elements from x where cond is true and from y otherwise.
// All three operands align by name; cond must be Bool, x and y must share
// a dtype.
func Where(cond, x, y ArrayLike) (*Array, error) {
	c, err := materializeOperand("where", cond)
	if err != nil {
		return nil, err
	}
	a, err := materializeOperand("where", x)
	if err != nil {
		return nil, err
	}
	b, err := materializeOperand("where", y)
	if err != nil {
		return nil, err
	}

	if c.DType() != buffer.Bool {
		return nil, fmt.Errorf("where: %w: condition must be bool, got %s", ErrInvalidParameter, c.DType())
	}
	if a.DType() != b.DType() {
		return nil, fmt.Errorf("where: %w: branch dtypes %s and %s differ (use Cast)",
			ErrInvalidParameter, a.DType(), b.DType())
	}

	al, err := unify(c.Axes(), a.Axes(), b.Axes())
	if err != nil {
		return nil, fmt.Errorf("where: %w", err)
	}

	out := c.backend.Where(alignBuffer(c, al), alignBuffer(a, al), alignBuffer(b, al))
	return &Array{buf: out, names: al.names, backend: c.backend}, nil
}

// wrap builds the result array for an aligned binary op.
func (p *alignedPair) wrap(buf *buffer.Buffer) *Array {
	return &Array{buf: buf, names: p.names, backend: p.backend}
}

// Method forms. Each delegates to the package function with the receiver
// as the left operand.

// Add returns a + other element-wise after named alignment.
func (a *Array) Add(other ArrayLike) (*Array, error) { return Add(a, other) }

// Sub returns a - other element-wise after named alignment.
func (a *Array) Sub(other ArrayLike) (*Array, error) { return Sub(a, other) }

// Mul returns a * other element-wise after named alignment.
func (a *Array) Mul(other ArrayLike) (*Array, error) { return Mul(a, other) }

// Div returns a / other element-wise after named alignment.
func (a *Array) Div(other ArrayLike) (*Array, error) { return Div(a, other) }

// Pow returns a ** other element-wise after named alignment.
func (a *Array) Pow(other ArrayLike) (*Array, error) { return Pow(a, other) }

// Greater returns a > other element-wise.
func (a *Array) Greater(other ArrayLike) (*Array, error) { return Greater(a, other) }

// GreaterEqual returns a >= other element-wise.
func (a *Array) GreaterEqual(other ArrayLike) (*Array, error) { return GreaterEqual(a, other) }

// Less returns a < other element-wise.
func (a *Array) Less(other ArrayLike) (*Array, error) { return Less(a, other) }

// LessEqual returns a <= other element-wise.
func (a *Array) LessEqual(other ArrayLike) (*Array, error) { return LessEqual(a, other) }

// ElemEqual returns a == other element-wise as a Bool array.
func (a *Array) ElemEqual(other ArrayLike) (*Array, error) { return ElemEqual(a, other) }

// NotEqual returns a != other element-wise as a Bool array.
func (a *Array) NotEqual(other ArrayLike) (*Array, error) { return NotEqual(a, other) }

// And returns a && other element-wise for Bool arrays.
func (a *Array) And(other ArrayLike) (*Array, error) { return And(a, other) }

// Or returns a || other element-wise for Bool arrays.
func (a *Array) Or(other ArrayLike) (*Array, error) { return Or(a, other) }

// Xor returns a != other element-wise for Bool arrays.
func (a *Array) Xor(other ArrayLike) (*Array, error) { return Xor(a, other) }

// Scalar forms. The scalar broadcasts over every element; axes are
// preserved and no alignment is needed. The scalar converts to the array
// dtype (integer dtypes truncate).

// AddScalar returns a + s element-wise.
func (a *Array) AddScalar(s float64) (*Array, error) {
	if err := requireNumeric("addScalar", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.AddScalar(a.buf, s)), nil
}

// SubScalar returns a - s element-wise.
func (a *Array) SubScalar(s float64) (*Array, error) {
	if err := requireNumeric("subScalar", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.SubScalar(a.buf, s)), nil
}

// MulScalar returns a * s element-wise.
func (a *Array) MulScalar(s float64) (*Array, error) {
	if err := requireNumeric("mulScalar", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.MulScalar(a.buf, s)), nil
}

// DivScalar returns a / s element-wise.
func (a *Array) DivScalar(s float64) (*Array, error) {
	if err := requireNumeric("divScalar", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.DivScalar(a.buf, s)), nil
}

// Unary ops preserve the axis set unchanged.

// Neg returns -a element-wise.
func (a *Array) Neg() (*Array, error) {
	if err := requireNumeric("neg", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.Neg(a.buf)), nil
}

// Abs returns |a| element-wise.
func (a *Array) Abs() (*Array, error) {
	if err := requireNumeric("abs", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.Abs(a.buf)), nil
}

// Exp returns e**a element-wise. Float dtypes only.
func (a *Array) Exp() (*Array, error) {
	if err := requireFloat("exp", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.Exp(a.buf)), nil
}

// Log returns the natural logarithm element-wise. Float dtypes only;
// non-positive inputs yield NaN or -Inf per IEEE.
func (a *Array) Log() (*Array, error) {
	if err := requireFloat("log", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.Log(a.buf)), nil
}

// Sqrt returns the square root element-wise. Float dtypes only; negative
// inputs yield NaN.
func (a *Array) Sqrt() (*Array, error) {
	if err := requireFloat("sqrt", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.Sqrt(a.buf)), nil
}

// Sin returns the sine element-wise. Float dtypes only.
func (a *Array) Sin() (*Array, error) {
	if err := requireFloat("sin", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.Sin(a.buf)), nil
}

// Cos returns the cosine element-wise. Float dtypes only.
func (a *Array) Cos() (*Array, error) {
	if err := requireFloat("cos", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.Cos(a.buf)), nil
}

// Not returns !a element-wise for a Bool array.
func (a *Array) Not() (*Array, error) {
	if err := requireBool("not", a.DType()); err != nil {
		return nil, err
	}
	return a.withSameAxes(a.backend.Not(a.buf)), nil
}

// Cast converts the array to the given element type, keeping axes.
// Casting to the current dtype returns the receiver.
func (a *Array) Cast(dtype buffer.DataType) *Array {
	if dtype == a.DType() {
		return a
	}
	return a.withSameAxes(a.backend.Cast(a.buf, dtype))
}

// Equal reports semantic equality: same axis names with the same extents
// (order ignored), same dtype, and element-wise equal values once other is
// reordered to a's axis order. Equality never broadcasts; arrays with
// different axis sets are simply unequal. NaN is unequal to itself.
func (a *Array) Equal(other ArrayLike) bool {
	b, err := materializeOperand("equal", other)
	if err != nil {
		return false
	}
	if a.DType() != b.DType() {
		return false
	}
	if !a.Axes().Equal(b.Axes()) {
		return false
	}

	bb := b.buf
	if !sameOrder(a.names, b.names) {
		axes := b.Axes()
		perm := make([]int, len(a.names))
		for i, name := range a.names {
			perm[i] = axes.Index(name)
		}
		bb = b.backend.Transpose(bb, perm)
	}

	eq := a.backend.EqualElem(a.buf, bb)
	for _, v := range eq.AsBool() {
		if !v {
			return false
		}
	}
	return true
}

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// withSameAxes builds a result array carrying a's axis names over a new
// buffer of the same shape.
func (a *Array) withSameAxes(buf *buffer.Buffer) *Array {
	return &Array{
		buf:     buf,
		names:   append([]string(nil), a.names...),
		backend: a.backend,
	}
}
