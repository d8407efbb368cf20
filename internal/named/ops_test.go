package named

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axial-ml/axial/internal/buffer"
)

func TestAdd_AlignsByName(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 1, 2, 3)
	y := vecf(t, b, "y", 4, 5)

	sum, err := Add(x, y)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, sum.AxisNames())
	assert.Equal(t, buffer.Shape{3, 2}, sum.Buffer().Shape())
	assert.Equal(t, []float64{5, 6, 6, 7, 7, 8}, sum.Buffer().AsFloat64())
}

func TestAdd_SharedAxisAnyOrder(t *testing.T) {
	b := newTestBackend()
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6},
		AxisSet{{"row", 2}, {"col", 3}}, b)
	require.NoError(t, err)
	y, err := FromSlice([]float64{10, 40, 20, 50, 30, 60},
		AxisSet{{"col", 3}, {"row", 2}}, b)
	require.NoError(t, err)

	sum, err := Add(x, y)
	require.NoError(t, err)

	assert.Equal(t, []string{"row", "col"}, sum.AxisNames(), "left operand fixes the order")
	assert.Equal(t, []float64{11, 22, 33, 44, 55, 66}, sum.Buffer().AsFloat64())
}

func TestAdd_OperandsUntouched(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 1, 2)
	y := vecf(t, b, "x", 10, 20)

	_, err := Add(x, y)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, x.Buffer().AsFloat64())
	assert.Equal(t, []float64{10, 20}, y.Buffer().AsFloat64())
}

func TestAdd_ExtentMismatch(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 1, 2, 3)
	y := vecf(t, b, "x", 1, 2)

	_, err := Add(x, y)
	assert.ErrorIs(t, err, ErrAxisMismatch)
}

func TestAdd_DTypeMismatch(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 1, 2)
	y, err := FromSlice([]int64{1, 2}, AxisSet{{"x", 2}}, b)
	require.NoError(t, err)

	_, err = Add(x, y)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "use Cast")
}

func TestAdd_BoolRejected(t *testing.T) {
	b := newTestBackend()
	x, err := FromSlice([]bool{true, false}, AxisSet{{"x", 2}}, b)
	require.NoError(t, err)

	_, err = Add(x, x)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestAdd_ScalarOperandBroadcasts(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 1, 2, 3)
	s, err := Scalar(10, b)
	require.NoError(t, err)

	sum, err := Add(x, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, sum.AxisNames())
	assert.Equal(t, []float64{11, 12, 13}, sum.Buffer().AsFloat64())
}

func TestSubMulDivPow(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 8, 6, 4)
	y := vecf(t, b, "x", 2, 3, 4)

	diff, err := Sub(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 3, 0}, diff.Buffer().AsFloat64())

	prod, err := Mul(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{16, 18, 16}, prod.Buffer().AsFloat64())

	quot, err := Div(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 2, 1}, quot.Buffer().AsFloat64())

	pow, err := Pow(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{64, 216, 256}, pow.Buffer().AsFloat64())
}

func TestDiv_IntTruncates(t *testing.T) {
	b := newTestBackend()
	x, err := FromSlice([]int64{7, -7}, AxisSet{{"x", 2}}, b)
	require.NoError(t, err)
	y, err := FromSlice([]int64{2, 2}, AxisSet{{"x", 2}}, b)
	require.NoError(t, err)

	quot, err := Div(x, y)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, -3}, quot.Buffer().AsInt64())
}

func TestComparisons(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 1, 2, 3)
	y := vecf(t, b, "x", 2, 2, 2)

	gt, err := Greater(x, y)
	require.NoError(t, err)
	assert.Equal(t, buffer.Bool, gt.DType())
	assert.Equal(t, []bool{false, false, true}, gt.Buffer().AsBool())

	ge, err := GreaterEqual(x, y)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, ge.Buffer().AsBool())

	lt, err := Less(x, y)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, lt.Buffer().AsBool())

	le, err := LessEqual(x, y)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, le.Buffer().AsBool())

	eq, err := ElemEqual(x, y)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, eq.Buffer().AsBool())

	ne, err := NotEqual(x, y)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, ne.Buffer().AsBool())
}

func TestComparison_AlignsLikeArithmetic(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 1, 5)
	y := vecf(t, b, "y", 2, 4)

	gt, err := Greater(x, y)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, gt.AxisNames())
	assert.Equal(t, []bool{false, false, true, true}, gt.Buffer().AsBool())
}

func TestElemEqual_BoolOperands(t *testing.T) {
	b := newTestBackend()
	x, err := FromSlice([]bool{true, false}, AxisSet{{"x", 2}}, b)
	require.NoError(t, err)
	y, err := FromSlice([]bool{true, true}, AxisSet{{"x", 2}}, b)
	require.NoError(t, err)

	eq, err := ElemEqual(x, y)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, eq.Buffer().AsBool())
}

func TestLogical(t *testing.T) {
	b := newTestBackend()
	x, err := FromSlice([]bool{true, true, false, false}, AxisSet{{"x", 4}}, b)
	require.NoError(t, err)
	y, err := FromSlice([]bool{true, false, true, false}, AxisSet{{"x", 4}}, b)
	require.NoError(t, err)

	and, err := And(x, y)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, and.Buffer().AsBool())

	or, err := Or(x, y)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false}, or.Buffer().AsBool())

	xor, err := Xor(x, y)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, xor.Buffer().AsBool())

	not, err := x.Not()
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, true}, not.Buffer().AsBool())

	t.Run("numeric rejected", func(t *testing.T) {
		nums := vecf(t, b, "x", 1, 0)
		_, err := And(nums, nums)
		assert.ErrorIs(t, err, ErrInvalidParameter)
		_, err = nums.Not()
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestScalarOps(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 1, 2, 3)

	sum, err := x.AddScalar(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, sum.AxisNames())
	assert.Equal(t, []float64{11, 12, 13}, sum.Buffer().AsFloat64())

	diff, err := x.SubScalar(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, diff.Buffer().AsFloat64())

	prod, err := x.MulScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, prod.Buffer().AsFloat64())

	quot, err := x.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1.5}, quot.Buffer().AsFloat64())

	t.Run("bool rejected", func(t *testing.T) {
		flags, err := FromSlice([]bool{true}, AxisSet{{"x", 1}}, b)
		require.NoError(t, err)
		_, err = flags.AddScalar(1)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestUnary(t *testing.T) {
	b := newTestBackend()

	neg, err := vecf(t, b, "x", 1, -2).Neg()
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2}, neg.Buffer().AsFloat64())

	abs, err := vecf(t, b, "x", -3, 4).Abs()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, abs.Buffer().AsFloat64())

	exp, err := vecf(t, b, "x", 0, 1).Exp()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, math.E}, exp.Buffer().AsFloat64(), 1e-12)

	log, err := exp.Log()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1}, log.Buffer().AsFloat64(), 1e-12)

	sqrt, err := vecf(t, b, "x", 4, 9).Sqrt()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, sqrt.Buffer().AsFloat64())

	sin, err := vecf(t, b, "x", 0, math.Pi/2).Sin()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1}, sin.Buffer().AsFloat64(), 1e-12)

	cos, err := vecf(t, b, "x", 0, math.Pi).Cos()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, -1}, cos.Buffer().AsFloat64(), 1e-12)

	t.Run("float only", func(t *testing.T) {
		ints, err := FromSlice([]int64{1, 2}, AxisSet{{"x", 2}}, b)
		require.NoError(t, err)
		_, err = ints.Exp()
		assert.ErrorIs(t, err, ErrInvalidParameter)
		_, err = ints.Sqrt()
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestWhere(t *testing.T) {
	b := newTestBackend()
	cond, err := FromSlice([]bool{true, false}, AxisSet{{"x", 2}}, b)
	require.NoError(t, err)
	vals := vecf(t, b, "y", 1, 2)
	zero, err := Scalar(0, b)
	require.NoError(t, err)

	out, err := Where(cond, vals, zero)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, out.AxisNames())
	assert.Equal(t, []float64{1, 2, 0, 0}, out.Buffer().AsFloat64())

	t.Run("cond must be bool", func(t *testing.T) {
		nums := vecf(t, b, "x", 1, 0)
		_, err := Where(nums, vals, zero)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
	t.Run("branch dtypes must match", func(t *testing.T) {
		ints, err := FromSlice([]int64{1, 2}, AxisSet{{"y", 2}}, b)
		require.NoError(t, err)
		_, err = Where(cond, vals, ints)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestCast(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 1.9, -2.7, 3)

	ints := x.Cast(buffer.Int32)
	assert.Equal(t, buffer.Int32, ints.DType())
	assert.Equal(t, []string{"x"}, ints.AxisNames())
	assert.Equal(t, []int32{1, -2, 3}, ints.Buffer().AsInt32())

	t.Run("identity", func(t *testing.T) {
		same := x.Cast(buffer.Float64)
		assert.Same(t, x, same)
	})
	t.Run("mixed dtypes combine after cast", func(t *testing.T) {
		y, err := FromSlice([]int32{10, 20, 30}, AxisSet{{"x", 3}}, b)
		require.NoError(t, err)
		sum, err := Add(ints, y)
		require.NoError(t, err)
		assert.Equal(t, []int32{11, 18, 33}, sum.Buffer().AsInt32())
	})
}

func TestEqual(t *testing.T) {
	b := newTestBackend()
	x, err := FromSlice([]float64{1, 2, 3, 4}, AxisSet{{"r", 2}, {"c", 2}}, b)
	require.NoError(t, err)

	t.Run("axis order ignored", func(t *testing.T) {
		transposed, err := FromSlice([]float64{1, 3, 2, 4}, AxisSet{{"c", 2}, {"r", 2}}, b)
		require.NoError(t, err)
		assert.True(t, x.Equal(transposed))
		assert.True(t, transposed.Equal(x))
	})
	t.Run("value difference", func(t *testing.T) {
		other, err := FromSlice([]float64{1, 2, 3, 5}, AxisSet{{"r", 2}, {"c", 2}}, b)
		require.NoError(t, err)
		assert.False(t, x.Equal(other))
	})
	t.Run("axis name difference", func(t *testing.T) {
		other, err := FromSlice([]float64{1, 2, 3, 4}, AxisSet{{"r", 2}, {"z", 2}}, b)
		require.NoError(t, err)
		assert.False(t, x.Equal(other))
	})
	t.Run("never broadcasts", func(t *testing.T) {
		col, err := FromSlice([]float64{1, 2}, AxisSet{{"r", 2}, {"c", 1}}, b)
		require.NoError(t, err)
		assert.False(t, x.Equal(col))
	})
	t.Run("dtype difference", func(t *testing.T) {
		assert.False(t, x.Equal(x.Cast(buffer.Float32)))
	})
	t.Run("nan unequal to itself", func(t *testing.T) {
		nan := vecf(t, b, "x", math.NaN())
		assert.False(t, nan.Equal(nan))
	})
}

func TestMethodFormsDelegate(t *testing.T) {
	b := newTestBackend()
	x := vecf(t, b, "x", 1, 2)
	y := vecf(t, b, "x", 10, 20)

	sum, err := x.Add(y)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22}, sum.Buffer().AsFloat64())

	prod, err := x.Mul(y)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 40}, prod.Buffer().AsFloat64())

	gt, err := y.Greater(x)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, gt.Buffer().AsBool())
}

func benchOperands(b *testing.B, rows, cols int) (*Array, *Array) {
	b.Helper()
	be := newTestBackend()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i)
	}
	x, err := FromSlice(data, AxisSet{{"row", rows}, {"col", cols}}, be)
	if err != nil {
		b.Fatal(err)
	}
	y, err := FromSlice(data, AxisSet{{"col", cols}, {"row", rows}}, be)
	if err != nil {
		b.Fatal(err)
	}
	return x, y
}

func BenchmarkAdd_SameOrder(b *testing.B) {
	x, _ := benchOperands(b, 256, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Add(x, x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdd_TransposedOperand(b *testing.B) {
	x, y := benchOperands(b, 256, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Add(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
