package cpu

import (
	"math"
	"testing"

	"github.com/axial-ml/axial/internal/buffer"
)

func TestCPUBackend_SumDim(t *testing.T) {
	backend := newTestBackend()

	// [[1, 2, 3],
	//  [4, 5, 6]]
	x, _ := buffer.FromSlice([]float64{1, 2, 3, 4, 5, 6}, buffer.Shape{2, 3})

	t.Run("LastDim", func(t *testing.T) {
		result := backend.SumDim(x, 1, false)

		if !result.Shape().Equal(buffer.Shape{2}) {
			t.Fatalf("Expected shape [2], got %v", result.Shape())
		}
		if !float64SliceEqual(result.AsFloat64(), []float64{6, 15}) {
			t.Errorf("SumDim(1) failed: got %v", result.AsFloat64())
		}
	})

	t.Run("FirstDim", func(t *testing.T) {
		result := backend.SumDim(x, 0, false)

		if !result.Shape().Equal(buffer.Shape{3}) {
			t.Fatalf("Expected shape [3], got %v", result.Shape())
		}
		if !float64SliceEqual(result.AsFloat64(), []float64{5, 7, 9}) {
			t.Errorf("SumDim(0) failed: got %v", result.AsFloat64())
		}
	})

	t.Run("KeepDim", func(t *testing.T) {
		result := backend.SumDim(x, 1, true)

		if !result.Shape().Equal(buffer.Shape{2, 1}) {
			t.Fatalf("Expected shape [2, 1], got %v", result.Shape())
		}
		if !float64SliceEqual(result.AsFloat64(), []float64{6, 15}) {
			t.Errorf("SumDim keepDim failed: got %v", result.AsFloat64())
		}
	})

	t.Run("NegativeDim", func(t *testing.T) {
		result := backend.SumDim(x, -1, false)
		if !float64SliceEqual(result.AsFloat64(), []float64{6, 15}) {
			t.Errorf("SumDim(-1) failed: got %v", result.AsFloat64())
		}
	})

	t.Run("Int64", func(t *testing.T) {
		xi, _ := buffer.FromSlice([]int64{1, 2, 3, 4}, buffer.Shape{2, 2})
		result := backend.SumDim(xi, 0, false)

		resultData := result.AsInt64()
		if resultData[0] != 4 || resultData[1] != 6 {
			t.Errorf("Int64 SumDim failed: got %v, expected [4 6]", resultData)
		}
	})

	t.Run("OutOfRangePanics", func(t *testing.T) {
		expectPanic(t, "out of range", func() { backend.SumDim(x, 2, false) })
	})
}

func TestCPUBackend_ProdDim(t *testing.T) {
	backend := newTestBackend()

	x, _ := buffer.FromSlice([]float64{1, 2, 3, 4, 5, 6}, buffer.Shape{2, 3})

	result := backend.ProdDim(x, 1, false)
	if !float64SliceEqual(result.AsFloat64(), []float64{6, 120}) {
		t.Errorf("ProdDim failed: got %v, expected [6 120]", result.AsFloat64())
	}

	// Empty dimension reduces to the multiplicative identity.
	empty, _ := buffer.New(buffer.Shape{2, 0}, buffer.Float64)
	result = backend.ProdDim(empty, 1, false)
	if !float64SliceEqual(result.AsFloat64(), []float64{1, 1}) {
		t.Errorf("ProdDim over empty dim failed: got %v, expected [1 1]", result.AsFloat64())
	}
}

func TestCPUBackend_MeanDim(t *testing.T) {
	backend := newTestBackend()

	x, _ := buffer.FromSlice([]float64{1, 2, 3, 4, 5, 6}, buffer.Shape{2, 3})

	t.Run("LastDim", func(t *testing.T) {
		result := backend.MeanDim(x, 1, false)
		if !float64SliceEqual(result.AsFloat64(), []float64{2, 5}) {
			t.Errorf("MeanDim(1) failed: got %v", result.AsFloat64())
		}
	})

	t.Run("FirstDim", func(t *testing.T) {
		result := backend.MeanDim(x, 0, false)
		if !float64SliceEqual(result.AsFloat64(), []float64{2.5, 3.5, 4.5}) {
			t.Errorf("MeanDim(0) failed: got %v", result.AsFloat64())
		}
	})

	t.Run("IntPanics", func(t *testing.T) {
		xi, _ := buffer.FromSlice([]int64{1, 2}, buffer.Shape{2})
		expectPanic(t, "meandim", func() { backend.MeanDim(xi, 0, false) })
	})
}

func TestCPUBackend_StdDim(t *testing.T) {
	backend := newTestBackend()

	t.Run("Population", func(t *testing.T) {
		x, _ := buffer.FromSlice([]float64{1, 2, 3, 4}, buffer.Shape{4})

		result := backend.StdDim(x, 0, false)

		// Population std of [1,2,3,4]: sqrt(1.25)
		want := math.Sqrt(1.25)
		got := result.AsFloat64()[0]
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("StdDim failed: got %v, expected %v", got, want)
		}
	})

	t.Run("PerRow", func(t *testing.T) {
		// [[1, 1], [1, 3]]
		x, _ := buffer.FromSlice([]float64{1, 1, 1, 3}, buffer.Shape{2, 2})

		result := backend.StdDim(x, 1, false)

		if !float64SliceEqual(result.AsFloat64(), []float64{0, 1}) {
			t.Errorf("StdDim per row failed: got %v, expected [0 1]", result.AsFloat64())
		}
	})

	t.Run("SingleElement", func(t *testing.T) {
		x, _ := buffer.FromSlice([]float64{42}, buffer.Shape{1})

		result := backend.StdDim(x, 0, false)

		if got := result.AsFloat64()[0]; got != 0 {
			t.Errorf("StdDim of single element = %v, expected 0", got)
		}
	})
}

func TestCPUBackend_MinMaxDim(t *testing.T) {
	backend := newTestBackend()

	// [[3, 1, 2],
	//  [6, 5, 4]]
	x, _ := buffer.FromSlice([]float64{3, 1, 2, 6, 5, 4}, buffer.Shape{2, 3})

	t.Run("MinLastDim", func(t *testing.T) {
		result := backend.MinDim(x, 1, false)
		if !float64SliceEqual(result.AsFloat64(), []float64{1, 4}) {
			t.Errorf("MinDim failed: got %v", result.AsFloat64())
		}
	})

	t.Run("MaxLastDim", func(t *testing.T) {
		result := backend.MaxDim(x, 1, false)
		if !float64SliceEqual(result.AsFloat64(), []float64{3, 6}) {
			t.Errorf("MaxDim failed: got %v", result.AsFloat64())
		}
	})

	t.Run("MinFirstDim", func(t *testing.T) {
		result := backend.MinDim(x, 0, false)
		if !float64SliceEqual(result.AsFloat64(), []float64{3, 1, 2}) {
			t.Errorf("MinDim(0) failed: got %v", result.AsFloat64())
		}
	})

	t.Run("Int32", func(t *testing.T) {
		xi, _ := buffer.FromSlice([]int32{5, -2, 7}, buffer.Shape{3})
		if got := backend.MinDim(xi, 0, false).AsInt32()[0]; got != -2 {
			t.Errorf("Int32 MinDim = %v, expected -2", got)
		}
		if got := backend.MaxDim(xi, 0, false).AsInt32()[0]; got != 7 {
			t.Errorf("Int32 MaxDim = %v, expected 7", got)
		}
	})

	t.Run("EmptyPanics", func(t *testing.T) {
		empty, _ := buffer.New(buffer.Shape{0}, buffer.Float64)
		expectPanic(t, "empty reduction", func() { backend.MinDim(empty, 0, false) })
		expectPanic(t, "empty reduction", func() { backend.MaxDim(empty, 0, false) })
	})
}

func TestCPUBackend_AllAnyDim(t *testing.T) {
	backend := newTestBackend()

	// [[true, true],
	//  [true, false]]
	x, _ := buffer.FromSlice([]bool{true, true, true, false}, buffer.Shape{2, 2})

	t.Run("All", func(t *testing.T) {
		result := backend.AllDim(x, 1, false)
		resultData := result.AsBool()
		if resultData[0] != true || resultData[1] != false {
			t.Errorf("AllDim failed: got %v, expected [true false]", resultData)
		}
	})

	t.Run("Any", func(t *testing.T) {
		result := backend.AnyDim(x, 1, false)
		resultData := result.AsBool()
		if resultData[0] != true || resultData[1] != true {
			t.Errorf("AnyDim failed: got %v, expected [true true]", resultData)
		}

		y, _ := buffer.FromSlice([]bool{false, false}, buffer.Shape{2})
		if got := backend.AnyDim(y, 0, false).AsBool()[0]; got != false {
			t.Errorf("AnyDim all-false = %v, expected false", got)
		}
	})

	t.Run("EmptyDim", func(t *testing.T) {
		empty, _ := buffer.New(buffer.Shape{0}, buffer.Bool)

		if got := backend.AllDim(empty, 0, false).AsBool()[0]; got != true {
			t.Errorf("AllDim over empty = %v, expected vacuous true", got)
		}
		if got := backend.AnyDim(empty, 0, false).AsBool()[0]; got != false {
			t.Errorf("AnyDim over empty = %v, expected false", got)
		}
	})

	t.Run("NonBoolPanics", func(t *testing.T) {
		xf, _ := buffer.FromSlice([]float64{1}, buffer.Shape{1})
		expectPanic(t, "bool", func() { backend.AllDim(xf, 0, false) })
	})
}

func TestCPUBackend_ReduceMiddleDim(t *testing.T) {
	backend := newTestBackend()

	// Shape [2, 3, 2], values 1..12. Reducing dim 1 exercises the strided
	// (non-contiguous) path.
	vals := make([]float64, 12)
	for i := range vals {
		vals[i] = float64(i + 1)
	}
	x, _ := buffer.FromSlice(vals, buffer.Shape{2, 3, 2})

	result := backend.SumDim(x, 1, false)

	if !result.Shape().Equal(buffer.Shape{2, 2}) {
		t.Fatalf("Expected shape [2, 2], got %v", result.Shape())
	}

	// [[1+3+5, 2+4+6], [7+9+11, 8+10+12]]
	expected := []float64{9, 12, 27, 30}
	if !float64SliceEqual(result.AsFloat64(), expected) {
		t.Errorf("SumDim middle failed: got %v, expected %v", result.AsFloat64(), expected)
	}
}
