package buffer

import (
	"errors"
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// DataType tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float64, 8},
		{Float32, 4},
		{Int64, 8},
		{Int32, 4},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float64, "float64"},
		{Float32, "float32"},
		{Int64, "int64"},
		{Int32, "int32"},
		{Bool, "bool"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestDataTypeOf(t *testing.T) {
	if dt := dataTypeOf(float64(0)); dt != Float64 {
		t.Errorf("dataTypeOf(float64) = %v, want Float64", dt)
	}
	if dt := dataTypeOf(float32(0)); dt != Float32 {
		t.Errorf("dataTypeOf(float32) = %v, want Float32", dt)
	}
	if dt := dataTypeOf(int64(0)); dt != Int64 {
		t.Errorf("dataTypeOf(int64) = %v, want Int64", dt)
	}
	if dt := dataTypeOf(true); dt != Bool {
		t.Errorf("dataTypeOf(bool) = %v, want Bool", dt)
	}
}

// Shape tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1}, // Scalar
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{3, 0}, 0}, // Empty axis
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Shape{2, 3}.Validate() = %v, want nil", err)
	}
	if err := (Shape{2, 0}).Validate(); err != nil {
		t.Errorf("Shape{2, 0}.Validate() = %v, want nil (zero extents are legal)", err)
	}
	err := (Shape{2, -1}).Validate()
	if err == nil {
		t.Fatal("Shape{2, -1}.Validate() = nil, want error")
	}
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Validate error = %v, want ErrShapeMismatch", err)
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape   Shape
		strides []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.strides) {
			t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.strides)
			continue
		}
		for i := range got {
			if got[i] != tt.strides[i] {
				t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.strides)
				break
			}
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{"same shape", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{"broadcast left", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"broadcast right", Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"missing dims", Shape{5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"scalar", Shape{}, Shape{3, 5}, Shape{3, 5}, true, false},
		{"incompatible", Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, broadcast, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrShapeMismatch) {
					t.Errorf("error = %v, want ErrShapeMismatch", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertEqualShape(t, tt.want, got, "broadcast shape")
			if broadcast != tt.broadcast {
				t.Errorf("needsBroadcast = %v, want %v", broadcast, tt.broadcast)
			}
		})
	}
}

// Buffer tests

func TestNewBuffer(t *testing.T) {
	buf, err := New(Shape{2, 3}, Float64)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	assertEqualShape(t, Shape{2, 3}, buf.Shape(), "shape")
	if buf.DType() != Float64 {
		t.Errorf("dtype = %v, want Float64", buf.DType())
	}
	if buf.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", buf.NumElements())
	}
	if buf.ByteSize() != 48 {
		t.Errorf("ByteSize = %d, want 48", buf.ByteSize())
	}

	// Zeroed on allocation
	for i, v := range buf.AsFloat64() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewBufferEmpty(t *testing.T) {
	buf, err := New(Shape{3, 0}, Float64)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if buf.NumElements() != 0 {
		t.Errorf("NumElements = %d, want 0", buf.NumElements())
	}
	if got := buf.AsFloat64(); len(got) != 0 {
		t.Errorf("AsFloat64 length = %d, want 0", len(got))
	}
}

func TestNewBufferInvalidShape(t *testing.T) {
	_, err := New(Shape{2, -3}, Float64)
	if err == nil {
		t.Fatal("expected error for negative extent")
	}
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestFromSlice(t *testing.T) {
	buf, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	data := buf.AsFloat64()
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if data[i] != want {
			t.Errorf("element %d = %v, want %v", i, data[i], want)
		}
	}

	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 3})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestBufferCloneSharesStorage(t *testing.T) {
	buf, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	if !buf.IsUnique() {
		t.Error("fresh buffer should be unique")
	}

	clone := buf.Clone()
	if buf.IsUnique() || clone.IsUnique() {
		t.Error("buffer and clone should share storage")
	}

	// Same backing bytes
	if &buf.Data()[0] != &clone.Data()[0] {
		t.Error("clone should alias the original storage")
	}

	clone.Release()
	if !buf.IsUnique() {
		t.Error("releasing the clone should make the original unique again")
	}
}

func TestBufferWithShape(t *testing.T) {
	buf, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	view, err := buf.WithShape(Shape{3, 2})
	if err != nil {
		t.Fatalf("WithShape failed: %v", err)
	}
	assertEqualShape(t, Shape{3, 2}, view.Shape(), "view shape")
	if &buf.Data()[0] != &view.Data()[0] {
		t.Error("view should alias the original storage")
	}

	_, err = buf.WithShape(Shape{4, 2})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestBufferAt(t *testing.T) {
	buf, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if got := buf.Float64At(1, 2); got != 6 {
		t.Errorf("Float64At(1, 2) = %v, want 6", got)
	}
	buf.SetFloat64At(42, 0, 1)
	if got := buf.Float64At(0, 1); got != 42 {
		t.Errorf("Float64At(0, 1) = %v, want 42", got)
	}
}

func TestScalarBuffer(t *testing.T) {
	buf := Scalar(3.5)
	assertEqualShape(t, Shape{}, buf.Shape(), "scalar shape")
	if buf.NumElements() != 1 {
		t.Errorf("NumElements = %d, want 1", buf.NumElements())
	}
	if got := buf.AsFloat64()[0]; got != 3.5 {
		t.Errorf("value = %v, want 3.5", got)
	}
}

func TestBufferEqual(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	c, _ := FromSlice([]float64{1, 2, 4}, Shape{3})
	d, _ := FromSlice([]float32{1, 2, 3}, Shape{3})

	if !a.Equal(b) {
		t.Error("equal buffers reported unequal")
	}
	if a.Equal(c) {
		t.Error("different values reported equal")
	}
	if a.Equal(d) {
		t.Error("different dtypes reported equal")
	}
}

// FromNested tests

func TestFromNested(t *testing.T) {
	buf, shape, err := FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}
	assertEqualShape(t, Shape{2, 3}, shape, "nested shape")
	data := buf.AsFloat64()
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if data[i] != want {
			t.Errorf("element %d = %v, want %v", i, data[i], want)
		}
	}
}

func TestFromNestedInt(t *testing.T) {
	buf, shape, err := FromNested([]int64{7, 8, 9})
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}
	assertEqualShape(t, Shape{3}, shape, "nested shape")
	if buf.DType() != Int64 {
		t.Errorf("dtype = %v, want Int64", buf.DType())
	}
}

func TestFromNestedRagged(t *testing.T) {
	_, _, err := FromNested([][]float64{{1, 2, 3}, {4, 5}})
	if err == nil {
		t.Fatal("expected error for ragged nesting")
	}
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestFromNestedMixedTypes(t *testing.T) {
	for _, value := range []any{
		[]any{1.0, "two"},
		[]any{1.0, 2},
		[]any{1.0, nil},
	} {
		_, _, err := FromNested(value)
		if err == nil {
			t.Fatalf("expected error for %v", value)
		}
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("error for %v = %v, want ErrInvalidParameter", value, err)
		}
	}
}
