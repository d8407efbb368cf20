package buffer

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// storage is a reference-counted shared byte buffer.
// Sharing makes Clone cheap; operators always allocate fresh result
// buffers, so aliased buffers never observe each other's writes.
type storage struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newStorage creates a new reference-counted byte buffer with refCount = 1.
func newStorage(size int) *storage {
	st := &storage{
		data: make([]byte, size),
	}
	st.refCount.Store(1)
	return st
}

// addRef increments the reference count (for Clone operations).
func (st *storage) addRef() {
	st.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (st *storage) release() {
	if st.refCount.Add(-1) == 0 {
		st.mu.Lock()
		defer st.mu.Unlock()
		st.data = nil
	}
}

// isUnique returns true if this storage has only one reference.
func (st *storage) isUnique() bool {
	return st.refCount.Load() == 1
}

// Buffer is the dense numeric storage unit: a row-major block of elements
// with a shape and a runtime data type. Buffers carry no axis names; the
// named layer supplies those.
type Buffer struct {
	storage *storage // Shared reference-counted byte buffer
	shape   Shape    // Extents, outermost first
	stride  []int    // Row-major element strides
	dtype   DataType // Runtime type information
}

// New creates a new Buffer with the given shape and type.
// Memory is allocated and zeroed.
func New(shape Shape, dtype DataType) (*Buffer, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()
	byteSize := numElements * dtype.Size()

	return &Buffer{
		storage: newStorage(byteSize),
		shape:   shape.Clone(),
		stride:  shape.ComputeStrides(),
		dtype:   dtype,
	}, nil
}

// FromSlice creates a buffer from a Go slice.
// The slice is copied into the buffer's memory.
func FromSlice[T DType](data []T, shape Shape) (*Buffer, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := dataTypeOf(dummy)

	buf, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}

	dst := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf.storage.data))), len(data))
	copy(dst, data)

	return buf, nil
}

// Scalar creates a rank-0 float64 buffer holding a single value.
func Scalar(v float64) *Buffer {
	buf, err := New(Shape{}, Float64)
	if err != nil {
		panic(fmt.Sprintf("scalar: %v", err))
	}
	buf.AsFloat64()[0] = v
	return buf
}

// Shape returns the buffer's shape.
func (b *Buffer) Shape() Shape {
	return b.shape
}

// Strides returns the buffer's row-major element strides.
func (b *Buffer) Strides() []int {
	return b.stride
}

// DType returns the buffer's data type.
func (b *Buffer) DType() DataType {
	return b.dtype
}

// Rank returns the number of dimensions.
func (b *Buffer) Rank() int {
	return len(b.shape)
}

// NumElements returns the total number of elements.
func (b *Buffer) NumElements() int {
	return b.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (b *Buffer) ByteSize() int {
	return b.NumElements() * b.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (b *Buffer) Data() []byte {
	return b.storage.data
}

// AsFloat64 interprets the data as []float64.
// Panics if the buffer's dtype is not Float64.
func (b *Buffer) AsFloat64() []float64 {
	if b.dtype != Float64 {
		panic(fmt.Sprintf("buffer dtype is %s, not float64", b.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(b.storage.data))), b.NumElements())
}

// AsFloat32 interprets the data as []float32.
// Panics if the buffer's dtype is not Float32.
func (b *Buffer) AsFloat32() []float32 {
	if b.dtype != Float32 {
		panic(fmt.Sprintf("buffer dtype is %s, not float32", b.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(b.storage.data))), b.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the buffer's dtype is not Int64.
func (b *Buffer) AsInt64() []int64 {
	if b.dtype != Int64 {
		panic(fmt.Sprintf("buffer dtype is %s, not int64", b.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(unsafe.SliceData(b.storage.data))), b.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the buffer's dtype is not Int32.
func (b *Buffer) AsInt32() []int32 {
	if b.dtype != Int32 {
		panic(fmt.Sprintf("buffer dtype is %s, not int32", b.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(b.storage.data))), b.NumElements())
}

// AsBool interprets the data as []bool.
// Panics if the buffer's dtype is not Bool.
func (b *Buffer) AsBool() []bool {
	if b.dtype != Bool {
		panic(fmt.Sprintf("buffer dtype is %s, not bool", b.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(unsafe.SliceData(b.storage.data))), b.NumElements())
}

// Float64At returns the element at the given indices converted to float64.
// Bool elements read as 1 and 0. Intended for formatting and tests, not
// hot paths.
func (b *Buffer) Float64At(indices ...int) float64 {
	off := b.flatOffset(indices)
	switch b.dtype {
	case Float64:
		return b.AsFloat64()[off]
	case Float32:
		return float64(b.AsFloat32()[off])
	case Int64:
		return float64(b.AsInt64()[off])
	case Int32:
		return float64(b.AsInt32()[off])
	case Bool:
		if b.AsBool()[off] {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("at: unsupported dtype %s", b.dtype))
	}
}

// SetFloat64At stores a float64 value at the given indices, converting to
// the buffer dtype. Bool stores v != 0.
func (b *Buffer) SetFloat64At(v float64, indices ...int) {
	off := b.flatOffset(indices)
	switch b.dtype {
	case Float64:
		b.AsFloat64()[off] = v
	case Float32:
		b.AsFloat32()[off] = float32(v)
	case Int64:
		b.AsInt64()[off] = int64(v)
	case Int32:
		b.AsInt32()[off] = int32(v)
	case Bool:
		b.AsBool()[off] = v != 0
	default:
		panic(fmt.Sprintf("set: unsupported dtype %s", b.dtype))
	}
}

// flatOffset converts multi-dimensional indices to a flat element offset.
func (b *Buffer) flatOffset(indices []int) int {
	if len(indices) != len(b.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(b.shape), len(indices)))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= b.shape[i] {
			panic(fmt.Sprintf("index %d out of range for extent %d", idx, b.shape[i]))
		}
		off += idx * b.stride[i]
	}
	return off
}

// Clone creates a shallow copy of the Buffer (shares storage with
// reference counting). Cloning is cheap; because operators never write
// into operand buffers, shared storage is safe.
func (b *Buffer) Clone() *Buffer {
	b.storage.addRef()
	return &Buffer{
		storage: b.storage,
		shape:   b.shape.Clone(),
		stride:  append([]int(nil), b.stride...),
		dtype:   b.dtype,
	}
}

// WithShape returns a view of the same storage under a different shape.
// The new shape must describe the same number of elements.
func (b *Buffer) WithShape(shape Shape) (*Buffer, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != b.NumElements() {
		return nil, fmt.Errorf("%w: cannot view %v as %v (different number of elements)",
			ErrShapeMismatch, b.shape, shape)
	}
	b.storage.addRef()
	return &Buffer{
		storage: b.storage,
		shape:   shape.Clone(),
		stride:  shape.ComputeStrides(),
		dtype:   b.dtype,
	}, nil
}

// Release decrements the reference count and deallocates if it reaches 0.
func (b *Buffer) Release() {
	b.storage.release()
}

// IsUnique returns true if this buffer is the only reference to the storage.
func (b *Buffer) IsUnique() bool {
	return b.storage.isUnique()
}

// Equal reports whether two buffers have the same shape, dtype, and
// element bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.dtype != other.dtype || !b.shape.Equal(other.shape) {
		return false
	}
	ad, bd := b.Data(), other.Data()
	if len(ad) != len(bd) {
		return false
	}
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}
	return true
}
