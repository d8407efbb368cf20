package cpu

import (
	"fmt"

	"github.com/axial-ml/axial/internal/buffer"
)

// Int64 vectorized operations

func addVectorizedInt64(dst, a, b []int64) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subVectorizedInt64(dst, a, b []int64) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulVectorizedInt64(dst, a, b []int64) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divVectorizedInt64(dst, a, b []int64) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

func powVectorizedInt64(dst, a, b []int64) {
	for i := range a {
		dst[i] = ipow64(a[i], b[i])
	}
}

// Int64 broadcasting operations

func addBroadcastInt64(dst, a, b []int64, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] + b[sourceIndex(i, outStrides, bStrides)]
	}
}

func subBroadcastInt64(dst, a, b []int64, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] - b[sourceIndex(i, outStrides, bStrides)]
	}
}

func mulBroadcastInt64(dst, a, b []int64, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] * b[sourceIndex(i, outStrides, bStrides)]
	}
}

func divBroadcastInt64(dst, a, b []int64, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] / b[sourceIndex(i, outStrides, bStrides)]
	}
}

func powBroadcastInt64(dst, a, b []int64, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = ipow64(a[sourceIndex(i, outStrides, aStrides)], b[sourceIndex(i, outStrides, bStrides)])
	}
}

// Int32 vectorized operations

func addVectorizedInt32(dst, a, b []int32) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subVectorizedInt32(dst, a, b []int32) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulVectorizedInt32(dst, a, b []int32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divVectorizedInt32(dst, a, b []int32) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

func powVectorizedInt32(dst, a, b []int32) {
	for i := range a {
		dst[i] = int32(ipow64(int64(a[i]), int64(b[i])))
	}
}

// Int32 broadcasting operations

func addBroadcastInt32(dst, a, b []int32, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] + b[sourceIndex(i, outStrides, bStrides)]
	}
}

func subBroadcastInt32(dst, a, b []int32, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] - b[sourceIndex(i, outStrides, bStrides)]
	}
}

func mulBroadcastInt32(dst, a, b []int32, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] * b[sourceIndex(i, outStrides, bStrides)]
	}
}

func divBroadcastInt32(dst, a, b []int32, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] / b[sourceIndex(i, outStrides, bStrides)]
	}
}

func powBroadcastInt32(dst, a, b []int32, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		ai := int64(a[sourceIndex(i, outStrides, aStrides)])
		bi := int64(b[sourceIndex(i, outStrides, bStrides)])
		dst[i] = int32(ipow64(ai, bi))
	}
}

// ipow64 computes integer exponentiation by squaring.
// Negative exponents are rejected: the result would not be an integer.
func ipow64(base, exp int64) int64 {
	if exp < 0 {
		panic(fmt.Sprintf("pow: negative integer exponent %d", exp))
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
