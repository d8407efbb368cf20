package cpu

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/axial-ml/axial/internal/buffer"
)

// Float64 vectorized operations. Same-shape paths delegate to gonum.

func addVectorizedFloat64(dst, a, b []float64) {
	floats.AddTo(dst, a, b)
}

func subVectorizedFloat64(dst, a, b []float64) {
	floats.SubTo(dst, a, b)
}

func mulVectorizedFloat64(dst, a, b []float64) {
	floats.MulTo(dst, a, b)
}

func divVectorizedFloat64(dst, a, b []float64) {
	floats.DivTo(dst, a, b)
}

func powVectorizedFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = math.Pow(a[i], b[i])
	}
}

// Float64 broadcasting operations

func addBroadcastFloat64(dst, a, b []float64, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] + b[sourceIndex(i, outStrides, bStrides)]
	}
}

func subBroadcastFloat64(dst, a, b []float64, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] - b[sourceIndex(i, outStrides, bStrides)]
	}
}

func mulBroadcastFloat64(dst, a, b []float64, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] * b[sourceIndex(i, outStrides, bStrides)]
	}
}

func divBroadcastFloat64(dst, a, b []float64, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] / b[sourceIndex(i, outStrides, bStrides)]
	}
}

func powBroadcastFloat64(dst, a, b []float64, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = math.Pow(a[sourceIndex(i, outStrides, aStrides)], b[sourceIndex(i, outStrides, bStrides)])
	}
}
