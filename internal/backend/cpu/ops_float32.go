package cpu

import (
	"math"

	"github.com/axial-ml/axial/internal/buffer"
)

// Float32 vectorized operations

func addVectorizedFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subVectorizedFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulVectorizedFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divVectorizedFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

func powVectorizedFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = float32(math.Pow(float64(a[i]), float64(b[i])))
	}
}

// Float32 broadcasting operations

func addBroadcastFloat32(dst, a, b []float32, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] + b[sourceIndex(i, outStrides, bStrides)]
	}
}

func subBroadcastFloat32(dst, a, b []float32, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] - b[sourceIndex(i, outStrides, bStrides)]
	}
}

func mulBroadcastFloat32(dst, a, b []float32, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] * b[sourceIndex(i, outStrides, bStrides)]
	}
}

func divBroadcastFloat32(dst, a, b []float32, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		dst[i] = a[sourceIndex(i, outStrides, aStrides)] / b[sourceIndex(i, outStrides, bStrides)]
	}
}

func powBroadcastFloat32(dst, a, b []float32, aShape, bShape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		ai := a[sourceIndex(i, outStrides, aStrides)]
		bi := b[sourceIndex(i, outStrides, bStrides)]
		dst[i] = float32(math.Pow(float64(ai), float64(bi)))
	}
}
