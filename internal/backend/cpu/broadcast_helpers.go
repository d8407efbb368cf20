package cpu

import (
	"github.com/axial-ml/axial/internal/buffer"
)

// broadcastStrides computes strides for broadcasting a shape to outShape.
// Dimensions of size 1 (and dimensions missing on the left) get stride 0,
// so repeated reads hit the same source element.
func broadcastStrides(inShape, outShape buffer.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			// Padded dimension, stride is 0
			strides[i] = 0
		case inShape[inIdx] == 1:
			// Broadcast dimension, stride is 0
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// sourceIndex maps a flat output index to the flat index in a source
// buffer whose strides have been broadcast-adjusted by broadcastStrides.
func sourceIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
