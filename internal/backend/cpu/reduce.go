package cpu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/axial-ml/axial/internal/buffer"
)

// Reductions along one dimension. Every reduction decomposes the shape
// around the reduced dimension into [outer, n, inner] and walks groups of
// n elements spaced inner apart. When inner == 1 the group is contiguous
// and the float64 paths delegate to gonum.

// reduceShape normalizes dim (negative counts from the end) and computes
// the output shape.
func reduceShape(op string, shape buffer.Shape, dim int, keepDim bool) (int, buffer.Shape) {
	ndim := len(shape)
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD buffer", op, dim, ndim))
	}

	var outShape buffer.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(buffer.Shape, 0, ndim-1)
		for i := 0; i < ndim; i++ {
			if i != dim {
				outShape = append(outShape, shape[i])
			}
		}
	}
	return dim, outShape
}

// reduceExtents splits the shape into the element counts before, at, and
// after the reduced dimension.
func reduceExtents(shape buffer.Shape, dim int) (outer, n, inner int) {
	outer, inner = 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	n = shape[dim]
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, n, inner
}

// SumDim sums elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
func (cpu *CPUBackend) SumDim(x *buffer.Buffer, dim int, keepDim bool) *buffer.Buffer {
	dim, outShape := reduceShape("sumdim", x.Shape(), dim, keepDim)
	outer, n, inner := reduceExtents(x.Shape(), dim)

	result, err := buffer.New(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		if inner == 1 {
			for o := 0; o < outer; o++ {
				dst[o] = floats.Sum(src[o*n : (o+1)*n])
			}
		} else {
			sumGroups(src, dst, outer, n, inner)
		}
	case buffer.Float32:
		sumGroups(x.AsFloat32(), result.AsFloat32(), outer, n, inner)
	case buffer.Int64:
		sumGroups(x.AsInt64(), result.AsInt64(), outer, n, inner)
	case buffer.Int32:
		sumGroups(x.AsInt32(), result.AsInt32(), outer, n, inner)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}

	return result
}

// ProdDim multiplies elements along the specified dimension.
func (cpu *CPUBackend) ProdDim(x *buffer.Buffer, dim int, keepDim bool) *buffer.Buffer {
	dim, outShape := reduceShape("proddim", x.Shape(), dim, keepDim)
	outer, n, inner := reduceExtents(x.Shape(), dim)

	result, err := buffer.New(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("proddim: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		prodGroups(x.AsFloat64(), result.AsFloat64(), outer, n, inner)
	case buffer.Float32:
		prodGroups(x.AsFloat32(), result.AsFloat32(), outer, n, inner)
	case buffer.Int64:
		prodGroups(x.AsInt64(), result.AsInt64(), outer, n, inner)
	case buffer.Int32:
		prodGroups(x.AsInt32(), result.AsInt32(), outer, n, inner)
	default:
		panic(fmt.Sprintf("proddim: unsupported dtype %s", x.DType()))
	}

	return result
}

// MeanDim computes the mean along the specified dimension.
// Float dtypes only.
func (cpu *CPUBackend) MeanDim(x *buffer.Buffer, dim int, keepDim bool) *buffer.Buffer {
	dim, outShape := reduceShape("meandim", x.Shape(), dim, keepDim)
	outer, n, inner := reduceExtents(x.Shape(), dim)

	result, err := buffer.New(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("meandim: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		if inner == 1 {
			for o := 0; o < outer; o++ {
				dst[o] = stat.Mean(src[o*n:(o+1)*n], nil)
			}
		} else {
			sumGroups(src, dst, outer, n, inner)
			floats.Scale(1/float64(n), dst)
		}
	case buffer.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		sumGroups(src, dst, outer, n, inner)
		inv := 1 / float32(n)
		for i := range dst {
			dst[i] *= inv
		}
	default:
		panic(fmt.Sprintf("meandim: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// StdDim computes the population standard deviation along the specified
// dimension. Float dtypes only.
func (cpu *CPUBackend) StdDim(x *buffer.Buffer, dim int, keepDim bool) *buffer.Buffer {
	dim, outShape := reduceShape("stddim", x.Shape(), dim, keepDim)
	outer, n, inner := reduceExtents(x.Shape(), dim)

	result, err := buffer.New(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("stddim: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		if inner == 1 {
			for o := 0; o < outer; o++ {
				dst[o] = stat.PopStdDev(src[o*n:(o+1)*n], nil)
			}
		} else {
			stdGroupsFloat64(src, dst, outer, n, inner)
		}
	case buffer.Float32:
		stdGroupsFloat32(x.AsFloat32(), result.AsFloat32(), outer, n, inner)
	default:
		panic(fmt.Sprintf("stddim: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// MinDim computes the minimum along the specified dimension.
// Panics on an empty reduction dimension.
func (cpu *CPUBackend) MinDim(x *buffer.Buffer, dim int, keepDim bool) *buffer.Buffer {
	dim, outShape := reduceShape("mindim", x.Shape(), dim, keepDim)
	outer, n, inner := reduceExtents(x.Shape(), dim)
	if n == 0 {
		panic("mindim: empty reduction dimension")
	}

	result, err := buffer.New(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("mindim: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		if inner == 1 {
			for o := 0; o < outer; o++ {
				dst[o] = floats.Min(src[o*n : (o+1)*n])
			}
		} else {
			minGroups(src, dst, outer, n, inner)
		}
	case buffer.Float32:
		minGroups(x.AsFloat32(), result.AsFloat32(), outer, n, inner)
	case buffer.Int64:
		minGroups(x.AsInt64(), result.AsInt64(), outer, n, inner)
	case buffer.Int32:
		minGroups(x.AsInt32(), result.AsInt32(), outer, n, inner)
	default:
		panic(fmt.Sprintf("mindim: unsupported dtype %s", x.DType()))
	}

	return result
}

// MaxDim computes the maximum along the specified dimension.
// Panics on an empty reduction dimension.
func (cpu *CPUBackend) MaxDim(x *buffer.Buffer, dim int, keepDim bool) *buffer.Buffer {
	dim, outShape := reduceShape("maxdim", x.Shape(), dim, keepDim)
	outer, n, inner := reduceExtents(x.Shape(), dim)
	if n == 0 {
		panic("maxdim: empty reduction dimension")
	}

	result, err := buffer.New(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("maxdim: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		if inner == 1 {
			for o := 0; o < outer; o++ {
				dst[o] = floats.Max(src[o*n : (o+1)*n])
			}
		} else {
			maxGroups(src, dst, outer, n, inner)
		}
	case buffer.Float32:
		maxGroups(x.AsFloat32(), result.AsFloat32(), outer, n, inner)
	case buffer.Int64:
		maxGroups(x.AsInt64(), result.AsInt64(), outer, n, inner)
	case buffer.Int32:
		maxGroups(x.AsInt32(), result.AsInt32(), outer, n, inner)
	default:
		panic(fmt.Sprintf("maxdim: unsupported dtype %s", x.DType()))
	}

	return result
}

// AllDim reports whether all elements along the dimension are true.
// Bool dtype only. An empty dimension yields true.
func (cpu *CPUBackend) AllDim(x *buffer.Buffer, dim int, keepDim bool) *buffer.Buffer {
	if x.DType() != buffer.Bool {
		panic(fmt.Sprintf("alldim: buffer must be bool dtype, got %s", x.DType()))
	}
	dim, outShape := reduceShape("alldim", x.Shape(), dim, keepDim)
	outer, n, inner := reduceExtents(x.Shape(), dim)

	result, err := buffer.New(outShape, buffer.Bool)
	if err != nil {
		panic(fmt.Sprintf("alldim: %v", err))
	}

	src, dst := x.AsBool(), result.AsBool()
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			acc := true
			base := o*n*inner + in
			for k := 0; k < n && acc; k++ {
				acc = src[base+k*inner]
			}
			dst[o*inner+in] = acc
		}
	}

	return result
}

// AnyDim reports whether any element along the dimension is true.
// Bool dtype only. An empty dimension yields false.
func (cpu *CPUBackend) AnyDim(x *buffer.Buffer, dim int, keepDim bool) *buffer.Buffer {
	if x.DType() != buffer.Bool {
		panic(fmt.Sprintf("anydim: buffer must be bool dtype, got %s", x.DType()))
	}
	dim, outShape := reduceShape("anydim", x.Shape(), dim, keepDim)
	outer, n, inner := reduceExtents(x.Shape(), dim)

	result, err := buffer.New(outShape, buffer.Bool)
	if err != nil {
		panic(fmt.Sprintf("anydim: %v", err))
	}

	src, dst := x.AsBool(), result.AsBool()
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			acc := false
			base := o*n*inner + in
			for k := 0; k < n && !acc; k++ {
				acc = src[base+k*inner]
			}
			dst[o*inner+in] = acc
		}
	}

	return result
}

// Group walkers shared by every numeric dtype.

func sumGroups[T ordered](src, dst []T, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			var acc T
			base := o*n*inner + in
			for k := 0; k < n; k++ {
				acc += src[base+k*inner]
			}
			dst[o*inner+in] = acc
		}
	}
}

func prodGroups[T ordered](src, dst []T, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			acc := T(1)
			base := o*n*inner + in
			for k := 0; k < n; k++ {
				acc *= src[base+k*inner]
			}
			dst[o*inner+in] = acc
		}
	}
}

func minGroups[T ordered](src, dst []T, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*n*inner + in
			acc := src[base]
			for k := 1; k < n; k++ {
				if v := src[base+k*inner]; v < acc {
					acc = v
				}
			}
			dst[o*inner+in] = acc
		}
	}
}

func maxGroups[T ordered](src, dst []T, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*n*inner + in
			acc := src[base]
			for k := 1; k < n; k++ {
				if v := src[base+k*inner]; v > acc {
					acc = v
				}
			}
			dst[o*inner+in] = acc
		}
	}
}

func stdGroupsFloat64(src, dst []float64, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*n*inner + in
			mean := 0.0
			for k := 0; k < n; k++ {
				mean += src[base+k*inner]
			}
			mean /= float64(n)

			ss := 0.0
			for k := 0; k < n; k++ {
				d := src[base+k*inner] - mean
				ss += d * d
			}
			dst[o*inner+in] = math.Sqrt(ss / float64(n))
		}
	}
}

func stdGroupsFloat32(src, dst []float32, outer, n, inner int) {
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*n*inner + in
			mean := 0.0
			for k := 0; k < n; k++ {
				mean += float64(src[base+k*inner])
			}
			mean /= float64(n)

			ss := 0.0
			for k := 0; k < n; k++ {
				d := float64(src[base+k*inner]) - mean
				ss += d * d
			}
			dst[o*inner+in] = float32(math.Sqrt(ss / float64(n)))
		}
	}
}
