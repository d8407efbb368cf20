package cpu

import (
	"fmt"

	"github.com/axial-ml/axial/internal/buffer"
)

// Structural operations rearrange elements without computing on them, so
// they move raw bytes sized by the element width and work for every dtype
// with a single implementation.

// Reshape returns a view of x under a different shape. Zero-copy: the
// returned buffer shares storage with x.
func (cpu *CPUBackend) Reshape(x *buffer.Buffer, shape buffer.Shape) *buffer.Buffer {
	view, err := x.WithShape(shape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return view
}

// Transpose permutes the dimensions of x according to perm.
// perm must be a permutation of 0..rank-1.
func (cpu *CPUBackend) Transpose(x *buffer.Buffer, perm []int) *buffer.Buffer {
	shape := x.Shape()
	ndim := len(shape)
	if len(perm) != ndim {
		panic(fmt.Sprintf("transpose: permutation has %d entries for %dD buffer", len(perm), ndim))
	}
	seen := make([]bool, ndim)
	for _, p := range perm {
		if p < 0 || p >= ndim || seen[p] {
			panic(fmt.Sprintf("transpose: invalid permutation %v for %dD buffer", perm, ndim))
		}
		seen[p] = true
	}

	outShape := make(buffer.Shape, ndim)
	for i, p := range perm {
		outShape[i] = shape[p]
	}

	result, err := buffer.New(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	total := outShape.NumElements()
	if total == 0 {
		return result
	}

	outStrides := outShape.ComputeStrides()
	srcStrides := x.Strides()
	es := x.DType().Size()
	srcData, dstData := x.Data(), result.Data()

	for i := 0; i < total; i++ {
		rem := i
		srcOff := 0
		for d := 0; d < ndim; d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			srcOff += coord * srcStrides[perm[d]]
		}
		copy(dstData[i*es:(i+1)*es], srcData[srcOff*es:(srcOff+1)*es])
	}

	return result
}

// Expand materializes x broadcast to the target shape. x must be
// broadcast-compatible with target, and target must be the broadcast
// result (expansion never shrinks).
func (cpu *CPUBackend) Expand(x *buffer.Buffer, target buffer.Shape) *buffer.Buffer {
	bshape, _, err := buffer.BroadcastShapes(x.Shape(), target)
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}
	if !bshape.Equal(target) {
		panic(fmt.Sprintf("expand: cannot expand %v to %v", x.Shape(), target))
	}

	result, err := buffer.New(target, x.DType())
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	total := target.NumElements()
	if total == 0 {
		return result
	}

	outStrides := target.ComputeStrides()
	srcStrides := broadcastStrides(x.Shape(), target)
	es := x.DType().Size()
	srcData, dstData := x.Data(), result.Data()

	for i := 0; i < total; i++ {
		srcOff := sourceIndex(i, outStrides, srcStrides)
		copy(dstData[i*es:(i+1)*es], srcData[srcOff*es:(srcOff+1)*es])
	}

	return result
}

// Take gathers elements along every dimension at once. picks[d] lists the
// source indices kept in dimension d, in output order; a nil entry keeps
// the whole dimension. Indices must already be non-negative and in range.
func (cpu *CPUBackend) Take(x *buffer.Buffer, picks [][]int) *buffer.Buffer {
	shape := x.Shape()
	ndim := len(shape)
	if len(picks) != ndim {
		panic(fmt.Sprintf("take: %d pick lists for %dD buffer", len(picks), ndim))
	}

	outShape := make(buffer.Shape, ndim)
	for d := 0; d < ndim; d++ {
		if picks[d] == nil {
			outShape[d] = shape[d]
			continue
		}
		for _, idx := range picks[d] {
			if idx < 0 || idx >= shape[d] {
				panic(fmt.Sprintf("take: index %d out of range for extent %d in dimension %d", idx, shape[d], d))
			}
		}
		outShape[d] = len(picks[d])
	}

	result, err := buffer.New(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("take: %v", err))
	}

	total := outShape.NumElements()
	if total == 0 {
		return result
	}

	outStrides := outShape.ComputeStrides()
	srcStrides := x.Strides()
	es := x.DType().Size()
	srcData, dstData := x.Data(), result.Data()

	for i := 0; i < total; i++ {
		rem := i
		srcOff := 0
		for d := 0; d < ndim; d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			if picks[d] != nil {
				coord = picks[d][coord]
			}
			srcOff += coord * srcStrides[d]
		}
		copy(dstData[i*es:(i+1)*es], srcData[srcOff*es:(srcOff+1)*es])
	}

	return result
}

// Concat concatenates buffers along the given dimension. All inputs must
// share dtype, rank, and extents everywhere except dim.
func (cpu *CPUBackend) Concat(xs []*buffer.Buffer, dim int) *buffer.Buffer {
	if len(xs) == 0 {
		panic("concat: no buffers")
	}

	first := xs[0]
	ndim := first.Rank()
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("concat: dimension %d out of range for %dD buffer", dim, ndim))
	}

	concatDim := 0
	for _, xb := range xs {
		if xb.DType() != first.DType() {
			panic(fmt.Sprintf("concat: dtype mismatch: %s vs %s", first.DType(), xb.DType()))
		}
		if xb.Rank() != ndim {
			panic(fmt.Sprintf("concat: rank mismatch: %d vs %d", ndim, xb.Rank()))
		}
		for d := 0; d < ndim; d++ {
			if d != dim && xb.Shape()[d] != first.Shape()[d] {
				panic(fmt.Sprintf("concat: shapes %v and %v differ in dimension %d", first.Shape(), xb.Shape(), d))
			}
		}
		concatDim += xb.Shape()[dim]
	}

	outShape := first.Shape().Clone()
	outShape[dim] = concatDim

	result, err := buffer.New(outShape, first.DType())
	if err != nil {
		panic(fmt.Sprintf("concat: %v", err))
	}

	outer, _, inner := reduceExtents(outShape, dim)
	es := first.DType().Size()
	rowOut := concatDim * inner * es
	dstData := result.Data()

	colOff := 0
	for _, xb := range xs {
		rowIn := xb.Shape()[dim] * inner * es
		srcData := xb.Data()
		for o := 0; o < outer; o++ {
			copy(dstData[o*rowOut+colOff:o*rowOut+colOff+rowIn], srcData[o*rowIn:(o+1)*rowIn])
		}
		colOff += rowIn
	}

	return result
}

// Cast converts x to the given dtype. Casting to the same dtype returns x
// unchanged; callers treat buffers as immutable, so sharing is safe.
func (cpu *CPUBackend) Cast(x *buffer.Buffer, dtype buffer.DataType) *buffer.Buffer {
	if x.DType() == dtype {
		return x
	}

	result, err := buffer.New(x.Shape(), dtype)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch x.DType() {
	case buffer.Float64:
		castFrom(x.AsFloat64(), result)
	case buffer.Float32:
		castFrom(x.AsFloat32(), result)
	case buffer.Int64:
		castFrom(x.AsInt64(), result)
	case buffer.Int32:
		castFrom(x.AsInt32(), result)
	case buffer.Bool:
		castFromBool(x.AsBool(), result)
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}

	return result
}

func castFrom[S ordered](src []S, dst *buffer.Buffer) {
	switch dst.DType() {
	case buffer.Float64:
		d := dst.AsFloat64()
		for i, v := range src {
			d[i] = float64(v)
		}
	case buffer.Float32:
		d := dst.AsFloat32()
		for i, v := range src {
			d[i] = float32(v)
		}
	case buffer.Int64:
		d := dst.AsInt64()
		for i, v := range src {
			d[i] = int64(v)
		}
	case buffer.Int32:
		d := dst.AsInt32()
		for i, v := range src {
			d[i] = int32(v)
		}
	case buffer.Bool:
		d := dst.AsBool()
		for i, v := range src {
			d[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dst.DType()))
	}
}

func castFromBool(src []bool, dst *buffer.Buffer) {
	switch dst.DType() {
	case buffer.Float64:
		d := dst.AsFloat64()
		for i, v := range src {
			if v {
				d[i] = 1
			}
		}
	case buffer.Float32:
		d := dst.AsFloat32()
		for i, v := range src {
			if v {
				d[i] = 1
			}
		}
	case buffer.Int64:
		d := dst.AsInt64()
		for i, v := range src {
			if v {
				d[i] = 1
			}
		}
	case buffer.Int32:
		d := dst.AsInt32()
		for i, v := range src {
			if v {
				d[i] = 1
			}
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dst.DType()))
	}
}

// Where selects elements from a where cond is true and from b otherwise.
// cond must be Bool; a and b must share a dtype. All three broadcast to a
// common shape.
func (cpu *CPUBackend) Where(cond, a, b *buffer.Buffer) *buffer.Buffer {
	if cond.DType() != buffer.Bool {
		panic(fmt.Sprintf("where: condition must be bool dtype, got %s", cond.DType()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("where: branch dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	partial, _, err := buffer.BroadcastShapes(cond.Shape(), a.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	outShape, _, err := buffer.BroadcastShapes(partial, b.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	result, err := buffer.New(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	condVals := cond.AsBool()
	switch a.DType() {
	case buffer.Float64:
		whereBroadcast(result.AsFloat64(), condVals, cond.Shape(), a.AsFloat64(), a.Shape(), b.AsFloat64(), b.Shape(), outShape)
	case buffer.Float32:
		whereBroadcast(result.AsFloat32(), condVals, cond.Shape(), a.AsFloat32(), a.Shape(), b.AsFloat32(), b.Shape(), outShape)
	case buffer.Int64:
		whereBroadcast(result.AsInt64(), condVals, cond.Shape(), a.AsInt64(), a.Shape(), b.AsInt64(), b.Shape(), outShape)
	case buffer.Int32:
		whereBroadcast(result.AsInt32(), condVals, cond.Shape(), a.AsInt32(), a.Shape(), b.AsInt32(), b.Shape(), outShape)
	case buffer.Bool:
		whereBroadcast(result.AsBool(), condVals, cond.Shape(), a.AsBool(), a.Shape(), b.AsBool(), b.Shape(), outShape)
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", a.DType()))
	}

	return result
}

func whereBroadcast[T any](dst []T, cond []bool, condShape buffer.Shape, a []T, aShape buffer.Shape, b []T, bShape buffer.Shape, outShape buffer.Shape) {
	outStrides := outShape.ComputeStrides()
	condStrides := broadcastStrides(condShape, outShape)
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		if cond[sourceIndex(i, outStrides, condStrides)] {
			dst[i] = a[sourceIndex(i, outStrides, aStrides)]
		} else {
			dst[i] = b[sourceIndex(i, outStrides, bStrides)]
		}
	}
}
