package named

import (
	"fmt"
	"sort"

	"github.com/axial-ml/axial/internal/buffer"
)

// Reductions collapse the named axes and drop them from the result.
// Calling with no axes reduces everything to a scalar array. Axis names
// resolve against the receiver alone; the remaining axes keep their
// relative order.

// resolveReduceDims maps axis names to dimension positions, sorted
// descending so repeated single-dim reductions never shift the positions
// still pending. No names selects every dimension.
func (a *Array) resolveReduceDims(op string, axes []string) ([]int, error) {
	if len(axes) == 0 {
		dims := make([]int, a.Rank())
		for i := range dims {
			dims[i] = a.Rank() - 1 - i
		}
		return dims, nil
	}
	set := a.Axes()
	dims := make([]int, 0, len(axes))
	seen := make(map[string]bool, len(axes))
	for _, name := range axes {
		if seen[name] {
			return nil, fmt.Errorf("%s: %w: axis %q named more than once", op, ErrInvalidParameter, name)
		}
		seen[name] = true
		i := set.Index(name)
		if i < 0 {
			return nil, fmt.Errorf("%s: %w: axis %q not in %s", op, ErrAxisNotFound, name, set)
		}
		dims = append(dims, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(dims)))
	return dims, nil
}

// checkNonEmptyReduce rejects reductions with no identity value over
// zero-extent axes.
func (a *Array) checkNonEmptyReduce(op string, dims []int) error {
	shape := a.buf.Shape()
	for _, d := range dims {
		if shape[d] == 0 {
			return fmt.Errorf("%s: %w: axis %q has extent 0", op, ErrInvalidParameter, a.names[d])
		}
	}
	return nil
}

// applyReduce runs the single-dim kernel once per position. Positions
// must be sorted descending.
func (a *Array) applyReduce(kernel func(*buffer.Buffer, int, bool) *buffer.Buffer, dims []int) *Array {
	buf := a.buf
	names := append([]string(nil), a.names...)
	for _, d := range dims {
		buf = kernel(buf, d, false)
		names = append(names[:d], names[d+1:]...)
	}
	return &Array{buf: buf, names: names, backend: a.backend}
}

// Sum reduces by addition over the named axes. Summing an empty axis
// yields 0.
func (a *Array) Sum(axes ...string) (*Array, error) {
	if err := requireNumeric("sum", a.DType()); err != nil {
		return nil, err
	}
	dims, err := a.resolveReduceDims("sum", axes)
	if err != nil {
		return nil, err
	}
	return a.applyReduce(a.backend.SumDim, dims), nil
}

// Prod reduces by multiplication over the named axes. The product over
// an empty axis is 1.
func (a *Array) Prod(axes ...string) (*Array, error) {
	if err := requireNumeric("prod", a.DType()); err != nil {
		return nil, err
	}
	dims, err := a.resolveReduceDims("prod", axes)
	if err != nil {
		return nil, err
	}
	return a.applyReduce(a.backend.ProdDim, dims), nil
}

// Mean reduces to the arithmetic mean over the named axes. Float dtypes
// only; the mean over an empty axis is NaN.
func (a *Array) Mean(axes ...string) (*Array, error) {
	if err := requireFloat("mean", a.DType()); err != nil {
		return nil, err
	}
	dims, err := a.resolveReduceDims("mean", axes)
	if err != nil {
		return nil, err
	}
	return a.applyReduce(a.backend.MeanDim, dims), nil
}

// Std reduces to the population standard deviation over the named axes.
// Float dtypes only.
func (a *Array) Std(axes ...string) (*Array, error) {
	if err := requireFloat("std", a.DType()); err != nil {
		return nil, err
	}
	dims, err := a.resolveReduceDims("std", axes)
	if err != nil {
		return nil, err
	}
	return a.applyReduce(a.backend.StdDim, dims), nil
}

// Min reduces to the smallest element over the named axes. Reducing a
// zero-extent axis is an error because no smallest element exists.
func (a *Array) Min(axes ...string) (*Array, error) {
	if err := requireNumeric("min", a.DType()); err != nil {
		return nil, err
	}
	dims, err := a.resolveReduceDims("min", axes)
	if err != nil {
		return nil, err
	}
	if err := a.checkNonEmptyReduce("min", dims); err != nil {
		return nil, err
	}
	return a.applyReduce(a.backend.MinDim, dims), nil
}

// Max reduces to the largest element over the named axes. Reducing a
// zero-extent axis is an error because no largest element exists.
func (a *Array) Max(axes ...string) (*Array, error) {
	if err := requireNumeric("max", a.DType()); err != nil {
		return nil, err
	}
	dims, err := a.resolveReduceDims("max", axes)
	if err != nil {
		return nil, err
	}
	if err := a.checkNonEmptyReduce("max", dims); err != nil {
		return nil, err
	}
	return a.applyReduce(a.backend.MaxDim, dims), nil
}

// All reduces by conjunction over the named axes of a Bool array. The
// conjunction over an empty axis is vacuously true.
func (a *Array) All(axes ...string) (*Array, error) {
	if err := requireBool("all", a.DType()); err != nil {
		return nil, err
	}
	dims, err := a.resolveReduceDims("all", axes)
	if err != nil {
		return nil, err
	}
	return a.applyReduce(a.backend.AllDim, dims), nil
}

// Any reduces by disjunction over the named axes of a Bool array. The
// disjunction over an empty axis is false.
func (a *Array) Any(axes ...string) (*Array, error) {
	if err := requireBool("any", a.DType()); err != nil {
		return nil, err
	}
	dims, err := a.resolveReduceDims("any", axes)
	if err != nil {
		return nil, err
	}
	return a.applyReduce(a.backend.AnyDim, dims), nil
}

// Ptp reduces to the peak-to-peak range, max minus min, over the named
// axes.
func (a *Array) Ptp(axes ...string) (*Array, error) {
	if err := requireNumeric("ptp", a.DType()); err != nil {
		return nil, err
	}
	dims, err := a.resolveReduceDims("ptp", axes)
	if err != nil {
		return nil, err
	}
	if err := a.checkNonEmptyReduce("ptp", dims); err != nil {
		return nil, err
	}
	hi := a.applyReduce(a.backend.MaxDim, dims)
	lo := a.applyReduce(a.backend.MinDim, dims)
	return Sub(hi, lo)
}

// Rms reduces to the root mean square over the named axes. Float dtypes
// only.
func (a *Array) Rms(axes ...string) (*Array, error) {
	if err := requireFloat("rms", a.DType()); err != nil {
		return nil, err
	}
	dims, err := a.resolveReduceDims("rms", axes)
	if err != nil {
		return nil, err
	}
	sq := a.withSameAxes(a.backend.Mul(a.buf, a.buf))
	return sq.applyReduce(a.backend.MeanDim, dims).Sqrt()
}
