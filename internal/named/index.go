package named

import (
	"fmt"

	"github.com/axial-ml/axial/internal/buffer"
)

// Index maps axis names to selectors. Axes not named pass through whole.
type Index map[string]Selector

// Selector picks positions along a single axis. The concrete kinds are
// At, Span, SpanStep, and Mask; the interface is closed.
type Selector interface {
	// resolve returns the positions selected from an axis of the given
	// extent (nil means the whole axis) and whether the axis collapses
	// out of the result.
	resolve(op, axis string, extent int) ([]int, bool, error)
	isSelector()
}

type atSelector struct{ pos int }

// At selects the single position i and collapses the axis out of the
// result. Negative positions count back from the end.
func At(i int) Selector { return atSelector{pos: i} }

func (s atSelector) resolve(op, axis string, extent int) ([]int, bool, error) {
	i := s.pos
	if i < 0 {
		i += extent
	}
	if i < 0 || i >= extent {
		return nil, false, fmt.Errorf("%s: %w: position %d out of range for axis %q with extent %d",
			op, ErrShapeMismatch, s.pos, axis, extent)
	}
	return []int{i}, true, nil
}

func (s atSelector) isSelector() {}

type spanSelector struct {
	start, stop, step int
}

// Span selects the half-open range [start, stop) along an axis, keeping
// the axis in the result. Negative bounds count back from the end and
// out-of-range bounds clamp, so an empty selection is legal.
func Span(start, stop int) Selector {
	return spanSelector{start: start, stop: stop, step: 1}
}

// SpanStep selects every step-th position in [start, stop). The step
// must be positive.
func SpanStep(start, stop, step int) Selector {
	return spanSelector{start: start, stop: stop, step: step}
}

func (s spanSelector) resolve(op, axis string, extent int) ([]int, bool, error) {
	if s.step < 1 {
		return nil, false, fmt.Errorf("%s: %w: span step on axis %q must be positive, got %d",
			op, ErrInvalidParameter, axis, s.step)
	}
	start, stop := s.start, s.stop
	if start < 0 {
		start += extent
	}
	if stop < 0 {
		stop += extent
	}
	if start < 0 {
		start = 0
	}
	if stop > extent {
		stop = extent
	}
	if start == 0 && stop == extent && s.step == 1 {
		return nil, false, nil
	}
	n := 0
	if stop > start {
		n = (stop - start + s.step - 1) / s.step
	}
	idx := make([]int, 0, n)
	for i := start; i < stop; i += s.step {
		idx = append(idx, i)
	}
	return idx, false, nil
}

func (s spanSelector) isSelector() {}

type maskSelector struct{ keep []bool }

// Mask keeps the positions where keep is true. The mask length must
// match the axis extent exactly.
func Mask(keep []bool) Selector {
	return maskSelector{keep: keep}
}

func (s maskSelector) resolve(op, axis string, extent int) ([]int, bool, error) {
	if len(s.keep) != extent {
		return nil, false, fmt.Errorf("%s: %w: mask length %d does not match axis %q extent %d",
			op, ErrShapeMismatch, len(s.keep), axis, extent)
	}
	idx := make([]int, 0, len(s.keep))
	for i, k := range s.keep {
		if k {
			idx = append(idx, i)
		}
	}
	return idx, false, nil
}

func (s maskSelector) isSelector() {}

// Get selects a sub-array by axis name. At selectors collapse their axis;
// Span and Mask selectors keep it. Every selector validates before any
// element moves, so a failed Get leaves nothing half-selected.
//
// Example:
//
//	row, err := a.Get(named.Index{"y": named.At(0)})
//	window, err := a.Get(named.Index{"x": named.Span(2, 5), "y": named.Mask(keep)})
func (a *Array) Get(ix Index) (*Array, error) {
	axes := a.Axes()
	for name := range ix {
		if !axes.Has(name) {
			return nil, fmt.Errorf("get: %w: axis %q not in %s", ErrAxisNotFound, name, axes)
		}
	}

	picks := make([][]int, a.Rank())
	collapse := make([]bool, a.Rank())
	for d, ax := range axes {
		sel, ok := ix[ax.Name]
		if !ok {
			continue
		}
		idx, drop, err := sel.resolve("get", ax.Name, ax.Extent)
		if err != nil {
			return nil, err
		}
		picks[d] = idx
		collapse[d] = drop
	}

	out := a.backend.Take(a.buf, picks)

	takeShape := out.Shape()
	outNames := make([]string, 0, a.Rank())
	outShape := make(buffer.Shape, 0, a.Rank())
	for d := range takeShape {
		if collapse[d] {
			continue
		}
		outNames = append(outNames, a.names[d])
		outShape = append(outShape, takeShape[d])
	}
	return &Array{
		buf:     a.backend.Reshape(out, outShape),
		names:   outNames,
		backend: a.backend,
	}, nil
}
