package named

import (
	"fmt"

	"github.com/axial-ml/axial/internal/buffer"
)

// AddAxes prepends size-1 axes with the given names, outermost first.
// The data is shared, not copied. A name already present is an error.
func (a *Array) AddAxes(names ...string) (*Array, error) {
	axes := a.Axes()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("addAxes: %w: empty axis name", ErrInvalidParameter)
		}
		if axes.Has(name) || seen[name] {
			return nil, fmt.Errorf("addAxes: %w: axis %q already present", ErrAxisMismatch, name)
		}
		seen[name] = true
	}

	shape := make(buffer.Shape, 0, len(names)+a.Rank())
	for range names {
		shape = append(shape, 1)
	}
	shape = append(shape, a.buf.Shape()...)

	outNames := make([]string, 0, len(names)+a.Rank())
	outNames = append(outNames, names...)
	outNames = append(outNames, a.names...)

	return &Array{
		buf:     a.backend.Reshape(a.buf, shape),
		names:   outNames,
		backend: a.backend,
	}, nil
}

// CombineAxes flattens the named axes into one new axis whose extent is
// the product of theirs. The axes move together to the position of the
// earliest of them, ordered as given; elements interleave accordingly.
// The new name must not collide with a surviving axis, though reusing a
// combined name is fine.
func (a *Array) CombineAxes(names []string, into string) (*Array, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("combineAxes: %w: no axes to combine", ErrInvalidParameter)
	}
	if into == "" {
		return nil, fmt.Errorf("combineAxes: %w: empty axis name", ErrInvalidParameter)
	}
	axes := a.Axes()
	combine := make(map[string]bool, len(names))
	for _, name := range names {
		if combine[name] {
			return nil, fmt.Errorf("combineAxes: %w: axis %q named more than once", ErrInvalidParameter, name)
		}
		if !axes.Has(name) {
			return nil, fmt.Errorf("combineAxes: %w: axis %q not in %s", ErrAxisNotFound, name, axes)
		}
		combine[name] = true
	}
	if axes.Has(into) && !combine[into] {
		return nil, fmt.Errorf("combineAxes: %w: axis %q already present", ErrAxisMismatch, into)
	}

	at := 0
	for i, ax := range axes {
		if combine[ax.Name] {
			at = i
			break
		}
	}

	order := make([]string, 0, a.Rank())
	for i, ax := range axes {
		if i == at {
			order = append(order, names...)
		}
		if !combine[ax.Name] {
			order = append(order, ax.Name)
		}
	}
	t, err := a.Transpose(order...)
	if err != nil {
		return nil, err
	}

	extent := 1
	for _, name := range names {
		e, _ := axes.Get(name)
		extent *= e
	}

	tShape := t.buf.Shape()
	outShape := make(buffer.Shape, 0, a.Rank()-len(names)+1)
	outShape = append(outShape, tShape[:at]...)
	outShape = append(outShape, extent)
	outShape = append(outShape, tShape[at+len(names):]...)

	outNames := make([]string, 0, a.Rank()-len(names)+1)
	outNames = append(outNames, t.names[:at]...)
	outNames = append(outNames, into)
	outNames = append(outNames, t.names[at+len(names):]...)

	return &Array{
		buf:     a.backend.Reshape(t.buf, outShape),
		names:   outNames,
		backend: a.backend,
	}, nil
}

// Transpose reorders the axes by name. The order must name every axis
// exactly once. With no arguments the axis order reverses.
func (a *Array) Transpose(order ...string) (*Array, error) {
	if len(order) == 0 {
		order = make([]string, a.Rank())
		for i, name := range a.names {
			order[a.Rank()-1-i] = name
		}
	}
	if len(order) != a.Rank() {
		return nil, fmt.Errorf("transpose: %w: got %d axis names for %d axes", ErrAxisMismatch, len(order), a.Rank())
	}
	axes := a.Axes()
	perm := make([]int, len(order))
	seen := make([]bool, len(order))
	for i, name := range order {
		j := axes.Index(name)
		if j < 0 {
			return nil, fmt.Errorf("transpose: %w: axis %q not in %s", ErrAxisNotFound, name, axes)
		}
		if seen[j] {
			return nil, fmt.Errorf("transpose: %w: axis %q named more than once", ErrAxisMismatch, name)
		}
		seen[j] = true
		perm[i] = j
	}
	return &Array{
		buf:     a.backend.Transpose(a.buf, perm),
		names:   append([]string(nil), order...),
		backend: a.backend,
	}, nil
}

// BroadcastTo expands the array to the target axis set, which must
// include every axis of the array with a matching extent or an extent
// the array can broadcast into. The result follows the target's order.
func (a *Array) BroadcastTo(target AxisSet) (*Array, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("broadcastTo: %w", err)
	}
	for _, ax := range a.Axes() {
		extent, ok := target.Get(ax.Name)
		if !ok {
			return nil, fmt.Errorf("broadcastTo: %w: axis %q missing from target %s", ErrAxisMismatch, ax.Name, target)
		}
		if ax.Extent != extent && ax.Extent != 1 {
			return nil, fmt.Errorf("broadcastTo: %w: axis %q has extent %d but target wants %d",
				ErrAxisMismatch, ax.Name, ax.Extent, extent)
		}
	}

	al := &alignment{names: target.Names(), extents: target.Extents()}
	return &Array{
		buf:     a.backend.Expand(alignBuffer(a, al), al.extents),
		names:   al.names,
		backend: a.backend,
	}, nil
}

// materializeParts resolves a slice of operands and checks they share a
// dtype.
func materializeParts(op string, parts []ArrayLike) ([]*Array, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%s: %w: no parts", op, ErrInvalidParameter)
	}
	arrays := make([]*Array, len(parts))
	for i, p := range parts {
		arr, err := materializeOperand(op, p)
		if err != nil {
			return nil, err
		}
		arrays[i] = arr
	}
	dtype := arrays[0].DType()
	for _, arr := range arrays[1:] {
		if arr.DType() != dtype {
			return nil, fmt.Errorf("%s: %w: parts mix dtypes %s and %s (use Cast)",
				op, ErrInvalidParameter, dtype, arr.DType())
		}
	}
	return arrays, nil
}

// Stack joins parts along a new outermost axis. The parts align and
// broadcast to a common axis set first, so they need not match exactly;
// the new axis name must not appear in any part.
func Stack(parts []ArrayLike, axis string) (*Array, error) {
	if axis == "" {
		return nil, fmt.Errorf("stack: %w: empty axis name", ErrInvalidParameter)
	}
	arrays, err := materializeParts("stack", parts)
	if err != nil {
		return nil, err
	}

	sets := make([]AxisSet, len(arrays))
	for i, arr := range arrays {
		sets[i] = arr.Axes()
		if sets[i].Has(axis) {
			return nil, fmt.Errorf("stack: %w: axis %q already present in %s", ErrAxisMismatch, axis, sets[i])
		}
	}
	al, err := unify(sets...)
	if err != nil {
		return nil, fmt.Errorf("stack: %w", err)
	}

	backend := arrays[0].backend
	stacked := make(buffer.Shape, 0, len(al.extents)+1)
	stacked = append(stacked, 1)
	stacked = append(stacked, al.extents...)

	bufs := make([]*buffer.Buffer, len(arrays))
	for i, arr := range arrays {
		expanded := backend.Expand(alignBuffer(arr, al), al.extents)
		bufs[i] = backend.Reshape(expanded, stacked)
	}

	names := make([]string, 0, len(al.names)+1)
	names = append(names, axis)
	names = append(names, al.names...)

	return &Array{
		buf:     backend.Concat(bufs, 0),
		names:   names,
		backend: backend,
	}, nil
}

// Concat joins parts along an existing named axis, which every part must
// carry. The remaining axes align and broadcast to a common set; the
// joined axis extent is the sum of the parts'.
func Concat(parts []ArrayLike, axis string) (*Array, error) {
	if axis == "" {
		return nil, fmt.Errorf("concat: %w: empty axis name", ErrInvalidParameter)
	}
	arrays, err := materializeParts("concat", parts)
	if err != nil {
		return nil, err
	}

	// The joined axis is exempt from broadcast merging; parts may differ
	// there freely. Masking its extent to 1 keeps unify happy while
	// preserving first-seen ordering.
	sets := make([]AxisSet, len(arrays))
	joined := make([]int, len(arrays))
	for i, arr := range arrays {
		set := arr.Axes()
		at := set.Index(axis)
		if at < 0 {
			return nil, fmt.Errorf("concat: %w: axis %q not in %s", ErrAxisNotFound, axis, set)
		}
		joined[i] = set[at].Extent
		set[at].Extent = 1
		sets[i] = set
	}
	al, err := unify(sets...)
	if err != nil {
		return nil, fmt.Errorf("concat: %w", err)
	}
	dim := al.index(axis)

	backend := arrays[0].backend
	bufs := make([]*buffer.Buffer, len(arrays))
	for i, arr := range arrays {
		target := append(buffer.Shape(nil), al.extents...)
		target[dim] = joined[i]
		bufs[i] = backend.Expand(alignBuffer(arr, al), target)
	}

	return &Array{
		buf:     backend.Concat(bufs, dim),
		names:   append([]string(nil), al.names...),
		backend: backend,
	}, nil
}
