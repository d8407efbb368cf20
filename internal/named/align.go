package named

import (
	"fmt"
	"sort"

	"github.com/axial-ml/axial/internal/buffer"
)

// alignment is the unified axis plan for a set of operands: the merged
// axis order and the broadcast extents.
type alignment struct {
	names   []string
	extents buffer.Shape
}

func (al *alignment) index(name string) int {
	for i, n := range al.names {
		if n == name {
			return i
		}
	}
	return -1
}

// unify merges operand axis sets into the unified axis order. Names are
// recorded in order of first appearance, scanning operands left to right
// and each operand's axes outermost to innermost, so results are
// deterministic and order-stable. Extents merge by broadcasting: equal
// extents stay, extent 1 yields to the peer, anything else is
// ErrAxisMismatch.
func unify(sets ...AxisSet) (*alignment, error) {
	al := &alignment{}
	pos := make(map[string]int)

	for _, set := range sets {
		for _, ax := range set {
			p, seen := pos[ax.Name]
			if !seen {
				pos[ax.Name] = len(al.names)
				al.names = append(al.names, ax.Name)
				al.extents = append(al.extents, ax.Extent)
				continue
			}
			have := al.extents[p]
			switch {
			case have == ax.Extent:
			case have == 1:
				al.extents[p] = ax.Extent
			case ax.Extent == 1:
			default:
				return nil, fmt.Errorf("%w: axis %q has extent %d in one operand and %d in another",
					ErrAxisMismatch, ax.Name, have, ax.Extent)
			}
		}
	}
	return al, nil
}

// alignBuffer rearranges a's buffer for the unified plan: transpose a's
// own axes into the unified relative order, then insert size-1 dimensions
// for unified axes a lacks. The result broadcasts positionally against any
// other buffer aligned to the same plan.
//
// Precondition: every axis of a appears in the plan (guaranteed when the
// plan came from unify over a set including a's axes).
func alignBuffer(a *Array, al *alignment) *buffer.Buffer {
	rank := a.Rank()

	perm := make([]int, rank)
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(i, j int) bool {
		return al.index(a.names[perm[i]]) < al.index(a.names[perm[j]])
	})

	buf := a.buf
	identity := true
	for i, p := range perm {
		if p != i {
			identity = false
			break
		}
	}
	if !identity {
		buf = a.backend.Transpose(buf, perm)
	}

	axes := a.Axes()
	target := make(buffer.Shape, len(al.names))
	for i, name := range al.names {
		if extent, ok := axes.Get(name); ok {
			target[i] = extent
		} else {
			target[i] = 1
		}
	}
	return a.backend.Reshape(buf, target)
}

// materializeOperand resolves an ArrayLike operand to a concrete array.
func materializeOperand(op string, x ArrayLike) (*Array, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: %w: nil operand", op, ErrInvalidParameter)
	}
	a, err := x.Materialize()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

// alignedPair holds two operand buffers reshaped to a shared axis plan,
// ready for a positional backend op.
type alignedPair struct {
	left, right *buffer.Buffer
	names       []string
	backend     buffer.Backend
}

// alignOperands materializes both operands, checks dtypes, and aligns both
// buffers to the unified axis order. check validates the shared operand
// dtype for the specific operation.
func alignOperands(op string, x, y ArrayLike, check func(string, buffer.DataType) error) (*alignedPair, error) {
	a, err := materializeOperand(op, x)
	if err != nil {
		return nil, err
	}
	b, err := materializeOperand(op, y)
	if err != nil {
		return nil, err
	}

	if a.DType() != b.DType() {
		return nil, fmt.Errorf("%s: %w: operand dtypes %s and %s differ (use Cast)",
			op, ErrInvalidParameter, a.DType(), b.DType())
	}
	if check != nil {
		if err := check(op, a.DType()); err != nil {
			return nil, err
		}
	}

	al, err := unify(a.Axes(), b.Axes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &alignedPair{
		left:    alignBuffer(a, al),
		right:   alignBuffer(b, al),
		names:   al.names,
		backend: a.backend,
	}, nil
}

// Operand dtype classes. Checked at operation entry so backend panics stay
// unreachable for user input.

func requireNumeric(op string, dt buffer.DataType) error {
	if dt == buffer.Bool {
		return fmt.Errorf("%s: %w: bool operands not supported (use logical ops)", op, ErrInvalidParameter)
	}
	return nil
}

func requireFloat(op string, dt buffer.DataType) error {
	if !dt.IsFloat() {
		return fmt.Errorf("%s: %w: requires a float dtype, got %s", op, ErrInvalidParameter, dt)
	}
	return nil
}

func requireBool(op string, dt buffer.DataType) error {
	if dt != buffer.Bool {
		return fmt.Errorf("%s: %w: requires bool operands, got %s", op, ErrInvalidParameter, dt)
	}
	return nil
}
