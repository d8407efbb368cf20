package named

import (
	"fmt"
	"strings"

	"github.com/axial-ml/axial/internal/buffer"
)

// Axis is one named dimension: a semantic name plus its extent.
type Axis struct {
	Name   string
	Extent int
}

// AxisSet describes an array's full shape as an ordered sequence of named
// dimensions, outermost first. Zero extents are legal; they describe empty
// arrays.
type AxisSet []Axis

// Validate checks that every name is non-empty and unique and every extent
// is non-negative.
func (s AxisSet) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, ax := range s {
		if ax.Name == "" {
			return fmt.Errorf("%w: empty axis name", ErrInvalidParameter)
		}
		if ax.Extent < 0 {
			return fmt.Errorf("%w: axis %q has negative extent %d", ErrInvalidParameter, ax.Name, ax.Extent)
		}
		if _, dup := seen[ax.Name]; dup {
			return fmt.Errorf("%w: duplicate axis name %q", ErrAxisMismatch, ax.Name)
		}
		seen[ax.Name] = struct{}{}
	}
	return nil
}

// Rank returns the number of axes.
func (s AxisSet) Rank() int {
	return len(s)
}

// Names returns the axis names in order.
func (s AxisSet) Names() []string {
	names := make([]string, len(s))
	for i, ax := range s {
		names[i] = ax.Name
	}
	return names
}

// Extents returns the axis extents in order as a buffer shape.
func (s AxisSet) Extents() buffer.Shape {
	shape := make(buffer.Shape, len(s))
	for i, ax := range s {
		shape[i] = ax.Extent
	}
	return shape
}

// Has reports whether the set contains the named axis.
func (s AxisSet) Has(name string) bool {
	return s.Index(name) >= 0
}

// Get returns the extent of the named axis.
func (s AxisSet) Get(name string) (int, bool) {
	if i := s.Index(name); i >= 0 {
		return s[i].Extent, true
	}
	return 0, false
}

// Index returns the position of the named axis, or -1.
func (s AxisSet) Index(name string) int {
	for i, ax := range s {
		if ax.Name == name {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy.
func (s AxisSet) Clone() AxisSet {
	return append(AxisSet(nil), s...)
}

// EqualOrdered reports whether both sets list the same axes in the same
// order with the same extents.
func (s AxisSet) EqualOrdered(other AxisSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i, ax := range s {
		if ax != other[i] {
			return false
		}
	}
	return true
}

// Equal reports whether both sets describe the same axes with the same
// extents, ignoring order.
func (s AxisSet) Equal(other AxisSet) bool {
	if len(s) != len(other) {
		return false
	}
	for _, ax := range s {
		extent, ok := other.Get(ax.Name)
		if !ok || extent != ax.Extent {
			return false
		}
	}
	return true
}

// String renders the set as {x:3, y:2}.
func (s AxisSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, ax := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s:%d", ax.Name, ax.Extent)
	}
	sb.WriteByte('}')
	return sb.String()
}
