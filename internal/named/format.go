package named

import (
	"fmt"
	"strings"

	"github.com/axial-ml/axial/internal/buffer"
)

// String renders the array with its axes, dtype, and elements nested by
// axis, outermost first. Rank-0 arrays render their single element bare.
func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteString("Array(axes=")
	sb.WriteString(a.Axes().String())
	sb.WriteString(", dtype=")
	sb.WriteString(a.DType().String())
	sb.WriteString(", data=")
	writeNested(&sb, a.buf)
	sb.WriteByte(')')
	return sb.String()
}

func writeNested(sb *strings.Builder, buf *buffer.Buffer) {
	shape := buf.Shape()
	strides := buf.Strides()
	elem := elemWriter(buf)

	var write func(dim, off int)
	write = func(dim, off int) {
		if dim == len(shape) {
			elem(sb, off)
			return
		}
		sb.WriteByte('[')
		for i := 0; i < shape[dim]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			write(dim+1, off+i*strides[dim])
		}
		sb.WriteByte(']')
	}
	write(0, 0)
}

func elemWriter(buf *buffer.Buffer) func(*strings.Builder, int) {
	switch buf.DType() {
	case buffer.Float64:
		data := buf.AsFloat64()
		return func(sb *strings.Builder, off int) { fmt.Fprintf(sb, "%g", data[off]) }
	case buffer.Float32:
		data := buf.AsFloat32()
		return func(sb *strings.Builder, off int) { fmt.Fprintf(sb, "%g", data[off]) }
	case buffer.Int64:
		data := buf.AsInt64()
		return func(sb *strings.Builder, off int) { fmt.Fprintf(sb, "%d", data[off]) }
	case buffer.Int32:
		data := buf.AsInt32()
		return func(sb *strings.Builder, off int) { fmt.Fprintf(sb, "%d", data[off]) }
	case buffer.Bool:
		data := buf.AsBool()
		return func(sb *strings.Builder, off int) { fmt.Fprintf(sb, "%t", data[off]) }
	default:
		return func(sb *strings.Builder, off int) { sb.WriteByte('?') }
	}
}
