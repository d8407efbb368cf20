package buffer

import (
	"fmt"
	"reflect"
)

// FromNested builds a buffer from nested Go slices, inferring the shape
// from the nesting structure. Leaves must share one element type drawn
// from the DType set. Ragged nesting is rejected.
//
// Example:
//
//	buf, shape, err := buffer.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
//	// shape = [2 3], dtype = Float64
func FromNested(value any) (*Buffer, Shape, error) {
	shape, dtype, err := nestedShape(value)
	if err != nil {
		return nil, nil, err
	}

	buf, err := New(shape, dtype)
	if err != nil {
		return nil, nil, err
	}

	pos := 0
	if err := flattenNested(buf, value, shape, 0, &pos); err != nil {
		return nil, nil, err
	}
	return buf, shape, nil
}

// nestedShape walks the first spine of the nesting to infer shape and dtype.
func nestedShape(value any) (Shape, DataType, error) {
	var shape Shape
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Slice {
		shape = append(shape, v.Len())
		if v.Len() == 0 {
			// Descend statically so an empty spine keeps its element type.
			et := v.Type().Elem()
			for et.Kind() == reflect.Slice {
				et = et.Elem()
			}
			v = reflect.Zero(et)
			break
		}
		v = v.Index(0)
		if v.Kind() == reflect.Interface {
			v = v.Elem()
		}
	}

	dtype, err := leafDataType(v)
	if err != nil {
		return nil, 0, err
	}
	return shape, dtype, nil
}

func leafDataType(v reflect.Value) (DataType, error) {
	switch v.Kind() {
	case reflect.Float64:
		return Float64, nil
	case reflect.Float32:
		return Float32, nil
	case reflect.Int64, reflect.Int:
		return Int64, nil
	case reflect.Int32:
		return Int32, nil
	case reflect.Bool:
		return Bool, nil
	case reflect.Interface, reflect.Invalid:
		// Untyped empty spine: default numeric dtype.
		return Float64, nil
	default:
		return 0, fmt.Errorf("%w: unsupported element type %s", ErrInvalidParameter, v.Kind())
	}
}

// flattenNested writes leaves in row-major order, verifying every branch
// matches the inferred shape.
func flattenNested(buf *Buffer, value any, shape Shape, depth int, pos *int) error {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	if depth == len(shape) {
		if v.Kind() == reflect.Slice {
			return fmt.Errorf("%w: ragged nesting at depth %d", ErrShapeMismatch, depth)
		}
		dt, err := leafDataType(v)
		if err != nil {
			return err
		}
		if v.Kind() == reflect.Invalid || dt != buf.DType() {
			return fmt.Errorf("%w: element of kind %s, expected %s",
				ErrInvalidParameter, v.Kind(), buf.DType())
		}
		writeLeaf(buf, v, *pos)
		*pos++
		return nil
	}

	if v.Kind() != reflect.Slice {
		return fmt.Errorf("%w: ragged nesting at depth %d", ErrShapeMismatch, depth)
	}
	if v.Len() != shape[depth] {
		return fmt.Errorf("%w: ragged nesting at depth %d: length %d, expected %d",
			ErrShapeMismatch, depth, v.Len(), shape[depth])
	}
	for i := 0; i < v.Len(); i++ {
		if err := flattenNested(buf, v.Index(i).Interface(), shape, depth+1, pos); err != nil {
			return err
		}
	}
	return nil
}

func writeLeaf(buf *Buffer, v reflect.Value, pos int) {
	switch buf.DType() {
	case Float64:
		buf.AsFloat64()[pos] = v.Float()
	case Float32:
		buf.AsFloat32()[pos] = float32(v.Float())
	case Int64:
		buf.AsInt64()[pos] = v.Int()
	case Int32:
		buf.AsInt32()[pos] = int32(v.Int())
	case Bool:
		buf.AsBool()[pos] = v.Bool()
	}
}
