package marray

import (
	"fmt"
	"reflect"
)

// Count returns the total number of scalar elements in a native fixed-size
// array of any rank: Count([2][3]int{...}) is 6. A non-array value counts as
// a single element. This is distinct from Array.Size, which reports only the
// outermost extent.
func Count(a any) int {
	t := reflect.TypeOf(a)
	n := 1
	for t != nil && t.Kind() == reflect.Array {
		n *= t.Len()
		t = t.Elem()
	}
	return n
}

// DimsOf returns the extent list of a native nested fixed-size array,
// outermost first: DimsOf([2][3]int{}) is Dims{2, 3}. A non-array value has
// no extents and yields an empty Dims.
//
// Go cannot derive a container type from a native array type ahead of time,
// so shape deduction is a runtime inspection rather than a type-level one.
func DimsOf(a any) Dims {
	t := reflect.TypeOf(a)
	var dims Dims
	for t != nil && t.Kind() == reflect.Array {
		dims = append(dims, t.Len())
		t = t.Elem()
	}
	return dims
}

// FromArray converts a native nested fixed-size array into an Array with the
// same extents, copying every scalar element in row-major order.
//
// The scalar element type of the native array must be exactly T, and the
// value must be an array with positive extents; violations panic.
//
// Example:
//
//	a := marray.FromArray[int]([2][2]int{{1, 2}, {3, 4}})
//	v := a.At(1, 0) // 3
func FromArray[T comparable](a any) *Array[T] {
	t := reflect.TypeOf(a)
	if t == nil || t.Kind() != reflect.Array {
		panic(fmt.Sprintf("marray: FromArray requires a native array, got %T", a))
	}

	elem := t
	for elem.Kind() == reflect.Array {
		elem = elem.Elem()
	}
	if elem != reflect.TypeFor[T]() {
		panic(fmt.Sprintf("marray: native element type %s does not match container element type %s",
			elem, reflect.TypeFor[T]()))
	}

	out := New[T](DimsOf(a)...)
	idx := 0
	var walk func(v reflect.Value)
	walk = func(v reflect.Value) {
		if v.Kind() != reflect.Array {
			out.data[idx] = v.Interface().(T)
			idx++
			return
		}
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i))
		}
	}
	walk(reflect.ValueOf(a))
	return out
}

// FromNested creates an array with the given extents from a nested literal
// of slices or arrays, e.g. [][]int{{1, 2, 3}, {4, 5, 6}} with dims (2, 3).
//
// The literal's length at every nesting level must equal the declared extent
// for that level, and every leaf must have type T; a mismatch is a
// programming error and panics. Lengths are validated at construction time,
// not ahead of time.
//
// Example:
//
//	a := marray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}}, 2, 3)
//	v := a.At(1, 2) // 6
func FromNested[T comparable](nested any, dims ...int) *Array[T] {
	out := New[T](dims...)

	idx := 0
	var walk func(v reflect.Value, depth int)
	walk = func(v reflect.Value, depth int) {
		// Literals like []any{...} wrap each level in an interface.
		if v.Kind() == reflect.Interface {
			v = v.Elem()
		}
		if depth == len(dims) {
			elem, ok := v.Interface().(T)
			if !ok {
				panic(fmt.Sprintf("marray: literal element type %s does not match container element type %s",
					v.Type(), reflect.TypeFor[T]()))
			}
			out.data[idx] = elem
			idx++
			return
		}

		if k := v.Kind(); k != reflect.Slice && k != reflect.Array {
			panic(fmt.Sprintf("marray: literal has rank %d, dims %v require rank %d", depth, Dims(dims), len(dims)))
		}
		if v.Len() != dims[depth] {
			panic(fmt.Sprintf("marray: literal length %d does not match dimension %d (size %d)", v.Len(), depth, dims[depth]))
		}
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i), depth+1)
		}
	}
	walk(reflect.ValueOf(nested), 0)
	return out
}
