package marray

import (
	"fmt"
	"strings"
)

// Array is a fixed-shape multi-dimensional array of T.
// Its dimensions are fixed at construction and never change; storage is a
// single contiguous row-major buffer owned by the root array.
//
// Sub-array accessors (Sub, Front, Back, iteration) return views that alias
// the parent's storage, so writes through a view are visible in the parent.
// Clone returns an independent deep copy.
//
// Example:
//
//	a := marray.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	v := a.At(1, 2) // 6
type Array[T comparable] struct {
	dims    Dims
	strides []int
	data    []T
}

// New creates an array with the given extents, outermost first, with every
// element set to the zero value of T.
//
// At least one extent is required and every extent must be positive; a
// violation is a programming error and panics.
//
// Example:
//
//	a := marray.New[float64](2, 3, 4)
func New[T comparable](dims ...int) *Array[T] {
	d := Dims(dims)
	if d.Rank() == 0 {
		panic("marray: at least one dimension required")
	}
	if err := d.Validate(); err != nil {
		panic(fmt.Sprintf("marray: %v", err))
	}

	d = d.Clone()
	return &Array[T]{
		dims:    d,
		strides: d.Strides(),
		data:    make([]T, d.Count()),
	}
}

// Full creates an array with the given extents where every element, at every
// position and nesting depth, is set to value.
//
// Example:
//
//	a := marray.Full(3.14, 2, 2)
func Full[T comparable](value T, dims ...int) *Array[T] {
	a := New[T](dims...)
	a.Fill(value)
	return a
}

// FromSlice creates an array with the given extents from flat row-major
// data. The data is copied; len(data) must equal the product of the extents
// (panics otherwise).
//
// Example:
//
//	a := marray.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T comparable](data []T, dims ...int) *Array[T] {
	a := New[T](dims...)
	if len(data) != len(a.data) {
		panic(fmt.Sprintf("marray: dims %v require %d elements, but got %d", a.dims, len(a.data), len(data)))
	}
	copy(a.data, data)
	return a
}

// Dims returns a copy of the array's dimension list.
func (a *Array[T]) Dims() Dims {
	return a.dims.Clone()
}

// Order returns the rank (number of dimensions).
func (a *Array[T]) Order() int {
	return a.dims.Rank()
}

// Size returns the outermost extent only, not the total element count: a 2×3
// array reports size 2. Use Dims().Count() for the total.
func (a *Array[T]) Size() int {
	return a.dims.Outer()
}

// MaxSize returns the same value as Size; the shape is fixed, so the array
// can never hold more outer slots than it was constructed with.
func (a *Array[T]) MaxSize() int {
	return a.Size()
}

// Empty reports whether Size is zero. Constructed arrays always have
// positive extents; only a rank-0 scalar view, which has no outer dimension,
// reports empty.
func (a *Array[T]) Empty() bool {
	return a.Size() == 0
}

// Data returns the flat row-major storage (zero-copy view).
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// offset computes the flat position for a full coordinate list.
// Panics on wrong arity or out-of-range indices.
func (a *Array[T]) offset(indices []int) int {
	if len(indices) != a.dims.Rank() {
		panic(fmt.Sprintf("marray: expected %d indices, got %d", a.dims.Rank(), len(indices)))
	}

	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.dims[i] {
			panic(fmt.Sprintf("marray: index %d out of bounds for dimension %d (size %d)", idx, i, a.dims[i]))
		}
		off += idx * a.strides[i]
	}
	return off
}

// At returns the element at the given coordinate, one index per dimension,
// outermost first. Panics if the number of indices differs from the rank or
// any index is out of bounds.
//
// Example:
//
//	a := marray.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	v := a.At(1, 2) // 6
func (a *Array[T]) At(indices ...int) T {
	return a.data[a.offset(indices)]
}

// Set sets the element at the given coordinate.
// Panics if the number of indices differs from the rank or any index is out
// of bounds.
func (a *Array[T]) Set(value T, indices ...int) {
	a.data[a.offset(indices)] = value
}

// Sub returns a view of the sub-array at the given outer coordinate prefix:
// one index selects a rank R-1 sub-array, two indices a rank R-2 sub-array,
// and a full coordinate list a rank-0 scalar view (read it with Item).
//
// The view shares the receiver's storage. Panics if more indices are given
// than the rank, or any index is out of bounds. Coordinates are validated at
// call time; there is no ahead-of-time bounds guarantee.
func (a *Array[T]) Sub(indices ...int) *Array[T] {
	if len(indices) > a.dims.Rank() {
		panic(fmt.Sprintf("marray: expected at most %d indices, got %d", a.dims.Rank(), len(indices)))
	}

	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.dims[i] {
			panic(fmt.Sprintf("marray: index %d out of bounds for dimension %d (size %d)", idx, i, a.dims[i]))
		}
		off += idx * a.strides[i]
	}

	rest := a.dims[len(indices):].Clone()
	return &Array[T]{
		dims:    rest,
		strides: rest.Strides(),
		data:    a.data[off : off+rest.Count()],
	}
}

// Item returns the value held by a rank-0 scalar view.
// Panics if the array is not rank 0.
//
// Example:
//
//	a := marray.FromSlice([]int{1, 2, 3, 4}, 2, 2)
//	v := a.Sub(1, 0).Item() // 3
func (a *Array[T]) Item() T {
	if a.dims.Rank() != 0 {
		panic(fmt.Sprintf("marray: Item() only works for rank-0 views, got dims %v", a.dims))
	}
	return a.data[0]
}

// Front returns a view of the first outer slot.
// Panics on a rank-0 view, which has no outer dimension.
func (a *Array[T]) Front() *Array[T] {
	return a.Sub(0)
}

// Back returns a view of the last outer slot.
// Panics on a rank-0 view, which has no outer dimension.
func (a *Array[T]) Back() *Array[T] {
	return a.Sub(a.dims.Outer() - 1)
}

// Fill sets every element, at every position and nesting depth, to value.
func (a *Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Swap exchanges the contents of two arrays element by element.
// Both arrays must have identical dimensions (panics otherwise).
// No allocation is performed.
func (a *Array[T]) Swap(other *Array[T]) {
	if !a.dims.Equal(other.dims) {
		panic(fmt.Sprintf("marray: cannot swap arrays with dims %v and %v", a.dims, other.dims))
	}
	for i := range a.data {
		a.data[i], other.data[i] = other.data[i], a.data[i]
	}
}

// Equal reports whether both arrays have identical dimensions and every
// element compares equal. Arrays of differing dimensions are never equal.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if !a.dims.Equal(other.dims) {
		return false
	}
	for i := range a.data {
		if a.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the array. Cloning a view materializes it
// into an independent array with its own storage.
func (a *Array[T]) Clone() *Array[T] {
	d := a.dims.Clone()
	clone := &Array[T]{
		dims:    d,
		strides: d.Strides(),
		data:    make([]T, d.Count()),
	}
	copy(clone.data, a.data)
	return clone
}

// String returns a nested-literal rendering, e.g. "[[1 2 3] [4 5 6]]".
func (a *Array[T]) String() string {
	switch a.dims.Rank() {
	case 0:
		return fmt.Sprint(a.data[0])
	case 1:
		return fmt.Sprint(a.data)
	default:
		parts := make([]string, a.dims.Outer())
		for i := range parts {
			parts[i] = a.Sub(i).String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
}
