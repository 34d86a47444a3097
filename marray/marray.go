// Copyright 2026 The marray Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package marray

import (
	"github.com/go-marray/marray/internal/marray"
)

// Type aliases for public API

// Dims holds the extents of a fixed-shape array, outermost first.
// Example: Dims{2, 3} describes a 2×3 array.
type Dims = marray.Dims

// Array is a fixed-shape multi-dimensional array of T.
//
// T is the element type and must be comparable so arrays support deep
// equality. The dimension list is fixed at construction; storage is a single
// contiguous row-major buffer. Sub-array accessors return views that alias
// the parent's storage, and Clone restores value semantics.
//
// Example:
//
//	a := marray.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	v := a.At(1, 2) // 6
type Array[T comparable] = marray.Array[T]

// Creation functions

// New creates an array with the given extents, outermost first, with every
// element set to the zero value of T. At least one positive extent is
// required (panics otherwise).
//
// Example:
//
//	a := marray.New[float64](2, 3, 4)
func New[T comparable](dims ...int) *Array[T] {
	return marray.New[T](dims...)
}

// Full creates an array with every element set to value.
//
// Example:
//
//	a := marray.Full(3.14, 2, 2)
func Full[T comparable](value T, dims ...int) *Array[T] {
	return marray.Full(value, dims...)
}

// FromSlice creates an array from flat row-major data; len(data) must equal
// the product of the extents (panics otherwise). The data is copied.
//
// Example:
//
//	a := marray.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[T comparable](data []T, dims ...int) *Array[T] {
	return marray.FromSlice(data, dims...)
}

// FromNested creates an array from a nested literal of slices or arrays.
// The length at every nesting level must equal the declared extent for that
// level (panics otherwise).
//
// Example:
//
//	a := marray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}}, 2, 3)
func FromNested[T comparable](nested any, dims ...int) *Array[T] {
	return marray.FromNested[T](nested, dims...)
}

// FromArray converts a native nested fixed-size Go array into an Array with
// the same extents, copying every scalar element in row-major order.
//
// Example:
//
//	a := marray.FromArray[int]([2][2]int{{1, 2}, {3, 4}})
//	v := a.At(1, 0) // 3
func FromArray[T comparable](a any) *Array[T] {
	return marray.FromArray[T](a)
}

// Utility functions

// Count returns the total number of scalar elements in a native fixed-size
// array of any rank; a non-array value counts as one element.
//
// Example:
//
//	n := marray.Count([2][3]int{}) // 6
func Count(a any) int {
	return marray.Count(a)
}

// DimsOf returns the extent list of a native nested fixed-size array type,
// outermost first.
//
// Example:
//
//	d := marray.DimsOf([2][3]int{}) // Dims{2, 3}
func DimsOf(a any) Dims {
	return marray.DimsOf(a)
}
