// Package marray provides the core fixed-shape multi-dimensional array container.
package marray

import (
	"fmt"
	"strings"
)

// Dims holds the extents of a fixed-shape array, outermost first.
// A Dims of length zero describes a scalar view.
type Dims []int

// Rank returns the number of dimensions.
func (d Dims) Rank() int {
	return len(d)
}

// Outer returns the outermost extent, or 0 for a scalar view.
func (d Dims) Outer() int {
	if len(d) == 0 {
		return 0
	}
	return d[0]
}

// Count returns the total number of scalar elements (the product of all
// extents). A scalar view counts as 1 element.
func (d Dims) Count() int {
	n := 1
	for _, dim := range d {
		n *= dim
	}
	return n
}

// Validate checks that every extent is positive.
func (d Dims) Validate() error {
	for i, dim := range d {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two dimension lists are identical.
func (d Dims) Equal(other Dims) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the dimension list.
func (d Dims) Clone() Dims {
	clone := make(Dims, len(d))
	copy(clone, d)
	return clone
}

// Strides calculates row-major strides: stride[i] is the flat distance
// between consecutive positions along dimension i.
func (d Dims) Strides() []int {
	strides := make([]int, len(d))
	if len(d) == 0 {
		return strides
	}

	strides[len(d)-1] = 1
	for i := len(d) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * d[i+1]
	}
	return strides
}

// String returns the dimension list as "(d1, d2, ...)".
func (d Dims) String() string {
	parts := make([]string, len(d))
	for i, dim := range d {
		parts[i] = fmt.Sprintf("%d", dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
