// Copyright 2026 The marray Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package marray_test

import (
	"fmt"

	"github.com/go-marray/marray/marray"
)

// Example_nestedLiteral builds a 2×3 integer array from a nested literal and
// reads it back through the container's accessors.
func Example_nestedLiteral() {
	a := marray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}}, 2, 3)

	fmt.Println("order:", a.Order())
	fmt.Println("size:", a.Size())
	fmt.Println("a(1,2):", a.At(1, 2))

	for i, row := range a.All() {
		fmt.Printf("row %d: %v\n", i, row)
	}

	// Output:
	// order: 2
	// size: 2
	// a(1,2): 6
	// row 0: [1 2 3]
	// row 1: [4 5 6]
}

// Example_fromNativeArray converts a native nested Go array into a container
// with the same extents.
func Example_fromNativeArray() {
	native := [2][2]int{{1, 2}, {3, 4}}

	a := marray.FromArray[int](native)

	fmt.Println("dims:", a.Dims())
	fmt.Println("a(1,0):", a.At(1, 0))
	fmt.Println("elements:", marray.Count(native))

	// Output:
	// dims: (2, 2)
	// a(1,0): 3
	// elements: 4
}

// Example_viewsShareStorage shows sub-array views writing through to the
// parent array.
func Example_viewsShareStorage() {
	a := marray.New[int](2, 3)

	a.Sub(1).Fill(7)
	a.Front().Set(1, 0)

	fmt.Println(a)

	// Output:
	// [[1 0 0] [7 7 7]]
}

func ExampleFull() {
	a := marray.Full(9, 2, 2)
	fmt.Println(a)

	// Output:
	// [[9 9] [9 9]]
}

func ExampleArray_Swap() {
	a := marray.FromSlice([]int{1, 2, 3, 4}, 2, 2)
	b := marray.Full(0, 2, 2)

	a.Swap(b)

	fmt.Println("a:", a)
	fmt.Println("b:", b)

	// Output:
	// a: [[0 0] [0 0]]
	// b: [[1 2] [3 4]]
}
