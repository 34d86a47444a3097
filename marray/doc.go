// Copyright 2026 The marray Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package marray provides fixed-shape multi-dimensional arrays with
// container-like ergonomics.
//
// # Overview
//
// An Array[T] is a rectangular grid of T with a fixed dimension list,
// outermost first, backed by a single contiguous row-major buffer. It is a
// plain value type: no goroutines, no locks, no I/O. This package provides:
//   - Generic fixed-shape arrays (Array[T]) of any rank
//   - Sub-array views that alias the parent's storage
//   - Iteration over the outermost dimension, forward and reverse
//   - Conversion from native nested Go arrays
//
// # Basic Usage
//
//	import "github.com/go-marray/marray/marray"
//
//	func main() {
//	    a := marray.FromNested[int]([][]int{{1, 2, 3}, {4, 5, 6}}, 2, 3)
//
//	    a.At(1, 2)       // 6
//	    a.Order()        // 2
//	    a.Size()         // 2 (outermost extent, not the total of 6)
//
//	    for i, row := range a.All() {
//	        fmt.Println(i, row) // 0 [1 2 3], then 1 [4 5 6]
//	    }
//	}
//
// # Shape Semantics
//
// Dimensions are fixed at construction: there is no resizing, reshaping, or
// sparse storage. Size and MaxSize report the outermost extent only; the
// total element count is Dims().Count(), and the free helper Count reports
// the same for native nested arrays.
//
// # Views and Copies
//
// Sub, Front, Back, and iteration return views sharing the parent's storage,
// so writes through a view are visible in the parent. Clone returns an
// independent deep copy with its own contiguous buffer.
//
// # Error Handling
//
// Every failure mode is a programming-contract violation, not a runtime
// condition: constructing with a non-positive extent, a nested literal whose
// length does not match its declared extent, or indexing out of bounds all
// panic with a descriptive message. There are no error returns on the hot
// path and no recovery story; fix the call site.
//
// # Concurrency
//
// An Array follows plain-value discipline: concurrent reads of an unchanging
// array are safe, concurrent writes require synchronization supplied by the
// caller. The package performs no locking of its own.
package marray
