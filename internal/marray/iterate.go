package marray

import "iter"

// All returns a forward iterator over the outermost dimension, yielding each
// outer index together with a view of the sub-array at that slot (a rank-0
// scalar view when the receiver is rank 1).
//
// The sequence is finite and restartable: ranging over it twice yields the
// same slots.
//
// Example:
//
//	a := marray.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	for i, row := range a.All() {
//		fmt.Println(i, row)
//	}
func (a *Array[T]) All() iter.Seq2[int, *Array[T]] {
	return func(yield func(int, *Array[T]) bool) {
		for i := 0; i < a.dims.Outer(); i++ {
			if !yield(i, a.Sub(i)) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over the outermost dimension, from the
// last outer slot down to the first.
func (a *Array[T]) Backward() iter.Seq2[int, *Array[T]] {
	return func(yield func(int, *Array[T]) bool) {
		for i := a.dims.Outer() - 1; i >= 0; i-- {
			if !yield(i, a.Sub(i)) {
				return
			}
		}
	}
}
