// Package ring provides a fixed-capacity circular buffer whose slots are
// recycled in place. The logical order starts at the head slot and wraps
// around; advancing the head rotates the oldest slot to the back.
package ring

import (
	"fmt"
	"iter"
)

// Ring is a fixed-capacity circular buffer of T.
// Slots are allocated once by New and never reallocated.
type Ring[T any] struct {
	slots []T
	head  int
}

// New creates a ring with n slots initialized by fill(i) for logical index i.
// Panics if n is not positive: a zero-capacity ring has no front or back.
func New[T any](n int, fill func(i int) T) *Ring[T] {
	if n <= 0 {
		panic(fmt.Sprintf("ring: capacity must be positive, got %d", n))
	}

	r := &Ring[T]{slots: make([]T, n)}
	for i := range r.slots {
		r.slots[i] = fill(i)
	}
	return r
}

// Len returns the fixed capacity.
func (r *Ring[T]) Len() int {
	return len(r.slots)
}

// Head returns the physical slot index of the front element.
func (r *Ring[T]) Head() int {
	return r.head
}

// At returns the element at logical index i, counted from the head.
// Indices wrap modulo the capacity.
func (r *Ring[T]) At(i int) *T {
	n := len(r.slots)
	return &r.slots[((r.head+i)%n+n)%n]
}

// Front returns the element at the head.
func (r *Ring[T]) Front() *T {
	return r.At(0)
}

// Back returns the element logically behind all others.
func (r *Ring[T]) Back() *T {
	return r.At(len(r.slots) - 1)
}

// Advance moves the head forward by one slot, so the old front becomes the back.
func (r *Ring[T]) Advance() {
	r.head = (r.head + 1) % len(r.slots)
}

// Rewind resets the head to physical slot 0 without touching the elements.
func (r *Ring[T]) Rewind() {
	r.head = 0
}

// All iterates elements in logical order starting at the head.
func (r *Ring[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range r.slots {
			if !yield(i, r.At(i)) {
				return
			}
		}
	}
}

// Slots iterates elements in physical storage order, ignoring the head.
func (r *Ring[T]) Slots() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range r.slots {
			if !yield(&r.slots[i]) {
				return
			}
		}
	}
}
