package parmat

import (
	"fmt"
	"slices"
)

// Vector is an immutable, owned sequence of elements.
//
// A Vector never shares its backing array with the matrix it was taken
// from, so it can be handed to another goroutine as-is.
type Vector[T Number] struct {
	data []T
}

// NewVector returns a Vector holding a copy of data.
func NewVector[T Number](data []T) Vector[T] {
	return Vector[T]{data: slices.Clone(data)}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// At returns the element at position i. It panics if i is out of range,
// like a slice index.
func (v Vector[T]) At(i int) T { return v.data[i] }

// Values returns a copy of the elements.
func (v Vector[T]) Values() []T { return slices.Clone(v.data) }

// DotProduct returns the sum of a[k]*b[k] over all positions k.
//
// The sum starts from the zero value of T. Vectors of unequal length fail
// with ErrDimensionMismatch.
func DotProduct[T Number](a, b Vector[T]) (T, error) {
	var sum T
	if len(a.data) != len(b.data) {
		return sum, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a.data), len(b.data))
	}
	for k, x := range a.data {
		sum += x * b.data[k]
	}
	return sum, nil
}
