package parmat

import (
	"fmt"
	"math"
	"slices"
)

// Matrix is a dense row-major matrix.
//
// Element (i, j) lives at data[i*cols+j]. A Matrix has no setters and is
// never modified after construction.
type Matrix[T Number] struct {
	rows int
	cols int
	data []T
}

// New returns a rows×cols matrix backed by data. The matrix takes ownership
// of data; the caller must not modify it afterwards.
//
// New does not validate its input: len(data) must equal rows*cols. Use
// NewChecked when the shape comes from an untrusted source.
func New[T Number](rows, cols int, data []T) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// NewChecked is New with validation. It fails with ErrBadShape for negative
// dimensions, for an element count that overflows int, or when
// len(data) != rows*cols.
func NewChecked[T Number](rows, cols int, data []T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, parmatErrorf("NewChecked", fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols))
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, parmatErrorf("NewChecked", fmt.Errorf("%w: %dx%d overflows int", ErrBadShape, rows, cols))
	}
	if len(data) != rows*cols {
		return nil, parmatErrorf("NewChecked",
			fmt.Errorf("%w: %dx%d needs %d elements, got %d", ErrBadShape, rows, cols, rows*cols, len(data)))
	}
	return New(rows, cols, data), nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Data returns a copy of the row-major backing sequence.
func (m *Matrix[T]) Data() []T { return slices.Clone(m.data) }

// At returns element (i, j). Out-of-range indices panic.
func (m *Matrix[T]) At(i, j int) T { return m.data[i*m.cols+j] }

// Row copies row i into a Vector.
func (m *Matrix[T]) Row(i int) Vector[T] {
	return NewVector(m.data[i*m.cols : (i+1)*m.cols])
}

// Col materializes column j, the elements at j, j+cols, j+2*cols, ...
func (m *Matrix[T]) Col(j int) Vector[T] {
	col := make([]T, m.rows)
	for k := range m.rows {
		col[k] = m.data[j+k*m.cols]
	}
	return Vector[T]{data: col}
}

// Equal reports whether m and o have the same shape and elements.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.rows == o.rows && m.cols == o.cols && slices.Equal(m.data, o.data)
}

// Mul is the operator form of Multiply: it panics on any error.
// Prefer Multiply where the error can be handled.
func (m *Matrix[T]) Mul(b *Matrix[T]) *Matrix[T] {
	return MustMultiply(m, b)
}
