package parmat_test

import (
	"math/rand/v2"
	"time"

	pm "github.com/azargarov/parmat"
)

func newTestOptions(workers int) pm.Options {
	return pm.Options{
		Workers:   workers,
		QueueSize: 16,
		Metrics:   &pm.AtomicMetrics{},
		Wait:      pm.WaitPolicy{Initial: 50 * time.Millisecond, Max: 200 * time.Millisecond},
	}
}

func randInts(r *rand.Rand, rows, cols int) *pm.Matrix[int] {
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = r.IntN(21) - 10
	}
	return pm.New(rows, cols, data)
}

func randFloats(r *rand.Rand, rows, cols int) *pm.Matrix[float64] {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = r.Float64()*2 - 1
	}
	return pm.New(rows, cols, data)
}

// naiveMul is the sequential reference product.
func naiveMul[T pm.Number](a, b *pm.Matrix[T]) *pm.Matrix[T] {
	out := make([]T, a.Rows()*b.Cols())
	for i := range a.Rows() {
		for j := range b.Cols() {
			var sum T
			for k := range a.Cols() {
				sum += a.At(i, k) * b.At(k, j)
			}
			out[i*b.Cols()+j] = sum
		}
	}
	return pm.New(a.Rows(), b.Cols(), out)
}
