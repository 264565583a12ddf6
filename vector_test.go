package parmat_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pm "github.com/azargarov/parmat"
)

func TestDotProduct(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"Basic", []int{1, 2, 3}, []int{4, 5, 6}, 32},
		{"Single", []int{7}, []int{-3}, -21},
		{"Empty", nil, nil, 0},
		{"Zeros", []int{0, 0}, []int{9, 9}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := pm.DotProduct(pm.NewVector(tc.a), pm.NewVector(tc.b))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDotProductLengthMismatch(t *testing.T) {
	got, err := pm.DotProduct(pm.NewVector([]int{1, 2, 3}), pm.NewVector([]int{1, 2}))
	require.ErrorIs(t, err, pm.ErrDimensionMismatch)
	assert.Zero(t, got)

	_, err = pm.DotProduct(pm.NewVector([]float64{}), pm.NewVector([]float64{1}))
	require.ErrorIs(t, err, pm.ErrDimensionMismatch)
}

func TestDotProductSymmetric(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		n := r.IntN(32)
		a := make([]int64, n)
		b := make([]int64, n)
		for k := range n {
			a[k] = r.Int64N(1000) - 500
			b[k] = r.Int64N(1000) - 500
		}
		ab, err := pm.DotProduct(pm.NewVector(a), pm.NewVector(b))
		require.NoError(t, err)
		ba, err := pm.DotProduct(pm.NewVector(b), pm.NewVector(a))
		require.NoError(t, err)
		require.Equal(t, ab, ba)
	}
}

func TestDotProductComplex(t *testing.T) {
	got, err := pm.DotProduct(
		pm.NewVector([]complex128{1 + 1i, 2}),
		pm.NewVector([]complex128{1 - 1i, 3i}),
	)
	require.NoError(t, err)
	assert.Equal(t, complex(2, 6), got)
}

func TestVectorOwnsItsData(t *testing.T) {
	src := []int{1, 2, 3}
	v := pm.NewVector(src)
	src[0] = 100
	assert.Equal(t, 1, v.At(0))

	vals := v.Values()
	vals[1] = 100
	assert.Equal(t, 2, v.At(1))
	assert.Equal(t, 3, v.Len())
}
