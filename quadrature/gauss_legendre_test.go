package quadrature

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gaussquad/fastgl"
)

func TestGaussLegendre_SinOnShiftedInterval(t *testing.T) {
	const (
		a, b = -2.5, 4.5
	)
	gl, err := NewGaussLegendre(20)
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(a)-math.Cos(b), gl.Integrate(math.Sin, a, b), 1e-10)
}

func TestGaussLegendre_ParallelMatchesSequential(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 100, 101, 1001} {
		seq, err := NewGaussLegendre(n)
		require.NoError(t, err)
		for _, procLimit := range []int{0, 1, 3, 64} {
			t.Run(fmt.Sprintf("n=%d_procs=%d", n, procLimit), func(t *testing.T) {
				par, err := NewGaussLegendreParallel(n, procLimit)
				require.NoError(t, err)
				assert.Equal(t, seq.Theta.DataP, par.Theta.DataP)
				assert.Equal(t, seq.X.DataP, par.X.DataP)
				assert.Equal(t, seq.W.DataP, par.W.DataP)
			})
		}
	}
}

func TestGaussLegendre_MatchesNodeGenerator(t *testing.T) {
	for _, n := range []int{1, 4, 9, 150} {
		gl, err := NewGaussLegendre(n)
		require.NoError(t, err)
		for k := 1; k <= n; k++ {
			nw := fastgl.MustComputeNodeWeight(n, k)
			assert.InDelta(t, nw.Theta, gl.Theta.AtVec(k-1), 1e-15)
			assert.InDelta(t, nw.X(), gl.X.AtVec(k-1), 1e-15)
			assert.Equal(t, nw.Weight, gl.W.AtVec(k-1))
		}
	}
}

func TestGaussLegendre_InvalidOrder(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := NewGaussLegendre(n)
		assert.True(t, errors.Is(err, fastgl.ErrInvalidRange))
		_, err = NewGaussLegendreParallel(n, 2)
		assert.True(t, errors.Is(err, fastgl.ErrInvalidRange))
	}
}

func TestGaussLegendre_PolynomialExactness(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 64} {
		gl, err := NewGaussLegendre(n)
		require.NoError(t, err)
		assert.InDelta(t, 2., gl.WeightSum(), 1e-14)
		for d := 0; d <= 2*n-1; d++ {
			I := Poly(d, -1, 1)
			assert.InDeltaf(t, I.Value, gl.Integrate(I.F, I.A, I.B), 1e-13, "n=%d, %s", n, I.Name)
		}
	}
}

func TestGaussLegendre_Rescale(t *testing.T) {
	gl, err := NewGaussLegendre(6)
	require.NoError(t, err)
	x, w := gl.Rescale(2, 5)
	assert.InDelta(t, 3., w.Sum(), 1e-14)
	for i := range x.DataP {
		assert.True(t, x.DataP[i] > 2 && x.DataP[i] < 5)
		assert.InDelta(t, 1.5*gl.W.DataP[i], w.DataP[i], 1e-15)
	}
	// The rule itself is unchanged
	assert.InDelta(t, 2., gl.WeightSum(), 1e-14)
	assert.True(t, gl.X.Max() < 1 && gl.X.Min() > -1)
}

func TestGaussLegendre_WeightSums(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10, 50, 200, 1000} {
		gl, err := NewGaussLegendreParallel(n, 0)
		require.NoError(t, err)
		assert.InDeltaf(t, 2., gl.WeightSum(), 1e-10, "n=%d", n)
	}
}

func BenchmarkNewGaussLegendre(b *testing.B) {
	for _, n := range []int{100, 10000, 1000000} {
		b.Run(fmt.Sprintf("sequential_n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = NewGaussLegendre(n)
			}
		})
		b.Run(fmt.Sprintf("parallel_n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = NewGaussLegendreParallel(n, 0)
			}
		})
	}
}
