package quadrature

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gaussquad/fastgl"
	"github.com/notargets/gaussquad/utils"
)

func TestJacobiGQ_PartitionAndFirstMoment(t *testing.T) {
	const (
		α   = 0.3
		β   = 0.7
		N   = 5
		tol = 1e-12
	)
	X, W, err := JacobiGQ(α, β, N)
	require.NoError(t, err)
	x, w := X.DataP, W.DataP

	// ∫_{-1}^1 (1-x)^α (1+x)^β dx = 2^{α+β+1} B(α+1, β+1)
	exactZero := math.Pow(2, α+β+1) * betaFunc(α+1, β+1)
	// First moment is (β-α)/(α+β+2) times the zeroth
	exactOne := (β - α) / (α + β + 2) * exactZero

	var sum0, sum1 float64
	for i := range x {
		sum0 += w[i]
		sum1 += x[i] * w[i]
	}
	assert.InDeltaf(t, exactZero, sum0, tol, "sum(w) = %v, want %v", sum0, exactZero)
	assert.InDeltaf(t, exactOne, sum1, tol, "sum(x*w) = %v, want %v", sum1, exactOne)
}

func TestJacobiGQ_RootsAndMoments(t *testing.T) {
	const (
		α   = 0.3
		β   = 0.7
		N   = 5
		tol = 1e-10
	)
	Xvec, Wvec, err := JacobiGQ(α, β, N)
	require.NoError(t, err)
	X, W := Xvec.DataP, Wvec.DataP
	assert.Equal(t, N+1, len(X))
	assert.Equal(t, N+1, len(W))

	// Nodes are the roots of the (N+1)-th Jacobi polynomial
	for i, xi := range X {
		pi := JacobiP(utils.NewVector(1, []float64{xi}), α, β, N+1)[0]
		assert.InDeltaf(t, 0, pi, tol, "P_%d(%g) = %g, node %d", N+1, xi, pi, i)
	}
	// Exact for polynomials up to degree 2N+1
	for k := 0; k <= 2*N+1; k++ {
		var s float64
		for i, xi := range X {
			s += W[i] * math.Pow(xi, float64(k))
		}
		assert.InDeltaf(t, exactMoment(k, α, β), s, tol, "moment %d", k)
	}
	for i, xi := range X {
		assert.Truef(t, xi > -1 && xi < 1, "node %d = %g outside (-1, 1)", i, xi)
		assert.Truef(t, W[i] > 0, "weight %d = %g", i, W[i])
		if i > 0 {
			assert.Truef(t, xi > X[i-1], "nodes not increasing at %d", i)
		}
	}
}

func TestJacobiGQ_AgreesWithNodeGenerator(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17, 64} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			X, W, err := JacobiGQ(0, 0, n-1)
			require.NoError(t, err)
			for k := 1; k <= n; k++ {
				// Eigenvalues ascend while node angles ascend, so x descends
				nw := fastgl.MustComputeNodeWeight(n, k)
				assert.InDeltaf(t, X.AtVec(n-k), nw.X(), 1e-12, "x, k=%d", k)
				assert.InDeltaf(t, W.AtVec(n-k), nw.Weight, 1e-12, "w, k=%d", k)
			}
		})
	}
}

func TestJacobiMatrix_EigenResidual(t *testing.T) {
	const N = 30
	JJ := jacobiMatrix(0, 0, N)
	r, c := JJ.Dims()
	assert.Equal(t, [2]int{N + 1, N + 1}, [2]int{r, c})
	JJ.DoNonZero(func(i, j int, v float64) {
		assert.LessOrEqual(t, math.Abs(float64(i-j)), 1.)
		assert.Equal(t, v, JJ.At(j, i))
	})
	// Legendre: J[i-1][i] = i/sqrt(4i^2-1)
	assert.InDelta(t, 1./math.Sqrt(3), JJ.At(0, 1), 1e-15)
	assert.InDelta(t, 5./math.Sqrt(99), JJ.At(4, 5), 1e-15)

	JJsym := mat.NewSymDense(N+1, nil)
	JJ.DoNonZero(func(i, j int, v float64) {
		if j >= i {
			JJsym.SetSym(i, j, v)
		}
	})
	var eig mat.EigenSym
	require.True(t, eig.Factorize(JJsym, true))
	lambda := eig.Values(nil)
	V := mat.NewDense(N+1, N+1, nil)
	eig.VectorsTo(V)
	assert.Less(t, eigenResidual(JJ, lambda, V), 1e-13)
	// A wrong eigenvalue shows up in the residual
	lambda[0] += 1e-6
	assert.Greater(t, eigenResidual(JJ, lambda, V), 1e-8)
}

func TestJacobiGQ_SmallOrders(t *testing.T) {
	X, W, err := JacobiGQ(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, X.DataP)
	assert.InDelta(t, 4./3., W.DataP[0], 1e-15)

	// alpha+beta = -1, the Chebyshev weight 1/sqrt(1-x^2)
	X, W, err = JacobiGQ(-0.5, -0.5, 3)
	require.NoError(t, err)
	for i := range X.DataP {
		k := float64(4 - i)
		assert.InDelta(t, math.Cos((2*k-1)*math.Pi/8), X.DataP[i], 1e-14)
		assert.InDelta(t, math.Pi/4, W.DataP[i], 1e-14)
	}

	for _, bad := range []struct {
		α, β float64
		N    int
	}{{0, 0, -1}, {-1, 0, 3}, {0, -2, 3}} {
		_, _, err = JacobiGQ(bad.α, bad.β, bad.N)
		assert.True(t, errors.Is(err, fastgl.ErrInvalidRange))
		_, err = JacobiGL(bad.α, bad.β, bad.N)
		assert.True(t, errors.Is(err, fastgl.ErrInvalidRange))
	}
}

func TestJacobiGL(t *testing.T) {
	tests := []struct {
		name     string
		N        int
		expected []float64
	}{
		{"N=0", 0, []float64{0.0}},
		{"N=1", 1, []float64{-1.0, 1.0}},
		{"N=2", 2, []float64{-1.0, 0.0, 1.0}},
		{"N=3", 3, []float64{-1.0, -0.4472135954999579, 0.4472135954999579, 1.0}},
		{"N=4", 4, []float64{-1.0, -0.6546536707079771, 0.0, 0.6546536707079771, 1.0}},
		{"N=5", 5, []float64{-1.0, -0.7650553239294647, -0.2852315164806451,
			0.2852315164806451, 0.7650553239294647, 1.0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			X, err := JacobiGL(0, 0, tc.N)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.expected, X.DataP, 1e-14)
			// Interior points are roots of P'_N
			if tc.N >= 2 {
				interior := utils.NewVector(tc.N-1, X.Copy().DataP[1:tc.N])
				for i, dp := range GradJacobiP(interior, 0, 0, tc.N) {
					assert.InDeltaf(t, 0, dp, 1e-12, "P'_%d at interior point %d", tc.N, i)
				}
			}
		})
	}
}

func TestJacobiPOrthonormality(t *testing.T) {
	const (
		α, β = 0.3, 0.7
		N    = 6
	)
	// A rule with N+1 points integrates products up to degree 2N+1 exactly
	X, W, err := JacobiGQ(α, β, N)
	require.NoError(t, err)
	P := make([][]float64, N+1)
	for m := 0; m <= N; m++ {
		P[m] = JacobiP(X, α, β, m)
	}
	for m := 0; m <= N; m++ {
		for l := 0; l <= N; l++ {
			var s float64
			for i := range X.DataP {
				s += W.DataP[i] * P[m][i] * P[l][i]
			}
			want := 0.
			if m == l {
				want = 1.
			}
			assert.InDeltaf(t, want, s, 1e-12, "<P_%d, P_%d>", m, l)
		}
	}
}

// exactMoment computes ∫_{-1}^1 x^k (1-x)^α (1+x)^β dx via u = (1+x)/2 and a
// binomial expansion of (2u-1)^k.
func exactMoment(k int, α, β float64) (result float64) {
	for j := 0; j <= k; j++ {
		coeff := float64(choose(k, j)) * math.Pow(2, float64(j)) * math.Pow(-1, float64(k-j))
		result += coeff * betaFunc(float64(j)+β+1, α+1)
	}
	result *= math.Pow(2, α+β+1)
	return
}

func choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	res := 1
	for i := 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}
	return res
}

func betaFunc(a, b float64) float64 {
	return math.Gamma(a) * math.Gamma(b) / math.Gamma(a+b)
}
