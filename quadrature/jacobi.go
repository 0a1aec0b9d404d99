package quadrature

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gaussquad/fastgl"
	"github.com/notargets/gaussquad/utils"
)

// JacobiGQ computes the N+1 point Gauss-Jacobi rule for the weight
// (1-x)^alpha (1+x)^beta by Golub-Welsch: the nodes are the eigenvalues of
// the symmetric tridiagonal Jacobi matrix, the weights come from the first
// component of each eigenvector. Nodes are in increasing order. The cost is
// O(N^3), it serves as a reference for the O(1) per node fastgl rules.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector, err error) {
	if err = checkJacobi(alpha, beta, N); err != nil {
		return
	}
	var (
		ab = alpha + beta
		g0 = gamma0(alpha, beta)
	)
	if N == 0 {
		X = utils.NewVector(1, []float64{(beta - alpha) / (ab + 2.)})
		W = utils.NewVector(1, []float64{g0})
		return
	}

	JJ := jacobiMatrix(alpha, beta, N)
	JJsym := mat.NewSymDense(N+1, nil)
	JJ.DoNonZero(func(i, j int, v float64) {
		if j >= i {
			JJsym.SetSym(i, j, v)
		}
	})

	var eig mat.EigenSym
	if ok := eig.Factorize(JJsym, true); !ok {
		err = fmt.Errorf("eigenvalue decomposition failed for Jacobi matrix, N = %d", N)
		return
	}
	lambda := eig.Values(nil)
	VVr := mat.NewDense(N+1, N+1, nil)
	eig.VectorsTo(VVr)
	if r := eigenResidual(JJ, lambda, VVr); r > eigenResidualTol {
		err = fmt.Errorf("Jacobi matrix eigenpairs have residual %.3e, N = %d", r, N)
		return
	}
	X = utils.NewVector(N+1, lambda)
	w := make([]float64, N+1)
	copy(w, VVr.RawRowView(0))
	W = utils.NewVector(N+1, w).POW(2).Scale(g0)
	return
}

const eigenResidualTol = 1e-10

// jacobiMatrix assembles the symmetric tridiagonal Jacobi matrix of the
// (alpha, beta) recurrence.
func jacobiMatrix(alpha, beta float64, N int) *sparse.CSR {
	var (
		ab = alpha + beta
		JJ = sparse.NewDOK(N+1, N+1)
	)
	// Main diagonal: -(alpha^2-beta^2)/(h1*(h1+2)), h1 = 2i+alpha+beta
	// The first entry is written in its limiting form, valid for alpha+beta=0
	JJ.Set(0, 0, (beta-alpha)/(ab+2.))
	for i := 1; i < N+1; i++ {
		h1 := 2*float64(i) + ab
		JJ.Set(i, i, -(alpha*alpha-beta*beta)/(h1*(h1+2.)))
	}
	// Off diagonals
	for i := 0; i < N; i++ {
		d1 := jacobiOffDiagonal(alpha, beta, i)
		JJ.Set(i, i+1, d1)
		JJ.Set(i+1, i, d1)
	}
	return JJ.ToCSR()
}

// eigenResidual is max over columns j of |J v_j - lambda_j v_j|, using the
// sparse product so the check costs O(N^2).
func eigenResidual(JJ *sparse.CSR, lambda []float64, V *mat.Dense) (r float64) {
	var (
		n  = len(lambda)
		v  = make([]float64, n)
		Jv = make([]float64, n)
	)
	for j := 0; j < n; j++ {
		mat.Col(v, j, V)
		for i := range Jv {
			Jv[i] = 0
		}
		// MulVecTo accumulates into Jv
		JJ.MulVecTo(Jv, false, v)
		for i := range Jv {
			r = math.Max(r, math.Abs(Jv[i]-lambda[j]*v[i]))
		}
	}
	return
}

// JacobiGL computes the N+1 Gauss-Lobatto points, the zeros of
// (1-x^2) P'_N^{alpha,beta}(x), in increasing order.
func JacobiGL(alpha, beta float64, N int) (X utils.Vector, err error) {
	if err = checkJacobi(alpha, beta, N); err != nil {
		return
	}
	switch N {
	case 0:
		return utils.NewVector(1, []float64{0}), nil
	case 1:
		return utils.NewVector(2, []float64{-1, 1}), nil
	}
	var xint utils.Vector
	if xint, _, err = JacobiGQ(alpha+1, beta+1, N-2); err != nil {
		return
	}
	x := make([]float64, N+1)
	x[0], x[N] = -1, 1
	copy(x[1:N], xint.DataP)
	X = utils.NewVector(N+1, x)
	return
}

// JacobiP evaluates the orthonormal Jacobi polynomial of order N at r.
func JacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	var (
		Nc  = r.Len()
		ab  = alpha + beta
		rg  = 1. / math.Sqrt(gamma0(alpha, beta))
		rg1 = 1. / math.Sqrt(gamma1(alpha, beta))
	)
	p = make([]float64, Nc)
	for i, x := range r.DataP {
		pOld, pCur := rg, rg1*((ab+2.0)*x/2.0+(alpha-beta)/2.0)
		if N == 0 {
			p[i] = pOld
			continue
		}
		aold := 2.0 * math.Sqrt((alpha+1.)*(beta+1.)/(ab+3.0)) / (ab + 2.0)
		for j := 1; j < N; j++ {
			h1 := 2.*float64(j) + ab
			anew := jacobiOffDiagonal(alpha, beta, j)
			bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
			pOld, pCur = pCur, (-aold*pOld+(x-bnew)*pCur)/anew
			aold = anew
		}
		p[i] = pCur
	}
	return
}

// GradJacobiP evaluates the derivative of the orthonormal Jacobi polynomial.
func GradJacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	if N == 0 {
		p = make([]float64, r.Len())
		return
	}
	p = JacobiP(r, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i, val := range p {
		p[i] = val * fac
	}
	return
}

// jacobiOffDiagonal is the i-th super diagonal of the Jacobi matrix, which is
// also the orthonormal recurrence coefficient a_{i+1}.
func jacobiOffDiagonal(alpha, beta float64, i int) float64 {
	var (
		ab    = alpha + beta
		ip1   = float64(i + 1)
		h1    = 2*float64(i) + ab
		ratio = 1.
	)
	// (i+1+ab)/(h1+1) is 0/0 at i=0 for ab=-1, where its limit is 1
	if h1+1. != 0 {
		ratio = (ip1 + ab) / (h1 + 1.)
	}
	return 2. / (h1 + 2.) * math.Sqrt(ip1*ratio*(ip1+alpha)*(ip1+beta)/(h1+3.))
}

// gamma0 is the total weight, the integral of (1-x)^alpha (1+x)^beta on [-1, 1]
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	return math.Pow(2, ab1) * math.Gamma(alpha+1.) * math.Gamma(beta+1.) / math.Gamma(ab1+1.)
}

func gamma1(alpha, beta float64) float64 {
	ab := alpha + beta
	return (alpha + 1.) * (beta + 1.) * gamma0(alpha, beta) / (ab + 3.0)
}

func checkJacobi(alpha, beta float64, N int) error {
	if N < 0 {
		return fmt.Errorf("%w: Jacobi order N = %d is negative", fastgl.ErrInvalidRange, N)
	}
	if alpha <= -1 || beta <= -1 {
		return fmt.Errorf("%w: Jacobi parameters alpha = %v, beta = %v must exceed -1",
			fastgl.ErrInvalidRange, alpha, beta)
	}
	return nil
}
