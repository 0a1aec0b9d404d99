package quadrature

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/notargets/gaussquad/fastgl"
	"github.com/notargets/gaussquad/utils"
)

// GaussLegendre is an assembled n-point Gauss-Legendre rule on [-1, 1],
// ordered by increasing Theta (decreasing X).
type GaussLegendre struct {
	N        int
	Theta, X utils.Vector
	W        utils.Vector
}

func newGaussLegendre(n int) *GaussLegendre {
	return &GaussLegendre{
		N:     n,
		Theta: utils.NewVector(n),
		X:     utils.NewVector(n),
		W:     utils.NewVector(n),
	}
}

// NewGaussLegendre computes the first half of the nodes and mirrors the rest.
func NewGaussLegendre(n int) (gl *GaussLegendre, err error) {
	if err = fastgl.CheckRange(n, 1); err != nil {
		return
	}
	gl = newGaussLegendre(n)
	if err = gl.fill(1, halfRange(n)+1); err != nil {
		return nil, err
	}
	return
}

// NewGaussLegendreParallel splits the half range of node indices across
// workers. procLimit == 0 uses every CPU. The result is identical to
// NewGaussLegendre.
func NewGaussLegendreParallel(n, procLimit int) (gl *GaussLegendre, err error) {
	if err = fastgl.CheckRange(n, 1); err != nil {
		return
	}
	var (
		half = halfRange(n)
		NP   = utils.ParallelDegree(procLimit, half)
		pm   = utils.NewPartitionMap(NP, half)
		eg   errgroup.Group
	)
	gl = newGaussLegendre(n)
	for np := 0; np < NP; np++ {
		kMin, kMax := pm.GetBucketRange(np)
		// Partition indices are 0-based, node indices 1-based
		eg.Go(func() error {
			return gl.fill(kMin+1, kMax+1)
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	return
}

func halfRange(n int) int { return (n + 1) / 2 }

// fill computes nodes k in [kBeg, kEnd) and their mirrors n+1-k. Each call
// writes a disjoint set of indices.
func (gl *GaussLegendre) fill(kBeg, kEnd int) (err error) {
	var (
		n  = gl.N
		nw fastgl.NodeWeight
	)
	for k := kBeg; k < kEnd; k++ {
		if nw, err = fastgl.ComputeNodeWeight(n, k); err != nil {
			return
		}
		i, im := k-1, n-k
		gl.Theta.DataP[i], gl.X.DataP[i], gl.W.DataP[i] = nw.Theta, nw.X(), nw.Weight
		if im != i {
			gl.Theta.DataP[im] = math.Pi - nw.Theta
			gl.X.DataP[im] = -gl.X.DataP[i]
			gl.W.DataP[im] = nw.Weight
		}
	}
	return
}

// Rescale maps the rule onto [a, b]: x' = (b-a)/2 x + (a+b)/2, w' = (b-a)/2 w
func (gl *GaussLegendre) Rescale(a, b float64) (x, w utils.Vector) {
	x = gl.X.Copy().Apply(func(r float64) float64 { return utils.AffineMap(r, a, b) })
	w = gl.W.Copy().Scale(0.5 * (b - a))
	return
}

// Integrate approximates the integral of f over [a, b].
func (gl *GaussLegendre) Integrate(f func(float64) float64, a, b float64) float64 {
	x, w := gl.Rescale(a, b)
	return w.Dot(x.Apply(f))
}

// WeightSum is 2 up to rounding for any valid rule.
func (gl *GaussLegendre) WeightSum() float64 { return gl.W.Sum() }
