package fastgl

import "math"

const (
	// MaxRecurrenceOrder is the largest order refined with the Legendre
	// recurrence. Higher orders use the asymptotic expansion.
	MaxRecurrenceOrder = 100
	// BesselBootstrapFraction selects the bootstrap branch: node indices
	// k <= ceil(BesselBootstrapFraction*n) start from the Bessel zero form,
	// the rest from the trigonometric form.
	BesselBootstrapFraction = 1. / 3.
	// NewtonSteps is the fixed number of corrections applied to the
	// bootstrap angle. Both bootstrap forms are accurate to better than 2e-3
	// for every n, so four quadratic steps reach full precision.
	NewtonSteps = 4
)

// recurrencePair returns the node and weight for 2 <= n <= MaxRecurrenceOrder
// and k <= (n+1)/2. The cost is bounded by NewtonSteps+1 recurrences of
// length n.
//
// The recurrence runs in the versine y = 1 - cos(theta) = 2 sin^2(theta/2)
// rather than in x, so nodes close to x = 1 keep their relative accuracy.
// Rounding x = cos(theta) there costs about 1e-16/theta^2 relative in the
// weight, which is 1e-13 at n = 100.
func recurrencePair(n, k int) (nw NodeWeight) {
	var (
		theta float64
		y     float64
		fn    = float64(n)
	)
	if n%2 == 1 && k == (n+1)/2 {
		theta, y = math.Pi/2, 1
	} else {
		theta = bootstrapTheta(n, k)
		for step := 0; step < NewtonSteps; step++ {
			y = versine(theta)
			pn, dn := legendreVersine(n, y)
			// dP_n/dθ = n (D_n - y P_n) / sin θ
			theta += pn * math.Sin(theta) / (fn * (y*pn - dn))
		}
		y = versine(theta)
	}
	// w = 2 / (dP_n/dθ)^2
	s := math.Sin(theta) / (fn * legendreSlope(n, y))
	nw.Theta = theta
	nw.Weight = 2. * s * s
	return
}

// versine returns 1 - cos(theta) without cancellation for small theta.
func versine(theta float64) float64 {
	s := math.Sin(0.5 * theta)
	return 2. * s * s
}

// bootstrapTheta is the initial estimate of the k-th root angle.
func bootstrapTheta(n, k int) float64 {
	if k <= besselSplit(n) {
		return olverTheta(n, k)
	}
	return tricomiTheta(n, k)
}

func besselSplit(n int) int {
	return int(math.Ceil(BesselBootstrapFraction * float64(n)))
}

// olverTheta is Olver's Bessel zero based estimate, accurate near θ = 0:
//
//	θ ≈ ψ + (ψ cot ψ - 1) / (8 ψ ν²),  ψ = j_{0,k}/ν,  ν = n + 1/2
func olverTheta(n, k int) float64 {
	var (
		nu  = float64(n) + 0.5
		psi = BesselJ0Zero(k) / nu
	)
	return psi + (psi/math.Tan(psi)-1.)/(8.*psi*nu*nu)
}

// tricomiTheta is Tricomi's interior estimate:
//
//	x ≈ (1 - 1/(8n²) + 1/(8n³)) cos((4k-1)π/(4n+2))
func tricomiTheta(n, k int) float64 {
	var (
		fn  = float64(n)
		phi = float64(4*k-1) * math.Pi / float64(4*n+2)
	)
	return math.Acos((1. - 1./(8.*fn*fn) + 1./(8.*fn*fn*fn)) * math.Cos(phi))
}

// legendreVersine returns P_n and D_n = P_n - P_{n-1} at x = 1 - y, using the
// difference form of the three-term recurrence
//
//	j D_j = (j-1) D_{j-1} - (2j-1) y P_{j-1},  P_j = P_{j-1} + D_j
//
// starting from P_0 = 1, D_0 = 0. Valid for 0 <= y <= 1.
func legendreVersine(n int, y float64) (pn, dn float64) {
	pn = 1.
	for j := 1; j <= n; j++ {
		fj := float64(j)
		dn = ((fj-1.)*dn - (2.*fj-1.)*y*pn) / fj
		pn += dn
	}
	return
}

// legendreSlope returns D_n - y P_n = sin(θ) (dP_n/dθ) / n with the
// recurrence carried in double-double arithmetic, so the weight is limited
// by the accuracy of theta alone.
func legendreSlope(n int, y float64) float64 {
	var (
		p  = doubleDouble{1, 0}
		d  doubleDouble
		yy = newDoubleDouble(y)
	)
	for j := 1; j <= n; j++ {
		fj := float64(j)
		d = d.scale(fj - 1.).add(yy.mul(p).scale(-(2.*fj - 1.))).div(fj)
		p = p.add(d)
	}
	return d.add(yy.mul(p).neg()).float()
}
