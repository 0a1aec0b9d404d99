// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.gonum file.

package quadrature

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/gaussquad/fastgl"
	"github.com/notargets/gaussquad/utils"
)

// Legendre is a gonum quad rule backed by fastgl, usable with quad.Fixed:
//
//	quad.Fixed(f, a, b, n, quadrature.Legendre{}, concurrent)
//
// Its preconditions and panics follow gonum's quad.Legendre.
type Legendre struct{}

var (
	_ quad.FixedLocationer      = Legendre{}
	_ quad.FixedLocationSingler = Legendre{}
)

func (l Legendre) FixedLocations(x, weight []float64, min, max float64) {
	if len(x) != len(weight) {
		panic("legendre: slice length mismatch")
	}
	checkBounds(min, max)
	n := len(x)
	for k := 0; k < n; k++ {
		x[k], weight[k] = l.boundedLocation(n, k, min, max)
	}
}

// FixedLocationSingle returns node k, 0-based as gonum indexes it.
func (l Legendre) FixedLocationSingle(n, k int, min, max float64) (x, weight float64) {
	checkBounds(min, max)
	return l.boundedLocation(n, k, min, max)
}

func (l Legendre) boundedLocation(n, k int, min, max float64) (x, weight float64) {
	nw := fastgl.MustComputeNodeWeight(n, k+1)
	return utils.AffineMap(nw.X(), min, max), 0.5 * (max - min) * nw.Weight
}

func checkBounds(min, max float64) {
	if min >= max {
		panic("legendre: min >= max")
	}
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		panic("legendre: infinite bound")
	}
}
