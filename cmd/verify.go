/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/notargets/gaussquad/fastgl"
	"github.com/notargets/gaussquad/quadrature"
	"github.com/notargets/gaussquad/utils"
)

const (
	symmetryTol  = 1e-12
	weightSumTol = 1e-10
	gonumTol     = 1e-13
	jacobiTol    = 1e-11
	jacobiMaxN   = 200 // Golub-Welsch is O(n^3)
)

var defaultVerifyOrders = []int{1, 2, 3, 4, 5, 10, 50, 99, 100, 101, 200, 1000, 10000}

func newVerifyCmd(cfg *Config) *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check rule properties and agreement with reference generators",
		Long: `
For each order checks node range, positive weights, ordering, symmetry, the
weight sum and range errors, then compares with gonum's Legendre rule and, for
small orders, with the Golub-Welsch eigenvalue rule. Exits non-zero on failure.

gaussquad verify --orders 5,100,101,5000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				orders, _ = cmd.Flags().GetIntSlice("orders")
				out       = cmd.OutOrStdout()
				failed    int
			)
			for _, n := range orders {
				var failures []string
				if failures, err = verifyOrder(n, cfg.ProcLimit()); err != nil {
					return
				}
				if len(failures) == 0 {
					fmt.Fprintf(out, "n = %-8d ok\n", n)
					continue
				}
				failed++
				for _, f := range failures {
					fmt.Fprintf(out, "n = %-8d FAIL %s\n", n, f)
				}
				cfg.Logger.Warn("verification failed", "n", n, "failures", len(failures))
			}
			if failed != 0 {
				return fmt.Errorf("%d of %d orders failed verification", failed, len(orders))
			}
			return
		},
	}
	verifyCmd.Flags().IntSlice("orders", defaultVerifyOrders, "rule orders to verify")
	return verifyCmd
}

// verifyOrder returns a description of every property the n point rule
// violates. err is only set when the rule cannot be built at all.
func verifyOrder(n, procLimit int) (failures []string, err error) {
	gl, err := buildRule(n, procLimit)
	if err != nil {
		return
	}
	failf := func(format string, args ...interface{}) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	if !utils.IsFinite([]utils.Vector{gl.Theta, gl.X, gl.W}) {
		failf("rule holds NaN or Inf values")
	}
	if xMin, xMax := gl.X.Min(), gl.X.Max(); xMin <= -1 || xMax >= 1 {
		failf("abscissas span [%v, %v], outside (-1, 1)", xMin, xMax)
	}
	for k := 1; k <= n; k++ {
		nw := fastgl.MustComputeNodeWeight(n, k)
		if !(nw.Theta > 0 && nw.Theta < math.Pi) {
			failf("k = %d: theta %v outside (0, pi)", k, nw.Theta)
		}
		if !(nw.Weight > 0) {
			failf("k = %d: weight %v not positive", k, nw.Weight)
		}
		if k > 1 && !(gl.Theta.AtVec(k-1) > gl.Theta.AtVec(k-2)) {
			failf("k = %d: theta not increasing", k)
		}
		mirror := fastgl.MustComputeNodeWeight(n, n+1-k)
		if math.Abs(nw.Theta+mirror.Theta-math.Pi) > symmetryTol ||
			math.Abs(nw.Weight-mirror.Weight) > symmetryTol {
			failf("k = %d: not symmetric with k = %d", k, n+1-k)
		}
	}
	if sum := gl.WeightSum(); math.Abs(sum-2) > weightSumTol {
		failf("weight sum %v differs from 2 by %.3e", sum, math.Abs(sum-2))
	}
	for _, k := range []int{0, n + 1} {
		if _, rangeErr := fastgl.ComputeNodeWeight(n, k); !errors.Is(rangeErr, fastgl.ErrInvalidRange) {
			failf("k = %d: expected an invalid range error, have %v", k, rangeErr)
		}
	}

	xRef, wRef := make([]float64, n), make([]float64, n)
	quad.Legendre{}.FixedLocations(xRef, wRef, -1, 1)
	// gonum's n = 26 table holds a zero end weight, such a reference is
	// left to the Golub-Welsch comparison
	if floats.Min(wRef) > 0 {
		if d := maxDiff(gl.X.DataP, xRef, gl.W.DataP, wRef, false); d > gonumTol {
			failf("gonum Legendre rule differs by %.3e", d)
		}
	}

	if n <= jacobiMaxN {
		X, W, jErr := quadrature.JacobiGQ(0, 0, n-1)
		if jErr != nil {
			failf("Golub-Welsch rule: %v", jErr)
		} else if d := maxDiff(gl.X.DataP, X.DataP, gl.W.DataP, W.DataP, true); d > jacobiTol {
			failf("Golub-Welsch rule differs by %.3e", d)
		}
	}
	return
}

// maxDiff is the largest node or weight difference between two rules, with
// the reference optionally in the opposite order.
func maxDiff(x, xRef, w, wRef []float64, reversed bool) (d float64) {
	n := len(x)
	for i := 0; i < n; i++ {
		j := i
		if reversed {
			j = n - 1 - i
		}
		d = math.Max(d, math.Max(math.Abs(x[i]-xRef[j]), math.Abs(w[i]-wRef[j])))
	}
	return
}
