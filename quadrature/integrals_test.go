package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue(t *testing.T) {
	tests := []struct {
		name  string
		a, b  float64
		value float64
	}{
		{"sin", -2.5, 4.5, math.Cos(-2.5) - math.Cos(4.5)},
		{" Exp ", 0, 1, math.E - 1},
		{"runge", -1, 1, 2 * math.Atan(5) / 5},
		{"sqrt", 0, 4, 16. / 3.},
		{"poly0", -1, 1, 2},
		{"poly3", 0, 2, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			I, err := Catalogue(tc.name, tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.value, I.Value, 1e-15)
			assert.Equal(t, tc.a, I.A)
			assert.Equal(t, tc.b, I.B)
		})
	}
}

func TestCatalogue_Errors(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b float64
	}{
		{"sin", 1, 1},
		{"sin", 2, 1},
		{"sqrt", -1, 1},
		{"poly", 0, 1},
		{"poly-2", 0, 1},
		{"polyx", 0, 1},
		{"cosh", 0, 1},
	} {
		_, err := Catalogue(tc.name, tc.a, tc.b)
		assert.Errorf(t, err, "integrand %q on [%v, %v]", tc.name, tc.a, tc.b)
	}
}

func TestCatalogue_Convergence(t *testing.T) {
	// Analytic integrands converge geometrically, sqrt only algebraically
	runge := Runge(-1, 1)
	var prevErr = math.Inf(1)
	for _, n := range []int{10, 20, 40, 80} {
		gl, err := NewGaussLegendre(n)
		require.NoError(t, err)
		e := math.Abs(gl.Integrate(runge.F, runge.A, runge.B) - runge.Value)
		assert.Truef(t, e < prevErr || e < 1e-14, "n=%d: error %g did not decrease from %g", n, e, prevErr)
		prevErr = e
	}
	assert.Less(t, prevErr, 1e-10)

	sq := Sqrt(0, 1)
	gl, err := NewGaussLegendre(100)
	require.NoError(t, err)
	assert.InDelta(t, sq.Value, gl.Integrate(sq.F, sq.A, sq.B), 1e-5)
}
