package quadrature

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvergenceStudy_Rates(t *testing.T) {
	cs := NewConvergenceStudy("geometric", "runge")
	cs.Add(10, 0, 1e-2)
	cs.Add(20, 0, 1e-4)
	cs.Add(30, 0, 0)
	rates := cs.Rates()
	require.Len(t, rates, 3)
	assert.True(t, math.IsNaN(rates[0]))
	assert.InDelta(t, math.Log(100)/10, rates[1], 1e-15)
	assert.True(t, math.IsNaN(rates[2]))
}

func TestConvergenceCSV(t *testing.T) {
	runge := Runge(-1, 1)
	study := NewConvergenceStudy("runge study", "runge")
	for _, n := range []int{8, 16, 32} {
		gl, err := NewGaussLegendre(n)
		require.NoError(t, err)
		est := gl.Integrate(runge.F, runge.A, runge.B)
		study.Add(n, est, math.Abs(est-runge.Value))
	}
	other := NewConvergenceStudy("another, with a comma", "sin")
	other.Add(4, 1.5, 2e-3)

	var buf bytes.Buffer
	require.NoError(t, WriteConvergenceCSV(&buf, study, other))
	assert.Equal(t, 5, strings.Count(buf.String(), "\n"))

	studies, err := ReadConvergenceCSV(&buf)
	require.NoError(t, err)
	require.Len(t, studies, 2)
	// Sorted by title
	assert.Equal(t, "another, with a comma", studies[0].Title)
	assert.Equal(t, study.Orders, studies[1].Orders)
	assert.Equal(t, study.Estimates, studies[1].Estimates)
	assert.Equal(t, study.Errors, studies[1].Errors)
	// Errors shrink, so every observed rate is positive
	for _, r := range studies[1].Rates()[1:] {
		assert.Greater(t, r, 0.)
	}

	_, err = ReadConvergenceCSV(strings.NewReader("Title,Integrand,N,Estimate,Error,Rate\na,b,x,1,1,1\n"))
	assert.Error(t, err)
}
