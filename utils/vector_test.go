package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	{ // Storage is shared between V and DataP
		v := NewVector(3, []float64{1, 2, 3})
		v.V.SetVec(1, 5)
		assert.Equal(t, 5., v.DataP[1])
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, 5., v.AtVec(1))
	}
	{ // Chained ops change the receiver, Copy does not alias
		v := NewVector(4, []float64{1, -2, 3, -4})
		vc := v.Copy()
		v.Scale(2).Apply(func(x float64) float64 { return x + 1 }).POW(2)
		assert.Equal(t, []float64{9, 9, 49, 49}, v.DataP)
		assert.Equal(t, []float64{1, -2, 3, -4}, vc.DataP)
		assert.Equal(t, 116., v.Sum())
		assert.Equal(t, 9., v.Min())
		assert.Equal(t, 49., v.Max())
		assert.Equal(t, 9.-18.+147.-196., v.Dot(vc))
	}
	{
		v := NewVector(2, []float64{math.Pi, -math.Pi}).Apply(math.Cos)
		assert.InDeltaSlice(t, []float64{-1, -1}, v.DataP, 1e-15)
	}
	assert.Panics(t, func() { NewVector(2, []float64{1}) })
}

func TestPOW(t *testing.T) {
	for p := -10; p <= 10; p++ {
		assert.InDeltaf(t, math.Pow(1.3, float64(p)), POW(1.3, p), 1e-12, "p=%d", p)
	}
	assert.Equal(t, -2.5, AffineMap(-1, -2.5, 4.5))
	assert.Equal(t, 4.5, AffineMap(1, -2.5, 4.5))
	assert.Equal(t, 1., AffineMap(0, -2.5, 4.5))
}
