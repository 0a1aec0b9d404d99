package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum VecDense. DataP aliases the backing storage so tight
// loops can index it directly.
type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

// NewVector allocates a vector of length N, optionally initialized from data.
func NewVector(N int, dataO ...[]float64) Vector {
	var (
		dataV []float64
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			panic(fmt.Errorf("mismatched dimensions: N = %d, len(data) = %d", N, len(dataO[0])))
		}
		dataV = dataO[0]
	} else {
		dataV = make([]float64, N)
	}
	return Vector{
		V:     mat.NewVecDense(N, dataV),
		DataP: dataV,
	}
}

func (v Vector) AtVec(i int) float64 { return v.DataP[i] }
func (v Vector) Len() int            { return len(v.DataP) }

func (v Vector) Copy() Vector {
	data := make([]float64, v.Len())
	copy(data, v.DataP)
	return NewVector(len(data), data)
}

// Chainable methods, all of which change the receiver
func (v Vector) Scale(a float64) Vector {
	floats.Scale(a, v.DataP)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = POW(val, p)
	}
	return v
}

// Reductions
func (v Vector) Sum() float64 { return floats.Sum(v.DataP) }

func (v Vector) Dot(a Vector) float64 { return floats.Dot(v.DataP, a.DataP) }

func (v Vector) Min() float64 { return floats.Min(v.DataP) }

func (v Vector) Max() float64 { return floats.Max(v.DataP) }
