package fastgl

import "math"

// doubleDouble is an unevaluated sum hi + lo with |lo| <= ulp(hi)/2, giving
// roughly 106 bits of significand.
type doubleDouble struct {
	hi, lo float64
}

func newDoubleDouble(a float64) doubleDouble { return doubleDouble{a, 0} }

func (a doubleDouble) float() float64 { return a.hi + a.lo }

func (a doubleDouble) neg() doubleDouble { return doubleDouble{-a.hi, -a.lo} }

func (a doubleDouble) add(b doubleDouble) doubleDouble {
	s, e := twoSum(a.hi, b.hi)
	e += a.lo + b.lo
	return quickTwoSum(s, e)
}

func (a doubleDouble) mul(b doubleDouble) doubleDouble {
	p := a.hi * b.hi
	e := math.FMA(a.hi, b.hi, -p)
	e += a.hi*b.lo + a.lo*b.hi
	return quickTwoSum(p, e)
}

func (a doubleDouble) scale(c float64) doubleDouble {
	p := a.hi * c
	e := math.FMA(a.hi, c, -p) + a.lo*c
	return quickTwoSum(p, e)
}

func (a doubleDouble) div(c float64) doubleDouble {
	q := a.hi / c
	p := q * c
	e := math.FMA(q, c, -p)
	r := ((a.hi - p) - e + a.lo) / c
	return quickTwoSum(q, r)
}

// twoSum returns s = fl(a+b) and the exact rounding error e = a + b - s.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return
}

// quickTwoSum is twoSum for |a| >= |b|.
func quickTwoSum(a, b float64) doubleDouble {
	s := a + b
	return doubleDouble{s, b - (s - a)}
}
