package quadrature

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Integral is a definite integral
//
//	∫_a^b f(x)dx
//
// with a known value.
type Integral struct {
	Name  string
	A, B  float64               // Integration limits
	F     func(float64) float64 // Integrand
	Value float64
}

// Sin returns ∫_a^b sin(x)dx = cos(a) - cos(b)
func Sin(a, b float64) Integral {
	return Integral{
		Name:  fmt.Sprintf("∫_{%v}^{%v} sin(x)dx", a, b),
		A:     a,
		B:     b,
		F:     math.Sin,
		Value: math.Cos(a) - math.Cos(b),
	}
}

// Exp returns ∫_a^b exp(x)dx
func Exp(a, b float64) Integral {
	return Integral{
		Name:  fmt.Sprintf("∫_{%v}^{%v} exp(x)dx", a, b),
		A:     a,
		B:     b,
		F:     math.Exp,
		Value: math.Exp(b) - math.Exp(a),
	}
}

// Poly returns ∫_a^b x^degree dx
func Poly(degree int, a, b float64) Integral {
	d := float64(degree)
	return Integral{
		Name: fmt.Sprintf("∫_{%v}^{%v} x^%d dx", a, b, degree),
		A:    a,
		B:    b,
		F: func(x float64) float64 {
			return math.Pow(x, d)
		},
		Value: (math.Pow(b, d+1) - math.Pow(a, d+1)) / (d + 1),
	}
}

// Runge returns ∫_a^b 1/(1+25x^2)dx, analytic on the interval but with poles
// close to it, so convergence is geometric but slow.
func Runge(a, b float64) Integral {
	return Integral{
		Name: fmt.Sprintf("∫_{%v}^{%v} 1/(1+25x^2)dx", a, b),
		A:    a,
		B:    b,
		F: func(x float64) float64 {
			return 1. / (1. + 25.*x*x)
		},
		Value: (math.Atan(5*b) - math.Atan(5*a)) / 5.,
	}
}

// Sqrt returns ∫_a^b sqrt(x)dx for 0 <= a < b. The endpoint singularity in the
// derivative limits convergence to algebraic.
func Sqrt(a, b float64) Integral {
	return Integral{
		Name:  fmt.Sprintf("∫_{%v}^{%v} sqrt(x)dx", a, b),
		A:     a,
		B:     b,
		F:     math.Sqrt,
		Value: 2. / 3. * (math.Pow(b, 1.5) - math.Pow(a, 1.5)),
	}
}

// Catalogue looks an integrand up by name: sin, exp, runge, sqrt or poly<d>
// (e.g. poly7).
func Catalogue(name string, a, b float64) (I Integral, err error) {
	if a >= b {
		err = fmt.Errorf("integration limits must satisfy a < b, have a = %v, b = %v", a, b)
		return
	}
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "sin":
		I = Sin(a, b)
	case name == "exp":
		I = Exp(a, b)
	case name == "runge":
		I = Runge(a, b)
	case name == "sqrt":
		if a < 0 {
			err = fmt.Errorf("sqrt integrand requires a >= 0, have a = %v", a)
			return
		}
		I = Sqrt(a, b)
	case strings.HasPrefix(name, "poly"):
		var d int
		if d, err = strconv.Atoi(strings.TrimPrefix(name, "poly")); err != nil || d < 0 {
			err = fmt.Errorf("unable to parse polynomial degree from integrand %q", name)
			return
		}
		I = Poly(d, a, b)
	default:
		err = fmt.Errorf("unknown integrand %q, known: sin, exp, runge, sqrt, poly<degree>", name)
	}
	return
}
