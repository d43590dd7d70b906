package tf

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/polykit/poly"
)

// Tf is a continuous-time transfer function, the ratio of a numerator and
// a denominator polynomial in s:
//
//	        b_n*s^n + ... + b_1*s + b_0
//	G(s) = -----------------------------
//	        a_m*s^m + ... + a_1*s + a_0
type Tf[T poly.Float] struct {
	num poly.Poly[T]
	den poly.Poly[T]
}

// New builds a transfer function from its numerator and denominator.
func New[T poly.Float](num, den poly.Poly[T]) Tf[T] {
	return Tf[T]{num: num, den: den}
}

// Num returns the numerator polynomial.
func (g Tf[T]) Num() poly.Poly[T] { return g.num }

// Den returns the denominator polynomial.
func (g Tf[T]) Den() poly.Poly[T] { return g.den }

// RelativeDegree is the denominator degree minus the numerator degree. A
// zero polynomial counts as lower than any defined degree.
func (g Tf[T]) RelativeDegree() int {
	d, okd := g.den.Degree()
	n, okn := g.num.Degree()
	switch {
	case okd && okn:
		return d - n
	case okd:
		return d
	case okn:
		return -n
	default:
		return 0
	}
}

// RealPoles returns the real poles, absent when any pole is complex.
func (g Tf[T]) RealPoles() ([]T, bool) {
	return poly.RealRoots(g.den)
}

// ComplexPoles returns all poles.
func (g Tf[T]) ComplexPoles() []complex128 {
	return poly.ComplexRoots(g.den)
}

// RealZeros returns the real zeros, absent when any zero is complex.
func (g Tf[T]) RealZeros() ([]T, bool) {
	return poly.RealRoots(g.num)
}

// ComplexZeros returns all zeros.
func (g Tf[T]) ComplexZeros() []complex128 {
	return poly.ComplexRoots(g.num)
}

// Eval evaluates the transfer function at the complex point s.
func (g Tf[T]) Eval(s complex128) complex128 {
	return g.num.EvalC(s) / g.den.EvalC(s)
}

// StaticGain is the gain at s = 0.
func (g Tf[T]) StaticGain() T {
	return g.num.At(0) / g.den.At(0)
}

// InitValue is the response to a step input at time zero, the limit of
// G(s) for s going to infinity: zero for a strictly proper system, the
// ratio of the leading coefficients for a biproper one, infinity
// otherwise.
func (g Tf[T]) InitValue() T {
	rd := g.RelativeDegree()
	switch {
	case rd > 0:
		return 0
	case rd == 0:
		return g.num.LeadingCoeff() / g.den.LeadingCoeff()
	default:
		return T(math.Inf(1))
	}
}

// InitValueDer is the derivative of the step response at time zero, the
// limit of s*G(s) for s going to infinity.
func (g Tf[T]) InitValueDer() T {
	rd := g.RelativeDegree() - 1
	switch {
	case rd > 0:
		return 0
	case rd == 0:
		return g.num.LeadingCoeff() / g.den.LeadingCoeff()
	default:
		return T(math.Inf(1))
	}
}

// Normalize returns the transfer function with a monic denominator, the
// numerator scaled accordingly. A zero denominator makes this a no-op
// returning the input unchanged.
func (g Tf[T]) Normalize() Tf[T] {
	if g.den.IsZero() {
		return g
	}
	den, lc := g.den.Monic()
	return Tf[T]{num: g.num.DivScalar(lc), den: den}
}

// Inv returns the reciprocal transfer function.
func (g Tf[T]) Inv() Tf[T] {
	return Tf[T]{num: g.den, den: g.num}
}

// Add returns the sum of the two transfer functions over the common
// denominator.
func (g Tf[T]) Add(h Tf[T]) Tf[T] {
	num := g.num.Mul(h.den).Add(h.num.Mul(g.den))
	return Tf[T]{num: num, den: g.den.Mul(h.den)}
}

// Mul returns the series connection of the two transfer functions.
func (g Tf[T]) Mul(h Tf[T]) Tf[T] {
	return Tf[T]{num: g.num.Mul(h.num), den: g.den.Mul(h.den)}
}

// Div returns the quotient of the two transfer functions.
func (g Tf[T]) Div(h Tf[T]) Tf[T] {
	return g.Mul(h.Inv())
}

// Feedback returns the negative unit feedback loop G/(1+G).
func (g Tf[T]) Feedback() Tf[T] {
	return Tf[T]{num: g.num, den: g.den.Add(g.num)}
}

// Delay returns the evaluator of a pure time delay e^(-tau*s).
func Delay(tau float64) func(complex128) complex128 {
	return func(s complex128) complex128 {
		return cmplx.Exp(-s * complex(tau, 0))
	}
}

func (g Tf[T]) String() string {
	return fmt.Sprintf("(%v) / (%v)", g.num, g.den)
}
