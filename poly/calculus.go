package poly

// Eval evaluates the polynomial at x using Horner's method, processing the
// coefficients from the highest degree down.
func (p Poly[T]) Eval(x T) T {
	var acc T
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}
	return acc
}

// EvalC evaluates the polynomial at the complex value x using Horner's
// method.
func (p Poly[T]) EvalC(x complex128) complex128 {
	var acc complex128
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + complex(float64(p.coeffs[i]), 0)
	}
	return acc
}

// Derive returns the derivative of the polynomial. The derivative of a
// constant polynomial is the zero polynomial.
func (p Poly[T]) Derive() Poly[T] {
	if len(p.coeffs) == 1 {
		return Zero[T]()
	}
	out := make([]T, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = p.coeffs[i] * T(i)
	}
	return fromOwned(out)
}

// Integrate returns the antiderivative of the polynomial with the given
// integration constant prepended. Integer coefficient types divide as
// integers; there is no promotion to floating point.
func (p Poly[T]) Integrate(constant T) Poly[T] {
	if p.IsZero() {
		return Poly[T]{coeffs: []T{constant}}
	}
	out := make([]T, len(p.coeffs)+1)
	out[0] = constant
	for i, c := range p.coeffs {
		out[i+1] = c / T(i+1)
	}
	return fromOwned(out)
}
