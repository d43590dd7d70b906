package poly

// Add returns p + q as a new trimmed polynomial.
func (p Poly[T]) Add(q Poly[T]) Poly[T] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]T, n)
	for i := range out {
		if i < len(p.coeffs) {
			out[i] += p.coeffs[i]
		}
		if i < len(q.coeffs) {
			out[i] += q.coeffs[i]
		}
	}
	return fromOwned(out)
}

// Sub returns p - q as a new trimmed polynomial.
func (p Poly[T]) Sub(q Poly[T]) Poly[T] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]T, n)
	for i := range out {
		if i < len(p.coeffs) {
			out[i] += p.coeffs[i]
		}
		if i < len(q.coeffs) {
			out[i] -= q.coeffs[i]
		}
	}
	return fromOwned(out)
}

// Neg returns -p.
func (p Poly[T]) Neg() Poly[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = -c
	}
	return Poly[T]{coeffs: out}
}

// Mul returns the product p*q by direct convolution of the coefficients.
func (p Poly[T]) Mul(q Poly[T]) Poly[T] {
	if p.IsZero() || q.IsZero() {
		return Zero[T]()
	}
	out := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}
	return fromOwned(out)
}

// DivRem returns the quotient and remainder of the polynomial long division
// p / q. Division by the zero polynomial is a no-op: the dividend is
// returned unchanged with a zero remainder. Coefficient division follows
// the semantics of T.
func (p Poly[T]) DivRem(q Poly[T]) (Poly[T], Poly[T]) {
	if q.IsZero() {
		return p, Zero[T]()
	}
	dp, ok := p.Degree()
	dq, _ := q.Degree()
	if !ok || dp < dq {
		return Zero[T](), p
	}
	rem := make([]T, len(p.coeffs))
	copy(rem, p.coeffs)
	quot := make([]T, dp-dq+1)
	lead := q.coeffs[dq]
	for i := dp - dq; i >= 0; i-- {
		c := rem[i+dq] / lead
		quot[i] = c
		for j := 0; j <= dq; j++ {
			rem[i+j] -= c * q.coeffs[j]
		}
	}
	return fromOwned(quot), fromOwned(rem[:dq])
}

// AddScalar returns p with s added to the constant term.
func (p Poly[T]) AddScalar(s T) Poly[T] {
	out := make([]T, len(p.coeffs))
	copy(out, p.coeffs)
	out[0] += s
	return fromOwned(out)
}

// SubScalar returns p with s subtracted from the constant term.
func (p Poly[T]) SubScalar(s T) Poly[T] {
	return p.AddScalar(-s)
}

// MulScalar returns p with every coefficient multiplied by s.
func (p Poly[T]) MulScalar(s T) Poly[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c * s
	}
	return fromOwned(out)
}

// DivScalar returns p with every coefficient divided by s, following the
// division semantics of T.
func (p Poly[T]) DivScalar(s T) Poly[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c / s
	}
	return fromOwned(out)
}
