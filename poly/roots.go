package poly

import "math"

// DefaultRootIterations is the iteration budget of the Aberth-Ehrlich
// solver when no explicit limit is given.
const DefaultRootIterations = 30

// strategy selects the root extraction algorithm for a zero-stripped
// polynomial. It is chosen once from the degree, so each branch can be
// tested in isolation.
type strategy int

const (
	strategyNone strategy = iota
	strategyClosedForm
	strategyEigen
	strategyIterative
)

func selectStrategy[T Real](p Poly[T], iterative bool) strategy {
	deg, ok := p.Degree()
	switch {
	case !ok || deg == 0:
		return strategyNone
	case deg <= 2:
		return strategyClosedForm
	case iterative:
		return strategyIterative
	default:
		return strategyEigen
	}
}

// FindZeroRoots counts the roots at the origin, one per leading zero
// coefficient, and returns the multiplicity together with the polynomial
// with those coefficients removed. The zero polynomial yields (0, zero).
func FindZeroRoots[T Real](p Poly[T]) (int, Poly[T]) {
	if p.IsZero() {
		return 0, Zero[T]()
	}
	zeros := 0
	for zeros < len(p.coeffs) && p.coeffs[zeros] == 0 {
		zeros++
	}
	cropped := make([]T, len(p.coeffs)-zeros)
	copy(cropped, p.coeffs[zeros:])
	return zeros, fromOwned(cropped)
}

// RealRoots computes the real roots of the polynomial, using the companion
// matrix eigenvalues for degree 3 and above. The second return value is
// false when no real roots exist or the eigenvalue decomposition fails to
// converge; neither is an error.
func RealRoots[T Float](p Poly[T]) ([]T, bool) {
	zeros, cropped := FindZeroRoots(p)
	var roots []T
	switch selectStrategy(cropped, false) {
	case strategyNone:
		return nil, false
	case strategyClosedForm:
		var ok bool
		roots, ok = realClosedForm(cropped)
		if !ok {
			return nil, false
		}
	default:
		var ok bool
		roots, ok = realEigenRoots(cropped)
		if !ok {
			return nil, false
		}
	}
	for i := 0; i < zeros; i++ {
		roots = append(roots, 0)
	}
	return roots, true
}

// ComplexRoots computes all complex roots of the polynomial, using the
// companion matrix eigenvalues, refined by Aberth-Ehrlich sweeps, for
// degree 3 and above. It never fails: the
// result is empty for the zero polynomial, for nonzero constants, and when
// the decomposition does not converge.
func ComplexRoots[T Float](p Poly[T]) []complex128 {
	zeros, cropped := FindZeroRoots(p)
	var roots []complex128
	switch selectStrategy(cropped, false) {
	case strategyNone:
	case strategyClosedForm:
		roots = complexClosedForm(cropped)
	default:
		m, ok := companionMatrix(cropped)
		if !ok {
			break
		}
		vals, ok := eigenvalues(m)
		if !ok {
			break
		}
		roots = polishRoots(cropped, vals)
	}
	return appendComplexZeros(roots, zeros)
}

// IterativeRoots computes all complex roots with the Aberth-Ehrlich
// simultaneous iteration under the default iteration budget. Degrees 1 and
// 2 bypass the iteration and use the closed form.
func IterativeRoots[T Float](p Poly[T]) []complex128 {
	return IterativeRootsWithMax(p, DefaultRootIterations)
}

// IterativeRootsWithMax is IterativeRoots with an explicit iteration
// budget.
func IterativeRootsWithMax[T Float](p Poly[T], maxIter int) []complex128 {
	zeros, cropped := FindZeroRoots(p)
	var roots []complex128
	switch selectStrategy(cropped, true) {
	case strategyNone:
	case strategyClosedForm:
		roots = complexClosedForm(cropped)
	default:
		rf := newRootsFinder(cropped)
		rf.iterations = maxIter
		roots = rf.find()
	}
	return appendComplexZeros(roots, zeros)
}

// appendComplexZeros places the stripped roots at the origin after the
// computed roots.
func appendComplexZeros(roots []complex128, zeros int) []complex128 {
	for i := 0; i < zeros; i++ {
		roots = append(roots, 0)
	}
	return roots
}

// realClosedForm solves a zero-stripped polynomial of degree 1 or 2.
func realClosedForm[T Float](p Poly[T]) ([]T, bool) {
	if len(p.coeffs) == 2 {
		return []T{-p.coeffs[0] / p.coeffs[1]}, true
	}
	b := p.coeffs[1] / p.coeffs[2]
	c := p.coeffs[0] / p.coeffs[2]
	r1, r2, ok := RealQuadraticRoots(b, c)
	if !ok {
		return nil, false
	}
	return []T{r1, r2}, true
}

// complexClosedForm solves a zero-stripped polynomial of degree 1 or 2.
func complexClosedForm[T Float](p Poly[T]) []complex128 {
	if len(p.coeffs) == 2 {
		return []complex128{complex(float64(-p.coeffs[0]/p.coeffs[1]), 0)}
	}
	b := p.coeffs[1] / p.coeffs[2]
	c := p.coeffs[0] / p.coeffs[2]
	r1, r2 := ComplexQuadraticRoots(b, c)
	return []complex128{r1, r2}
}

// RealQuadraticRoots solves x^2 + b*x + c = 0 over the reals. The returned
// flag is false for a negative discriminant. A positive discriminant uses
// the cancellation-safe form h = -(b/2 + sign(b)*sqrt(d)) with the second
// root recovered as c/h.
func RealQuadraticRoots[T Float](b, c T) (T, T, bool) {
	half := b / 2
	d := half*half - c
	switch {
	case d == 0:
		return -half, -half, true
	case d < 0:
		return 0, 0, false
	default:
		s := T(math.Sqrt(float64(d)))
		g := T(1)
		if b < 0 {
			g = -1
		}
		h := -(half + g*s)
		return c / h, h, true
	}
}

// ComplexQuadraticRoots solves x^2 + b*x + c = 0 over the complex numbers.
// A negative discriminant yields a conjugate pair; otherwise the branching
// matches RealQuadraticRoots.
func ComplexQuadraticRoots[T Float](b, c T) (complex128, complex128) {
	bf := float64(b)
	cf := float64(c)
	half := bf / 2
	d := half*half - cf
	switch {
	case d == 0:
		return complex(-half, 0), complex(-half, 0)
	case d < 0:
		s := math.Sqrt(-d)
		return complex(-half, -s), complex(-half, s)
	default:
		s := math.Sqrt(d)
		g := 1.0
		if bf < 0 {
			g = -1
		}
		h := -(half + g*s)
		return complex(cf/h, 0), complex(h, 0)
	}
}
