package poly

import "gonum.org/v1/gonum/mat"

// companionMatrix builds the companion matrix of the monic form of p:
// ones on the subdiagonal and the negated monic coefficients in the last
// column. Its eigenvalues are the roots of p. The flag is false when the
// degree is below 1.
func companionMatrix[T Float](p Poly[T]) (*mat.Dense, bool) {
	deg, ok := p.Degree()
	if !ok || deg < 1 {
		return nil, false
	}
	hi := float64(p.coeffs[deg])
	m := mat.NewDense(deg, deg, nil)
	for i := 0; i < deg; i++ {
		m.Set(i, deg-1, -float64(p.coeffs[i])/hi)
		if i > 0 && i-1 != deg-1 {
			m.Set(i, i-1, 1)
		}
	}
	return m, true
}

// eigenvalues returns the eigenvalue multiset of a square matrix. The flag
// is false when the decomposition fails to converge.
func eigenvalues(m *mat.Dense) ([]complex128, bool) {
	var eig mat.Eigen
	if !eig.Factorize(m, mat.EigenNone) {
		return nil, false
	}
	return eig.Values(nil), true
}

// polishRoots refines approximate roots of p with Aberth-Ehrlich sweeps
// seeded at the given values. The companion factorization alone drifts on
// ill-conditioned high-degree polynomials; a few simultaneous sweeps
// restore the lost digits while keeping the roots distinct.
func polishRoots[T Float](p Poly[T], approx []complex128) []complex128 {
	rf := &rootsFinder[T]{
		poly:       p,
		der:        p.Derive(),
		solution:   approx,
		iterations: DefaultRootIterations,
	}
	return rf.find()
}

// realEigenRoots extracts the roots of p from the companion matrix,
// requiring every eigenvalue to be real. A failed decomposition or any
// complex eigenvalue reports absence. Real values stay exactly real
// through the polish: every term of the sweep has zero imaginary part.
func realEigenRoots[T Float](p Poly[T]) ([]T, bool) {
	m, ok := companionMatrix(p)
	if !ok {
		return nil, false
	}
	vals, ok := eigenvalues(m)
	if !ok {
		return nil, false
	}
	for _, v := range vals {
		if imag(v) != 0 {
			return nil, false
		}
	}
	vals = polishRoots(p, vals)
	roots := make([]T, len(vals))
	for i, v := range vals {
		roots[i] = T(real(v))
	}
	return roots, true
}
