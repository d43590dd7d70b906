// Package poly implements dense univariate polynomials and root extraction
// for control-systems analysis.
//
// A [Poly] stores its coefficients from the lowest to the highest degree:
//
//	p(x) = c0 + c1*x + c2*x^2 + ...
//
// The package provides:
//
//   - construction from coefficients or from roots
//   - arithmetic (addition, subtraction, multiplication, division with
//     remainder, negation, scalar operations) and an FFT convolution product
//   - Horner evaluation with real or complex arguments
//   - differentiation and integration
//   - monic normalization and coefficient round-off
//   - root finding: closed form up to degree 2, companion-matrix
//     eigenvalues, and the iterative Aberth-Ehrlich method
//
// Coefficient types are generic over [Real]; root extraction requires
// [Float]. Integer coefficient arithmetic truncates on division, including
// in [Poly.Integrate].
//
// All values are immutable under arithmetic: operations return new trimmed
// polynomials. Methods with the InPlace suffix mutate the receiver and
// re-establish the trim invariant before returning. Nothing in this package
// shares state between calls, so independent polynomials may be processed
// concurrently without locking.
package poly
