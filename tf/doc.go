// Package tf implements continuous-time transfer functions as a ratio of
// two polynomials in the Laplace variable s. Poles and zeros come from the
// root extraction in package poly; Bode data points are produced for
// frequency response inspection.
package tf
