package linsys

import "fmt"

// FromTransferFunction builds the controllable canonical realization of a
// strictly proper single-input single-output transfer function. Coefficients
// run from low to high degree; the denominator is normalized to monic form.
func FromTransferFunction(num, den []float64) (*Ss, error) {
	den = cropZeros(den)
	num = cropZeros(num)
	n := len(den) - 1
	if n < 1 {
		return nil, fmt.Errorf("%w: denominator degree must be at least 1", ErrDimension)
	}
	if len(num) > n {
		return nil, fmt.Errorf("%w: transfer function must be strictly proper", ErrDimension)
	}

	lead := den[n]
	a := make([]float64, n*n)
	for i := 0; i < n-1; i++ {
		a[i*n+i+1] = 1
	}
	for j := 0; j < n; j++ {
		a[(n-1)*n+j] = -den[j] / lead
	}

	b := make([]float64, n)
	b[n-1] = 1

	c := make([]float64, n)
	for i, v := range num {
		c[i] = v / lead
	}

	d := []float64{0}
	return New(n, 1, 1, a, b, c, d)
}

// cropZeros drops high-degree zero coefficients.
func cropZeros(coeffs []float64) []float64 {
	end := len(coeffs)
	for end > 0 && coeffs[end-1] == 0 {
		end--
	}
	return coeffs[:end]
}
