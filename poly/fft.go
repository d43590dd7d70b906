package poly

import (
	"math"
	"math/cmplx"
)

// MulFFT returns the product p*q computed as a fast convolution of the
// coefficient vectors through a radix-2 FFT. For high degrees this beats
// the quadratic schoolbook product; the result carries floating round-off
// in place of exact coefficients.
func MulFFT[T Float](p, q Poly[T]) Poly[T] {
	if p.IsZero() || q.IsZero() {
		return Zero[T]()
	}
	outLen := len(p.coeffs) + len(q.coeffs) - 1
	n := 1
	for n < outLen {
		n <<= 1
	}
	fa := make([]complex128, n)
	fb := make([]complex128, n)
	for i, c := range p.coeffs {
		fa[i] = complex(float64(c), 0)
	}
	for i, c := range q.coeffs {
		fb[i] = complex(float64(c), 0)
	}
	fa = fft(fa)
	fb = fft(fb)
	for i := range fa {
		fa[i] *= fb[i]
	}
	prod := ifft(fa)
	out := make([]T, outLen)
	for i := range out {
		out[i] = T(real(prod[i]))
	}
	return fromOwned(out)
}

// fft computes the discrete Fourier transform of data, whose length must be
// a power of two.
func fft(data []complex128) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		copy(result, data)
		return result
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

// ifft computes the inverse transform by conjugation.
func ifft(data []complex128) []complex128 {
	n := len(data)
	conj := make([]complex128, n)
	for i, v := range data {
		conj[i] = cmplx.Conj(v)
	}
	out := fft(conj)
	scale := complex(float64(n), 0)
	for i, v := range out {
		out[i] = cmplx.Conj(v) / scale
	}
	return out
}
