package poly

import (
	"fmt"
	"strings"
)

// Real is the coefficient constraint for polynomial arithmetic.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float is the coefficient constraint for root finding and FFT products.
type Float interface {
	~float32 | ~float64
}

// Poly is a dense univariate polynomial. The coefficient at index i belongs
// to the term of degree i. The coefficient slice is never empty and carries
// no trailing zeros; the zero polynomial is the single coefficient [0].
type Poly[T Real] struct {
	coeffs []T
}

// FromCoeffs builds a polynomial from coefficients ordered low to high
// degree. Trailing zero coefficients are trimmed.
func FromCoeffs[T Real](coeffs []T) Poly[T] {
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	return fromOwned(c)
}

// FromRoots builds the polynomial with the given real roots, expanding the
// product of (x - r) factors.
func FromRoots[T Real](roots []T) Poly[T] {
	p := One[T]()
	for _, r := range roots {
		p = p.Mul(Poly[T]{coeffs: []T{-r, 1}})
	}
	return p
}

// Zero returns the zero polynomial.
func Zero[T Real]() Poly[T] {
	return Poly[T]{coeffs: []T{0}}
}

// One returns the unit polynomial.
func One[T Real]() Poly[T] {
	return Poly[T]{coeffs: []T{1}}
}

// fromOwned wraps an already-owned coefficient slice, trimming in place.
func fromOwned[T Real](coeffs []T) Poly[T] {
	p := Poly[T]{coeffs: coeffs}
	p.trim()
	return p
}

// trim drops trailing zero coefficients, leaving at least the zero
// polynomial [0].
func (p *Poly[T]) trim() {
	i := len(p.coeffs) - 1
	for i > 0 && p.coeffs[i] == 0 {
		i--
	}
	if i < 0 || len(p.coeffs) == 0 {
		p.coeffs = []T{0}
		return
	}
	p.coeffs = p.coeffs[:i+1]
}

// Degree reports the degree of the polynomial. The second return value is
// false exactly for the zero polynomial, whose degree is undefined.
func (p Poly[T]) Degree() (int, bool) {
	if p.IsZero() {
		return 0, false
	}
	return len(p.coeffs) - 1, true
}

// IsZero reports whether p is the canonical zero polynomial.
func (p Poly[T]) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == 0
}

// IsOne reports whether p is the unit polynomial.
func (p Poly[T]) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == 1
}

// Coeffs returns a copy of the coefficients, lowest degree first.
func (p Poly[T]) Coeffs() []T {
	c := make([]T, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// At returns the coefficient of the term of degree i.
// It panics when i is out of range.
func (p Poly[T]) At(i int) T {
	return p.coeffs[i]
}

// LeadingCoeff returns the coefficient of the highest degree term.
func (p Poly[T]) LeadingCoeff() T {
	return p.coeffs[len(p.coeffs)-1]
}

// Equal reports whether p and q have the same canonical coefficients.
func (p Poly[T]) Equal(q Poly[T]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}

// Extend pads the polynomial with zero coefficients up to the given degree.
// It never truncates: extending at or below the current degree is a no-op.
func (p *Poly[T]) Extend(degree int) {
	d, ok := p.Degree()
	if ok && degree <= d {
		return
	}
	for len(p.coeffs) < degree+1 {
		p.coeffs = append(p.coeffs, 0)
	}
}

// Monic returns the polynomial divided by its leading coefficient, together
// with the original leading coefficient. Division follows the semantics of
// T, so integer coefficients truncate. Normalizing the zero polynomial is a
// no-op returning the input unchanged.
func (p Poly[T]) Monic() (Poly[T], T) {
	lc := p.LeadingCoeff()
	if lc == 0 {
		return p, lc
	}
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c / lc
	}
	return fromOwned(out), lc
}

// MonicInPlace divides the coefficients by the leading coefficient in place
// and returns the original leading coefficient. Normalizing the zero
// polynomial is a no-op.
func (p *Poly[T]) MonicInPlace() T {
	lc := p.LeadingCoeff()
	if lc == 0 {
		return lc
	}
	for i := range p.coeffs {
		p.coeffs[i] /= lc
	}
	p.trim()
	return lc
}

// Roundoff zeroes every coefficient whose magnitude is below atol.
func (p Poly[T]) Roundoff(atol T) Poly[T] {
	if atol < 0 {
		atol = -atol
	}
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		if c > -atol && c < atol {
			out[i] = 0
		} else {
			out[i] = c
		}
	}
	return fromOwned(out)
}

// RoundoffInPlace zeroes coefficients below atol in place and re-trims.
func (p *Poly[T]) RoundoffInPlace(atol T) {
	if atol < 0 {
		atol = -atol
	}
	for i, c := range p.coeffs {
		if c > -atol && c < atol {
			p.coeffs[i] = 0
		}
	}
	p.trim()
}

// String formats the polynomial in the Laplace variable s, skipping zero
// terms: "1 +2s^3 -4s^4".
func (p Poly[T]) String() string {
	if len(p.coeffs) == 1 {
		return fmt.Sprintf("%v", p.coeffs[0])
	}
	var b strings.Builder
	sep := ""
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		b.WriteString(sep)
		switch i {
		case 0:
			fmt.Fprintf(&b, "%v", c)
		case 1:
			fmt.Fprintf(&b, "%+vs", c)
		default:
			fmt.Fprintf(&b, "%+vs^%d", c, i)
		}
		sep = " "
	}
	return b.String()
}
