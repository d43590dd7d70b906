package linsys

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Ss is a continuous-time linear system in state-space form.
type Ss struct {
	a *mat.Dense
	b *mat.Dense
	c *mat.Dense
	d *mat.Dense

	nx int // states
	nu int // inputs
	ny int // outputs
}

// New builds a state-space model with nx states, nu inputs and ny outputs.
// The matrix data is given in row-major order; slice lengths must match
// the declared dimensions.
func New(nx, nu, ny int, a, b, c, d []float64) (*Ss, error) {
	if nx <= 0 || nu <= 0 || ny <= 0 {
		return nil, fmt.Errorf("%w: nx=%d nu=%d ny=%d", ErrDimension, nx, nu, ny)
	}
	if len(a) != nx*nx || len(b) != nx*nu || len(c) != ny*nx || len(d) != ny*nu {
		return nil, fmt.Errorf("%w: a=%d b=%d c=%d d=%d", ErrDimension, len(a), len(b), len(c), len(d))
	}
	return &Ss{
		a:  mat.NewDense(nx, nx, a),
		b:  mat.NewDense(nx, nu, b),
		c:  mat.NewDense(ny, nx, c),
		d:  mat.NewDense(ny, nu, d),
		nx: nx,
		nu: nu,
		ny: ny,
	}, nil
}

// StateDim returns the number of states.
func (s *Ss) StateDim() int { return s.nx }

// InputDim returns the number of inputs.
func (s *Ss) InputDim() int { return s.nu }

// OutputDim returns the number of outputs.
func (s *Ss) OutputDim() int { return s.ny }

// A returns a copy of the state matrix.
func (s *Ss) A() *mat.Dense { return mat.DenseCopyOf(s.a) }

// B returns a copy of the input matrix.
func (s *Ss) B() *mat.Dense { return mat.DenseCopyOf(s.b) }

// C returns a copy of the output matrix.
func (s *Ss) C() *mat.Dense { return mat.DenseCopyOf(s.c) }

// D returns a copy of the feedthrough matrix.
func (s *Ss) D() *mat.Dense { return mat.DenseCopyOf(s.d) }

// Poles returns the system poles, the eigenvalues of the state matrix.
// A decomposition that fails to converge yields nil; this is an absent
// result, not an error.
func (s *Ss) Poles() []complex128 {
	var eig mat.Eigen
	if !eig.Factorize(s.a, mat.EigenNone) {
		return nil
	}
	return eig.Values(nil)
}

// IsStable reports whether every pole has a strictly negative real part.
func (s *Ss) IsStable() bool {
	poles := s.Poles()
	if poles == nil {
		return false
	}
	for _, p := range poles {
		if real(p) >= 0 {
			return false
		}
	}
	return true
}

// Equilibrium solves A*x + B*u = 0 for the constant input u, returning
// the equilibrium state and output. A singular state matrix yields
// ErrSingular.
func (s *Ss) Equilibrium(u []float64) (state, output []float64, err error) {
	if len(u) != s.nu {
		return nil, nil, fmt.Errorf("%w: input length %d, want %d", ErrDimension, len(u), s.nu)
	}
	uv := mat.NewVecDense(s.nu, append([]float64(nil), u...))

	var bu mat.VecDense
	bu.MulVec(s.b, uv)
	bu.ScaleVec(-1, &bu)

	var x mat.VecDense
	if err := x.SolveVec(s.a, &bu); err != nil {
		return nil, nil, ErrSingular
	}

	var y mat.VecDense
	y.MulVec(s.c, &x)
	var du mat.VecDense
	du.MulVec(s.d, uv)
	y.AddVec(&y, &du)

	state = make([]float64, s.nx)
	for i := range state {
		state[i] = x.AtVec(i)
	}
	output = make([]float64, s.ny)
	for i := range output {
		output[i] = y.AtVec(i)
	}
	return state, output, nil
}
