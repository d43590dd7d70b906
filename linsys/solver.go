package linsys

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sample is one point of the time evolution of a linear system.
type Sample struct {
	Time   float64
	State  []float64
	Output []float64
}

// Rk2Response integrates the response to the constant input u from the
// initial state x0 with the Runge-Kutta second order method, using step h
// for n steps. The result holds n+1 samples, the first at time zero.
//
//	x_{k+1} = x_k + (k1 + k2)/2
//	k1 = h*(A*x_k + B*u)
//	k2 = h*(A*(x_k + k1) + B*u)
//
// Time does not appear explicitly: the system is linear and the input is
// a step.
func (s *Ss) Rk2Response(u, x0 []float64, h float64, n int) ([]Sample, error) {
	if h <= 0 || n <= 0 {
		return nil, fmt.Errorf("%w: h=%v n=%d", ErrStep, h, n)
	}
	if len(u) != s.nu {
		return nil, fmt.Errorf("%w: input length %d, want %d", ErrDimension, len(u), s.nu)
	}
	if len(x0) != s.nx {
		return nil, fmt.Errorf("%w: state length %d, want %d", ErrDimension, len(x0), s.nx)
	}

	uv := mat.NewVecDense(s.nu, append([]float64(nil), u...))
	x := mat.NewVecDense(s.nx, append([]float64(nil), x0...))

	// B*u is constant for a step input.
	var bu mat.VecDense
	bu.MulVec(s.b, uv)

	samples := make([]Sample, 0, n+1)
	samples = append(samples, s.sampleAt(0, x, uv))

	var k1, k2, tmp mat.VecDense
	for i := 1; i <= n; i++ {
		k1.MulVec(s.a, x)
		k1.AddVec(&k1, &bu)
		k1.ScaleVec(h, &k1)

		tmp.AddVec(x, &k1)
		k2.MulVec(s.a, &tmp)
		k2.AddVec(&k2, &bu)
		k2.ScaleVec(h, &k2)

		tmp.AddVec(&k1, &k2)
		tmp.ScaleVec(0.5, &tmp)
		x.AddVec(x, &tmp)

		samples = append(samples, s.sampleAt(float64(i)*h, x, uv))
	}
	return samples, nil
}

// sampleAt captures the state and the output y = C*x + D*u at time t.
func (s *Ss) sampleAt(t float64, x, u *mat.VecDense) Sample {
	var y mat.VecDense
	y.MulVec(s.c, x)
	var du mat.VecDense
	du.MulVec(s.d, u)
	y.AddVec(&y, &du)

	state := make([]float64, s.nx)
	for i := range state {
		state[i] = x.AtVec(i)
	}
	output := make([]float64, s.ny)
	for i := range output {
		output[i] = y.AtVec(i)
	}
	return Sample{Time: t, State: state, Output: output}
}
