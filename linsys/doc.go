// Package linsys implements continuous-time linear state-space models
//
//	dx/dt = A*x + B*u
//	y     = C*x + D*u
//
// with pole computation through an eigenvalue decomposition of the state
// matrix, equilibrium calculation, and a Runge-Kutta step response.
package linsys
