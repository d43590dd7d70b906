package linsys

import "errors"

// Domain errors for state-space construction and simulation.
var (
	// ErrDimension indicates a matrix slice whose length does not match
	// the declared state, input or output dimensions.
	ErrDimension = errors.New("linsys: matrix data does not match declared dimensions")

	// ErrSingular indicates a singular state matrix, for which no
	// equilibrium exists.
	ErrSingular = errors.New("linsys: state matrix is singular")

	// ErrStep indicates an invalid integration step or step count.
	ErrStep = errors.New("linsys: integration step must be positive")
)
