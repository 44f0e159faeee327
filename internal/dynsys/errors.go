package dynsys

import "errors"

// Domain errors for Floquet computations.
var (
	// ErrUnsupportedSolver indicates an eigensolver configuration of an
	// unrecognized family.
	ErrUnsupportedSolver = errors.New("dynsys: unsupported eigensolver family")

	// ErrDimensionMismatch indicates mismatched vector/operator dimensions.
	ErrDimensionMismatch = errors.New("dynsys: dimension mismatch")

	// ErrNotImplemented indicates an operation a discretization variant
	// does not support.
	ErrNotImplemented = errors.New("dynsys: operation not implemented for this discretization")

	// ErrSingular indicates a singular linear system in the trapezoid recurrence.
	ErrSingular = errors.New("dynsys: singular linear system")

	// ErrInvalidOrbit indicates an orbit buffer with invalid length or values.
	ErrInvalidOrbit = errors.New("dynsys: invalid orbit buffer")

	// ErrUnstable indicates tangent propagation produced NaN or Inf.
	ErrUnstable = errors.New("dynsys: tangent propagation diverged")
)
