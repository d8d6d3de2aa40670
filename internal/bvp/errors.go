package bvp

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by Solve. All are wrapped in *SolveError when the
// failure happens during iteration, so diagnostics travel with the error.
var (
	// ErrUnderdetermined indicates fewer conditions than the derivative
	// order plus parameter count requires.
	ErrUnderdetermined = errors.New("bvp: system underdetermined (too few conditions)")

	// ErrOverdetermined indicates more conditions than unknowns allow.
	ErrOverdetermined = errors.New("bvp: system overdetermined (too many conditions)")

	// ErrDidNotConverge indicates the Newton iteration exceeded its cap.
	ErrDidNotConverge = errors.New("bvp: newton iteration exceeded iteration cap")

	// ErrSingularJacobian indicates a singular or numerically degenerate
	// linearization, including steps that produce NaN or Inf.
	ErrSingularJacobian = errors.New("bvp: singular jacobian")

	// ErrUnresolved indicates the Newton iteration converged but the
	// solution's coefficients did not decay within the degree cap.
	ErrUnresolved = errors.New("bvp: solution not resolved within degree cap")
)

// SolveError carries the state of a failed solve for diagnostics. Callers
// decide whether to retry with a different guess, tolerance, or degree cap;
// the solver itself never retries past its caps.
type SolveError struct {
	Degree     int
	Iterations int
	Residual   float64
	State      []float64
	Wrapped    error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%v (degree %d, iteration %d, residual %.3e)",
		e.Wrapped, e.Degree, e.Iterations, e.Residual)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
