package cheb

import "errors"

// Domain errors for Chebyshev representations.
var (
	// ErrNotResolved indicates the coefficients did not decay below the
	// truncation tolerance within the degree cap.
	ErrNotResolved = errors.New("cheb: coefficients did not decay within degree cap")

	// ErrDomain indicates evaluation or composition outside the interval a
	// representation is defined on.
	ErrDomain = errors.New("cheb: point outside representation domain")

	// ErrDomainMismatch indicates an operation combining representations
	// defined on different intervals.
	ErrDomainMismatch = errors.New("cheb: operands defined on different intervals")

	// ErrInvalidValue indicates a sampled function value was NaN or Inf.
	ErrInvalidValue = errors.New("cheb: non-finite function value")
)
