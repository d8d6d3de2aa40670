// Package cheb provides adaptive Chebyshev polynomial representations of
// smooth scalar functions on an interval.
//
// The central type is [Func], an immutable function on [a,b] stored as
// coefficients in the Chebyshev basis T_0..T_N. The degree N is chosen
// adaptively when constructing from a callable: sampling resolution is
// doubled until the trailing coefficients fall below a relative tolerance.
//
//   - [NewFromFunc], [Approx]: adaptive construction from a callable
//   - [NewFromValues]: interpolation through Chebyshev–Lobatto samples
//   - [Func.Deriv]: exact differentiation in coefficient space
//   - [Func.Add], [Func.Mul], [Func.Compose]: closed arithmetic
//
// # Immutability
//
// Operations never mutate their receivers; every operation returns a new
// Func. A Func may therefore be shared freely across goroutines.
package cheb
