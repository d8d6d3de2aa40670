// Package bvp solves nonlinear boundary-value ODEs with unknown scalar
// parameters by spectral collocation on Chebyshev grids.
//
// A [Problem] couples a residual [Operator] R(x, u, u', ..., p) with
// boundary and interior [Condition] functionals on a domain [a,b]. The
// unknown is one function plus zero or more scalar parameters; every
// parameter must be pinned down by one extra condition.
//
// The [Solver] discretizes the problem at the Chebyshev–Lobatto points,
// drives the collocation residual to zero by damped Newton iteration, and
// doubles the grid until the solution's Chebyshev coefficients decay below
// the truncation tolerance. Jacobians are formed by forward finite
// differences and factorized by dense LU.
//
//	prob := &bvp.Problem{
//		Domain:   [2]float64{0, 1},
//		Order:    1,
//		NumParams: 1,
//		Operator: func(x float64, u, p []float64) float64 {
//			return u[1] + 1e-3*p[0]*(u[0]-15)
//		},
//		Left:  []bvp.Condition{bvp.Dirichlet(0, 37)},
//		Right: []bvp.Condition{bvp.Dirichlet(1, 20)},
//	}
//	res, err := bvp.Solve(ctx, prob, bvp.DefaultConfig())
//
// # Thread Safety
//
// A Solve call owns its iterate and Jacobian buffers exclusively; Solver
// instances are NOT safe for concurrent solves when observers are attached.
// Problems and results are immutable and may be shared.
package bvp
