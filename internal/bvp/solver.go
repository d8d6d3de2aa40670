package bvp

import (
	"context"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/chebsolve/internal/cheb"
)

// maxCond is the condition number beyond which a factorization is treated
// as singular.
const maxCond = 1e15

// Iteration describes one Newton step for observers.
type Iteration struct {
	Degree   int
	Iter     int
	Residual float64
	Damping  float64
}

// Observer receives per-iteration progress during a solve.
type Observer interface {
	OnIteration(it Iteration)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Iteration)

func (f ObserverFunc) OnIteration(it Iteration) { f(it) }

// Result packages a converged solve: the solution function, the parameter
// values in declared order, and convergence diagnostics.
type Result struct {
	Solution   *cheb.Func
	Params     []float64
	Residual   float64
	Iterations int
	Degree     int
}

// Solver runs damped Newton iteration with adaptive grid refinement.
type Solver struct {
	cfg       Config
	observers []Observer
}

func NewSolver(cfg Config) *Solver {
	return &Solver{cfg: cfg.withDefaults()}
}

func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Solve is a convenience wrapper for a one-shot solve.
func Solve(ctx context.Context, prob *Problem, cfg Config) (*Result, error) {
	return NewSolver(cfg).Solve(ctx, prob)
}

// Solve discretizes prob at increasing resolutions, running Newton to
// convergence at each, until the solution's Chebyshev coefficients decay
// below the chop tolerance. Identical problems, guesses and configuration
// produce identical results.
func (s *Solver) Solve(ctx context.Context, prob *Problem) (*Result, error) {
	if err := prob.Validate(); err != nil {
		return nil, err
	}
	cfg := s.cfg

	n := cfg.MinDegree
	for n+1-prob.Order <= prob.Order+prob.NumParams {
		n *= 2
	}
	state := initialState(prob, n)

	totalIters := 0
	for {
		d := newDiscretization(prob, n)
		iters, rnorm, err := s.newton(ctx, d, state, cfg)
		totalIters += iters
		if err != nil {
			return nil, err
		}

		fn := d.buildFunc(state)
		if resolved(fn, cfg.ChopTolerance) {
			params := make([]float64, prob.NumParams)
			copy(params, state[n+1:])
			return &Result{
				Solution:   fn.Chop(cfg.ChopTolerance),
				Params:     params,
				Residual:   rnorm,
				Iterations: totalIters,
				Degree:     n,
			}, nil
		}

		if 2*n > cfg.MaxDegree {
			return nil, &SolveError{
				Degree:     n,
				Iterations: totalIters,
				Residual:   rnorm,
				State:      cloneSlice(state),
				Wrapped:    ErrUnresolved,
			}
		}

		state = refine(fn, state[n+1:], 2*n)
		n *= 2
	}
}

// newton iterates in place on state until the residual norm falls below the
// tolerance, the iteration cap is hit, or the linearization degenerates.
func (s *Solver) newton(ctx context.Context, d *discretization, state []float64, cfg Config) (int, float64, error) {
	m := d.size()
	res := make([]float64, m)
	trialRes := make([]float64, m)
	trial := make([]float64, m)
	jac := mat.NewDense(m, m, nil)
	step := mat.NewVecDense(m, nil)
	rhs := mat.NewVecDense(m, nil)

	d.residual(res, state)
	rnorm := norm2(res)
	if !finite(rnorm) {
		return 0, rnorm, s.fail(d, 0, rnorm, state, ErrSingularJacobian)
	}

	for it := 1; it <= cfg.MaxIterations; it++ {
		if rnorm <= tolFor(cfg, state) {
			return it - 1, rnorm, nil
		}
		select {
		case <-ctx.Done():
			return it - 1, rnorm, ctx.Err()
		default:
		}

		// a non-nil OriginValue tells fd.Jacobian the residual at state is
		// already known, saving one evaluation per iteration
		fd.Jacobian(jac, d.residual, state, &fd.JacobianSettings{
			Formula:     fd.Forward,
			OriginValue: res,
		})

		for i := 0; i < m; i++ {
			rhs.SetVec(i, -res[i])
		}
		var lu mat.LU
		lu.Factorize(jac)
		if c := lu.Cond(); !finite(c) || c > maxCond {
			return it - 1, rnorm, s.fail(d, it, rnorm, state, ErrSingularJacobian)
		}
		if err := lu.SolveVecTo(step, false, rhs); err != nil {
			return it - 1, rnorm, s.fail(d, it, rnorm, state, ErrSingularJacobian)
		}
		if !finiteVec(step) {
			return it - 1, rnorm, s.fail(d, it, rnorm, state, ErrSingularJacobian)
		}

		lambda := 1.0
		for {
			for i := 0; i < m; i++ {
				trial[i] = state[i] + lambda*step.AtVec(i)
			}
			d.residual(trialRes, trial)
			tnorm := norm2(trialRes)

			if cfg.Damping == DampNone {
				if !finite(tnorm) {
					return it, rnorm, s.fail(d, it, rnorm, state, ErrSingularJacobian)
				}
				copy(state, trial)
				copy(res, trialRes)
				rnorm = tnorm
				break
			}

			// accept on sufficient decrease; once the damping floor is hit,
			// accept any finite residual and let the iteration cap decide
			if finite(tnorm) && (tnorm <= (1-1e-4*lambda)*rnorm || lambda <= minLambda) {
				copy(state, trial)
				copy(res, trialRes)
				rnorm = tnorm
				break
			}
			if lambda <= minLambda {
				return it, rnorm, s.fail(d, it, rnorm, state, ErrSingularJacobian)
			}
			lambda /= 2
		}

		s.notify(Iteration{Degree: d.n, Iter: it, Residual: rnorm, Damping: lambda})
	}

	if rnorm <= tolFor(cfg, state) {
		return cfg.MaxIterations, rnorm, nil
	}
	return cfg.MaxIterations, rnorm, s.fail(d, cfg.MaxIterations, rnorm, state, ErrDidNotConverge)
}

const minLambda = 1.0 / 1024

func (s *Solver) fail(d *discretization, it int, rnorm float64, state []float64, kind error) error {
	return &SolveError{
		Degree:     d.n,
		Iterations: it,
		Residual:   rnorm,
		State:      cloneSlice(state),
		Wrapped:    kind,
	}
}

func (s *Solver) notify(it Iteration) {
	for _, o := range s.observers {
		o.OnIteration(it)
	}
}

// initialState samples the guess (or the zero function) at the grid points
// and appends the parameter guesses.
func initialState(prob *Problem, n int) []float64 {
	state := make([]float64, n+1+prob.NumParams)
	if prob.Guess != nil {
		for i, x := range cheb.Points(n, prob.Domain[0], prob.Domain[1]) {
			state[i] = prob.Guess.At(x)
		}
	}
	copy(state[n+1:], prob.ParamGuess)
	return state
}

// refine reinterpolates a converged solution onto the doubled grid.
func refine(fn *cheb.Func, params []float64, n int) []float64 {
	a, b := fn.Domain()
	state := make([]float64, n+1+len(params))
	for i, x := range cheb.Points(n, a, b) {
		state[i] = fn.At(x)
	}
	copy(state[n+1:], params)
	return state
}

// resolved reports whether the trailing Chebyshev coefficients of fn have
// decayed below tol relative to the largest coefficient.
func resolved(fn *cheb.Func, tol float64) bool {
	c := fn.Coeffs()
	n := len(c) - 1
	if n < 2 {
		return true
	}
	maxc := 0.0
	for _, v := range c {
		if a := math.Abs(v); a > maxc {
			maxc = a
		}
	}
	if maxc == 0 {
		return true
	}
	tail := math.Max(math.Abs(c[n-1]), math.Abs(c[n]))
	return tail <= tol*maxc
}

// tolFor scales the convergence tolerance by the iterate magnitude, with an
// absolute floor near machine precision.
func tolFor(cfg Config, state []float64) float64 {
	m := 0.0
	for _, v := range state {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	tol := cfg.Tolerance * (1 + m)
	if tol < 1e-14 {
		tol = 1e-14
	}
	return tol
}

func norm2(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func finiteVec(v *mat.VecDense) bool {
	for i := 0; i < v.Len(); i++ {
		if !finite(v.AtVec(i)) {
			return false
		}
	}
	return true
}

func cloneSlice(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
