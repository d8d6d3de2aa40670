package bvp

import (
	"fmt"
	"math"

	"github.com/san-kum/chebsolve/internal/cheb"
)

// Operator evaluates the ODE residual at a collocation point. u holds the
// unknown and its derivatives at x: u[0] = u(x), u[1] = u'(x), up to the
// problem's Order. p holds the current parameter values in declared order.
// The residual must vanish at the solution.
type Operator func(x float64, u []float64, p []float64) float64

// Condition is a functional of the solution and parameters that must vanish
// at the solution, attached at the left end, the right end, or an interior
// point of the domain.
type Condition func(u *cheb.Func, p []float64) float64

// Dirichlet returns the condition u(x) = value.
func Dirichlet(x, value float64) Condition {
	return func(u *cheb.Func, p []float64) float64 {
		return u.At(x) - value
	}
}

// Neumann returns the condition u'(x) = value.
func Neumann(x, value float64) Condition {
	return func(u *cheb.Func, p []float64) float64 {
		return u.Deriv().At(x) - value
	}
}

// Problem aggregates a residual operator, its boundary conditions, the
// domain, and optional initial guesses. It is not modified by solving.
type Problem struct {
	// Domain holds the interval endpoints [a, b].
	Domain [2]float64

	// Order is the highest derivative order appearing in Operator.
	Order int

	// NumParams is the number of unknown scalar parameters.
	NumParams int

	Operator Operator

	// Left, Interior and Right conditions. Their total count must equal
	// Order + NumParams.
	Left     []Condition
	Interior []Condition
	Right    []Condition

	// Guess seeds the Newton iteration; nil seeds with the zero function.
	Guess *cheb.Func

	// ParamGuess seeds the parameters; nil seeds with zeros.
	ParamGuess []float64
}

// Validate checks that the problem is well posed: a proper interval, a
// residual operator, and exactly one condition per derivative order and per
// free parameter.
func (p *Problem) Validate() error {
	a, b := p.Domain[0], p.Domain[1]
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
		return fmt.Errorf("bvp: invalid domain [%g, %g]", a, b)
	}
	if p.Operator == nil {
		return fmt.Errorf("bvp: nil operator")
	}
	if p.Order < 1 {
		return fmt.Errorf("bvp: order must be at least 1, got %d", p.Order)
	}
	if p.NumParams < 0 {
		return fmt.Errorf("bvp: negative parameter count %d", p.NumParams)
	}

	nbc := len(p.Left) + len(p.Interior) + len(p.Right)
	need := p.Order + p.NumParams
	if nbc < need {
		return fmt.Errorf("%w: %d conditions for order %d with %d parameters",
			ErrUnderdetermined, nbc, p.Order, p.NumParams)
	}
	if nbc > need {
		return fmt.Errorf("%w: %d conditions for order %d with %d parameters",
			ErrOverdetermined, nbc, p.Order, p.NumParams)
	}

	if p.Guess != nil {
		ga, gb := p.Guess.Domain()
		if ga != a || gb != b {
			return fmt.Errorf("bvp: guess domain [%g, %g] does not match problem domain [%g, %g]",
				ga, gb, a, b)
		}
	}
	if p.ParamGuess != nil && len(p.ParamGuess) != p.NumParams {
		return fmt.Errorf("bvp: %d parameter guesses for %d parameters",
			len(p.ParamGuess), p.NumParams)
	}
	return nil
}

// conditions returns all conditions in a fixed order: left, interior, right.
func (p *Problem) conditions() []Condition {
	out := make([]Condition, 0, len(p.Left)+len(p.Interior)+len(p.Right))
	out = append(out, p.Left...)
	out = append(out, p.Interior...)
	out = append(out, p.Right...)
	return out
}
