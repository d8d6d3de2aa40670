package bvp

import "github.com/san-kum/chebsolve/internal/cheb"

// discretization maps a Problem onto a fixed Chebyshev–Lobatto grid of
// degree n. The discrete state is the concatenation of the unknown's values
// at the grid points and the parameter values; the residual vector stacks
// the condition rows on top of the operator rows, with Order collocation
// points nearest the boundaries dropped so the system is square.
type discretization struct {
	prob  *Problem
	n     int
	pts   []float64
	keep  []int
	conds []Condition
}

func newDiscretization(prob *Problem, n int) *discretization {
	pts := cheb.Points(n, prob.Domain[0], prob.Domain[1])

	// boundary bordering: drop rows where condition rows take over,
	// preferring the side the conditions are attached to
	dl := len(prob.Left)
	if dl > prob.Order {
		dl = prob.Order
	}
	dr := prob.Order - dl
	keep := make([]int, 0, n+1-prob.Order)
	for j := dl; j <= n-dr; j++ {
		keep = append(keep, j)
	}

	return &discretization{
		prob:  prob,
		n:     n,
		pts:   pts,
		keep:  keep,
		conds: prob.conditions(),
	}
}

// size is the discrete state length: n+1 sample values plus the parameters.
func (d *discretization) size() int {
	return d.n + 1 + d.prob.NumParams
}

// buildFunc interpolates the function part of a state.
func (d *discretization) buildFunc(state []float64) *cheb.Func {
	fn, err := cheb.NewFromValues(state[:d.n+1], d.prob.Domain[0], d.prob.Domain[1])
	if err != nil {
		// the interval was validated up front; only programmer error lands here
		panic(err)
	}
	return fn
}

// residual evaluates the discrete residual map F(state) into dst. dst and
// state both have length size().
func (d *discretization) residual(dst, state []float64) {
	u := d.buildFunc(state)
	params := state[d.n+1:]

	derivs := make([]*cheb.Func, d.prob.Order+1)
	derivs[0] = u
	for i := 1; i <= d.prob.Order; i++ {
		derivs[i] = derivs[i-1].Deriv()
	}

	idx := 0
	for _, c := range d.conds {
		dst[idx] = c(u, params)
		idx++
	}

	uv := make([]float64, d.prob.Order+1)
	for _, j := range d.keep {
		x := d.pts[j]
		for i, df := range derivs {
			uv[i] = df.At(x)
		}
		dst[idx] = d.prob.Operator(x, uv, params)
		idx++
	}
}
