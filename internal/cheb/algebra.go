package cheb

import "fmt"

// Add returns f+g. Both operands must share the same interval.
func (f *Func) Add(g *Func) (*Func, error) {
	if !f.sameDomain(g) {
		return nil, ErrDomainMismatch
	}
	n := len(f.coeffs)
	if len(g.coeffs) > n {
		n = len(g.coeffs)
	}
	c := make([]float64, n)
	for i := range c {
		if i < len(f.coeffs) {
			c[i] += f.coeffs[i]
		}
		if i < len(g.coeffs) {
			c[i] += g.coeffs[i]
		}
	}
	return &Func{a: f.a, b: f.b, coeffs: c}, nil
}

// Sub returns f-g.
func (f *Func) Sub(g *Func) (*Func, error) {
	return f.Add(g.Scale(-1))
}

// Scale returns s*f.
func (f *Func) Scale(s float64) *Func {
	c := make([]float64, len(f.coeffs))
	for i, v := range f.coeffs {
		c[i] = s * v
	}
	return &Func{a: f.a, b: f.b, coeffs: c}
}

// Mul returns the pointwise product f*g, exact at degree deg(f)+deg(g).
func (f *Func) Mul(g *Func) (*Func, error) {
	if !f.sameDomain(g) {
		return nil, ErrDomainMismatch
	}
	n := f.Degree() + g.Degree()
	if n == 0 {
		return &Func{a: f.a, b: f.b, coeffs: []float64{f.coeffs[0] * g.coeffs[0]}}, nil
	}
	pts := Points(n, f.a, f.b)
	vals := make([]float64, n+1)
	for i, x := range pts {
		vals[i] = f.At(x) * g.At(x)
	}
	return &Func{a: f.a, b: f.b, coeffs: valsToCoeffs(vals)}, nil
}

// Compose returns g∘f, the representation of g(f(x)) on f's interval. The
// range of f must lie within g's interval; otherwise it fails with ErrDomain.
func (f *Func) Compose(g *Func) (*Func, error) {
	lo, hi := f.rangeEstimate()
	slack := 1e-10 * (1 + g.b - g.a)
	if lo < g.a-slack || hi > g.b+slack {
		return nil, fmt.Errorf("%w: range [%g, %g] of inner function exceeds [%g, %g]",
			ErrDomain, lo, hi, g.a, g.b)
	}
	return NewFromFunc(func(x float64) float64 {
		return g.At(f.At(x))
	}, f.a, f.b)
}

// rangeEstimate brackets the range of f by dense sampling.
func (f *Func) rangeEstimate() (lo, hi float64) {
	n := 4 * f.Degree()
	if n < 64 {
		n = 64
	}
	pts := Points(n, f.a, f.b)
	lo, hi = f.At(pts[0]), f.At(pts[0])
	for _, x := range pts[1:] {
		v := f.At(x)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
