package cheb

import (
	"fmt"
	"math"
)

const (
	// DefaultTol is the relative coefficient truncation tolerance.
	DefaultTol = 1e-13

	// DefaultMaxDegree caps adaptive refinement during construction.
	DefaultMaxDegree = 1 << 12

	minDegree = 16
)

// Func is a scalar function on [a,b] represented by coefficients in the
// Chebyshev basis T_0..T_N. The zero value is not usable; construct through
// NewFromFunc, NewFromValues, NewFromCoeffs, NewConst or NewIdentity.
type Func struct {
	a, b   float64
	coeffs []float64
}

// NewFromCoeffs builds a Func directly from Chebyshev coefficients on [a,b].
func NewFromCoeffs(coeffs []float64, a, b float64) (*Func, error) {
	if err := checkInterval(a, b); err != nil {
		return nil, err
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cheb: empty coefficient vector")
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Func{a: a, b: b, coeffs: c}, nil
}

// NewFromValues interpolates through samples taken at Points(len(vals)-1, a, b).
func NewFromValues(vals []float64, a, b float64) (*Func, error) {
	if err := checkInterval(a, b); err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("cheb: empty value vector")
	}
	return &Func{a: a, b: b, coeffs: valsToCoeffs(vals)}, nil
}

// NewConst returns the constant function c on [a,b].
func NewConst(c, a, b float64) (*Func, error) {
	return NewFromCoeffs([]float64{c}, a, b)
}

// NewIdentity returns the function x on [a,b].
func NewIdentity(a, b float64) (*Func, error) {
	// x = (a+b)/2 + (b-a)/2 * T_1
	return NewFromCoeffs([]float64{(a + b) / 2, (b - a) / 2}, a, b)
}

// NewFromFunc adaptively approximates fn on [a,b] with default tolerances.
func NewFromFunc(fn func(float64) float64, a, b float64) (*Func, error) {
	return Approx(fn, a, b, DefaultTol, DefaultMaxDegree)
}

// Approx adaptively approximates fn on [a,b], doubling the sampling degree
// until the trailing coefficients fall below tol relative to the largest
// coefficient. It fails with ErrNotResolved once maxDegree is exceeded and
// with ErrInvalidValue if fn returns NaN or Inf on the sample grid.
func Approx(fn func(float64) float64, a, b float64, tol float64, maxDegree int) (*Func, error) {
	if err := checkInterval(a, b); err != nil {
		return nil, err
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	if maxDegree < minDegree {
		maxDegree = minDegree
	}

	for n := minDegree; n <= maxDegree; n *= 2 {
		pts := Points(n, a, b)
		vals := make([]float64, n+1)
		for i, x := range pts {
			v := fn(x)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w at x=%g", ErrInvalidValue, x)
			}
			vals[i] = v
		}

		coeffs := valsToCoeffs(vals)
		maxc := maxAbs(coeffs)
		if maxc == 0 {
			return &Func{a: a, b: b, coeffs: []float64{0}}, nil
		}
		tail := math.Max(math.Abs(coeffs[n-1]), math.Abs(coeffs[n]))
		if tail <= tol*maxc {
			return &Func{a: a, b: b, coeffs: chop(coeffs, tol)}, nil
		}
	}
	return nil, fmt.Errorf("%w (max degree %d)", ErrNotResolved, maxDegree)
}

// Domain returns the interval endpoints.
func (f *Func) Domain() (a, b float64) { return f.a, f.b }

// Degree returns the polynomial degree of the representation.
func (f *Func) Degree() int { return len(f.coeffs) - 1 }

// Coeffs returns a copy of the Chebyshev coefficients.
func (f *Func) Coeffs() []float64 {
	c := make([]float64, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// At evaluates the representation at x by Clenshaw recurrence. Points outside
// [a,b] evaluate the polynomial extension; use Eval for a checked variant.
func (f *Func) At(x float64) float64 {
	return clenshaw(f.coeffs, (2*x-f.a-f.b)/(f.b-f.a))
}

// Eval evaluates at x, failing with ErrDomain when x lies outside [a,b].
func (f *Func) Eval(x float64) (float64, error) {
	slack := 1e-14 * (1 + math.Abs(f.a) + math.Abs(f.b))
	if x < f.a-slack || x > f.b+slack {
		return 0, fmt.Errorf("%w: x=%g not in [%g, %g]", ErrDomain, x, f.a, f.b)
	}
	return f.At(x), nil
}

// Chop returns a copy with trailing coefficients below tol relative to the
// largest coefficient removed.
func (f *Func) Chop(tol float64) *Func {
	if tol <= 0 {
		tol = DefaultTol
	}
	return &Func{a: f.a, b: f.b, coeffs: chop(f.coeffs, tol)}
}

// MaxAbs estimates the supremum norm by dense sampling.
func (f *Func) MaxAbs() float64 {
	n := 4 * f.Degree()
	if n < 64 {
		n = 64
	}
	m := 0.0
	for _, x := range Points(n, f.a, f.b) {
		if v := math.Abs(f.At(x)); v > m {
			m = v
		}
	}
	return m
}

func (f *Func) sameDomain(g *Func) bool {
	return f.a == g.a && f.b == g.b
}

func checkInterval(a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
		return fmt.Errorf("cheb: invalid interval [%g, %g]", a, b)
	}
	return nil
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, c := range v {
		if a := math.Abs(c); a > m {
			m = a
		}
	}
	return m
}

// chop truncates trailing coefficients below tol*max|c|, keeping at least one.
func chop(coeffs []float64, tol float64) []float64 {
	cutoff := tol * maxAbs(coeffs)
	last := 0
	for i, c := range coeffs {
		if math.Abs(c) > cutoff {
			last = i
		}
	}
	out := make([]float64, last+1)
	copy(out, coeffs[:last+1])
	return out
}
