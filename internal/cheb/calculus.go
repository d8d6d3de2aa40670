package cheb

import "math"

// Deriv returns the derivative as a new Func. Differentiation is exact in
// coefficient space; no finite differencing is involved.
func (f *Func) Deriv() *Func {
	return &Func{a: f.a, b: f.b, coeffs: derivCoeffs(f.coeffs, f.a, f.b)}
}

// DerivN returns the order-th derivative. Order zero returns the receiver.
func (f *Func) DerivN(order int) *Func {
	g := f
	for i := 0; i < order; i++ {
		g = g.Deriv()
	}
	return g
}

// derivCoeffs applies the Chebyshev differentiation recurrence
// c'_{k-1} = c'_{k+1} + 2k c_k and rescales from [-1,1] to [a,b].
func derivCoeffs(c []float64, a, b float64) []float64 {
	n := len(c) - 1
	if n == 0 {
		return []float64{0}
	}
	d := make([]float64, n+2)
	for k := n; k >= 1; k-- {
		d[k-1] = d[k+1] + 2*float64(k)*c[k]
	}
	d[0] /= 2
	d = d[:n]
	scale := 2 / (b - a)
	for i := range d {
		d[i] *= scale
	}
	return d
}

// Integral returns the definite integral over [a,b], computed from the
// coefficients (odd-order basis terms integrate to zero).
func (f *Func) Integral() float64 {
	sum := 0.0
	for k := 0; k < len(f.coeffs); k += 2 {
		sum += f.coeffs[k] * 2 / float64(1-k*k)
	}
	return sum * (f.b - f.a) / 2
}

// Norm returns the L2 norm over [a,b].
func (f *Func) Norm() float64 {
	sq, err := f.Mul(f)
	if err != nil {
		return math.NaN()
	}
	return math.Sqrt(math.Abs(sq.Integral()))
}
