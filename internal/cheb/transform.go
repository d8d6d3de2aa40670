package cheb

import "math"

// Points returns the n+1 Chebyshev–Lobatto points on [a,b] in ascending
// order. For n=0 the single point is the interval midpoint.
func Points(n int, a, b float64) []float64 {
	mid := (a + b) / 2
	half := (b - a) / 2
	if n == 0 {
		return []float64{mid}
	}
	pts := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		pts[j] = mid - half*math.Cos(math.Pi*float64(j)/float64(n))
	}
	pts[0] = a
	pts[n] = b
	return pts
}

// valsToCoeffs maps samples at ascending Lobatto points to Chebyshev
// coefficients (discrete cosine transform with halved end weights).
func valsToCoeffs(vals []float64) []float64 {
	n := len(vals) - 1
	if n == 0 {
		return []float64{vals[0]}
	}
	c := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		sum := 0.0
		for j := 0; j <= n; j++ {
			w := 1.0
			if j == 0 || j == n {
				w = 0.5
			}
			// ascending point j sits at angle (n-j)*pi/n
			sum += w * vals[j] * math.Cos(math.Pi*float64(k*(n-j))/float64(n))
		}
		c[k] = 2 * sum / float64(n)
	}
	c[0] /= 2
	c[n] /= 2
	return c
}

// clenshaw evaluates sum c_k T_k(t) for t in [-1,1].
func clenshaw(coeffs []float64, t float64) float64 {
	b1, b2 := 0.0, 0.0
	for k := len(coeffs) - 1; k >= 1; k-- {
		b1, b2 = 2*t*b1-b2+coeffs[k], b1
	}
	return t*b1 - b2 + coeffs[0]
}
