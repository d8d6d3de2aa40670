package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/chebsolve/internal/cheb"
)

const (
	plotWidth  = 70
	plotHeight = 14
	// log floor for coefficient and residual plots, near the double
	// precision noise level
	logFloor = -17.0
)

// PlotSolution renders the expansion sampled on a uniform grid.
func PlotSolution(u *cheb.Func, caption string) string {
	a, b := u.Domain()
	vals := make([]float64, plotWidth)
	for i := range vals {
		x := a + (b-a)*float64(i)/float64(plotWidth-1)
		vals[i] = u.At(x)
	}
	return asciigraph.Plot(vals,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption))
}

// PlotCoefficients renders the decay of the Chebyshev coefficients on a
// log10 scale. A straight descending line is the signature of a resolved
// expansion.
func PlotCoefficients(u *cheb.Func) string {
	coeffs := u.Coeffs()
	vals := make([]float64, len(coeffs))
	for k, c := range coeffs {
		vals[k] = logAbs(c)
	}
	return asciigraph.Plot(vals,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("log10 |c_k|"))
}

// PlotResiduals renders a Newton residual history on a log10 scale.
func PlotResiduals(residuals []float64) string {
	vals := make([]float64, len(residuals))
	for i, r := range residuals {
		vals[i] = logAbs(r)
	}
	return asciigraph.Plot(vals,
		asciigraph.Height(6),
		asciigraph.Width(40),
		asciigraph.Caption("log10 residual"))
}

func logAbs(v float64) float64 {
	l := math.Log10(math.Abs(v))
	if math.IsInf(l, -1) || l < logFloor {
		return logFloor
	}
	return l
}
