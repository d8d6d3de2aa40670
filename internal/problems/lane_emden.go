package problems

import (
	"math"

	"github.com/san-kum/chebsolve/internal/bvp"
	"github.com/san-kum/chebsolve/internal/cheb"
)

const laneEmdenIndex = 4.5

// laneEmdenZero is the first zero of the Lane-Emden function of index 4.5,
// from Boyd, "Chebyshev spectral methods and the Lane-Emden problem".
const laneEmdenZero = 31.836463244694285264

// NewLaneEmden solves the Lane-Emden equation of index 4.5 rescaled onto
// [0,1]. The first zero v of the solution enters the equation only
// through its square, so the unknown parameter is w = v^2, which the
// equation determines with a definite sign:
//
//	x u'' + 2 u' + x w (u + 1e-12)^4.5 = 0
//	u(0) = 1,  u'(0) = 0,  u(1) = 0
//
// Report converts back to the zero itself, v = sqrt(w). The 1e-12 shift
// keeps the fractional power defined when an intermediate iterate dips
// below zero near the right endpoint.
func NewLaneEmden() *Preset {
	return &Preset{
		Name:        "lane_emden",
		Description: "Lane-Emden polytrope of index 4.5, solving for the first zero",
		Build: func() (*bvp.Problem, error) {
			guess, err := cheb.NewFromFunc(func(x float64) float64 { return 1 - x*x }, 0, 1)
			if err != nil {
				return nil, err
			}
			return &bvp.Problem{
				Domain:    [2]float64{0, 1},
				Order:     2,
				NumParams: 1,
				Operator: func(x float64, u, p []float64) float64 {
					return x*u[2] + 2*u[1] + x*p[0]*math.Pow(u[0]+1e-12, laneEmdenIndex)
				},
				Left: []bvp.Condition{
					bvp.Dirichlet(0, 1),
					bvp.Neumann(0, 0),
				},
				Right:      []bvp.Condition{bvp.Dirichlet(1, 0)},
				Guess:      guess,
				ParamGuess: []float64{900},
			}, nil
		},
		Config:    bvp.DefaultConfig(),
		Reference: []float64{laneEmdenZero},
		Report: func(params []float64) []float64 {
			return []float64{math.Sqrt(params[0])}
		},
	}
}
