package problems

import (
	"math"

	"github.com/san-kum/chebsolve/internal/bvp"
	"github.com/san-kum/chebsolve/internal/cheb"
)

// bratuLambda is the eigenvalue on the lower branch whose solution peaks at
// exactly 1. From the closed form u(x) = 2 ln(cosh(b/2)/cosh(b(x-1/2))) with
// cosh(b/2) = sqrt(e), the eigenvalue is 2 b^2 / e.
func bratuLambda() float64 {
	b := 2 * math.Acosh(math.Exp(0.5))
	return 2 * b * b * math.Exp(-1)
}

// NewBratu treats the Bratu eigenvalue as the unknown parameter, pinned by
// an interior amplitude condition:
//
//	u'' + lambda e^u = 0,  u(0) = u(1) = 0,  u(1/2) = 1
func NewBratu() *Preset {
	return &Preset{
		Name:        "bratu",
		Description: "Bratu equation with eigenvalue pinned by interior amplitude",
		Build: func() (*bvp.Problem, error) {
			guess, err := cheb.NewFromFunc(func(x float64) float64 { return 4 * x * (1 - x) }, 0, 1)
			if err != nil {
				return nil, err
			}
			return &bvp.Problem{
				Domain:    [2]float64{0, 1},
				Order:     2,
				NumParams: 1,
				Operator: func(x float64, u, p []float64) float64 {
					return u[2] + p[0]*math.Exp(u[0])
				},
				Left:  []bvp.Condition{bvp.Dirichlet(0, 0)},
				Right: []bvp.Condition{bvp.Dirichlet(1, 0)},
				Interior: []bvp.Condition{
					func(u *cheb.Func, p []float64) float64 { return u.At(0.5) - 1 },
				},
				Guess:      guess,
				ParamGuess: []float64{3},
			}, nil
		},
		Config:    bvp.DefaultConfig(),
		Reference: []float64{bratuLambda()},
	}
}
