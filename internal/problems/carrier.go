package problems

import (
	"github.com/san-kum/chebsolve/internal/bvp"
	"github.com/san-kum/chebsolve/internal/cheb"
)

// NewCarrier is Carrier's nonlinear equation
//
//	0.01 u'' + 2 (1 - x^2) u + u^2 = 1,  u(-1) = u(1) = 0
//
// which has many solutions. The parabolic guess selects one of the
// oscillatory branches; changing the guess lands on another.
func NewCarrier() *Preset {
	return &Preset{
		Name:        "carrier",
		Description: "Carrier equation, nonlinear with multiple solutions",
		Build: func() (*bvp.Problem, error) {
			guess, err := cheb.NewFromFunc(func(x float64) float64 { return 2 * (x*x - 1) }, -1, 1)
			if err != nil {
				return nil, err
			}
			return &bvp.Problem{
				Domain: [2]float64{-1, 1},
				Order:  2,
				Operator: func(x float64, u, p []float64) float64 {
					return 0.01*u[2] + 2*(1-x*x)*u[0] + u[0]*u[0] - 1
				},
				Left:  []bvp.Condition{bvp.Dirichlet(-1, 0)},
				Right: []bvp.Condition{bvp.Dirichlet(1, 0)},
				Guess: guess,
			}, nil
		},
		Config: bvp.Config{
			Tolerance:     bvp.DefaultTolerance,
			MaxIterations: 60,
		},
	}
}
