package problems

import (
	"math"

	"github.com/san-kum/chebsolve/internal/bvp"
	"github.com/san-kum/chebsolve/internal/cheb"
)

const (
	coolingRate    = 1e-3
	coolingAmbient = 15.0
)

// NewCooling recovers the time constant T in Newton's law of cooling
//
//	y' + k T (y - S) = 0,  y(0) = 37,  y(1) = 20
//
// with k = 1e-3 and ambient temperature S = 15. The closed form gives
// T = ln(22/5)/k, which Reference records.
func NewCooling() *Preset {
	return &Preset{
		Name:        "cooling",
		Description: "cooling law with unknown time constant",
		Build: func() (*bvp.Problem, error) {
			guess, err := cheb.NewFromFunc(func(x float64) float64 { return 37 - 17*x }, 0, 1)
			if err != nil {
				return nil, err
			}
			return &bvp.Problem{
				Domain:    [2]float64{0, 1},
				Order:     1,
				NumParams: 1,
				Operator: func(x float64, u, p []float64) float64 {
					return u[1] + coolingRate*p[0]*(u[0]-coolingAmbient)
				},
				Left:       []bvp.Condition{bvp.Dirichlet(0, 37)},
				Right:      []bvp.Condition{bvp.Dirichlet(1, 20)},
				Guess:      guess,
				ParamGuess: []float64{1000},
			}, nil
		},
		Config:    bvp.DefaultConfig(),
		Reference: []float64{math.Log(22.0/5.0) / coolingRate},
	}
}
