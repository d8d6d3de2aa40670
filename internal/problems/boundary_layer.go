package problems

import (
	"github.com/san-kum/chebsolve/internal/bvp"
	"github.com/san-kum/chebsolve/internal/cheb"
)

// NewBoundaryLayer is a singularly perturbed linear equation with an unknown
// forcing offset a:
//
//	0.001 u'' + x u + a = 0,  u(-1) = -a-1,  u'(-1) = 0,  u(1) = 1
//
// The small diffusion coefficient forces a thin layer near x = 0, so the
// resolved expansion ends up with a few hundred coefficients.
func NewBoundaryLayer() *Preset {
	return &Preset{
		Name:        "boundary_layer",
		Description: "singularly perturbed linear ODE with unknown offset",
		Build: func() (*bvp.Problem, error) {
			return &bvp.Problem{
				Domain:    [2]float64{-1, 1},
				Order:     2,
				NumParams: 1,
				Operator: func(x float64, u, p []float64) float64 {
					return 1e-3*u[2] + x*u[0] + p[0]
				},
				Left: []bvp.Condition{
					func(u *cheb.Func, p []float64) float64 { return u.At(-1) + p[0] + 1 },
					bvp.Neumann(-1, 0),
				},
				Right: []bvp.Condition{bvp.Dirichlet(1, 1)},
			}, nil
		},
		Config: bvp.DefaultConfig(),
	}
}
