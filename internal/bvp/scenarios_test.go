package bvp_test

import (
	"context"
	"math"
	"testing"

	"github.com/onsi/gomega"

	"github.com/san-kum/chebsolve/internal/bvp"
	"github.com/san-kum/chebsolve/internal/cheb"
)

// A singularly perturbed linear ODE with an unknown offset: the parameter a
// is pinned by a third boundary condition.
func TestBoundaryLayerWithParameter(t *testing.T) {
	g := gomega.NewWithT(t)

	prob := &bvp.Problem{
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
	}

	res, err := bvp.Solve(context.Background(), prob, bvp.DefaultConfig())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	a := res.Params[0]
	u := res.Solution
	du := u.Deriv()
	d2u := du.Deriv()

	g.Expect(u.At(-1)).To(gomega.BeNumerically("~", -a-1, 1e-6))
	g.Expect(du.At(-1)).To(gomega.BeNumerically("~", 0, 1e-6))
	g.Expect(u.At(1)).To(gomega.BeNumerically("~", 1, 1e-6))

	for _, x := range cheb.Points(res.Degree, -1, 1) {
		r := 1e-3*d2u.At(x) + x*u.At(x) + a
		g.Expect(r).To(gomega.BeNumerically("~", 0, 1e-5), "residual at x=%g", x)
	}
}

// Newton's law of cooling with an unknown rate constant T: two Dirichlet
// conditions pin down a first-order equation plus one parameter.
func TestCoolingParameterRecovery(t *testing.T) {
	g := gomega.NewWithT(t)

	const (
		k = 1e-3
		S = 15.0
	)
	guess, err := cheb.NewFromFunc(func(x float64) float64 { return 37 - 17*x }, 0, 1)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	prob := &bvp.Problem{
		Domain:    [2]float64{0, 1},
		Order:     1,
		NumParams: 1,
		Operator: func(x float64, u, p []float64) float64 {
			return u[1] + k*p[0]*(u[0]-S)
		},
		Left:       []bvp.Condition{bvp.Dirichlet(0, 37)},
		Right:      []bvp.Condition{bvp.Dirichlet(1, 20)},
		Guess:      guess,
		ParamGuess: []float64{1000},
	}

	res, err := bvp.Solve(context.Background(), prob, bvp.DefaultConfig())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	// closed form: y(x) = S + 22 exp(-kTx), so kT = ln(22/5)
	wantT := math.Log(22.0/5.0) / k
	g.Expect(res.Params[0]).To(gomega.BeNumerically("~", wantT, 1e-4))
	g.Expect(res.Solution.At(0)).To(gomega.BeNumerically("~", 37, 1e-6))
	g.Expect(res.Solution.At(1)).To(gomega.BeNumerically("~", 20, 1e-6))

	for _, x := range []float64{0.1, 0.5, 0.9} {
		want := S + 22*math.Exp(-k*res.Params[0]*x)
		g.Expect(res.Solution.At(x)).To(gomega.BeNumerically("~", want, 1e-6))
	}
}

// Lane-Emden with polytropic index 4.5, rescaled to [0,1]: the unknown
// parameter is the first zero of the solution on the original axis. The
// zero enters the equation only through its square, which leaves its
// sign undetermined, so the solve is for w = zero^2 and the zero is
// recovered as the positive root.
func TestLaneEmdenFirstZero(t *testing.T) {
	g := gomega.NewWithT(t)

	const (
		index = 4.5
		ref   = 31.836463244694285264
	)
	guess, err := cheb.NewFromFunc(func(x float64) float64 { return 1 - x*x }, 0, 1)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	prob := &bvp.Problem{
		Domain:    [2]float64{0, 1},
		Order:     2,
		NumParams: 1,
		Operator: func(x float64, u, p []float64) float64 {
			return x*u[2] + 2*u[1] + x*p[0]*math.Pow(u[0]+1e-12, index)
		},
		Left: []bvp.Condition{
			bvp.Dirichlet(0, 1),
			bvp.Neumann(0, 0),
		},
		Right:      []bvp.Condition{bvp.Dirichlet(1, 0)},
		Guess:      guess,
		ParamGuess: []float64{900},
	}

	res, err := bvp.Solve(context.Background(), prob, bvp.DefaultConfig())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	g.Expect(res.Params[0]).To(gomega.BeNumerically(">", 0))
	g.Expect(math.Sqrt(res.Params[0])).To(gomega.BeNumerically("~", ref, 1e-6))
	g.Expect(res.Solution.At(0)).To(gomega.BeNumerically("~", 1, 1e-8))
	g.Expect(res.Solution.At(1)).To(gomega.BeNumerically("~", 0, 1e-8))
	g.Expect(res.Solution.Deriv().At(0)).To(gomega.BeNumerically("~", 0, 1e-7))
}
