package bvp

import (
	"errors"
	"testing"

	"github.com/san-kum/chebsolve/internal/cheb"
)

func linearOp(x float64, u, p []float64) float64 { return u[1] - u[0] }

func TestProblemValidate(t *testing.T) {
	tests := []struct {
		name    string
		prob    Problem
		wantErr error
	}{
		{
			"well posed",
			Problem{
				Domain: [2]float64{0, 1}, Order: 1, Operator: linearOp,
				Left: []Condition{Dirichlet(0, 1)},
			},
			nil,
		},
		{
			"underdetermined",
			Problem{
				Domain: [2]float64{0, 1}, Order: 2, Operator: linearOp,
				Left: []Condition{Dirichlet(0, 0)},
			},
			ErrUnderdetermined,
		},
		{
			"overdetermined",
			Problem{
				Domain: [2]float64{0, 1}, Order: 1, Operator: linearOp,
				Left:  []Condition{Dirichlet(0, 0), Neumann(0, 0)},
				Right: []Condition{Dirichlet(1, 0)},
			},
			ErrOverdetermined,
		},
		{
			"parameter without pinning condition",
			Problem{
				Domain: [2]float64{0, 1}, Order: 1, NumParams: 1, Operator: linearOp,
				Left: []Condition{Dirichlet(0, 0)},
			},
			ErrUnderdetermined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prob.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestProblemValidateRejectsBadInputs(t *testing.T) {
	tests := []struct {
		name string
		prob Problem
	}{
		{"inverted domain", Problem{Domain: [2]float64{1, 0}, Order: 1, Operator: linearOp,
			Left: []Condition{Dirichlet(1, 0)}}},
		{"nil operator", Problem{Domain: [2]float64{0, 1}, Order: 1,
			Left: []Condition{Dirichlet(0, 0)}}},
		{"zero order", Problem{Domain: [2]float64{0, 1}, Operator: linearOp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.prob.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestProblemValidateGuessDomain(t *testing.T) {
	guess, err := cheb.NewConst(1, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	prob := Problem{
		Domain: [2]float64{0, 1}, Order: 1, Operator: linearOp,
		Left:  []Condition{Dirichlet(0, 1)},
		Guess: guess,
	}
	if err := prob.Validate(); err == nil {
		t.Error("expected domain mismatch error, got nil")
	}
}

func TestDiscretizationShape(t *testing.T) {
	prob := &Problem{
		Domain: [2]float64{-1, 1}, Order: 2, NumParams: 1,
		Operator: func(x float64, u, p []float64) float64 { return u[2] },
		Left:     []Condition{Dirichlet(-1, 0), Neumann(-1, 0)},
		Right:    []Condition{Dirichlet(1, 0)},
	}
	if err := prob.Validate(); err != nil {
		t.Fatal(err)
	}

	n := 16
	d := newDiscretization(prob, n)

	if got, want := d.size(), n+1+1; got != want {
		t.Errorf("size = %d, want %d", got, want)
	}
	// both dropped rows sit at the left end, where both left conditions live
	if d.keep[0] != 2 || d.keep[len(d.keep)-1] != n {
		t.Errorf("kept rows span [%d, %d], want [2, %d]", d.keep[0], d.keep[len(d.keep)-1], n)
	}
	if got, want := len(d.keep)+len(d.conds), d.size(); got != want {
		t.Errorf("residual rows = %d, want square system of %d", got, want)
	}
}
