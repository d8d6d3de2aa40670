package problems

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/chebsolve/internal/bvp"
)

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	names := r.List()
	want := []string{"boundary_layer", "bratu", "carrier", "cooling", "lane_emden"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("heat_death"); err == nil {
		t.Fatal("expected error for unknown problem")
	}
}

func TestPresetsAreWellPosed(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.List() {
		preset, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		prob, err := preset.Build()
		if err != nil {
			t.Fatalf("%s: Build: %v", name, err)
		}
		if err := prob.Validate(); err != nil {
			t.Errorf("%s: Validate: %v", name, err)
		}
	}
}

func solvePreset(t *testing.T, name string) (*Preset, *bvp.Result) {
	t.Helper()
	preset, err := NewRegistry().Get(name)
	if err != nil {
		t.Fatalf("Get(%q): %v", name, err)
	}
	prob, err := preset.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	res, err := bvp.Solve(context.Background(), prob, preset.Config)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return preset, res
}

func TestCoolingReference(t *testing.T) {
	preset, res := solvePreset(t, "cooling")
	if diff := math.Abs(res.Params[0] - preset.Reference[0]); diff > 1e-4 {
		t.Errorf("T = %.10g, want %.10g (diff %g)", res.Params[0], preset.Reference[0], diff)
	}
}

func TestLaneEmdenReference(t *testing.T) {
	preset, res := solvePreset(t, "lane_emden")
	got := preset.Reported(res.Params)[0]
	if got <= 0 {
		t.Fatalf("reported zero = %g, want positive", got)
	}
	if diff := math.Abs(got - preset.Reference[0]); diff > 1e-6 {
		t.Errorf("v = %.18g, want %.18g (diff %g)", got, preset.Reference[0], diff)
	}
}

func TestBratuReference(t *testing.T) {
	preset, res := solvePreset(t, "bratu")
	if diff := math.Abs(res.Params[0] - preset.Reference[0]); diff > 1e-8 {
		t.Errorf("lambda = %.12g, want %.12g (diff %g)", res.Params[0], preset.Reference[0], diff)
	}
	if got := res.Solution.At(0.5); math.Abs(got-1) > 1e-8 {
		t.Errorf("u(1/2) = %g, want 1", got)
	}
}

func TestCarrierSolves(t *testing.T) {
	_, res := solvePreset(t, "carrier")
	u := res.Solution
	d2u := u.Deriv().Deriv()
	for _, x := range []float64{-0.9, -0.3, 0.2, 0.7} {
		r := 0.01*d2u.At(x) + 2*(1-x*x)*u.At(x) + u.At(x)*u.At(x) - 1
		if math.Abs(r) > 1e-5 {
			t.Errorf("residual %g at x=%g", r, x)
		}
	}
	if math.Abs(u.At(-1)) > 1e-8 || math.Abs(u.At(1)) > 1e-8 {
		t.Errorf("boundary values %g, %g, want 0", u.At(-1), u.At(1))
	}
}
