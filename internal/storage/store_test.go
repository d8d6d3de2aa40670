package storage

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/chebsolve/internal/bvp"
	"github.com/san-kum/chebsolve/internal/cheb"
)

func solveCooling(t *testing.T) (bvp.Config, *bvp.Result) {
	t.Helper()

	guess, err := cheb.NewFromFunc(func(x float64) float64 { return 37 - 17*x }, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	prob := &bvp.Problem{
		Domain:    [2]float64{0, 1},
		Order:     1,
		NumParams: 1,
		Operator: func(x float64, u, p []float64) float64 {
			return u[1] + 1e-3*p[0]*(u[0]-15)
		},
		Left:       []bvp.Condition{bvp.Dirichlet(0, 37)},
		Right:      []bvp.Condition{bvp.Dirichlet(1, 20)},
		Guess:      guess,
		ParamGuess: []float64{1000},
	}

	cfg := bvp.DefaultConfig()
	res, err := bvp.Solve(context.Background(), prob, cfg)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	return cfg, res
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, res := solveCooling(t)

	runID, err := st.Save("cooling", cfg, res, 50)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Problem != "cooling" {
		t.Errorf("expected problem 'cooling', got '%s'", meta.Problem)
	}
	if meta.Degree != res.Degree {
		t.Errorf("expected degree %d, got %d", res.Degree, meta.Degree)
	}
	if len(meta.Params) != 1 || meta.Params[0] != res.Params[0] {
		t.Errorf("expected params %v, got %v", res.Params, meta.Params)
	}

	xs, us, dus, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(xs) != 50 || len(us) != 50 || len(dus) != 50 {
		t.Errorf("expected 50 samples, got %d/%d/%d", len(xs), len(us), len(dus))
	}
}

func TestStoreRoundTripSolution(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, res := solveCooling(t)
	runID, err := st.Save("cooling", cfg, res, 50)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	u, err := st.LoadSolution(runID)
	if err != nil {
		t.Fatalf("load solution failed: %v", err)
	}
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if diff := math.Abs(u.At(x) - res.Solution.At(x)); diff > 1e-12 {
			t.Errorf("reloaded solution differs by %g at x=%g", diff, x)
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	cfg, res := solveCooling(t)
	if _, err := st.Save("cooling", cfg, res, 10); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, res := solveCooling(t)
	runID, err := st.Save("cooling", cfg, res, 10)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	for _, name := range []string{"metadata.json", "solution.csv", "coefficients.csv"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestExportJSON(t *testing.T) {
	cfg, res := solveCooling(t)
	path := filepath.Join(t.TempDir(), "run.json")

	if err := ExportJSON(path, "cooling", cfg, res, 25); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty export")
	}
}
