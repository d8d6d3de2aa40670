package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/chebsolve/internal/bvp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Problem != "cooling" {
		t.Errorf("expected problem cooling, got %s", cfg.Problem)
	}
	if cfg.Tolerance <= 0 {
		t.Error("tolerance should be positive")
	}
	if cfg.MaxDegree < cfg.MinDegree {
		t.Error("max_degree should not be below min_degree")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Problem = "lane_emden"
	cfg.Tolerance = 1e-8
	cfg.Damping = "none"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Problem != "lane_emden" {
		t.Errorf("expected problem lane_emden, got %s", loaded.Problem)
	}
	if loaded.Tolerance != 1e-8 {
		t.Errorf("expected tolerance 1e-8, got %g", loaded.Tolerance)
	}
	if loaded.Damping != "none" {
		t.Errorf("expected damping none, got %s", loaded.Damping)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("problem: bratu\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Problem != "bratu" {
		t.Errorf("expected problem bratu, got %s", cfg.Problem)
	}
	if cfg.MaxIterations != DefaultMaxIterations {
		t.Errorf("expected default max_iterations, got %d", cfg.MaxIterations)
	}
}

func TestSolverConfig(t *testing.T) {
	cfg := DefaultConfig()
	sc, err := cfg.SolverConfig()
	if err != nil {
		t.Fatalf("SolverConfig: %v", err)
	}
	if sc.Damping != bvp.DampLineSearch {
		t.Errorf("expected line search damping, got %v", sc.Damping)
	}

	cfg.Damping = "quadratic"
	if _, err := cfg.SolverConfig(); err == nil {
		t.Error("expected error for unknown damping")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lane_emden", "undamped")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Damping != "none" {
		t.Errorf("expected damping none, got %s", cfg.Damping)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("cooling", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "default"); cfg != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("boundary_layer"); len(presets) == 0 {
		t.Error("expected presets for boundary_layer")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent problem")
	}
}
