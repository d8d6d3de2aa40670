package config

var Presets = map[string]map[string]*Config{
	"boundary_layer": {
		"default": {
			Problem: "boundary_layer", Tolerance: 1e-10, MaxIterations: 30, MaxDegree: 4096,
		},
		"coarse": {
			Problem: "boundary_layer", Tolerance: 1e-6, MaxIterations: 30, MaxDegree: 1024,
		},
	},
	"cooling": {
		"default": {
			Problem: "cooling", Tolerance: 1e-10, MaxIterations: 30,
		},
	},
	"lane_emden": {
		"default": {
			Problem: "lane_emden", Tolerance: 1e-10, MaxIterations: 40,
		},
		"undamped": {
			Problem: "lane_emden", Tolerance: 1e-10, MaxIterations: 40, Damping: "none",
		},
	},
	"carrier": {
		"default": {
			Problem: "carrier", Tolerance: 1e-10, MaxIterations: 60,
		},
	},
	"bratu": {
		"default": {
			Problem: "bratu", Tolerance: 1e-10, MaxIterations: 30,
		},
	},
}

func GetPreset(problem, preset string) *Config {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := problemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(problem string) []string {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(problemPresets))
	for name := range problemPresets {
		names = append(names, name)
	}
	return names
}
