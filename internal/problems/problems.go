package problems

import (
	"fmt"
	"sort"

	"github.com/san-kum/chebsolve/internal/bvp"
)

// Preset bundles a named boundary-value problem with the solver settings
// and reference values used to check it.
type Preset struct {
	Name        string
	Description string
	Build       func() (*bvp.Problem, error)
	Config      bvp.Config
	// Reference holds known parameter values, nil when no closed form or
	// published value exists.
	Reference []float64
	// Report converts the solver's parameter vector to the reported
	// values; nil reports the parameters as solved. Presets that
	// reparameterize for solvability convert back here.
	Report func(params []float64) []float64
}

// Reported maps solved parameters to the values the preset reports.
func (p *Preset) Reported(params []float64) []float64 {
	if p.Report == nil {
		return params
	}
	return p.Report(params)
}

type Registry struct {
	presets map[string]func() *Preset
}

func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]func() *Preset)}

	r.presets["boundary_layer"] = NewBoundaryLayer
	r.presets["cooling"] = NewCooling
	r.presets["lane_emden"] = NewLaneEmden
	r.presets["carrier"] = NewCarrier
	r.presets["bratu"] = NewBratu

	return r
}

func (r *Registry) Get(name string) (*Preset, error) {
	fn, ok := r.presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
