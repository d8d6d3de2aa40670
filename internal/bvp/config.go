package bvp

import "fmt"

// Damping selects the Newton step damping strategy.
type Damping int

const (
	// DampLineSearch halves the step while the residual norm fails to
	// decrease. This is the default.
	DampLineSearch Damping = iota

	// DampNone always takes the full Newton step.
	DampNone
)

func (d Damping) String() string {
	switch d {
	case DampLineSearch:
		return "linesearch"
	case DampNone:
		return "none"
	}
	return fmt.Sprintf("damping(%d)", int(d))
}

// ParseDamping maps a strategy name to its Damping value.
func ParseDamping(s string) (Damping, error) {
	switch s {
	case "linesearch", "":
		return DampLineSearch, nil
	case "none":
		return DampNone, nil
	}
	return 0, fmt.Errorf("bvp: unknown damping strategy %q", s)
}

const (
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 30
	DefaultMinDegree     = 16
	DefaultMaxDegree     = 1 << 12
	DefaultChopTolerance = 1e-13
)

// Config holds solver options. Zero fields are replaced by the package
// defaults, so the zero Config is usable.
type Config struct {
	// Tolerance is the Newton convergence tolerance, applied relative to
	// the iterate magnitude with an absolute floor near machine precision.
	Tolerance float64

	// MaxIterations caps Newton iterations per collocation grid.
	MaxIterations int

	// MinDegree and MaxDegree bound the collocation grid refinement.
	MinDegree int
	MaxDegree int

	// ChopTolerance is the relative coefficient decay required of the
	// solution before refinement stops.
	ChopTolerance float64

	Damping Damping
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		MinDegree:     DefaultMinDegree,
		MaxDegree:     DefaultMaxDegree,
		ChopTolerance: DefaultChopTolerance,
		Damping:       DampLineSearch,
	}
}

func (c Config) withDefaults() Config {
	if c.Tolerance <= 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.MinDegree <= 0 {
		c.MinDegree = DefaultMinDegree
	}
	if c.MaxDegree < c.MinDegree {
		c.MaxDegree = DefaultMaxDegree
	}
	if c.ChopTolerance <= 0 {
		c.ChopTolerance = DefaultChopTolerance
	}
	return c
}
