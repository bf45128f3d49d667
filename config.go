package dashboard

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Weights distributes the health score across its four dimensions.
// They must sum to 1.0.
type Weights struct {
	Status float64 `yaml:"status"`
	Risk   float64 `yaml:"risk"`
	Budget float64 `yaml:"budget"`
	KPI    float64 `yaml:"kpi"`
}

// Config is the immutable configuration passed into every analytics
// computation. Computations never reach for globals, so two calls with the
// same snapshot and config are bit-reproducible.
type Config struct {
	// Weights of the four health dimensions, must sum to 1.0.
	Weights Weights `yaml:"weights"`
	// TrendTolerance is the relative change under which a KPI series is
	// classified Stable (0.05 means +/-5%).
	TrendTolerance float64 `yaml:"trend_tolerance"`
	// OverrunSaturation is the absolute variance ratio at which the budget
	// dimension bottoms out at 0 (0.5 means a 50% overrun scores 0).
	OverrunSaturation float64 `yaml:"overrun_saturation"`
	// LowerIsBetter marks metrics where a falling series is an improvement
	// (error rate, latency, cost per call).
	LowerIsBetter map[string]bool `yaml:"lower_is_better"`
	// MetricValue optionally maps a metric name to the monetary value of one
	// unit of that metric, used to derive the value generated for ROI.
	MetricValue map[string]float64 `yaml:"metric_value"`
	// NoDataNeutral controls the empty-set policy: when true (the default)
	// a project with no risks, budgets or KPIs scores neutral on those
	// dimensions instead of being penalized.
	NoDataNeutral bool `yaml:"no_data_neutral"`
}

// DefaultConfig returns the documented default configuration: equal weights
// of 0.25 per dimension, a 5% trend tolerance band, a 50% overrun
// saturation, and the neutral no-data policy.
func DefaultConfig() Config {
	return Config{
		Weights:           Weights{Status: 0.25, Risk: 0.25, Budget: 0.25, KPI: 0.25},
		TrendTolerance:    0.05,
		OverrunSaturation: 0.50,
		NoDataNeutral:     true,
	}
}

// Validate rejects configurations before any computation uses them.
func (c Config) Validate() error {
	sum := c.Weights.Status + c.Weights.Risk + c.Weights.Budget + c.Weights.KPI
	const epsilon = 1e-9
	if math.Abs(sum-1.0) > epsilon {
		return fmt.Errorf("health weights must sum to 1.0, got %g", sum)
	}
	if c.Weights.Status < 0 || c.Weights.Risk < 0 || c.Weights.Budget < 0 || c.Weights.KPI < 0 {
		return fmt.Errorf("health weights must be non-negative")
	}
	if c.TrendTolerance < 0 {
		return fmt.Errorf("trend tolerance must be non-negative, got %g", c.TrendTolerance)
	}
	if c.OverrunSaturation <= 0 {
		return fmt.Errorf("overrun saturation must be positive, got %g", c.OverrunSaturation)
	}
	return nil
}

// LoadConfig reads a YAML configuration, filling absent fields from the
// defaults, and validates the result.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
