// Package config defines default configuration for the planner.
package config

import (
	"fmt"

	"github.com/perchworks/restock/pkg/order"
)

// PlanConfig defines the knobs of one planning run.
type PlanConfig struct {
	// OrderSize is the fixed total number of units in the order.
	OrderSize int `mapstructure:"order_size"`
	// Policy selects the order-building strategy, or "all" to compare.
	Policy string `mapstructure:"policy"`
	// Seed makes every run reproducible.
	Seed int64 `mapstructure:"seed"`
	// Pseudocount controls how tightly the prior hugs the industry mix.
	// Chosen by prior predictive simulation: small enough to allow lopsided
	// orders, large enough that they are rare.
	Pseudocount float64 `mapstructure:"pseudocount"`
	// SimSize is the number of posterior worlds simulated.
	SimSize int `mapstructure:"sim_size"`
	// MaxDist bounds the Optimized search neighborhood.
	MaxDist int `mapstructure:"max_dist"`
}

// DefaultPlanConfig returns the planning defaults.
func DefaultPlanConfig() PlanConfig {
	return PlanConfig{
		OrderSize:   35,
		Policy:      "optimized",
		Seed:        42,
		Pseudocount: 35,
		SimSize:     10000,
		MaxDist:     2,
	}
}

// Validate rejects configurations no policy can satisfy.
func (c PlanConfig) Validate() error {
	if c.OrderSize <= 0 {
		return fmt.Errorf("%w: order_size must be positive, got %d", order.ErrConfiguration, c.OrderSize)
	}
	if c.SimSize <= 0 {
		return fmt.Errorf("%w: sim_size must be positive, got %d", order.ErrConfiguration, c.SimSize)
	}
	if c.Pseudocount <= 0 {
		return fmt.Errorf("%w: pseudocount must be positive, got %v", order.ErrConfiguration, c.Pseudocount)
	}
	if c.MaxDist < 0 {
		return fmt.Errorf("%w: max_dist cannot be negative, got %d", order.ErrConfiguration, c.MaxDist)
	}
	return nil
}
