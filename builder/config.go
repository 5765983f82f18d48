// SPDX-License-Identifier: MIT
// Package: cvrp/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil  (pure/deterministic unless seeded)
//   • costFn   = DefaultEdgeCost
//   • demandFn = DefaultDemand

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Edge cost generator.
	costFn CostFn
	// Demand generator.
	demandFn DemandFn
	// Instance name.
	name string
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		costFn:   ConstantFn(DefaultEdgeCost),
		demandFn: DemandFn(ConstantFn(DefaultDemand)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cost draws one edge cost.
func (c builderConfig) cost() int { return c.costFn(c.rng) }
