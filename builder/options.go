// SPDX-License-Identifier: MIT
// Package: cvrp/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn overrides the per-edge cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}

	return func(c *builderConfig) { c.costFn = fn }
}

// WithDemandFn overrides the per-location demand generator. Panics on nil.
func WithDemandFn(fn DemandFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDemandFn(nil)")
	}

	return func(c *builderConfig) { c.demandFn = fn }
}

// WithName sets the instance name.
func WithName(name string) BuilderOption {
	return func(c *builderConfig) { c.name = name }
}

// WithConstantCost sets every edge cost to w.
func WithConstantCost(w int) BuilderOption { return WithCostFn(ConstantFn(w)) }

// WithUniformCost draws edge costs uniformly in [min, max].
func WithUniformCost(min, max int) BuilderOption { return WithCostFn(UniformFn(min, max)) }

// WithUniformDemand draws demands uniformly in [min, max].
func WithUniformDemand(min, max int) BuilderOption {
	return WithDemandFn(DemandFn(UniformFn(min, max)))
}
