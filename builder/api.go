// SPDX-License-Identifier: MIT
// Package: cvrp/builder
//
// api.go - public entry point of the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildInstance(n, bopts, cons...).
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical instances.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cvrp/core"
	"github.com/katalvlaran/cvrp/instance"
)

// Constructor adds edges to in using the resolved builderConfig.
// Constructors validate early, never panic and emit edges in a stable order.
type Constructor func(in *instance.Instance, cfg builderConfig) error

// BuildInstance creates an instance with n locations (ids 1..n, depot 0),
// draws one demand per location in ascending id order and applies cons in order.
//
// Errors: ErrTooFewLocations for n < 1, ErrConstructFailed for a nil
// constructor, and any constructor error wrapped as "BuildInstance: %w".
//
// Complexity: O(n) plus the cost of each constructor.
func BuildInstance(n int, bopts []BuilderOption, cons ...Constructor) (*instance.Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("BuildInstance: n=%d < 1: %w", n, ErrTooFewLocations)
	}
	cfg := newBuilderConfig(bopts...)

	in := &instance.Instance{
		Name:   cfg.name,
		Nodes:  n + 1,
		Demand: make(map[int]int, n),
	}
	for id := 1; id <= n; id++ {
		in.Demand[id] = cfg.demandFn(cfg.rng)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildInstance: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(in, cfg); err != nil {
			return nil, fmt.Errorf("BuildInstance: %w", err)
		}
	}

	return in, nil
}

// addEdge appends one directed edge.
func addEdge(in *instance.Instance, from, to, cost int) {
	in.Edges = append(in.Edges, core.Edge{From: from, To: to, Cost: cost})
}

// addDepotLinks adds 0→i and i→0 for every location, i ascending.
func addDepotLinks(in *instance.Instance, cfg builderConfig) {
	for i := 1; i < in.Nodes; i++ {
		addEdge(in, core.Depot, i, cfg.cost())
		addEdge(in, i, core.Depot, cfg.cost())
	}
}
