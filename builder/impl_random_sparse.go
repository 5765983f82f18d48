// SPDX-License-Identifier: MIT
// Package: cvrp/builder
//
// impl_random_sparse.go - RandomSparse(p) constructor.
//
// Model:
//   - Depot links 0→i and i→0 are always present, so every singleton route
//     is feasible.
//   - Each ordered location pair (i,j), i≠j, is included independently with
//     probability p.
//
// Determinism:
//   - Stable trial order: i asc, j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cvrp/instance"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor sampling location-to-location edges
// with independent probability p.
//
// Errors: ErrInvalidProbability for p outside [0,1]; ErrNeedRandSource when
// 0 < p < 1 and no RNG is configured.
func RandomSparse(p float64) Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addDepotLinks(in, cfg)

		var i, j int
		for i = 1; i < in.Nodes; i++ {
			for j = 1; j < in.Nodes; j++ {
				if i == j {
					continue
				}
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					addEdge(in, i, j, cfg.cost())
				}
			}
		}

		return nil
	}
}
