// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: Depot convention (WithDepot) and the route-level queries built on it:
//       IsRouteValid, IsTourValid, RouteCost, RouteCostLenient.

package core

import "fmt"

// WithDepot returns a new slice [Depot, route..., Depot].
// The input slice is never modified.
//
// Complexity: O(len(route)).
func WithDepot(route []int) []int {
	out := make([]int, 0, len(route)+2)
	out = append(out, Depot)
	out = append(out, route...)

	return append(out, Depot)
}

// IsRouteValid reports whether every consecutive pair of route has a stored
// edge. Depot hops are not checked. Routes of length ≤ 1 are trivially valid.
//
// Complexity: O(len(route) · max out-degree).
func (g *Graph) IsRouteValid(route []int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i := 0; i+1 < len(route); i++ {
		if _, ok := g.lookup(route[i], route[i+1]); !ok {
			return false
		}
	}

	return true
}

// IsTourValid reports whether the closed tour depot→route→depot is fully
// edge-connected, i.e. IsRouteValid(WithDepot(route)).
func (g *Graph) IsTourValid(route []int) bool {
	return g.IsRouteValid(WithDepot(route))
}

// RouteCost returns the cost of depot → route[0] → … → route[last] → depot.
// The first missing hop aborts with an error wrapping ErrMissingEdge.
//
// Complexity: O(len(route) · max out-degree).
func (g *Graph) RouteCost(route []int) (int, error) {
	tour := WithDepot(route)

	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for i := 0; i+1 < len(tour); i++ {
		c, ok := g.lookup(tour[i], tour[i+1])
		if !ok {
			return 0, fmt.Errorf("hop %d->%d: %w", tour[i], tour[i+1], ErrMissingEdge)
		}
		total += c
	}

	return total, nil
}

// RouteCostLenient prices the closed tour like RouteCost but silently skips
// hops without an edge, so an invalid route reports a partial cost.
// Only compatibility runs should call it.
func (g *Graph) RouteCostLenient(route []int) int {
	tour := WithDepot(route)

	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for i := 0; i+1 < len(tour); i++ {
		if c, ok := g.lookup(tour[i], tour[i+1]); ok {
			total += c
		}
	}

	return total
}
