package routes

import (
	"fmt"

	"github.com/katalvlaran/cvrp/core"
)

// Generate enumerates every non-empty subset of locations (bitmask order,
// stops in ascending bit position) and keeps those that respect the capacity
// and the configured validity policy.
//
// Contracts:
//   - locations must not contain core.Depot or duplicates.
//   - len(locations) ≤ 62; larger inputs return ErrTooManyLocations.
//   - A location missing from demand has demand 0.
//
// Errors: ErrNilGraph, ErrBadCapacity, ErrDepotInLocations,
// ErrDuplicateLocation, ErrTooManyLocations, ErrSearchSpaceTooLarge.
//
// Complexity: O(2ⁿ · n) time, O(|result| · n) space.
func Generate(locations []int, demand map[int]int, g *core.Graph, opts Options) (*Set, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if opts.Capacity < 0 {
		return nil, ErrBadCapacity
	}
	if err := validateLocations(locations); err != nil {
		return nil, err
	}

	n := len(locations)
	if n > maxMaskWidth {
		return nil, fmt.Errorf("n=%d > %d: %w", n, maxMaskWidth, ErrTooManyLocations)
	}
	if opts.MaxLocations > 0 && n > opts.MaxLocations {
		return nil, fmt.Errorf("n=%d > max=%d: %w", n, opts.MaxLocations, ErrSearchSpaceTooLarge)
	}

	set := NewSet(locations, nil)

	// Per-location demand in bit order avoids map lookups in the hot loop.
	dem := make([]int, n)
	for j, id := range locations {
		dem[j] = demand[id]
	}

	var (
		mask  uint64
		limit = uint64(1) << uint(n)
		stops = make([]int, 0, n)
	)
	for mask = 1; mask < limit; mask++ {
		stops = stops[:0]
		load := 0
		for j := 0; j < n; j++ {
			if mask&(uint64(1)<<uint(j)) != 0 {
				stops = append(stops, locations[j])
				load += dem[j]
			}
		}
		if load > opts.Capacity {
			continue
		}

		r, ok := price(g, stops, opts.Validity)
		if !ok {
			continue
		}
		r.Mask = mask
		r.Demand = load
		set.Routes = append(set.Routes, r)

		if opts.MaxCandidates > 0 && len(set.Routes) > opts.MaxCandidates {
			return nil, fmt.Errorf("more than %d candidate routes: %w", opts.MaxCandidates, ErrSearchSpaceTooLarge)
		}
	}

	return set, nil
}

// price validates stops under policy v and returns the priced Route.
// The returned Route owns a fresh copy of stops.
func price(g *core.Graph, stops []int, v Validity) (Route, bool) {
	switch v {
	case PairValidity:
		if !g.IsRouteValid(stops) {
			return Route{}, false
		}

		return Route{Stops: append([]int(nil), stops...), Cost: g.RouteCostLenient(stops)}, true
	default:
		if !g.IsTourValid(stops) {
			return Route{}, false
		}
		c, err := g.RouteCost(stops)
		if err != nil {
			return Route{}, false
		}

		return Route{Stops: append([]int(nil), stops...), Cost: c}, true
	}
}

// CheckCapacity reports whether the total demand of stops is ≤ capacity.
func CheckCapacity(stops []int, demand map[int]int, capacity int) bool {
	total := 0
	for _, s := range stops {
		total += demand[s]
	}

	return total <= capacity
}

// validateLocations rejects the depot and duplicate ids.
func validateLocations(locations []int) error {
	seen := make(map[int]struct{}, len(locations))
	for _, id := range locations {
		if id == core.Depot {
			return ErrDepotInLocations
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("id %d: %w", id, ErrDuplicateLocation)
		}
		seen[id] = struct{}{}
	}

	return nil
}
