// Package routes turns a location list, a demand map, a vehicle capacity and
// a core.Graph into the candidate route set searched by package cover.
//
// Every non-empty subset of the n input locations is enumerated as a bitmask
// i ∈ [1, 2ⁿ−1]. Bit j selects locations[j]; the route visits the selected
// locations in ascending bit order, which is the order they appear in the
// input list. A subset is kept iff
//
//  1. its total demand is ≤ capacity, and
//  2. the ascending listing passes the configured validity check.
//
// Alternate orderings of the same subset are never tried: a subset that is
// feasible only in some other permutation is excluded. Callers that need
// permutation-aware candidates must reorder the input list themselves.
//
// Validity policies:
//
//   - TourValidity (default): core.Graph.IsTourValid, depot hops included;
//     each kept route is priced with core.Graph.RouteCost.
//   - PairValidity: core.Graph.IsRouteValid on inner pairs only, priced with
//     core.Graph.RouteCostLenient. This is the legacy compatibility policy,
//     including routes whose depot hops are missing and report a partial cost.
//
// Each Route carries its precomputed Cost and its location bitmask, so the
// exact-cover search never touches the graph again.
//
// Complexity: O(2ⁿ · n) time; O(|result| · route length) space. Instances
// beyond n ≈ 20 are dominated by this precomputation. The opt-in guards
// Options.MaxLocations and Options.MaxCandidates fail fast with
// ErrSearchSpaceTooLarge; both are off by default.
package routes
