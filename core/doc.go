// Package core provides the directed, weighted adjacency store used by the
// CVRP solver, together with the depot convention shared by every route.
//
// The Graph G = (V,E) is intentionally small:
//
//   - Vertices are integer location ids; id 0 is the depot (Depot).
//   - Edges are directed (origin → destination) with a non-negative integer cost.
//     An asymmetric instance simply stores different costs per direction, and
//     a missing edge means "unreachable".
//   - Each origin keeps its outgoing arcs in insertion order. Duplicate edges are
//     stored as-is; every lookup returns the first match in insertion order.
//   - A single sync.RWMutex guards the adjacency so that instances may be loaded
//     from several goroutines. Once the solver starts, the Graph is read-only and
//     is shared by all search workers without copying.
//
// Depot convention:
//
//	A route never lists the depot. WithDepot(route) materialises the implicit
//	hops, turning [3 5] into [0 3 5 0]. Both cost and validity go through it:
//
//	  IsRouteValid(route)   – inner pairs only (the pair filter).
//	  IsTourValid(route)    – IsRouteValid(WithDepot(route)).
//	  RouteCost(route)      – sum over WithDepot(route); a missing hop is ErrMissingEdge.
//	  RouteCostLenient(r)   – sum over WithDepot(route); missing hops add nothing.
//
// RouteCostLenient keeps the legacy pricing rule, which lets an unvalidated
// route report a partial cost. It exists for compatibility runs only; the
// solver's default path validates tours with IsTourValid and prices them with
// RouteCost, so "no edge" means the same thing on both sides.
//
// Complexity:
//
//	AddEdge        O(1) amortised
//	Cost, HasEdge  O(out-degree(from))
//	RouteCost      O(len(route) · max out-degree)
//	Edges          O(E log V)
package core
