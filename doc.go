// Package cvrp is an exhaustive solver for small Capacitated Vehicle Routing
// instances: a depot, a handful of locations with integer demands, directed
// weighted edges and one vehicle capacity.
//
// What it does:
//
//	Enumerates every capacity-feasible, graph-valid route and then searches
//	every combination of routes for the cheapest one that visits every
//	location. The search is exact, exponential and meant for instances of
//	roughly a dozen locations; it doubles as a reference oracle for
//	heuristics and as a testbed for parallel decomposition.
//
// Packages:
//
//	core/     : directed weighted Graph, depot convention, route cost & validity
//	routes/   : candidate route generation (bitmask subsets, capacity, validity)
//	cover/    : include/exclude exact-cover search, bounded variant, reduction
//	parallel/ : index-range ranks and task-parallel prefixes over errgroup
//	cluster/  : coordinator/worker ranks over an in-memory or Redis transport
//	instance/ : text and YAML instance files
//	builder/  : deterministic random instance generators
//	report/   : console, YAML and elapsed-time reports
//	config/   : defaults, .env, CVRP_* environment and YAML configuration
//	metrics/  : Prometheus collectors and textfile export
//	history/  : bolt-backed ledger of past runs
//	cmd/cvrp  : the command line (solve, worker, generate, history)
//
// Quick start:
//
//	in, _ := instance.Load("grafo.txt")
//	set, _ := routes.Generate(in.Locations(), in.Demand, in.Graph(), routes.DefaultOptions())
//	res, err := cover.Search(ctx, set, cover.DefaultOptions())
//	if errors.Is(err, cover.ErrNoFeasibleCover) { /* no combination covers every location */ }
//	fmt.Println(res.Stops(), res.Cost)
//
// Determinism:
//
//	Candidate order, search order and tie-breaks are fixed: among equal-cost
//	covers the one reached first by the include-first search wins, and every
//	parallel strategy reduces in an order that reproduces that choice.
package cvrp
