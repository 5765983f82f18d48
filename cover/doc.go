// Package cover finds the minimum-cost combination of candidate routes whose
// union covers every location.
//
// The search is a binary include/exclude backtracking over the candidate list
// produced by package routes, in generation order:
//
//	visit(idx, combination):
//	  if union(combination) == all locations: record if cheaper; return
//	  if idx == K:                              return
//	  visit(idx+1, combination + route[idx])    // include first
//	  visit(idx+1, combination)                 // then exclude
//
// Coverage is a leaf: supersets of a covering combination are never explored
// from that node. Improvements are strict, so among equal-cost covers the one
// reached first in include-first order wins. Routes may overlap; the check is
// a set cover on the union, not a partition.
//
// Entry points:
//
//   - Search        full traversal from index 0.
//   - SearchFrom    same engine with the cursor starting at an arbitrary index
//     (one index-range partition).
//   - SearchPrefix  resumes from a seeded combination (one task of the
//     task-parallel strategy).
//   - SearchBounded opt-in branch-and-bound. A branch whose accumulated cost
//     already reaches the incumbent is cut. Same winner as Search on
//     non-negative costs, usually far fewer nodes.
//   - Reduce        min-reduction of partial Solutions; ties keep the earliest.
//
// The default path is exhaustive and unbounded: up to 2^K leaves for K
// candidates. Options.TimeLimit and context cancellation are polled every
// 4096 nodes; when either fires the incumbent is returned together with
// ErrTimeLimit or ErrCanceled.
//
// An instance without any covering combination yields ErrNoFeasibleCover.
// With Options.Sentinel the legacy behaviour is kept instead: a nil error and
// a Solution whose Cost is SentinelCost.
//
// The package never logs and never touches the graph: route costs are
// precomputed by routes.Generate.
package cover
