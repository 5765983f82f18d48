// Package parallel splits the exact-cover search of package cover across
// goroutines and min-reduces the partial results.
//
// Strategies:
//
//   - Sequential: a single cover.Search (or cover.SearchBounded).
//   - IndexRange: the K candidates are cut into contiguous chunks by
//     Partition, one per rank. Rank r runs cover.SearchFrom(Start_r) with a
//     private incumbent. By default a rank explores everything reachable from
//     its start up to K, so ranges overlap in the combinations they evaluate;
//     with Spec.Disjoint the first included route must fall inside the rank's
//     own range and every combination is evaluated exactly once.
//   - TaskParallel: one traversal is seeded sequentially until SpawnDepth
//     routes are included. Every such prefix becomes a task that owns its copy
//     of the combination and returns its own local best. Tasks run on an
//     errgroup pool limited to Workers.
//
// Workers never share mutable search state. The single merge step is
// cover.ReduceResults, run once after all workers joined: in rank order for
// IndexRange and in seeding order for TaskParallel. Seeding order follows the
// sequential include-first traversal, so TaskParallel breaks cost ties the
// same way Search does. IndexRange only guarantees the optimal cost.
//
// Options.OnImprove and Options.Progress of Spec.Search are serialized: the
// callbacks see one goroutine at a time, improvements are forwarded only when
// they beat every earlier one, and progress reports the sum over workers.
package parallel
