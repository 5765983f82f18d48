// Package cluster runs the index-range search as a coordinator and a fixed
// set of worker ranks that talk only twice: once to receive the job and once
// to hand back their local best.
//
// Protocol:
//
//  1. The Coordinator publishes a Job (candidate routes, location list, rank
//     count) under a fresh uuid.
//  2. Each Worker fetches the job, computes its Range with
//     parallel.Partition, runs the search on its slice and sends one
//     WorkerResult. There is no communication mid-search.
//  3. The Coordinator collects exactly Workers results and reduces them in
//     rank order: rank 0 is the initial global best, later ranks replace it
//     only when strictly cheaper.
//
// Transports:
//
//   - MemoryTransport: in-process maps and channels (tests, single host).
//   - RedisTransport: the job is a JSON value at cvrp:job:<id> with a TTL;
//     results are JSON list entries RPUSHed to cvrp:job:<id>:results and
//     collected with BLPOP. Ranks may live in separate `cvrp worker`
//     processes on separate hosts.
//
// Routes are shipped with their precomputed costs, so workers never need the
// graph.
package cluster
