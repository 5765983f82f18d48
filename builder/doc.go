// Package builder generates deterministic CVRP instances for tests,
// benchmarks and the `cvrp generate` command.
//
// The package follows a functional-options design:
//
//   - BuildInstance(n, bopts, cons...) creates an instance with n locations,
//     draws one demand per location (ascending id) and then applies every
//     Constructor in order.
//   - BuilderOption values resolve into an immutable builderConfig holding
//     the RNG, the edge-cost generator and the demand generator.
//   - Constructors add directed edges in a documented, stable order.
//
// Topologies:
//
//   - Complete(symmetric)  every ordered pair of nodes, depot included.
//   - RandomSparse(p)      depot links always, location pairs with probability p.
//   - Star()               depot links only; every route is a singleton.
//   - Path()               depot links plus the chain 1–2–…–n in both directions.
//   - Euclidean(size)      random points in a size×size square, rounded distances.
//
// Determinism: the same n, options, seed and constructor order always yield
// the same instance. Stochastic constructors require WithSeed or WithRand.
//
// Errors: ErrTooFewLocations, ErrInvalidProbability, ErrNeedRandSource,
// ErrBadSize, ErrConstructFailed. Option constructors panic on meaningless
// values; builders themselves never panic.
package builder
