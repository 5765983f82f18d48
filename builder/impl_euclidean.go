package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cvrp/instance"
)

const methodEuclidean = "Euclidean"

// Euclidean returns a Constructor that places every node (depot first) at a
// random integer point of the size×size square and links every ordered pair
// with the rounded Euclidean distance. The configured CostFn is not used.
//
// Errors: ErrBadSize for size < 1; ErrNeedRandSource without an RNG.
//
// Complexity: O(N²) edges.
func Euclidean(size int) Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		if size < 1 {
			return fmt.Errorf("%s: size=%d: %w", methodEuclidean, size, ErrBadSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodEuclidean, ErrNeedRandSource)
		}

		n := in.Nodes
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := 0; i < n; i++ {
			xs[i] = float64(cfg.rng.Intn(size + 1))
			ys[i] = float64(cfg.rng.Intn(size + 1))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					addEdge(in, i, j, int(math.Round(math.Hypot(xs[i]-xs[j], ys[i]-ys[j]))))
				}
			}
		}

		return nil
	}
}
