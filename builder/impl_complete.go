package builder

import (
	"github.com/katalvlaran/cvrp/instance"
)

// Complete returns a Constructor that links every ordered pair of nodes
// (depot included). With symmetric set, one cost is drawn per unordered pair
// and used in both directions.
//
// Edge order: i ascending, then j ascending; symmetric mode emits i→j, j→i
// for i<j.
//
// Complexity: O(N²) edges.
func Complete(symmetric bool) Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		n := in.Nodes
		if symmetric {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					c := cfg.cost()
					addEdge(in, i, j, c)
					addEdge(in, j, i, c)
				}
			}

			return nil
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					addEdge(in, i, j, cfg.cost())
				}
			}
		}

		return nil
	}
}
