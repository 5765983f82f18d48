package builder

import (
	"fmt"

	"github.com/katalvlaran/cvrp/instance"
)

const methodPath = "Path"

// Path returns a Constructor with depot links plus the chain 1–2–…–n in both
// directions. Exactly the runs of consecutive ids are valid routes.
//
// Edge order: depot links, then i→i+1 and i+1→i for i ascending.
//
// Errors: ErrTooFewLocations for fewer than 2 locations.
func Path() Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		n := in.Nodes - 1
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodPath, n, ErrTooFewLocations)
		}
		addDepotLinks(in, cfg)
		for i := 1; i < n; i++ {
			c := cfg.cost()
			addEdge(in, i, i+1, c)
			addEdge(in, i+1, i, c)
		}

		return nil
	}
}
