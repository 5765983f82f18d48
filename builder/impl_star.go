package builder

import (
	"github.com/katalvlaran/cvrp/instance"
)

// Star returns a Constructor that links every location to the depot and
// nothing else. Only singleton routes are valid on such an instance.
//
// Complexity: O(n) edges.
func Star() Constructor {
	return func(in *instance.Instance, cfg builderConfig) error {
		addDepotLinks(in, cfg)

		return nil
	}
}
