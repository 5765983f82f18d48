package routes_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvrp/core"
	"github.com/katalvlaran/cvrp/routes"
)

// randomInstance builds a sparse directed graph over the depot and n
// locations with random demands.
func randomInstance(rng *rand.Rand, n int, density float64) ([]int, map[int]int, *core.Graph) {
	locs := make([]int, n)
	demand := make(map[int]int, n)
	for i := range locs {
		locs[i] = i + 1
		demand[i+1] = 1 + rng.Intn(6)
	}
	g := core.NewGraph()
	for from := 0; from <= n; from++ {
		for to := 0; to <= n; to++ {
			if from != to && rng.Float64() < density {
				g.AddEdge(from, to, 1+rng.Intn(50))
			}
		}
	}

	return locs, demand, g
}

func TestGenerate_RandomGraphsYieldFeasibleRoutes(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := 3 + rng.Intn(6)
		capacity := 4 + rng.Intn(12)
		locs, demand, g := randomInstance(rng, n, 0.3+0.6*rng.Float64())

		set, err := routes.Generate(locs, demand, g, routes.Options{Capacity: capacity})
		require.NoError(t, err, "seed %d", seed)

		kept := make(map[uint64]bool, set.Len())
		for _, r := range set.Routes {
			assert.True(t, g.IsTourValid(r.Stops), "seed %d: %v not a tour", seed, r.Stops)
			assert.LessOrEqual(t, r.Demand, capacity, "seed %d: %v over capacity", seed, r.Stops)
			assert.True(t, routes.CheckCapacity(r.Stops, demand, capacity), "seed %d", seed)
			assert.True(t, sort.IntsAreSorted(r.Stops), "seed %d: %v not ascending", seed, r.Stops)

			cost, err := g.RouteCost(r.Stops)
			require.NoError(t, err)
			assert.Equal(t, cost, r.Cost, "seed %d: %v", seed, r.Stops)
			kept[r.Mask] = true
		}

		// Every subset left out is either too heavy or not a closed tour.
		for mask := uint64(1); mask < uint64(1)<<uint(n); mask++ {
			if kept[mask] {
				continue
			}
			var stops []int
			for j, id := range locs {
				if mask&(uint64(1)<<uint(j)) != 0 {
					stops = append(stops, id)
				}
			}
			feasible := routes.CheckCapacity(stops, demand, capacity) && g.IsTourValid(stops)
			assert.False(t, feasible, "seed %d: %v dropped", seed, stops)
		}
	}
}
