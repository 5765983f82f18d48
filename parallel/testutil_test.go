package parallel_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cvrp/core"
	"github.com/katalvlaran/cvrp/routes"
	"github.com/stretchr/testify/require"
)

// randomSet builds a small complete asymmetric instance with seeded costs
// in [1,20] and demands in [1,5].
func randomSet(t testing.TB, seed int64, n, capacity int) *routes.Set {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	locs := make([]int, n)
	dem := make(map[int]int, n)
	for i := 1; i <= n; i++ {
		locs[i-1] = i
		dem[i] = 1 + rng.Intn(5)
	}
	for u := 0; u <= n; u++ {
		for v := 0; v <= n; v++ {
			if u != v {
				g.AddEdge(u, v, 1+rng.Intn(20))
			}
		}
	}
	opts := routes.DefaultOptions()
	opts.Capacity = capacity
	set, err := routes.Generate(locs, dem, g, opts)
	require.NoError(t, err)

	return set
}

// tinySet: every customer 10 from the depot, 1–2 and 2–3 cost 5, 1–3 costs 20.
func tinySet(t testing.TB) *routes.Set {
	g := core.NewGraph()
	for _, e := range [][3]int{
		{0, 1, 10}, {0, 2, 10}, {0, 3, 10},
		{1, 2, 5}, {2, 3, 5}, {1, 3, 20},
	} {
		g.AddEdge(e[0], e[1], e[2])
		g.AddEdge(e[1], e[0], e[2])
	}
	opts := routes.DefaultOptions()
	opts.Capacity = 15
	set, err := routes.Generate([]int{1, 2, 3}, map[int]int{1: 5, 2: 5, 3: 5}, g, opts)
	require.NoError(t, err)

	return set
}

// singletons builds k one-stop routes of cost 1 over locations 1..k.
func singletons(k int) *routes.Set {
	locs := make([]int, k)
	rs := make([]routes.Route, k)
	for i := 0; i < k; i++ {
		locs[i] = i + 1
		rs[i] = routes.Route{Stops: []int{i + 1}, Mask: 1 << uint(i), Demand: 1, Cost: 1}
	}

	return routes.NewSet(locs, rs)
}
