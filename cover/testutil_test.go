package cover_test

import (
	"testing"

	"github.com/katalvlaran/cvrp/core"
	"github.com/katalvlaran/cvrp/routes"
	"github.com/stretchr/testify/require"
)

// tinySet is the three-customer instance: every customer is 10 from the
// depot, 1–2 and 2–3 cost 5, 1–3 costs 20; demand 5 each, capacity 15.
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

// overlapSet only admits [2], [1 2] and [2 3], so every cover visits 2 twice.
func overlapSet(t testing.TB) *routes.Set {
	g := core.FromEdges([]core.Edge{
		{From: 0, To: 1, Cost: 10}, {From: 1, To: 2, Cost: 5}, {From: 2, To: 0, Cost: 10},
		{From: 0, To: 2, Cost: 10}, {From: 2, To: 3, Cost: 5}, {From: 3, To: 0, Cost: 10},
	})
	opts := routes.DefaultOptions()
	opts.Capacity = 6
	set, err := routes.Generate([]int{1, 2, 3}, map[int]int{1: 5, 2: 1, 3: 5}, g, opts)
	require.NoError(t, err)

	return set
}

// singletons builds k one-stop routes of cost 1 over locations 1..k.
// Its tree has roughly 2^(k+1) nodes.
func singletons(k int) *routes.Set {
	locs := make([]int, k)
	rs := make([]routes.Route, k)
	for i := 0; i < k; i++ {
		locs[i] = i + 1
		rs[i] = routes.Route{Stops: []int{i + 1}, Mask: 1 << uint(i), Demand: 1, Cost: 1}
	}

	return routes.NewSet(locs, rs)
}
