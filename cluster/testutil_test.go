package cluster_test

import (
	"testing"

	"github.com/katalvlaran/cvrp/core"
	"github.com/katalvlaran/cvrp/routes"
	"github.com/stretchr/testify/require"
)

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
