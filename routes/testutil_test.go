package routes_test

import (
	"github.com/katalvlaran/cvrp/core"
	"github.com/katalvlaran/cvrp/routes"
)

// tinyGraph is the three-customer instance used across the routes tests:
// every customer is 10 from the depot, 1–2 and 2–3 cost 5, 1–3 costs 20.
func tinyGraph() *core.Graph {
	g := core.NewGraph()
	for _, e := range [][3]int{
		{0, 1, 10}, {0, 2, 10}, {0, 3, 10},
		{1, 2, 5}, {2, 3, 5}, {1, 3, 20},
	} {
		g.AddEdge(e[0], e[1], e[2])
		g.AddEdge(e[1], e[0], e[2])
	}

	return g
}

func tinyDemand() map[int]int { return map[int]int{1: 5, 2: 5, 3: 5} }

// stopsOf returns the stop lists of set in generation order.
func stopsOf(set *routes.Set) [][]int {
	out := make([][]int, 0, set.Len())
	for _, r := range set.Routes {
		out = append(out, r.Stops)
	}

	return out
}
