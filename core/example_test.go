package core_test

import (
	"fmt"

	"github.com/katalvlaran/cvrp/core"
)

// ExampleGraph_RouteCost prices a route with the implicit depot hops.
func ExampleGraph_RouteCost() {
	g := core.NewGraph()
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 5)
	g.AddEdge(2, 0, 10)

	fmt.Println(core.WithDepot([]int{1, 2}))
	cost, err := g.RouteCost([]int{1, 2})
	fmt.Println(cost, err)
	fmt.Println(g.IsTourValid([]int{2, 1}))

	// Output:
	// [0 1 2 0]
	// 25 <nil>
	// false
}
