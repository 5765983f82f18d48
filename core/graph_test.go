// Package core_test verifies the adjacency store and the depot convention.
package core_test

import (
	"testing"

	"github.com/katalvlaran/cvrp/core"
	"github.com/stretchr/testify/require"
)

// triangle builds the bidirectional depot/1/2/3 instance used across the module:
// 0↔1, 0↔2, 0↔3 cost 10; 1↔2, 2↔3 cost 5; 1↔3 cost 20.
func triangle() *core.Graph {
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

func TestAddEdge_FirstMatchWins(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 7)
	g.AddEdge(1, 2, 3) // duplicate is stored but shadowed

	c, ok := g.Cost(1, 2)
	require.True(t, ok)
	require.Equal(t, 7, c)
	require.Equal(t, 2, g.EdgeCount())
	require.Len(t, g.Edges(), 2)
}

func TestCost_Directed(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(1, 2, 4)

	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(2, 1), "edges are directed")
	_, ok := g.Cost(5, 6)
	require.False(t, ok)
}

func TestEdges_Ordering(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(3, 1, 1)
	g.AddEdge(1, 3, 2)
	g.AddEdge(1, 2, 3)

	require.Equal(t, []core.Edge{
		{From: 1, To: 3, Cost: 2},
		{From: 1, To: 2, Cost: 3},
		{From: 3, To: 1, Cost: 1},
	}, g.Edges())
	require.Equal(t, []int{1, 3}, g.Origins())
}

func TestWithDepot(t *testing.T) {
	in := []int{3, 5}
	require.Equal(t, []int{0, 3, 5, 0}, core.WithDepot(in))
	require.Equal(t, []int{3, 5}, in, "input must not be modified")
	require.Equal(t, []int{0, 0}, core.WithDepot(nil))
}

func TestIsRouteValid(t *testing.T) {
	g := triangle()

	require.True(t, g.IsRouteValid(nil))
	require.True(t, g.IsRouteValid([]int{42}), "single stop has no pairs to check")
	require.True(t, g.IsRouteValid([]int{1, 2, 3}))

	g2 := core.NewGraph()
	g2.AddEdge(2, 1, 1)
	require.False(t, g2.IsRouteValid([]int{1, 2}))
	require.True(t, g2.IsRouteValid([]int{2, 1}))
}

func TestIsTourValid_ChecksDepotHops(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)

	require.True(t, g.IsRouteValid([]int{1, 2}))
	require.False(t, g.IsTourValid([]int{1, 2}), "2->0 is missing")

	g.AddEdge(2, 0, 1)
	require.True(t, g.IsTourValid([]int{1, 2}))
}

func TestRouteCost(t *testing.T) {
	g := triangle()

	cases := []struct {
		route []int
		want  int
	}{
		{[]int{1}, 20},
		{[]int{1, 2}, 25},
		{[]int{1, 3}, 40},
		{[]int{1, 2, 3}, 30},
	}
	for _, tc := range cases {
		got, err := g.RouteCost(tc.route)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "route %v", tc.route)

		again, err := g.RouteCost(tc.route)
		require.NoError(t, err)
		require.Equal(t, got, again, "cost must be deterministic")
	}
}

func TestRouteCost_MissingEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(0, 1, 10)
	g.AddEdge(1, 2, 5)

	_, err := g.RouteCost([]int{1, 2})
	require.ErrorIs(t, err, core.ErrMissingEdge)
	require.Contains(t, err.Error(), "2->0")

	// The lenient variant skips the missing return hop.
	require.Equal(t, 15, g.RouteCostLenient([]int{1, 2}))
}

func TestClone_IsIndependent(t *testing.T) {
	g := triangle()
	c := g.Clone()
	c.AddEdge(1, 2, 1)

	require.Equal(t, 12, g.EdgeCount())
	require.Equal(t, 13, c.EdgeCount())
	require.Equal(t, g.Edges(), core.FromEdges(g.Edges()).Edges())
}

func TestValidateCosts(t *testing.T) {
	g := triangle()
	require.NoError(t, g.ValidateCosts())

	g.AddEdge(3, 2, -1)
	require.ErrorIs(t, g.ValidateCosts(), core.ErrNegativeCost)
}
