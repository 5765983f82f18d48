package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvrp/builder"
	"github.com/katalvlaran/cvrp/core"
	"github.com/katalvlaran/cvrp/routes"
)

func TestBuildInstance_Complete(t *testing.T) {
	in, err := builder.BuildInstance(3, nil, builder.Complete(false))
	require.NoError(t, err)
	assert.Equal(t, 4, in.Nodes)
	assert.Equal(t, []int{1, 2, 3}, in.Locations())
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, in.Demand)
	assert.Len(t, in.Edges, 12)
	for _, e := range in.Edges {
		assert.NotEqual(t, e.From, e.To)
		assert.Equal(t, builder.DefaultEdgeCost, e.Cost)
	}
	require.NoError(t, in.Validate())
}

func TestBuildInstance_CompleteSymmetric(t *testing.T) {
	in, err := builder.BuildInstance(4, []builder.BuilderOption{
		builder.WithSeed(7), builder.WithUniformCost(1, 50),
	}, builder.Complete(true))
	require.NoError(t, err)
	assert.Len(t, in.Edges, 20)

	g := in.Graph()
	for i := 0; i < in.Nodes; i++ {
		for j := 0; j < in.Nodes; j++ {
			if i == j {
				continue
			}
			a, ok := g.Cost(i, j)
			require.True(t, ok)
			b, ok := g.Cost(j, i)
			require.True(t, ok)
			assert.Equal(t, a, b, "%d<->%d", i, j)
		}
	}
}

func TestBuildInstance_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{
			builder.WithSeed(99),
			builder.WithUniformCost(1, 30),
			builder.WithUniformDemand(1, 5),
		}
	}
	a, err := builder.BuildInstance(6, opts(), builder.RandomSparse(0.4))
	require.NoError(t, err)
	b, err := builder.BuildInstance(6, opts(), builder.RandomSparse(0.4))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestStar_OnlySingletons(t *testing.T) {
	in, err := builder.BuildInstance(4, nil, builder.Star())
	require.NoError(t, err)
	assert.Len(t, in.Edges, 8)

	set, err := routes.Generate(in.Locations(), in.Demand, in.Graph(), routes.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())
	for _, r := range set.Routes {
		assert.Equal(t, 1, r.Len())
		assert.Equal(t, 2*builder.DefaultEdgeCost, r.Cost)
	}
}

func TestPath_ConsecutiveRuns(t *testing.T) {
	in, err := builder.BuildInstance(4, nil, builder.Path())
	require.NoError(t, err)
	assert.Len(t, in.Edges, 14)

	// Runs of consecutive ids: 4 singletons, 3 pairs, 2 triples, 1 quadruple.
	set, err := routes.Generate(in.Locations(), in.Demand, in.Graph(), routes.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 10, set.Len())

	_, err = builder.BuildInstance(1, nil, builder.Path())
	assert.ErrorIs(t, err, builder.ErrTooFewLocations)
}

func TestRandomSparse(t *testing.T) {
	in, err := builder.BuildInstance(5, nil, builder.RandomSparse(0))
	require.NoError(t, err)
	assert.Len(t, in.Edges, 10, "depot links only")

	in, err = builder.BuildInstance(5, nil, builder.RandomSparse(1))
	require.NoError(t, err)
	assert.Len(t, in.Edges, 10+20)

	in, err = builder.BuildInstance(5, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(0.5))
	require.NoError(t, err)
	g := in.Graph()
	for _, id := range in.Locations() {
		assert.True(t, g.HasEdge(core.Depot, id))
		assert.True(t, g.HasEdge(id, core.Depot))
	}

	_, err = builder.BuildInstance(5, nil, builder.RandomSparse(0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildInstance(5, nil, builder.RandomSparse(1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestEuclidean(t *testing.T) {
	in, err := builder.BuildInstance(5, []builder.BuilderOption{builder.WithSeed(11)}, builder.Euclidean(100))
	require.NoError(t, err)
	assert.Len(t, in.Edges, 30)

	g := in.Graph()
	for _, e := range in.Edges {
		back, ok := g.Cost(e.To, e.From)
		require.True(t, ok)
		assert.Equal(t, e.Cost, back)
		assert.GreaterOrEqual(t, e.Cost, 0)
		assert.LessOrEqual(t, e.Cost, 142)
	}

	_, err = builder.BuildInstance(5, nil, builder.Euclidean(100))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildInstance(5, []builder.BuilderOption{builder.WithSeed(1)}, builder.Euclidean(0))
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestBuildInstance_Errors(t *testing.T) {
	_, err := builder.BuildInstance(0, nil, builder.Star())
	assert.ErrorIs(t, err, builder.ErrTooFewLocations)

	_, err = builder.BuildInstance(3, nil, builder.Star(), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildInstance_Name(t *testing.T) {
	in, err := builder.BuildInstance(2, []builder.BuilderOption{builder.WithName("gen-2")}, builder.Star())
	require.NoError(t, err)
	assert.Equal(t, "gen-2", in.Name)
}
