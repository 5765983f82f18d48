package cluster_test

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/cvrp/cluster"
	"github.com/katalvlaran/cvrp/cover"
	"github.com/katalvlaran/cvrp/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinator_Memory(t *testing.T) {
	for _, disjoint := range []bool{false, true} {
		var seen []int
		c := &cluster.Coordinator{
			Transport: cluster.NewMemoryTransport(),
			OnResult:  func(_ cluster.Transport, r cluster.WorkerResult) { seen = append(seen, r.Rank) },
		}
		res, job, err := c.Run(context.Background(), tinySet(t), cluster.Options{Workers: 3, LocalRanks: -1, Disjoint: disjoint})
		require.NoError(t, err)
		require.NotEmpty(t, job.ID)
		require.Equal(t, 30, res.Cost)
		require.Equal(t, [][]int{{1, 2, 3}}, res.Stops())
		require.ElementsMatch(t, []int{0, 1, 2}, seen)
	}
}

func TestCoordinator_Infeasible(t *testing.T) {
	set := routes.NewSet([]int{1, 2}, []routes.Route{{Stops: []int{1}, Mask: 1, Cost: 4}})
	c := &cluster.Coordinator{Transport: cluster.NewMemoryTransport()}

	_, _, err := c.Run(context.Background(), set, cluster.Options{Workers: 2, LocalRanks: -1})
	require.ErrorIs(t, err, cover.ErrNoFeasibleCover)

	res, _, err := c.Run(context.Background(), set, cluster.Options{Workers: 2, LocalRanks: -1, Search: cover.Options{Sentinel: true}})
	require.NoError(t, err)
	require.Equal(t, cover.SentinelCost, res.Cost)
}

func TestCoordinator_Errors(t *testing.T) {
	c := &cluster.Coordinator{Transport: cluster.NewMemoryTransport()}
	_, _, err := c.Run(context.Background(), nil, cluster.Options{Workers: 1})
	require.ErrorIs(t, err, cover.ErrNilSet)

	_, _, err = c.Run(context.Background(), tinySet(t), cluster.Options{})
	require.ErrorIs(t, err, cluster.ErrNoWorkers)
}

func TestCoordinator_ExternalRank(t *testing.T) {
	tr := cluster.NewMemoryTransport()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Rank 1 starts before the job exists and polls until it appears.
	done := make(chan error, 1)
	go func() {
		w := &cluster.Worker{Transport: tr, Rank: 1, PollInterval: 5 * time.Millisecond}
		_, err := w.Run(ctx, "fixed-id")
		done <- err
	}()

	c := &cluster.Coordinator{Transport: tr}
	res, job, err := c.Run(ctx, tinySet(t), cluster.Options{Workers: 2, LocalRanks: 1, JobID: "fixed-id"})
	require.NoError(t, err)
	require.Equal(t, "fixed-id", job.ID)
	require.Equal(t, 30, res.Cost)
	require.NoError(t, <-done)
}

func TestCoordinator_CanceledWhileCollecting(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// No local ranks and nobody else: collection must give up with the context.
	c := &cluster.Coordinator{Transport: cluster.NewMemoryTransport()}
	res, _, err := c.Run(ctx, tinySet(t), cluster.Options{Workers: 2, LocalRanks: 0})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.False(t, res.Found)
}

func TestWorker_BadRank(t *testing.T) {
	tr := cluster.NewMemoryTransport()
	job := cluster.NewJob(tinySet(t), cluster.Options{Workers: 2})
	require.NoError(t, tr.PublishJob(context.Background(), job))

	_, err := (&cluster.Worker{Transport: tr, Rank: 2}).Run(context.Background(), job.ID)
	require.ErrorIs(t, err, cluster.ErrBadRank)
}

func TestMemoryTransport_FetchUnknown(t *testing.T) {
	_, err := cluster.NewMemoryTransport().FetchJob(context.Background(), "nope")
	require.ErrorIs(t, err, cluster.ErrJobNotFound)
}

func TestReduce_RankOrderAndFailures(t *testing.T) {
	set := tinySet(t)
	results := []cluster.WorkerResult{
		{Rank: 2, Found: true, Cost: 30, Indices: []int{6}, Stats: cover.Stats{Nodes: 3}},
		{Rank: 0, Found: true, Cost: 30, Indices: []int{6}, Stats: cover.Stats{Nodes: 5}},
		{Rank: 1, Found: true, Cost: 45, Indices: []int{2, 3}, Stats: cover.Stats{Nodes: 4}},
	}
	res, err := cluster.Reduce(set, results)
	require.NoError(t, err)
	require.Equal(t, 30, res.Cost)
	require.EqualValues(t, 12, res.Stats.Nodes)

	results[1].Err = "cover: search canceled"
	res, err = cluster.Reduce(set, results)
	require.ErrorIs(t, err, cluster.ErrWorkerFailed)
	require.Equal(t, 30, res.Cost)

	_, err = cluster.Reduce(set, []cluster.WorkerResult{{Found: true, Indices: []int{99}}})
	require.Error(t, err)
}

func TestWorkerResult_Status(t *testing.T) {
	assert.Equal(t, "ok", cluster.WorkerResult{Found: true}.Status())
	assert.Equal(t, "empty", cluster.WorkerResult{}.Status())
	assert.Equal(t, "error", cluster.WorkerResult{Found: true, Err: "x"}.Status())
}
