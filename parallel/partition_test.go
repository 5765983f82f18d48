package parallel_test

import (
	"testing"

	"github.com/katalvlaran/cvrp/parallel"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	require.Equal(t, []parallel.Range{
		{Rank: 0, Start: 0, End: 3},
		{Rank: 1, Start: 3, End: 6},
		{Rank: 2, Start: 6, End: 10},
	}, parallel.Partition(10, 3))

	require.Equal(t, []parallel.Range{{Rank: 0, Start: 0, End: 5}}, parallel.Partition(5, 0))
}

func TestPartition_FewerCandidatesThanWorkers(t *testing.T) {
	got := parallel.Partition(2, 4)
	require.Len(t, got, 4)
	for _, r := range got[:3] {
		require.Zero(t, r.Len())
	}
	require.Equal(t, parallel.Range{Rank: 3, Start: 0, End: 2}, got[3])
}

func TestPartition_CoversEveryIndexOnce(t *testing.T) {
	for k := 0; k < 40; k++ {
		for w := 1; w < 8; w++ {
			seen := make([]int, k)
			for _, r := range parallel.Partition(k, w) {
				for i := r.Start; i < r.End; i++ {
					seen[i]++
				}
			}
			for i := range seen {
				require.Equal(t, 1, seen[i], "k=%d w=%d i=%d", k, w, i)
			}
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]parallel.Strategy{
		"":           parallel.Sequential,
		"sequential": parallel.Sequential,
		"Range":      parallel.IndexRange,
		" tasks ":    parallel.TaskParallel,
	} {
		got, err := parallel.ParseStrategy(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := parallel.ParseStrategy("mpi")
	require.ErrorIs(t, err, parallel.ErrUnknownStrategy)

	require.Equal(t, "tasks", parallel.TaskParallel.String())
	require.Equal(t, "Strategy(9)", parallel.Strategy(9).String())
}
