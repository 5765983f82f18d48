package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cvrp/cover"
	"github.com/katalvlaran/cvrp/internal/logging"
	"github.com/katalvlaran/cvrp/routes"
)

// Task is one unit of task-parallel work: resume the search at Start with
// Prefix already included.
type Task struct {
	Prefix []int
	Start  int
}

// Seed walks the include/exclude tree sequentially and emits a Task each time
// depth routes have been included, or earlier when the prefix already covers
// every location. Tasks come out in include-first preorder.
func Seed(set *routes.Set, depth int) []Task {
	if depth < 1 {
		depth = 1
	}
	var (
		tasks  []Task
		prefix = make([]int, 0, depth)
		walk   func(idx int, mask uint64)
	)
	walk = func(idx int, mask uint64) {
		if set.Covers(mask) || len(prefix) == depth {
			tasks = append(tasks, Task{Prefix: append([]int(nil), prefix...), Start: idx})

			return
		}
		if idx >= set.Len() {
			return
		}
		prefix = append(prefix, idx)
		walk(idx+1, mask|set.Routes[idx].Mask)
		prefix = prefix[:len(prefix)-1]
		walk(idx+1, mask)
	}
	walk(0, 0)

	return tasks
}

// SearchTasks seeds the traversal down to SpawnDepth inclusions and runs every
// resulting Task on an errgroup pool of Workers goroutines. Each task returns
// its own local best; the reduction happens once, in seeding order.
func SearchTasks(ctx context.Context, set *routes.Set, spec Spec) (cover.Result, error) {
	if set == nil {
		return cover.Result{Solution: cover.Empty()}, cover.ErrNilSet
	}

	tasks := Seed(set, spec.spawnDepth())
	results := make([]cover.Result, len(tasks))
	mon := newMonitor(spec.Search, len(tasks))
	logging.FromContext(ctx).
		WithField("strategy", TaskParallel.String()).
		Debugf("seeded %d tasks at depth %d on %d workers", len(tasks), spec.spawnDepth(), spec.workers())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(spec.workers())
	for i, t := range tasks {
		results[i] = cover.Result{Solution: cover.Empty()}
		i, t := i, t
		g.Go(func() error {
			res, err := cover.SearchPrefix(gctx, set, t.Start, t.Prefix, mon.options(spec.Search, i))
			results[i] = res

			return err
		})
	}
	err := g.Wait()

	return cover.Finalize(cover.ReduceResults(results...), err, spec.Search)
}
