package parallel

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cvrp/cover"
	"github.com/katalvlaran/cvrp/internal/logging"
	"github.com/katalvlaran/cvrp/routes"
)

// SearchIndexRange runs one goroutine per rank of Partition(K, Workers).
// Rank r searches from its Start with a private incumbent; results are
// reduced in rank order once every rank returned.
//
// On cancellation the best incumbent over all ranks is returned with the
// first rank error.
func SearchIndexRange(ctx context.Context, set *routes.Set, spec Spec) (cover.Result, error) {
	if set == nil {
		return cover.Result{Solution: cover.Empty()}, cover.ErrNilSet
	}
	if set.Len() == 0 {
		return cover.Search(ctx, set, spec.Search)
	}

	ranges := Partition(set.Len(), spec.workers())
	results := make([]cover.Result, len(ranges))
	mon := newMonitor(spec.Search, len(ranges))
	log := logging.FromContext(ctx).WithField("strategy", IndexRange.String())

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		results[r.Rank] = cover.Result{Solution: cover.Empty()}
		if spec.Disjoint && r.Len() == 0 {
			continue
		}
		r := r
		g.Go(func() error {
			res, err := SearchRange(gctx, set, r, spec.Disjoint, mon.options(spec.Search, r.Rank))
			results[r.Rank] = res
			log.WithFields(logrus.Fields{
				"rank":  r.Rank,
				"start": r.Start,
				"end":   r.End,
				"found": res.Found,
				"cost":  res.Cost,
				"nodes": res.Stats.Nodes,
			}).Debug("rank finished")

			return err
		})
	}
	err := g.Wait()

	return cover.Finalize(cover.ReduceResults(results...), err, spec.Search)
}

// SearchRange runs the search of a single rank. With disjoint set the first
// included route must lie in [r.Start, r.End); otherwise the rank explores
// everything reachable from r.Start.
//
// The result is never ErrNoFeasibleCover: an empty rank reports cover.Empty().
func SearchRange(ctx context.Context, set *routes.Set, r Range, disjoint bool, opts cover.Options) (cover.Result, error) {
	opts.Sentinel = true
	opts.FirstLimit = 0
	if disjoint {
		if r.Len() == 0 {
			return cover.Result{Solution: cover.Empty()}, nil
		}
		opts.FirstLimit = r.End
	}

	return cover.SearchFrom(ctx, set, r.Start, opts)
}
