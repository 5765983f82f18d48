package cluster

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cvrp/cover"
	"github.com/katalvlaran/cvrp/internal/logging"
	"github.com/katalvlaran/cvrp/routes"
)

// Options configures one distributed search.
type Options struct {
	// Workers is the total number of ranks.
	Workers int

	// LocalRanks ranks [0, LocalRanks) run inside the coordinator process;
	// the others are expected from external workers. Negative means all.
	LocalRanks int

	// Disjoint is forwarded to every rank (see parallel.SearchRange).
	Disjoint bool

	// Search controls sentinel mode and the per-rank time limit.
	Search cover.Options

	// JobID, if set, replaces the generated uuid so that external workers
	// can be started before the coordinator.
	JobID string

	// CollectTimeout bounds the wait for rank results (0 = until ctx ends).
	CollectTimeout time.Duration
}

// Coordinator publishes jobs and reduces worker results.
type Coordinator struct {
	Transport Transport

	// OnResult, if set, observes every collected WorkerResult.
	OnResult func(Transport, WorkerResult)
}

// NewJob packages set for opts.Workers ranks under a fresh id.
func NewJob(set *routes.Set, opts Options) *Job {
	id := opts.JobID
	if id == "" {
		id = uuid.New().String()
	}

	return &Job{
		ID:        id,
		Workers:   opts.Workers,
		Disjoint:  opts.Disjoint,
		Locations: set.Locations,
		Routes:    set.Routes,
		TimeLimit: opts.Search.TimeLimit,
		CreatedAt: time.Now().UTC(),
	}
}

// Run publishes the job, runs the local ranks, waits for every result and
// reduces them. The returned Job lets callers report its id.
func (c *Coordinator) Run(ctx context.Context, set *routes.Set, opts Options) (cover.Result, *Job, error) {
	empty := cover.Result{Solution: cover.Empty()}
	if set == nil {
		return empty, nil, cover.ErrNilSet
	}
	if opts.Workers < 1 {
		return empty, nil, ErrNoWorkers
	}
	local := opts.LocalRanks
	if local < 0 || local > opts.Workers {
		local = opts.Workers
	}

	job := NewJob(set, opts)
	log := logging.FromContext(ctx).WithFields(logrus.Fields{
		"job":       job.ID,
		"transport": c.Transport.Name(),
	})
	if err := c.Transport.PublishJob(ctx, job); err != nil {
		return empty, job, err
	}
	log.Infof("published %d candidates for %d ranks (%d local)", len(job.Routes), job.Workers, local)

	rctx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(rctx)
	for rank := 0; rank < local; rank++ {
		w := &Worker{Transport: c.Transport, Rank: rank}
		g.Go(func() error {
			_, err := w.Run(gctx, job.ID)
			if errors.Is(err, cover.ErrCanceled) || errors.Is(err, cover.ErrTimeLimit) {
				// Reported through the result.
				return nil
			}

			return err
		})
	}

	cctx := gctx
	if opts.CollectTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(gctx, opts.CollectTimeout)
		defer cancel()
	}
	results, cerr := c.collect(cctx, job, log)
	if cerr != nil {
		// Local ranks cannot change the outcome any more.
		stop()
	}
	// A failing local rank cancels collection; report the root cause.
	if werr := g.Wait(); werr != nil && !errors.Is(werr, context.Canceled) {
		cerr = werr
	}

	res, rerr := Reduce(set, results)
	if cerr != nil {
		return res, job, cerr
	}
	if rerr != nil {
		return res, job, rerr
	}
	res, err := cover.Finalize(res, nil, opts.Search)

	return res, job, err
}

// collect gathers exactly one result per rank of job. Results of another
// job, with a rank outside [0, Workers) or for a rank already collected are
// logged and dropped. The error names every rank still missing when ctx ends.
func (c *Coordinator) collect(ctx context.Context, job *Job, log logrus.FieldLogger) ([]WorkerResult, error) {
	byRank := make(map[int]WorkerResult, job.Workers)
	for len(byRank) < job.Workers {
		batch, err := c.Transport.CollectResults(ctx, job.ID, job.Workers-len(byRank))
		for _, r := range batch {
			rlog := log.WithFields(logrus.Fields{"rank": r.Rank, "result_job": r.JobID})
			_, dup := byRank[r.Rank]
			switch {
			case r.JobID != job.ID:
				rlog.Warn("dropping result of another job")
			case r.Rank < 0 || r.Rank >= job.Workers:
				rlog.Warn("dropping result with out-of-range rank")
			case dup:
				rlog.Warn("dropping duplicate rank result")
			default:
				byRank[r.Rank] = r
				if c.OnResult != nil {
					c.OnResult(c.Transport, r)
				}
				rlog.WithFields(logrus.Fields{
					"status": r.Status(),
					"cost":   r.Cost,
					"nodes":  r.Stats.Nodes,
				}).Debug("result collected")
			}
		}
		if err != nil && len(byRank) < job.Workers {
			return rankOrder(byRank), fmt.Errorf("%w %v: %w", ErrMissingRanks, missingRanks(byRank, job.Workers), err)
		}
	}

	return rankOrder(byRank), nil
}

func rankOrder(byRank map[int]WorkerResult) []WorkerResult {
	out := make([]WorkerResult, 0, len(byRank))
	for _, r := range byRank {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })

	return out
}

func missingRanks(byRank map[int]WorkerResult, workers int) []int {
	var out []int
	for rank := 0; rank < workers; rank++ {
		if _, ok := byRank[rank]; !ok {
			out = append(out, rank)
		}
	}

	return out
}

// Reduce merges worker results in rank order: rank 0 seeds the global best
// and later ranks replace it only when strictly cheaper. Stats are summed.
// A rank that reported an error still contributes its incumbent; the
// returned error then wraps ErrWorkerFailed. Two results for one rank are
// rejected with ErrDuplicateRank.
func Reduce(set *routes.Set, results []WorkerResult) (cover.Result, error) {
	sorted := append([]WorkerResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank == sorted[i-1].Rank {
			return cover.Result{Solution: cover.Empty()}, errors.Wrapf(ErrDuplicateRank, "rank %d", sorted[i].Rank)
		}
	}

	partial := make([]cover.Result, 0, len(sorted))
	var failed []string
	for _, r := range sorted {
		if r.Err != "" {
			failed = append(failed, r.Err)
		}
		sol, err := r.solution(set)
		if err != nil {
			return cover.Result{Solution: cover.Empty()}, err
		}
		partial = append(partial, cover.Result{Solution: sol, Stats: r.Stats})
	}

	out := cover.ReduceResults(partial...)
	if len(failed) > 0 {
		return out, errors.Wrapf(ErrWorkerFailed, "%d rank(s): %s", len(failed), failed[0])
	}

	return out, nil
}

// solution rebuilds the cover.Solution of r from the shared candidate set.
func (r WorkerResult) solution(set *routes.Set) (cover.Solution, error) {
	if !r.Found {
		return cover.Empty(), nil
	}
	sol := cover.Solution{
		Routes:  make([]routes.Route, len(r.Indices)),
		Indices: append([]int(nil), r.Indices...),
		Cost:    r.Cost,
		Found:   true,
	}
	for i, idx := range r.Indices {
		if idx < 0 || idx >= set.Len() {
			return cover.Empty(), errors.Errorf("rank %d: route index %d out of range", r.Rank, idx)
		}
		sol.Routes[i] = set.Routes[idx]
	}

	return sol, nil
}
