package cluster

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/cvrp/cover"
	"github.com/katalvlaran/cvrp/internal/logging"
	"github.com/katalvlaran/cvrp/parallel"
)

// DefaultPollInterval spaces FetchJob retries while the job is not yet published.
const DefaultPollInterval = 200 * time.Millisecond

// Worker is one rank of a distributed search.
type Worker struct {
	Transport Transport
	Rank      int

	// PollInterval between FetchJob attempts; 0 means DefaultPollInterval.
	PollInterval time.Duration
}

// Run fetches jobID, searches the rank's slice and sends exactly one result.
// A canceled or timed-out search still sends its incumbent with Err set.
func (w *Worker) Run(ctx context.Context, jobID string) (WorkerResult, error) {
	log := logging.FromContext(ctx).WithFields(logrus.Fields{"job": jobID, "rank": w.Rank})

	job, err := w.await(ctx, jobID)
	if err != nil {
		return WorkerResult{}, err
	}
	if w.Rank < 0 || w.Rank >= job.Workers {
		return WorkerResult{}, errors.Wrapf(ErrBadRank, "rank %d of %d", w.Rank, job.Workers)
	}

	r := parallel.Partition(len(job.Routes), job.Workers)[w.Rank]
	log.Debugf("searching [%d, %d) of %d candidates", r.Start, r.End, len(job.Routes))

	started := time.Now()
	res, serr := parallel.SearchRange(ctx, job.Set(), r, job.Disjoint, cover.Options{TimeLimit: job.TimeLimit})
	out := WorkerResult{
		JobID:   job.ID,
		Rank:    w.Rank,
		Found:   res.Found,
		Cost:    res.Cost,
		Indices: res.Indices,
		Routes:  res.Stops(),
		Stats:   res.Stats,
		Elapsed: time.Since(started),
	}
	if serr != nil {
		out.Err = serr.Error()
	}

	// The result must be delivered even when ctx was canceled mid-search.
	sendCtx := ctx
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
	}
	if err := w.Transport.SendResult(sendCtx, out); err != nil {
		return out, err
	}
	log.WithFields(logrus.Fields{"status": out.Status(), "cost": out.Cost}).Info("result sent")

	return out, serr
}

// await polls FetchJob until the job appears or ctx ends.
func (w *Worker) await(ctx context.Context, jobID string) (*Job, error) {
	every := w.PollInterval
	if every <= 0 {
		every = DefaultPollInterval
	}
	limiter := rate.NewLimiter(rate.Every(every), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil, errors.Wrapf(err, "waiting for job %s", jobID)
		}
		job, err := w.Transport.FetchJob(ctx, jobID)
		if err == nil {
			return job, nil
		}
		if !errors.Is(err, ErrJobNotFound) {
			return nil, err
		}
	}
}
