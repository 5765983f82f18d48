package cluster

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/cvrp/cover"
	"github.com/katalvlaran/cvrp/routes"
)

// Sentinel errors.
var (
	// ErrJobNotFound is returned when a job id is unknown or expired.
	ErrJobNotFound = errors.New("cluster: job not found")

	// ErrBadRank is returned when a worker rank is outside [0, Workers).
	ErrBadRank = errors.New("cluster: rank out of range")

	// ErrWorkerFailed is returned when at least one rank reported an error.
	ErrWorkerFailed = errors.New("cluster: worker failed")

	// ErrNoWorkers is returned for a job with fewer than one rank.
	ErrNoWorkers = errors.New("cluster: need at least one worker")

	// ErrMissingRanks is returned when collection ends before every rank
	// reported a result.
	ErrMissingRanks = errors.New("cluster: missing rank results")

	// ErrDuplicateRank is returned by Reduce when two results share a rank.
	ErrDuplicateRank = errors.New("cluster: duplicate rank result")
)

// Job is the only message sent to workers.
type Job struct {
	ID        string         `json:"id"`
	Workers   int            `json:"workers"`
	Disjoint  bool           `json:"disjoint"`
	Locations []int          `json:"locations"`
	Routes    []routes.Route `json:"routes"`
	TimeLimit time.Duration  `json:"time_limit"`
	CreatedAt time.Time      `json:"created_at"`
}

// Set rebuilds the candidate set carried by the job.
func (j *Job) Set() *routes.Set { return routes.NewSet(j.Locations, j.Routes) }

// WorkerResult is the only message sent back by a worker.
type WorkerResult struct {
	JobID   string        `json:"job_id"`
	Rank    int           `json:"rank"`
	Found   bool          `json:"found"`
	Cost    int           `json:"cost"`
	Indices []int         `json:"indices"`
	Routes  [][]int       `json:"routes"`
	Stats   cover.Stats   `json:"stats"`
	Elapsed time.Duration `json:"elapsed"`
	Err     string        `json:"error,omitempty"`
}

// Status is "ok", "empty" (no local cover) or "error".
func (r WorkerResult) Status() string {
	switch {
	case r.Err != "":
		return "error"
	case !r.Found:
		return "empty"
	default:
		return "ok"
	}
}

// Transport moves jobs and results between the coordinator and the workers.
type Transport interface {
	// Name identifies the transport in logs and metrics.
	Name() string
	// PublishJob makes job fetchable by id.
	PublishJob(ctx context.Context, job *Job) error
	// FetchJob returns the job or ErrJobNotFound.
	FetchJob(ctx context.Context, id string) (*Job, error)
	// SendResult delivers one worker result.
	SendResult(ctx context.Context, res WorkerResult) error
	// CollectResults blocks until n results of jobID arrived or ctx is done.
	// It does not inspect ranks; the coordinator matches results to ranks.
	CollectResults(ctx context.Context, jobID string, n int) ([]WorkerResult, error)
}
