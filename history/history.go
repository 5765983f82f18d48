// Package history keeps a persistent ledger of solver runs in a bolt file so
// strategies and worker counts can be compared across invocations.
package history

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/katalvlaran/cvrp/cover"
)

// ErrNotFound is returned by Best when no feasible run is recorded.
var ErrNotFound = errors.New("history: no matching run")

// Run is one recorded solver invocation.
type Run struct {
	ID         string      `json:"id" boltholdKey:"ID"`
	Instance   string      `json:"instance" boltholdIndex:"Instance"`
	Strategy   string      `json:"strategy"`
	Workers    int         `json:"workers"`
	Capacity   int         `json:"capacity"`
	Validity   string      `json:"validity"`
	Candidates int         `json:"candidates"`
	Found      bool        `json:"found"`
	Cost       int         `json:"cost" boltholdIndex:"Cost"`
	Routes     [][]int     `json:"routes"`
	Stats      cover.Stats `json:"stats"`
	Elapsed    int64       `json:"elapsedNanos"`
	CreatedAt  int64       `json:"createdAt" boltholdIndex:"CreatedAt"`
}

// ElapsedDuration returns Elapsed as a time.Duration.
func (r Run) ElapsedDuration() time.Duration { return time.Duration(r.Elapsed) }

// Store wraps a bolthold store.
type Store struct {
	db *bolthold.Store
}

// Open opens (or creates) the ledger at path.
func Open(path string) (*Store, error) {
	db, err := bolthold.Open(path, 0o644, &bolthold.Options{
		Encoder: json.Marshal,
		Decoder: json.Unmarshal,
		Options: &bbolt.Options{
			Timeout:      5 * time.Second,
			NoGrowSync:   bbolt.DefaultOptions.NoGrowSync,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open history %s", path)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying file.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts run, assigning an ID and a creation time when unset, and
// returns the stored ID.
func (s *Store) Record(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().UnixNano()
	}
	if err := s.db.Insert(run.ID, &run); err != nil {
		return "", errors.Wrapf(err, "record run %s", run.ID)
	}

	return run.ID, nil
}

// List returns the runs for instance, oldest first. An empty instance lists
// every run.
func (s *Store) List(instance string) ([]Run, error) {
	var runs []Run
	var q *bolthold.Query
	if instance != "" {
		q = bolthold.Where("Instance").Eq(instance)
	}
	if err := s.db.Find(&runs, q); err != nil {
		return nil, errors.Wrap(err, "list runs")
	}
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].CreatedAt < runs[j].CreatedAt })

	return runs, nil
}

// Best returns the cheapest feasible run for instance; the earliest wins ties.
func (s *Store) Best(instance string) (Run, error) {
	runs, err := s.List(instance)
	if err != nil {
		return Run{}, err
	}
	var (
		best  Run
		found bool
	)
	for _, r := range runs {
		if r.Found && (!found || r.Cost < best.Cost) {
			best, found = r, true
		}
	}
	if !found {
		return Run{}, errors.Wrapf(ErrNotFound, "instance %q", instance)
	}

	return best, nil
}

// FromResult builds a Run from a finished search.
func FromResult(instance, strategy string, workers, candidates int, res cover.Result, elapsed time.Duration) Run {
	return Run{
		Instance:   instance,
		Strategy:   strategy,
		Workers:    workers,
		Candidates: candidates,
		Found:      res.Found,
		Cost:       res.Cost,
		Routes:     res.Stops(),
		Stats:      res.Stats,
		Elapsed:    int64(elapsed),
	}
}
