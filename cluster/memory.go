package cluster

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// MemoryTransport keeps jobs and results in process memory.
// The zero value is not usable; call NewMemoryTransport.
type MemoryTransport struct {
	mu      sync.Mutex
	jobs    map[string]*Job
	results map[string]chan WorkerResult
}

// NewMemoryTransport returns an empty in-process transport.
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{
		jobs:    make(map[string]*Job),
		results: make(map[string]chan WorkerResult),
	}
}

// Name implements Transport.
func (m *MemoryTransport) Name() string { return "memory" }

// PublishJob implements Transport.
func (m *MemoryTransport) PublishJob(_ context.Context, job *Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobs[job.ID] = job
	m.inbox(job.ID, job.Workers)

	return nil
}

// FetchJob implements Transport.
func (m *MemoryTransport) FetchJob(_ context.Context, id string) (*Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, errors.Wrapf(ErrJobNotFound, "job %s", id)
	}

	return job, nil
}

// SendResult implements Transport.
func (m *MemoryTransport) SendResult(ctx context.Context, res WorkerResult) error {
	m.mu.Lock()
	ch := m.inbox(res.JobID, 1)
	m.mu.Unlock()

	select {
	case ch <- res:
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "send result rank %d", res.Rank)
	}
}

// CollectResults implements Transport.
func (m *MemoryTransport) CollectResults(ctx context.Context, jobID string, n int) ([]WorkerResult, error) {
	m.mu.Lock()
	ch := m.inbox(jobID, n)
	m.mu.Unlock()

	out := make([]WorkerResult, 0, n)
	for len(out) < n {
		select {
		case res := <-ch:
			out = append(out, res)
		case <-ctx.Done():
			return out, errors.Wrapf(ctx.Err(), "collected %d of %d results", len(out), n)
		}
	}

	return out, nil
}

// inbox returns the result channel of id, creating it with capacity size.
// Callers hold mu.
func (m *MemoryTransport) inbox(id string, size int) chan WorkerResult {
	ch, ok := m.results[id]
	if !ok {
		if size < 1 {
			size = 1
		}
		ch = make(chan WorkerResult, size)
		m.results[id] = ch
	}

	return ch
}
