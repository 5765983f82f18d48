package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/cvrp/cover"
)

// Sentinel errors.
var (
	// ErrUnknownStrategy is returned for a strategy name or value outside the known set.
	ErrUnknownStrategy = errors.New("parallel: unknown strategy")

	// ErrBoundedStrategy is returned when branch-and-bound is combined with a
	// parallel strategy.
	ErrBoundedStrategy = errors.New("parallel: bounded search is sequential only")
)

// Strategy selects the decomposition.
type Strategy int

const (
	// Sequential runs one search over the whole candidate list.
	Sequential Strategy = iota
	// IndexRange splits the list into contiguous per-rank chunks.
	IndexRange
	// TaskParallel spawns one task per seeded inclusion prefix.
	TaskParallel
)

var strategyNames = map[Strategy]string{
	Sequential:   "sequential",
	IndexRange:   "range",
	TaskParallel: "tasks",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a case-insensitive name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Sequential, nil
	}
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// Spec describes one partitioned search.
type Spec struct {
	// Strategy picks the decomposition.
	Strategy Strategy

	// Workers is the number of ranks (IndexRange) or the pool size
	// (TaskParallel). Values ≤ 0 mean runtime.NumCPU().
	Workers int

	// Disjoint makes IndexRange ranks stop their top-level exclusion chain at
	// the end of their own range.
	Disjoint bool

	// SpawnDepth is the number of inclusions seeded before a task is spawned
	// (TaskParallel). Values ≤ 0 mean 1.
	SpawnDepth int

	// Bounded selects cover.SearchBounded. Sequential only.
	Bounded bool

	// Search is passed to every underlying cover call.
	Search cover.Options
}

// DefaultSpec returns a sequential, exhaustive Spec.
func DefaultSpec() Spec {
	return Spec{Strategy: Sequential, Workers: runtime.NumCPU(), SpawnDepth: 1}
}

func (s Spec) workers() int {
	if s.Workers <= 0 {
		return runtime.NumCPU()
	}

	return s.Workers
}

func (s Spec) spawnDepth() int {
	if s.SpawnDepth <= 0 {
		return 1
	}

	return s.SpawnDepth
}
