package cover

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/cvrp/routes"
)

// SentinelCost is the "infinite" cost reported for an infeasible instance in
// sentinel mode. It matches a 32-bit INT_MAX.
const SentinelCost = math.MaxInt32

// checkEvery is the node interval between cancellation and deadline polls.
const checkEvery = 4096

// Sentinel errors.
var (
	// ErrNilSet is returned when a nil candidate set is searched.
	ErrNilSet = errors.New("cover: candidate set is nil")

	// ErrNoFeasibleCover is returned when no combination covers every location.
	ErrNoFeasibleCover = errors.New("cover: no feasible cover")

	// ErrBadStart is returned for a start index outside [0, K].
	ErrBadStart = errors.New("cover: start index out of range")

	// ErrBadPrefix is returned for a prefix that is not strictly increasing
	// or does not lie before the start index.
	ErrBadPrefix = errors.New("cover: invalid prefix")

	// ErrNegativeCost is returned by SearchBounded when a candidate has a
	// negative cost, which would make the cut unsound.
	ErrNegativeCost = errors.New("cover: negative route cost")

	// ErrCanceled is returned when the context is canceled mid-search.
	ErrCanceled = errors.New("cover: search canceled")

	// ErrTimeLimit is returned when Options.TimeLimit elapses mid-search.
	ErrTimeLimit = errors.New("cover: time limit exceeded")
)

// Options tunes a search. The zero value is the exhaustive, unbounded search
// that reports infeasibility as ErrNoFeasibleCover.
type Options struct {
	// Sentinel reports an infeasible instance as Cost == SentinelCost and a
	// nil error instead of ErrNoFeasibleCover.
	Sentinel bool

	// TimeLimit bounds the wall-clock duration of the search (0 = unbounded).
	TimeLimit time.Duration

	// OnImprove, if set, receives every new incumbent in discovery order.
	OnImprove func(Solution)

	// Progress, if set, receives the running Stats every 4096 nodes.
	Progress func(Stats)

	// FirstLimit, if > 0, stops the exclusion chain of the starting
	// combination at this index: the first route added by the search must
	// lie in [start, FirstLimit). Used by disjoint index-range partitions.
	FirstLimit int
}

// DefaultOptions returns the exhaustive configuration.
func DefaultOptions() Options { return Options{} }

// Solution is a covering combination and its total cost.
type Solution struct {
	// Routes lists the chosen routes in candidate order.
	Routes []routes.Route `json:"routes"`

	// Indices are the candidate-set positions of Routes.
	Indices []int `json:"indices"`

	// Cost is the sum of route costs, or SentinelCost when !Found.
	Cost int `json:"cost"`

	// Found reports whether the combination covers every location.
	Found bool `json:"found"`
}

// Empty returns the "+∞" solution every reduction starts from.
func Empty() Solution { return Solution{Cost: SentinelCost} }

// Better reports whether s strictly improves on other.
// A found solution always beats a missing one.
func (s Solution) Better(other Solution) bool {
	if !s.Found {
		return false
	}

	return !other.Found || s.Cost < other.Cost
}

// Stops returns the stop lists of the chosen routes.
func (s Solution) Stops() [][]int {
	out := make([][]int, len(s.Routes))
	for i, r := range s.Routes {
		out[i] = r.Stops
	}

	return out
}

// Stats counts search work.
type Stats struct {
	// Nodes is the number of visited states.
	Nodes int64 `json:"nodes" yaml:"nodes"`

	// Leaves is the number of covering combinations evaluated.
	Leaves int64 `json:"leaves" yaml:"leaves"`

	// Improvements is the number of times the incumbent was replaced.
	Improvements int64 `json:"improvements" yaml:"improvements"`

	// Pruned is the number of branches cut by SearchBounded.
	Pruned int64 `json:"pruned" yaml:"pruned"`
}

// Add returns the field-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Nodes:        s.Nodes + o.Nodes,
		Leaves:       s.Leaves + o.Leaves,
		Improvements: s.Improvements + o.Improvements,
		Pruned:       s.Pruned + o.Pruned,
	}
}

// Result bundles the best Solution with the work spent finding it.
type Result struct {
	Solution
	Stats Stats `json:"stats"`
}
