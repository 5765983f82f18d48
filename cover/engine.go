// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: include/exclude backtracking engine shared by every entry point.
// Determinism:
//   - include-first branching, strict improvement → earliest equal-cost cover wins.
// Concurrency:
//   - an engine is private to one goroutine; the candidate set is read-only.

package cover

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/cvrp/routes"
)

// engine holds the search data, policies and incumbent of one traversal.
type engine struct {
	// Read-only input
	rs   []routes.Route
	full uint64

	// Policy
	bounded    bool
	firstLimit int
	onImprove  func(Solution)
	progress   func(Stats)

	// Cancellation
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	stop        error

	// Current combination (candidate indices)
	combo []int

	// Incumbent
	best     []int
	bestCost int
	found    bool

	stats Stats
}

func newEngine(ctx context.Context, set *routes.Set, opts Options) *engine {
	e := &engine{
		rs:         set.Routes,
		full:       set.FullMask,
		firstLimit: opts.FirstLimit,
		onImprove:  opts.OnImprove,
		progress:   opts.Progress,
		ctx:        ctx,
		combo:      make([]int, 0, 16),
		bestCost:   SentinelCost,
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// tick counts a node and polls cancellation every checkEvery nodes.
// It reports true once the search must unwind.
func (e *engine) tick() bool {
	if e.stop != nil {
		return true
	}
	e.stats.Nodes++
	if e.stats.Nodes&(checkEvery-1) != 0 {
		return false
	}
	if e.progress != nil {
		e.progress(e.stats)
	}
	if err := e.ctx.Err(); err != nil {
		e.stop = fmt.Errorf("%w: %w", ErrCanceled, err)

		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.stop = ErrTimeLimit

		return true
	}

	return false
}

// commit records the current combination as the new incumbent.
func (e *engine) commit(cost int) {
	e.best = append(e.best[:0], e.combo...)
	e.bestCost = cost
	e.found = true
	e.stats.Improvements++
	if e.onImprove != nil {
		e.onImprove(e.solution())
	}
}

// visit explores the state (idx, combo). chain is true while the combination
// still equals the starting one, i.e. on its exclusion chain.
func (e *engine) visit(idx int, mask uint64, cost int, chain bool) {
	if e.tick() {
		return
	}

	if mask == e.full {
		e.stats.Leaves++
		if !e.found || cost < e.bestCost {
			e.commit(cost)
		}

		return
	}
	if e.bounded && e.found && cost >= e.bestCost {
		e.stats.Pruned++

		return
	}
	if idx >= len(e.rs) {
		return
	}
	if chain && e.firstLimit > 0 && idx >= e.firstLimit {
		return
	}

	r := &e.rs[idx]
	e.combo = append(e.combo, idx)
	e.visit(idx+1, mask|r.Mask, cost+r.Cost, false)
	e.combo = e.combo[:len(e.combo)-1]

	e.visit(idx+1, mask, cost, chain)
}

// solution materialises the incumbent.
func (e *engine) solution() Solution {
	if !e.found {
		return Empty()
	}
	s := Solution{
		Routes:  make([]routes.Route, len(e.best)),
		Indices: append([]int(nil), e.best...),
		Cost:    e.bestCost,
		Found:   true,
	}
	for i, idx := range e.best {
		s.Routes[i] = e.rs[idx]
	}

	return s
}

// run starts the traversal at start with the given prefix already included.
func (e *engine) run(start int, prefix []int) Result {
	var (
		mask uint64
		cost int
	)
	for _, idx := range prefix {
		mask |= e.rs[idx].Mask
		cost += e.rs[idx].Cost
	}
	e.combo = append(e.combo, prefix...)
	e.visit(start, mask, cost, true)

	return Result{Solution: e.solution(), Stats: e.stats}
}
