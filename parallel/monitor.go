package parallel

import (
	"sync"

	"github.com/katalvlaran/cvrp/cover"
)

// monitor serializes the user callbacks of concurrent searches.
type monitor struct {
	mu        sync.Mutex
	best      cover.Solution
	onImprove func(cover.Solution)
	progress  func(cover.Stats)
	slots     []cover.Stats
}

func newMonitor(opts cover.Options, slots int) *monitor {
	return &monitor{
		best:      cover.Empty(),
		onImprove: opts.OnImprove,
		progress:  opts.Progress,
		slots:     make([]cover.Stats, slots),
	}
}

// options derives the per-worker cover.Options for slot.
// Workers always run in sentinel mode; infeasibility is decided after reduction.
func (m *monitor) options(base cover.Options, slot int) cover.Options {
	opts := base
	opts.Sentinel = true
	opts.FirstLimit = 0
	opts.OnImprove = nil
	opts.Progress = nil
	if m.onImprove != nil {
		opts.OnImprove = func(s cover.Solution) { m.improve(s) }
	}
	if m.progress != nil {
		opts.Progress = func(st cover.Stats) { m.report(slot, st) }
	}

	return opts
}

func (m *monitor) improve(s cover.Solution) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.Better(m.best) {
		m.best = s
		m.onImprove(s)
	}
}

func (m *monitor) report(slot int, st cover.Stats) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[slot] = st
	var total cover.Stats
	for _, s := range m.slots {
		total = total.Add(s)
	}
	m.progress(total)
}
