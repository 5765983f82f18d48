// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, Cost, HasEdge, Edges, EdgeCount, Origins, Clone.
// Determinism:
//   - Edges() returns origins ascending, then insertion order per origin.
// Concurrency:
//   - AddEdge under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge appends the directed edge from→to with the given cost.
//
// No validation and no duplicate detection: a second edge for the same
// (from, to) pair is stored after the first and is never returned by Cost
// while the first one exists.
//
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(from, to, cost int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj[from] = append(g.adj[from], arc{to: to, cost: cost})
	g.edgeCount++
}

// Cost returns the cost of the first stored edge from→to.
// The boolean is false when no such edge exists.
//
// Complexity: O(out-degree(from)).
func (g *Graph) Cost(from, to int) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.lookup(from, to)
}

// lookup is the lock-free first-match scan; callers hold mu.
func (g *Graph) lookup(from, to int) (int, bool) {
	for _, a := range g.adj[from] {
		if a.to == to {
			return a.cost, true
		}
	}

	return 0, false
}

// HasEdge reports whether at least one edge from→to is stored.
func (g *Graph) HasEdge(from, to int) bool {
	_, ok := g.Cost(from, to)

	return ok
}

// EdgeCount returns the number of stored edges, duplicates included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Origins returns every id with at least one outgoing edge, ascending.
func (g *Graph) Origins() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adj))
	for from := range g.adj {
		out = append(out, from)
	}
	sort.Ints(out)

	return out
}

// Edges returns a snapshot of all stored edges: origins ascending, then the
// insertion order of each origin's arcs.
//
// Complexity: O(E + V log V).
func (g *Graph) Edges() []Edge {
	origins := g.Origins()

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, from := range origins {
		for _, a := range g.adj[from] {
			out = append(out, Edge{From: from, To: a.to, Cost: a.cost})
		}
	}

	return out
}

// Clone returns a deep copy with identical insertion order.
// Distributed workers may use it to own a private value-copy of the instance.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{adj: make(map[int][]arc, len(g.adj)), edgeCount: g.edgeCount}
	for from, arcs := range g.adj {
		c.adj[from] = append([]arc(nil), arcs...)
	}

	return c
}

// ValidateCosts returns ErrNegativeCost (wrapped with the offending edge)
// if any stored edge has a negative cost.
func (g *Graph) ValidateCosts() error {
	for _, e := range g.Edges() {
		if e.Cost < 0 {
			return fmt.Errorf("edge %d->%d cost %d: %w", e.From, e.To, e.Cost, ErrNegativeCost)
		}
	}

	return nil
}
