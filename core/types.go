// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Depot is the distinguished location id implicitly present at both ends of
// every route. It is never part of a location set.
const Depot = 0

// Sentinel errors for core graph operations.
var (
	// ErrMissingEdge indicates that a route hop has no stored edge.
	ErrMissingEdge = errors.New("core: missing edge")

	// ErrNegativeCost indicates an edge with a negative cost.
	ErrNegativeCost = errors.New("core: negative edge cost")

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is a directed, weighted connection between two locations.
type Edge struct {
	// From is the origin location id.
	From int `json:"from" yaml:"from"`

	// To is the destination location id.
	To int `json:"to" yaml:"to"`

	// Cost is the traversal cost From→To.
	Cost int `json:"cost" yaml:"cost"`
}

// arc is one outgoing entry of an origin's adjacency list.
type arc struct {
	to   int
	cost int
}

// Graph is a directed weighted adjacency store keyed by origin id.
//
// mu guards adj and edgeCount. Insertion order of each origin's arcs is
// preserved; lookups break ties by first match.
type Graph struct {
	mu        sync.RWMutex
	adj       map[int][]arc
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adj: make(map[int][]arc)}
}

// FromEdges builds a Graph by adding edges in slice order.
// Complexity: O(len(edges)).
func FromEdges(edges []Edge) *Graph {
	g := NewGraph()
	for _, e := range edges {
		g.AddEdge(e.From, e.To, e.Cost)
	}

	return g
}
