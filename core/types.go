// Package core declares the Graph, Edge, GraphOption types and the
// sentinel errors shared by all graph operations.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a stored connection between two vertices.
//
// From and To are the endpoints as stored. On directed graphs the pair is
// the edge's orientation; on undirected graphs it merely records which way
// the edge was inserted, and enumeration methods re-orient it per caller.
// Key disambiguates parallel edges on multigraphs and is always 0 on
// simple graphs.
type Edge struct {
	// From is the tail vertex ID as stored.
	From string

	// To is the head vertex ID as stored.
	To string

	// Key is the multiplicity key within this edge's endpoint bucket.
	Key int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory graph structure consumed by the traversal
// packages. One type covers all four variants; the mode flags are fixed at
// construction and immutable afterwards.
//
// Storage keeps, per vertex, insertion-ordered edge slices (outgoing and,
// for directed graphs, incoming), so enumeration never depends on map
// iteration order.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags, immutable after NewGraph.
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage.
	vertexSet   map[string]struct{} // membership
	vertexOrder []string            // insertion order of vertices
	out         map[string][]Edge   // per vertex: outgoing (directed) or incident (undirected), insertion order
	in          map[string][]Edge   // per vertex: incoming, directed graphs only
	all         []Edge              // every edge, insertion order
	nextKey     map[bucket]int64    // next multiplicity key per endpoint bucket
}

// bucket identifies the key-assignment scope of an edge: the ordered
// endpoint pair on directed graphs, the endpoint pair normalized to
// lexicographic order on undirected ones.
type bucket struct {
	a, b string
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, simple, and loop-free.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertexSet: make(map[string]struct{}),
		out:       make(map[string][]Edge),
		in:        make(map[string][]Edge),
		nextKey:   make(map[bucket]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Multigraph reports whether parallel edges between the same endpoints are
// permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
