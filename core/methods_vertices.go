package core

import "fmt"

// AddVertex inserts a vertex with the given id. Adding an existing vertex
// is a no-op. Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked records id if unseen. Caller holds the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertexSet[id]; ok {
		return
	}
	g.vertexSet[id] = struct{}{}
	g.vertexOrder = append(g.vertexOrder, id)
}

// HasVertex reports whether the vertex id exists. An empty id is never
// present.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertexSet[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertexOrder)
}

// VerticesMatching resolves a set of traversal sources.
//
// With no arguments it returns every vertex in insertion order, so that a
// caller iterating the result covers all components, isolated vertices
// included. With explicit arguments it returns exactly those vertices in
// the given order; any ID absent from the graph yields a wrapped
// ErrVertexNotFound.
// Complexity: O(V) or O(len(sources)).
func (g *Graph) VerticesMatching(sources ...string) ([]string, error) {
	if len(sources) == 0 {
		return g.Vertices(), nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(sources))
	for _, id := range sources {
		if _, ok := g.vertexSet[id]; !ok {
			return nil, fmt.Errorf("core: vertex %q: %w", id, ErrVertexNotFound)
		}
		out = append(out, id)
	}

	return out, nil
}
