package core

// AddEdge inserts an edge from → to, creating the endpoints if needed, and
// returns the multiplicity key assigned to it (always 0 on simple graphs).
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if the endpoints are already connected and
//     multi-edges are disabled (on undirected graphs "connected" is
//     orientation-insensitive: (v,u) duplicates (u,v)).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (int64, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	// 2) Loop constraint
	if from == to && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Multi-edge constraint, per endpoint bucket
	b := g.bucketOf(from, to)
	if !g.allowMulti && g.nextKey[b] > 0 {
		return 0, ErrMultiEdgeNotAllowed
	}

	// 4) Ensure both endpoints exist (idempotent)
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 5) Assign the next key in this bucket and store
	key := g.nextKey[b]
	g.nextKey[b] = key + 1

	e := Edge{From: from, To: to, Key: key}
	g.all = append(g.all, e)
	g.out[from] = append(g.out[from], e)
	if g.directed {
		g.in[to] = append(g.in[to], e)
	} else if from != to {
		// Mirror incidence for the other endpoint; loops appear once.
		g.out[to] = append(g.out[to], e)
	}

	return key, nil
}

// bucketOf returns the key-assignment bucket for an endpoint pair.
// Undirected graphs normalize the pair so (u,v) and (v,u) share keys.
func (g *Graph) bucketOf(from, to string) bucket {
	if !g.directed && to < from {
		return bucket{a: to, b: from}
	}

	return bucket{a: from, b: to}
}

// HasEdge reports whether at least one edge connects from → to.
// On undirected graphs the check is orientation-insensitive.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nextKey[g.bucketOf(from, to)] > 0
}

// OutEdges returns the candidate edges leaving id, in insertion order.
//
// Directed graphs: stored edges with From == id. Undirected graphs: every
// incident edge, re-oriented so From == id (the stored orientation of an
// undirected edge is a presentation detail, not a property). Self-loops
// appear exactly once.
//
// The returned slice is a fresh copy and repeatable across calls.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg(id)).
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertexSet[id]; !ok {
		return nil, ErrVertexNotFound
	}

	stored := g.out[id]
	out := make([]Edge, 0, len(stored))
	for _, e := range stored {
		if !g.directed && e.From != id {
			// Present the incident edge from id's side.
			e.From, e.To = e.To, e.From
		}
		out = append(out, e)
	}

	return out, nil
}

// InEdges returns the edges arriving at id, in insertion order, with their
// stored orientation preserved (From is the true tail). On undirected
// graphs orientation is meaningless and InEdges is identical to OutEdges.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(indeg(id)).
func (g *Graph) InEdges(id string) ([]Edge, error) {
	if !g.Directed() {
		return g.OutEdges(id)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertexSet[id]; !ok {
		return nil, ErrVertexNotFound
	}

	in := make([]Edge, len(g.in[id]))
	copy(in, g.in[id])

	return in, nil
}

// Edges returns every edge in insertion order, stored orientation, as a
// copy.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.all))
	copy(out, g.all)

	return out
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.all)
}
