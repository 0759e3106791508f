// Package core defines the Graph type consumed by the traversal packages:
// an in-memory adjacency structure covering four variants — undirected or
// directed, simple or multigraph — behind one set of construction options.
//
// What:
//
//   - NewGraph(opts...): build a graph; WithDirected, WithMultiEdges and
//     WithLoops fix its mode at construction time (immutable afterwards).
//   - AddVertex / AddEdge: grow the graph; AddEdge auto-creates endpoints
//     and, on multigraphs, assigns a multiplicity key per endpoint pair.
//   - OutEdges / InEdges / Edges / Vertices: enumeration, always in
//     insertion order and repeatable across calls. Algorithms in this
//     module rely on that stability; it is a contract, not an accident.
//   - VerticesMatching: resolve explicit traversal sources, or every
//     vertex (insertion order) when none are given.
//
// Multiplicity keys:
//
// On a multigraph, parallel edges between the same endpoints are
// disambiguated by an int64 key, counted from 0 per endpoint bucket —
// the ordered pair (from,to) for directed graphs, the unordered pair for
// undirected ones. Simple graphs always carry key 0.
//
// Concurrency:
//
// A single sync.RWMutex guards all storage. Mutators take the write lock,
// queries the read lock, so graphs may be built from several goroutines.
// Enumeration methods return copies; callers may retain them freely.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
