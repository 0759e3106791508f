// Package edgedfs implements a depth-first traversal of *edges* over a
// core.Graph, for all four graph variants: undirected or directed, simple
// or multigraph.
//
// What:
//
//   - Walk(g, opts...): returns a lazy Iterator over the edges a
//     depth-first walk traverses, each edge yielded at most once.
//     Traversal starts from the vertices given via WithSources, or covers
//     every component (insertion order) when no source is given.
//   - Orientation modes for directed graphs: OrientOriginal respects the
//     stored direction, OrientReverse walks every edge backwards,
//     OrientIgnore treats each directed edge as traversable either way.
//     Under the latter two, yielded edges carry a Direction tag (Forward
//     or Reverse) recording how they were actually walked.
//   - Edges(g, opts...): eager convenience wrapper that drains a Walk.
//
// Why:
//
// Node-based DFS stops expanding once a node has been seen, so in a
// directed graph with edges (0→1), (1→2), (2→1) it never traverses (2,1).
// Visiting edges instead of nodes keeps that edge in the output, which is
// what Euler-path construction, bridge finding and edge-coverage analysis
// need.
//
// Laziness:
//
// The Iterator is pull-based: each Next advances the walk only far enough
// to find the next unvisited edge. Abandoning an iterator early costs
// nothing — all state (stack, visited sets, pending edge lists) is plain
// in-process data scoped to the iterator. The host graph must not be
// mutated while an iterator is live.
//
// Complexity:
//
//   - Time:   O(V + E) over a full drain; each Next is amortized O(1)
//     plus the skipped already-visited candidates.
//   - Memory: O(V + E) for the visited sets and pending lists.
//
// Errors:
//
//   - ErrGraphNil          g is nil.
//   - ErrBadOrientation    orientation outside the closed enumeration.
//   - ErrSourceNotFound    an explicit source vertex is missing.
//   - context.Canceled / DeadlineExceeded via Iterator.Err when a
//     WithContext context ends mid-walk.
package edgedfs
