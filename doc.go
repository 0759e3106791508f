// Package edgewalk is a small library for walking the edges of a graph,
// depth-first, one edge at a time.
//
// Where a classic DFS visits every node once, edgewalk visits every *edge*
// once: in a directed graph with edges (0→1), (1→2), (2→1), the edge (2,1)
// is still traversed even though node 1 was discovered long before. That
// makes it the right primitive for edge-centric analysis — Euler paths,
// bridge finding, dependency auditing — where node-based traversal silently
// drops edges.
//
// The library is organized in three subpackages:
//
//	core/    — the Graph type: directed or undirected, simple or multigraph,
//	           with insertion-ordered, repeatable edge enumeration
//	edgedfs/ — the lazy edge-oriented depth-first iterator, with original,
//	           reversed, and orientation-ignoring traversal of directed graphs
//	builder/ — deterministic fixture constructors (edge lists, paths,
//	           cycles, stars) for tests and examples
//
// Quick taste:
//
//	g, _ := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		builder.FromEdges([2]string{"a", "b"}, [2]string{"b", "a"}),
//	)
//	it, _ := edgedfs.Walk(g)
//	for e, ok := it.Next(); ok; e, ok = it.Next() {
//		fmt.Println(e.From, "->", e.To)
//	}
//
// Everything is pure Go, lazily evaluated, and call-scoped: abandoning an
// iterator halfway costs nothing and leaks nothing.
package edgewalk
