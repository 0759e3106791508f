package edgedfs

import (
	"context"
	"fmt"
	"iter"

	"github.com/edgewalk/edgewalk/core"
)

// Iterator is a suspended edge-oriented depth-first walk. It is created
// by Walk, advanced one edge at a time by Next, and holds all traversal
// state internally: the remaining roots, the explicit stack, the visited
// edge and vertex sets, and the per-vertex pending candidate lists.
//
// An Iterator is single-consumer and must not be shared across goroutines
// without external synchronization. The underlying graph must not be
// mutated while the Iterator is live.
type Iterator struct {
	strat strategy
	ctx   context.Context

	roots []string // unexplored traversal roots, consumed front first
	stack []string // current DFS path, top is the vertex being explored

	visitedEdges map[edgeID]struct{} // yielded edge identities
	visitedVerts map[string]struct{} // vertices whose candidates were fetched
	pending      map[string][]Edge   // per-vertex undecided candidates, drained from the end

	err  error
	done bool
}

// Walk begins an edge-oriented depth-first traversal of g and returns the
// lazy Iterator over its edges. No traversal work happens until the first
// Next call.
//
// Sources come from WithSources, in the given order; without it every
// vertex of g is a root (insertion order), so all components are covered.
// A graph with no vertices gives an immediately exhausted iterator, not an
// error.
//
// Returns ErrGraphNil, ErrBadOrientation for an out-of-range orientation,
// or ErrSourceNotFound when an explicit source is missing from g.
func Walk(g *core.Graph, opts ...Option) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Resolve traversal roots through the host graph
	roots, err := g.VerticesMatching(o.Sources...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}

	return &Iterator{
		strat:        newStrategy(g, o.Orient),
		ctx:          o.Ctx,
		roots:        roots,
		visitedEdges: make(map[edgeID]struct{}),
		visitedVerts: make(map[string]struct{}),
		pending:      make(map[string][]Edge),
	}, nil
}

// Next advances the walk to the next unvisited edge and returns it.
// The second result is false once the traversal is exhausted, or when the
// context supplied via WithContext ends; in the latter case Err reports
// the context error.
func (it *Iterator) Next() (Edge, bool) {
	if it.done {
		return Edge{}, false
	}

	// Cancellation check, once per step
	select {
	case <-it.ctx.Done():
		it.err = it.ctx.Err()
		it.done = true

		return Edge{}, false
	default:
	}

	for {
		// Refill the stack from the remaining roots; an already explored
		// root pushes, finds no pending candidates, and pops again.
		for len(it.stack) == 0 {
			if len(it.roots) == 0 {
				it.done = true

				return Edge{}, false
			}
			it.stack = append(it.stack, it.roots[0])
			it.roots = it.roots[1:]
		}

		current := it.stack[len(it.stack)-1]

		// First visit: fetch the candidate edges exactly once, stored
		// reversed so popping from the end explores host enumeration
		// order first.
		if _, seen := it.visitedVerts[current]; !seen {
			cands, err := it.strat.candidates(current)
			if err != nil {
				// Only reachable if the graph was mutated mid-walk.
				it.err = fmt.Errorf("edgedfs: candidates of %q: %w", current, err)
				it.done = true

				return Edge{}, false
			}
			for i, j := 0, len(cands)-1; i < j; i, j = i+1, j-1 {
				cands[i], cands[j] = cands[j], cands[i]
			}
			it.pending[current] = cands
			it.visitedVerts[current] = struct{}{}
		}

		// Dead end: backtrack
		pend := it.pending[current]
		if len(pend) == 0 {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		// Consume the next candidate
		e := pend[len(pend)-1]
		it.pending[current] = pend[:len(pend)-1]

		// Redundant edge: already traversed under its canonical identity
		id := it.strat.identity(e)
		if _, ok := it.visitedEdges[id]; ok {
			continue
		}
		it.visitedEdges[id] = struct{}{}

		// Descend into the traversed head and yield
		_, head := it.strat.tailhead(e)
		it.stack = append(it.stack, head)

		return e, true
	}
}

// Err returns the error that terminated the walk, if any: a context error
// after cancellation, or a candidate-enumeration failure. It is nil after
// normal exhaustion and while the walk is still in progress.
func (it *Iterator) Err() error {
	return it.err
}

// Seq adapts the Iterator to a range-over-func sequence:
//
//	for e := range it.Seq() { ... }
//
// Breaking out of the range simply stops pulling; the Iterator may be
// resumed with Next afterwards.
func (it *Iterator) Seq() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// Edges runs a complete Walk and returns every yielded edge in traversal
// order. It is the eager convenience form of Walk; prefer Walk when the
// consumer may stop early.
func Edges(g *core.Graph, opts ...Option) ([]Edge, error) {
	it, err := Walk(g, opts...)
	if err != nil {
		return nil, err
	}

	var out []Edge
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out = append(out, e)
	}

	return out, it.Err()
}
