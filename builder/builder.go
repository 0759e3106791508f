// Package builder provides deterministic graph fixture constructors for
// tests, examples and benchmarks: explicit edge lists, paths, cycles and
// stars, composable in a single BuildGraph call.
//
// Contract:
//   - Constructors apply in the order given; same inputs, same graph.
//   - Constructors never panic; they return sentinel errors, wrapped with
//     method context, and BuildGraph wraps once more at the API boundary.
//   - Mode flags (directed / multi / loops) come from the core options
//     passed to BuildGraph; constructors honor them without silent
//     degrade, with one deliberate exception: FromEdges drops duplicate
//     edges on simple graphs, because collapsing parallel entries of an
//     edge list is exactly what a simple graph means.
//
// Errors:
//
//	ErrTooFewVertices - a shape constructor received too few vertex IDs.
//	ErrConstructFailed - a nil constructor or a core rejection.
package builder

import (
	"errors"
	"fmt"

	"github.com/edgewalk/edgewalk/core"
)

// ErrTooFewVertices indicates a shape constructor received fewer vertex
// IDs than the shape requires (Path needs 2, Cycle needs 3, Star needs a
// center plus one leaf).
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrConstructFailed indicates construction could not complete: a nil
// constructor was supplied, or the core graph rejected an insertion.
var ErrConstructFailed = errors.New("builder: construction failed")

// Constructor applies one deterministic mutation to a graph under
// construction. Constructors must validate early, return sentinel errors,
// and stay deterministic for the same inputs and call order.
type Constructor func(g *core.Graph) error

// BuildGraph creates a core.Graph with the given graph options and applies
// the constructors in order. The first failing constructor aborts the
// build; its error is wrapped with "BuildGraph: " and returned, with no
// partial cleanup attempted.
func BuildGraph(gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// FromEdges returns a Constructor inserting the given (from, to) pairs in
// order. On simple graphs, pairs duplicating an existing connection are
// silently dropped rather than rejected, so one edge list can feed all
// four graph variants the way the variants themselves would interpret it.
func FromEdges(pairs ...[2]string) Constructor {
	return func(g *core.Graph) error {
		for _, p := range pairs {
			if _, err := g.AddEdge(p[0], p[1]); err != nil {
				if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
					continue
				}

				return fmt.Errorf("FromEdges: add %s-%s: %w", p[0], p[1], err)
			}
		}

		return nil
	}
}

// Vertices returns a Constructor inserting the given vertex IDs in order,
// without edges. Useful for isolated vertices.
func Vertices(ids ...string) Constructor {
	return func(g *core.Graph) error {
		for _, id := range ids {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("Vertices: add %q: %w", id, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor building the path ids[0] → ids[1] → … in
// order. Requires at least two IDs.
func Path(ids ...string) Constructor {
	return func(g *core.Graph) error {
		if len(ids) < 2 {
			return fmt.Errorf("Path: need >= 2 vertices, got %d: %w", len(ids), ErrTooFewVertices)
		}
		for i := 1; i < len(ids); i++ {
			if _, err := g.AddEdge(ids[i-1], ids[i]); err != nil {
				return fmt.Errorf("Path: add %s-%s: %w", ids[i-1], ids[i], err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor building the cycle ids[0] → … → ids[n-1] →
// ids[0]. Requires at least three IDs.
func Cycle(ids ...string) Constructor {
	return func(g *core.Graph) error {
		if len(ids) < 3 {
			return fmt.Errorf("Cycle: need >= 3 vertices, got %d: %w", len(ids), ErrTooFewVertices)
		}
		for i := range ids {
			from, to := ids[i], ids[(i+1)%len(ids)]
			if _, err := g.AddEdge(from, to); err != nil {
				return fmt.Errorf("Cycle: add %s-%s: %w", from, to, err)
			}
		}

		return nil
	}
}

// Star returns a Constructor connecting center to every leaf, in leaf
// order. Requires at least one leaf.
func Star(center string, leaves ...string) Constructor {
	return func(g *core.Graph) error {
		if len(leaves) == 0 {
			return fmt.Errorf("Star: need >= 1 leaf: %w", ErrTooFewVertices)
		}
		for _, leaf := range leaves {
			if _, err := g.AddEdge(center, leaf); err != nil {
				return fmt.Errorf("Star: add %s-%s: %w", center, leaf, err)
			}
		}

		return nil
	}
}
