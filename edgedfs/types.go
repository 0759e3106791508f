// Package edgedfs defines the Direction and Orientation enumerations, the
// yielded Edge shape, and the functional options for edge-oriented DFS.
package edgedfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for edge DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to Walk.
	ErrGraphNil = errors.New("edgedfs: graph is nil")

	// ErrSourceNotFound is returned when an explicit source vertex does not
	// exist in the graph. It wraps core.ErrVertexNotFound.
	ErrSourceNotFound = errors.New("edgedfs: source vertex not found")

	// ErrBadOrientation is returned when an Orientation value outside the
	// closed enumeration is supplied.
	ErrBadOrientation = errors.New("edgedfs: invalid orientation")
)

// Direction records which way a directed edge was walked relative to its
// stored orientation. It is attached to yielded edges only under
// OrientReverse or OrientIgnore on directed graphs; otherwise Edge.Dir
// stays at its zero value and String reports "None".
type Direction uint8

const (
	dirNone Direction = iota // untagged

	// Forward: the edge was traversed from its stored tail to its head.
	Forward

	// Reverse: the edge was traversed from its stored head to its tail.
	Reverse
)

// String returns the direction name for diagnostics.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	default:
		return "None"
	}
}

// Orientation selects how directed edges are treated during traversal.
// On undirected graphs every mode behaves as OrientOriginal; the setting
// is accepted and ignored, never an error.
type Orientation uint8

const (
	// OrientOriginal respects the stored direction of every edge (default).
	OrientOriginal Orientation = iota

	// OrientReverse walks every directed edge against its stored direction.
	OrientReverse

	// OrientIgnore treats every directed edge as traversable either way,
	// tagging each yielded edge with the direction actually used.
	OrientIgnore
)

// String returns the orientation name for diagnostics.
func (o Orientation) String() string {
	switch o {
	case OrientOriginal:
		return "Original"
	case OrientReverse:
		return "Reverse"
	case OrientIgnore:
		return "Ignore"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Edge is one yielded traversal step.
//
// From and To are the true stored endpoints on directed graphs. On
// undirected graphs they are oriented along the traversal, From being the
// vertex the walk came from. Key is the multiplicity key (always 0 on
// simple graphs). Dir is set only under OrientReverse/OrientIgnore on
// directed graphs.
type Edge struct {
	From string
	To   string
	Key  int64
	Dir  Direction
}

// Tail returns the vertex this edge was walked out of: the stored tail,
// unless the edge is tagged Reverse.
func (e Edge) Tail() string {
	if e.Dir == Reverse {
		return e.To
	}

	return e.From
}

// Head returns the vertex this edge was walked into: the stored head,
// unless the edge is tagged Reverse.
func (e Edge) Head() string {
	if e.Dir == Reverse {
		return e.From
	}

	return e.To
}

// Option configures edge DFS behavior via functional arguments.
// An invalid Option (e.g. an out-of-range orientation) is recorded
// internally and surfaced as an error when Walk is invoked.
type Option func(*Options)

// Options holds parameters customizing a Walk.
type Options struct {
	// Sources are the traversal roots, explored in the given order.
	// Empty means every vertex of the graph, in insertion order.
	Sources []string

	// Orient selects the orientation mode for directed graphs.
	Orient Orientation

	// Ctx allows cancellation and deadlines, checked once per Next.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - all vertices as sources
//   - OrientOriginal
//   - context.Background()
func DefaultOptions() Options {
	return Options{
		Sources: nil,
		Orient:  OrientOriginal,
		Ctx:     context.Background(),
		err:     nil,
	}
}

// WithSources sets the traversal roots. Passing none leaves the default
// (all vertices) in place.
func WithSources(ids ...string) Option {
	return func(o *Options) {
		if len(ids) > 0 {
			o.Sources = ids
		}
	}
}

// WithOrientation selects the orientation mode. A value outside the
// closed enumeration is an option violation surfaced by Walk as
// ErrBadOrientation.
func WithOrientation(orient Orientation) Option {
	return func(o *Options) {
		switch orient {
		case OrientOriginal, OrientReverse, OrientIgnore:
			o.Orient = orient
		default:
			o.err = fmt.Errorf("%w: %s", ErrBadOrientation, orient)
		}
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
