package edgedfs

import "github.com/edgewalk/edgewalk/core"

// edgeID is the canonical identity of an edge for visited-set membership.
// Direction tags never participate: an edge and its reverse traversal
// collapse to one identity. For undirected graphs a and b are normalized
// to lexicographic order so (u,v) and (v,u) collide.
type edgeID struct {
	a, b string
	key  int64
}

// strategy bundles the three graph-and-mode-specific behaviors of the
// traversal, resolved once per Walk so the hot loop never re-branches on
// orientation or directedness:
//
//   - candidates: which edges leave a vertex, and how they are tagged
//   - identity:   the canonical visited-set key of a candidate
//   - tailhead:   the traversed tail and head, deciding descent
type strategy struct {
	candidates func(id string) ([]Edge, error)
	identity   func(e Edge) edgeID
	tailhead   func(e Edge) (tail, head string)
}

// newStrategy resolves the strategy for graph g under the given
// orientation. OrientReverse and OrientIgnore collapse to OrientOriginal
// on undirected graphs, where stored orientation carries no meaning.
func newStrategy(g *core.Graph, orient Orientation) strategy {
	directed := g.Directed()
	tagged := directed && orient != OrientOriginal

	var s strategy

	switch {
	case tagged && orient == OrientIgnore:
		// Outgoing edges first, tagged Forward, then incoming tagged
		// Reverse; each group in host enumeration order.
		s.candidates = func(id string) ([]Edge, error) {
			out, err := g.OutEdges(id)
			if err != nil {
				return nil, err
			}
			in, err := g.InEdges(id)
			if err != nil {
				return nil, err
			}
			cands := make([]Edge, 0, len(out)+len(in))
			for _, e := range out {
				cands = append(cands, Edge{From: e.From, To: e.To, Key: e.Key, Dir: Forward})
			}
			for _, e := range in {
				cands = append(cands, Edge{From: e.From, To: e.To, Key: e.Key, Dir: Reverse})
			}

			return cands, nil
		}
	case tagged: // OrientReverse
		s.candidates = func(id string) ([]Edge, error) {
			in, err := g.InEdges(id)
			if err != nil {
				return nil, err
			}
			cands := make([]Edge, 0, len(in))
			for _, e := range in {
				cands = append(cands, Edge{From: e.From, To: e.To, Key: e.Key, Dir: Reverse})
			}

			return cands, nil
		}
	default: // original orientation, or any mode on an undirected graph
		s.candidates = func(id string) ([]Edge, error) {
			out, err := g.OutEdges(id)
			if err != nil {
				return nil, err
			}
			cands := make([]Edge, 0, len(out))
			for _, e := range out {
				cands = append(cands, Edge{From: e.From, To: e.To, Key: e.Key})
			}

			return cands, nil
		}
	}

	if directed {
		// Stored endpoints are the identity; the Dir tag, if any, is
		// dropped so forward and reverse traversals of one edge collide.
		s.identity = func(e Edge) edgeID {
			return edgeID{a: e.From, b: e.To, key: e.Key}
		}
	} else {
		// Order-insensitive endpoint pair: the same undirected edge seen
		// from either end yields one identity.
		s.identity = func(e Edge) edgeID {
			if e.To < e.From {
				return edgeID{a: e.To, b: e.From, key: e.Key}
			}

			return edgeID{a: e.From, b: e.To, key: e.Key}
		}
	}

	// Traversed tail/head: stored order unless the candidate is tagged
	// Reverse. The engine always descends into the head returned here.
	s.tailhead = func(e Edge) (string, string) {
		if e.Dir == Reverse {
			return e.To, e.From
		}

		return e.From, e.To
	}

	return s
}
