// File: view.go
// Role: Non-mutating graph views (cloning topology with altered structure).
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import (
	"strconv"

	"github.com/katalvlaran/creditflow/amount"
)

// splitSeparator joins the parts of a synthetic vertex ID.
const splitSeparator = "__"

// SplitParallel returns a simple directed graph equivalent to g for flow
// purposes: every edge u→v of g is replaced by a two-hop path
//
//	u → mid → v
//
// through a fresh vertex mid = u + "__" + v + "__" + edgeID. When that ID is
// already taken (by a real vertex or an earlier mid), a "__<n>" suffix is
// appended until it is free.
// The first hop carries the original capacity, cost, key and ref; the second
// hop is unbounded, costs nothing and keeps the ref. The result therefore never
// holds two edges for the same ordered pair, so solvers that aggregate or
// reject parallel edges see each chunk's own capacity intact.
//
// The input graph is not mutated. Real vertices keep their IDs.
//
// Complexity: O(V + E log E). Concurrency: read locks only on source.
func SplitParallel(g *Graph) (*Graph, error) {
	opts := []GraphOption{}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	for _, id := range g.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		mid := splitVertexID(out, e)
		if err := out.AddVertex(mid); err != nil {
			return nil, err
		}
		if _, err := out.AddEdge(e.From, mid, e.Capacity, e.Cost, WithKey(e.Key), WithRef(e.Ref)); err != nil {
			return nil, err
		}
		if _, err := out.AddEdge(mid, e.To, amount.Unbounded(), 0, WithRef(e.Ref)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// splitVertexID returns the first unused mid-vertex ID for e in out.
func splitVertexID(out *Graph, e *Edge) string {
	base := e.From + splitSeparator + e.To + splitSeparator + e.ID
	mid := base
	for n := 1; out.HasVertex(mid); n++ {
		mid = base + splitSeparator + strconv.Itoa(n)
	}

	return mid
}
