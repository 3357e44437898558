// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/GetEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/creditflow/amount"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new directed edge from → to.
//
// Steps:
//  1. Validate IDs, capacity, cost, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically, build Edge, apply opts.
//  5. Store in g.edges and link adjacency[from][to].
//
// Errors:
//   - ErrEmptyVertexID, ErrNegativeCapacity, ErrNegativeCost,
//     ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, capacity amount.Capacity, cost int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if capacity.Negative() {
		return "", ErrNegativeCapacity
	}
	if cost < 0 {
		return "", ErrNegativeCost
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Capacity: capacity, Cost: cost}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	return eid, nil
}

// GetEdge returns the Edge with the given edgeID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID (stable, deterministic order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID.
// Uses a monotonic uint64 counter incremented atomically; no fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// sortEdges orders edges by creation sequence. Lexicographic order on the
// textual IDs would put "e10" before "e2", so compare length first.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		a, b := es[i].ID, es[j].ID
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
}
