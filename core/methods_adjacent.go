// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, EdgesBetween) and adjacency helpers.
// Determinism:
//   - Neighbors() and EdgesBetween() sort by edge creation order.
// Concurrency:
//   - Read operations hold muVert or muEdgeAdj read locks as needed.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

// Neighbors returns all outgoing edges of vertex id, in creation order.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect edges from adjacencyList[id] buckets and sort them.
//
// Notes:
//   - Returns pointers to live catalog edges; treat them as immutable.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			if e := g.edges[eid]; e != nil {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)

	return out, nil
}

// EdgesBetween returns the parallel edges from → to, in creation order.
// Unknown vertices simply yield no edges.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[from][to]
	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		if e := g.edges[eid]; e != nil {
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out
}

// ensureAdjacency guarantees that adjacencyList[from][to] is initialized.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
