// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, register it.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Lock order is muVert -> muEdgeAdj to avoid lock inversion across vertex/edge code paths.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Prefer it over len(Vertices()) to avoid the O(V log V) sort.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
