// Package core provides a thread-safe, in-memory directed multigraph used as a
// flow network: every edge carries a capacity, a non-negative integer cost, a
// tier key and a back-reference to the record it was derived from.
//
// The Graph G = (V,E) supports:
//
//   - Parallel edges between the same ordered pair (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Bounded or unbounded capacities (amount.Capacity)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Every edge is directed: flow always runs From → To. A reverse relationship is
// a separate edge.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// EdgeOptions:
//
//	– WithKey(key int)    tier index of the edge within its originating record
//	– WithRef(ref string) identifier of the originating record
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, capacity amount.Capacity, cost int64, opts ...EdgeOption) (edgeID string, err error) // O(1)†
//	GetEdge(edgeID string) (*Edge, error)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)     // outgoing edges, in creation order
//	EdgesBetween(from, to string) []*Edge     // parallel edges of one ordered pair
//	Vertices() []string                       // O(V·log V)
//	Edges() []*Edge                           // O(E·log E)
//	VertexCount(), EdgeCount() int            // O(1)
//
//	// Views
//	SplitParallel(g) (*Graph, error)          // one extra vertex per edge
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrNegativeCapacity    – bounded capacity below zero
//	ErrNegativeCost        – cost below zero
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized constant time: atomic ID generation + nested-map insertion.
package core
