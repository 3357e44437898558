// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning
// flow networks.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/creditflow/amount"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeCapacity indicates a bounded capacity below zero.
	ErrNegativeCapacity = errors.New("core: negative edge capacity")

	// ErrNegativeCost indicates an edge cost below zero.
	ErrNegativeCost = errors.New("core: negative edge cost")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge is a directed, capacitated, costed connection From → To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Capacity is the most flow the edge may carry.
	Capacity amount.Capacity

	// Cost is the per-unit weight of flow on this edge; never negative.
	Cost int64

	// Key distinguishes tiers derived from the same Ref (0, 1, ...).
	Key int

	// Ref names the record this edge was derived from. Views carry it over.
	Ref string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithKey sets the tier key of the edge.
func WithKey(key int) EdgeOption {
	return func(e *Edge) { e.Key = key }
}

// WithRef sets the back-reference of the edge.
func WithRef(ref string) EdgeOption {
	return func(e *Edge) { e.Ref = ref }
}

// Graph is the core in-memory flow network.
//
// muVert protects vertices map; muEdgeAdj protects edges map and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph has no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops (from==to) are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
